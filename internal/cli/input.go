// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/jeranaias/slidertip/internal/config"
	"github.com/jeranaias/slidertip/internal/slider"
)

const inputExample = "slidertip input samples 2500"

// HandleInput converts a typed value into a slider position, the way a
// manual input box next to the slider does, and optionally stores the new
// state.
//
// Usage: slidertip input <slider> <value> [--save]
func HandleInput(w io.Writer, args Args) error {
	parser := NewArgParser(args.Raw, "save")
	key := parser.Positional(0)
	if key == "" {
		return ErrMissingArgument("slider", inputExample)
	}
	if parser.PositionalCount() < 2 {
		return ErrMissingArgument("value", inputExample)
	}
	value, err := parseNumber(parser.Positional(1), inputExample)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	s, err := cfg.Slider(key)
	if err != nil {
		return err
	}
	pos, err := s.ManualInput(value)
	if err != nil {
		return err
	}
	display, err := tooltipText(s, pos, newFormatter(cfg))
	if err != nil {
		return err
	}

	data := InputData{
		Slider:   s.Name(),
		Input:    value,
		Position: pos,
		State:    s.State(),
		Display:  display,
	}

	if parser.BoolFlag("save") {
		path, err := saveSliderState(args, s.Spec())
		if err != nil {
			return err
		}
		data.Saved = path
	}

	if args.JSON {
		return NewJSONResponse(CmdInput.String(), data).Write(w)
	}
	if args.Quiet {
		fmt.Fprintln(w, formatPosition(pos))
		return nil
	}

	fmt.Fprintf(w, "%s\n", TitleStyle.Render(data.Slider))
	fmt.Fprintf(w, "  %s %s\n", RenderLabel("position", 10), ValueStyle.Render(formatPosition(pos)))
	fmt.Fprintf(w, "  %s %s\n", RenderLabel("tooltip", 10), HighlightStyle.Render(display))
	if data.Saved != "" {
		fmt.Fprintf(w, "  %s %s\n", RenderStatus(true), DimStyle.Render("saved to "+data.Saved))
	}
	return nil
}

func formatPosition(pos float64) string {
	return fmt.Sprintf("%.10g", pos)
}

// saveSliderState writes spec over the stored slider with the same ID and
// returns the file written. Flag overrides such as --locale are not saved.
func saveSliderState(args Args, spec slider.Spec) (string, error) {
	base, err := loadConfig(Args{ConfigPath: args.ConfigPath})
	if err != nil {
		return "", err
	}
	updated := base.Clone()
	if err := updated.UpdateSlider(spec); err != nil {
		return "", err
	}

	path, err := configPath(args)
	if err != nil {
		return "", NewCommandError(CmdInput.String(), "save", "cannot resolve config path", err)
	}
	if err := config.SaveToPath(updated, path); err != nil {
		return "", fmt.Errorf("%w: %w", errConfig, err)
	}
	return path, nil
}
