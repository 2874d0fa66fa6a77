// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/jeranaias/slidertip/internal/config"
	"github.com/jeranaias/slidertip/internal/transform"
	"github.com/jeranaias/slidertip/internal/util"
)

// HandleList prints the configured sliders, or the transform registry for
// "list transforms".
func HandleList(w io.Writer, args Args) error {
	parser := NewArgParser(args.Raw)
	switch parser.Subcommand() {
	case "", "sliders":
	case "transforms", "transform", "t":
		return listTransforms(w, args)
	default:
		return NewUsageError(fmt.Sprintf("unknown list target %q", parser.Subcommand()), "slidertip list transforms")
	}

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	infos, err := sliderInfos(cfg)
	if err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse(CmdList.String(), infos).Write(w)
	}
	if args.Quiet {
		for _, info := range infos {
			fmt.Fprintln(w, info.Name)
		}
		return nil
	}

	nameWidth := cfg.Display.LabelWidth
	fmt.Fprintf(w, "%s %s %s %s\n",
		RenderLabel("NAME", nameWidth),
		RenderLabel("KIND", 7),
		RenderLabel("RANGE", 22),
		LabelStyle.Render("VALUE"))
	for _, info := range infos {
		rng := fmt.Sprintf("[%s, %s]", util.FormatSignificant(info.Min, 6), util.FormatSignificant(info.Max, 6))
		value := info.Display
		if info.Transform != "" {
			value += " " + DimStyle.Render("("+info.Transform+")")
		}
		fmt.Fprintf(w, "%s %s %s %s\n",
			RenderCell(TitleStyle, util.TruncateWidth(info.Name, nameWidth), nameWidth, false),
			RenderCell(ValueStyle, info.Kind.String(), 7, false),
			RenderCell(ValueStyle, rng, 22, false),
			HighlightStyle.Render(value))
	}
	return nil
}

func sliderInfos(cfg *config.Config) ([]SliderInfo, error) {
	sliders, err := cfg.BuildSliders()
	if err != nil {
		return nil, err
	}
	format := newFormatter(cfg)

	infos := make([]SliderInfo, 0, len(sliders))
	for _, s := range sliders {
		spec := s.Spec()
		display, err := tooltipText(s, s.Position(), format)
		if err != nil {
			return nil, err
		}
		infos = append(infos, SliderInfo{
			ID:        spec.ID,
			Name:      spec.Name,
			Kind:      spec.Kind,
			Min:       spec.Min,
			Max:       spec.Max,
			Value:     s.State(),
			Display:   display,
			Transform: s.Tooltip().Transform,
		})
	}
	return infos, nil
}

func listTransforms(w io.Writer, args Args) error {
	names := transform.Names()
	infos := make([]TransformInfo, len(names))
	for i, name := range names {
		infos[i] = TransformInfo{Name: name, Description: transform.Describe(name)}
	}

	if args.JSON {
		return NewJSONResponse(CmdList.String(), infos).Write(w)
	}
	for _, info := range infos {
		if args.Quiet {
			fmt.Fprintln(w, info.Name)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", RenderCell(TitleStyle, info.Name, 20, false), DimStyle.Render(info.Description))
	}
	return nil
}
