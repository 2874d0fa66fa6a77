// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/jeranaias/slidertip/internal/config"
	"github.com/jeranaias/slidertip/internal/slider"
	"github.com/jeranaias/slidertip/internal/util"
)

// HandleMarks prints the step and tick marks of every configured slider, or
// of the one named by --slider (or the first positional).
func HandleMarks(w io.Writer, args Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	data, err := collectMarks(cfg, selectedSlider(NewArgParser(args.Raw)))
	if err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse(CmdMarks.String(), data).Write(w)
	}
	renderMarks(w, data, args.Quiet)
	return nil
}

func selectedSlider(parser *ArgParser) string {
	if name := parser.Flag("slider"); name != "" {
		return name
	}
	return parser.Subcommand()
}

// collectMarks gathers marks for the slider named key, or all sliders when
// key is empty.
func collectMarks(cfg *config.Config, key string) ([]MarksData, error) {
	var sliders []*slider.Slider
	if key != "" {
		s, err := cfg.Slider(key)
		if err != nil {
			return nil, err
		}
		sliders = []*slider.Slider{s}
	} else {
		all, err := cfg.BuildSliders()
		if err != nil {
			return nil, err
		}
		sliders = all
	}

	data := make([]MarksData, 0, len(sliders))
	for _, s := range sliders {
		marks := s.Marks()
		if marks == nil {
			marks = []slider.Mark{}
		}
		data = append(data, MarksData{
			Slider: s.Name(),
			Kind:   s.Kind(),
			Step:   s.Step(),
			Marks:  marks,
		})
	}
	return data, nil
}

func renderMarks(w io.Writer, data []MarksData, quiet bool) {
	for i, d := range data {
		if quiet {
			for _, m := range d.Marks {
				fmt.Fprintf(w, "%s\t%s\n", util.FormatSignificant(m.Position, 10), m.Label)
			}
			continue
		}

		if i > 0 {
			fmt.Fprintln(w)
		}
		step := "continuous"
		if d.Step > 0 {
			step = util.FormatSignificant(d.Step, 6)
		}
		fmt.Fprintf(w, "%s %s\n", TitleStyle.Render(d.Slider), DimStyle.Render(fmt.Sprintf("(%s, step %s)", d.Kind, step)))
		fmt.Fprintln(w, RenderSeparatorAdaptive())
		if len(d.Marks) == 0 {
			fmt.Fprintln(w, DimStyle.Render("  no marks"))
			continue
		}
		for _, m := range d.Marks {
			fmt.Fprintf(w, "  %s  %s\n",
				RenderCell(LabelStyle, util.FormatSignificant(m.Position, 10), 14, true),
				ValueStyle.Render(m.Label))
		}
	}
}
