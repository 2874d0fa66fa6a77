// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jeranaias/slidertip/internal/slider"
)

// DefaultComponentType is the component type used in widget descriptors.
const DefaultComponentType = "slider"

// HandleDescribe prints widget descriptors a host UI can build sliders
// from. Without --json the descriptors are printed as bare JSON, since
// there is no useful human rendering of them.
func HandleDescribe(w io.Writer, args Args) error {
	parser := NewArgParser(args.Raw)
	componentType := parser.FlagOrDefault("type", DefaultComponentType)
	renderer := parser.Flag("renderer")

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	var sliders []*slider.Slider
	if key := parser.Subcommand(); key != "" {
		s, err := cfg.Slider(key)
		if err != nil {
			return err
		}
		sliders = []*slider.Slider{s}
	} else if sliders, err = cfg.BuildSliders(); err != nil {
		return err
	}

	descriptors := make([]slider.Descriptor, len(sliders))
	for i, s := range sliders {
		descriptors[i] = s.Descriptor(componentType, renderer)
	}

	if args.JSON {
		return NewJSONResponse(CmdDescribe.String(), descriptors).Write(w)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !args.Quiet {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(descriptors); err != nil {
		return fmt.Errorf("failed to encode descriptors: %w", err)
	}
	return nil
}
