// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/jeranaias/slidertip/internal/transform"
	"github.com/jeranaias/slidertip/internal/util"
)

const evalExample = "slidertip eval trafo_L 0 0.5 2"

// HandleEval applies a named transform to each value argument.
//
// Usage: slidertip eval <transform> <value>...
func HandleEval(w io.Writer, args Args) error {
	parser := NewArgParser(args.Raw)
	name := parser.Subcommand()
	if name == "" {
		return ErrMissingArgument("transform", evalExample)
	}
	inputs := parser.PositionalFrom(1)
	if len(inputs) == 0 {
		return ErrMissingArgument("value", evalExample)
	}

	fn, err := transform.Lookup(name)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	format := newFormatter(cfg)

	data := EvalData{Transform: name, Results: make([]EvalResult, 0, len(inputs))}
	for _, raw := range inputs {
		in, err := parseNumber(raw, evalExample)
		if err != nil {
			return err
		}
		out := fn(in)
		result := EvalResult{Input: util.FormatDisplay(in), Display: format.Format(out)}
		if !math.IsNaN(out) && !math.IsInf(out, 0) {
			result.Value = &out
		}
		data.Results = append(data.Results, result)
	}

	if args.JSON {
		return NewJSONResponse(CmdEval.String(), data).Write(w)
	}

	for _, r := range data.Results {
		if args.Quiet {
			fmt.Fprintln(w, r.Display)
			continue
		}
		fmt.Fprintf(w, "%s(%s) = %s\n", DimStyle.Render(name), r.Input, HighlightStyle.Render(r.Display))
	}
	return nil
}
