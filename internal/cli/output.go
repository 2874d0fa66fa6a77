// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// output.go - Helpers shared by the slidertip command handlers.

package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jeranaias/slidertip/internal/config"
	"github.com/jeranaias/slidertip/internal/slider"
	"github.com/jeranaias/slidertip/internal/util"
)

// loadConfig loads the configuration named by --config, or the default one,
// installs it as the process-wide configuration and returns a copy with
// --locale applied on top.
func loadConfig(args Args) (*config.Config, error) {
	if args.ConfigPath != "" {
		loaded, err := config.LoadFromPath(args.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errConfig, err)
		}
		config.SetGlobal(loaded)
	} else if err := config.ReloadGlobal(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}
	cfg := config.Global().Clone()

	if args.Locale != "" {
		cfg.Display.Locale = args.Locale
		if err := cfg.Validate(); err != nil {
			return nil, &UsageError{Reason: "invalid --locale", Example: "--locale de", Err: err}
		}
	}
	return cfg, nil
}

// configPath returns the file commands that write the configuration use.
func configPath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	return config.Path()
}

// formatter formats numbers for display using the configured locale.
type formatter struct {
	locale    string
	precision int
}

func newFormatter(cfg *config.Config) formatter {
	return formatter{locale: cfg.Display.Locale, precision: cfg.Display.Precision}
}

// Format formats v, falling back to plain formatting if the locale is
// unusable.
func (f formatter) Format(v float64) string {
	s, err := util.FormatLocale(v, f.locale, f.precision)
	if err != nil {
		return util.FormatDisplay(v)
	}
	return s
}

// newLogger returns the logger used by long running commands. It writes to
// stderr with --verbose and discards everything otherwise.
func newLogger(args Args) *log.Logger {
	var out io.Writer = io.Discard
	if args.Verbose {
		out = os.Stderr
	}
	return log.New(out, "slidertip: ", log.LstdFlags)
}

// tooltipText returns the tooltip a host UI would show for pos: the
// transformed value, formatted and placed into the slider's template.
func tooltipText(s *slider.Slider, pos float64, format formatter) (string, error) {
	v, err := s.Display(pos)
	if err != nil {
		return "", err
	}
	text := format.Format(v)
	if tmpl := s.Tooltip().Template; tmpl != "" {
		text = strings.ReplaceAll(tmpl, "{value}", text)
	}
	return text, nil
}
