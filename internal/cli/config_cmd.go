// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/slidertip/internal/config"
)

// HandleConfig handles "config [show|path|init|validate]".
func HandleConfig(w io.Writer, args Args) error {
	parser := NewArgParser(args.Raw, "force")
	switch sub := parser.Subcommand(); sub {
	case "", "show":
		return configShow(w, args)
	case "path":
		return configPathCmd(w, args)
	case "init":
		return configInit(w, args, parser)
	case "validate", "check":
		return configValidate(w, args)
	default:
		return NewUsageError(fmt.Sprintf("unknown config subcommand %q", sub), "slidertip config validate")
	}
}

func configShow(w io.Writer, args Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if args.JSON {
		return NewJSONResponse("config show", cfg).Write(w)
	}
	_, err = io.WriteString(w, cfg.String())
	return err
}

func configPathCmd(w io.Writer, args Args) error {
	path, err := configPath(args)
	if err != nil {
		return NewCommandError(CmdConfig.String(), "path", "cannot resolve config path", err)
	}
	_, statErr := os.Stat(path)
	if args.JSON {
		return NewJSONResponse("config path", ConfigData{Path: path, Exists: statErr == nil}).Write(w)
	}
	fmt.Fprintln(w, path)
	return nil
}

func configInit(w io.Writer, args Args, parser *ArgParser) error {
	path, err := configPath(args)
	if err != nil {
		return NewCommandError(CmdConfig.String(), "init", "cannot resolve config path", err)
	}
	switch format := strings.ToLower(parser.Flag("format")); format {
	case "":
	case "json":
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
	case "toml":
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ".toml"
	default:
		return NewUsageError(fmt.Sprintf("unsupported format %q", format), "slidertip config init --format json")
	}

	if _, err := os.Stat(path); err == nil && !parser.BoolFlag("force") {
		return NewCommandError(CmdConfig.String(), "init", "file exists (use --force to overwrite)", errors.New(path))
	}

	cfg := config.Default()
	if err := config.SaveToPath(cfg, path); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	if args.JSON {
		return NewJSONResponse("config init", ConfigData{Path: path, Exists: true, Valid: true, Sliders: len(cfg.Sliders)}).Write(w)
	}
	if !args.Quiet {
		fmt.Fprintf(w, "%s wrote %s\n", RenderStatus(true), path)
	}
	return nil
}

// configValidate reports every problem in the config file. It returns the
// validation error so the exit code reflects the result.
func configValidate(w io.Writer, args Args) error {
	path, err := configPath(args)
	if err != nil {
		return NewCommandError(CmdConfig.String(), "validate", "cannot resolve config path", err)
	}
	data := ConfigData{Path: path}
	if _, statErr := os.Stat(path); statErr == nil {
		data.Exists = true
	}

	cfg, loadErr := loadConfig(args)
	if loadErr == nil {
		data.Valid = true
		data.Sliders = len(cfg.Sliders)
		data.Locale = cfg.Display.Locale
	} else {
		var verrs config.ValidateErrors
		if errors.As(loadErr, &verrs) {
			for _, e := range verrs {
				data.Errors = append(data.Errors, e.Error())
			}
		} else {
			data.Errors = []string{loadErr.Error()}
		}
	}

	if args.JSON {
		if err := NewJSONResponse("config validate", data).Write(w); err != nil {
			return err
		}
		return reported(loadErr)
	}

	if !data.Exists {
		fmt.Fprintf(w, "%s %s\n", DimStyle.Render("no config file at"), path)
	}
	if data.Valid {
		fmt.Fprintf(w, "%s %d sliders\n", RenderStatus(true), data.Sliders)
		return nil
	}
	for _, msg := range data.Errors {
		fmt.Fprintf(w, "%s %s\n", RenderStatus(false), msg)
	}
	return reported(loadErr)
}
