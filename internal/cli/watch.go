// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jeranaias/slidertip/internal/config"
)

// HandleWatch prints the marks of the configured sliders and prints them
// again every time the config file changes, until ctx is cancelled.
func HandleWatch(ctx context.Context, w io.Writer, args Args) error {
	logger := newLogger(args)

	path, err := configPath(args)
	if err != nil {
		return NewCommandError(CmdWatch.String(), "start", "cannot resolve config path", err)
	}
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if err := renderWatch(w, cfg, args); err != nil {
		return err
	}

	interval := time.Duration(cfg.Watch.IntervalMillis) * time.Millisecond
	watcher, err := config.NewWatcher(path, interval, cfg.Watch.Burst, logger)
	if err != nil {
		return NewCommandError(CmdWatch.String(), "start", "cannot watch config file", err)
	}
	logger.Printf("watching %s", watcher.Path())
	if !args.JSON && !args.Quiet {
		fmt.Fprintln(w, DimStyle.Render("watching "+watcher.Path()+" (Ctrl+C to stop)"))
	}

	return watcher.Run(ctx, func(next *config.Config, err error) {
		if err != nil {
			if args.JSON {
				DisplayError(w, err, true, CmdWatch.String())
			} else {
				fmt.Fprintf(w, "%s %v\n", WarningStyle.Render("Warning:"), err)
			}
			return
		}
		config.SetGlobal(next)
		next = next.Clone()
		if args.Locale != "" {
			next.Display.Locale = args.Locale
		}
		if err := renderWatch(w, next, args); err != nil {
			logger.Printf("render failed: %v", err)
		}
	})
}

func renderWatch(w io.Writer, cfg *config.Config, args Args) error {
	data, err := collectMarks(cfg, "")
	if err != nil {
		return err
	}
	if args.JSON {
		return NewJSONResponse(CmdWatch.String(), data).Write(w)
	}
	if !args.Quiet {
		fmt.Fprintln(w, DimStyle.Render(time.Now().Format(time.TimeOnly)))
	}
	renderMarks(w, data, args.Quiet)
	return nil
}
