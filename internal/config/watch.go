// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// Watcher reloads a configuration file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself so that
// atomic saves (write to temp file, rename over) are seen.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	limiter *rate.Limiter
	logger  *log.Logger
}

// NewWatcher creates a watcher for path, creating its directory if needed so
// a config written later is picked up. Reloads are limited to one per
// interval with the given burst; a zero interval disables the limit.
func NewWatcher(path string, interval time.Duration, burst int, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	if burst < 1 {
		burst = 1
	}

	return &Watcher{
		path:    abs,
		watcher: fw,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run blocks until ctx is cancelled, calling onChange with the freshly
// loaded configuration (or the load error) after every change. Events that
// arrive while waiting for the rate limiter are folded into one reload.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config, error)) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Printf("config event: %s", event)

			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}
			w.drain()

			cfg, err := LoadFromPath(w.path)
			if err != nil {
				w.logger.Printf("reload failed: %v", err)
			} else {
				w.logger.Printf("reloaded %s (%d sliders)", w.path, len(cfg.Sliders))
			}
			onChange(cfg, err)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Printf("watch error: %v", err)
		}
	}
}

// relevant reports whether event changed the watched file's content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// drain discards queued events so one burst of writes causes one reload.
func (w *Watcher) drain() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Printf("config event (coalesced): %s", event)
		default:
			return
		}
	}
}

// Close stops the watcher. Run returns once it notices.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
