package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchSettle is how long the file must be quiet before it is reloaded.
// Editors often write a file in several steps.
const watchSettle = 200 * time.Millisecond

// Watch reloads the configuration file at path whenever it changes and
// hands every valid result to onChange. Invalid files are logged and
// skipped; the previous configuration stays in effect.
//
// The directory containing path is watched rather than the file itself so
// that editors replacing the file by rename are followed.
//
// Watch blocks until ctx is cancelled. Returns an error if the watcher
// cannot be set up.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(*Config)) error {
	if logger == nil {
		logger = slog.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching config", "path", abs)

	settle := time.NewTimer(watchSettle)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("config changed", "op", event.Op.String())
			settle.Reset(watchSettle)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("config watcher error", "error", err)

		case <-settle.C:
			cfg, err := Load(abs)
			if err != nil {
				logger.Error("config reload rejected", "path", abs, "error", err)
				continue
			}
			onChange(cfg)
		}
	}
}
