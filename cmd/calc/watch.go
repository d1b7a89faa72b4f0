package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vito/calc/pkg/calc"
	"github.com/vito/calc/pkg/ioctx"
)

// reloadDelay coalesces the bursts of events editors produce on save.
var reloadDelay = 200 * time.Millisecond

// watchConfig reloads the config at path whenever it changes, until ctx
// is done. The parent directory is watched so that editors which save by
// renaming a temp file over the original are noticed.
func watchConfig(ctx context.Context, path string, reload func(*calc.Config, error)) error {
	logger := ioctx.LoggerFromContext(ctx)

	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to initialize watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	logger.DebugContext(ctx, "watching config", "path", path)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(reloadDelay)
			}

		case <-pending:
			pending = nil
			config, err := calc.LoadConfig(path)
			logger.DebugContext(ctx, "config changed", "path", path, "error", err)
			reload(config, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WarnContext(ctx, "watch error", "error", err)
		}
	}
}
