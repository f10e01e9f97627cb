package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDebounce coalesces the burst of events editors emit for one save.
const reloadDebounce = 200 * time.Millisecond

// Watch calls onChange after the file at path is written, created, renamed
// or removed. Bursts of events are debounced into one call. The parent
// directory is watched so editors that replace the file are still seen.
// Watch returns once the watcher is registered; it stops when ctx is done.
func Watch(ctx context.Context, path string, logger *zap.Logger, onChange func()) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("config-watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", zap.Error(err))
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !sameFile(event.Name, path) {
					continue
				}
				logger.Debug("settings event", zap.String("op", event.Op.String()))
				if timer == nil {
					timer = time.NewTimer(reloadDebounce)
					continue
				}
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(reloadDebounce)
			case <-timerChan(timer):
				timer = nil
				onChange()
			}
		}
	}()
	return nil
}

func sameFile(name, path string) bool {
	if name == "" || path == "" {
		return false
	}
	return filepath.Clean(name) == filepath.Clean(path)
}

func timerChan(timer *time.Timer) <-chan time.Time {
	if timer == nil {
		return nil
	}
	return timer.C
}
