package throttle

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig watches a config file and sends a freshly parsed Config on
// the returned channel each time the file is written. Parse and
// validation failures (including partial writes) are skipped; the next
// successful load is delivered instead.
//
// A running Throttle's configuration is immutable; the caller decides
// when to swap in a throttle built from an updated config. The channel is
// closed when ctx is cancelled.
//
//	updates, err := throttle.WatchConfig(ctx, "throttle.yaml")
//	for cfg := range updates {
//	    th.Store(cfg.Throttle())
//	}
func WatchConfig(ctx context.Context, path string) (<-chan Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory: more reliable than watching the file directly,
	// and survives editors that replace the file on save.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	base := filepath.Base(path)
	updates := make(chan Config, 1)

	go func() {
		defer close(updates)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				cfg, err := LoadConfig(path)
				if err != nil {
					continue
				}

				select {
				case updates <- cfg:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return updates, nil
}
