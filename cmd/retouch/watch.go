package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/retouch"
)

// debounce collapses the burst of events an editor produces on save.
const debounce = 150 * time.Millisecond

// watcher reports changes to a fixed set of files. It watches their
// directories so files replaced by rename are still seen.
type watcher struct {
	fs      *fsnotify.Watcher
	targets map[string]bool
}

func newWatcher(paths ...string) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	w := &watcher{fs: fw, targets: make(map[string]bool, len(paths))}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch: %w", err)
		}
		w.targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Close stops watching.
func (w *watcher) Close() error {
	return w.fs.Close()
}

// run calls fn after each change to a target until ctx is done. Errors from
// fn are logged and watching continues.
func (w *watcher) run(ctx context.Context, fn func() error) error {
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			retouch.Logger().Debug("watch: change", "file", ev.Name, "op", ev.Op.String())
			pending = time.After(debounce)

		case <-pending:
			pending = nil
			if err := fn(); err != nil {
				retouch.Logger().Warn("watch: render failed", "error", err)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			retouch.Logger().Warn("watch: error", "error", err)
		}
	}
}

func (w *watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	return err == nil && w.targets[abs]
}
