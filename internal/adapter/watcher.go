package adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/bracemend/internal/model"
)

// Watcher reports changes to a fixed set of files.
type Watcher interface {
	// Watch blocks until ctx is cancelled, calling onChange for every write
	// to one of files. It returns nil on cancellation.
	Watch(ctx context.Context, files []m.Path, onChange func(m.Path)) error
}

// FSNotifyWatcher implements Watcher with fsnotify.
type FSNotifyWatcher struct{}

// NewFSNotifyWatcher constructs an FSNotifyWatcher.
func NewFSNotifyWatcher() *FSNotifyWatcher {
	return &FSNotifyWatcher{}
}

// Watch subscribes to the parent directories of files rather than the files
// themselves: editors often save through rename, which drops a file-level watch.
func (w *FSNotifyWatcher) Watch(ctx context.Context, files []m.Path, onChange func(m.Path)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() {
		_ = watcher.Close()
	}()

	wanted := make(map[string]struct{}, len(files))
	dirs := make(map[string]struct{})

	for _, file := range files {
		path := filepath.Clean(string(file))
		wanted[path] = struct{}{}
		dirs[filepath.Dir(path)] = struct{}{}
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			path := filepath.Clean(event.Name)
			if _, ok := wanted[path]; ok {
				onChange(m.Path(path))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch: %w", err)
		}
	}
}
