package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted each time the watched catalog file changes. Exactly one of
// Catalog or Err is set.
type Event struct {
	Path    string
	Catalog *Catalog
	Err     error
	Time    time.Time
}

// Watcher reloads a catalog file whenever it changes on disk.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher creates a watcher for the catalog file at path. The parent
// directory is watched so editors that replace the file atomically are
// still noticed.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		watcher:  fsw,
		debounce: 100 * time.Millisecond,
	}, nil
}

// Watch starts watching and returns a channel of reload events.
// Cancelling the context stops watching. The returned channel is closed
// when the context is cancelled or the underlying watcher shuts down.
func (w *Watcher) Watch(ctx context.Context) <-chan Event {
	out := make(chan Event, 8)

	go func() {
		defer close(out)

		// Coalesce bursts of writes into a single reload.
		debounceTimer := time.NewTimer(0)
		if !debounceTimer.Stop() {
			<-debounceTimer.C
		}
		pending := false

		for {
			select {
			case <-ctx.Done():
				debounceTimer.Stop()
				return

			case ev, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != w.path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				pending = true
				debounceTimer.Reset(w.debounce)

			case <-debounceTimer.C:
				if !pending {
					continue
				}
				pending = false
				event := Event{Path: w.path, Time: time.Now()}
				event.Catalog, event.Err = LoadFile(w.path)
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				select {
				case out <- Event{Path: w.path, Err: err, Time: time.Now()}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching and cleans up resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
