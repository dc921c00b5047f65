package store

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reports writes to the document at path on the returned channel,
// coalescing bursts into at most one pending event. stop closes the watcher
// and the channel.
func Watch(path string) (events <-chan struct{}, stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Watch the directory: editors and sqlite replace files rather than
	// writing in place, which drops a watch on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	ch := make(chan struct{}, 1)
	base := filepath.Base(path)
	go func() {
		defer close(ch)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return ch, w.Close, nil
}
