package tui

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileChangedMsg is sent when the tasks file changes on disk.
type FileChangedMsg struct{}

// Watcher watches the tasks file for external changes.
// It watches the containing directory since the file itself is
// replaced on every save and may not exist yet.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
}

// NewWatcher starts watching the given tasks file.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	base := filepath.Base(path)
	go w.run(base)

	return w, nil
}

// run forwards relevant filesystem events onto the changes channel.
func (w *Watcher) run(base string) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			// Coalesce: one pending notification is enough.
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Changes returns the channel signaling file changes.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
