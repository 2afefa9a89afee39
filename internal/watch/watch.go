// Package watch notices external edits to the current scene document so the
// editor can re-import it. Events are debounced and buffered; the main loop
// drains them once per frame, which keeps imports single-flight.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce suppresses duplicate events for the same file (editors often write
// a file several times in quick succession).
const debounce = 100 * time.Millisecond

// Watcher watches one file for writes. The file's directory is watched rather
// than the file itself so atomic save (write temp + rename) is still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string // cleaned absolute-ish path of the watched file
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given file for changes.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	cleaned := filepath.Clean(path)
	if err := w.Add(filepath.Dir(cleaned)); err != nil {
		_ = w.Close()
		return nil, err
	}
	watcher := &Watcher{
		watcher: w,
		path:    cleaned,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run forwards matching events until Close. Events and Errors are closed here
// so a send can never race a close.
func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			default:
				// A change is already pending; the next drain re-reads the file anyway.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
