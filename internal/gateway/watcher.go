package gateway

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the SQLite database file for writes by other processes
// so the calendar can refetch instead of rendering stale state. Events are
// debounced: a burst of writes (sqlite touches the db and its -wal
// sidecar) collapses into one notification.
type Watcher struct {
	Path    string
	Changes <-chan struct{} // Read-only external channel

	changes chan struct{} // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// debounceWindow is how long the watcher waits for a write burst to settle.
const debounceWindow = 500 * time.Millisecond

// NewWatcher creates a watcher for the database at dbPath.
func NewWatcher(dbPath string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan struct{}, 1)
	w := &Watcher{
		Path:    dbPath,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the database's directory. The directory, not the
// file, is watched: sqlite replaces the -wal sidecar rather than rewriting
// one inode in place.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.concernsDB(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case w.changes <- struct{}{}:
			default: // A notification is already pending.
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// concernsDB reports whether a filesystem event path refers to the
// database file or one of its sqlite sidecars.
func (w *Watcher) concernsDB(name string) bool {
	base := filepath.Base(w.Path)
	got := filepath.Base(name)
	return got == base || strings.HasPrefix(got, base+"-")
}
