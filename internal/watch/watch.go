// Package watch reloads a roster file when it changes on disk.
package watch

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tessro/dialogcoach/internal/roster"
)

// DefaultDebounce collapses the burst of events most editors emit for one save.
const DefaultDebounce = 50 * time.Millisecond

// ErrNotAFile is returned when the watched path is a directory.
var ErrNotAFile = errors.New("roster path is a directory")

// Watcher watches a single roster file. It watches the parent directory
// so editors that save by rename are still noticed.
type Watcher struct {
	path     string
	name     string
	watcher  *fsnotify.Watcher
	debounce time.Duration

	onChange func(*roster.Dataset)
	onError  func(error)

	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a watcher for path. onChange receives every successfully
// loaded and validated dataset; onError receives load and watch errors.
// Either callback may be nil.
func New(path string, onChange func(*roster.Dataset), onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrNotAFile
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return &Watcher{
		path:     abs,
		name:     filepath.Base(abs),
		watcher:  fw,
		debounce: DefaultDebounce,
		onChange: onChange,
		onError:  onError,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// SetDebounce changes the debounce window. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		err = w.watcher.Close()
	})
	return err
}

// Done is closed when the watch loop has exited.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) loop() {
	defer close(w.done)

	timer := time.NewTimer(0)
	<-timer.C
	pending := false

	for {
		select {
		case <-w.stopCh:
			timer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			timer.Reset(w.debounce)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("watch: fsnotify error", "path", w.path, "error", err)
			w.reportError(err)
		}
	}
}

func (w *Watcher) reload() {
	d, err := roster.Load(w.path)
	if err != nil {
		// Rename-based saves briefly leave no file behind; the Create that
		// follows triggers another reload.
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		slog.Warn("watch: reload failed", "path", w.path, "error", err)
		w.reportError(err)
		return
	}
	slog.Info("watch: roster reloaded", "path", w.path, "coaches", len(d.Coaches))
	if w.onChange != nil {
		w.onChange(d)
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
