package bindings

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/binding"
)

// DefaultDebounce is used when a watcher is created with a non-positive delay.
const DefaultDebounce = 100 * time.Millisecond

// ErrWatcherClosed is returned by operations on a closed watcher.
var ErrWatcherClosed = errors.New("watcher closed")

// Reload is published each time the watched file changes. Err is set when
// the file could not be loaded; Contexts and Diagnostics are then empty
// and the previous bindings should be kept.
type Reload[A action.Action, C comparable] struct {
	Contexts    []binding.Context[A, C]
	Diagnostics []Diagnostic
	Err         error
}

// Watcher reloads a bindings file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file on save are still observed.
type Watcher[A action.Action, C comparable] struct {
	loader *Loader[A, C]
	path   string
	format Format
	delay  time.Duration

	fsw     *fsnotify.Watcher
	reloads chan Reload[A, C]

	mu       sync.Mutex
	timer    *time.Timer
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// Watch starts watching path. Changes are coalesced for delay before the
// file is reloaded.
func (l *Loader[A, C]) Watch(path string, format Format, delay time.Duration) (*Watcher[A, C], error) {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(filepath.Dir(abs)); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher[A, C]{
		loader:  l,
		path:    abs,
		format:  format,
		delay:   delay,
		fsw:     fsw,
		reloads: make(chan Reload[A, C], 1),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Reloads returns the channel of reload results. It is closed by Close.
func (w *Watcher[A, C]) Reloads() <-chan Reload[A, C] {
	return w.reloads
}

// Path returns the absolute path being watched.
func (w *Watcher[A, C]) Path() string {
	return w.path
}

// Close stops the watcher. Pending reloads are discarded.
func (w *Watcher[A, C]) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	w.closedWg.Wait()
	close(w.reloads)
	return err
}

func (w *Watcher[A, C]) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.loader.logger.Warn("bindings watcher error", "path", w.path, "error", err)
		}
	}
}

// schedule (re)starts the debounce timer.
func (w *Watcher[A, C]) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Reset(w.delay)
		return
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

func (w *Watcher[A, C]) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.closedWg.Add(1)
	w.mu.Unlock()
	defer w.closedWg.Done()

	var r Reload[A, C]
	res, err := w.loader.LoadFileFormat(w.path, w.format)
	if err != nil {
		w.loader.logger.Warn("bindings reload failed", "path", w.path, "error", err)
		r.Err = err
	} else {
		w.loader.logger.Info("bindings reloaded", "path", w.path, "contexts", len(res.Contexts))
		r.Contexts = res.Contexts
		r.Diagnostics = res.Diagnostics
	}

	select {
	case w.reloads <- r:
	case <-w.closeCh:
	}
}
