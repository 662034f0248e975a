package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when closing a watcher twice.
var ErrWatcherClosed = errors.New("watcher is closed")

// ReloadFunc receives the reloaded settings, or the error that stopped
// the reload. It runs on the watcher goroutine.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads a config file when it changes.
type Watcher struct {
	mu sync.Mutex

	path     string
	opts     *options
	fsw      *fsnotify.Watcher
	onReload ReloadFunc
	logger   *slog.Logger

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// Watch starts watching path and calls onReload after each change.
//
// The parent directory is watched rather than the file so that editors
// which save by renaming a temporary file are seen too.
func Watch(path string, onReload ReloadFunc, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	o := newOptions(opts)
	w := &Watcher{
		path:     absPath,
		opts:     o,
		fsw:      fsw,
		onReload: onReload,
		logger:   o.logger.With("component", "config", "path", absPath),
		closeCh:  make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching and waits for the watcher goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.fsw.Close()
}

// processLoop handles incoming fsnotify events. Bursts of events are
// collapsed into one reload after the debounce delay.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("config file changed", "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.opts.debounce)
			} else {
				timer.Reset(w.opts.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "err", err)

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	cfg, err := load(w.path, w.opts)
	if err != nil {
		w.logger.Warn("config reload failed", "err", err)
	} else {
		w.logger.Info("config reloaded")
	}
	if w.onReload != nil {
		w.onReload(cfg, err)
	}
}
