package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reload is a freshly parsed config, or the error that prevented it
type Reload struct {
	Config *GameConfig
	Err    error
}

// Watcher re-parses a tuning file whenever it changes on disk.
// The directory is watched rather than the file so editors that replace
// the file on save keep producing events.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Reloads chan Reload
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the tuning file at path
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Reloads: make(chan Reload, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes Reloads
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Reloads)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
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
			// Editors write in bursts; parse once the file has settled.
			debounce.Reset(100 * time.Millisecond)
		case <-debounce.C:
			cfg, err := NewLoader(filepath.Dir(w.path)).LoadFile(filepath.Base(w.path))
			w.publish(Reload{Config: cfg, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.publish(Reload{Err: err})
		case <-w.closeCh:
			debounce.Stop()
			return
		}
	}
}

// publish drops the reload when the consumer is behind; a later write
// produces a fresh one.
func (w *Watcher) publish(r Reload) {
	select {
	case w.Reloads <- r:
	case <-w.closeCh:
	default:
	}
}
