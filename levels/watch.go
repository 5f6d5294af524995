package levels

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports .map files that change on disk inside the watched
// directories. A file is reported once it has gone quiet for watchDebounce,
// so a writer that saves in several chunks produces one event after its
// last write.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	settled chan settledFile
	once    sync.Once
}

const watchDebounce = 100 * time.Millisecond

type settledFile struct {
	name string
	seq  uint64
}

type pendingFile struct {
	timer *time.Timer
	seq   uint64
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
		settled: make(chan settledFile),
	}
	go watcher.run()
	return watcher, nil
}

// Add starts watching another directory.
func (w *Watcher) Add(dir string) error {
	return w.watcher.Add(dir)
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	pending := make(map[string]pendingFile)
	defer func() {
		for _, p := range pending {
			p.timer.Stop()
		}
	}()
	var seq uint64

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isMapFile(event.Name) {
				continue
			}
			if p, ok := pending[event.Name]; ok {
				p.timer.Stop()
			}
			seq++
			fired := settledFile{name: event.Name, seq: seq}
			pending[event.Name] = pendingFile{
				seq: seq,
				timer: time.AfterFunc(watchDebounce, func() {
					select {
					case w.settled <- fired:
					case <-w.closeCh:
					}
				}),
			}
		case f := <-w.settled:
			// a timer that fired while being replaced is stale
			if p, ok := pending[f.name]; !ok || p.seq != f.seq {
				continue
			}
			delete(pending, f.name)
			select {
			case w.Events <- f.name:
			case <-w.closeCh:
				return
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

func isMapFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}
