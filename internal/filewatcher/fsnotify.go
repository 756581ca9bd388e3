package filewatcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher recursively watches one root directory using fsnotify,
// auto-watching newly created subdirectories and reporting an overflow
// flag instead of fatally erroring when its event buffer fills.
type Watcher struct {
	mu sync.RWMutex

	fsw    *fsnotify.Watcher
	root   string
	paths  map[string]struct{}
	ignore *IgnorePatterns

	events chan Event

	overflow    unknownChangesFlag
	totalEvents atomic.Int64
	overflows   atomic.Int64
	startTime   time.Time

	closed  atomic.Bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New starts watching root recursively. The returned Watcher stops
// when ctx is cancelled or Close is called, whichever comes first.
func New(ctx context.Context, root string, cfg Config) (*Watcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	bufSize := cfg.BufferSize
	if bufSize <= 0 {
		bufSize = 256
	}

	w := &Watcher{
		fsw:       fsw,
		root:      absRoot,
		paths:     make(map[string]struct{}),
		ignore:    NewIgnorePatterns(cfg.IgnorePatterns),
		events:    make(chan Event, bufSize),
		startTime: time.Now(),
		closeCh:   make(chan struct{}),
	}

	if err := w.watchRecursive(absRoot); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.run(ctx)

	return w, nil
}

// Events returns the channel of file change notifications. It is
// closed when the watcher stops.
func (w *Watcher) Events() <-chan Event { return w.events }

// UnknownChangesOverflowed reports and clears the overflow flag: true
// means at least one event was dropped because the buffer was full,
// and the caller should treat its view of the watched tree as stale
// and rescan rather than trust individual Events going forward.
func (w *Watcher) UnknownChangesOverflowed() bool { return w.overflow.TakeAndClear() }

// Close stops the watcher and releases the underlying fsnotify handle.
func (w *Watcher) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(w.closeCh)
	w.wg.Wait()
	close(w.events)
	return w.fsw.Close()
}

// Stats reports current watcher status.
func (w *Watcher) Stats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return Stats{
		WatchedDirs:   len(w.paths),
		PendingEvents: len(w.events),
		TotalEvents:   w.totalEvents.Load(),
		Overflows:     w.overflows.Load(),
		StartTime:     w.startTime,
	}
}

func (w *Watcher) watchRecursive(dir string) error {
	return filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(w.root, p)
		if relErr == nil && rel != "." && w.ignore.Match(rel, true) {
			return filepath.SkipDir
		}

		w.mu.Lock()
		_, already := w.paths[p]
		if !already {
			w.paths[p] = struct{}{}
		}
		w.mu.Unlock()
		if already {
			return nil
		}
		return w.fsw.Add(p)
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// fsnotify-internal errors (e.g. a watch descriptor the OS
			// dropped) are surfaced the same way a dropped event is:
			// as an instruction to rescan, not a fatal condition.
			w.overflow.Set()
			w.overflows.Add(1)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	op := convertOp(ev.Op)
	if op == 0 {
		return
	}

	rel, err := filepath.Rel(w.root, ev.Name)
	isDir := op&OpCreate != 0 && isDirectory(ev.Name)
	if err == nil && w.ignore.Match(rel, isDir) {
		return
	}

	if op&OpCreate != 0 && isDir {
		_ = w.watchRecursive(ev.Name)
	}
	if op&OpRemove != 0 {
		w.mu.Lock()
		delete(w.paths, ev.Name)
		w.mu.Unlock()
	}

	select {
	case w.events <- Event{Path: ev.Name, Op: op, Timestamp: time.Now()}:
		w.totalEvents.Add(1)
	default:
		w.overflow.Set()
		w.overflows.Add(1)
	}
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func convertOp(op fsnotify.Op) Op {
	var out Op
	if op.Has(fsnotify.Create) {
		out |= OpCreate
	}
	if op.Has(fsnotify.Write) {
		out |= OpWrite
	}
	if op.Has(fsnotify.Remove) {
		out |= OpRemove
	}
	if op.Has(fsnotify.Rename) {
		out |= OpRename
	}
	if op.Has(fsnotify.Chmod) {
		out |= OpChmod
	}
	return out
}
