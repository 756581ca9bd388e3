// Package asset implements the AssetLibrary<T> described in §4.4-4.6:
// an async, reference-counted, content-addressed cache over named
// files on disk, fed by internal/filewatcher and consumed through
// AssetRef handles.
package asset

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Logger is the minimal logging surface AssetLibrary needs. It is
// defined here rather than imported from internal/editorlog so this
// package stays dependency-free of the ambient logging stack; any
// type with this method set (editorlog.Logger included) satisfies it.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Warn(string, map[string]any)  {}

// Loader loads and parses the asset at path, also returning the raw
// bytes read so the library can content-hash them. Callers typically
// build this over ReadBinary or ReadText plus a format-specific parse
// step.
type Loader[T any] func(path string) (value *T, raw []byte, err error)

// Stats reports AssetLibrary activity for diagnostics/logging,
// mirroring the teacher's habit of exposing a Stats struct on every
// long-lived subsystem (AsyncDispatcher, filewatcher.Watcher).
type Stats struct {
	Known   int
	Pending int
	Cached  int
	Loaded  uint64
	Failed  uint64
}

// Library is the generic AssetLibrary<T>: name -> path registry,
// lazy/async loading with at-most-one-concurrent-load-per-name, a
// weak/strong cache, and a load-event broadcast drained only from
// Tick.
type Library[T any] struct {
	loader Loader[T]
	pool   *LoadPool
	tree   *Tree
	log    Logger

	mu      sync.RWMutex
	known   map[string]string          // name -> source path
	pending map[string]struct{}        // names with a load in flight
	cached  map[string]*AssetState[T]  // name -> last loaded state (nil = known-absent)
	refs    map[string]*atomic.Int64   // name -> shared ref count

	queueMu sync.Mutex
	queue   []LoadEvent[T]

	listenMu   sync.RWMutex
	listeners  map[ListenerHandle]func(LoadEvent[T])
	nextHandle atomic.Uint64

	loaded atomic.Uint64
	failed atomic.Uint64
}

// LibraryOption configures a Library at construction time.
type LibraryOption[T any] func(*Library[T])

// WithLogger attaches a logger for routine cache/reload activity.
func WithLogger[T any](l Logger) LibraryOption[T] {
	return func(lib *Library[T]) { lib.log = l }
}

// NewLibrary creates a Library over loader, scheduling load tasks onto
// pool. pool must already be Start'd by the caller (it is typically
// shared across several libraries).
func NewLibrary[T any](loader Loader[T], pool *LoadPool, opts ...LibraryOption[T]) *Library[T] {
	lib := &Library[T]{
		loader:    loader,
		pool:      pool,
		tree:      NewTree(),
		log:       nopLogger{},
		known:     make(map[string]string),
		pending:   make(map[string]struct{}),
		cached:    make(map[string]*AssetState[T]),
		refs:      make(map[string]*atomic.Int64),
		listeners: make(map[ListenerHandle]func(LoadEvent[T])),
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// stemName derives an asset's case-folded name from its path: the
// file name with its extension stripped.
func stemName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return strings.ToLower(base)
}

// Add registers or re-registers path under its stem name. An asset
// already cached under that name is scheduled for reload; one already
// loading is left alone — the new path supersedes it once the
// in-flight load completes.
func (lib *Library[T]) Add(path string) {
	name := stemName(path)

	lib.mu.Lock()
	lib.known[name] = path
	_, isPending := lib.pending[name]
	_, isCached := lib.cached[name]
	lib.mu.Unlock()

	lib.tree.Add(path)

	if !isPending && isCached {
		lib.scheduleLoad(name, path)
	}
}

// Remove marks name (derived from path) as not existing and broadcasts
// a load event with a nil value so subscribers drop their references.
func (lib *Library[T]) Remove(path string) {
	name := stemName(path)

	lib.mu.Lock()
	delete(lib.known, name)
	lib.cached[name] = nil
	lib.mu.Unlock()

	lib.tree.Remove(path)
	lib.enqueueEvent(LoadEvent[T]{Name: name})
}

// Acquire returns a ref to name. Reference counting is atomic and
// shared across every ref acquired for the same name. A name with no
// registered path still gets a counted (non-empty) ref; GetIf returns
// no data for it until a path with that stem is added and loaded.
func (lib *Library[T]) Acquire(name string) AssetRef[T] {
	name = strings.ToLower(name)

	lib.mu.Lock()
	counter, ok := lib.refs[name]
	if !ok {
		counter = &atomic.Int64{}
		lib.refs[name] = counter
	}
	lib.mu.Unlock()

	counter.Add(1)
	return AssetRef[T]{name: name, counter: counter}
}

// GetIf returns the live cached value for ref if one exists. If the
// value isn't cached (or has been collected), it schedules a load —
// at most one in flight per name — and returns false. The caller is
// expected to poll again or listen for the load event.
func (lib *Library[T]) GetIf(ref AssetRef[T]) (AssetData[T], bool) {
	if ref.IsEmpty() {
		return AssetData[T]{}, false
	}
	name := ref.name

	lib.mu.RLock()
	state, hasState := lib.cached[name]
	path, known := lib.known[name]
	_, isPending := lib.pending[name]
	lib.mu.RUnlock()

	if hasState && state != nil {
		if v := state.Value(); v != nil {
			return AssetData[T]{Value: v, Digest: state.Digest, LoadedAt: state.LoadedAt}, true
		}
	}

	if known && !isPending {
		lib.scheduleLoad(name, path)
	}
	return AssetData[T]{}, false
}

// ListenForLoads registers cb to run (from Tick) on every completed
// load attempt. Call Unlisten with the returned handle to stop.
func (lib *Library[T]) ListenForLoads(cb func(LoadEvent[T])) ListenerHandle {
	h := ListenerHandle(lib.nextHandle.Add(1))
	lib.listenMu.Lock()
	lib.listeners[h] = cb
	lib.listenMu.Unlock()
	return h
}

// Unlisten unsubscribes a listener previously returned by
// ListenForLoads.
func (lib *Library[T]) Unlisten(h ListenerHandle) {
	lib.listenMu.Lock()
	delete(lib.listeners, h)
	lib.listenMu.Unlock()
}

// Tick drains the broadcast queue and invokes every listener for each
// queued event, in completion order. It must only be called from the
// owning thread (§4.4: "a consumer drains the queue from a well-known
// tick function to avoid executing subscriber callbacks on worker
// threads").
func (lib *Library[T]) Tick() int {
	lib.queueMu.Lock()
	batch := lib.queue
	lib.queue = nil
	lib.queueMu.Unlock()

	if len(batch) == 0 {
		return 0
	}

	lib.listenMu.RLock()
	cbs := make([]func(LoadEvent[T]), 0, len(lib.listeners))
	for _, cb := range lib.listeners {
		cbs = append(cbs, cb)
	}
	lib.listenMu.RUnlock()

	for _, ev := range batch {
		for _, cb := range cbs {
			cb(ev)
		}
	}
	return len(batch)
}

// EvictUnreferenced clears the strong hold on every cached entry whose
// ref count has dropped to zero, making it eligible for collection
// through its weak pointer. It never forces eviction of an entry still
// referenced (§4.5).
func (lib *Library[T]) EvictUnreferenced() {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	for name, state := range lib.cached {
		if state == nil {
			continue
		}
		counter, ok := lib.refs[name]
		if ok && counter.Load() > 0 {
			continue
		}
		state.strong = nil
	}
}

// Stats reports known/pending/cached counts and cumulative load
// outcomes.
func (lib *Library[T]) Stats() Stats {
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	return Stats{
		Known:   len(lib.known),
		Pending: len(lib.pending),
		Cached:  len(lib.cached),
		Loaded:  lib.loaded.Load(),
		Failed:  lib.failed.Load(),
	}
}

// Tree returns the directory tree mirroring every known asset path,
// for an asset browser UI.
func (lib *Library[T]) Tree() *Tree { return lib.tree }

func (lib *Library[T]) scheduleLoad(name, path string) {
	lib.mu.Lock()
	if _, already := lib.pending[name]; already {
		lib.mu.Unlock()
		return
	}
	lib.pending[name] = struct{}{}
	lib.mu.Unlock()

	taskID := uuid.New()
	err := lib.pool.Enqueue(func() { lib.runLoad(taskID, name, path) })
	if err != nil {
		lib.mu.Lock()
		delete(lib.pending, name)
		lib.mu.Unlock()
		lib.log.Warn("asset load not scheduled", map[string]any{
			"task_id": taskID.String(),
			"name":    name,
			"path":    path,
			"error":   err.Error(),
		})
	}
}

func (lib *Library[T]) runLoad(taskID uuid.UUID, name, path string) {
	value, raw, loadErr := lib.loader(path)

	lib.mu.Lock()
	currentPath, stillKnown := lib.known[name]
	delete(lib.pending, name)

	if stillKnown && currentPath != path {
		lib.mu.Unlock()
		lib.scheduleLoad(name, currentPath)
		return
	}

	var ev LoadEvent[T]
	ev.Name = name

	if loadErr != nil || !stillKnown {
		lib.cached[name] = nil
		lib.failed.Add(1)
		lib.mu.Unlock()

		ev.Err = loadErr
		if stillKnown {
			lib.log.Warn("asset load failed", map[string]any{
				"task_id": taskID.String(),
				"name":    name,
				"path":    path,
				"error":   fmt.Sprintf("%v", loadErr),
			})
		}
		lib.enqueueEvent(ev)
		return
	}

	digest := Sum(raw)
	if prev := lib.cached[name]; prev != nil && prev.Digest == digest && prev.Value() != nil {
		// Touched but unchanged: keep the cached state, skip the broadcast.
		lib.loaded.Add(1)
		lib.mu.Unlock()
		return
	}
	state := newAssetState(value, digest, time.Now())
	lib.cached[name] = state
	lib.loaded.Add(1)
	lib.mu.Unlock()

	lib.log.Debug("asset loaded", map[string]any{
		"task_id": taskID.String(),
		"name":    name,
		"path":    path,
		"bytes":   humanize.Bytes(uint64(len(raw))),
	})

	ev.Data = AssetData[T]{Value: value, Digest: digest, LoadedAt: state.LoadedAt}
	lib.enqueueEvent(ev)
}

func (lib *Library[T]) enqueueEvent(ev LoadEvent[T]) {
	lib.queueMu.Lock()
	lib.queue = append(lib.queue, ev)
	lib.queueMu.Unlock()
}
