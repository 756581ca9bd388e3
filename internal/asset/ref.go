package asset

import "sync/atomic"

// AssetRef is a handle into an AssetLibrary's state for one name. It
// is safely comparable and hashable (a struct of comparable fields),
// so it can live in sets or map keys, and is usable concurrently from
// multiple goroutines since it only ever touches the atomic counter
// it shares with every other live ref to the same name.
//
// Go has no copy constructors, so unlike the spec's "copy and move
// both preserve the invariant" C++ phrasing, an AssetRef obtained by
// plain assignment does NOT bump the count — only Acquire and Clone
// do. Release must be called exactly once per Acquire/Clone.
type AssetRef[T any] struct {
	name    string
	counter *atomic.Int64
}

// Name returns the asset name this ref was acquired for.
func (r AssetRef[T]) Name() string { return r.name }

// IsEmpty reports whether this is the zero AssetRef, which Acquire
// never returns.
func (r AssetRef[T]) IsEmpty() bool { return r.counter == nil }

// Clone returns a new ref to the same name, incrementing the shared
// count. The returned ref must be Released independently.
func (r AssetRef[T]) Clone() AssetRef[T] {
	if r.counter != nil {
		r.counter.Add(1)
	}
	return r
}

// Release decrements the shared count. It is safe to call on an empty
// ref (a no-op).
func (r AssetRef[T]) Release() {
	if r.counter != nil {
		r.counter.Add(-1)
	}
}

// useCount reports the current live reference count for diagnostics
// and tests; it is not part of the public contract.
func (r AssetRef[T]) useCount() int64 {
	if r.counter == nil {
		return 0
	}
	return r.counter.Load()
}
