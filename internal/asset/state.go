package asset

import (
	"time"
	"weak"
)

// AssetState is the cached record behind one known asset name: a
// content digest, a load timestamp, and the loaded value itself. The
// value is reachable two ways — strongly, while strong is set, and
// weakly via the runtime/weak pointer once strong has been cleared by
// EvictUnreferenced. A ref count hitting zero only makes an entry
// eligible for that clearing; it never forces it (§4.5's "never
// forces eviction").
type AssetState[T any] struct {
	Digest   Digest
	LoadedAt time.Time

	strong *T
	weak   weak.Pointer[T]
}

func newAssetState[T any](value *T, digest Digest, loadedAt time.Time) *AssetState[T] {
	return &AssetState[T]{
		Digest:   digest,
		LoadedAt: loadedAt,
		strong:   value,
		weak:     weak.Make(value),
	}
}

// Value returns the cached value if it is still live, or nil if it
// has been evicted and reclaimed by the garbage collector.
func (s *AssetState[T]) Value() *T {
	if s == nil {
		return nil
	}
	if s.strong != nil {
		return s.strong
	}
	return s.weak.Value()
}

// AssetData is the snapshot GetIf hands back: the live value plus the
// metadata recorded at load time.
type AssetData[T any] struct {
	Value    *T
	Digest   Digest
	LoadedAt time.Time
}
