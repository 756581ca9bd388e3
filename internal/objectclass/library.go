package objectclass

import (
	"strings"
	"sync"

	"github.com/worldforge/editorcore/internal/asset"
)

const defaultMaxRefCount = 1 << 20

type slot struct {
	inUse    bool
	name     string
	refCount uint32
	class    ObjectClass
	odfRef   asset.AssetRef[Definition]
	meshRef  asset.AssetRef[Mesh]
}

// Library is ObjectClassLibrary: a name-keyed, refcounted slot table
// over an ODF definition plus a mesh, backed by two asset.Library
// caches. Both assets are acquired under the class name itself; the
// definition's MeshName and Textures are not resolved into asset
// acquisitions.
type Library struct {
	odfLib  *asset.Library[Definition]
	meshLib *asset.Library[Mesh]

	maxRefCount uint32
	defaultClass ObjectClass

	mu       sync.RWMutex
	slots    []slot
	byName   map[string]Handle
	freeList []Handle
}

// Option configures a Library at construction time.
type Option func(*Library)

// WithMaxRefCount overrides the refcount saturation ceiling (§4.6:
// "a safety belt, not a normal mode").
func WithMaxRefCount(max uint32) Option {
	return func(l *Library) {
		if max > 0 {
			l.maxRefCount = max
		}
	}
}

// NewLibrary builds a Library over the given ODF and mesh asset
// libraries. It registers load listeners on both so that Update can
// patch affected ObjectClass records without re-deriving them.
func NewLibrary(odfLib *asset.Library[Definition], meshLib *asset.Library[Mesh], opts ...Option) *Library {
	l := &Library{
		odfLib:       odfLib,
		meshLib:      meshLib,
		maxRefCount:  defaultMaxRefCount,
		defaultClass: ObjectClass{Name: ""},
		byName:       make(map[string]Handle),
		// slot 0 is reserved for NullHandle and is never allocated.
		slots: []slot{{}},
	}
	for _, opt := range opts {
		opt(l)
	}

	odfLib.ListenForLoads(l.onOdfLoad)
	meshLib.ListenForLoads(l.onMeshLoad)
	return l
}

// Acquire increments the reference count on the slot named className,
// allocating one on first acquisition, acquiring the underlying
// ODF/mesh assets and asking each library for its data (which
// schedules a load when it is not cached yet). An empty name, or a slot whose count
// has already saturated at maxRefCount, returns NullHandle.
//
// Returns a plain uint32 (not Handle) so *Library satisfies
// internal/edit.ClassLibrary without that package importing this
// one's types — Go interface satisfaction is exact on method
// signatures, not just assignable underlying types.
func (l *Library) Acquire(className string) uint32 {
	if className == "" {
		return uint32(NullHandle)
	}
	// Keyed by the same case-folded form asset.Library derives from a
	// file stem, so LoadEvent.Name from odfLib/meshLib always matches
	// a byName entry here.
	key := strings.ToLower(className)

	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.byName[key]; ok {
		s := &l.slots[h]
		if s.refCount >= l.maxRefCount {
			return uint32(NullHandle)
		}
		s.refCount++
		return uint32(h)
	}

	h := l.allocSlotLocked(key)
	s := &l.slots[h]
	s.inUse = true
	s.name = key
	s.refCount = 1
	s.class = ObjectClass{Name: className}
	s.odfRef = l.odfLib.Acquire(className)
	s.meshRef = l.meshLib.Acquire(className)
	if data, ok := l.odfLib.GetIf(s.odfRef); ok {
		s.class.Def = data.Value
	}
	if data, ok := l.meshLib.GetIf(s.meshRef); ok {
		s.class.Mesh = data.Value
	}
	l.byName[key] = h
	return uint32(h)
}

// Release decrements the reference count of handle's slot. At zero, the slot
// is freed for reuse and its underlying asset refs are dropped.
func (l *Library) Release(handle uint32) {
	h := Handle(handle)
	if h == NullHandle {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if int(h) >= len(l.slots) || !l.slots[h].inUse {
		return
	}
	s := &l.slots[h]
	if s.refCount == 0 {
		return
	}
	s.refCount--
	if s.refCount > 0 {
		return
	}

	s.odfRef.Release()
	s.meshRef.Release()
	delete(l.byName, s.name)
	*s = slot{}
	l.freeList = append(l.freeList, h)
}

// Get resolves handle to its ObjectClass, falling back to a fixed
// default when the handle is null or stale.
func (l *Library) Get(handle uint32) ObjectClass {
	h := Handle(handle)
	if h == NullHandle {
		return l.defaultClass
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if int(h) >= len(l.slots) || !l.slots[h].inUse {
		return l.defaultClass
	}
	return l.slots[h].class
}

// Update drains pending load events from the ODF and mesh libraries
// and patches affected ObjectClass records in place. It never changes
// which slot a name maps to, so handles already stored on live
// objects stay valid.
func (l *Library) Update() {
	l.odfLib.Tick()
	l.meshLib.Tick()
}

func (l *Library) allocSlotLocked(name string) Handle {
	if n := len(l.freeList); n > 0 {
		h := l.freeList[n-1]
		l.freeList = l.freeList[:n-1]
		return h
	}
	l.slots = append(l.slots, slot{})
	return Handle(len(l.slots) - 1)
}

func (l *Library) onOdfLoad(ev asset.LoadEvent[Definition]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	h, ok := l.byName[ev.Name]
	if !ok {
		return
	}
	l.slots[h].class.Def = ev.Data.Value
}

func (l *Library) onMeshLoad(ev asset.LoadEvent[Mesh]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	h, ok := l.byName[ev.Name]
	if !ok {
		return
	}
	l.slots[h].class.Mesh = ev.Data.Value
}
