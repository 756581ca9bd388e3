// Package objectclass implements ObjectClassLibrary (§4.6): the
// composite asset behind an Object's class_name, combining a parsed
// definition with a mesh behind one refcounted handle. Textures are
// not loaded by this package's Library.
package objectclass

import "github.com/worldforge/editorcore/internal/asset"

// Definition is the parsed ODF document: a flat property bag plus the
// mesh/texture stems it names. Library does not resolve MeshName or
// Textures into asset acquisitions.
type Definition struct {
	Properties map[string]string
	MeshName   string
	Textures   []string
}

// Mesh is the loaded geometry behind a Definition's mesh reference.
type Mesh struct {
	Raw []byte
}

// Texture is one loaded texture behind a Definition's texture list.
type Texture struct {
	Raw []byte
}

// ObjectClass is the resolved, patchable record behind a handle:
// whatever of its definition/mesh has loaded so far. Library never
// fills Textures.
type ObjectClass struct {
	Name     string
	Def      *Definition
	Mesh     *Mesh
	Textures []*Texture
}

// Handle is an ObjectClassHandle: an opaque reference into a Library's
// slot table. The zero value, NullHandle, is shared by empty class
// names and by acquisitions that overflowed a slot's saturated
// refcount.
type Handle uint32

// NullHandle is the shared handle for "no class" and for acquisitions
// past a slot's refcount ceiling.
const NullHandle Handle = 0

// asset.Loader[Definition] parses raw ODF bytes into a Definition and
// is supplied by the caller; DefaultOdfLoader (loaders.go) is a
// flat "key = value" parser. Mesh/Texture loaders are typically built
// over asset.ReadBinary.
