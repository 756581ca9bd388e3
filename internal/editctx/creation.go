// Package editctx defines EditContext, the target every Edit mutates:
// a World plus the in-progress "creation entity" the user is placing
// (§4.3).
package editctx

import "github.com/worldforge/editorcore/internal/world"

// CreationKind tags which variant, if any, a CreationEntity currently
// holds.
type CreationKind uint8

const (
	CreationNone CreationKind = iota
	CreationObject
	CreationPath
	CreationRegion
	CreationSector
	CreationPortal
	CreationBarrier
	CreationBoundary
	CreationMeasurement
	CreationEntityGroup
)

// EntityGroup is a lightweight multi-entity placement (e.g. pasting a
// prefab) that does not correspond to a single World entity kind.
type EntityGroup struct {
	Name    string
	Objects []world.Object
}

// CreationEntity is the tagged union described in §4.3 and §9 ("already
// conceptually a sum type; make it explicit with a tag per entity kind
// plus an absent state"). Exactly one of the typed fields is
// meaningful, selected by Kind; CreationNone means no creation entity
// is in progress.
type CreationEntity struct {
	Kind CreationKind

	Object      world.Object
	Path        world.Path
	Region      world.Region
	Sector      world.Sector
	Portal      world.Portal
	Barrier     world.Barrier
	Boundary    world.Boundary
	Measurement world.Measurement
	Group       EntityGroup
}

// IsPresent reports whether a creation entity is currently set.
func (c CreationEntity) IsPresent() bool { return c.Kind != CreationNone }
