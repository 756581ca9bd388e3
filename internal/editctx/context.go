package editctx

import "github.com/worldforge/editorcore/internal/world"

// Context is the target every Edit's Apply/Revert mutates: the World
// itself plus the transient placement state described in §4.3 (the
// creation entity and its ancillary metadata, which is not part of the
// World until the placement is committed by an Insert edit).
type Context struct {
	World *world.World

	Creation CreationEntity

	// EulerRotation mirrors the creation entity's orientation in the
	// editor's rotation widget while placement is in progress; it is
	// applied to the entity's actual rotation field only on commit.
	EulerRotation world.Vector3
}

// New returns a Context bound to w with no creation entity in progress.
func New(w *world.World) *Context {
	return &Context{World: w}
}

// ClearCreation resets the creation entity to the absent state,
// discarding any in-progress placement.
func (c *Context) ClearCreation() {
	c.Creation = CreationEntity{}
	c.EulerRotation = world.Vector3{}
}
