package edit

import (
	"fmt"

	"github.com/worldforge/editorcore/internal/editctx"
	"github.com/worldforge/editorcore/internal/world"
)

// PrimitiveMetrics is the editable subset of a PrimitiveShape: its
// placement. AABB is always derived, never part of the edit itself.
type PrimitiveMetrics struct {
	Position world.Vector3
	Rotation world.Quaternion
	Size     world.Vector3
}

// SetBlockCubeMetrics changes one block cube's placement, recomputing
// its AABB and marking it dirty for re-upload on both Apply and
// Revert. Edits on the same Index coalesce, same as a field drag.
type SetBlockCubeMetrics struct {
	Index         int
	Before, After PrimitiveMetrics
}

// NewSetBlockCubeMetrics captures the shape's current metrics.
func NewSetBlockCubeMetrics(ctx *editctx.Context, index int, after PrimitiveMetrics) *SetBlockCubeMetrics {
	s := ctx.World.Blocks.Shapes[index]
	return &SetBlockCubeMetrics{
		Index:  index,
		Before: PrimitiveMetrics{Position: s.Position, Rotation: s.Rotation, Size: s.Size},
		After:  after,
	}
}

func (e *SetBlockCubeMetrics) apply(ctx *editctx.Context, m PrimitiveMetrics) {
	s := &ctx.World.Blocks.Shapes[e.Index]
	s.Position, s.Rotation, s.Size = m.Position, m.Rotation, m.Size
	s.RecomputeAABB()
	ctx.World.Blocks.MarkDirty(e.Index)
}

func (e *SetBlockCubeMetrics) Apply(ctx *editctx.Context)  { e.apply(ctx, e.After) }
func (e *SetBlockCubeMetrics) Revert(ctx *editctx.Context) { e.apply(ctx, e.Before) }

func (e *SetBlockCubeMetrics) IsCoalescable(next Edit) bool {
	other, ok := next.(*SetBlockCubeMetrics)
	return ok && other.Index == e.Index
}

func (e *SetBlockCubeMetrics) Coalesce(_ *editctx.Context, next Edit) {
	e.After = next.(*SetBlockCubeMetrics).After
}

func (e *SetBlockCubeMetrics) Description() string {
	return fmt.Sprintf("Move block cube %d", e.Index)
}
