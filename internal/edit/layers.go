package edit

import (
	"fmt"

	"github.com/worldforge/editorcore/internal/editctx"
	"github.com/worldforge/editorcore/internal/world"
)

// RenameLayer renames the layer at Index and rewrites every
// requirement entry's "test_<oldname>" marker to "test_<newname>"
// (entities.go's RequirementEntry doc comment), so saved
// layer-gating requirements keep pointing at the right layer.
type RenameLayer struct {
	Index      int32
	After      string
	before     string
	rewritten  []int // indices into World.Requirements whose Value was rewritten
}

func NewRenameLayer(index int32, after string) *RenameLayer {
	return &RenameLayer{Index: index, After: after}
}

func (e *RenameLayer) Apply(ctx *editctx.Context) {
	for i := range ctx.World.LayerDescriptions {
		ld := &ctx.World.LayerDescriptions[i]
		if ld.Index != e.Index {
			continue
		}
		e.before = ld.Name
		oldMarker := "test_" + ld.Name
		newMarker := "test_" + e.After
		ld.Name = e.After

		e.rewritten = e.rewritten[:0]
		for j := range ctx.World.Requirements {
			req := &ctx.World.Requirements[j]
			if req.Value == oldMarker {
				req.Value = newMarker
				e.rewritten = append(e.rewritten, j)
			}
		}
		return
	}
}

func (e *RenameLayer) Revert(ctx *editctx.Context) {
	for i := range ctx.World.LayerDescriptions {
		ld := &ctx.World.LayerDescriptions[i]
		if ld.Index != e.Index {
			continue
		}
		ld.Name = e.before
		oldMarker := "test_" + e.before
		for _, j := range e.rewritten {
			if j < len(ctx.World.Requirements) {
				ctx.World.Requirements[j].Value = oldMarker
			}
		}
		return
	}
}

func (e *RenameLayer) IsCoalescable(next Edit) bool {
	other, ok := next.(*RenameLayer)
	return ok && other.Index == e.Index
}
func (e *RenameLayer) Coalesce(_ *editctx.Context, next Edit) {
	e.After = next.(*RenameLayer).After
}
func (e *RenameLayer) Description() string { return fmt.Sprintf("Rename layer %d", e.Index) }

// DeleteWorldReqList removes the requirement entry at Index, stashing
// it for undo.
type DeleteWorldReqList struct {
	Index int
	stash world.RequirementEntry
	found bool
}

func NewDeleteWorldReqList(index int) *DeleteWorldReqList {
	return &DeleteWorldReqList{Index: index}
}

func (e *DeleteWorldReqList) Apply(ctx *editctx.Context) {
	if e.Index < 0 || e.Index >= len(ctx.World.Requirements) {
		e.found = false
		return
	}
	e.stash = ctx.World.Requirements[e.Index]
	e.found = true
	ctx.World.Requirements = append(ctx.World.Requirements[:e.Index], ctx.World.Requirements[e.Index+1:]...)
}

func (e *DeleteWorldReqList) Revert(ctx *editctx.Context) {
	if !e.found {
		return
	}
	if e.Index >= len(ctx.World.Requirements) {
		ctx.World.Requirements = append(ctx.World.Requirements, e.stash)
		return
	}
	ctx.World.Requirements = append(ctx.World.Requirements, world.RequirementEntry{})
	copy(ctx.World.Requirements[e.Index+1:], ctx.World.Requirements[e.Index:])
	ctx.World.Requirements[e.Index] = e.stash
}

func (e *DeleteWorldReqList) IsCoalescable(Edit) bool          { return false }
func (e *DeleteWorldReqList) Coalesce(*editctx.Context, Edit) {}
func (e *DeleteWorldReqList) Description() string {
	return fmt.Sprintf("Delete requirement %d", e.Index)
}

// DeleteAnimationGroup removes the animation group at Index, stashing
// it for undo.
type DeleteAnimationGroup struct {
	Index int
	stash world.AnimationGroup
	found bool
}

func NewDeleteAnimationGroup(index int) *DeleteAnimationGroup {
	return &DeleteAnimationGroup{Index: index}
}

func (e *DeleteAnimationGroup) Apply(ctx *editctx.Context) {
	if e.Index < 0 || e.Index >= len(ctx.World.AnimationGroups) {
		e.found = false
		return
	}
	e.stash = ctx.World.AnimationGroups[e.Index]
	e.found = true
	ctx.World.AnimationGroups = append(ctx.World.AnimationGroups[:e.Index], ctx.World.AnimationGroups[e.Index+1:]...)
}

func (e *DeleteAnimationGroup) Revert(ctx *editctx.Context) {
	if !e.found {
		return
	}
	if e.Index >= len(ctx.World.AnimationGroups) {
		ctx.World.AnimationGroups = append(ctx.World.AnimationGroups, e.stash)
		return
	}
	ctx.World.AnimationGroups = append(ctx.World.AnimationGroups, world.AnimationGroup{})
	copy(ctx.World.AnimationGroups[e.Index+1:], ctx.World.AnimationGroups[e.Index:])
	ctx.World.AnimationGroups[e.Index] = e.stash
}

func (e *DeleteAnimationGroup) IsCoalescable(Edit) bool          { return false }
func (e *DeleteAnimationGroup) Coalesce(*editctx.Context, Edit) {}
func (e *DeleteAnimationGroup) Description() string {
	return fmt.Sprintf("Delete animation group %d", e.Index)
}
