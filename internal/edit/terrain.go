package edit

import (
	"github.com/worldforge/editorcore/internal/editctx"
	"github.com/worldforge/editorcore/internal/world"
)

// SetTerrainArea paints heights into a rectangular patch of terrain.
// Two consecutive paints that overlap or touch (§4.2, §8 properties
// 6-7) coalesce into a single edit whose Rect is their union; Dirty
// tracks the exact non-overlapping cover that reporting needs (§8
// property 7: "dirty is a non-overlapping cover of the union"),
// computed by world.DecomposeCover rather than collapsed to the union
// rect itself, and is pushed onto the terrain's dirty-rect tracking on
// both Apply and Revert.
type SetTerrainArea struct {
	Rect   world.Rect
	After  []float32 // row-major over Rect, len == Rect.Width()*Rect.Height()
	Dirty  []world.Rect
	before []float32 // row-major over Rect, stashed on first Apply
}

// NewSetTerrainArea builds a terrain paint edit; after must be
// row-major over rect.
func NewSetTerrainArea(rect world.Rect, after []float32) *SetTerrainArea {
	return &SetTerrainArea{Rect: rect, After: after, Dirty: []world.Rect{rect}}
}

func (e *SetTerrainArea) Apply(ctx *editctx.Context) {
	if e.before == nil {
		e.before = ctx.World.Terrain.CopyRect(e.Rect)
	}
	ctx.World.Terrain.WriteRect(e.Rect, e.After)
	ctx.World.Terrain.MarkDirty(e.Dirty)
}

func (e *SetTerrainArea) Revert(ctx *editctx.Context) {
	ctx.World.Terrain.WriteRect(e.Rect, e.before)
	ctx.World.Terrain.MarkDirty(e.Dirty)
}

func (e *SetTerrainArea) IsCoalescable(next Edit) bool {
	other, ok := next.(*SetTerrainArea)
	return ok && e.Rect.Touches(other.Rect)
}

// Coalesce merges next into e. It runs after the caller has already
// Reverted e, so ctx's terrain currently holds the union's original
// state: e's own footprint is back to its pre-edit values, and next's
// footprint (wherever it doesn't overlap e) was never touched. That
// snapshot becomes the combined edit's "before"; "after" is the same
// snapshot with e's paint and then next's paint stamped back on top,
// next winning on any shared cells since it is the more recent edit.
// Dirty is recomputed from e's pre-coalesce Rect (the running base) and
// next's Rect (the incoming paint), matching §8 scenario F exactly.
func (e *SetTerrainArea) Coalesce(ctx *editctx.Context, next Edit) {
	other := next.(*SetTerrainArea)
	cover := world.DecomposeCover(e.Rect, other.Rect)
	union := e.Rect.Union(other.Rect)

	snapshot := ctx.World.Terrain.CopyRect(union)
	before := append([]float32(nil), snapshot...)
	after := append([]float32(nil), snapshot...)

	stampRect(after, union, e.Rect, e.After)
	stampRect(after, union, other.Rect, other.After)

	e.Rect = union
	e.before = before
	e.After = after
	e.Dirty = cover
}

func (e *SetTerrainArea) Description() string { return "Paint terrain" }

// stampRect copies src (row-major over srcRect) into dst (row-major
// over dstRect, which must contain srcRect).
func stampRect(dst []float32, dstRect, srcRect world.Rect, src []float32) {
	dstWidth := dstRect.Width()
	srcWidth := srcRect.Width()
	for y := srcRect.Y0; y < srcRect.Y1; y++ {
		dstRowStart := (y-dstRect.Y0)*dstWidth + (srcRect.X0 - dstRect.X0)
		srcRowStart := (y - srcRect.Y0) * srcWidth
		copy(dst[dstRowStart:dstRowStart+srcWidth], src[srcRowStart:srcRowStart+srcWidth])
	}
}
