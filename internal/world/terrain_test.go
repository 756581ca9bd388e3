package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeCoverContained(t *testing.T) {
	// Scenario E from spec §8: edit1 paints 8x8 at (0,0), edit2 paints
	// 4x4 at (4,4) — fully inside edit1's footprint.
	base := NewRect(0, 0, 8, 8)
	incoming := NewRect(4, 4, 4, 4)

	cover := DecomposeCover(base, incoming)
	require.Len(t, cover, 1)
	assert.Equal(t, NewRect(0, 0, 8, 8), cover[0])
}

func TestDecomposeCoverDiagonalOverlap(t *testing.T) {
	// Scenario F from spec §8: edit1 paints 8x8 at (0,0), edit2 paints
	// 8x8 at (4,4). Exact three-rect cover, in order.
	base := NewRect(0, 0, 8, 8)
	incoming := NewRect(4, 4, 8, 8)

	cover := DecomposeCover(base, incoming)
	require.Len(t, cover, 3)
	assert.Equal(t, Rect{X0: 0, Y0: 0, X1: 8, Y1: 8}, cover[0])
	assert.Equal(t, Rect{X0: 4, Y0: 8, X1: 12, Y1: 12}, cover[1])
	assert.Equal(t, Rect{X0: 8, Y0: 4, X1: 12, Y1: 8}, cover[2])
}

func TestDecomposeCoverTouchingNoOverlap(t *testing.T) {
	// Rects that only touch along an edge (no area overlap) still
	// decompose into a valid non-overlapping cover.
	base := NewRect(0, 0, 4, 4)
	incoming := NewRect(4, 0, 4, 4)

	cover := DecomposeCover(base, incoming)
	total := 0
	for _, r := range cover {
		total += r.Width() * r.Height()
	}
	assert.Equal(t, 32, total)
}

func TestRectTouchesVsOverlaps(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	touching := NewRect(4, 0, 4, 4)
	separate := NewRect(5, 0, 4, 4)

	assert.True(t, a.Touches(touching))
	assert.False(t, a.Overlaps(touching))
	assert.False(t, a.Touches(separate))
}

func TestTerrainCopyWriteRectRoundTrip(t *testing.T) {
	terrain := NewTerrain(8, 8)
	r := NewRect(2, 2, 3, 3)
	patch := make([]float32, 9)
	for i := range patch {
		patch[i] = float32(i + 1)
	}

	terrain.WriteRect(r, patch)
	got := terrain.CopyRect(r)
	assert.Equal(t, patch, got)

	// Cells outside r are untouched.
	assert.Equal(t, float32(0), terrain.At(0, 0))
}
