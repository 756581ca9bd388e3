package world

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max Vector3
}

// PrimitiveShape is one oriented-box primitive (a "block cube" or one
// of its siblings — cylinder, wedge, etc. share the same metrics
// shape in this editor). Its AABB is derived, never edited directly.
type PrimitiveShape struct {
	Position Vector3
	Rotation Quaternion
	Size     Vector3
	AABB     AABB
}

// RecomputeAABB derives the shape's axis-aligned bounding box from its
// oriented position/rotation/size. The rotation is applied to each of
// the box's eight corners and the result enclosed, which is correct
// for any rotation and reduces to the trivial box when Rotation is
// identity.
func (p *PrimitiveShape) RecomputeAABB() {
	half := Vector3{X: p.Size.X / 2, Y: p.Size.Y / 2, Z: p.Size.Z / 2}
	corners := [8]Vector3{
		{X: -half.X, Y: -half.Y, Z: -half.Z},
		{X: +half.X, Y: -half.Y, Z: -half.Z},
		{X: -half.X, Y: +half.Y, Z: -half.Z},
		{X: +half.X, Y: +half.Y, Z: -half.Z},
		{X: -half.X, Y: -half.Y, Z: +half.Z},
		{X: +half.X, Y: -half.Y, Z: +half.Z},
		{X: -half.X, Y: +half.Y, Z: +half.Z},
		{X: +half.X, Y: +half.Y, Z: +half.Z},
	}

	min := rotatePoint(corners[0], p.Rotation)
	max := min
	for _, c := range corners[1:] {
		rc := rotatePoint(c, p.Rotation)
		min = Vector3{X: minF(min.X, rc.X), Y: minF(min.Y, rc.Y), Z: minF(min.Z, rc.Z)}
		max = Vector3{X: maxF(max.X, rc.X), Y: maxF(max.Y, rc.Y), Z: maxF(max.Z, rc.Z)}
	}

	p.AABB = AABB{
		Min: Vector3{X: p.Position.X + min.X, Y: p.Position.Y + min.Y, Z: p.Position.Z + min.Z},
		Max: Vector3{X: p.Position.X + max.X, Y: p.Position.Y + max.Y, Z: p.Position.Z + max.Z},
	}
}

func rotatePoint(v Vector3, q Quaternion) Vector3 {
	// Standard quaternion rotation v' = q * v * q^-1, expanded for a
	// unit quaternion (q^-1 == conjugate).
	ux, uy, uz := q.X, q.Y, q.Z
	uw := q.W

	// t = 2 * cross(u, v)
	tx := 2 * (uy*v.Z - uz*v.Y)
	ty := 2 * (uz*v.X - ux*v.Z)
	tz := 2 * (ux*v.Y - uy*v.X)

	// v' = v + w*t + cross(u, t)
	return Vector3{
		X: v.X + uw*tx + (uy*tz - uz*ty),
		Y: v.Y + uw*ty + (uz*tx - ux*tz),
		Z: v.Z + uw*tz + (ux*ty - uy*tx),
	}
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// BlockCubes holds the primitive-shape container and its pending
// GPU-upload index range list. DirtyIndices deduplicates and is
// cleared by Flush, mirroring the terrain's dirty-rectangle reporting
// at a per-primitive granularity.
type BlockCubes struct {
	Shapes       []PrimitiveShape
	dirtyIndices map[int]struct{}
}

// MarkDirty records that Shapes[index] changed and needs re-upload.
func (b *BlockCubes) MarkDirty(index int) {
	if b.dirtyIndices == nil {
		b.dirtyIndices = make(map[int]struct{})
	}
	b.dirtyIndices[index] = struct{}{}
}

// DirtyIndices returns the sorted list of indices pending re-upload.
func (b *BlockCubes) DirtyIndices() []int {
	out := make([]int, 0, len(b.dirtyIndices))
	for idx := range b.dirtyIndices {
		out = append(out, idx)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Flush clears the dirty index set.
func (b *BlockCubes) Flush() {
	b.dirtyIndices = nil
}
