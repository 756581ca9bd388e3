package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldforge/editorcore/internal/editctx"
	"github.com/worldforge/editorcore/internal/world"
)

func sunIntensityAccessor() Accessor[float32] {
	return Accessor[float32]{
		Get: func(ctx *editctx.Context) float32 { return ctx.World.GlobalLights.SunColor.X },
		Set: func(ctx *editctx.Context, v float32) { ctx.World.GlobalLights.SunColor.X = v },
	}
}

func TestEditStackCoalescesFieldEditsWhileOpen(t *testing.T) {
	w := world.New(4, 4)
	ctx := editctx.New(w)
	stack := NewEditStack(0)

	stack.Apply(ctx, NewFieldEdit(nil, "sun.x", sunIntensityAccessor(), ctx, 1, ""))
	stack.Apply(ctx, NewFieldEdit(nil, "sun.x", sunIntensityAccessor(), ctx, 2, ""))
	stack.Apply(ctx, NewFieldEdit(nil, "sun.x", sunIntensityAccessor(), ctx, 3, ""))

	require.Equal(t, 1, stack.AppliedCount())
	assert.Equal(t, float32(3), w.GlobalLights.SunColor.X)

	require.NoError(t, stack.Revert(ctx, 1))
	assert.Equal(t, float32(0), w.GlobalLights.SunColor.X)

	require.NoError(t, stack.Reapply(ctx, 1))
	assert.Equal(t, float32(3), w.GlobalLights.SunColor.X)
}

func TestEditStackCloseLastStopsCoalescing(t *testing.T) {
	w := world.New(4, 4)
	ctx := editctx.New(w)
	stack := NewEditStack(0)

	stack.Apply(ctx, NewFieldEdit(nil, "sun.x", sunIntensityAccessor(), ctx, 1, ""))
	stack.CloseLast()
	stack.Apply(ctx, NewFieldEdit(nil, "sun.x", sunIntensityAccessor(), ctx, 2, ""))

	assert.Equal(t, 2, stack.AppliedCount())
}

func TestEditStackApplyClearsRedoStack(t *testing.T) {
	w := world.New(4, 4)
	ctx := editctx.New(w)
	stack := NewEditStack(0)

	stack.Apply(ctx, NewFieldEdit(nil, "sun.x", sunIntensityAccessor(), ctx, 1, ""))
	stack.CloseLast()
	require.NoError(t, stack.Revert(ctx, 1))
	require.True(t, stack.CanReapply())

	stack.Apply(ctx, NewFieldEdit(nil, "sun.x", sunIntensityAccessor(), ctx, 9, ""))
	assert.False(t, stack.CanReapply())
}

func TestEditStackRevertReapplyErrorsWhenEmpty(t *testing.T) {
	w := world.New(4, 4)
	ctx := editctx.New(w)
	stack := NewEditStack(0)

	assert.ErrorIs(t, stack.Revert(ctx, 1), ErrNothingToRevert)
	assert.ErrorIs(t, stack.Reapply(ctx, 1), ErrNothingToReapply)
}

func TestInsertDeleteObjectRoundTrip(t *testing.T) {
	w := world.New(4, 4)
	ctx := editctx.New(w)
	stack := NewEditStack(0)

	id := w.NewObjectID()
	obj := world.Object{Entity: world.Entity{Name: "crate"}, ID: id, ClassName: "props/crate"}

	stack.Apply(ctx, NewInsert(Objects, obj, "Insert crate"))
	require.Len(t, w.Objects, 1)

	stack.Apply(ctx, NewDelete(Objects, id, "Delete crate"))
	require.Len(t, w.Objects, 0)
	assert.Equal(t, 2, stack.AppliedCount())

	require.NoError(t, stack.Revert(ctx, 1))
	require.Len(t, w.Objects, 1)
	assert.Equal(t, "crate", w.Objects[0].Name)

	require.NoError(t, stack.Revert(ctx, 1))
	require.Len(t, w.Objects, 0)
}

func TestSetObjectLayerCoalescesPerEntityNotPerField(t *testing.T) {
	w := world.New(4, 4)
	ctx := editctx.New(w)
	stack := NewEditStack(0)

	idA := w.NewObjectID()
	idB := w.NewObjectID()
	w.Objects = []world.Object{
		{Entity: world.Entity{Name: "a"}, ID: idA, ClassName: "props/crate"},
		{Entity: world.Entity{Name: "b"}, ID: idB, ClassName: "props/crate"},
	}

	stack.Apply(ctx, NewSetObjectLayer(ctx, idA, 1))
	stack.Apply(ctx, NewSetObjectLayer(ctx, idA, 2))
	require.Equal(t, 1, stack.AppliedCount(), "two edits to the same object's layer must coalesce")

	stack.Apply(ctx, NewSetObjectLayer(ctx, idB, 5))
	require.Equal(t, 2, stack.AppliedCount(), "an edit to a different object's layer must not coalesce, even with the same field name")

	objA, _ := w.FindObject(idA)
	objB, _ := w.FindObject(idB)
	assert.Equal(t, int32(2), objA.Layer)
	assert.Equal(t, int32(5), objB.Layer)

	require.NoError(t, stack.Revert(ctx, 1))
	objB, _ = w.FindObject(idB)
	assert.Equal(t, int32(0), objB.Layer)
	objA, _ = w.FindObject(idA)
	assert.Equal(t, int32(2), objA.Layer, "reverting B's edit must leave A's coalesced edit untouched")
}

func TestDeletePlanningHubCascadesConnections(t *testing.T) {
	w := world.New(4, 4)
	ctx := editctx.New(w)
	stack := NewEditStack(0)

	hubA := w.NewPlanningHubID()
	hubB := w.NewPlanningHubID()
	w.PlanningHubs = []world.PlanningHub{
		{ID: hubA, Entity: world.Entity{Name: "a"}},
		{ID: hubB, Entity: world.Entity{Name: "b"}},
	}
	connID := w.NewPlanningConnectionID()
	w.PlanningConnections = []world.PlanningConnection{{ID: connID, HubA: hubA, HubB: hubB}}

	stack.Apply(ctx, NewDeletePlanningHub(hubA))
	assert.Len(t, w.PlanningHubs, 1)
	assert.Len(t, w.PlanningConnections, 0)

	require.NoError(t, stack.Revert(ctx, 1))
	assert.Len(t, w.PlanningHubs, 2)
	require.Len(t, w.PlanningConnections, 1)
	assert.Equal(t, connID, w.PlanningConnections[0].ID)
}
