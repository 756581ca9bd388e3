package edit

import (
	"github.com/worldforge/editorcore/internal/editctx"
	"github.com/worldforge/editorcore/internal/world"
)

// DeletePlanningHub deletes a planning hub and, per §3's cascade-delete
// invariant, every planning connection referencing it. Both are
// restored together on Revert.
type DeletePlanningHub struct {
	ID                    world.EntityID[world.PlanningHubKindTag]
	stashHub              world.PlanningHub
	stashConnections      []world.PlanningConnection
}

func NewDeletePlanningHub(id world.EntityID[world.PlanningHubKindTag]) *DeletePlanningHub {
	return &DeletePlanningHub{ID: id}
}

func (e *DeletePlanningHub) Apply(ctx *editctx.Context) {
	hub, ok := ctx.World.FindPlanningHub(e.ID)
	if ok {
		e.stashHub = *hub
	}
	e.stashConnections = ctx.World.RemovePlanningConnectionsReferencing(e.ID)
	PlanningHubs.Remove(ctx, e.ID)
}

func (e *DeletePlanningHub) Revert(ctx *editctx.Context) {
	PlanningHubs.Add(ctx, e.stashHub)
	for _, c := range e.stashConnections {
		PlanningConnections.Add(ctx, c)
	}
}

func (e *DeletePlanningHub) IsCoalescable(Edit) bool          { return false }
func (e *DeletePlanningHub) Coalesce(*editctx.Context, Edit) {}
func (e *DeletePlanningHub) Description() string              { return "Delete planning hub" }
