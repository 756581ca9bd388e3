package edit

import (
	"fmt"

	"github.com/worldforge/editorcore/internal/editctx"
	"github.com/worldforge/editorcore/internal/world"
)

// InsertNode inserts a node at Index in the path's node list (§4.2:
// node indices are positional and shift on insert/erase). Never
// coalesces.
type InsertNode struct {
	PathID world.EntityID[world.PathKindTag]
	Index  int
	Node   world.PathNode
}

func (e *InsertNode) Apply(ctx *editctx.Context) {
	p, ok := ctx.World.FindPath(e.PathID)
	if !ok {
		return
	}
	p.Nodes = append(p.Nodes, world.PathNode{})
	copy(p.Nodes[e.Index+1:], p.Nodes[e.Index:])
	p.Nodes[e.Index] = e.Node
}

func (e *InsertNode) Revert(ctx *editctx.Context) {
	p, ok := ctx.World.FindPath(e.PathID)
	if !ok {
		return
	}
	p.Nodes = append(p.Nodes[:e.Index], p.Nodes[e.Index+1:]...)
}

func (e *InsertNode) IsCoalescable(Edit) bool          { return false }
func (e *InsertNode) Coalesce(*editctx.Context, Edit) {}
func (e *InsertNode) Description() string              { return fmt.Sprintf("Insert node %d", e.Index) }

// DeleteNode removes the node at Index, stashing it for undo.
type DeleteNode struct {
	PathID world.EntityID[world.PathKindTag]
	Index  int
	stash  world.PathNode
}

func (e *DeleteNode) Apply(ctx *editctx.Context) {
	p, ok := ctx.World.FindPath(e.PathID)
	if !ok {
		return
	}
	e.stash = p.Nodes[e.Index]
	p.Nodes = append(p.Nodes[:e.Index], p.Nodes[e.Index+1:]...)
}

func (e *DeleteNode) Revert(ctx *editctx.Context) {
	p, ok := ctx.World.FindPath(e.PathID)
	if !ok {
		return
	}
	p.Nodes = append(p.Nodes, world.PathNode{})
	copy(p.Nodes[e.Index+1:], p.Nodes[e.Index:])
	p.Nodes[e.Index] = e.stash
}

func (e *DeleteNode) IsCoalescable(Edit) bool          { return false }
func (e *DeleteNode) Coalesce(*editctx.Context, Edit) {}
func (e *DeleteNode) Description() string              { return fmt.Sprintf("Delete node %d", e.Index) }
