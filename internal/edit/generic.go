package edit

import (
	"github.com/worldforge/editorcore/internal/editctx"
	"github.com/worldforge/editorcore/internal/world"
)

// Collection bundles the three operations Insert/Delete need on one
// entity kind's slice inside a Context: append a value, remove a value
// by id (returning it so Delete can stash it for undo), and read a
// value's id. One Collection[K, T] is built per kind and shared by
// every Insert[K, T]/Delete[K, T] for that kind, mirroring how World's
// FindXxx methods are one-per-kind rather than reflective.
type Collection[K world.EntityKind, T any] struct {
	Add    func(ctx *editctx.Context, v T)
	Remove func(ctx *editctx.Context, id world.EntityID[K]) (T, bool)
	ID     func(v T) world.EntityID[K]
}

// Insert adds a single new entity of kind K. Its id was pre-allocated
// by the corresponding World.NewXxxID before the edit was built (§4.2:
// "the id is allocated up front so references created in the same
// transaction can point at it immediately"). Inserts never coalesce
// with one another.
type Insert[K world.EntityKind, T any] struct {
	Value T
	Coll  Collection[K, T]
	label string
}

// NewInsert builds an Insert edit for value, which must already carry
// its pre-allocated id.
func NewInsert[K world.EntityKind, T any](coll Collection[K, T], value T, label string) *Insert[K, T] {
	return &Insert[K, T]{Value: value, Coll: coll, label: label}
}

func (e *Insert[K, T]) Apply(ctx *editctx.Context)  { e.Coll.Add(ctx, e.Value) }
func (e *Insert[K, T]) Revert(ctx *editctx.Context) { e.Coll.Remove(ctx, e.Coll.ID(e.Value)) }
func (e *Insert[K, T]) IsCoalescable(Edit) bool              { return false }
func (e *Insert[K, T]) Coalesce(*editctx.Context, Edit)       {}
func (e *Insert[K, T]) Description() string {
	if e.label != "" {
		return e.label
	}
	return "Insert entity"
}

// Delete removes an existing entity by id, stashing its value on first
// Apply so Revert can restore it. Deletes never coalesce.
type Delete[K world.EntityKind, T any] struct {
	ID    world.EntityID[K]
	Coll  Collection[K, T]
	stash T
	label string
}

// NewDelete builds a Delete edit for the entity with the given id.
func NewDelete[K world.EntityKind, T any](coll Collection[K, T], id world.EntityID[K], label string) *Delete[K, T] {
	return &Delete[K, T]{ID: id, Coll: coll, label: label}
}

func (e *Delete[K, T]) Apply(ctx *editctx.Context) {
	v, ok := e.Coll.Remove(ctx, e.ID)
	if ok {
		e.stash = v
	}
}
func (e *Delete[K, T]) Revert(ctx *editctx.Context) { e.Coll.Add(ctx, e.stash) }
func (e *Delete[K, T]) IsCoalescable(Edit) bool            { return false }
func (e *Delete[K, T]) Coalesce(*editctx.Context, Edit)     {}
func (e *Delete[K, T]) Description() string {
	if e.label != "" {
		return e.label
	}
	return "Delete entity"
}
