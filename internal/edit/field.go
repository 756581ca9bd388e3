package edit

import (
	"fmt"

	"github.com/worldforge/editorcore/internal/editctx"
)

// Accessor reads and writes one field of one entity inside a Context.
// Concrete Edit variants are built by pairing a Get/Set pair with the
// before/after values; this is the "closed set of concrete edit types"
// approach from §9 applied uniformly across every scalar-field edit in
// the system (position, rotation, name, metrics, ...).
type Accessor[F any] struct {
	Get func(ctx *editctx.Context) F
	Set func(ctx *editctx.Context, v F)
}

// FieldEdit changes one field, identified by EntityID and Field, from
// Before to After. Two FieldEdits coalesce only when both the entity
// and the field match (§4.2: "SetField<K,F>... coalesce iff same
// entity_id and same field") — dragging a gizmo on one object must not
// absorb an edit to the same field on a different object.
//
// EntityID holds a world.EntityID[K] boxed as any so this generic type
// stays parameterized on the field type F alone; every concrete
// EntityID[K] is a single-uint32 struct, so the == comparison
// IsCoalescable relies on never panics. Constructors for the
// singleton creation entity (internal/edit/creation.go) pass a nil
// EntityID, which compares equal to itself the same way the prior
// field-only comparison did — there is only ever one creation entity,
// so no cross-entity ambiguity exists there.
type FieldEdit[F comparable] struct {
	EntityID      any
	Field         string
	Acc           Accessor[F]
	Before, After F
	label         string
}

// NewFieldEdit builds a FieldEdit that will transition Field of the
// entity identified by entityID from its current value (read via
// acc.Get) to after when Applied. label is used verbatim by
// Description.
func NewFieldEdit[F comparable](entityID any, field string, acc Accessor[F], ctx *editctx.Context, after F, label string) *FieldEdit[F] {
	return &FieldEdit[F]{
		EntityID: entityID,
		Field:    field,
		Acc:      acc,
		Before:   acc.Get(ctx),
		After:    after,
		label:    label,
	}
}

func (e *FieldEdit[F]) Apply(ctx *editctx.Context)  { e.Acc.Set(ctx, e.After) }
func (e *FieldEdit[F]) Revert(ctx *editctx.Context) { e.Acc.Set(ctx, e.Before) }

// IsCoalescable reports whether next is a FieldEdit on the same entity
// and field. Edits on a different entity, a different field, or of a
// different concrete type entirely, never coalesce with each other.
func (e *FieldEdit[F]) IsCoalescable(next Edit) bool {
	other, ok := next.(*FieldEdit[F])
	return ok && other.EntityID == e.EntityID && other.Field == e.Field
}

// Coalesce absorbs next's After value; e's Before is left untouched so
// the combined edit still reverts to the value before the whole
// sequence began.
func (e *FieldEdit[F]) Coalesce(_ *editctx.Context, next Edit) {
	other := next.(*FieldEdit[F])
	e.After = other.After
}

func (e *FieldEdit[F]) Description() string {
	if e.label != "" {
		return e.label
	}
	return fmt.Sprintf("Set %s", e.Field)
}
