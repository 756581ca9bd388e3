package edit

import (
	"fmt"

	"github.com/worldforge/editorcore/internal/editctx"
)

// IndexedAccessor reads and writes one element of a slice-valued field
// (a path node, a sector point, a measurement point, ...).
type IndexedAccessor[F any] struct {
	Get func(ctx *editctx.Context, index int) F
	Set func(ctx *editctx.Context, index int, v F)
}

// IndexedFieldEdit changes element Index of a slice field from Before
// to After, coalescing with another IndexedFieldEdit on the same
// entity, Field and Index (§4.2: "SetFieldIndexed<K,F>... coalesce iff
// same entity_id and same field and same index" — dragging a single
// path node or sector point fires many of these per frame, but only
// for that one node of that one entity).
//
// EntityID is boxed as any for the same reason as FieldEdit's; see its
// doc comment.
type IndexedFieldEdit[F comparable] struct {
	EntityID      any
	Field         string
	Index         int
	Acc           IndexedAccessor[F]
	Before, After F
	label         string
}

// NewIndexedFieldEdit builds an IndexedFieldEdit transitioning element
// index of field, on the entity identified by entityID, from its
// current value to after.
func NewIndexedFieldEdit[F comparable](entityID any, field string, index int, acc IndexedAccessor[F], ctx *editctx.Context, after F, label string) *IndexedFieldEdit[F] {
	return &IndexedFieldEdit[F]{
		EntityID: entityID,
		Field:    field,
		Index:    index,
		Acc:      acc,
		Before:   acc.Get(ctx, index),
		After:    after,
		label:    label,
	}
}

func (e *IndexedFieldEdit[F]) Apply(ctx *editctx.Context)  { e.Acc.Set(ctx, e.Index, e.After) }
func (e *IndexedFieldEdit[F]) Revert(ctx *editctx.Context) { e.Acc.Set(ctx, e.Index, e.Before) }

func (e *IndexedFieldEdit[F]) IsCoalescable(next Edit) bool {
	other, ok := next.(*IndexedFieldEdit[F])
	return ok && other.EntityID == e.EntityID && other.Field == e.Field && other.Index == e.Index
}

func (e *IndexedFieldEdit[F]) Coalesce(_ *editctx.Context, next Edit) {
	other := next.(*IndexedFieldEdit[F])
	e.After = other.After
}

func (e *IndexedFieldEdit[F]) Description() string {
	if e.label != "" {
		return e.label
	}
	return fmt.Sprintf("Set %s[%d]", e.Field, e.Index)
}
