package edit

import (
	"github.com/worldforge/editorcore/internal/editctx"
	"github.com/worldforge/editorcore/internal/world"
)

// ClassLibrary is the slice of objectclass.Library's API this package
// depends on, kept narrow to avoid edit importing objectclass directly
// (objectclass has no reason to know about edits). Acquire increments
// the named class's refcount and returns its handle; Release
// decrements the given handle's refcount.
type ClassLibrary interface {
	Acquire(name string) uint32
	Release(handle uint32)
}

// SetClassName changes an Object's class, re-homing the ClassHandle
// acquisition so the invariant "ClassHandle refers to an acquisition of
// ClassName" (§3) holds on both sides of Apply and Revert.
type SetClassName struct {
	ObjectID      world.EntityID[world.ObjectKindTag]
	Lib           ClassLibrary
	BeforeName    string
	BeforeHandle  uint32
	AfterName     string
	afterHandle   uint32
}

// NewSetClassName captures the object's current class binding.
func NewSetClassName(ctx *editctx.Context, lib ClassLibrary, id world.EntityID[world.ObjectKindTag], afterName string) *SetClassName {
	obj, _ := ctx.World.FindObject(id)
	return &SetClassName{
		ObjectID:     id,
		Lib:          lib,
		BeforeName:   obj.ClassName,
		BeforeHandle: obj.ClassHandle,
		AfterName:    afterName,
	}
}

func (e *SetClassName) Apply(ctx *editctx.Context) {
	obj, ok := ctx.World.FindObject(e.ObjectID)
	if !ok {
		return
	}
	e.afterHandle = e.Lib.Acquire(e.AfterName)
	e.Lib.Release(obj.ClassHandle)
	obj.ClassName = e.AfterName
	obj.ClassHandle = e.afterHandle
}

func (e *SetClassName) Revert(ctx *editctx.Context) {
	obj, ok := ctx.World.FindObject(e.ObjectID)
	if !ok {
		return
	}
	reacquired := e.Lib.Acquire(e.BeforeName)
	e.Lib.Release(obj.ClassHandle)
	obj.ClassName = e.BeforeName
	obj.ClassHandle = reacquired
	e.BeforeHandle = reacquired
}

func (e *SetClassName) IsCoalescable(next Edit) bool {
	other, ok := next.(*SetClassName)
	return ok && other.ObjectID == e.ObjectID
}

func (e *SetClassName) Coalesce(ctx *editctx.Context, next Edit) {
	other := next.(*SetClassName)
	// e has just been reverted, which already released its afterHandle;
	// the next Apply acquires the new AfterName afresh.
	e.AfterName = other.AfterName
}

func (e *SetClassName) Description() string { return "Change object class" }

// NewSetObjectLayer edits a placed Object's Layer field, coalescing
// repeated edits to the same object's layer into one undo step but
// never coalescing with an edit to a different object — grounded on
// set_value_tests.cpp's "edits set_value" case, which builds
// `set_value edit{world.objects[0].id, &world::object::layer, ...}`.
func NewSetObjectLayer(ctx *editctx.Context, id world.EntityID[world.ObjectKindTag], after int32) *FieldEdit[int32] {
	return NewFieldEdit(id, "object.layer", Accessor[int32]{
		Get: func(ctx *editctx.Context) int32 {
			obj, _ := ctx.World.FindObject(id)
			return obj.Layer
		},
		Set: func(ctx *editctx.Context, v int32) {
			if obj, ok := ctx.World.FindObject(id); ok {
				obj.Layer = v
			}
		},
	}, ctx, after, "Change object layer")
}
