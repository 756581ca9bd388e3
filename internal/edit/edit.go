// Package edit implements the polymorphic, coalescing undo/redo engine
// described in §4: a tagged-variant Edit interface plus the EditStack
// that applies, reverts, and coalesces them against an editctx.Context.
package edit

import "github.com/worldforge/editorcore/internal/editctx"

// Edit is one reversible, possibly-coalescable change to a
// editctx.Context. Implementations are tagged-variant structs (one per
// field/creation/terrain/etc. kind) rather than a class hierarchy, per
// §9's note that Go favors a closed set of concrete types behind one
// interface over virtual dispatch.
type Edit interface {
	// Apply performs the change.
	Apply(ctx *editctx.Context)

	// Revert undoes exactly what Apply did.
	Revert(ctx *editctx.Context)

	// IsCoalescable reports whether the receiver (the edit already on
	// top of the stack) can absorb next into itself instead of being
	// pushed as a separate undo step. The receiver is always the prior
	// edit; next is the one about to be applied (§8 properties 2-3).
	IsCoalescable(next Edit) bool

	// Coalesce merges next into the receiver in place. Called only
	// after IsCoalescable(next) returned true and after the receiver
	// has been reverted; the receiver is re-applied by the caller once
	// Coalesce returns. ctx is provided reverted to its pre-receiver
	// state, which variants that need to read surrounding data (e.g.
	// terrain outside the receiver's own footprint) rely on.
	Coalesce(ctx *editctx.Context, next Edit)

	// Description returns a human-readable label for an undo/redo menu.
	Description() string
}
