package edit

import (
	"errors"
	"sync"

	"github.com/worldforge/editorcore/internal/editctx"
)

// Sentinel errors for stack boundary conditions, in the style of the
// history package's ErrNothingToUndo/ErrNothingToRedo.
var (
	ErrNothingToRevert  = errors.New("edit: nothing to revert")
	ErrNothingToReapply = errors.New("edit: nothing to reapply")
)

// EditStack holds the applied and reverted edit sequences for one
// editing session. Apply coalesces a new edit into the top of the
// applied sequence when the top is still "open" and reports itself
// coalescable with the incoming edit (§4.1); CloseLast ends that
// window, e.g. on mouse-up after a drag.
type EditStack struct {
	mu sync.Mutex

	applied  []Edit
	reverted []Edit

	// open is true while the top of applied may still absorb further
	// edits via coalescing. Reverting, reapplying, or explicitly
	// closing clears it.
	open bool

	maxEntries int
}

// NewEditStack returns an empty EditStack. maxEntries <= 0 means
// unbounded.
func NewEditStack(maxEntries int) *EditStack {
	return &EditStack{maxEntries: maxEntries}
}

// Apply applies e to ctx and pushes it onto the applied sequence,
// coalescing it into the current top when possible. It always clears
// the reverted sequence, matching ordinary undo-stack semantics: once
// a new edit is applied, previously reverted edits are no longer
// reachable by redo.
func (s *EditStack) Apply(ctx *editctx.Context, e Edit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reverted = nil

	if s.open && len(s.applied) > 0 {
		top := s.applied[len(s.applied)-1]
		if top.IsCoalescable(e) {
			s.applied = s.applied[:len(s.applied)-1]
			top.Revert(ctx)
			top.Coalesce(ctx, e)
			top.Apply(ctx)
			s.applied = append(s.applied, top)
			return
		}
	}

	e.Apply(ctx)
	s.applied = append(s.applied, e)
	s.open = true
	s.enforceMaxLocked()
}

// enforceMaxLocked drops the oldest applied edits past maxEntries.
// Dropped edits cannot be un-applied; this only bounds memory for very
// long sessions, matching the teacher's History.pushLocked trimming.
func (s *EditStack) enforceMaxLocked() {
	if s.maxEntries <= 0 || len(s.applied) <= s.maxEntries {
		return
	}
	excess := len(s.applied) - s.maxEntries
	s.applied = s.applied[excess:]
}

// CloseLast ends the current coalescing window: the next Apply will
// always push a new entry rather than merging into today's top.
func (s *EditStack) CloseLast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// Revert reverts up to n edits (n <= 0 is treated as 1), moving each
// from applied to reverted in undo order. It stops early, without
// error, if the applied sequence empties first.
func (s *EditStack) Revert(ctx *editctx.Context, n int) error {
	if n <= 0 {
		n = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.applied) == 0 {
		return ErrNothingToRevert
	}

	s.open = false
	for i := 0; i < n && len(s.applied) > 0; i++ {
		top := s.applied[len(s.applied)-1]
		s.applied = s.applied[:len(s.applied)-1]
		top.Revert(ctx)
		s.reverted = append(s.reverted, top)
	}
	return nil
}

// Reapply redoes up to n previously reverted edits (n <= 0 is treated
// as 1).
func (s *EditStack) Reapply(ctx *editctx.Context, n int) error {
	if n <= 0 {
		n = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.reverted) == 0 {
		return ErrNothingToReapply
	}

	s.open = false
	for i := 0; i < n && len(s.reverted) > 0; i++ {
		top := s.reverted[len(s.reverted)-1]
		s.reverted = s.reverted[:len(s.reverted)-1]
		top.Apply(ctx)
		s.applied = append(s.applied, top)
	}
	return nil
}

// RevertAll reverts every applied edit, oldest-undone-last.
func (s *EditStack) RevertAll(ctx *editctx.Context) {
	for s.Revert(ctx, 1) == nil {
	}
}

// ReapplyAll reapplies every reverted edit, in original order.
func (s *EditStack) ReapplyAll(ctx *editctx.Context) {
	for s.Reapply(ctx, 1) == nil {
	}
}

// CanRevert reports whether Revert would succeed.
func (s *EditStack) CanRevert() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.applied) > 0
}

// CanReapply reports whether Reapply would succeed.
func (s *EditStack) CanReapply() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reverted) > 0
}

// AppliedCount returns the number of edits currently applied.
func (s *EditStack) AppliedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.applied)
}

// UndoDescription returns the Description of the edit Revert would
// undo next, or "" if there is nothing to revert.
func (s *EditStack) UndoDescription() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.applied) == 0 {
		return ""
	}
	return s.applied[len(s.applied)-1].Description()
}

// RedoDescription returns the Description of the edit Reapply would
// redo next, or "" if there is nothing to reapply.
func (s *EditStack) RedoDescription() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.reverted) == 0 {
		return ""
	}
	return s.reverted[len(s.reverted)-1].Description()
}

// Descriptions returns the Description() of every applied edit,
// oldest first, for rendering an undo history menu.
func (s *EditStack) Descriptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.applied))
	for i, e := range s.applied {
		out[i] = e.Description()
	}
	return out
}
