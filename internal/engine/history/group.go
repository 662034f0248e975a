package history

import (
	"slices"

	"github.com/dshills/mapstorm/internal/engine/grid"
)

// BeginGroup starts collecting pushed actions into one undo step.
// Nested calls are ignored: only one group is open at a time.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		return
	}

	h.grouping = true
	h.groupName = name
	h.groupActions = nil
}

// EndGroup closes the group and pushes its actions as a single Multiple.
// The newest capture is applied first on undo, so edits that touched the
// same tile twice unwind to the state before the first one.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}

	h.grouping = false
	actions := h.groupActions
	h.groupActions = nil

	if len(actions) == 0 {
		return
	}

	slices.Reverse(actions)
	h.pushLocked(&Multiple{Name: h.groupName, Actions: actions})
}

// CancelGroup closes the group without adding it to the history.
// Edits already made stay on the map.
func (h *History) CancelGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.grouping = false
	h.groupActions = nil
}

// IsGrouping returns true while a group is open.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// Transaction runs fn inside a group.
// If fn fails the group is cancelled and the error returned.
func (h *History) Transaction(name string, fn func() error) error {
	h.BeginGroup(name)

	if err := fn(); err != nil {
		h.CancelGroup()
		return err
	}

	h.EndGroup()
	return nil
}

// Checkpoint is a point in history that can be returned to.
type Checkpoint struct {
	undoDepth int
}

// CreateCheckpoint records the current history position.
func (h *History) CreateCheckpoint() Checkpoint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Checkpoint{undoDepth: len(h.undoStack)}
}

// UndoToCheckpoint undoes every step made since the checkpoint.
func (h *History) UndoToCheckpoint(cp Checkpoint, m *grid.Map) {
	for h.UndoCount() > cp.undoDepth {
		if !h.Undo(m) {
			return
		}
	}
}

// RedoToCheckpoint redoes steps until the checkpoint depth is reached
// or the redo stack runs out.
func (h *History) RedoToCheckpoint(cp Checkpoint, m *grid.Map) {
	for h.UndoCount() < cp.undoDepth && h.CanRedo() {
		h.Redo(m)
	}
}
