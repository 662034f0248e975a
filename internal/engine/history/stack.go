package history

import (
	"sync"
	"time"

	"github.com/dshills/mapstorm/internal/engine/grid"
)

// DefaultMaxEntries is the undo depth used when none is given.
const DefaultMaxEntries = 1000

// ActionInfo describes a history entry.
type ActionInfo struct {
	Description string
	Timestamp   time.Time
}

// entry wraps an action with metadata.
type entry struct {
	action    Action
	timestamp time.Time
}

func (e *entry) info() ActionInfo {
	return ActionInfo{
		Description: e.action.Description(),
		Timestamp:   e.timestamp,
	}
}

// History manages the undo and redo stacks of a map session.
type History struct {
	mu sync.Mutex

	undoStack []*entry
	redoStack []*entry

	// Grouping state
	grouping     bool
	groupName    string
	groupActions []Action

	maxEntries int
}

// NewHistory creates a history that keeps at most maxEntries undo steps.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Push adds a captured action to the undo stack and clears the redo stack.
// While a group is open the action is collected into the group instead.
func (h *History) Push(action Action) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		h.groupActions = append(h.groupActions, action)
		return
	}

	h.pushLocked(action)
}

// pushLocked adds an action without acquiring the lock.
func (h *History) pushLocked(action Action) {
	h.undoStack = append(h.undoStack, &entry{
		action:    action,
		timestamp: time.Now(),
	})

	// A new edit invalidates the redo branch.
	h.redoStack = nil

	h.trimLocked()
}

// trimLocked drops the oldest undo entries beyond maxEntries. Entries are
// shifted down in place and the vacated slots cleared so the dropped
// snapshots can be collected.
func (h *History) trimLocked() {
	excess := len(h.undoStack) - h.maxEntries
	if excess <= 0 {
		return
	}
	n := copy(h.undoStack, h.undoStack[excess:])
	clear(h.undoStack[n:])
	h.undoStack = h.undoStack[:n]
}

// popLocked removes and returns the top entry of stack.
func popLocked(stack *[]*entry) *entry {
	s := *stack
	e := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]
	return e
}

// Undo applies the most recent undo action and keeps its reverse for redo.
// It returns false when there is nothing to undo.
// The lock is released while the action runs.
func (h *History) Undo(m *grid.Map) bool {
	h.mu.Lock()
	if len(h.undoStack) == 0 {
		h.mu.Unlock()
		return false
	}

	e := popLocked(&h.undoStack)
	h.mu.Unlock()

	reverse := e.action.Apply(m)

	h.mu.Lock()
	h.redoStack = append(h.redoStack, &entry{action: reverse, timestamp: time.Now()})
	h.mu.Unlock()
	return true
}

// Redo applies the most recent redo action and keeps its reverse for undo.
// It returns false when there is nothing to redo.
func (h *History) Redo(m *grid.Map) bool {
	h.mu.Lock()
	if len(h.redoStack) == 0 {
		h.mu.Unlock()
		return false
	}

	e := popLocked(&h.redoStack)
	h.mu.Unlock()

	reverse := e.action.Apply(m)

	h.mu.Lock()
	h.undoStack = append(h.undoStack, &entry{action: reverse, timestamp: time.Now()})
	h.mu.Unlock()
	return true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Clear removes all undo/redo history and drops an open group.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupActions = nil
}

// UndoInfo returns the undo stack, oldest first.
func (h *History) UndoInfo() []ActionInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]ActionInfo, len(h.undoStack))
	for i, e := range h.undoStack {
		result[i] = e.info()
	}
	return result
}

// RedoInfo returns the redo stack, oldest first.
func (h *History) RedoInfo() []ActionInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]ActionInfo, len(h.redoStack))
	for i, e := range h.redoStack {
		result[i] = e.info()
	}
	return result
}

// PeekUndo returns the next undo step without removing it.
func (h *History) PeekUndo() (ActionInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return ActionInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info(), true
}

// PeekRedo returns the next redo step without removing it.
func (h *History) PeekRedo() (ActionInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return ActionInfo{}, false
	}
	return h.redoStack[len(h.redoStack)-1].info(), true
}

// SetMaxEntries changes the undo depth, dropping the oldest entries if needed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max
	h.trimLocked()
}

// MaxEntries returns the undo depth.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
