package engine

import (
	"log/slog"

	"github.com/dshills/mapstorm/internal/engine/grid"
	"github.com/dshills/mapstorm/internal/engine/history"
	"github.com/dshills/mapstorm/internal/engine/selection"
	"github.com/dshills/mapstorm/internal/engine/tileop"
	"github.com/dshills/mapstorm/internal/event"
	"github.com/dshills/mapstorm/internal/logging"
)

// Re-export commonly used types for convenience.
type (
	// Map is the tile grid being edited.
	Map = grid.Map

	// Tile is one cell of the map.
	Tile = grid.Tile

	// TileItem is an item placed on a tile.
	TileItem = grid.TileItem

	// CoordArea is a rectangle of tile coordinates.
	CoordArea = grid.CoordArea

	// Action is a reversible history entry.
	Action = history.Action
)

// Engine is the edit session of one open map.
type Engine struct {
	m       *grid.Map
	history *history.History
	ops     *tileop.Service
	sel     *selection.Selection

	// Instance shown in the UI's instance info panel, if any.
	activeInstance *grid.TileItem

	bus    *event.Bus
	logger *slog.Logger

	maxUndoEntries int
}

// New creates a session for m.
func New(m *grid.Map, opts ...Option) *Engine {
	e := &Engine{
		m:              m,
		sel:            selection.New(),
		logger:         logging.NewNop(),
		maxUndoEntries: DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "engine")
	e.history = history.NewHistory(e.maxUndoEntries)
	e.ops = tileop.NewService(m)
	return e
}

// Reset switches the session to a newly loaded map.
// History, paste buffer, selection and active instance are cleared.
func (e *Engine) Reset(m *grid.Map) Effect {
	e.m = m
	e.history.Clear()
	e.ops = tileop.NewService(m)
	e.sel.Depick()
	e.activeInstance = nil
	e.logger.Debug("session reset", "width", m.Width(), "height", m.Height())
	return e.emit(Effect{Refresh: true, RefreshInstance: true, HistoryChanged: true})
}

// Map returns the map being edited.
func (e *Engine) Map() *grid.Map {
	return e.m
}

// History returns the session history.
func (e *Engine) History() *history.History {
	return e.history
}

// SetMaxUndoEntries changes the undo depth of the session.
func (e *Engine) SetMaxUndoEntries(max int) {
	e.history.SetMaxEntries(max)
}

// HasUndoActions reports whether Undo would do something.
func (e *Engine) HasUndoActions() bool {
	return e.history.CanUndo()
}

// HasRedoActions reports whether Redo would do something.
func (e *Engine) HasRedoActions() bool {
	return e.history.CanRedo()
}

// HasTileInBuffer reports whether Copy or Cut has filled the paste buffer.
// Paste does nothing until it has.
func (e *Engine) HasTileInBuffer() bool {
	return e.ops.HasTileInBuffer()
}

// IsPickType reports whether an area is currently picked.
func (e *Engine) IsPickType() bool {
	return e.sel.IsPickType()
}

// PickedArea returns the picked area.
func (e *Engine) PickedArea() (grid.CoordArea, bool) {
	return e.sel.Area()
}

// PickedTiles returns the picked tiles, or nil when nothing is picked.
func (e *Engine) PickedTiles() []*grid.Tile {
	return e.sel.PickedTiles(e.m)
}

// ActiveInstance returns the instance shown in the instance info panel.
func (e *Engine) ActiveInstance() *grid.TileItem {
	return e.activeInstance
}

// SetActiveInstance sets the instance shown in the instance info panel.
func (e *Engine) SetActiveInstance(item *grid.TileItem) Effect {
	e.activeInstance = item
	return e.emit(Effect{RefreshInstance: true})
}

// AddUndoAction records a captured action and clears redo history.
// Callers must capture before they mutate.
func (e *Engine) AddUndoAction(action history.Action) Effect {
	e.history.Push(action)
	return e.emit(Effect{HistoryChanged: true})
}

// Undo reverts the last edit.
func (e *Engine) Undo() Effect {
	if !e.history.Undo(e.m) {
		return Effect{}
	}
	e.logger.Debug("undo", "undo", e.history.UndoCount(), "redo", e.history.RedoCount())
	return e.emit(e.mutated(true))
}

// Redo reapplies the last undone edit.
func (e *Engine) Redo() Effect {
	if !e.history.Redo(e.m) {
		return Effect{}
	}
	e.logger.Debug("redo", "undo", e.history.UndoCount(), "redo", e.history.RedoCount())
	return e.emit(e.mutated(true))
}

// PickArea selects area.
func (e *Engine) PickArea(area grid.CoordArea) Effect {
	e.sel.PickArea(area)
	return e.emit(Effect{Refresh: true})
}

// Depick drops the selection.
func (e *Engine) Depick() Effect {
	if !e.sel.IsPickType() {
		return Effect{}
	}
	e.sel.Depick()
	return e.emit(Effect{Refresh: true})
}

// mutated returns the effect of a map mutation.
// The instance panel needs a refresh when it shows something.
func (e *Engine) mutated(historyChanged bool) Effect {
	shown := e.activeInstance != nil
	e.resolveActive()
	return Effect{
		Refresh:         true,
		RefreshInstance: shown,
		HistoryChanged:  historyChanged,
	}
}

// resolveActive points the active instance at the live item with the same
// ID. Snapshot restores swap item pointers, and clears drop items entirely.
func (e *Engine) resolveActive() {
	if e.activeInstance == nil {
		return
	}
	if item, ok := e.m.FindItem(e.activeInstance.ID); ok {
		e.activeInstance = item
		return
	}
	e.activeInstance = nil
}

// emit publishes eff on the bus and returns it.
func (e *Engine) emit(eff Effect) Effect {
	if e.bus == nil {
		return eff
	}
	if eff.Refresh {
		e.bus.Publish(event.TopicMapRefresh, eff)
	}
	if eff.RefreshInstance {
		e.bus.Publish(event.TopicInstanceRefresh, e.activeInstance)
	}
	if eff.HistoryChanged {
		e.bus.Publish(event.TopicHistoryChanged, eff)
	}
	return eff
}
