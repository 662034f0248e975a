// Package engine provides the map edit session for mapstorm.
//
// An Engine owns everything an open map needs while it is being edited:
// the tile grid, the undo/redo history, the paste buffer and the area
// selection. It replaces process-wide singletons with one explicitly
// owned session object.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - grid: tiles, items and coordinate areas
//   - history: reversible actions and the undo/redo stacks
//   - tileop: cut, copy, paste and delete with the paste buffer
//   - selection: the picked area
//
// # Commands and effects
//
// Every mutating command captures the state it is about to change,
// pushes it to the history, mutates the map, and returns an Effect that
// tells the UI what to refresh:
//
//	e := engine.New(m)
//	eff := e.Cut(x, y)    // picked tiles if any, else the tile at (x, y)
//	if eff.Refresh {
//	    redraw()
//	}
//	e.Undo()
//
// The same notifications are published on the event bus when one is set
// with WithBus.
//
// UI affordances may also issue typed commands through Dispatch:
//
//	eff, err := e.Dispatch(engine.PasteCommand{X: 10, Y: 10})
//
// # Picked tiles
//
// Tile commands operate on the picked tiles when a selection is active
// and fall back to the single focused tile otherwise. Cut and Delete work
// in place; Paste moves the copied area so its origin lands on the focused
// tile and selects the pasted area.
//
// # Thread Safety
//
// An Engine is meant to be driven from one goroutine, the UI thread.
// The history has its own lock so enablement queries are safe to call
// from elsewhere.
package engine
