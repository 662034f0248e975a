// Package history provides undo/redo for map edits.
//
// The history system stores reversible edit actions. An Action captures
// the state of some part of the map before a mutation; applying it
// restores that state and returns a new Action that would restore the
// state it just replaced. Undo and redo are both "apply and keep the
// reverse", so every step carries an explicit snapshot of the state it
// returns to and nothing is re-derived.
//
// # Actions
//
// Built-in actions:
//   - TileReplace: restore one tile's full item list
//   - Multiple: apply several actions as one unit, in order
//   - PlaceTileItem: re-insert a removed item, same identity
//   - RemoveTileItem: take a placed item off its tile
//   - EditVars: restore an item's variable overrides
//
// # Capture before mutate
//
// Callers capture an action before they mutate the map:
//
//	h.Push(history.NewTileReplace(tile)) // capture
//	tile.Clear()                         // mutate
//
//	h.Undo(m) // tile has its items back
//	h.Redo(m) // tile is empty again
//
// # Grouping
//
// Several captured actions can be undone as a single step:
//
//	h.BeginGroup("Paste column")
//	// ... several captures and edits ...
//	h.EndGroup()
package history
