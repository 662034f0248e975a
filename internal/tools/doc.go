// Package tools provides the map tools a user clicks with.
//
// Three tools are registered, in panel order:
//   - add: place the active prefab topmost, or with replace on alt
//   - select: make the hovered item the active instance
//   - delete: remove the hovered item, or the whole tile on alt
//
// # Temporal mode
//
// Holding a tool key switches to that tool until the key is released:
//
//	c.BeginTemporal(tools.NameDelete) // key down
//	c.Click(e, x, y)
//	c.EndTemporal(tools.NameDelete)   // key up, previous tool is back
//
// Every tool action goes through the engine, so it is undoable.
package tools
