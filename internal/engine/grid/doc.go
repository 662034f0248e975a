// Package grid provides the tile grid of a map being edited.
//
// A Map owns a fixed set of tiles, one per coordinate. Coordinates are
// 1-based like DreamMaker maps: the top-left tile is (1, 1) and the
// bottom-right tile is (Width, Height).
//
// # Tiles and items
//
// Each Tile holds an ordered list of TileItems grouped by layer:
//
//	area < turf < obj < mob
//
// Inside a layer items keep their insertion order, so the last item of a
// layer is the topmost one for that kind.
//
// # Snapshots
//
// Tile.Snapshot takes a deep copy of a tile's items. Restoring a snapshot
// installs fresh clones, so the same snapshot can be restored any number of
// times without being affected by later edits:
//
//	snap := tile.Snapshot()
//	tile.Clear()
//	tile.Restore(snap) // items are back, with their original IDs
package grid
