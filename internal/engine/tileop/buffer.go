package tileop

import "github.com/dshills/mapstorm/internal/engine/grid"

// bufferTile is a copied tile, positioned relative to the buffer origin.
type bufferTile struct {
	offset grid.Coord
	items  []*grid.TileItem
}

// Buffer holds the most recently copied or cut tiles.
type Buffer struct {
	area  grid.CoordArea
	tiles []bufferTile
}

// fill replaces the buffer contents with deep copies of tiles.
func (b *Buffer) fill(tiles []*grid.Tile) bool {
	area, ok := grid.AreaOfTiles(tiles)
	if !ok {
		return false
	}
	b.area = area
	b.tiles = make([]bufferTile, 0, len(tiles))
	for _, t := range tiles {
		snap := t.Snapshot()
		b.tiles = append(b.tiles, bufferTile{
			offset: grid.Coord{X: t.X - area.X1, Y: t.Y - area.Y1},
			items:  snap.Items,
		})
	}
	return true
}

// IsEmpty returns true if nothing has been copied.
func (b *Buffer) IsEmpty() bool {
	return len(b.tiles) == 0
}

// Area returns the bounding area the tiles were copied from.
func (b *Buffer) Area() grid.CoordArea {
	return b.area
}

// Len returns the number of copied tiles.
func (b *Buffer) Len() int {
	return len(b.tiles)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.area = grid.CoordArea{}
	b.tiles = nil
}
