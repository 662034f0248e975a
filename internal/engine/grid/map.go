package grid

import (
	"fmt"

	"github.com/google/uuid"
)

// Map is a fixed-size grid of tiles.
type Map struct {
	width  int
	height int
	tiles  []*Tile // row-major, (1,1) first
}

// NewMap creates an empty map of width x height tiles.
func NewMap(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	m := &Map{
		width:  width,
		height: height,
		tiles:  make([]*Tile, width*height),
	}
	for y := 1; y <= height; y++ {
		for x := 1; x <= width; x++ {
			m.tiles[m.index(x, y)] = &Tile{X: x, Y: y}
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return m.height
}

// Bounds returns the area covered by the map.
func (m *Map) Bounds() CoordArea {
	return CoordArea{X1: 1, Y1: 1, X2: m.width, Y2: m.height}
}

// InBounds reports whether (x, y) is a tile of the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 1 && x <= m.width && y >= 1 && y <= m.height
}

func (m *Map) index(x, y int) int {
	return (y-1)*m.width + (x - 1)
}

// Tile returns the tile at (x, y).
// The second return value is false outside the map.
func (m *Map) Tile(x, y int) (*Tile, bool) {
	if !m.InBounds(x, y) {
		return nil, false
	}
	return m.tiles[m.index(x, y)], true
}

// TileAt returns the tile at c.
func (m *Map) TileAt(c Coord) (*Tile, bool) {
	return m.Tile(c.X, c.Y)
}

// TilesIn returns the tiles of area that lie inside the map,
// in the order of CoordArea.Coords.
func (m *Map) TilesIn(area CoordArea) []*Tile {
	clipped, ok := area.Intersect(m.Bounds())
	if !ok {
		return nil
	}
	tiles := make([]*Tile, 0, clipped.Size())
	for _, c := range clipped.Coords() {
		t, _ := m.TileAt(c)
		tiles = append(tiles, t)
	}
	return tiles
}

// Tiles returns every tile in row-major order.
func (m *Map) Tiles() []*Tile {
	out := make([]*Tile, len(m.tiles))
	copy(out, m.tiles)
	return out
}

// FindItem looks up a placed item by identity.
func (m *Map) FindItem(id uuid.UUID) (*TileItem, bool) {
	for _, t := range m.tiles {
		if item, ok := t.Find(id); ok {
			return item, true
		}
	}
	return nil, false
}

// CountByKind returns how many items of each kind the map holds.
func (m *Map) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, t := range m.tiles {
		for _, item := range t.items {
			counts[item.Kind()]++
		}
	}
	return counts
}

// AreaOfTiles returns the minimal area covering all tiles.
// The second return value is false for an empty list.
func AreaOfTiles(tiles []*Tile) (CoordArea, bool) {
	if len(tiles) == 0 {
		return CoordArea{}, false
	}
	a := PointArea(tiles[0].X, tiles[0].Y)
	for _, t := range tiles[1:] {
		a.X1 = min(a.X1, t.X)
		a.Y1 = min(a.Y1, t.Y)
		a.X2 = max(a.X2, t.X)
		a.Y2 = max(a.Y2, t.Y)
	}
	return a, true
}
