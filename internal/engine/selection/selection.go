// Package selection tracks the area selection of a map session.
package selection

import "github.com/dshills/mapstorm/internal/engine/grid"

// Selection is the picked area of a map, if any.
// The zero value has nothing picked.
type Selection struct {
	area   grid.CoordArea
	active bool
}

// New returns an empty selection.
func New() *Selection {
	return &Selection{}
}

// PickArea marks area as the current selection.
func (s *Selection) PickArea(area grid.CoordArea) {
	s.area = grid.NewArea(area.X1, area.Y1, area.X2, area.Y2)
	s.active = true
}

// PickTile marks a single tile as the current selection.
func (s *Selection) PickTile(x, y int) {
	s.PickArea(grid.PointArea(x, y))
}

// Depick drops the selection.
func (s *Selection) Depick() {
	s.area = grid.CoordArea{}
	s.active = false
}

// IsPickType reports whether an area is currently picked.
func (s *Selection) IsPickType() bool {
	return s.active
}

// Area returns the picked area.
func (s *Selection) Area() (grid.CoordArea, bool) {
	return s.area, s.active
}

// PickedTiles returns the in-bounds tiles of the picked area,
// or nil if nothing is picked.
func (s *Selection) PickedTiles(m *grid.Map) []*grid.Tile {
	if !s.active {
		return nil
	}
	return m.TilesIn(s.area)
}
