package grid

import "fmt"

// Coord is a tile coordinate.
type Coord struct {
	X, Y int
}

// String returns the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CoordArea is an axis-aligned rectangle over tile coordinates.
// Both corners are inclusive and X1 <= X2, Y1 <= Y2 always holds for
// areas built with NewArea or PointArea.
type CoordArea struct {
	X1, Y1 int
	X2, Y2 int
}

// NewArea creates an area from two corners in any order.
func NewArea(x1, y1, x2, y2 int) CoordArea {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return CoordArea{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// PointArea creates a single-tile area.
func PointArea(x, y int) CoordArea {
	return CoordArea{X1: x, Y1: y, X2: x, Y2: y}
}

// Origin returns the top-left corner.
func (a CoordArea) Origin() Coord {
	return Coord{X: a.X1, Y: a.Y1}
}

// Width returns the number of columns in the area.
func (a CoordArea) Width() int {
	return a.X2 - a.X1 + 1
}

// Height returns the number of rows in the area.
func (a CoordArea) Height() int {
	return a.Y2 - a.Y1 + 1
}

// Size returns the number of tiles covered by the area.
func (a CoordArea) Size() int {
	return a.Width() * a.Height()
}

// Contains reports whether (x, y) lies inside the area.
func (a CoordArea) Contains(x, y int) bool {
	return x >= a.X1 && x <= a.X2 && y >= a.Y1 && y <= a.Y2
}

// ShiftToPoint translates the area so its origin becomes (x, y).
// Width and height are preserved.
func (a CoordArea) ShiftToPoint(x, y int) CoordArea {
	dx := x - a.X1
	dy := y - a.Y1
	return CoordArea{X1: a.X1 + dx, Y1: a.Y1 + dy, X2: a.X2 + dx, Y2: a.Y2 + dy}
}

// Intersect returns the overlap of two areas.
// The second return value is false when they do not overlap.
func (a CoordArea) Intersect(b CoordArea) (CoordArea, bool) {
	r := CoordArea{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
	if r.X1 > r.X2 || r.Y1 > r.Y2 {
		return CoordArea{}, false
	}
	return r, true
}

// Coords returns every coordinate of the area, column by column:
// x ascending, and y ascending inside each column.
// The order is stable so captured batches replay identically.
func (a CoordArea) Coords() []Coord {
	if a.X1 > a.X2 || a.Y1 > a.Y2 {
		return nil
	}
	coords := make([]Coord, 0, a.Size())
	for x := a.X1; x <= a.X2; x++ {
		for y := a.Y1; y <= a.Y2; y++ {
			coords = append(coords, Coord{X: x, Y: y})
		}
	}
	return coords
}

// String returns the area as "(x1,y1)-(x2,y2)".
func (a CoordArea) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", a.X1, a.Y1, a.X2, a.Y2)
}
