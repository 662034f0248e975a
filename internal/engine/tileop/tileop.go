// Package tileop implements the cut, copy, paste and delete tile operations.
//
// The service only touches the map and its paste buffer. Recording undo
// history is the caller's job and must happen before a mutating call.
package tileop

import (
	"errors"

	"github.com/dshills/mapstorm/internal/engine/grid"
)

// ErrEmptyBuffer is returned when pasting before anything was copied.
var ErrEmptyBuffer = errors.New("paste buffer is empty")

// Service performs tile operations on one map.
type Service struct {
	m      *grid.Map
	buffer Buffer
}

// NewService creates a service for m with an empty paste buffer.
func NewService(m *grid.Map) *Service {
	return &Service{m: m}
}

// Map returns the map the service operates on.
func (s *Service) Map() *grid.Map {
	return s.m
}

// HasTileInBuffer reports whether Copy or Cut has filled the paste buffer.
func (s *Service) HasTileInBuffer() bool {
	return !s.buffer.IsEmpty()
}

// BufferArea returns the area the buffer was copied from.
func (s *Service) BufferArea() (grid.CoordArea, bool) {
	if s.buffer.IsEmpty() {
		return grid.CoordArea{}, false
	}
	return s.buffer.Area(), true
}

// ClearBuffer empties the paste buffer.
func (s *Service) ClearBuffer() {
	s.buffer.Clear()
}

// Copy stores deep copies of tiles in the paste buffer.
// The map is not changed. Copying no tiles leaves the buffer as it was.
func (s *Service) Copy(tiles ...*grid.Tile) {
	s.buffer.fill(tiles)
}

// Cut copies tiles into the paste buffer and clears them.
func (s *Service) Cut(tiles ...*grid.Tile) {
	s.Copy(tiles...)
	s.Delete(tiles...)
}

// Delete clears tiles without touching the paste buffer.
func (s *Service) Delete(tiles ...*grid.Tile) {
	for _, t := range tiles {
		t.Clear()
	}
}

// PasteArea returns the area a paste at (x, y) would write to.
func (s *Service) PasteArea(x, y int) (grid.CoordArea, error) {
	if s.buffer.IsEmpty() {
		return grid.CoordArea{}, ErrEmptyBuffer
	}
	return s.buffer.Area().ShiftToPoint(x, y), nil
}

// Paste writes the buffer with its origin at (x, y) and returns the
// destination area. Each destination tile is replaced by new instances of
// the copied items. Destinations outside the map are skipped.
func (s *Service) Paste(x, y int) (grid.CoordArea, error) {
	area, err := s.PasteArea(x, y)
	if err != nil {
		return grid.CoordArea{}, err
	}
	for _, bt := range s.buffer.tiles {
		dst, ok := s.m.Tile(x+bt.offset.X, y+bt.offset.Y)
		if !ok {
			continue
		}
		dst.Clear()
		for _, item := range bt.items {
			dst.Add(item.Instance())
		}
	}
	return area, nil
}
