package engine

import (
	"github.com/dshills/mapstorm/internal/engine/grid"
	"github.com/dshills/mapstorm/internal/engine/history"
)

// Cut moves tiles into the paste buffer and clears them.
// With a picked area the whole area is cut in place, otherwise the
// tile at (x, y).
func (e *Engine) Cut(x, y int) Effect {
	tiles, ok := e.captureTargets(x, y, "Cut")
	if !ok {
		return Effect{}
	}
	e.ops.Cut(tiles...)
	e.logger.Debug("cut", "tiles", len(tiles))
	return e.emit(e.mutated(true))
}

// Copy fills the paste buffer from the picked area or the tile at (x, y).
// It changes neither the map nor the history.
func (e *Engine) Copy(x, y int) Effect {
	if picked := e.PickedTiles(); len(picked) > 0 {
		e.ops.Copy(picked...)
		e.logger.Debug("copy", "tiles", len(picked))
		return Effect{}
	}
	tile, ok := e.m.Tile(x, y)
	if !ok {
		return Effect{}
	}
	e.ops.Copy(tile)
	e.logger.Debug("copy", "tiles", 1)
	return Effect{}
}

// Delete clears the picked area or the tile at (x, y) without touching
// the paste buffer.
func (e *Engine) Delete(x, y int) Effect {
	tiles, ok := e.captureTargets(x, y, "Delete")
	if !ok {
		return Effect{}
	}
	e.ops.Delete(tiles...)
	e.logger.Debug("delete", "tiles", len(tiles))
	return e.emit(e.mutated(true))
}

// DeleteTile clears the tile at (x, y) whether or not an area is picked.
func (e *Engine) DeleteTile(x, y int) Effect {
	tile, ok := e.m.Tile(x, y)
	if !ok {
		return Effect{}
	}
	e.history.Push(history.NewTileReplace(tile))
	e.ops.Delete(tile)
	e.logger.Debug("delete tile", "tile", tile.Coord().String())
	return e.emit(e.mutated(true))
}

// Paste writes the paste buffer with its origin at (x, y) and selects the
// pasted area. It does nothing while the buffer is empty.
func (e *Engine) Paste(x, y int) Effect {
	if !e.ops.HasTileInBuffer() {
		return Effect{}
	}
	if _, ok := e.m.Tile(x, y); !ok {
		return Effect{}
	}

	area, err := e.ops.PasteArea(x, y)
	if err != nil {
		return Effect{}
	}

	if area.Size() == 1 {
		tile, _ := e.m.Tile(x, y)
		e.history.Push(history.NewTileReplace(tile))
		e.sel.PickTile(x, y)
	} else {
		capture := history.CaptureArea(e.m, area)
		capture.Name = "Paste"
		e.history.Push(capture)
		e.sel.PickArea(area)
	}

	if _, err := e.ops.Paste(x, y); err != nil {
		return Effect{}
	}
	e.logger.Debug("paste", "area", area.String())
	return e.emit(e.mutated(true))
}

// captureTargets resolves the tiles a cut or delete applies to and pushes
// the undo action for them.
func (e *Engine) captureTargets(x, y int, name string) ([]*grid.Tile, bool) {
	if picked := e.PickedTiles(); len(picked) > 0 {
		area, _ := grid.AreaOfTiles(picked)
		capture := history.CaptureArea(e.m, area)
		capture.Name = name
		e.history.Push(capture)
		return picked, true
	}

	tile, ok := e.m.Tile(x, y)
	if !ok {
		return nil, false
	}
	e.history.Push(history.NewTileReplace(tile))
	return []*grid.Tile{tile}, true
}
