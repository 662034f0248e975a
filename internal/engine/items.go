package engine

import (
	"github.com/dshills/mapstorm/internal/engine/grid"
	"github.com/dshills/mapstorm/internal/engine/history"
)

// DeleteTopmost removes the topmost item of kind from the tile at (x, y).
func (e *Engine) DeleteTopmost(x, y int, kind grid.Kind) Effect {
	tile, ok := e.m.Tile(x, y)
	if !ok {
		return Effect{}
	}
	item := tile.TopmostOf(kind)
	if item == nil {
		return Effect{}
	}
	return e.removeItem(tile, item)
}

// DeleteItem removes a placed item from its tile.
func (e *Engine) DeleteItem(item *grid.TileItem) Effect {
	tile, ok := e.tileOf(item)
	if !ok {
		return Effect{}
	}
	return e.removeItem(tile, item)
}

func (e *Engine) removeItem(tile *grid.Tile, item *grid.TileItem) Effect {
	idx := tile.IndexOf(item.ID)
	if idx < 0 {
		return Effect{}
	}
	e.history.Push(history.NewPlaceTileItem(tile.Coord(), idx, item))
	tile.Remove(item)
	e.logger.Debug("delete item", "type", item.Type, "tile", tile.Coord().String())
	return e.emit(e.itemMutated())
}

// ResetItem drops every variable override of a placed item.
func (e *Engine) ResetItem(item *grid.TileItem) Effect {
	if _, ok := e.tileOf(item); !ok {
		return Effect{}
	}
	e.history.Push(history.NewEditVars(item))
	item.Reset()
	e.logger.Debug("reset item", "type", item.Type)
	return e.emit(e.itemMutated())
}

// EditItemVars replaces the variable overrides of a placed item.
func (e *Engine) EditItemVars(item *grid.TileItem, vars map[string]string) Effect {
	if _, ok := e.tileOf(item); !ok {
		return Effect{}
	}
	e.history.Push(history.NewEditVars(item))
	item.SetVars(vars)
	e.logger.Debug("edit item vars", "type", item.Type, "vars", len(vars))
	return e.emit(e.itemMutated())
}

// PlaceItem puts a new instance of typePath on top of its layer at (x, y).
// With replace set, items of the same kind already on the tile are
// removed first. It returns nil if (x, y) is outside the map.
func (e *Engine) PlaceItem(x, y int, typePath string, vars map[string]string, replace bool) (*grid.TileItem, Effect) {
	tile, ok := e.m.Tile(x, y)
	if !ok {
		return nil, Effect{}
	}

	item := grid.NewTileItem(typePath, vars)
	if replace {
		e.history.Push(history.NewTileReplace(tile))
		for _, old := range tile.ItemsOf(item.Kind()) {
			tile.Remove(old)
		}
	} else {
		e.history.Push(history.NewRemoveTileItem(tile.Coord(), item.ID))
	}
	tile.Add(item)

	e.logger.Debug("place item", "type", typePath, "tile", tile.Coord().String(), "replace", replace)
	return item, e.emit(e.mutated(true))
}

// tileOf returns the tile an item is placed on, if the item is live.
func (e *Engine) tileOf(item *grid.TileItem) (*grid.Tile, bool) {
	if item == nil {
		return nil, false
	}
	coord, placed := item.Coord()
	if !placed {
		return nil, false
	}
	tile, ok := e.m.TileAt(coord)
	if !ok || tile.IndexOf(item.ID) < 0 {
		return nil, false
	}
	return tile, true
}

func (e *Engine) itemMutated() Effect {
	e.resolveActive()
	return Effect{Refresh: true, RefreshInstance: true, HistoryChanged: true}
}
