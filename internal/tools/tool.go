package tools

import (
	"github.com/dshills/mapstorm/internal/engine"
	"github.com/dshills/mapstorm/internal/engine/grid"
)

// Tool names.
const (
	NameAdd    = "add"
	NameSelect = "select"
	NameDelete = "delete"
)

// Tool is a map tool.
type Tool interface {
	// Name returns the unique tool name.
	Name() string

	// Help returns the tooltip text, one line per gesture.
	Help() string

	// Click applies the tool to the tile at (x, y).
	// alt is true when the alternative behaviour is held.
	Click(e *engine.Engine, x, y int, alt bool) engine.Effect
}

// Prefab is the object the add tool places.
type Prefab struct {
	Type string
	Vars map[string]string
}

type addTool struct {
	c *Controller
}

func (addTool) Name() string { return NameAdd }

func (addTool) Help() string {
	return "Add (1)\nClick - Place selected object topmost\nAlt+Click - Place selected object with replace"
}

func (t addTool) Click(e *engine.Engine, x, y int, alt bool) engine.Effect {
	prefab, ok := t.c.Prefab()
	if !ok {
		t.c.logger.Debug("add without prefab", "err", ErrNoPrefab)
		return engine.Effect{}
	}
	_, eff := e.PlaceItem(x, y, prefab.Type, prefab.Vars, alt)
	return eff
}

type selectTool struct{}

func (selectTool) Name() string { return NameSelect }

func (selectTool) Help() string {
	return "Select (Hold S)\nClick - Select hovered object"
}

func (selectTool) Click(e *engine.Engine, x, y int, _ bool) engine.Effect {
	item := hovered(e, x, y)
	if item == nil {
		return engine.Effect{}
	}
	return e.SetActiveInstance(item)
}

type deleteTool struct{}

func (deleteTool) Name() string { return NameDelete }

func (deleteTool) Help() string {
	return "Delete (Hold D)\nClick - Delete hovered object\nAlt+Click - Delete tile"
}

func (deleteTool) Click(e *engine.Engine, x, y int, alt bool) engine.Effect {
	if alt {
		return e.DeleteTile(x, y)
	}
	item := hovered(e, x, y)
	if item == nil {
		return engine.Effect{}
	}
	return e.DeleteItem(item)
}

// hovered returns the topmost item on the tile at (x, y).
func hovered(e *engine.Engine, x, y int) *grid.TileItem {
	tile, ok := e.Map().Tile(x, y)
	if !ok || tile.IsEmpty() {
		return nil
	}
	items := tile.Items()
	return items[len(items)-1]
}
