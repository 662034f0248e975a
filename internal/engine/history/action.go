package history

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dshills/mapstorm/internal/engine/grid"
)

// Action is a reversible unit of change.
type Action interface {
	// Apply restores the state captured by the action and returns the
	// action that restores the state Apply replaced.
	Apply(m *grid.Map) Action

	// Description returns a human-readable description of the action.
	Description() string
}

// Nop is an action that changes nothing.
type Nop struct{}

// Apply does nothing.
func (Nop) Apply(*grid.Map) Action { return Nop{} }

// Description returns a human-readable description.
func (Nop) Description() string { return "Nothing" }

// TileReplace restores the full contents of one tile.
type TileReplace struct {
	snapshot grid.TileSnapshot
}

// NewTileReplace captures a deep copy of the tile's items.
func NewTileReplace(tile *grid.Tile) *TileReplace {
	return &TileReplace{snapshot: tile.Snapshot()}
}

// Coord returns the captured tile coordinate.
func (a *TileReplace) Coord() grid.Coord {
	return a.snapshot.Coord
}

// Snapshot returns the captured tile contents.
func (a *TileReplace) Snapshot() grid.TileSnapshot {
	return a.snapshot
}

// Apply overwrites the live tile with the captured contents.
func (a *TileReplace) Apply(m *grid.Map) Action {
	tile, ok := m.TileAt(a.snapshot.Coord)
	if !ok {
		return Nop{}
	}
	reverse := NewTileReplace(tile)
	tile.Restore(a.snapshot)
	return reverse
}

// Description returns a human-readable description.
func (a *TileReplace) Description() string {
	return fmt.Sprintf("Replace tile %s", a.snapshot.Coord)
}

// Multiple applies several actions in order as one unit.
type Multiple struct {
	Name    string
	Actions []Action
}

// NewMultiple creates a multiple action.
func NewMultiple(name string, actions ...Action) *Multiple {
	return &Multiple{
		Name:    name,
		Actions: actions,
	}
}

// CaptureArea captures one TileReplace per in-bounds tile of area,
// in the order of grid.CoordArea.Coords.
func CaptureArea(m *grid.Map, area grid.CoordArea) *Multiple {
	tiles := m.TilesIn(area)
	actions := make([]Action, 0, len(tiles))
	for _, t := range tiles {
		actions = append(actions, NewTileReplace(t))
	}
	return &Multiple{
		Name:    fmt.Sprintf("Replace area %s", area),
		Actions: actions,
	}
}

// Apply applies each action in order.
// The returned action applies the reverses in the opposite order.
func (a *Multiple) Apply(m *grid.Map) Action {
	reverses := make([]Action, len(a.Actions))
	for i, action := range a.Actions {
		reverses[i] = action.Apply(m)
	}
	slices.Reverse(reverses)
	return &Multiple{Name: a.Name, Actions: reverses}
}

// Description returns the action name.
func (a *Multiple) Description() string {
	if a.Name != "" {
		return a.Name
	}
	if len(a.Actions) == 1 {
		return a.Actions[0].Description()
	}
	return fmt.Sprintf("%d actions", len(a.Actions))
}

// Add appends an action.
func (a *Multiple) Add(action Action) {
	a.Actions = append(a.Actions, action)
}

// IsEmpty returns true if the action holds no sub-actions.
func (a *Multiple) IsEmpty() bool {
	return len(a.Actions) == 0
}

// PlaceTileItem re-inserts an item that was taken off a tile.
// The item keeps its identity: the same *grid.TileItem goes back.
type PlaceTileItem struct {
	coord grid.Coord
	index int
	item  *grid.TileItem
}

// NewPlaceTileItem captures an item removed from coord at index.
func NewPlaceTileItem(coord grid.Coord, index int, item *grid.TileItem) *PlaceTileItem {
	return &PlaceTileItem{coord: coord, index: index, item: item}
}

// Item returns the captured item.
func (a *PlaceTileItem) Item() *grid.TileItem {
	return a.item
}

// Apply puts the item back at its original index.
// It does nothing if the item is already on the tile.
func (a *PlaceTileItem) Apply(m *grid.Map) Action {
	tile, ok := m.TileAt(a.coord)
	if !ok || tile.IndexOf(a.item.ID) >= 0 {
		return Nop{}
	}
	tile.Insert(a.index, a.item)
	return NewRemoveTileItem(a.coord, a.item.ID)
}

// Description returns a human-readable description.
func (a *PlaceTileItem) Description() string {
	return fmt.Sprintf("Place %s at %s", a.item.Type, a.coord)
}

// RemoveTileItem takes an item off a tile.
type RemoveTileItem struct {
	coord grid.Coord
	id    uuid.UUID
}

// NewRemoveTileItem captures an item placed at coord.
func NewRemoveTileItem(coord grid.Coord, id uuid.UUID) *RemoveTileItem {
	return &RemoveTileItem{coord: coord, id: id}
}

// Apply removes the item. It does nothing if the item is gone.
func (a *RemoveTileItem) Apply(m *grid.Map) Action {
	tile, ok := m.TileAt(a.coord)
	if !ok {
		return Nop{}
	}
	item, ok := tile.Find(a.id)
	if !ok {
		return Nop{}
	}
	idx, _ := tile.Remove(item)
	return NewPlaceTileItem(a.coord, idx, item)
}

// Description returns a human-readable description.
func (a *RemoveTileItem) Description() string {
	return fmt.Sprintf("Remove item at %s", a.coord)
}

// EditVars restores the variable overrides of one item.
type EditVars struct {
	coord grid.Coord
	id    uuid.UUID
	vars  map[string]string
}

// NewEditVars captures the current overrides of a placed item.
func NewEditVars(item *grid.TileItem) *EditVars {
	coord, _ := item.Coord()
	return &EditVars{coord: coord, id: item.ID, vars: item.Vars()}
}

// Apply replaces the live item's overrides with the captured ones.
func (a *EditVars) Apply(m *grid.Map) Action {
	item, ok := a.lookup(m)
	if !ok {
		return Nop{}
	}
	reverse := NewEditVars(item)
	item.SetVars(a.vars)
	return reverse
}

// lookup finds the live item. Snapshot restores swap item pointers,
// so items are found by identity rather than held.
func (a *EditVars) lookup(m *grid.Map) (*grid.TileItem, bool) {
	if tile, ok := m.TileAt(a.coord); ok {
		if item, ok := tile.Find(a.id); ok {
			return item, true
		}
	}
	return m.FindItem(a.id)
}

// Description returns a human-readable description.
func (a *EditVars) Description() string {
	return fmt.Sprintf("Edit variables at %s", a.coord)
}
