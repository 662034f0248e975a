package grid

import (
	"maps"
	"strings"

	"github.com/google/uuid"
)

// Kind is the layer an item lives on.
// Kinds are ordered the way items stack on a tile.
type Kind int

const (
	KindArea Kind = iota
	KindTurf
	KindObj
	KindMob
)

// Type path roots for each kind.
const (
	TypeArea = "/area"
	TypeTurf = "/turf"
	TypeObj  = "/obj"
	TypeMob  = "/mob"
)

// VarName is the variable that holds an item's display name.
const VarName = "name"

// KindOf returns the kind of a type path.
// Anything that is not an area, turf or mob is treated as an obj.
func KindOf(typePath string) Kind {
	switch {
	case isType(typePath, TypeArea):
		return KindArea
	case isType(typePath, TypeTurf):
		return KindTurf
	case isType(typePath, TypeMob):
		return KindMob
	default:
		return KindObj
	}
}

func isType(typePath, root string) bool {
	return typePath == root || strings.HasPrefix(typePath, root+"/")
}

// ParseKind parses a kind name such as "turf" or "/turf".
func ParseKind(s string) (Kind, bool) {
	switch strings.TrimPrefix(strings.ToLower(s), "/") {
	case "area":
		return KindArea, true
	case "turf":
		return KindTurf, true
	case "obj":
		return KindObj, true
	case "mob":
		return KindMob, true
	}
	return KindObj, false
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindArea:
		return "area"
	case KindTurf:
		return "turf"
	case KindObj:
		return "obj"
	case KindMob:
		return "mob"
	default:
		return "unknown"
	}
}

// TileItem is an instance of a placeable type on a tile.
type TileItem struct {
	ID   uuid.UUID
	Type string
	vars map[string]string

	// Owning tile, valid while placed.
	coord  Coord
	placed bool
}

// NewTileItem creates an item with a fresh identity.
// The vars map is copied.
func NewTileItem(typePath string, vars map[string]string) *TileItem {
	return &TileItem{
		ID:   uuid.New(),
		Type: typePath,
		vars: copyVars(vars),
	}
}

// Kind returns the layer of the item.
func (i *TileItem) Kind() Kind {
	return KindOf(i.Type)
}

// Coord returns the tile the item is placed on.
func (i *TileItem) Coord() (Coord, bool) {
	return i.coord, i.placed
}

// Var returns a variable override.
func (i *TileItem) Var(name string) (string, bool) {
	v, ok := i.vars[name]
	return v, ok
}

// SetVar sets a variable override.
func (i *TileItem) SetVar(name, value string) {
	if i.vars == nil {
		i.vars = make(map[string]string)
	}
	i.vars[name] = value
}

// Vars returns a copy of the variable overrides.
func (i *TileItem) Vars() map[string]string {
	return copyVars(i.vars)
}

// SetVars replaces all variable overrides with a copy of vars.
func (i *TileItem) SetVars(vars map[string]string) {
	i.vars = copyVars(vars)
}

// Reset drops every variable override, returning the item to its type defaults.
func (i *TileItem) Reset() {
	i.vars = nil
}

// Name returns the "name" override, or the last segment of the type path.
func (i *TileItem) Name() string {
	if name, ok := i.vars[VarName]; ok && name != "" {
		return name
	}
	if idx := strings.LastIndex(i.Type, "/"); idx >= 0 {
		return i.Type[idx+1:]
	}
	return i.Type
}

// Clone returns a deep copy with the same identity.
// The clone is not placed on any tile.
func (i *TileItem) Clone() *TileItem {
	return &TileItem{
		ID:   i.ID,
		Type: i.Type,
		vars: copyVars(i.vars),
	}
}

// Instance returns a deep copy with a new identity.
func (i *TileItem) Instance() *TileItem {
	c := i.Clone()
	c.ID = uuid.New()
	return c
}

// Equal reports whether two items have the same identity, type and vars.
func (i *TileItem) Equal(o *TileItem) bool {
	if i == nil || o == nil {
		return i == o
	}
	return i.ID == o.ID && i.Type == o.Type && maps.Equal(i.vars, o.vars)
}

func copyVars(vars map[string]string) map[string]string {
	if len(vars) == 0 {
		return nil
	}
	return maps.Clone(vars)
}
