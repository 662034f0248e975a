package grid

import "github.com/google/uuid"

// Tile is one addressable cell of the map.
// Tiles are owned by their Map and never destroyed individually.
type Tile struct {
	X, Y  int
	items []*TileItem
}

// Coord returns the tile coordinate.
func (t *Tile) Coord() Coord {
	return Coord{X: t.X, Y: t.Y}
}

// Items returns the tile items in stacking order.
// The returned slice is a copy; the items are live.
func (t *Tile) Items() []*TileItem {
	if len(t.items) == 0 {
		return nil
	}
	out := make([]*TileItem, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of items on the tile.
func (t *Tile) Len() int {
	return len(t.items)
}

// IsEmpty returns true if the tile holds no items.
func (t *Tile) IsEmpty() bool {
	return len(t.items) == 0
}

// Add places an item on top of its layer.
func (t *Tile) Add(item *TileItem) {
	_, hi := t.layerBounds(item.Kind())
	t.insertAt(hi, item)
}

// Insert places an item at index, clamped into the item's layer so the
// stacking order stays grouped by kind.
func (t *Tile) Insert(index int, item *TileItem) {
	lo, hi := t.layerBounds(item.Kind())
	t.insertAt(min(max(index, lo), hi), item)
}

func (t *Tile) insertAt(index int, item *TileItem) {
	t.items = append(t.items, nil)
	copy(t.items[index+1:], t.items[index:])
	t.items[index] = item
	item.coord = t.Coord()
	item.placed = true
}

// layerBounds returns the index range [lo, hi] an item of kind may occupy.
func (t *Tile) layerBounds(kind Kind) (int, int) {
	lo := 0
	for lo < len(t.items) && t.items[lo].Kind() < kind {
		lo++
	}
	hi := lo
	for hi < len(t.items) && t.items[hi].Kind() == kind {
		hi++
	}
	return lo, hi
}

// Remove takes an item off the tile by identity.
// It returns the index the item had.
func (t *Tile) Remove(item *TileItem) (int, bool) {
	idx := t.IndexOf(item.ID)
	if idx < 0 {
		return -1, false
	}
	removed := t.items[idx]
	t.items = append(t.items[:idx], t.items[idx+1:]...)
	removed.placed = false
	return idx, true
}

// IndexOf returns the index of the item with id, or -1.
func (t *Tile) IndexOf(id uuid.UUID) int {
	for i, item := range t.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the item with id.
func (t *Tile) Find(id uuid.UUID) (*TileItem, bool) {
	if idx := t.IndexOf(id); idx >= 0 {
		return t.items[idx], true
	}
	return nil, false
}

// Clear removes every item.
func (t *Tile) Clear() {
	for _, item := range t.items {
		item.placed = false
	}
	t.items = nil
}

// TopmostOf returns the topmost item of kind, or nil.
func (t *Tile) TopmostOf(kind Kind) *TileItem {
	for i := len(t.items) - 1; i >= 0; i-- {
		if t.items[i].Kind() == kind {
			return t.items[i]
		}
	}
	return nil
}

// ItemsOf returns the items of kind in stacking order.
func (t *Tile) ItemsOf(kind Kind) []*TileItem {
	var out []*TileItem
	for _, item := range t.items {
		if item.Kind() == kind {
			out = append(out, item)
		}
	}
	return out
}

// TileSnapshot is a deep copy of a tile's contents.
type TileSnapshot struct {
	Coord Coord
	Items []*TileItem
}

// Snapshot captures a deep copy of the tile's items.
func (t *Tile) Snapshot() TileSnapshot {
	return TileSnapshot{Coord: t.Coord(), Items: cloneItems(t.items)}
}

// Restore replaces the tile contents with clones of the snapshot items.
// The snapshot itself is left untouched and can be restored again.
func (t *Tile) Restore(s TileSnapshot) {
	t.Clear()
	for _, item := range cloneItems(s.Items) {
		t.items = append(t.items, item)
		item.coord = t.Coord()
		item.placed = true
	}
}

// Equal reports whether the snapshot holds the same items as the tile.
func (s TileSnapshot) Equal(o TileSnapshot) bool {
	if s.Coord != o.Coord || len(s.Items) != len(o.Items) {
		return false
	}
	for i := range s.Items {
		if !s.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

func cloneItems(items []*TileItem) []*TileItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]*TileItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
