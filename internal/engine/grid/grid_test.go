package grid

import (
	"errors"
	"testing"
)

func newTestMap(t *testing.T, w, h int) *Map {
	t.Helper()
	m, err := NewMap(w, h)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	return m
}

// Coord area tests

func TestNewAreaNormalises(t *testing.T) {
	a := NewArea(5, 7, 2, 3)
	if a != (CoordArea{X1: 2, Y1: 3, X2: 5, Y2: 7}) {
		t.Errorf("NewArea = %v", a)
	}
	if a.Width() != 4 || a.Height() != 5 || a.Size() != 20 {
		t.Errorf("size = %dx%d (%d)", a.Width(), a.Height(), a.Size())
	}
}

func TestAreaShiftToPoint(t *testing.T) {
	a := NewArea(2, 2, 3, 3).ShiftToPoint(10, 10)
	if a != (CoordArea{X1: 10, Y1: 10, X2: 11, Y2: 11}) {
		t.Errorf("ShiftToPoint = %v", a)
	}
}

func TestAreaIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b CoordArea
		want CoordArea
		ok   bool
	}{
		{"overlap", NewArea(1, 1, 5, 5), NewArea(4, 4, 8, 8), NewArea(4, 4, 5, 5), true},
		{"inside", NewArea(1, 1, 10, 10), NewArea(2, 3, 4, 5), NewArea(2, 3, 4, 5), true},
		{"disjoint", NewArea(1, 1, 2, 2), NewArea(3, 3, 4, 4), CoordArea{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Intersect = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAreaCoordsOrder(t *testing.T) {
	got := NewArea(1, 1, 2, 2).Coords()
	want := []Coord{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Coords[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// Map tests

func TestNewMapInvalidSize(t *testing.T) {
	_, err := NewMap(0, 4)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}

func TestMapTileBounds(t *testing.T) {
	m := newTestMap(t, 3, 2)

	tests := []struct {
		x, y int
		ok   bool
	}{
		{1, 1, true},
		{3, 2, true},
		{0, 1, false},
		{4, 1, false},
		{1, 3, false},
		{-5, -5, false},
	}
	for _, tt := range tests {
		tile, ok := m.Tile(tt.x, tt.y)
		if ok != tt.ok {
			t.Errorf("Tile(%d,%d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
		}
		if ok && (tile.X != tt.x || tile.Y != tt.y) {
			t.Errorf("Tile(%d,%d) returned %v", tt.x, tt.y, tile.Coord())
		}
	}
}

func TestMapTilesInClips(t *testing.T) {
	m := newTestMap(t, 4, 4)
	tiles := m.TilesIn(NewArea(3, 3, 6, 6))
	if len(tiles) != 4 {
		t.Fatalf("len = %d, want 4", len(tiles))
	}
	if tiles[0].Coord() != (Coord{3, 3}) || tiles[3].Coord() != (Coord{4, 4}) {
		t.Errorf("unexpected order: %v .. %v", tiles[0].Coord(), tiles[3].Coord())
	}
	if got := m.TilesIn(NewArea(10, 10, 12, 12)); got != nil {
		t.Errorf("outside area returned %d tiles", len(got))
	}
}

func TestAreaOfTiles(t *testing.T) {
	m := newTestMap(t, 10, 10)
	a, _ := m.Tile(4, 2)
	b, _ := m.Tile(2, 5)
	c, _ := m.Tile(3, 3)

	area, ok := AreaOfTiles([]*Tile{a, b, c})
	if !ok {
		t.Fatal("expected area")
	}
	if area != NewArea(2, 2, 4, 5) {
		t.Errorf("area = %v", area)
	}

	if _, ok := AreaOfTiles(nil); ok {
		t.Error("empty list should report no area")
	}
}

// Tile tests

func TestTileAddKeepsLayerOrder(t *testing.T) {
	m := newTestMap(t, 1, 1)
	tile, _ := m.Tile(1, 1)

	mob := NewTileItem("/mob/cat", nil)
	obj := NewTileItem("/obj/chair", nil)
	turf := NewTileItem("/turf/floor", nil)
	area := NewTileItem("/area/station", nil)
	obj2 := NewTileItem("/obj/table", nil)

	for _, item := range []*TileItem{mob, obj, turf, area, obj2} {
		tile.Add(item)
	}

	want := []*TileItem{area, turf, obj, obj2, mob}
	got := tile.Items()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Items[%d] = %s, want %s", i, got[i].Type, want[i].Type)
		}
	}
	if tile.TopmostOf(KindObj) != obj2 {
		t.Error("topmost obj should be the last added")
	}
	if tile.TopmostOf(KindMob) != mob {
		t.Error("topmost mob wrong")
	}
	if c, ok := obj.Coord(); !ok || c != (Coord{1, 1}) {
		t.Errorf("item coord = %v, %v", c, ok)
	}
}

func TestTileRemoveAndInsert(t *testing.T) {
	m := newTestMap(t, 1, 1)
	tile, _ := m.Tile(1, 1)

	a := NewTileItem("/obj/a", nil)
	b := NewTileItem("/obj/b", nil)
	c := NewTileItem("/obj/c", nil)
	tile.Add(a)
	tile.Add(b)
	tile.Add(c)

	idx, ok := tile.Remove(b)
	if !ok || idx != 1 {
		t.Fatalf("Remove = %d, %v", idx, ok)
	}
	if _, placed := b.Coord(); placed {
		t.Error("removed item should not be placed")
	}

	tile.Insert(idx, b)
	if tile.Items()[1] != b {
		t.Error("Insert did not restore the index")
	}

	// Out of layer index is clamped into the obj layer.
	turf := NewTileItem("/turf/floor", nil)
	tile.Insert(99, turf)
	if tile.Items()[0] != turf {
		t.Errorf("turf should be clamped below objs, got %s first", tile.Items()[0].Type)
	}

	if _, ok := tile.Remove(NewTileItem("/obj/ghost", nil)); ok {
		t.Error("removing a foreign item should fail")
	}
}

func TestTileSnapshotRestore(t *testing.T) {
	m := newTestMap(t, 2, 2)
	tile, _ := m.Tile(2, 1)
	item := NewTileItem("/obj/lamp", map[string]string{"name": "Lamp"})
	tile.Add(item)

	snap := tile.Snapshot()

	// Mutate live item and tile after capture.
	item.SetVar("name", "Broken")
	tile.Add(NewTileItem("/obj/junk", nil))

	tile.Restore(snap)
	if tile.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tile.Len())
	}
	got := tile.Items()[0]
	if got.ID != item.ID || got.Name() != "Lamp" {
		t.Errorf("restored item = %s (%s)", got.Name(), got.ID)
	}

	// The snapshot is reusable.
	got.SetVar("name", "Again")
	tile.Restore(snap)
	if tile.Items()[0].Name() != "Lamp" {
		t.Error("snapshot was modified through the restored item")
	}
	if !tile.Snapshot().Equal(snap) {
		t.Error("restored tile should equal snapshot")
	}
}

func TestTileSnapshotEmpty(t *testing.T) {
	m := newTestMap(t, 1, 1)
	tile, _ := m.Tile(1, 1)
	snap := tile.Snapshot()

	tile.Add(NewTileItem("/obj/x", nil))
	tile.Restore(snap)
	if !tile.IsEmpty() {
		t.Errorf("Len = %d, want empty", tile.Len())
	}
}

// Item tests

func TestKindOf(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"/area", KindArea},
		{"/area/station/bridge", KindArea},
		{"/turf/open/floor", KindTurf},
		{"/mob/living", KindMob},
		{"/obj/item", KindObj},
		{"/areas", KindObj},
		{"/datum", KindObj},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := KindOf(tt.path); got != tt.want {
				t.Errorf("KindOf(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestItemNameAndReset(t *testing.T) {
	item := NewTileItem("/obj/item/crowbar", map[string]string{"name": "Red crowbar"})
	if item.Name() != "Red crowbar" {
		t.Errorf("Name = %q", item.Name())
	}
	item.Reset()
	if item.Name() != "crowbar" {
		t.Errorf("Name after reset = %q", item.Name())
	}
	if len(item.Vars()) != 0 {
		t.Error("vars should be empty after reset")
	}
}

func TestItemCloneAndInstance(t *testing.T) {
	item := NewTileItem("/obj/a", map[string]string{"dir": "2"})

	clone := item.Clone()
	if !clone.Equal(item) {
		t.Error("clone should equal original")
	}
	clone.SetVar("dir", "4")
	if v, _ := item.Var("dir"); v != "2" {
		t.Error("clone shares vars with original")
	}

	inst := item.Instance()
	if inst.ID == item.ID {
		t.Error("instance should have a new identity")
	}
	if inst.Type != item.Type {
		t.Error("instance type differs")
	}
}
