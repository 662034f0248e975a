package tools

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/mapstorm/internal/engine"
	"github.com/dshills/mapstorm/internal/engine/grid"
	"github.com/dshills/mapstorm/internal/event"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	m, err := grid.NewMap(3, 3)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	for _, tile := range m.Tiles() {
		tile.Add(grid.NewTileItem("/turf/floor", nil))
		tile.Add(grid.NewTileItem("/obj/lamp", nil))
	}
	return engine.New(m)
}

func tileAt(t *testing.T, e *engine.Engine, x, y int) *grid.Tile {
	t.Helper()
	tile, ok := e.Map().Tile(x, y)
	if !ok {
		t.Fatalf("no tile at (%d,%d)", x, y)
	}
	return tile
}

func TestToolsPanelOrder(t *testing.T) {
	c := NewController()

	var names []string
	for _, tool := range c.Tools() {
		names = append(names, tool.Name())
		if tool.Help() == "" {
			t.Errorf("%s has no help text", tool.Name())
		}
	}
	if got := strings.Join(names, ","); got != "add,select,delete" {
		t.Errorf("order = %s", got)
	}
	if !c.IsSelected(NameAdd) {
		t.Errorf("default tool = %s, want add", c.Selected().Name())
	}
	if _, ok := c.Tool("brush"); ok {
		t.Error("unexpected tool")
	}
}

func TestSetSelectedPublishes(t *testing.T) {
	bus := event.NewBus()
	var changes []Change
	if _, err := bus.Subscribe(event.TopicToolChanged, func(ev event.Event) {
		changes = append(changes, ev.Payload.(Change))
	}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	c := NewController(WithBus(bus))
	if err := c.SetSelected(NameDelete); err != nil {
		t.Fatalf("SetSelected: %v", err)
	}
	if err := c.SetSelected(NameDelete); err != nil {
		t.Fatalf("SetSelected again: %v", err)
	}

	if len(changes) != 1 {
		t.Fatalf("changes = %v, want one", changes)
	}
	if changes[0] != (Change{From: NameAdd, To: NameDelete}) {
		t.Errorf("change = %+v", changes[0])
	}

	if err := c.SetSelected("brush"); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("err = %v, want ErrUnknownTool", err)
	}
	if !c.IsSelected(NameDelete) {
		t.Error("unknown tool should not change selection")
	}
}

func TestTemporalModeRestoresTool(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		hold   string
		during string
		after  string
		inMode bool
	}{
		{"hold delete from add", NameAdd, NameDelete, NameDelete, NameAdd, true},
		{"hold select from delete", NameDelete, NameSelect, NameSelect, NameDelete, true},
		{"hold selected tool", NameSelect, NameSelect, NameSelect, NameSelect, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			if err := c.SetSelected(tt.start); err != nil {
				t.Fatal(err)
			}
			if err := c.BeginTemporal(tt.hold); err != nil {
				t.Fatal(err)
			}
			if !c.IsSelected(tt.during) {
				t.Errorf("during = %s, want %s", c.Selected().Name(), tt.during)
			}
			if c.InTemporalMode() != tt.inMode {
				t.Errorf("InTemporalMode = %v", c.InTemporalMode())
			}
			c.EndTemporal(tt.hold)
			if !c.IsSelected(tt.after) {
				t.Errorf("after = %s, want %s", c.Selected().Name(), tt.after)
			}
			if c.InTemporalMode() {
				t.Error("still in temporal mode")
			}
		})
	}
}

func TestTemporalModeSwitchBetweenHeldTools(t *testing.T) {
	type step struct {
		press  bool
		tool   string
		want   string
		inMode bool
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{"release last pressed first", []step{
			{true, NameSelect, NameSelect, true},
			{true, NameDelete, NameDelete, true},
			{false, NameDelete, NameSelect, true},
			{false, NameSelect, NameAdd, false},
		}},
		{"release first pressed first", []step{
			{true, NameSelect, NameSelect, true},
			{true, NameDelete, NameDelete, true},
			{false, NameSelect, NameDelete, true},
			{false, NameDelete, NameAdd, false},
		}},
		{"release unheld key", []step{
			{true, NameDelete, NameDelete, true},
			{false, NameSelect, NameDelete, true},
			{false, NameDelete, NameAdd, false},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			for i, s := range tt.steps {
				if s.press {
					if err := c.BeginTemporal(s.tool); err != nil {
						t.Fatalf("step %d: %v", i, err)
					}
				} else {
					c.EndTemporal(s.tool)
				}
				if !c.IsSelected(s.want) {
					t.Errorf("step %d: selected = %s, want %s", i, c.Selected().Name(), s.want)
				}
				if c.InTemporalMode() != s.inMode {
					t.Errorf("step %d: InTemporalMode = %v, want %v", i, c.InTemporalMode(), s.inMode)
				}
			}
		})
	}
}

func TestTemporalModeKeepsManualChange(t *testing.T) {
	c := NewController()
	c.BeginTemporal(NameDelete)
	c.SetSelected(NameSelect)
	c.EndTemporal(NameDelete)
	if !c.IsSelected(NameSelect) {
		t.Errorf("selected = %s, a manual change should stick", c.Selected().Name())
	}
}

func TestAddTool(t *testing.T) {
	e := newTestEngine(t)
	c := NewController()

	if eff := c.Click(e, 1, 1); !eff.None() {
		t.Error("add without prefab should do nothing")
	}

	c.SetPrefab("/obj/lamp", map[string]string{"name": "red lamp"})
	c.Click(e, 1, 1)
	objs := tileAt(t, e, 1, 1).ItemsOf(grid.KindObj)
	if len(objs) != 2 || objs[1].Name() != "red lamp" {
		t.Fatalf("objs = %d, want the prefab on top", len(objs))
	}

	c.SetAltBehaviour(true)
	c.Click(e, 2, 2)
	objs = tileAt(t, e, 2, 2).ItemsOf(grid.KindObj)
	if len(objs) != 1 || objs[0].Name() != "red lamp" {
		t.Errorf("alt add should replace objs, got %d", len(objs))
	}

	e.Undo()
	e.Undo()
	for _, xy := range [][2]int{{1, 1}, {2, 2}} {
		objs := tileAt(t, e, xy[0], xy[1]).ItemsOf(grid.KindObj)
		if len(objs) != 1 || objs[0].Name() != "lamp" {
			t.Errorf("tile %v not restored", xy)
		}
	}
}

func TestSelectTool(t *testing.T) {
	e := newTestEngine(t)
	c := NewController()
	c.SetSelected(NameSelect)

	eff := c.Click(e, 2, 3)
	if !eff.RefreshInstance {
		t.Error("select should refresh instance info")
	}
	if got := e.ActiveInstance(); got == nil || got.Type != "/obj/lamp" {
		t.Errorf("active = %v", got)
	}

	tileAt(t, e, 1, 1).Clear()
	if eff := c.Click(e, 1, 1); !eff.None() {
		t.Error("select on empty tile should do nothing")
	}
}

func TestDeleteTool(t *testing.T) {
	e := newTestEngine(t)
	c := NewController()
	c.SetSelected(NameDelete)

	c.Click(e, 1, 1)
	if tileAt(t, e, 1, 1).TopmostOf(grid.KindObj) != nil {
		t.Error("hovered obj not deleted")
	}
	if tileAt(t, e, 1, 1).TopmostOf(grid.KindTurf) == nil {
		t.Error("turf should stay")
	}

	c.SetAltBehaviour(true)
	c.Click(e, 2, 2)
	if !tileAt(t, e, 2, 2).IsEmpty() {
		t.Error("alt delete should clear the tile")
	}

	if eff := c.Click(e, 9, 9); !eff.None() {
		t.Error("click outside the map should do nothing")
	}

	e.Undo()
	e.Undo()
	if tileAt(t, e, 1, 1).Len() != 2 || tileAt(t, e, 2, 2).Len() != 2 {
		t.Error("undo did not restore deleted items")
	}
}
