package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/mapstorm/internal/engine"
	"github.com/dshills/mapstorm/internal/engine/grid"
)

func (s *State) mapFuncs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"cut":    s.focusCommand(func(x, y int) engine.Command { return engine.CutCommand{X: x, Y: y} }),
		"copy":   s.focusCommand(func(x, y int) engine.Command { return engine.CopyCommand{X: x, Y: y} }),
		"paste":  s.focusCommand(func(x, y int) engine.Command { return engine.PasteCommand{X: x, Y: y} }),
		"delete": s.focusCommand(func(x, y int) engine.Command { return engine.DeleteCommand{X: x, Y: y} }),
		"undo":   s.command(engine.UndoCommand{}),
		"redo":   s.command(engine.RedoCommand{}),
		"depick": s.command(engine.DeselectCommand{}),
		"pick":   s.luaPick,
		"place":  s.luaPlace,
		"items":  s.luaItems,
		"size":   s.luaSize,
	}
}

// dispatch runs cmd and pushes true, or false and the reason.
func (s *State) dispatch(L *lua.LState, cmd engine.Command) int {
	if _, err := s.e.Dispatch(cmd); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

func (s *State) focusCommand(build func(x, y int) engine.Command) lua.LGFunction {
	return func(L *lua.LState) int {
		x, y := L.CheckInt(1), L.CheckInt(2)
		s.count(L)
		return s.dispatch(L, build(x, y))
	}
}

func (s *State) command(cmd engine.Command) lua.LGFunction {
	return func(L *lua.LState) int {
		s.count(L)
		return s.dispatch(L, cmd)
	}
}

// map.pick(x1, y1, x2, y2)
func (s *State) luaPick(L *lua.LState) int {
	area := grid.NewArea(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4))
	s.count(L)
	s.e.PickArea(area)
	return 0
}

// map.place(x, y, type [, vars [, replace]]) returns the new item id.
func (s *State) luaPlace(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	typePath := L.CheckString(3)
	varsTable := L.OptTable(4, nil)
	replace := L.OptBool(5, false)
	s.count(L)

	var vars map[string]string
	if varsTable != nil {
		vars = make(map[string]string)
		varsTable.ForEach(func(k, v lua.LValue) {
			vars[k.String()] = v.String()
		})
	}

	item, _ := s.e.PlaceItem(x, y, typePath, vars, replace)
	if item == nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(engine.ErrOutOfBounds.Error()))
		return 2
	}
	L.Push(lua.LString(item.ID.String()))
	return 1
}

// map.items(x, y) returns {id, type, name} tables, bottom to top.
func (s *State) luaItems(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	s.count(L)

	tile, ok := s.e.Map().Tile(x, y)
	if !ok {
		L.Push(lua.LNil)
		L.Push(lua.LString(engine.ErrOutOfBounds.Error()))
		return 2
	}

	list := L.NewTable()
	for _, item := range tile.Items() {
		t := L.NewTable()
		t.RawSetString("id", lua.LString(item.ID.String()))
		t.RawSetString("type", lua.LString(item.Type))
		t.RawSetString("name", lua.LString(item.Name()))
		list.Append(t)
	}
	L.Push(list)
	return 1
}

// map.size() returns width, height.
func (s *State) luaSize(L *lua.LState) int {
	s.count(L)
	m := s.e.Map()
	L.Push(lua.LNumber(m.Width()))
	L.Push(lua.LNumber(m.Height()))
	return 2
}
