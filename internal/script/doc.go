// Package script runs Lua scripts against an edit session.
//
// Scripts run in a sandbox with only the base, table, string and math
// libraries. A global map module drives the engine:
//
//	map.pick(2, 2, 3, 3)
//	map.copy(1, 1)
//	map.paste(10, 10)
//	local w, h = map.size()
//	for _, it in ipairs(map.items(10, 10)) do
//	    print(it.type, it.name)
//	end
//	map.undo()
//
// Every map call counts against the instruction limit of the state.
// Edits made by a script are ordinary history entries and can be undone.
package script
