package loader

import (
	"github.com/nathoo/jaklogic/types"
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the data constructors as globals.
//
//	Level "Geyser Rock" { abbrev = "GR", index = 0, ... }
//	Item "Power Cell" { category = "cell", native = 0 }
//	Move "Crouch" { native = 10344 }
//	Trap "Trip Trap" { native = 1 }
//	Filler "Green Eco Pill" { native = 1 }
func registerAPI(L *lua.LState, coll *collector) {
	L.SetGlobal("Level", curried(L, func(name string, tbl *lua.LTable) {
		coll.levels = append(coll.levels, rawLevel{name: name, table: tbl, file: coll.file})
	}))
	L.SetGlobal("Item", itemConstructor(L, coll, ""))
	L.SetGlobal("Move", itemConstructor(L, coll, types.CategoryMove))
	L.SetGlobal("Trap", itemConstructor(L, coll, types.CategoryTrap))
	L.SetGlobal("Filler", itemConstructor(L, coll, types.CategoryFiller))
}

// curried returns a constructor used as Name "id" { ... }: the first call
// takes the name and returns a function that takes the body table.
func curried(L *lua.LState, fn func(name string, tbl *lua.LTable)) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			fn(name, L.CheckTable(1))
			return 0
		}))
		return 1
	})
}

func itemConstructor(L *lua.LState, coll *collector, category string) *lua.LFunction {
	return curried(L, func(name string, tbl *lua.LTable) {
		coll.items = append(coll.items, rawItem{name: name, category: category, table: tbl, file: coll.file})
	})
}
