// Package loader loads the per-level Lua data files into the static item
// and location tables. The Lua VM only runs at load time.
package loader

import (
	"fmt"

	"github.com/nathoo/jaklogic/engine/tables"
	"github.com/nathoo/jaklogic/types"
	lua "github.com/yuin/gopher-lua"
)

// rawLevel holds a Level table before compilation.
type rawLevel struct {
	name  string
	file  string
	table *lua.LTable
}

// rawItem holds an item table before compilation. category is fixed by
// the constructor, or read from the table for Item.
type rawItem struct {
	name     string
	category string
	file     string
	table    *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an int field from a Lua table, and whether it was set.
func getInt(tbl *lua.LTable, key string) (int, bool) {
	n, ok := tbl.RawGetString(key).(lua.LNumber)
	if !ok {
		return 0, false
	}
	return int(n), true
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// nativeNames converts { [92] = "name", ... } into a Go map.
func nativeNames(tbl *lua.LTable) (map[int]string, error) {
	if tbl == nil {
		return nil, nil
	}
	m := map[int]string{}
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		kn, ok := k.(lua.LNumber)
		if !ok || float64(kn) != float64(int(kn)) {
			err = fmt.Errorf("key %v is not an integer native id", k)
			return
		}
		vs, ok := v.(lua.LString)
		if !ok {
			err = fmt.Errorf("native %d: name must be a string", int(kn))
			return
		}
		m[int(kn)] = string(vs)
	})
	return m, err
}

func compile(coll *collector) ([]tables.ItemSpec, []tables.AreaTable, error) {
	items := make([]tables.ItemSpec, 0, len(coll.items))
	for _, raw := range coll.items {
		it, err := compileItem(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: item %q: %w", raw.file, raw.name, err)
		}
		items = append(items, it)
	}

	areas := make([]tables.AreaTable, 0, len(coll.levels))
	for _, raw := range coll.levels {
		area, err := compileLevel(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: level %q: %w", raw.file, raw.name, err)
		}
		areas = append(areas, area)
	}
	return items, areas, nil
}

func compileItem(raw rawItem) (tables.ItemSpec, error) {
	category := raw.category
	if category == "" {
		category = getString(raw.table, "category")
	}
	if category == "" {
		return tables.ItemSpec{}, fmt.Errorf("category is required")
	}
	native, ok := getInt(raw.table, "native")
	if !ok {
		return tables.ItemSpec{}, fmt.Errorf("native is required")
	}
	class := getString(raw.table, "classification")
	if class == "" {
		class = defaultClassification(category)
	}
	return tables.ItemSpec{Name: raw.name, Category: category, Classification: class, Native: native}, nil
}

func defaultClassification(category string) string {
	switch category {
	case types.CategoryTrap:
		return types.Trap
	case types.CategoryFiller:
		return types.Filler
	}
	return types.Progression
}

func compileLevel(raw rawLevel) (tables.AreaTable, error) {
	tbl := raw.table
	lv := types.LevelDef{
		Name:     raw.name,
		Abbrev:   getString(tbl, "abbrev"),
		CellName: getString(tbl, "free_cell"),
	}
	var ok bool
	if lv.Index, ok = getInt(tbl, "index"); !ok {
		return tables.AreaTable{}, fmt.Errorf("index is required")
	}
	lv.Orbs, _ = getInt(tbl, "orbs")
	lv.Hub, _ = getInt(tbl, "hub")
	lv.FlyCell, _ = getInt(tbl, "fly_cell")

	area := tables.AreaTable{Level: lv}
	var err error
	if area.Cells, err = nativeNames(getTable(tbl, "cells")); err != nil {
		return area, fmt.Errorf("cells: %w", err)
	}
	if area.Flies, err = nativeNames(getTable(tbl, "flies")); err != nil {
		return area, fmt.Errorf("flies: %w", err)
	}
	if area.Specials, err = nativeNames(getTable(tbl, "specials")); err != nil {
		return area, fmt.Errorf("specials: %w", err)
	}
	if area.Caches, err = nativeNames(getTable(tbl, "caches")); err != nil {
		return area, fmt.Errorf("caches: %w", err)
	}
	return area, nil
}
