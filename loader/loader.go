package loader

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"

	"github.com/nathoo/jaklogic/engine/tables"
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	file   string
	levels []rawLevel
	items  []rawItem
}

// LoadDir loads every .lua file in a directory on disk.
func LoadDir(dir string) (*tables.Defs, error) {
	return Load(os.DirFS(dir))
}

// Load executes every .lua file at the root of fsys, compiles the
// definitions into tables, validates them, and merges them into Defs.
// The Lua VM is discarded after loading.
func Load(fsys fs.FS) (*tables.Defs, error) {
	files, err := fs.Glob(fsys, "*.lua")
	if err != nil {
		return nil, fmt.Errorf("listing data files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .lua files found")
	}
	files = sortedLuaFiles(files)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range files {
		data, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		coll.file = f
		fn, err := L.Load(bytes.NewReader(data), f)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f, err)
		}
		L.Push(fn)
		if err := L.PCall(0, lua.MultRet, nil); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	items, areas, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling data: %w", err)
	}

	ve := validate(areas)
	for _, w := range ve.Warnings {
		slog.Warn("data warning", "detail", w)
	}
	if len(ve.Errors) > 0 {
		return nil, ve
	}

	defs, err := tables.Merge(items, areas)
	if err != nil {
		return nil, fmt.Errorf("merging tables: %w", err)
	}
	return defs, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the VM or break determinism.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	} {
		L.SetGlobal(name, lua.LNil)
	}
	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("randomseed", lua.LNil)
		tbl.RawSetString("random", lua.LNil)
	}
}

// sortedLuaFiles returns items.lua first and the rest alphabetically.
func sortedLuaFiles(files []string) []string {
	var first string
	var others []string
	for _, f := range files {
		if f == "items.lua" {
			first = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if first != "" {
		return append([]string{first}, others...)
	}
	return others
}
