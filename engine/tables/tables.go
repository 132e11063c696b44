// Package tables holds the immutable item and location tables of the game.
//
// The tables are built once by folding per-level native id tables into
// global tables with Merge. After that they are read-only and may be
// shared freely.
package tables

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/jaklogic/engine/ids"
	"github.com/nathoo/jaklogic/types"
)

const (
	// TotalOrbs is the number of precursor orbs in the whole game.
	TotalOrbs = 2000
	// GlobalOrbIndex is the orbsanity address index of the global scope.
	GlobalOrbIndex = 16
)

// BundleSizes lists every orb bundle size an option may select.
var BundleSizes = []int{1, 2, 4, 5, 8, 10, 16, 20, 25, 40, 50, 80, 100, 125, 200, 250, 400, 500, 1000, 2000}

var (
	ErrDuplicateID   = errors.New("tables: duplicate id")
	ErrDuplicateName = errors.New("tables: duplicate name")
)

// Item and location group names.
const (
	GroupCells    = "Power Cells"
	GroupFlies    = "Scout Flies"
	GroupSpecials = "Specials"
	GroupMoves    = "Moves"
	GroupOrbs     = "Precursor Orbs"
	GroupTraps    = "Traps"
	GroupFiller   = "Filler"
	GroupCaches   = "Orb Caches"
)

// AreaTable is the static data of one level: native id -> display name.
type AreaTable struct {
	Level    types.LevelDef
	Cells    map[int]string
	Flies    map[int]string
	Specials map[int]string // the item and the location share the name
	Caches   map[int]string
}

// ItemSpec is a global item before it is assigned an id.
type ItemSpec struct {
	Name           string
	Category       string
	Classification string
	Native         int
}

// Defs is the merged, immutable set of tables.
type Defs struct {
	Levels    []types.LevelDef
	Items     map[int64]types.ItemDef
	Locations map[int64]types.LocationDef

	ItemGroups     map[string][]string
	LocationGroups map[string][]int64

	itemByName map[string]int64
	locByName  map[string]int64
	levels     map[string]types.LevelDef
	native     map[string]map[int]int64
}

func newDefs() *Defs {
	return &Defs{
		Items:          make(map[int64]types.ItemDef),
		Locations:      make(map[int64]types.LocationDef),
		ItemGroups:     make(map[string][]string),
		LocationGroups: make(map[string][]int64),
		itemByName:     make(map[string]int64),
		locByName:      make(map[string]int64),
		levels:         make(map[string]types.LevelDef),
		native:         make(map[string]map[int]int64),
	}
}

// Merge folds the global items and the per-level tables into one Defs.
// Any id or name collision aborts the merge with an error naming it.
func Merge(items []ItemSpec, areas []AreaTable) (*Defs, error) {
	d := newDefs()

	for _, spec := range items {
		band, err := bandFor(spec.Category)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", spec.Name, err)
		}
		id, err := band.ToGlobal(spec.Native)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", spec.Name, err)
		}
		if err := d.addItem(types.ItemDef{
			ID: id, Name: spec.Name, Category: spec.Category,
			Classification: spec.Classification, Native: spec.Native,
		}); err != nil {
			return nil, err
		}
	}

	for _, size := range BundleSizes {
		if err := d.addItem(types.ItemDef{
			ID:             ids.Orbs.MustGlobal(size),
			Name:           BundleItemName(size),
			Category:       types.CategoryOrb,
			Classification: types.Progression,
			Native:         size,
		}); err != nil {
			return nil, err
		}
	}

	sorted := make([]AreaTable, len(areas))
	copy(sorted, areas)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Level.Index < sorted[j].Level.Index })

	for _, area := range sorted {
		if err := d.addArea(area); err != nil {
			return nil, fmt.Errorf("level %q: %w", area.Level.Name, err)
		}
	}

	// Global orbsanity scope.
	for i := 0; i < TotalOrbs; i++ {
		if err := d.addBundleLocation("", GlobalOrbIndex, i); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Defs) addArea(area AreaTable) error {
	lv := area.Level
	if _, dup := d.levels[lv.Name]; dup {
		return fmt.Errorf("%w: level %q", ErrDuplicateName, lv.Name)
	}
	if lv.FlyItem == "" {
		lv.FlyItem = FlyItemName(lv.Abbrev)
	}
	d.levels[lv.Name] = lv
	d.Levels = append(d.Levels, lv)

	flyItem, err := ids.ScoutFlies.ToGlobal(lv.FlyCell)
	if err != nil {
		return err
	}
	if err := d.addItem(types.ItemDef{
		ID: flyItem, Name: lv.FlyItem, Category: types.CategoryFly,
		Classification: types.Progression, Native: lv.FlyCell, Level: lv.Name,
	}); err != nil {
		return err
	}

	if lv.CellName != "" {
		if err := d.addLocation(ids.Cells, types.CategoryCell, lv.Name, lv.FlyCell, lv.CellName); err != nil {
			return err
		}
	}
	for _, n := range sortedKeys(area.Cells) {
		if err := d.addLocation(ids.Cells, types.CategoryCell, lv.Name, n, area.Cells[n]); err != nil {
			return err
		}
	}
	for _, n := range sortedKeys(area.Flies) {
		if err := d.addLocation(ids.ScoutFlies, types.CategoryFly, lv.Name, n, area.Flies[n]); err != nil {
			return err
		}
	}
	for _, n := range sortedKeys(area.Specials) {
		name := area.Specials[n]
		if err := d.addLocation(ids.Specials, types.CategorySpecial, lv.Name, n, name); err != nil {
			return err
		}
		if err := d.addItem(types.ItemDef{
			ID: ids.Specials.MustGlobal(n), Name: name, Category: types.CategorySpecial,
			Classification: types.Progression, Native: n, Level: lv.Name,
		}); err != nil {
			return err
		}
	}
	for _, n := range sortedKeys(area.Caches) {
		if err := d.addLocation(ids.Caches, types.CategoryCache, lv.Name, n, area.Caches[n]); err != nil {
			return err
		}
	}
	for i := 0; i < lv.Orbs; i++ {
		if err := d.addBundleLocation(lv.Name, lv.Index, i); err != nil {
			return err
		}
	}
	return nil
}

func (d *Defs) addBundleLocation(level string, levelIndex, bundle int) error {
	addr := ids.Address(levelIndex, bundle)
	return d.addLocation(ids.Orbs, types.CategoryOrb, level, addr, BundleLocationName(level, bundle))
}

func (d *Defs) addItem(it types.ItemDef) error {
	if prev, dup := d.Items[it.ID]; dup {
		return fmt.Errorf("%w: item %d (%q and %q)", ErrDuplicateID, it.ID, prev.Name, it.Name)
	}
	if _, dup := d.itemByName[it.Name]; dup {
		return fmt.Errorf("%w: item %q", ErrDuplicateName, it.Name)
	}
	d.Items[it.ID] = it
	d.itemByName[it.Name] = it.ID
	g := itemGroup(it.Category)
	d.ItemGroups[g] = append(d.ItemGroups[g], it.Name)
	return nil
}

func (d *Defs) addLocation(band ids.Band, category, level string, native int, name string) error {
	id, err := band.ToGlobal(native)
	if err != nil {
		return fmt.Errorf("location %q: %w", name, err)
	}
	if prev, dup := d.Locations[id]; dup {
		return fmt.Errorf("%w: location %d (%q and %q)", ErrDuplicateID, id, prev.Name, name)
	}
	if _, dup := d.locByName[name]; dup {
		return fmt.Errorf("%w: location %q", ErrDuplicateName, name)
	}
	d.Locations[id] = types.LocationDef{ID: id, Name: name, Category: category, Level: level, Native: native}
	d.locByName[name] = id
	if level != "" {
		d.LocationGroups[level] = append(d.LocationGroups[level], id)
	}
	d.LocationGroups[category] = append(d.LocationGroups[category], id)

	byNative := d.native[category]
	if byNative == nil {
		byNative = make(map[int]int64)
		d.native[category] = byNative
	}
	byNative[native] = id
	return nil
}

func bandFor(category string) (ids.Band, error) {
	switch category {
	case types.CategoryCell:
		return ids.Cells, nil
	case types.CategoryFly:
		return ids.ScoutFlies, nil
	case types.CategorySpecial:
		return ids.Specials, nil
	case types.CategoryMove, types.CategoryCache:
		return ids.Caches, nil
	case types.CategoryOrb:
		return ids.Orbs, nil
	case types.CategoryTrap:
		return ids.Traps, nil
	case types.CategoryFiller:
		return ids.Filler, nil
	}
	return ids.Band{}, fmt.Errorf("tables: unknown category %q", category)
}

func itemGroup(category string) string {
	switch category {
	case types.CategoryCell:
		return GroupCells
	case types.CategoryFly:
		return GroupFlies
	case types.CategorySpecial:
		return GroupSpecials
	case types.CategoryMove:
		return GroupMoves
	case types.CategoryOrb:
		return GroupOrbs
	case types.CategoryTrap:
		return GroupTraps
	}
	return GroupFiller
}

func sortedKeys(m map[int]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// BundleItemName returns the name of the orb bundle item of a size.
func BundleItemName(size int) string {
	if size == 1 {
		return "1 Precursor Orb"
	}
	return fmt.Sprintf("%d Precursor Orbs", size)
}

// BundleLocationName returns the name of an orb bundle location. The
// global scope has an empty level.
func BundleLocationName(level string, bundle int) string {
	return strings.TrimSpace(fmt.Sprintf("%s Orb Bundle %d", level, bundle+1))
}

// FlyItemName returns the scout fly item name of a level abbreviation.
func FlyItemName(abbrev string) string {
	return "Scout Fly - " + abbrev
}

// ItemID returns the global id of an item name.
func (d *Defs) ItemID(name string) (int64, bool) {
	id, ok := d.itemByName[name]
	return id, ok
}

// IsItem reports whether name is a known item.
func (d *Defs) IsItem(name string) bool {
	_, ok := d.itemByName[name]
	return ok
}

// LocationID returns the global id of a location name.
func (d *Defs) LocationID(name string) (int64, bool) {
	id, ok := d.locByName[name]
	return id, ok
}

// MustLocation returns the id of a location name and panics if it is not
// known. Area builders use it with names from the static tables.
func (d *Defs) MustLocation(name string) int64 {
	id, ok := d.locByName[name]
	if !ok {
		panic(fmt.Sprintf("tables: unknown location %q", name))
	}
	return id
}

// Level returns a level by name.
func (d *Defs) Level(name string) (types.LevelDef, bool) {
	lv, ok := d.levels[name]
	return lv, ok
}

// LevelByAbbrev returns a level by its abbreviation.
func (d *Defs) LevelByAbbrev(abbrev string) (types.LevelDef, bool) {
	for _, lv := range d.Levels {
		if strings.EqualFold(lv.Abbrev, abbrev) {
			return lv, true
		}
	}
	return types.LevelDef{}, false
}

// LevelsUpTo returns the levels of hubs 1..hub in index order.
func (d *Defs) LevelsUpTo(hub int) []types.LevelDef {
	var out []types.LevelDef
	for _, lv := range d.Levels {
		if lv.Hub <= hub {
			out = append(out, lv)
		}
	}
	return out
}

// OrbsUpTo returns the documented orb total of hubs 1..hub.
func (d *Defs) OrbsUpTo(hub int) int {
	total := 0
	for _, lv := range d.LevelsUpTo(hub) {
		total += lv.Orbs
	}
	return total
}

// NativeLocation maps a category native id to its location id, for the
// layer that reads completed tasks out of game memory.
func (d *Defs) NativeLocation(category string, native int) (int64, bool) {
	id, ok := d.native[category][native]
	return id, ok
}

// NativeTable returns a copy of the native -> location id table of a
// category.
func (d *Defs) NativeTable(category string) map[int]int64 {
	out := make(map[int]int64, len(d.native[category]))
	for k, v := range d.native[category] {
		out[k] = v
	}
	return out
}

// ItemNameToID returns a copy of the item name table.
func (d *Defs) ItemNameToID() map[string]int64 {
	out := make(map[string]int64, len(d.itemByName))
	for k, v := range d.itemByName {
		out[k] = v
	}
	return out
}

// LocationNameToID returns a copy of the location name table.
func (d *Defs) LocationNameToID() map[string]int64 {
	out := make(map[string]int64, len(d.locByName))
	for k, v := range d.locByName {
		out[k] = v
	}
	return out
}

// ItemNames returns every item name, sorted.
func (d *Defs) ItemNames() []string {
	out := make([]string, 0, len(d.itemByName))
	for k := range d.itemByName {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// LocationNames returns every location name, sorted.
func (d *Defs) LocationNames() []string {
	out := make([]string, 0, len(d.locByName))
	for k := range d.locByName {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
