package tables

import (
	"errors"
	"testing"

	"github.com/nathoo/jaklogic/engine/ids"
	"github.com/nathoo/jaklogic/types"
)

func testAreas() []AreaTable {
	return []AreaTable{
		{
			Level: types.LevelDef{Name: "Sandover Village", Abbrev: "SV", Index: 1, Orbs: 50, Hub: 1, FlyCell: 75, CellName: "SV: Free 7 Scout Flies"},
			Cells: map[int]string{11: "SV: Bring 90 Orbs To The Mayor"},
			Flies: map[int]string{ids.FlyNative(4, 75): "SV: Scout Fly In Fisherman's House"},
			Specials: map[int]string{
				5: "Fisherman's Boat",
			},
			Caches: map[int]string{10344: "SV: Orb Cache Top Of Cliff"},
		},
		{
			Level: types.LevelDef{Name: "Geyser Rock", Abbrev: "GR", Index: 0, Orbs: 50, Hub: 1, FlyCell: 95, CellName: "GR: Free 7 Scout Flies"},
			Cells: map[int]string{92: "GR: Find The Cell On The Path"},
		},
	}
}

func testItems() []ItemSpec {
	return []ItemSpec{
		{Name: "Power Cell", Category: types.CategoryCell, Classification: types.Progression, Native: 0},
		{Name: "Crouch", Category: types.CategoryMove, Classification: types.Progression, Native: 10344},
		{Name: "Trip Trap", Category: types.CategoryTrap, Classification: types.Trap, Native: 1},
	}
}

func TestMerge(t *testing.T) {
	d, err := Merge(testItems(), testAreas())
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if len(d.Levels) != 2 || d.Levels[0].Name != "Geyser Rock" {
		t.Errorf("levels not ordered by index: %+v", d.Levels)
	}

	id, ok := d.LocationID("SV: Bring 90 Orbs To The Mayor")
	if !ok || id != ids.Base+11 {
		t.Errorf("LocationID(mayor) = %d, %v", id, ok)
	}
	if loc := d.Locations[id]; loc.Level != "Sandover Village" || loc.Category != types.CategoryCell {
		t.Errorf("mayor location = %+v", loc)
	}

	if id, ok := d.ItemID("Scout Fly - SV"); !ok || id != ids.ScoutFlies.MustGlobal(75) {
		t.Errorf("ItemID(Scout Fly - SV) = %d, %v", id, ok)
	}
	if id, ok := d.ItemID("Fisherman's Boat"); !ok || id != ids.Specials.MustGlobal(5) {
		t.Errorf("ItemID(Fisherman's Boat) = %d, %v", id, ok)
	}
	if _, ok := d.LocationID("Fisherman's Boat"); !ok {
		t.Error("special location missing")
	}
	if _, ok := d.LocationID("GR: Free 7 Scout Flies"); !ok {
		t.Error("free-7 cell location missing")
	}
	if !d.IsItem("20 Precursor Orbs") || !d.IsItem("1 Precursor Orb") {
		t.Error("orb bundle items missing")
	}
}

func TestMerge_BundleLocations(t *testing.T) {
	d, err := Merge(testItems(), testAreas())
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	id, ok := d.LocationID("Sandover Village Orb Bundle 50")
	if !ok {
		t.Fatal("last SV bundle location missing")
	}
	if want := ids.Orbs.MustGlobal(ids.Address(1, 49)); id != want {
		t.Errorf("SV bundle 50 = %d, want %d", id, want)
	}
	if _, ok := d.LocationID("Sandover Village Orb Bundle 51"); ok {
		t.Error("bundle beyond level total should not exist")
	}
	if _, ok := d.LocationID("Orb Bundle 2000"); !ok {
		t.Error("global bundle 2000 missing")
	}
}

func TestMerge_DuplicateNative(t *testing.T) {
	areas := testAreas()
	areas[1].Cells[11] = "GR: Stolen Mayor Cell"
	_, err := Merge(testItems(), areas)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
}

func TestMerge_DuplicateItemName(t *testing.T) {
	items := append(testItems(), ItemSpec{Name: "Power Cell", Category: types.CategoryFiller, Native: 3})
	_, err := Merge(items, testAreas())
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
}

func TestMerge_UnknownCategory(t *testing.T) {
	items := []ItemSpec{{Name: "Mystery", Category: "mystery"}}
	if _, err := Merge(items, nil); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestNativeLocation(t *testing.T) {
	d, err := Merge(testItems(), testAreas())
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	id, ok := d.NativeLocation(types.CategoryCache, 10344)
	if !ok || id != ids.Caches.MustGlobal(10344) {
		t.Errorf("NativeLocation(cache 10344) = %d, %v", id, ok)
	}
	if _, ok := d.NativeLocation(types.CategoryCell, 999); ok {
		t.Error("unknown native should not resolve")
	}
	if got := len(d.NativeTable(types.CategoryFly)); got != 1 {
		t.Errorf("fly native table size = %d, want 1", got)
	}
}

func TestLevelQueries(t *testing.T) {
	d, err := Merge(testItems(), testAreas())
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if lv, ok := d.LevelByAbbrev("sv"); !ok || lv.Name != "Sandover Village" {
		t.Errorf("LevelByAbbrev(sv) = %+v, %v", lv, ok)
	}
	if got := d.OrbsUpTo(1); got != 100 {
		t.Errorf("OrbsUpTo(1) = %d, want 100", got)
	}
	if got := len(d.LevelsUpTo(0)); got != 0 {
		t.Errorf("LevelsUpTo(0) = %d levels, want 0", got)
	}
}

func TestNames(t *testing.T) {
	if got := BundleLocationName("", 0); got != "Orb Bundle 1" {
		t.Errorf("BundleLocationName global = %q", got)
	}
	if got := BundleLocationName("Misty Island", 4); got != "Misty Island Orb Bundle 5" {
		t.Errorf("BundleLocationName = %q", got)
	}
	if got := BundleItemName(25); got != "25 Precursor Orbs" {
		t.Errorf("BundleItemName(25) = %q", got)
	}
}
