package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/nathoo/jaklogic/config"
	"github.com/nathoo/jaklogic/content"
	"github.com/nathoo/jaklogic/engine/events"
	"github.com/nathoo/jaklogic/world"
)

func testEngine(t *testing.T, edit func(*config.Options)) *Engine {
	t.Helper()
	defs, err := content.Defs()
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	opts := config.Defaults()
	if edit != nil {
		edit(&opts)
	}
	w, err := world.Build(defs, opts, 1)
	if err != nil {
		t.Fatalf("world.Build: %v", err)
	}
	return New(w, 42)
}

func outputContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestStep_Empty(t *testing.T) {
	e := testEngine(t, nil)
	r := e.Step("   ")
	if len(r.Output) != 1 || r.Output[0] != "What do you want to know?" {
		t.Errorf("output = %v", r.Output)
	}
	if len(e.CommandLog) != 0 {
		t.Error("empty input was logged")
	}
}

func TestStep_StartingInventory(t *testing.T) {
	e := testEngine(t, nil)
	r := e.Step("inventory")
	if !outputContains(r.Output, "Punch") || !outputContains(r.Output, "Double Jump") {
		t.Errorf("moves missing from inventory: %v", r.Output)
	}

	e = testEngine(t, func(o *config.Options) { o.EnableMoveRandomizer = true })
	r = e.Step("i")
	if len(r.Output) != 1 || r.Output[0] != "You hold nothing." {
		t.Errorf("output = %v", r.Output)
	}
}

func TestStep_GiveUnlocksRegion(t *testing.T) {
	e := testEngine(t, nil)

	r := e.Step("reach misty island main area")
	if !outputContains(r.Output, "is not reachable") {
		t.Fatalf("island reachable without the boat: %v", r.Output)
	}
	if !outputContains(r.Output, "Fisherman's Boat") {
		t.Errorf("entrance rule not shown: %v", r.Output)
	}

	r = e.Step("give boat")
	if !outputContains(r.Output, "Fisherman's Boat: 1.") {
		t.Errorf("output = %v", r.Output)
	}
	if !outputContains(r.Output, "Now reachable: Misty Island Main Area") {
		t.Errorf("unlock not reported: %v", r.Output)
	}
	found := false
	for _, ev := range r.Events {
		if ev.Type == events.RegionUnlocked && ev.Data["region"] == "Misty Island Main Area" {
			found = true
		}
	}
	if !found {
		t.Errorf("no region_unlocked event in %+v", r.Events)
	}

	r = e.Step("reach misty island main area")
	if !outputContains(r.Output, "is reachable") {
		t.Errorf("output = %v", r.Output)
	}
}

func TestStep_RemoveLosesRegion(t *testing.T) {
	e := testEngine(t, nil)
	e.Step("give Power Cell 20")
	if !outputContains(e.Step("reach Fire Canyon Main Area").Output, "is reachable") {
		t.Fatal("canyon unreachable with 20 cells")
	}
	r := e.Step("remove Power Cell")
	if !outputContains(r.Output, "No longer reachable") {
		t.Errorf("loss not reported: %v", r.Output)
	}
}

func TestStep_RemoveNothing(t *testing.T) {
	e := testEngine(t, func(o *config.Options) { o.EnableMoveRandomizer = true })
	r := e.Step("remove Punch")
	if len(r.Output) != 1 || r.Output[0] != "You hold no Punch." {
		t.Errorf("output = %v", r.Output)
	}
}

func TestStep_UnknownItem(t *testing.T) {
	e := testEngine(t, nil)
	r := e.Step("give banana")
	if len(r.Output) != 1 || !strings.Contains(r.Output[0], `no item is called "banana"`) {
		t.Errorf("output = %v", r.Output)
	}
}

func TestStep_AmbiguousItem(t *testing.T) {
	e := testEngine(t, nil)
	r := e.Step("give uppercut")
	if len(r.Output) != 1 || !strings.HasPrefix(r.Output[0], "which uppercut?") {
		t.Errorf("output = %v", r.Output)
	}
}

func TestStep_Check(t *testing.T) {
	e := testEngine(t, nil)
	r := e.Step("check FC: Reach The End Of Fire Canyon")
	if len(r.Output) != 3 {
		t.Fatalf("output = %v", r.Output)
	}
	if !strings.Contains(r.Output[0], "out of logic") {
		t.Errorf("line 0 = %q", r.Output[0])
	}
	if r.Output[1] != "  region: Fire Canyon Main Area" {
		t.Errorf("line 1 = %q", r.Output[1])
	}
}

func TestStep_Goal(t *testing.T) {
	e := testEngine(t, func(o *config.Options) { o.CompletionCondition = config.CrossFireCanyon })
	r := e.Step("goal")
	if !outputContains(r.Output, "not reachable yet") {
		t.Errorf("output = %v", r.Output)
	}

	r = e.Step("give Power Cell 20")
	if !outputContains(r.Output, "Goal reached:") {
		t.Errorf("goal handler did not fire: %v", r.Output)
	}
	found := false
	for _, ev := range r.Events {
		if ev.Type == events.GoalReached {
			found = true
		}
	}
	if !found {
		t.Error("no goal_reached event")
	}
	if !outputContains(e.Step("goal").Output, "The goal is reachable.") {
		t.Error("goal not reported as reachable")
	}
}

func TestStep_Orbs(t *testing.T) {
	e := testEngine(t, nil)
	r := e.Step("orbs FC")
	if len(r.Output) != 1 || r.Output[0] != "Reachable orbs in Fire Canyon: 0 of 50." {
		t.Errorf("output = %v", r.Output)
	}
	r = e.Step("orbs")
	if !strings.Contains(r.Output[0], "of 2000 (trades need 1530)") {
		t.Errorf("output = %v", r.Output)
	}
}

func TestStep_Rule(t *testing.T) {
	e := testEngine(t, nil)
	r := e.Step("rule Fire Canyon Main Area")
	if !outputContains(r.Output, "Power Cell x20") {
		t.Errorf("output = %v", r.Output)
	}
}

func TestStep_Pool(t *testing.T) {
	e := testEngine(t, nil)
	r := e.Step("pool")
	if len(r.Output) == 0 || !strings.HasPrefix(r.Output[0], "Item pool:") {
		t.Errorf("output = %v", r.Output)
	}
	if !outputContains(r.Output, "Power Cell") {
		t.Errorf("power cells missing from pool: %v", r.Output)
	}
}

func TestStep_UnknownVerb(t *testing.T) {
	e := testEngine(t, nil)
	r := e.Step("dance")
	if len(r.Output) != 1 || !strings.Contains(r.Output[0], "Type help") {
		t.Errorf("output = %v", r.Output)
	}
}

func TestStep_Help(t *testing.T) {
	e := testEngine(t, nil)
	r := e.Step("help")
	if len(r.Output) != len(HelpLines()) {
		t.Errorf("help has %d lines, want %d", len(r.Output), len(HelpLines()))
	}
}

func TestSnapshotRestore(t *testing.T) {
	e := testEngine(t, nil)
	e.Step("give Power Cell 30")
	e.Step("pool")
	sd := e.Snapshot()

	other := testEngine(t, nil)
	if err := other.Restore(sd); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := other.Items.Count("Power Cell", 1); got != 30 {
		t.Errorf("cells = %d, want 30", got)
	}
	if other.Session != e.Session {
		t.Errorf("Session = %q, want %q", other.Session, e.Session)
	}
	if other.RNG.Position() != e.RNG.Position() {
		t.Errorf("rng position = %d, want %d", other.RNG.Position(), e.RNG.Position())
	}
	if other.Turn != 2 {
		t.Errorf("Turn = %d, want 2", other.Turn)
	}
}

func TestRestore_RebuildsWorld(t *testing.T) {
	e := testEngine(t, nil)
	sd := e.Snapshot()
	sd.Options.CompletionCondition = config.DefeatDarkEcoPlant

	if err := e.Restore(sd); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if e.World.Hub != 1 {
		t.Errorf("Hub = %d, want 1", e.World.Hub)
	}
	r := e.Step("reach Fire Canyon Main Area")
	if !outputContains(r.Output, `no region is called`) {
		t.Errorf("hub 2 region still known: %v", r.Output)
	}
}

func TestNames(t *testing.T) {
	e := testEngine(t, nil)
	tests := []struct {
		verb string
		want string
	}{
		{"give", "Fisherman's Boat"},
		{"reach", "Fire Canyon Main Area"},
		{"orbs", "Fire Canyon"},
		{"rule", "Fire Canyon Main Area"},
	}
	for _, tt := range tests {
		found := false
		for _, name := range e.Names(tt.verb) {
			if name == tt.want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Names(%q) missing %q", tt.verb, tt.want)
		}
	}
	if len(e.Names("check")) != len(e.World.Graph.Locations()) {
		t.Errorf("Names(check) = %d names, want one per location", len(e.Names("check")))
	}
	if e.Names("goal") != nil {
		t.Error("Names(goal) should be nil")
	}
}

func TestReset(t *testing.T) {
	e := testEngine(t, func(o *config.Options) { o.EnableMoveRandomizer = false })
	start := e.Items.Names(e.Player())
	e.Step("give Fisherman's Boat")

	r := e.Step("reset")
	if len(r.Output) == 0 || r.Output[0] != "Inventory reset." {
		t.Fatalf("output = %v", r.Output)
	}
	if !outputContains(r.Output, "No longer reachable: ") {
		t.Errorf("expected lost regions in %v", r.Output)
	}
	if e.Items.Count("Fisherman's Boat", 1) != 0 {
		t.Error("boat survived reset")
	}
	got := e.Items.Names(e.Player())
	if len(got) != len(start) {
		t.Errorf("items after reset = %v, want %v", got, start)
	}
}

func TestRestore_RejectsOptionsPastFriendlyLimits(t *testing.T) {
	e := testEngine(t, nil)
	before := e.World
	sd := e.Snapshot()
	sd.Options.FireCanyonCellCount = 90
	sd.Options.CitizenOrbTradeAmount = 200

	err := e.Restore(sd)
	var cerr *config.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Restore error = %v, want *config.Error", err)
	}
	if !cerr.Has("fire_canyon_cell_count") || !cerr.Has("citizen_orb_trade_amount") {
		t.Errorf("rejected fields = %v", cerr.Fields)
	}
	if e.World != before {
		t.Error("world replaced by a rejected save")
	}
}

func TestRestore_SortsConnectorCounts(t *testing.T) {
	e := testEngine(t, nil)
	e.FriendlyOptions = false
	sd := e.Snapshot()
	sd.Options.EnableOrderedCellCounts = true
	sd.Options.FireCanyonCellCount = 60
	sd.Options.LavaTubeCellCount = 10

	if err := e.Restore(sd); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	o := e.World.Options
	if o.FireCanyonCellCount != 10 || o.MountainPassCellCount != 45 || o.LavaTubeCellCount != 60 {
		t.Errorf("cell counts = %d/%d/%d, want 10/45/60",
			o.FireCanyonCellCount, o.MountainPassCellCount, o.LavaTubeCellCount)
	}
}

func TestRestore_ForgetsOldItems(t *testing.T) {
	e := testEngine(t, func(o *config.Options) {
		n, err := config.Normalize(*o, true)
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		*o = n
	})
	w := e.World
	e.Sweep()
	if w.Eval.Cached() != 1 {
		t.Fatalf("Cached = %d after one sweep, want 1", w.Eval.Cached())
	}

	if err := e.Restore(e.Snapshot()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if e.World != w {
		t.Fatal("normalized options should keep the world")
	}
	if w.Eval.Cached() != 0 {
		t.Errorf("Cached = %d after restore, want 0", w.Eval.Cached())
	}
}

func TestPool_StableAcrossCalls(t *testing.T) {
	e := testEngine(t, func(o *config.Options) { o.FillerPowerCellsReplacedWithTraps = 10 })
	first := e.Step("pool").Output
	second := e.Step("pool").Output
	if strings.Join(first, "\n") != strings.Join(second, "\n") {
		t.Errorf("pool changed between calls:\n%v\n%v", first, second)
	}
	if e.RNG.Position() != 0 {
		t.Errorf("RNG position = %d, want 0", e.RNG.Position())
	}
}
