// Package world assembles one player's region graph from the level
// builders, wires the levels together and installs the completion goal.
package world

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nathoo/jaklogic/config"
	"github.com/nathoo/jaklogic/engine/goal"
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/orbs"
	"github.com/nathoo/jaklogic/engine/orbsanity"
	"github.com/nathoo/jaklogic/engine/reach"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/engine/state"
	"github.com/nathoo/jaklogic/engine/tables"
	"github.com/nathoo/jaklogic/types"
	"github.com/nathoo/jaklogic/world/areas"
)

// FreeCellsRegion groups the power cells given for freeing a level's
// seven scout flies.
const FreeCellsRegion = "'Free 7 Scout Flies' Power Cells"

// FliesPerCell is how many scout flies of a level free its power cell.
const FliesPerCell = 7

var (
	ErrCondition = errors.New("world: unknown completion condition")
	ErrTrades    = errors.New("world: trades need more orbs than the world holds")
	ErrTrapName  = errors.New("world: unknown trap in trap weights")
)

// World is a built, frozen region graph with its goal.
type World struct {
	Defs    *tables.Defs
	Options config.Options
	Player  int
	Hub     int
	Graph   *graph.Graph
	Eval    *reach.Evaluator
	Goal    goal.Goal
	// Orbs is the documented orb total of the built hubs.
	Orbs int
	// TradeOrbs is what every trade of the built hubs costs together.
	TradeOrbs int

	entries map[string]graph.RegionID
}

// Build creates the world of one player. opts must already be normalized.
func Build(defs *tables.Defs, opts config.Options, player int) (*World, error) {
	hub, ok := config.Hubs(opts.CompletionCondition)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCondition, opts.CompletionCondition)
	}
	if err := checkTrapWeights(defs, opts.TrapWeights); err != nil {
		return nil, err
	}

	w := &World{
		Defs:      defs,
		Options:   opts,
		Player:    player,
		Hub:       hub,
		Graph:     graph.New(player),
		Orbs:      defs.OrbsUpTo(hub),
		TradeOrbs: areas.TradeOrbs(opts, hub),
		entries:   map[string]graph.RegionID{},
	}
	if w.TradeOrbs > w.Orbs {
		return nil, fmt.Errorf("%w: %d orbs for trades, %d in hubs 1-%d", ErrTrades, w.TradeOrbs, w.Orbs, hub)
	}

	g := w.Graph
	if err := w.freeCells(); err != nil {
		return nil, err
	}
	if err := w.globalOrbsanity(); err != nil {
		return nil, err
	}

	ctx := areas.NewContext(g, defs, opts)
	ctx.TradeOrbs = w.TradeOrbs
	for _, b := range areas.UpTo(hub) {
		regions, err := ctx.Run(b)
		if err != nil {
			return nil, err
		}
		w.entries[b.Level()] = regions[0]
	}

	if err := w.connectLevels(); err != nil {
		return nil, err
	}
	if err := w.installGoal(); err != nil {
		return nil, err
	}
	g.Freeze()
	w.Eval = reach.New(g)

	if err := w.verify(); err != nil {
		return nil, err
	}

	slog.Info("world built",
		"player", player,
		"regions", g.Len(),
		"locations", len(g.Locations()),
		"orbs", orbs.Total(g),
		"goal", w.Goal.Describe(g),
	)
	return w, nil
}

// freeCells adds the region holding every built level's free-7 cell.
func (w *World) freeCells() error {
	g := w.Graph
	free, err := g.CreateVirtualRegion("", FreeCellsRegion)
	if err != nil {
		return err
	}
	for _, lv := range w.Defs.LevelsUpTo(w.Hub) {
		id, ok := w.Defs.NativeLocation(types.CategoryCell, lv.FlyCell)
		if !ok {
			return fmt.Errorf("world: %s has no free cell %d", lv.Name, lv.FlyCell)
		}
		if err := g.AddLocations(free, []int64{id}, rules.HasCount(lv.FlyItem, FliesPerCell)); err != nil {
			return err
		}
	}
	return g.Connect(g.Root(), free, rules.Always())
}

// globalOrbsanity adds the bundles cut from every built hub's orbs.
func (w *World) globalOrbsanity() error {
	if w.Options.EnableOrbsanity != orbsanity.Global {
		return nil
	}
	g := w.Graph
	scope := orbsanity.GlobalScope(w.Orbs)
	bundles, err := orbsanity.Generate(scope, w.Options.GlobalOrbsanityBundleSize)
	if err != nil {
		return fmt.Errorf("world: global orbsanity: %w", err)
	}
	region, err := g.CreateVirtualRegion("", "Orbsanity")
	if err != nil {
		return err
	}
	for _, b := range bundles {
		if err := g.AddLocations(region, []int64{b.ID}, orbsanity.Rule(scope, b)); err != nil {
			return err
		}
	}
	return g.Connect(g.Root(), region, rules.Always())
}

// link is one connection between levels. A from sub-area of "" means the
// level's entry region.
type link struct {
	from, fromSub string
	to            string
	rule          types.Rule
}

func (w *World) links() []link {
	o := w.Options
	cells := func(n int) types.Rule { return rules.HasCount(areas.PowerCell, n) }
	return []link{
		{from: "Geyser Rock", to: "Sandover Village"},
		{from: "Sandover Village", to: "Forbidden Jungle"},
		{from: "Sandover Village", to: "Sentinel Beach"},
		{from: "Sandover Village", to: "Misty Island", rule: rules.Has(areas.FishermansBoat)},
		{from: "Sandover Village", to: "Fire Canyon", rule: cells(o.FireCanyonCellCount)},
		{from: "Fire Canyon", to: "Rock Village"},
		{from: "Rock Village", to: "Precursor Basin"},
		{from: "Rock Village", to: "Lost Precursor City"},
		{from: "Rock Village", fromSub: areas.PontoonBridge, to: "Boggy Swamp"},
		{from: "Rock Village", fromSub: areas.KlawwsCliff, to: "Mountain Pass", rule: cells(o.MountainPassCellCount)},
		{from: "Mountain Pass", fromSub: areas.Race, to: "Volcanic Crater"},
		{from: "Volcanic Crater", to: "Spider Cave"},
		{from: "Volcanic Crater", to: "Snowy Mountain", rule: rules.Has(areas.SnowyGondola)},
		{from: "Volcanic Crater", to: "Lava Tube", rule: cells(o.LavaTubeCellCount)},
		{from: "Lava Tube", to: "Gol and Maia's Citadel"},
	}
}

// connectLevels wires the root to Geyser Rock and every link whose two
// levels were built.
func (w *World) connectLevels() error {
	g := w.Graph
	start, ok := w.entries["Geyser Rock"]
	if !ok {
		return errors.New("world: Geyser Rock was not built")
	}
	if err := g.Connect(g.Root(), start, rules.Always()); err != nil {
		return err
	}
	for _, l := range w.links() {
		from, ok := w.entries[l.from]
		if !ok {
			continue
		}
		to, ok := w.entries[l.to]
		if !ok {
			continue
		}
		if l.fromSub != "" {
			name := graph.QualifiedName(l.from, l.fromSub)
			if from, ok = g.Lookup(name); !ok {
				return fmt.Errorf("world: no region %q", name)
			}
		}
		if err := g.Connect(from, to, l.rule); err != nil {
			return err
		}
	}
	return nil
}

// installGoal resolves the completion condition against the built graph.
func (w *World) installGoal() error {
	g, o := w.Graph, w.Options
	region := func(level, sub string) (graph.RegionID, error) {
		name := graph.QualifiedName(level, sub)
		id, ok := g.Lookup(name)
		if !ok {
			return 0, fmt.Errorf("world: goal region %q not built", name)
		}
		g.MarkTarget(id)
		return id, nil
	}
	cell := func(native int) (int64, error) {
		id, ok := w.Defs.NativeLocation(types.CategoryCell, native)
		if !ok {
			return 0, fmt.Errorf("world: goal cell %d unknown", native)
		}
		return id, nil
	}

	var err error
	gl := goal.Goal{Name: o.CompletionCondition}
	switch o.CompletionCondition {
	case config.DefeatDarkEcoPlant:
		gl.Kind = goal.ReachRegion
		gl.Region, err = region("Forbidden Jungle", areas.PlantBoss)
	case config.CrossFireCanyon:
		gl.Kind = goal.ReachLocation
		gl.Location, err = cell(69)
	case config.DefeatKlaww:
		gl.Kind = goal.ReachRegion
		gl.Region, err = region("Rock Village", areas.KlawwsCliff)
		gl.Rule = rules.HasCount(areas.PowerCell, o.MountainPassCellCount)
		if o.RequirePunchForKlaww {
			gl.Rule = rules.And(gl.Rule, rules.Has(areas.Punch))
		}
	case config.CrossMountainPass:
		gl.Kind = goal.ReachLocation
		gl.Location, err = cell(87)
	case config.CrossLavaTube:
		gl.Kind = goal.ReachLocation
		gl.Location, err = cell(89)
	case config.DefeatGolAndMaia:
		gl.Kind = goal.ReachRegion
		gl.Region, err = region("Gol and Maia's Citadel", areas.FinalBoss)
	case config.Open100CellDoor:
		gl.Kind = goal.ReachRegion
		gl.Region, err = region("Gol and Maia's Citadel", areas.FinalDoor)
	case config.CompleteNumberOfTasks:
		gl.Kind = goal.CountLocations
		gl.Locations = w.locationsOf(types.CategoryCell)
		gl.Count = o.CompletionTaskCount
	default:
		return fmt.Errorf("%w: %q", ErrCondition, o.CompletionCondition)
	}
	if err != nil {
		return err
	}
	w.Goal = gl
	return nil
}

// verify runs the integrity checks of a frozen world.
func (w *World) verify() error {
	g := w.Graph
	if err := orbs.Verify(g, w.Orbs); err != nil {
		return fmt.Errorf("world: %w", err)
	}
	if err := orbs.VerifyLevels(g, w.Defs.LevelsUpTo(w.Hub)); err != nil {
		return fmt.Errorf("world: %w", err)
	}
	if err := g.Validate(w.Defs.IsItem); err != nil {
		return fmt.Errorf("world: %w", err)
	}

	full := w.fullState()
	res := w.Eval.Sweep(full, w.Player)
	w.Eval.Forget(full)
	for i := 0; i < g.Len(); i++ {
		if !res.CanReachRegion(graph.RegionID(i)) {
			return fmt.Errorf("world: region %q unreachable with every item", g.Name(graph.RegionID(i)))
		}
	}
	for _, id := range g.Locations() {
		if !res.CanReachLocation(id) {
			return fmt.Errorf("world: location %q unreachable with every item", w.Defs.Locations[id].Name)
		}
	}
	return nil
}

// fullState holds more of every item than any rule asks for.
func (w *World) fullState() *state.Collection {
	c := state.New()
	for _, it := range w.Defs.Items {
		c.Collect(it.Name, w.Player, tables.TotalOrbs)
	}
	return c
}

// locationsOf returns the graph's locations of a category, in graph order.
func (w *World) locationsOf(category string) []int64 {
	var out []int64
	for _, id := range w.Graph.Locations() {
		if w.Defs.Locations[id].Category == category {
			out = append(out, id)
		}
	}
	return out
}

// Entry returns the entry region of a built level.
func (w *World) Entry(level string) (graph.RegionID, bool) {
	id, ok := w.entries[level]
	return id, ok
}

// Completion reports whether c completes the world for its player.
func (w *World) Completion(c *state.Collection) bool {
	return w.Goal.Satisfied(w.Eval, c, w.Player)
}

// ItemNameToID returns the item name table handed to the host.
func (w *World) ItemNameToID() map[string]int64 { return w.Defs.ItemNameToID() }

// LocationNameToID returns the location name table handed to the host.
func (w *World) LocationNameToID() map[string]int64 { return w.Defs.LocationNameToID() }

func checkTrapWeights(defs *tables.Defs, weights map[string]int) error {
	known := map[string]bool{}
	for _, name := range defs.ItemGroups[tables.GroupTraps] {
		known[name] = true
	}
	for name := range weights {
		if !known[name] {
			return fmt.Errorf("%w: %q", ErrTrapName, name)
		}
	}
	return nil
}
