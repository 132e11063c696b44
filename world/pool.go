package world

import (
	"sort"

	"github.com/nathoo/jaklogic/config"
	"github.com/nathoo/jaklogic/engine/orbs"
	"github.com/nathoo/jaklogic/engine/tables"
	"github.com/nathoo/jaklogic/types"
	"github.com/nathoo/jaklogic/world/areas"
)

// Picker chooses an index by weight. engine.RNG implements it.
type Picker interface {
	WeightedSelect(weights []int) int
}

// RequiredCells is the number of power cells the world's logic can ask
// for. Cells above it are filler.
func (w *World) RequiredCells() int {
	o := w.Options
	need := 0
	if w.Hub >= 2 {
		need = o.FireCanyonCellCount
	}
	if w.Hub >= 3 || o.CompletionCondition == config.DefeatKlaww {
		need = max(need, o.MountainPassCellCount)
	}
	if w.Hub >= 3 {
		need = max(need, o.LavaTubeCellCount)
	}
	switch o.CompletionCondition {
	case config.Open100CellDoor:
		need = max(need, areas.CellsForDoor)
	case config.CompleteNumberOfTasks:
		need = max(need, o.CompletionTaskCount)
	}
	return need
}

// RequiredBundles is the number of orb bundle items the trades need. It
// is zero with orbsanity off.
func (w *World) RequiredBundles() int {
	size := w.Options.OrbsanityBundleSize()
	if size == 0 {
		return 0
	}
	return orbs.BundlesFor(w.TradeOrbs, size)
}

// ItemPool returns one item name per location of the graph. Filler power
// cells and orb bundles are replaced by traps as configured, picked by
// weight with p. The result is sorted by name.
func (w *World) ItemPool(p Picker) []string {
	var (
		pool    []string
		cells   int
		bundles int
		bundle  string
	)
	moves := w.randomizedMoves()
	filler := w.fillerName()

	for _, id := range w.Graph.Locations() {
		loc := w.Defs.Locations[id]
		switch loc.Category {
		case types.CategoryCell:
			cells++
		case types.CategoryFly:
			lv, _ := w.Defs.Level(loc.Level)
			pool = append(pool, lv.FlyItem)
		case types.CategorySpecial:
			pool = append(pool, loc.Name)
		case types.CategoryCache:
			if name, ok := moves[loc.Native]; ok {
				pool = append(pool, name)
			} else {
				pool = append(pool, filler)
			}
		case types.CategoryOrb:
			bundles++
			bundle = tables.BundleItemName(w.Options.OrbsanityBundleSize())
		}
	}

	pool = append(pool, w.withTraps(areas.PowerCell, cells, w.RequiredCells(), w.Options.FillerPowerCellsReplacedWithTraps, p)...)
	if bundles > 0 {
		pool = append(pool, w.withTraps(bundle, bundles, w.RequiredBundles(), w.Options.FillerOrbBundlesReplacedWithTraps, p)...)
	}
	sort.Strings(pool)
	return pool
}

// withTraps returns n copies of item with up to replace of the copies
// above required swapped for traps.
func (w *World) withTraps(item string, n, required, replace int, p Picker) []string {
	traps, weights := w.trapWeights()
	if len(traps) == 0 {
		replace = 0
	}
	replace = max(0, min(replace, n-min(n, required)))
	out := make([]string, 0, n)
	for i := 0; i < n-replace; i++ {
		out = append(out, item)
	}
	for i := 0; i < replace; i++ {
		out = append(out, traps[p.WeightedSelect(weights)])
	}
	return out
}

// trapWeights returns the traps with a positive weight. Without
// configured weights every trap weighs 1.
func (w *World) trapWeights() ([]string, []int) {
	var (
		names   []string
		weights []int
	)
	for _, name := range w.Defs.ItemGroups[tables.GroupTraps] {
		weight := 1
		if w.Options.TrapWeights != nil {
			weight = w.Options.TrapWeights[name]
		}
		if weight > 0 {
			names = append(names, name)
			weights = append(weights, weight)
		}
	}
	return names, weights
}

// randomizedMoves maps orb cache natives to the moves they hold when the
// move randomizer is on.
func (w *World) randomizedMoves() map[int]string {
	out := map[int]string{}
	if !w.Options.EnableMoveRandomizer {
		return out
	}
	for _, it := range w.Defs.Items {
		if it.Category == types.CategoryMove {
			out[it.Native] = it.Name
		}
	}
	return out
}

func (w *World) fillerName() string {
	if names := w.Defs.ItemGroups[tables.GroupFiller]; len(names) > 0 {
		return names[0]
	}
	return ""
}

// StartingInventory lists the items a player starts with: every move
// the pool does not hold.
func (w *World) StartingInventory() []string {
	moves := w.randomizedMoves()
	inPool := map[string]bool{}
	for _, id := range w.locationsOf(types.CategoryCache) {
		if name, ok := moves[w.Defs.Locations[id].Native]; ok {
			inPool[name] = true
		}
	}
	var out []string
	for _, name := range w.Defs.ItemGroups[tables.GroupMoves] {
		if !inPool[name] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
