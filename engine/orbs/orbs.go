// Package orbs does the precursor orb accounting of a region graph.
package orbs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/types"
)

// Trade counts and default prices.
const (
	CitizenTrades  = 9
	OracleTrades   = 6
	DefaultCitizen = 90
	DefaultOracle  = 120
)

// ErrMismatch is returned when orb totals do not add up.
var ErrMismatch = errors.New("orbs: total mismatch")

// Total sums the orbs of every region.
func Total(g *graph.Graph) int {
	total := 0
	for i := 0; i < g.Len(); i++ {
		total += g.Orbs(graph.RegionID(i))
	}
	return total
}

// LevelTotal sums the orbs of every region of a level.
func LevelTotal(g *graph.Graph, level string) int {
	total := 0
	for i := 0; i < g.Len(); i++ {
		if g.LevelOf(graph.RegionID(i)) == level {
			total += g.Orbs(graph.RegionID(i))
		}
	}
	return total
}

// Reachable sums the orbs of reached regions, optionally within a level.
// reached is indexed by RegionID.
func Reachable(g *graph.Graph, reached []bool, level string) int {
	total := 0
	for i, ok := range reached {
		if !ok || i >= g.Len() {
			continue
		}
		id := graph.RegionID(i)
		if level == "" || g.LevelOf(id) == level {
			total += g.Orbs(id)
		}
	}
	return total
}

// Verify checks that the graph's orbs sum to want.
func Verify(g *graph.Graph, want int) error {
	if got := Total(g); got != want {
		return fmt.Errorf("%w: regions hold %d orbs, want %d", ErrMismatch, got, want)
	}
	return nil
}

// VerifyLevels checks that every level's sub-regions sum to the level's
// documented total.
func VerifyLevels(g *graph.Graph, levels []types.LevelDef) error {
	var bad []string
	for _, lv := range levels {
		if got := LevelTotal(g, lv.Name); got != lv.Orbs {
			bad = append(bad, fmt.Sprintf("%s: %d, want %d", lv.Name, got, lv.Orbs))
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return fmt.Errorf("%w: %v", ErrMismatch, bad)
	}
	return nil
}

// TradeTotal is the number of orbs needed to pay every trade.
func TradeTotal(citizen, oracle int) int {
	return CitizenTrades*citizen + OracleTrades*oracle
}

// BundlesFor returns how many bundles of size it takes to hold n orbs.
func BundlesFor(n, size int) int {
	if size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
