// Package goal decides whether a player's collection completes the world.
package goal

import (
	"fmt"

	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/reach"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/engine/state"
	"github.com/nathoo/jaklogic/types"
)

// Goal kinds.
const (
	ReachRegion    = "reach_region"
	ReachLocation  = "reach_location"
	CountLocations = "count_locations"
)

// Goal is a completion condition. Rule is an extra requirement on top of
// the reachability check.
type Goal struct {
	Kind      string
	Name      string
	Region    graph.RegionID
	Location  int64
	Locations []int64
	Count     int
	Rule      types.Rule
}

// Satisfied reports whether the collection meets the goal.
func (g Goal) Satisfied(ev *reach.Evaluator, c *state.Collection, player int) bool {
	res := ev.Sweep(c, player)
	switch g.Kind {
	case ReachRegion:
		if !res.CanReachRegion(g.Region) {
			return false
		}
	case ReachLocation:
		if !res.CanReachLocation(g.Location) {
			return false
		}
	case CountLocations:
		if Progress(g, res) < g.Count {
			return false
		}
	default:
		return false
	}
	return rules.Eval(g.Rule, collectionEnv{c: c, player: player, res: res})
}

// Progress returns how many of the goal's counted locations are reachable.
// It is zero for non-counting goals.
func Progress(g Goal, res *reach.Result) int {
	if g.Kind != CountLocations {
		return 0
	}
	n := 0
	for _, id := range g.Locations {
		if res.CanReachLocation(id) {
			n++
		}
	}
	return n
}

// Describe renders a goal for display.
func (g Goal) Describe(gr *graph.Graph) string {
	var s string
	switch g.Kind {
	case ReachRegion:
		s = "reach " + gr.Name(g.Region)
	case ReachLocation:
		s = fmt.Sprintf("reach location %d", g.Location)
		if g.Name != "" {
			s = "reach " + g.Name
		}
	case CountLocations:
		s = fmt.Sprintf("complete %d of %d tasks", g.Count, len(g.Locations))
	default:
		return "unknown goal"
	}
	if !rules.IsAlways(g.Rule) {
		s += " with " + rules.Describe(g.Rule, nil)
	}
	return s
}

type collectionEnv struct {
	c      *state.Collection
	player int
	res    *reach.Result
}

func (e collectionEnv) Count(item string) int { return e.c.Count(item, e.player) }
func (e collectionEnv) ReachableOrbs(level string) int { return e.res.ReachableOrbs(level) }
func (e collectionEnv) LocationReachable(id int64) bool { return e.res.CanReachLocation(id) }
