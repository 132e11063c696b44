// Package reach evaluates which regions and locations a player's
// collection can reach.
//
// A sweep is a monotone fixed-point closure from the root region: every
// pass relaxes the edges out of every reached region, and the sweep ends
// after a pass that reaches nothing new. Rules only ever turn true as
// regions are added, so at most one pass per region is needed.
package reach

import (
	"sync"

	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/engine/state"
)

// Evaluator answers reachability queries against a frozen graph. Results
// are cached per collection and player, and recomputed when the
// collection's version changes. It is safe for concurrent use.
type Evaluator struct {
	g *graph.Graph

	mu    sync.Mutex
	cache map[cacheKey]*Result
}

type cacheKey struct {
	c      *state.Collection
	player int
}

// New returns an evaluator for g.
func New(g *graph.Graph) *Evaluator {
	return &Evaluator{g: g, cache: map[cacheKey]*Result{}}
}

// Graph returns the evaluated graph.
func (e *Evaluator) Graph() *graph.Graph { return e.g }

// Sweep returns the reachability result for a player's collection.
func (e *Evaluator) Sweep(c *state.Collection, player int) *Result {
	key := cacheKey{c: c, player: player}
	version := c.Version()

	e.mu.Lock()
	if r, ok := e.cache[key]; ok && r.Version == version {
		e.mu.Unlock()
		return r
	}
	e.mu.Unlock()

	r := sweep(e.g, c, player)
	r.Version = version

	e.mu.Lock()
	e.cache[key] = r
	e.mu.Unlock()
	return r
}

// Forget drops cached results for a collection.
func (e *Evaluator) Forget(c *state.Collection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for k := range e.cache {
		if k.c == c {
			delete(e.cache, k)
		}
	}
}

// Cached returns the number of cached results.
func (e *Evaluator) Cached() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.cache)
}

// CanReachRegion reports whether a region is reachable.
func (e *Evaluator) CanReachRegion(c *state.Collection, player int, id graph.RegionID) bool {
	return e.Sweep(c, player).CanReachRegion(id)
}

// CanReachLocation reports whether a location is reachable: its region is
// reachable and its own rule holds.
func (e *Evaluator) CanReachLocation(c *state.Collection, player int, loc int64) bool {
	return e.Sweep(c, player).CanReachLocation(loc)
}

// ReachableOrbs sums the orbs of reachable regions in a level, or in the
// whole world when level is empty.
func (e *Evaluator) ReachableOrbs(c *state.Collection, player int, level string) int {
	return e.Sweep(c, player).ReachableOrbs(level)
}

// Result is an immutable reachability snapshot.
type Result struct {
	Version uint64
	Passes  int

	regions   []bool
	orbs      map[string]int
	locations map[int64]bool
}

// CanReachRegion reports whether a region was reached.
func (r *Result) CanReachRegion(id graph.RegionID) bool {
	return id >= 0 && int(id) < len(r.regions) && r.regions[id]
}

// CanReachLocation reports whether a location is reachable.
func (r *Result) CanReachLocation(id int64) bool {
	return r.locations[id]
}

// ReachableOrbs returns the reachable orbs of a level ("" for all).
func (r *Result) ReachableOrbs(level string) int {
	return r.orbs[level]
}

// Reached returns the per-region reached flags, indexed by RegionID.
func (r *Result) Reached() []bool {
	return append([]bool(nil), r.regions...)
}

// Regions returns the reached regions in id order.
func (r *Result) Regions() []graph.RegionID {
	var out []graph.RegionID
	for i, ok := range r.regions {
		if ok {
			out = append(out, graph.RegionID(i))
		}
	}
	return out
}

// LocationCount returns how many locations are reachable.
func (r *Result) LocationCount() int {
	n := 0
	for _, ok := range r.locations {
		if ok {
			n++
		}
	}
	return n
}

// sweepEnv is the rule environment during a sweep. Orb totals are the
// partial sums of the regions reached so far.
type sweepEnv struct {
	g        *graph.Graph
	c        *state.Collection
	player   int
	reached  []bool
	orbs     map[string]int
	visiting map[int64]bool
}

func (s *sweepEnv) Count(item string) int { return s.c.Count(item, s.player) }

func (s *sweepEnv) ReachableOrbs(level string) int { return s.orbs[level] }

func (s *sweepEnv) LocationReachable(id int64) bool {
	region, ok := s.g.LocationRegion(id)
	if !ok || !s.reached[region] {
		return false
	}
	// A prerequisite chain that loops back on itself is unsatisfiable.
	if s.visiting[id] {
		return false
	}
	s.visiting[id] = true
	defer delete(s.visiting, id)
	return rules.Eval(s.g.LocationRule(id), s)
}

func (s *sweepEnv) reach(id graph.RegionID) {
	s.reached[id] = true
	orbs := s.g.Orbs(id)
	s.orbs[""] += orbs
	if lv := s.g.LevelOf(id); lv != "" {
		s.orbs[lv] += orbs
	}
}

func sweep(g *graph.Graph, c *state.Collection, player int) *Result {
	env := &sweepEnv{
		g:        g,
		c:        c,
		player:   player,
		reached:  make([]bool, g.Len()),
		orbs:     map[string]int{},
		visiting: map[int64]bool{},
	}
	env.reach(g.Root())

	passes := 0
	for {
		passes++
		changed := false
		for i := 0; i < g.Len(); i++ {
			if !env.reached[i] {
				continue
			}
			for _, e := range g.Exits(graph.RegionID(i)) {
				if env.reached[e.To] {
					continue
				}
				if rules.Eval(e.Rule, env) {
					env.reach(e.To)
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	locs := map[int64]bool{}
	for _, id := range g.Locations() {
		locs[id] = env.LocationReachable(id)
	}
	return &Result{
		Passes:    passes,
		regions:   env.reached,
		orbs:      env.orbs,
		locations: locs,
	}
}
