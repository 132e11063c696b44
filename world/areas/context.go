// Package areas builds the regions of each level into a player's graph.
//
// Every level has one Builder. Builders run against a Context that holds
// the graph under construction, the static tables and the options, and
// that records the first error so a builder can be written as a straight
// list of regions, locations and edges.
package areas

import (
	"fmt"

	"github.com/nathoo/jaklogic/config"
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/orbsanity"
	"github.com/nathoo/jaklogic/engine/tables"
	"github.com/nathoo/jaklogic/types"
)

// MainArea is the sub-area name of a level's entry region.
const MainArea = "Main Area"

// Builder creates the regions of one level. Build returns the regions it
// created, entry region first.
type Builder interface {
	Level() string
	Hub() int
	Build(ctx *Context) ([]graph.RegionID, error)
}

// Context is the construction state shared by the builders of one graph.
type Context struct {
	Graph   *graph.Graph
	Defs    *tables.Defs
	Options config.Options
	// TradeOrbs is what every trade of the world costs together. Zero
	// means the options' full trade total.
	TradeOrbs int

	level   types.LevelDef
	created []graph.RegionID
	err     error
}

// NewContext returns a context building into g.
func NewContext(g *graph.Graph, defs *tables.Defs, opts config.Options) *Context {
	return &Context{Graph: g, Defs: defs, Options: opts}
}

// enter switches the context to a level and clears the sticky error.
func (c *Context) enter(level string) error {
	lv, ok := c.Defs.Level(level)
	if !ok {
		return fmt.Errorf("areas: unknown level %q", level)
	}
	c.level = lv
	c.created = nil
	c.err = nil
	return nil
}

// Run builds one level with b.
func (c *Context) Run(b Builder) ([]graph.RegionID, error) {
	if err := c.enter(b.Level()); err != nil {
		return nil, err
	}
	regions, err := b.Build(c)
	if err == nil {
		err = c.err
	}
	if err != nil {
		return nil, fmt.Errorf("areas: %s: %w", b.Level(), err)
	}
	return regions, nil
}

// Level returns the level being built.
func (c *Context) Level() types.LevelDef { return c.level }

// Err returns the first error recorded while building the current level.
func (c *Context) Err() error { return c.err }

// Created returns the regions made so far for the current level.
func (c *Context) Created() []graph.RegionID {
	out := make([]graph.RegionID, len(c.created))
	copy(out, c.created)
	return out
}

func (c *Context) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Region creates a sub-area of the current level.
func (c *Context) Region(sub string, orbs int) graph.RegionID {
	if c.err != nil {
		return c.Graph.Root()
	}
	id, err := c.Graph.CreateRegion(c.level.Name, sub, orbs)
	if err != nil {
		c.fail(err)
		return c.Graph.Root()
	}
	c.created = append(c.created, id)
	return id
}

// Virtual creates an orbless sub-area that stands for an event rather
// than a place.
func (c *Context) Virtual(sub string) graph.RegionID {
	if c.err != nil {
		return c.Graph.Root()
	}
	id, err := c.Graph.CreateVirtualRegion(c.level.Name, sub)
	if err != nil {
		c.fail(err)
		return c.Graph.Root()
	}
	c.created = append(c.created, id)
	return id
}

// Connect adds an edge between two regions.
func (c *Context) Connect(from, to graph.RegionID, rule types.Rule) {
	if c.err != nil {
		return
	}
	c.fail(c.Graph.Connect(from, to, rule))
}

// Cells attaches power cell locations by native id.
func (c *Context) Cells(r graph.RegionID, rule types.Rule, natives ...int) {
	c.attach(r, types.CategoryCell, rule, natives)
}

// Flies attaches scout fly locations by native id.
func (c *Context) Flies(r graph.RegionID, rule types.Rule, natives ...int) {
	c.attach(r, types.CategoryFly, rule, natives)
}

// Specials attaches special locations by native id.
func (c *Context) Specials(r graph.RegionID, rule types.Rule, natives ...int) {
	c.attach(r, types.CategorySpecial, rule, natives)
}

// Caches attaches orb cache locations by native id.
func (c *Context) Caches(r graph.RegionID, rule types.Rule, natives ...int) {
	c.attach(r, types.CategoryCache, rule, natives)
}

func (c *Context) attach(r graph.RegionID, category string, rule types.Rule, natives []int) {
	if c.err != nil {
		return
	}
	locs := make([]int64, 0, len(natives))
	for _, n := range natives {
		id, ok := c.Defs.NativeLocation(category, n)
		if !ok {
			c.fail(fmt.Errorf("no %s location with native id %d", category, n))
			return
		}
		locs = append(locs, id)
	}
	c.fail(c.Graph.AddLocations(r, locs, rule))
}

// Location returns the id of a native location of the current tables, for
// trade prerequisites.
func (c *Context) Location(category string, native int) int64 {
	id, ok := c.Defs.NativeLocation(category, native)
	if !ok {
		c.fail(fmt.Errorf("no %s location with native id %d", category, native))
	}
	return id
}

// LevelOrbsanity attaches the level's orbsanity region to entry when
// per-level orbsanity is on. Each bundle needs its share of the level's
// reachable orbs.
func (c *Context) LevelOrbsanity(entry graph.RegionID) {
	if c.err != nil || c.Options.EnableOrbsanity != orbsanity.PerLevel {
		return
	}
	scope := orbsanity.LevelScope(c.level)
	bundles, err := orbsanity.Generate(scope, c.Options.LevelOrbsanityBundleSize)
	if err != nil {
		c.fail(err)
		return
	}
	orbs := c.Virtual("Orbsanity")
	for _, b := range bundles {
		c.fail(c.Graph.AddLocations(orbs, []int64{b.ID}, orbsanity.Rule(scope, b)))
	}
	c.Connect(entry, orbs, types.Rule{})
}
