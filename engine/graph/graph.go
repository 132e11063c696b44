// Package graph is the region graph of one player's world.
//
// Regions live in an arena and are addressed by RegionID handles. Names
// are only used for lookups and diagnostics. A graph is built once,
// frozen, and then only queried.
package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nathoo/jaklogic/types"
)

// RootName is the name of the region every traversal starts from.
const RootName = "Menu"

var (
	ErrDuplicateRegion = errors.New("graph: duplicate region")
	ErrLocationOwned   = errors.New("graph: location already owned by a region")
	ErrFrozen          = errors.New("graph: graph is frozen")
	ErrUnknownRegion   = errors.New("graph: unknown region")
	ErrNegativeOrbs    = errors.New("graph: negative orb count")
)

// RegionID is a handle into a graph's region arena.
type RegionID int

// Region is a named area. Orbs is the number of precursor orbs that become
// collectible when the region is reachable.
type Region struct {
	ID        RegionID
	Name      string // qualified: "<Level> <Sub>" or a bare name
	Level     string
	Sub       string
	Orbs      int
	Virtual   bool
	Locations []int64
}

// Edge is a directed connection guarded by a rule.
type Edge struct {
	From RegionID
	To   RegionID
	Rule types.Rule
}

// Graph is the arena of regions for one player.
type Graph struct {
	Player int

	regions   []Region
	exits     [][]Edge
	byName    map[string]RegionID
	locRegion map[int64]RegionID
	locRule   map[int64]types.Rule
	locOrder  []int64
	targets   map[RegionID]bool
	frozen    bool
}

// New returns a graph containing only the root region.
func New(player int) *Graph {
	g := &Graph{
		Player:    player,
		byName:    map[string]RegionID{},
		locRegion: map[int64]RegionID{},
		locRule:   map[int64]types.Rule{},
		targets:   map[RegionID]bool{},
	}
	g.add(Region{Name: RootName, Sub: RootName})
	return g
}

// QualifiedName joins a level and a sub-area name.
func QualifiedName(level, sub string) string {
	return strings.TrimSpace(level + " " + sub)
}

func (g *Graph) add(r Region) RegionID {
	r.ID = RegionID(len(g.regions))
	g.regions = append(g.regions, r)
	g.exits = append(g.exits, nil)
	g.byName[r.Name] = r.ID
	return r.ID
}

// CreateRegion adds a region of a level with its orb contribution.
func (g *Graph) CreateRegion(level, sub string, orbs int) (RegionID, error) {
	return g.create(level, sub, orbs, false)
}

// CreateVirtualRegion adds a region that does not exist in the game, used
// to group locations that share an abstract requirement.
func (g *Graph) CreateVirtualRegion(level, sub string) (RegionID, error) {
	return g.create(level, sub, 0, true)
}

func (g *Graph) create(level, sub string, orbs int, virtual bool) (RegionID, error) {
	if g.frozen {
		return 0, ErrFrozen
	}
	name := QualifiedName(level, sub)
	if _, dup := g.byName[name]; dup {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateRegion, name)
	}
	if orbs < 0 {
		return 0, fmt.Errorf("%w: %q has %d", ErrNegativeOrbs, name, orbs)
	}
	return g.add(Region{Name: name, Level: level, Sub: sub, Orbs: orbs, Virtual: virtual}), nil
}

func (g *Graph) valid(id RegionID) bool {
	return id >= 0 && int(id) < len(g.regions)
}

// AddLocations attaches locations to a region, all guarded by rule.
func (g *Graph) AddLocations(r RegionID, ids []int64, rule types.Rule) error {
	if g.frozen {
		return ErrFrozen
	}
	if !g.valid(r) {
		return fmt.Errorf("%w: %d", ErrUnknownRegion, r)
	}
	for _, id := range ids {
		if owner, dup := g.locRegion[id]; dup {
			return fmt.Errorf("%w: location %d in %q", ErrLocationOwned, id, g.regions[owner].Name)
		}
	}
	for _, id := range ids {
		g.locRegion[id] = r
		g.locRule[id] = rule
		g.locOrder = append(g.locOrder, id)
		g.regions[r].Locations = append(g.regions[r].Locations, id)
	}
	return nil
}

// Connect adds a directed edge. Parallel edges are allowed and act as
// alternatives.
func (g *Graph) Connect(from, to RegionID, rule types.Rule) error {
	if g.frozen {
		return ErrFrozen
	}
	if !g.valid(from) || !g.valid(to) {
		return fmt.Errorf("%w: %d -> %d", ErrUnknownRegion, from, to)
	}
	g.exits[from] = append(g.exits[from], Edge{From: from, To: to, Rule: rule})
	return nil
}

// MarkTarget exempts a region from the dead-end check, for goal regions
// that exist only to be reached.
func (g *Graph) MarkTarget(r RegionID) {
	if g.valid(r) {
		g.targets[r] = true
	}
}

// Freeze makes the graph immutable.
func (g *Graph) Freeze() { g.frozen = true }

// Frozen reports whether the graph has been frozen.
func (g *Graph) Frozen() bool { return g.frozen }

// Root returns the root region.
func (g *Graph) Root() RegionID { return 0 }

// Len returns the number of regions.
func (g *Graph) Len() int { return len(g.regions) }

// Region returns a copy of a region.
func (g *Graph) Region(id RegionID) Region {
	r := g.regions[id]
	r.Locations = append([]int64(nil), r.Locations...)
	return r
}

// Regions returns copies of every region in creation order.
func (g *Graph) Regions() []Region {
	out := make([]Region, len(g.regions))
	for i := range g.regions {
		out[i] = g.Region(RegionID(i))
	}
	return out
}

// Lookup finds a region by qualified name.
func (g *Graph) Lookup(name string) (RegionID, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// Exits returns the outbound edges of a region.
func (g *Graph) Exits(id RegionID) []Edge {
	return g.exits[id]
}

// Orbs returns a region's orb contribution without copying it.
func (g *Graph) Orbs(id RegionID) int { return g.regions[id].Orbs }

// LevelOf returns a region's level without copying it.
func (g *Graph) LevelOf(id RegionID) string { return g.regions[id].Level }

// LocationsOf returns a region's locations without copying them. Callers
// must not modify the slice.
func (g *Graph) LocationsOf(id RegionID) []int64 { return g.regions[id].Locations }

// LocationRegion returns the region owning a location.
func (g *Graph) LocationRegion(id int64) (RegionID, bool) {
	r, ok := g.locRegion[id]
	return r, ok
}

// LocationRule returns the rule guarding a location.
func (g *Graph) LocationRule(id int64) types.Rule {
	return g.locRule[id]
}

// Locations returns every attached location in attachment order.
func (g *Graph) Locations() []int64 {
	return append([]int64(nil), g.locOrder...)
}

// Name returns a region's qualified name.
func (g *Graph) Name(id RegionID) string {
	if !g.valid(id) {
		return fmt.Sprintf("<region %d>", id)
	}
	return g.regions[id].Name
}
