package graph

import (
	"fmt"
	"strings"

	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/types"
)

// ValidationError collects every integrity problem found in a graph.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("region graph invalid with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Validate checks the graph's structure: rules referencing unknown items,
// dangling or cyclic prerequisite locations, dead-end regions, and regions
// that no path from the root reaches even with every rule ignored.
// knownItem may be nil to skip the item check.
func (g *Graph) Validate(knownItem func(string) bool) error {
	ve := &ValidationError{}

	for _, exits := range g.exits {
		for _, e := range exits {
			for _, msg := range rules.Validate(e.Rule, knownItem) {
				ve.Errors = append(ve.Errors, fmt.Sprintf("edge %q -> %q: %s", g.Name(e.From), g.Name(e.To), msg))
			}
			g.validPrerequisites(e.Rule, fmt.Sprintf("edge %q -> %q", g.Name(e.From), g.Name(e.To)), ve)
		}
	}
	for _, id := range g.locOrder {
		rule := g.locRule[id]
		for _, msg := range rules.Validate(rule, knownItem) {
			ve.Errors = append(ve.Errors, fmt.Sprintf("location %d: %s", id, msg))
		}
		g.validPrerequisites(rule, fmt.Sprintf("location %d", id), ve)
	}

	g.validCycles(ve)
	g.validDeadEnds(ve)
	g.validConnected(ve)

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func (g *Graph) validPrerequisites(r types.Rule, where string, ve *ValidationError) {
	for _, p := range rules.Prerequisites(r) {
		if _, ok := g.locRegion[p]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: prerequisite location %d is not in the graph", where, p))
		}
	}
}

// validCycles finds locations whose prerequisite chain leads back to
// themselves.
func (g *Graph) validCycles(ve *ValidationError) {
	const (
		white = iota
		grey
		black
	)
	color := map[int64]int{}
	var visit func(id int64) bool
	visit = func(id int64) bool {
		switch color[id] {
		case grey:
			return true
		case black:
			return false
		}
		color[id] = grey
		for _, p := range rules.Prerequisites(g.locRule[id]) {
			if visit(p) {
				return true
			}
		}
		color[id] = black
		return false
	}
	for _, id := range g.locOrder {
		if color[id] == white && visit(id) {
			ve.Errors = append(ve.Errors, fmt.Sprintf("location %d: prerequisite cycle", id))
		}
	}
}

// validDeadEnds flags regions that contribute nothing: no locations, no
// orbs, no exits, and not a goal target.
func (g *Graph) validDeadEnds(ve *ValidationError) {
	for i, r := range g.regions {
		id := RegionID(i)
		if id == g.Root() || g.targets[id] {
			continue
		}
		if len(r.Locations) == 0 && r.Orbs == 0 && len(g.exits[i]) == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("region %q is a dead end with no locations or orbs", r.Name))
		}
	}
}

// validConnected runs a breadth-first search from the root ignoring rules.
func (g *Graph) validConnected(ve *ValidationError) {
	seen := make([]bool, len(g.regions))
	queue := []RegionID{g.Root()}
	seen[g.Root()] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.exits[cur] {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	for i, ok := range seen {
		if !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf("region %q is not connected to %q", g.regions[i].Name, RootName))
		}
	}
}
