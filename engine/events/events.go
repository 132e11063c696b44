// Package events turns reachability changes into events and dispatches
// them to handlers in a single pass. Event handlers produce additional
// effects but do not recurse.
package events

import (
	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/engine/reach"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/engine/state"
	"github.com/nathoo/jaklogic/types"
)

// Event types emitted by Diff.
const (
	RegionUnlocked   = "region_unlocked"
	RegionLost       = "region_lost"
	LocationUnlocked = "location_unlocked"
	LocationLost     = "location_lost"
	GoalReached      = "goal_reached"
	GoalLost         = "goal_lost"
)

// Handler reacts to one event type. Rule, when set, must hold for the
// handler's player.
type Handler struct {
	EventType string
	Rule      types.Rule
	Effects   []types.Effect
}

// Diff compares two reachability snapshots of the same graph and returns
// one event per region or location that changed, in id order.
func Diff(g *graph.Graph, before, after *reach.Result) []types.Event {
	var out []types.Event
	for i := 0; i < g.Len(); i++ {
		id := graph.RegionID(i)
		was, is := before.CanReachRegion(id), after.CanReachRegion(id)
		switch {
		case !was && is:
			out = append(out, types.Event{Type: RegionUnlocked, Data: map[string]any{"region": g.Name(id)}})
		case was && !is:
			out = append(out, types.Event{Type: RegionLost, Data: map[string]any{"region": g.Name(id)}})
		}
	}
	for _, id := range g.Locations() {
		was, is := before.CanReachLocation(id), after.CanReachLocation(id)
		switch {
		case !was && is:
			out = append(out, types.Event{Type: LocationUnlocked, Data: map[string]any{"location": id}})
		case was && !is:
			out = append(out, types.Event{Type: LocationLost, Data: map[string]any{"location": id}})
		}
	}
	return out
}

// GoalChange returns the goal event for a change in completion, if any.
func GoalChange(was, is bool) []types.Event {
	switch {
	case !was && is:
		return []types.Event{{Type: GoalReached, Data: map[string]any{}}}
	case was && !is:
		return []types.Event{{Type: GoalLost, Data: map[string]any{}}}
	}
	return nil
}

// Dispatch returns the effects of every handler whose event type and rule
// match. Effects it returns are not dispatched again.
func Dispatch(events []types.Event, handlers []Handler, c *state.Collection, player int) []types.Effect {
	var result []types.Effect

	for _, event := range events {
		for _, handler := range handlers {
			if handler.EventType != event.Type {
				continue
			}
			if !rules.Eval(handler.Rule, itemEnv{c: c, player: player}) {
				continue
			}
			result = append(result, handler.Effects...)
		}
	}

	return result
}

// itemEnv evaluates handler rules against items only.
type itemEnv struct {
	c      *state.Collection
	player int
}

func (e itemEnv) Count(item string) int { return e.c.Count(item, e.player) }
func (e itemEnv) ReachableOrbs(string) int { return 0 }
func (e itemEnv) LocationReachable(int64) bool { return false }
