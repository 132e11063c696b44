// Package effects implements centralized collection mutation via the Apply
// function. Every effect type is one atomic operation. No logic in effects.
package effects

import (
	"strconv"
	"strings"

	"github.com/nathoo/jaklogic/engine/state"
	"github.com/nathoo/jaklogic/types"
)

// Effect types.
const (
	Say        = "say"
	GiveItem   = "give_item"
	RemoveItem = "remove_item"
	Reset      = "reset"
)

// Give returns a give_item effect.
func Give(item string, count int) types.Effect {
	return types.Effect{Type: GiveItem, Params: map[string]any{"item": item, "count": count}}
}

// Take returns a remove_item effect.
func Take(item string, count int) types.Effect {
	return types.Effect{Type: RemoveItem, Params: map[string]any{"item": item, "count": count}}
}

// Apply applies a list of effects to a player's items, mutating c.
// Returns events emitted and output text collected.
func Apply(c *state.Collection, player int, effects []types.Effect) ([]types.Event, []string) {
	var events []types.Event
	var output []string

	for _, eff := range effects {
		switch eff.Type {
		case Say:
			text, _ := eff.Params["text"].(string)
			output = append(output, interpolate(text, c, player))

		case GiveItem:
			item, _ := eff.Params["item"].(string)
			count := countParam(eff.Params)
			c.Collect(item, player, count)
			events = append(events, types.Event{
				Type: "item_collected",
				Data: map[string]any{"item": item, "count": count, "total": c.Count(item, player)},
			})

		case RemoveItem:
			item, _ := eff.Params["item"].(string)
			removed := c.Remove(item, player, countParam(eff.Params))
			if removed == 0 {
				continue
			}
			events = append(events, types.Event{
				Type: "item_removed",
				Data: map[string]any{"item": item, "count": removed, "total": c.Count(item, player)},
			})

		case Reset:
			c.Reset(player)
			events = append(events, types.Event{
				Type: "collection_reset",
				Data: map[string]any{"player": player},
			})

		}
	}

	return events, output
}

// interpolate replaces {count:<item>} with the player's count of item.
func interpolate(text string, c *state.Collection, player int) string {
	for {
		start := strings.Index(text, "{count:")
		if start < 0 {
			return text
		}
		end := strings.Index(text[start:], "}")
		if end < 0 {
			return text
		}
		item := text[start+len("{count:") : start+end]
		text = text[:start] + strconv.Itoa(c.Count(item, player)) + text[start+end+1:]
	}
}

// countParam reads the count parameter, defaulting to 1.
func countParam(params map[string]any) int {
	n := toInt(params["count"])
	if n <= 0 {
		return 1
	}
	return n
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case int64:
		return int(n)
	default:
		return 0
	}
}
