package effects

import (
	"testing"

	"github.com/nathoo/jaklogic/engine/state"
	"github.com/nathoo/jaklogic/types"
)

const player = 1

func TestApply_Say(t *testing.T) {
	c := state.New()
	_, output := Apply(c, player, []types.Effect{
		{Type: Say, Params: map[string]any{"text": "Hello, world!"}},
	})
	if len(output) != 1 || output[0] != "Hello, world!" {
		t.Errorf("expected [Hello, world!], got %v", output)
	}
}

func TestApply_Say_CountInterpolation(t *testing.T) {
	c := state.New()
	c.Collect("Power Cell", player, 20)
	_, output := Apply(c, player, []types.Effect{
		{Type: Say, Params: map[string]any{"text": "You hold {count:Power Cell} cells and {count:Punch} punches."}},
	})
	want := "You hold 20 cells and 0 punches."
	if len(output) != 1 || output[0] != want {
		t.Errorf("expected %q, got %v", want, output)
	}
}

func TestApply_Say_UnterminatedTemplate(t *testing.T) {
	c := state.New()
	_, output := Apply(c, player, []types.Effect{
		{Type: Say, Params: map[string]any{"text": "broken {count:Roll"}},
	})
	if output[0] != "broken {count:Roll" {
		t.Errorf("output = %q", output[0])
	}
}

func TestApply_GiveItem(t *testing.T) {
	c := state.New()
	events, _ := Apply(c, player, []types.Effect{Give("Power Cell", 3), Give("Power Cell", 2)})

	if got := c.Count("Power Cell", player); got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[1].Type != "item_collected" || events[1].Data["total"] != 5 {
		t.Errorf("unexpected event %+v", events[1])
	}
}

func TestApply_GiveItem_DefaultCount(t *testing.T) {
	c := state.New()
	Apply(c, player, []types.Effect{{Type: GiveItem, Params: map[string]any{"item": "Roll"}}})
	if !c.Has("Roll", player, 1) {
		t.Error("item without a count was not given once")
	}
}

func TestApply_GiveItem_FloatCount(t *testing.T) {
	// Counts decoded from JSON arrive as float64.
	c := state.New()
	Apply(c, player, []types.Effect{{Type: GiveItem, Params: map[string]any{"item": "Power Cell", "count": float64(4)}}})
	if got := c.Count("Power Cell", player); got != 4 {
		t.Errorf("Count = %d, want 4", got)
	}
}

func TestApply_RemoveItem(t *testing.T) {
	c := state.New()
	c.Collect("Power Cell", player, 3)
	events, _ := Apply(c, player, []types.Effect{Take("Power Cell", 5)})

	if c.Has("Power Cell", player, 1) {
		t.Error("cells left after removing more than held")
	}
	if len(events) != 1 || events[0].Data["count"] != 3 {
		t.Errorf("unexpected events %+v", events)
	}
}

func TestApply_RemoveMissingItem_NoEvent(t *testing.T) {
	c := state.New()
	events, _ := Apply(c, player, []types.Effect{Take("Punch", 1)})
	if len(events) != 0 {
		t.Errorf("expected no events, got %+v", events)
	}
}

func TestApply_Reset(t *testing.T) {
	c := state.New()
	c.Collect("Roll", player, 1)
	c.Collect("Roll", 2, 1)
	events, _ := Apply(c, player, []types.Effect{{Type: Reset}})
	if c.Has("Roll", player, 1) || !c.Has("Roll", 2, 1) {
		t.Error("reset touched the wrong player")
	}
	if len(events) != 1 || events[0].Type != "collection_reset" {
		t.Errorf("unexpected events %+v", events)
	}
}

func TestApply_UnknownType(t *testing.T) {
	c := state.New()
	events, output := Apply(c, player, []types.Effect{{Type: "teleport"}})
	if len(events) != 0 || len(output) != 0 {
		t.Error("unknown effect produced output")
	}
}
