package graph

import (
	"errors"
	"strings"
	"testing"

	"github.com/nathoo/jaklogic/engine/rules"
)

func known(name string) bool {
	return name == "Punch" || name == "Power Cell"
}

func TestValidate_Clean(t *testing.T) {
	g := New(1)
	a, _ := g.CreateRegion("Geyser Rock", "Main Area", 50)
	b, _ := g.CreateRegion("Geyser Rock", "Cliff", 0)
	_ = g.Connect(g.Root(), a, rules.Always())
	_ = g.Connect(a, b, rules.Has("Punch"))
	_ = g.AddLocations(b, []int64{94}, rules.Always())

	if err := g.Validate(known); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name  string
		build func(g *Graph)
		want  string
	}{
		{
			name: "unknown item",
			build: func(g *Graph) {
				a, _ := g.CreateRegion("X", "A", 1)
				_ = g.Connect(g.Root(), a, rules.Has("Pnch"))
			},
			want: `unknown item "Pnch"`,
		},
		{
			name: "unconnected region",
			build: func(g *Graph) {
				_, _ = g.CreateRegion("X", "Island", 10)
			},
			want: `"X Island" is not connected`,
		},
		{
			name: "dead end",
			build: func(g *Graph) {
				a, _ := g.CreateRegion("X", "Nothing", 0)
				_ = g.Connect(g.Root(), a, rules.Always())
			},
			want: `"X Nothing" is a dead end`,
		},
		{
			name: "dangling prerequisite",
			build: func(g *Graph) {
				a, _ := g.CreateRegion("X", "A", 1)
				_ = g.Connect(g.Root(), a, rules.Always())
				_ = g.AddLocations(a, []int64{14}, rules.Trade(120, 13))
			},
			want: "prerequisite location 13 is not in the graph",
		},
		{
			name: "prerequisite cycle",
			build: func(g *Graph) {
				a, _ := g.CreateRegion("X", "A", 1)
				_ = g.Connect(g.Root(), a, rules.Always())
				_ = g.AddLocations(a, []int64{13}, rules.Trade(120, 14))
				_ = g.AddLocations(a, []int64{14}, rules.Trade(120, 13))
			},
			want: "prerequisite cycle",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(1)
			tt.build(g)
			err := g.Validate(known)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidate_TargetIsNotDeadEnd(t *testing.T) {
	g := New(1)
	boss, _ := g.CreateRegion("Gol and Maia's Citadel", "Final Boss", 0)
	_ = g.Connect(g.Root(), boss, rules.Always())
	g.MarkTarget(boss)
	if err := g.Validate(nil); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
