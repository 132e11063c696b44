package orbs

import (
	"errors"
	"testing"

	"github.com/nathoo/jaklogic/engine/graph"
	"github.com/nathoo/jaklogic/types"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(1)
	for _, r := range []struct {
		level, sub string
		orbs       int
	}{
		{"Sandover Village", "Main Area", 26},
		{"Sandover Village", "Orb Cache Cliff", 15},
		{"Sandover Village", "Yakow Cliff", 3},
		{"Sandover Village", "Oracle Platforms", 6},
		{"Geyser Rock", "Main Area", 50},
	} {
		if _, err := g.CreateRegion(r.level, r.sub, r.orbs); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestTotals(t *testing.T) {
	g := testGraph(t)
	if got := Total(g); got != 100 {
		t.Errorf("Total = %d, want 100", got)
	}
	if got := LevelTotal(g, "Sandover Village"); got != 50 {
		t.Errorf("LevelTotal(SV) = %d, want 50", got)
	}
	if err := Verify(g, 100); err != nil {
		t.Errorf("Verify: %v", err)
	}
	if err := Verify(g, 2000); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify(2000) err = %v, want ErrMismatch", err)
	}
}

func TestVerifyLevels(t *testing.T) {
	g := testGraph(t)
	good := []types.LevelDef{{Name: "Sandover Village", Orbs: 50}, {Name: "Geyser Rock", Orbs: 50}}
	if err := VerifyLevels(g, good); err != nil {
		t.Errorf("VerifyLevels: %v", err)
	}
	bad := []types.LevelDef{{Name: "Sandover Village", Orbs: 51}}
	if err := VerifyLevels(g, bad); !errors.Is(err, ErrMismatch) {
		t.Errorf("err = %v, want ErrMismatch", err)
	}
}

func TestReachable(t *testing.T) {
	g := testGraph(t)
	reached := make([]bool, g.Len())
	reached[1] = true // SV main
	reached[5] = true // GR main
	if got := Reachable(g, reached, ""); got != 76 {
		t.Errorf("Reachable = %d, want 76", got)
	}
	if got := Reachable(g, reached, "Sandover Village"); got != 26 {
		t.Errorf("Reachable(SV) = %d, want 26", got)
	}
}

func TestTradeTotal(t *testing.T) {
	if got := TradeTotal(DefaultCitizen, DefaultOracle); got != 1530 {
		t.Errorf("TradeTotal(defaults) = %d, want 1530", got)
	}
	if got := TradeTotal(222, 333); got <= 2000 {
		t.Errorf("TradeTotal(max) = %d, expected above 2000", got)
	}
}

func TestBundlesFor(t *testing.T) {
	tests := []struct{ n, size, want int }{
		{1530, 20, 77},
		{1530, 10, 153},
		{50, 25, 2},
		{0, 25, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := BundlesFor(tt.n, tt.size); got != tt.want {
			t.Errorf("BundlesFor(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.want)
		}
	}
}
