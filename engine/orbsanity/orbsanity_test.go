package orbsanity

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nathoo/jaklogic/engine/ids"
	"github.com/nathoo/jaklogic/types"
)

func TestGenerate_LevelScope(t *testing.T) {
	scope := LevelScope(types.LevelDef{Name: "Geyser Rock", Index: 0, Orbs: 50})
	bundles, err := Generate(scope, 10)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(bundles) != 5 {
		t.Fatalf("bundles = %d, want 5", len(bundles))
	}
	for i, b := range bundles {
		if want := 10 * (i + 1); b.Threshold != want {
			t.Errorf("bundle %d threshold = %d, want %d", i, b.Threshold, want)
		}
		if b.Address != i {
			t.Errorf("bundle %d address = %d, want %d", i, b.Address, i)
		}
		if b.Item != "10 Precursor Orbs" {
			t.Errorf("bundle %d item = %q", i, b.Item)
		}
	}
	if bundles[0].Name != "Geyser Rock Orb Bundle 1" {
		t.Errorf("name = %q", bundles[0].Name)
	}
	if bundles[4].ID != ids.Orbs.MustGlobal(4) {
		t.Errorf("last id = %d", bundles[4].ID)
	}
}

func TestGenerate_GlobalScope(t *testing.T) {
	bundles, err := Generate(GlobalScope(2000), 20)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(bundles) != 100 {
		t.Fatalf("bundles = %d, want 100", len(bundles))
	}
	last := bundles[99]
	if last.Name != "Orb Bundle 100" || last.Threshold != 2000 || last.Address != ids.Address(16, 99) {
		t.Errorf("last bundle = %+v", last)
	}
}

func TestGenerate_BadSize(t *testing.T) {
	scope := LevelScope(types.LevelDef{Name: "Misty Island", Index: 4, Orbs: 150})
	for _, size := range []int{0, -5, 40} {
		if _, err := Generate(scope, size); !errors.Is(err, ErrBundleSize) {
			t.Errorf("Generate(size %d) err = %v, want ErrBundleSize", size, err)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	scope := GlobalScope(1250)
	a, err := Generate(scope, 25)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(scope, 25)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different bundles")
	}
}

func TestRule(t *testing.T) {
	scope := LevelScope(types.LevelDef{Name: "Sandover Village", Index: 1, Orbs: 50})
	bundles, _ := Generate(scope, 25)
	r := Rule(scope, bundles[1])
	if r.Kind != types.RuleOrbs || r.Level != "Sandover Village" || r.Count != 50 {
		t.Errorf("Rule = %+v", r)
	}
	g := Rule(GlobalScope(2000), Bundle{Threshold: 40})
	if g.Level != "" || g.Count != 40 {
		t.Errorf("global Rule = %+v", g)
	}
}
