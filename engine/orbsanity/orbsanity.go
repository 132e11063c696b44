// Package orbsanity turns a scope's orbs into bundle locations.
//
// With orbsanity on, every bundleSize orbs collected in a scope (one level,
// or the whole world) is a check of its own. Bundle i is reachable once
// bundleSize*(i+1) orbs of the scope are reachable.
package orbsanity

import (
	"errors"
	"fmt"

	"github.com/nathoo/jaklogic/engine/ids"
	"github.com/nathoo/jaklogic/engine/rules"
	"github.com/nathoo/jaklogic/engine/tables"
	"github.com/nathoo/jaklogic/types"
)

// Modes of the enable_orbsanity option.
const (
	Off      = "off"
	PerLevel = "per_level"
	Global   = "global"
)

// ErrBundleSize is returned when a bundle size does not evenly divide
// the scope's orbs.
var ErrBundleSize = errors.New("orbsanity: bundle size must evenly divide the orb total")

// Scope is the set of orbs bundles are cut from. Name is the level name,
// or empty for the global scope.
type Scope struct {
	Name  string
	Index int
	Total int
}

// GlobalScope returns the whole-world scope for a given orb total.
func GlobalScope(total int) Scope {
	return Scope{Index: tables.GlobalOrbIndex, Total: total}
}

// LevelScope returns the scope of a single level.
func LevelScope(lv types.LevelDef) Scope {
	return Scope{Name: lv.Name, Index: lv.Index, Total: lv.Orbs}
}

// Bundle is one orbsanity check.
type Bundle struct {
	Index     int
	Address   int
	ID        int64
	Name      string
	Threshold int
	Item      string
}

// Generate returns the bundles of a scope. The result depends only on its
// arguments.
func Generate(scope Scope, bundleSize int) ([]Bundle, error) {
	if bundleSize <= 0 || scope.Total%bundleSize != 0 {
		return nil, fmt.Errorf("%w: %d orbs in %q, bundle size %d", ErrBundleSize, scope.Total, scopeName(scope), bundleSize)
	}
	n := scope.Total / bundleSize
	if n > ids.BundleStride && scope.Index != tables.GlobalOrbIndex {
		return nil, fmt.Errorf("%w: %d bundles exceed the %d addresses of %q", ErrBundleSize, n, ids.BundleStride, scopeName(scope))
	}
	item := tables.BundleItemName(bundleSize)
	out := make([]Bundle, n)
	for i := range out {
		addr := ids.Address(scope.Index, i)
		id, err := ids.Orbs.ToGlobal(addr)
		if err != nil {
			return nil, err
		}
		out[i] = Bundle{
			Index:     i,
			Address:   addr,
			ID:        id,
			Name:      tables.BundleLocationName(scope.Name, i),
			Threshold: bundleSize * (i + 1),
			Item:      item,
		}
	}
	return out, nil
}

// Rule returns the access rule of a bundle: the scope's reachable orbs
// must reach the bundle's threshold.
func Rule(scope Scope, b Bundle) types.Rule {
	return rules.LevelOrbs(scope.Name, b.Threshold)
}

func scopeName(s Scope) string {
	if s.Name == "" {
		return "global"
	}
	return s.Name
}
