// Package rules builds and evaluates access rules.
//
// A rule is an immutable types.Rule value. Constructors copy their
// arguments, so a rule built inside a loop never observes later changes
// to the loop variables or the slices it was given.
package rules

import (
	"fmt"
	"strings"

	"github.com/nathoo/jaklogic/types"
)

// Always is the always-true rule. The zero types.Rule is equivalent.
func Always() types.Rule {
	return types.Rule{Kind: types.RuleAlways}
}

// Has requires one copy of an item.
func Has(item string) types.Rule {
	return types.Rule{Kind: types.RuleHas, Item: item, Count: 1}
}

// HasCount requires n copies of an item.
func HasCount(item string, n int) types.Rule {
	return types.Rule{Kind: types.RuleHas, Item: item, Count: n}
}

// HasAll requires every item.
func HasAll(items ...string) types.Rule {
	return types.Rule{Kind: types.RuleHasAll, Items: clone(items)}
}

// HasAny requires at least one of the items.
func HasAny(items ...string) types.Rule {
	return types.Rule{Kind: types.RuleHasAny, Items: clone(items)}
}

// CountOf requires at least n distinct items of the set.
func CountOf(n int, items ...string) types.Rule {
	return types.Rule{Kind: types.RuleCountOf, Items: clone(items), Count: n}
}

// Orbs requires threshold orbs reachable in the whole world.
func Orbs(threshold int) types.Rule {
	return types.Rule{Kind: types.RuleOrbs, Count: threshold}
}

// LevelOrbs requires threshold orbs reachable within one level.
func LevelOrbs(level string, threshold int) types.Rule {
	return types.Rule{Kind: types.RuleOrbs, Level: level, Count: threshold}
}

// Trade requires threshold orbs reachable in the whole world, and, when
// prerequisite is non-zero, that the prerequisite location is reachable.
func Trade(threshold int, prerequisite int64) types.Rule {
	return types.Rule{Kind: types.RuleOrbs, Count: threshold, Prerequisite: prerequisite}
}

// And requires every operand. Nested conjunctions are flattened and
// always-true operands are dropped.
func And(rs ...types.Rule) types.Rule {
	var ops []types.Rule
	for _, r := range rs {
		switch {
		case IsAlways(r):
		case r.Kind == types.RuleAnd:
			ops = append(ops, r.Operands...)
		default:
			ops = append(ops, r)
		}
	}
	switch len(ops) {
	case 0:
		return Always()
	case 1:
		return ops[0]
	}
	return types.Rule{Kind: types.RuleAnd, Operands: ops}
}

// Or requires at least one operand. Nested disjunctions are flattened; an
// always-true operand makes the whole rule always-true.
func Or(rs ...types.Rule) types.Rule {
	var ops []types.Rule
	for _, r := range rs {
		switch {
		case IsAlways(r):
			return Always()
		case r.Kind == types.RuleOr:
			ops = append(ops, r.Operands...)
		default:
			ops = append(ops, r)
		}
	}
	if len(ops) == 1 {
		return ops[0]
	}
	return types.Rule{Kind: types.RuleOr, Operands: ops}
}

// Not negates a rule.
func Not(r types.Rule) types.Rule {
	return types.Rule{Kind: types.RuleNot, Operands: []types.Rule{r}}
}

// When returns r if cond holds and the always-true rule otherwise. Area
// builders use it for rules that only apply under some option.
func When(cond bool, r types.Rule) types.Rule {
	if cond {
		return r
	}
	return Always()
}

// IsAlways reports whether r is trivially true.
func IsAlways(r types.Rule) bool {
	return r.Kind == "" || r.Kind == types.RuleAlways
}

func clone(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// Items returns every item name a rule mentions, in first-seen order.
func Items(r types.Rule) []string {
	seen := map[string]bool{}
	var out []string
	var walk func(types.Rule)
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	walk = func(r types.Rule) {
		add(r.Item)
		for _, it := range r.Items {
			add(it)
		}
		for _, op := range r.Operands {
			walk(op)
		}
	}
	walk(r)
	return out
}

// Prerequisites returns the prerequisite location ids a rule mentions.
func Prerequisites(r types.Rule) []int64 {
	var out []int64
	if r.Prerequisite != 0 {
		out = append(out, r.Prerequisite)
	}
	for _, op := range r.Operands {
		out = append(out, Prerequisites(op)...)
	}
	return out
}

// Describe renders a rule as a short human-readable expression.
// locName resolves prerequisite ids; it may be nil.
func Describe(r types.Rule, locName func(int64) string) string {
	switch r.Kind {
	case "", types.RuleAlways:
		return "always"
	case types.RuleHas:
		if r.Count > 1 {
			return fmt.Sprintf("%s x%d", r.Item, r.Count)
		}
		return r.Item
	case types.RuleHasAll:
		return "all of (" + strings.Join(r.Items, ", ") + ")"
	case types.RuleHasAny:
		return "any of (" + strings.Join(r.Items, ", ") + ")"
	case types.RuleCountOf:
		return fmt.Sprintf("%d of (%s)", r.Count, strings.Join(r.Items, ", "))
	case types.RuleOrbs:
		s := fmt.Sprintf("%d orbs", r.Count)
		if r.Level != "" {
			s = fmt.Sprintf("%d %s orbs", r.Count, r.Level)
		}
		if r.Prerequisite != 0 {
			name := fmt.Sprint(r.Prerequisite)
			if locName != nil {
				name = locName(r.Prerequisite)
			}
			s += " after " + name
		}
		return s
	case types.RuleAnd, types.RuleOr:
		sep := " and "
		if r.Kind == types.RuleOr {
			sep = " or "
		}
		parts := make([]string, len(r.Operands))
		for i, op := range r.Operands {
			parts[i] = Describe(op, locName)
			if len(op.Operands) > 1 {
				parts[i] = "(" + parts[i] + ")"
			}
		}
		return strings.Join(parts, sep)
	case types.RuleNot:
		if len(r.Operands) == 1 {
			return "not " + Describe(r.Operands[0], locName)
		}
	}
	return "<" + r.Kind + ">"
}
