package rules

import (
	"fmt"

	"github.com/nathoo/jaklogic/types"
)

// Validate reports construction errors in a rule: unknown items, negative
// or unsatisfiable thresholds, and malformed operand lists. knownItem may
// be nil to skip the item check.
func Validate(r types.Rule, knownItem func(string) bool) []string {
	var errs []string
	validRule(r, knownItem, &errs)
	return errs
}

func validRule(r types.Rule, knownItem func(string) bool, errs *[]string) {
	checkItem := func(name string) {
		if name == "" {
			*errs = append(*errs, fmt.Sprintf("%s rule names an empty item", r.Kind))
			return
		}
		if knownItem != nil && !knownItem(name) {
			*errs = append(*errs, fmt.Sprintf("%s rule references unknown item %q", r.Kind, name))
		}
	}

	switch r.Kind {
	case "", types.RuleAlways:
	case types.RuleHas:
		checkItem(r.Item)
		if r.Count < 0 {
			*errs = append(*errs, fmt.Sprintf("has %q: negative count %d", r.Item, r.Count))
		}
	case types.RuleHasAll, types.RuleHasAny, types.RuleCountOf:
		if len(r.Items) == 0 {
			*errs = append(*errs, fmt.Sprintf("%s rule has no items", r.Kind))
		}
		for _, it := range r.Items {
			checkItem(it)
		}
		if r.Kind == types.RuleCountOf && (r.Count < 0 || r.Count > len(r.Items)) {
			*errs = append(*errs, fmt.Sprintf("count_of %d exceeds set of %d items", r.Count, len(r.Items)))
		}
	case types.RuleOrbs:
		if r.Count < 0 {
			*errs = append(*errs, fmt.Sprintf("orbs rule has negative threshold %d", r.Count))
		}
	case types.RuleAnd, types.RuleOr:
		if len(r.Operands) == 0 {
			*errs = append(*errs, fmt.Sprintf("%s rule has no operands", r.Kind))
		}
		for _, op := range r.Operands {
			validRule(op, knownItem, errs)
		}
	case types.RuleNot:
		if len(r.Operands) != 1 {
			*errs = append(*errs, fmt.Sprintf("not rule has %d operands, want 1", len(r.Operands)))
		}
		for _, op := range r.Operands {
			validRule(op, knownItem, errs)
		}
	default:
		*errs = append(*errs, fmt.Sprintf("unknown rule kind %q", r.Kind))
	}
}
