package rules

import "github.com/nathoo/jaklogic/types"

// Env is what a rule is evaluated against: a player's item counts plus
// the reachability facts the evaluator has established so far.
type Env interface {
	Count(item string) int
	ReachableOrbs(level string) int
	LocationReachable(id int64) bool
}

// Eval evaluates a rule. Missing items count as zero and unknown kinds are
// false; Eval never panics on well-typed input.
func Eval(r types.Rule, env Env) bool {
	switch r.Kind {
	case "", types.RuleAlways:
		return true

	case types.RuleHas:
		n := r.Count
		if n < 1 {
			n = 1
		}
		return env.Count(r.Item) >= n

	case types.RuleHasAll:
		for _, it := range r.Items {
			if env.Count(it) < 1 {
				return false
			}
		}
		return true

	case types.RuleHasAny:
		for _, it := range r.Items {
			if env.Count(it) > 0 {
				return true
			}
		}
		return false

	case types.RuleCountOf:
		if r.Count <= 0 {
			return true
		}
		found := 0
		for _, it := range r.Items {
			if env.Count(it) > 0 {
				found++
				if found >= r.Count {
					return true
				}
			}
		}
		return false

	case types.RuleOrbs:
		if env.ReachableOrbs(r.Level) < r.Count {
			return false
		}
		return r.Prerequisite == 0 || env.LocationReachable(r.Prerequisite)

	case types.RuleAnd:
		for _, op := range r.Operands {
			if !Eval(op, env) {
				return false
			}
		}
		return true

	case types.RuleOr:
		for _, op := range r.Operands {
			if Eval(op, env) {
				return true
			}
		}
		return false

	case types.RuleNot:
		if len(r.Operands) != 1 {
			return false
		}
		return !Eval(r.Operands[0], env)

	default:
		return false
	}
}

// EvalAll returns true if every rule passes. An empty list is vacuously
// true.
func EvalAll(rs []types.Rule, env Env) bool {
	for _, r := range rs {
		if !Eval(r, env) {
			return false
		}
	}
	return true
}
