// Package parser converts explorer command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strconv"
	"strings"

	"github.com/nathoo/jaklogic/types"
)

// Canonical verbs.
const (
	Give      = "give"
	Remove    = "remove"
	Reset     = "reset"
	Reach     = "reach"
	Check     = "check"
	Orbs      = "orbs"
	Goal      = "goal"
	Regions   = "regions"
	Locations = "locations"
	Inventory = "inventory"
	Rule      = "rule"
	Pool      = "pool"
	Help      = "help"
)

// Verbs returns the canonical verbs in alphabetical order.
func Verbs() []string {
	return []string{Check, Give, Goal, Help, Inventory, Locations, Orbs, Pool, Reach, Regions, Remove, Reset, Rule}
}

var verbAliases = map[string]string{
	// Give
	"add":     Give,
	"collect": Give,
	"get":     Give,
	"grant":   Give,

	// Remove
	"take":   Remove,
	"drop":   Remove,
	"rm":     Remove,
	"revoke": Remove,
	"clear":  Reset,

	// Reach
	"region": Reach,
	"r":      Reach,

	// Check
	"location": Check,
	"loc":      Check,
	"c":        Check,

	// Listing
	"ls":    Regions,
	"areas": Regions,
	"locs":  Locations,
	"inv":   Inventory,
	"i":     Inventory,
	"items": Inventory,

	// Miscellaneous
	"orb":    Orbs,
	"why":    Rule,
	"needs":  Rule,
	"items?": Pool,
	"?":      Help,
	"h":      Help,
	"win":    Goal,
	"done":   Goal,
}

// Parse converts a raw command string into an Intent. The object keeps
// its original case; a number before or after it becomes the count.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(input)
	verb := strings.ToLower(words[0])
	rest := words[1:]

	// Handle multi-word verb phrases before general parsing.
	verb, rest = expandMultiWordVerbs(verb, rest)

	// Apply verb aliases.
	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}

	count := 0
	if len(rest) > 1 {
		if n, err := strconv.Atoi(rest[0]); err == nil && n > 0 {
			count, rest = n, rest[1:]
		} else if n, err := strconv.Atoi(rest[len(rest)-1]); err == nil && n > 0 {
			count, rest = n, rest[:len(rest)-1]
		} else if c, ok := timesSuffix(rest[len(rest)-1]); ok {
			count, rest = c, rest[:len(rest)-1]
		}
	}

	return types.Intent{
		Verb:   verb,
		Object: strings.Join(rest, " "),
		Count:  count,
	}
}

// expandMultiWordVerbs handles "can reach", "pick up", "what needs" etc.
func expandMultiWordVerbs(verb string, rest []string) (string, []string) {
	if len(rest) == 0 {
		return verb, rest
	}
	next := strings.ToLower(rest[0])

	switch verb {
	case "can":
		if next == "reach" {
			return Reach, rest[1:]
		}
		if next == "check" {
			return Check, rest[1:]
		}
	case "pick":
		if next == "up" {
			return Give, rest[1:]
		}
	case "what":
		if next == "needs" || next == "blocks" {
			return Rule, rest[1:]
		}
	case "item":
		if next == "pool" {
			return Pool, rest[1:]
		}
	}
	return verb, rest
}

// timesSuffix reads counts written as "x20" or "20x".
func timesSuffix(word string) (int, bool) {
	w := strings.ToLower(word)
	switch {
	case strings.HasPrefix(w, "x"):
		w = w[1:]
	case strings.HasSuffix(w, "x"):
		w = w[:len(w)-1]
	default:
		return 0, false
	}
	n, err := strconv.Atoi(w)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
