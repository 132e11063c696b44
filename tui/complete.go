package tui

import (
	"fmt"
	"strings"

	"github.com/nathoo/jaklogic/engine"
	"github.com/nathoo/jaklogic/engine/parser"
)

// maxCandidates bounds how many completions are listed after a Tab.
const maxCandidates = 8

// complete extends input as far as every candidate agrees. The first word
// completes against the verbs; after it the object completes against the
// names the verb resolves. The candidates are returned when more than one
// remains.
func complete(eng *engine.Engine, input string) (string, []string) {
	trimmed := strings.TrimLeft(input, " ")
	if trimmed == "" {
		return input, nil
	}

	var head, partial string
	var names []string
	if !strings.Contains(trimmed, " ") {
		head, partial, names = input[:len(input)-len(trimmed)], trimmed, parser.Verbs()
	} else {
		intent := parser.Parse(input)
		if !strings.HasSuffix(input, intent.Object) {
			// A trailing count follows the object.
			return input, nil
		}
		head, partial = input[:len(input)-len(intent.Object)], intent.Object
		names = eng.Names(intent.Verb)
	}

	var cands []string
	lower := strings.ToLower(partial)
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			cands = append(cands, name)
		}
	}
	switch len(cands) {
	case 0:
		return input, nil
	case 1:
		return head + cands[0], nil
	}

	prefix := commonPrefix(cands)
	if len(prefix) < len(partial) {
		prefix = partial
	}
	return head + prefix, cands
}

// commonPrefix returns the longest prefix the names share, ignoring case.
// The casing of the first name wins.
func commonPrefix(names []string) string {
	prefix := names[0]
	for _, name := range names[1:] {
		n := 0
		for n < len(prefix) && n < len(name) && lowerByte(prefix[n]) == lowerByte(name[n]) {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix
}

func lowerByte(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// candidateLines lists completions as detail lines.
func candidateLines(cands []string) []string {
	lines := make([]string, 0, maxCandidates+1)
	for i, c := range cands {
		if i == maxCandidates {
			lines = append(lines, fmt.Sprintf("  ... and %d more", len(cands)-maxCandidates))
			break
		}
		lines = append(lines, "  "+c)
	}
	return lines
}
