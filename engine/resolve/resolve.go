// Package resolve maps names typed into the explorer to known item,
// region and location names.
package resolve

import (
	"fmt"
	"sort"
	"strings"
)

// maxCandidates bounds how many candidates an AmbiguityError lists.
const maxCandidates = 8

// AmbiguityError indicates multiple names matched a query.
type AmbiguityError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	shown := e.Candidates
	more := ""
	if len(shown) > maxCandidates {
		more = fmt.Sprintf(", and %d more", len(shown)-maxCandidates)
		shown = shown[:maxCandidates]
	}
	return fmt.Sprintf("which %s? (%s%s)", e.Name, strings.Join(shown, ", "), more)
}

// NotFoundError indicates no name matched a query.
type NotFoundError struct {
	Name string
	Kind string
}

func (e *NotFoundError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("nothing is called %q", e.Name)
	}
	return fmt.Sprintf("no %s is called %q", e.Kind, e.Name)
}

// Name resolves query against names. It tries, in order: an exact match,
// a case-insensitive match, names whose words include every query word,
// and names containing the query. The first step with exactly one match
// wins; a step with several matches is ambiguous.
func Name(query string, names []string, kind string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", &NotFoundError{Name: query, Kind: kind}
	}
	lower := strings.ToLower(query)

	for _, n := range names {
		if n == query {
			return n, nil
		}
	}

	steps := []func(nameLower string) bool{
		func(n string) bool { return n == lower },
		func(n string) bool { return hasWords(n, strings.Fields(lower)) },
		func(n string) bool { return strings.Contains(n, lower) },
	}
	for _, match := range steps {
		var matches []string
		for _, n := range names {
			if match(strings.ToLower(n)) {
				matches = append(matches, n)
			}
		}
		switch len(matches) {
		case 0:
			continue
		case 1:
			return matches[0], nil
		default:
			sort.Strings(matches)
			return "", &AmbiguityError{Name: query, Candidates: matches}
		}
	}
	return "", &NotFoundError{Name: query, Kind: kind}
}

// hasWords reports whether every query word is a word of name. Words of
// the name are split on spaces and the punctuation used in level names.
func hasWords(name string, query []string) bool {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == ':' || r == ',' || r == '-' || r == '(' || r == ')'
	})
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	for _, q := range query {
		if !set[q] {
			return false
		}
	}
	return len(query) > 0
}
