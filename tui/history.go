// Package tui provides a Bubble Tea terminal UI for the logic explorer.
package tui

import "strings"

// History keeps submitted commands, oldest first. Browsing is narrowed to
// the entries that start with whatever was typed before the first Up.
type History struct {
	entries []string
	max     int

	browsing bool
	cursor   int
	draft    string
	filter   string
}

// NewHistory creates a history that remembers at most max commands.
func NewHistory(max int) *History {
	return &History{entries: make([]string, 0, max), max: max}
}

// Push records a submitted command and stops browsing. A command already
// in the history moves to the newest slot instead of repeating.
func (h *History) Push(cmd string) {
	for i, e := range h.entries {
		if e == cmd {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	h.Reset()
}

func (h *History) matches(i int) bool {
	return strings.HasPrefix(strings.ToLower(h.entries[i]), h.filter)
}

// Prev moves to the next older matching entry. The first call remembers
// draft as the filter and as the text Next returns to. At the oldest match
// it keeps returning that match; with no match at all it reports false.
func (h *History) Prev(draft string) (string, bool) {
	if !h.browsing {
		h.draft = draft
		h.filter = strings.ToLower(strings.TrimSpace(draft))
		h.cursor = len(h.entries)
	}
	for i := h.cursor - 1; i >= 0; i-- {
		if h.matches(i) {
			h.browsing = true
			h.cursor = i
			return h.entries[i], true
		}
	}
	if h.browsing {
		return h.entries[h.cursor], true
	}
	return "", false
}

// Next moves to the next newer matching entry. Past the newest match it
// stops browsing and returns the draft. ok reports whether the input
// should be replaced.
func (h *History) Next() (string, bool) {
	if !h.browsing {
		return "", false
	}
	for i := h.cursor + 1; i < len(h.entries); i++ {
		if h.matches(i) {
			h.cursor = i
			return h.entries[i], true
		}
	}
	draft := h.draft
	h.Reset()
	return draft, true
}

// Reset stops browsing.
func (h *History) Reset() {
	h.browsing = false
	h.draft = ""
	h.filter = ""
}

// Len returns the number of remembered commands.
func (h *History) Len() int { return len(h.entries) }
