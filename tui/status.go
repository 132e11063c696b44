package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/jaklogic/engine/orbs"
)

// statusFields are the pieces of the status bar.
type statusFields struct {
	goal      string
	regions   string
	locations string
	orbCount  string
	turn      string
}

func (m Model) statusFields() statusFields {
	w := m.engine.World
	res := m.engine.Sweep()

	mark := "open"
	if w.Completion(m.engine.Items) {
		mark = "DONE"
	}
	return statusFields{
		goal:      fmt.Sprintf("Goal: %s", mark),
		regions:   fmt.Sprintf("Regions %d/%d", len(res.Regions()), len(w.Graph.Regions())),
		locations: fmt.Sprintf("Locs %d/%d", res.LocationCount(), len(w.Graph.Locations())),
		orbCount:  fmt.Sprintf("Orbs %d/%d", res.ReachableOrbs(""), orbs.Total(w.Graph)),
		turn:      fmt.Sprintf("T:%d", m.engine.Turn),
	}
}

// renderStatusBar produces a full-width inverted status line showing
// the goal state, reachable regions, locations in logic, orbs and turn
// count.
func (m Model) renderStatusBar() string {
	f := m.statusFields()

	left := fmt.Sprintf(" %s | %s | %s", f.goal, f.regions, f.locations)
	right := fmt.Sprintf("%s | %s ", f.orbCount, f.turn)
	if lipgloss.Width(left)+lipgloss.Width(right)+2 > m.width {
		left = fmt.Sprintf(" %s | %s", f.goal, f.locations)
		right = f.turn + " "
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
