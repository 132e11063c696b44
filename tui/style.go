package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	stylePlain = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleReached = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	styleLost = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	styleDetail = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	styleHeading = lipgloss.NewStyle().
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindPlain lineKind = iota
	kindHeading
	kindReached
	kindLost
	kindDetail
	kindSystem
	kindError
	kindTrace
	kindInput
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "  "):
		return kindDetail
	case strings.HasPrefix(line, "no "),
		strings.HasPrefix(line, "nothing is called"),
		strings.HasPrefix(line, "which "),
		strings.HasPrefix(line, "I don't know how"),
		strings.HasPrefix(line, "You hold no "):
		return kindError
	case strings.HasPrefix(line, "No longer reachable"),
		strings.Contains(line, "is not reachable"),
		strings.Contains(line, "out of logic"),
		strings.Contains(line, "out of reach"),
		strings.Contains(line, "dropped out of logic"):
		return kindLost
	case strings.HasPrefix(line, "Now reachable"),
		strings.HasPrefix(line, "Goal reached"),
		strings.HasSuffix(line, "is reachable."),
		strings.HasSuffix(line, "more location(s) in logic."),
		strings.HasSuffix(line, "is in logic."):
		return kindReached
	case strings.HasSuffix(line, ":"):
		return kindHeading
	default:
		return kindPlain
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindHeading:
		return styleHeading.Render(line)
	case kindReached:
		return styleReached.Render(line)
	case kindLost:
		return styleLost.Render(line)
	case kindDetail:
		return styleDetail.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	case kindInput:
		return stylePlayerInput.Render(line)
	default:
		return stylePlain.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
