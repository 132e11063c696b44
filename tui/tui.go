package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/jaklogic/cli"
	"github.com/nathoo/jaklogic/engine"
)

// rawLine is a transcript line kept unstyled so a resize can re-wrap it.
type rawLine struct {
	text    string
	kind    lineKind
	bracket bool // meta command output, shown as [text]
}

// maxTranscript bounds the transcript kept for re-wrapping.
const maxTranscript = 5000

// Model is the Bubble Tea model for the logic explorer TUI.
type Model struct {
	engine *engine.Engine

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated transcript lines (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	lastCmd  string
	saveDir  string
}

// outputMsg carries output from the engine into the Update loop.
type outputMsg struct {
	input    string   // echoed user input (empty for the banner)
	lines    []string // output lines
	isSystem bool     // true for meta-command output
}

// New creates a TUI model wired to the given engine. Saves and exports go
// to saveDir.
func New(eng *engine.Engine, saveDir string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		input:   ti,
		history: NewHistory(100),
		saveDir: saveDir,
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, saveDir string) error {
	m := New(eng, saveDir)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the banner and the goal.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		lines := []string{cli.Banner(m.engine), "Type help for commands, /help for the rest.", ""}
		lines = append(lines, m.engine.GoalLines()...)
		return outputMsg{lines: lines}
	}
}

// Update handles key presses, resizes and engine output.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}

	case outputMsg:
		m = m.appendOutput(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resize fits the transcript above the status bar and the input line.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	vpHeight := max(height-2, 1)
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.KeyMap = viewportKeyMap()
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.refreshViewport()
}

// handleKey takes the keys the input line does not own. handled is false
// for keys that should reach the text input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit, true

	case "enter":
		next, cmd := m.handleEnter()
		return next, cmd, true

	case "tab":
		line, cands := complete(m.engine, m.input.Value())
		m.setInput(line)
		if len(cands) > 1 {
			m = m.appendOutput(outputMsg{lines: candidateLines(cands)})
		}
		return m, nil, true

	case "up":
		if prev, ok := m.history.Prev(m.input.Value()); ok {
			m.setInput(prev)
		}
		return m, nil, true

	case "down":
		if next, ok := m.history.Next(); ok {
			m.setInput(next)
		}
		return m, nil, true

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd, true
	}
	return m, nil, false
}

func (m *Model) setInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// handleEnter runs the submitted line. "again" and "g" repeat the last
// command; lines starting with "/" are meta commands.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}
	m.history.Push(input)

	if lower := strings.ToLower(input); lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			return m.appendOutput(outputMsg{input: input, lines: []string{"Nothing to repeat."}, isSystem: true}), nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	if strings.HasPrefix(input, "/") {
		lines, quit := m.handleMeta(input)
		m = m.appendOutput(outputMsg{input: input, lines: lines, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	result := m.engine.Step(input)
	lines := result.Output
	if m.trace {
		lines = append(lines, cli.TraceLines(result)...)
	}
	return m.appendOutput(outputMsg{input: input, lines: lines}), nil
}

// appendOutput adds one exchange to the transcript, followed by a blank
// separator. The oldest lines drop once the transcript exceeds
// maxTranscript.
func (m Model) appendOutput(msg outputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, kind: kindInput})
	}
	for _, line := range msg.lines {
		kind := kindSystem
		if !msg.isSystem {
			kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rawLine{text: line, kind: kind, bracket: msg.isSystem})
	}
	m.rawLines = append(m.rawLines, rawLine{})
	if over := len(m.rawLines) - maxTranscript; over > 0 {
		m.rawLines = append(m.rawLines[:0:0], m.rawLines[over:]...)
	}
	m.refreshViewport()
	return m
}

// refreshViewport re-wraps the transcript at the current width and
// scrolls to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	width := max(m.width, 10)

	styled := make([]string, len(m.rawLines))
	for i, rl := range m.rawLines {
		if rl.text == "" {
			continue
		}
		wrapped := wordWrap(rl.text, width)
		if rl.bracket {
			styled[i] = styledSystemMsg(wrapped)
		} else {
			styled[i] = renderLineKind(wrapped, rl.kind)
		}
	}
	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap breaks text at spaces so no line exceeds width. Continuation
// lines keep the leading indent of the first line; a single word longer
// than the width stays whole.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	body := strings.TrimLeft(text, " ")
	indent := text[:len(text)-len(body)]
	avail := width - len(indent)
	if avail < 1 {
		avail = 1
	}

	var b strings.Builder
	b.WriteString(indent)
	col := 0
	for _, word := range strings.Fields(body) {
		switch {
		case col == 0:
		case col+1+len(word) > avail:
			b.WriteString("\n")
			b.WriteString(indent)
			col = 0
		default:
			b.WriteByte(' ')
			col++
		}
		b.WriteString(word)
		col += len(word)
	}
	return b.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/save":
		return metaOutput(cli.Save(m.engine, m.saveDir, arg)), false

	case "/load":
		msg, err := cli.Load(m.engine, m.saveDir, arg)
		if err != nil {
			return []string{err.Error()}, false
		}
		return append([]string{msg}, m.engine.GoalLines()...), false

	case "/export":
		return metaOutput(cli.Export(m.engine, m.saveDir, arg)), false

	case "/help":
		return append(cli.HelpLines(), "", "Keys: PgUp/PgDn scroll. Up/Down walk the history of commands starting with what you typed. Tab completes verbs and names."), false

	case "/state":
		return cli.StateLines(m.engine), false

	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func metaOutput(msg string, err error) []string {
	if err != nil {
		return []string{err.Error()}
	}
	return []string{msg}
}

// viewportKeyMap leaves Up and Down to the history.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
