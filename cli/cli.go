// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the logic explorer.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathoo/jaklogic/datapack"
	"github.com/nathoo/jaklogic/engine"
	"github.com/nathoo/jaklogic/engine/save"
	"github.com/nathoo/jaklogic/types"
)

// CLI handles terminal interaction with the user.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine. Saves and exports go to
// saveDir.
func New(eng *engine.Engine, saveDir string) *CLI {
	return &CLI{
		Engine:  eng,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: saveDir,
	}
}

// Run starts the explorer loop. It shows the banner and the goal, then
// loops: prompt → input → dispatch → output.
func (c *CLI) Run() {
	c.printLine(Banner(c.Engine))
	c.printLines(c.Engine.GoalLines())
	c.printLine("")

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last explorer command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)

		if c.Trace {
			c.printLines(TraceLines(result))
		}
	}
}

// Banner is the first line shown to the user.
func Banner(eng *engine.Engine) string {
	w := eng.World
	return fmt.Sprintf("Jak and Daxter logic explorer: %d regions, %d locations, player %d.",
		len(w.Graph.Regions()), len(w.Graph.Locations()), w.Player)
}

// handleMeta dispatches meta-commands. Returns true if the explorer should
// exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.report(Save(c.Engine, c.SaveDir, arg))

	case "/load":
		msg, err := Load(c.Engine, c.SaveDir, arg)
		c.report(msg, err)
		if err == nil {
			c.printLines(c.Engine.GoalLines())
		}

	case "/export":
		c.report(Export(c.Engine, c.SaveDir, arg))

	case "/help":
		for _, line := range HelpLines() {
			c.printLine(line)
		}

	case "/state":
		for _, line := range StateLines(c.Engine) {
			c.printSystem(line)
		}

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) report(msg string, err error) {
	if err != nil {
		c.printSystem(err.Error())
		return
	}
	c.printSystem(msg)
}

// Save writes the session to dir/<name>.json. The name defaults to
// quicksave.
func Save(eng *engine.Engine, dir, name string) (string, error) {
	if name == "" {
		name = "quicksave"
	}

	data, err := save.Save(eng.Snapshot())
	if err != nil {
		return "", fmt.Errorf("save failed: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("save failed: %w", err)
	}
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save failed: %w", err)
	}

	slog.Info("session saved", "path", path, "session", eng.Session)
	return fmt.Sprintf("Session saved to %s.", name), nil
}

// Load restores the session saved as dir/<name>.json.
func Load(eng *engine.Engine, dir, name string) (string, error) {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load failed: %w", err)
	}
	sd, err := save.Load(data)
	if err != nil {
		return "", fmt.Errorf("load failed: %w", err)
	}
	if err := eng.Restore(sd); err != nil {
		return "", fmt.Errorf("load failed: %w", err)
	}

	slog.Info("session loaded", "path", path, "session", sd.Session)
	return fmt.Sprintf("Session loaded from %s (turn %d).", name, eng.Turn), nil
}

// Export writes the world's data package to dir/<name>. A name ending in
// .zst is compressed. The name defaults to datapackage.json.
func Export(eng *engine.Engine, dir, name string) (string, error) {
	if name == "" {
		name = "datapackage.json"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := ExportFile(eng, path); err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	return fmt.Sprintf("Data package written to %s.", name), nil
}

// ExportFile writes the world's data package to path.
func ExportFile(eng *engine.Engine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	opts := datapack.Options{Compress: strings.HasSuffix(path, ".zst")}
	if err := datapack.Export(f, eng.World, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("data package exported", "path", path, "compressed", opts.Compress)
	return nil
}

// HelpLines lists the meta commands followed by the explorer commands.
func HelpLines() []string {
	lines := []string{
		"System:",
		"  /save [name]    - Save the session (default: quicksave)",
		"  /load [name]    - Load a session (default: quicksave)",
		"  /export [file]  - Write the data package (.zst compresses)",
		"  /quit           - Exit",
		"  /help           - Show this help",
		"  /state          - Debug: dump the session",
		"  /trace          - Toggle event trace output",
		"  again (g)       - Repeat the last command",
		"",
	}
	return append(lines, engine.HelpLines()...)
}

// StateLines summarizes the session for /state.
func StateLines(eng *engine.Engine) []string {
	w := eng.World
	res := eng.Sweep()
	return []string{
		fmt.Sprintf("Session: %s", eng.Session),
		fmt.Sprintf("Turn: %d", eng.Turn),
		fmt.Sprintf("Player: %d, hubs built: %d", w.Player, w.Hub),
		fmt.Sprintf("Goal: %s", w.Goal.Describe(w.Graph)),
		fmt.Sprintf("Regions reached: %d of %d", len(res.Regions()), len(w.Graph.Regions())),
		fmt.Sprintf("Locations in logic: %d of %d", res.LocationCount(), len(w.Graph.Locations())),
		fmt.Sprintf("Items: %v", eng.Items.Items(w.Player)),
		fmt.Sprintf("RNG: seed %d, position %d", eng.RNG.Seed(), eng.RNG.Position()),
	}
}

// TraceLines lists the effects and events behind a result.
func TraceLines(result types.Result) []string {
	if len(result.Effects) == 0 && len(result.Events) == 0 {
		return nil
	}
	lines := []string{fmt.Sprintf("[trace] %d effect(s), %d event(s)", len(result.Effects), len(result.Events))}
	for _, e := range result.Effects {
		lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Params))
	}
	for _, e := range result.Events {
		lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
	}
	return lines
}

func (c *CLI) printResult(result types.Result) {
	c.printLines(result.Output)
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
