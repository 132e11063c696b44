package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/jaklogic/config"
	"github.com/nathoo/jaklogic/content"
	"github.com/nathoo/jaklogic/datapack"
	"github.com/nathoo/jaklogic/engine"
	"github.com/nathoo/jaklogic/types"
	"github.com/nathoo/jaklogic/world"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	defs, err := content.Defs()
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	w, err := world.Build(defs, config.Defaults(), 1)
	if err != nil {
		t.Fatalf("world.Build: %v", err)
	}
	return engine.New(w, 42)
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := &CLI{
		Engine:  testEngine(t),
		In:      strings.NewReader(input),
		Out:     &out,
		SaveDir: t.TempDir(),
	}
	return c, &out
}

func TestCLI_BannerAndGoal(t *testing.T) {
	c, out := newTestCLI(t, "/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Jak and Daxter logic explorer:") {
		t.Error("expected banner in output")
	}
	if !strings.Contains(output, "Goal:") {
		t.Error("expected goal in output")
	}
	if !strings.Contains(output, "[Goodbye.]") {
		t.Error("expected goodbye message")
	}
}

func TestCLI_GiveItem(t *testing.T) {
	c, out := newTestCLI(t, "give Fisherman's Boat\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Now reachable: Misty Island Main Area") {
		t.Errorf("expected unlock report, got:\n%s", out.String())
	}
}

func TestCLI_HelpCommand(t *testing.T) {
	c, out := newTestCLI(t, "/help\n/quit\n")
	c.Run()

	output := out.String()
	for _, want := range []string{"/save", "/export", "give <item>", "pool"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestCLI_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	var out1 bytes.Buffer
	c1 := &CLI{
		Engine:  testEngine(t),
		In:      strings.NewReader("give Power Cell 20\n/save test1\n/quit\n"),
		Out:     &out1,
		SaveDir: dir,
	}
	c1.Run()
	if !strings.Contains(out1.String(), "Session saved to test1.") {
		t.Fatalf("save not confirmed:\n%s", out1.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "test1.json")); err != nil {
		t.Fatalf("save file missing: %v", err)
	}

	var out2 bytes.Buffer
	c2 := &CLI{
		Engine:  testEngine(t),
		In:      strings.NewReader("/load test1\nreach Fire Canyon Main Area\n/quit\n"),
		Out:     &out2,
		SaveDir: dir,
	}
	c2.Run()
	output := out2.String()
	if !strings.Contains(output, "Session loaded from test1 (turn 1).") {
		t.Errorf("load not confirmed:\n%s", output)
	}
	if !strings.Contains(output, "Fire Canyon Main Area is reachable.") {
		t.Errorf("loaded items not applied:\n%s", output)
	}
	if c2.Engine.Session != c1.Engine.Session {
		t.Errorf("Session = %q, want %q", c2.Engine.Session, c1.Engine.Session)
	}
}

func TestCLI_LoadNonexistent(t *testing.T) {
	c, out := newTestCLI(t, "/load nope\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "[load failed:") {
		t.Errorf("expected load failure, got:\n%s", out.String())
	}
}

func TestCLI_Export(t *testing.T) {
	c, out := newTestCLI(t, "/export pack.json.zst\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Data package written to pack.json.zst.") {
		t.Fatalf("export not confirmed:\n%s", out.String())
	}
	f, err := os.Open(filepath.Join(c.SaveDir, "pack.json.zst"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	p, err := datapack.Import(f)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if p.Game != datapack.Game {
		t.Errorf("Game = %q", p.Game)
	}
}

func TestCLI_UnknownMetaCommand(t *testing.T) {
	c, out := newTestCLI(t, "/bogus\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Unknown command: /bogus") {
		t.Error("expected unknown command message")
	}
}

func TestCLI_TraceToggle(t *testing.T) {
	c, out := newTestCLI(t, "/trace\ngive Fisherman's Boat\n/trace\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Trace output enabled.") {
		t.Error("expected trace enabled message")
	}
	if !strings.Contains(output, "[trace]   region_unlocked") {
		t.Errorf("expected region event in trace:\n%s", output)
	}
	if !strings.Contains(output, "Trace output disabled.") {
		t.Error("expected trace disabled message")
	}
}

func TestCLI_StateCommand(t *testing.T) {
	c, out := newTestCLI(t, "/state\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "[Turn: 0]") {
		t.Errorf("expected turn count, got:\n%s", output)
	}
	if !strings.Contains(output, "[RNG: seed 42, position 0]") {
		t.Errorf("expected rng state, got:\n%s", output)
	}
}

func TestCLI_CommentsAndEmptyInputSkipped(t *testing.T) {
	c, out := newTestCLI(t, "\n# a comment\n\n/quit\n")
	c.EchoInput = true
	c.Run()

	if strings.Contains(out.String(), "a comment") {
		t.Error("comment line was echoed")
	}
	if c.Engine.Turn != 0 {
		t.Errorf("Turn = %d, want 0", c.Engine.Turn)
	}
}

func TestCLI_Again_RepeatsLastCommand(t *testing.T) {
	c, out := newTestCLI(t, "give Power Cell\nagain\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Power Cell: 2.") {
		t.Errorf("expected repeated give, got:\n%s", out.String())
	}
}

func TestCLI_G_RepeatsLastCommand(t *testing.T) {
	c, out := newTestCLI(t, "give Power Cell\ng\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Power Cell: 2.") {
		t.Errorf("expected repeated give, got:\n%s", out.String())
	}
}

func TestCLI_Again_NothingToRepeat(t *testing.T) {
	c, out := newTestCLI(t, "again\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Nothing to repeat.") {
		t.Error("expected 'Nothing to repeat.' message")
	}
}

func TestTraceLines(t *testing.T) {
	if lines := TraceLines(types.Result{Output: []string{"x"}}); lines != nil {
		t.Errorf("TraceLines with nothing to trace = %v, want nil", lines)
	}

	eng := testEngine(t)
	lines := TraceLines(eng.Step("give Fisherman's Boat"))
	if len(lines) < 2 || !strings.HasPrefix(lines[0], "[trace] ") {
		t.Fatalf("TraceLines = %v", lines)
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, "[trace]   ") {
			t.Errorf("detail line %q not indented", l)
		}
	}
}
