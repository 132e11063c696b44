// jaklogic builds the Jak and Daxter randomizer logic for a set of options
// and explores it interactively.
// Usage: jaklogic [--version] [--plain] [--script <file>] [--trace]
//
//	[--options <file>] [--player <n>] [--seed <n>] [--content <dir>]
//	[--export <file>] [--zstd]
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nathoo/jaklogic/cli"
	"github.com/nathoo/jaklogic/config"
	"github.com/nathoo/jaklogic/content"
	"github.com/nathoo/jaklogic/engine"
	"github.com/nathoo/jaklogic/engine/tables"
	"github.com/nathoo/jaklogic/loader"
	"github.com/nathoo/jaklogic/logging"
	"github.com/nathoo/jaklogic/tui"
	"github.com/nathoo/jaklogic/world"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: jaklogic [--version] [--plain] [--script <file>] [--trace] [--options <file>] " +
	"[--player <n>] [--seed <n>] [--content <dir>] [--export <file>] [--zstd]"

func main() {
	plain := false
	trace := false
	zstd := false
	player := 0
	seed := time.Now().UnixNano()
	var scriptFile, optionsFile, contentDir, exportFile string

	args := os.Args[1:]
	value := func(i int) string {
		if i+1 >= len(args) {
			fmt.Fprintf(os.Stderr, "%s requires a value\n", args[i])
			os.Exit(1)
		}
		return args[i+1]
	}
	number := func(i int) int64 {
		n, err := strconv.ParseInt(value(i), 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", args[i], err)
			os.Exit(1)
		}
		return n
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("jaklogic %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--zstd":
			zstd = true
		case "--script":
			scriptFile = value(i)
			i++
		case "--options":
			optionsFile = value(i)
			i++
		case "--content":
			contentDir = value(i)
			i++
		case "--export":
			exportFile = value(i)
			i++
		case "--player":
			player = int(number(i))
			i++
		case "--seed":
			seed = number(i)
			i++
		default:
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(1)
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Setup(settings)
	if player == 0 {
		player = settings.Player
	}

	var defs *tables.Defs
	if contentDir != "" {
		defs, err = loader.LoadDir(contentDir)
	} else {
		defs, err = content.Defs()
	}
	if err != nil {
		logging.WithError(logger, err).Error("load content")
		os.Exit(1)
	}

	opts := config.Defaults()
	if optionsFile != "" {
		if opts, err = config.Load(optionsFile); err != nil {
			logging.WithError(logger, err).Error("load options", "path", optionsFile)
			os.Exit(1)
		}
	}
	if opts, err = config.Normalize(opts, settings.EnforceFriendlyOptions); err != nil {
		logging.WithError(logger, err).Error("invalid options")
		os.Exit(1)
	}

	w, err := world.Build(defs, opts, player)
	if err != nil {
		logging.WithError(logging.WithPlayer(logger, player), err).Error("build world")
		os.Exit(1)
	}
	eng := engine.New(w, seed)
	eng.FriendlyOptions = settings.EnforceFriendlyOptions

	// Export mode: write the data package and exit.
	if exportFile != "" {
		path := exportFile
		if zstd && !strings.HasSuffix(path, ".zst") {
			path += ".zst"
		}
		if err := cli.ExportFile(eng, path); err != nil {
			logging.WithError(logger, err).Error("export data package", "path", path)
			os.Exit(1)
		}
		return
	}

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng, settings.SaveDir)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(eng, settings.SaveDir)
		c.Trace = trace
		c.Run()
		return
	}

	if err := tui.Run(eng, settings.SaveDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
