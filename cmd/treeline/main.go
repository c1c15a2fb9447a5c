/*
Package main implements the treeline interactive history prompt.

Treeline records every line you accept at its prompt and offers prefix
completion against that history while you type. The history is held in a
per-character prefix tree; completion never leaves process memory and
nothing is persisted across restarts.

# Usage

Start the interactive prompt:

	treeline

Type freely; the keys the editor understands:

	Enter           commit the line into the history
	Tab             list every history entry starting with the current line
	Backspace       delete the last character
	Ctrl+Backspace  delete the last word (Ctrl+W works too)
	Ctrl+C          leave immediately

Committing q, quit or exit (any casing) ends the session without recording
the line.

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run at ~/.config/treeline/config.toml:

	[prompt]
	text = "> "
	color = "3"

	[completion]
	limit = 0
	indent = "  "
	color = "8"

	[cli]
	exit_words = ["q", "quit", "exit"]

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 256
	enable_filter = true

A custom path can be given with -config.

# IPC Server Mode

With -serve the process skips the prompt and speaks the msgpack protocol
over stdin/stdout instead, exposing the same history trie to another
program. Requests carry an id, an op and its parameters:

	{"id": "req1", "op": "insert", "w": "hello world"}
	{"id": "req2", "op": "complete", "p": "hello", "l": 20}

Completion responses list candidates with positional ranks and timing
information. See pkg/server for the full protocol.

# Command Line Flags

	-d        Enable debug logging
	-serve    Run the msgpack IPC server instead of the prompt
	-config   Path to a custom config file
	-version  Show current version

Exit status is 0 after an exit word or Ctrl+C, 1 on any terminal or IO
failure, with the failure written to stderr after the terminal mode has
been restored.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/treeline/internal/cli"
	"github.com/bastiangx/treeline/internal/term"
	"github.com/bastiangx/treeline/pkg/config"
	"github.com/bastiangx/treeline/pkg/editor"
	"github.com/bastiangx/treeline/pkg/server"
	"github.com/bastiangx/treeline/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "treeline"
	gh      = "https://github.com/bastiangx/treeline"
)

// sigHandler is a simple handler for OS signals to exit normally.
// Only used in serve mode; the interactive editor decodes Ctrl+C itself.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to run the prompt or the IPC server.
// main() does not implement logic for them and only manages the flow.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server instead of the interactive prompt")
	configPath := flag.String("config", "", "Path to a custom config file")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(false)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Warnf("Config unavailable, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	if *serveMode {
		sigHandler()
		log.Debug("spawning IPC")
		srv := server.NewServer(&cfg.Server)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	if err := runPrompt(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runPrompt wires the terminal, editor and session together. The terminal
// mode is restored on every exit path before the error surfaces.
func runPrompt(cfg *config.Config) error {
	tty := term.New()
	if err := tty.EnableRaw(); err != nil {
		return err
	}
	defer tty.Restore()

	history := trie.New()
	ed := editor.New(tty, history, cfg)
	return cli.NewSession(ed, cfg).Run()
}

// printVersion displays some basic info with the styled logger.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ treeline ] A prompt that remembers what you typed!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
