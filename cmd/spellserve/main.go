/*
Package main implements the spelling suggestion server and CLI [DBG] application.

SpellServe provides fast approximate string matching for spelling correction
using a precomputed deletion index (the Symmetric Delete technique). Instead of
comparing a query against every dictionary word, both sides are reduced to
deletion variants and matches are found by equality lookup, with exact
Damerau-Levenshtein ranking applied to the surviving candidates. It can operate
as a MessagePack IPC server for integration with editors, or as a CLI
application for testing and debugging.

The index is rebuilt fresh on every run from a plain text word list and built
in parallel across dictionary chunks; no query is answered until the build
gate opens, and the completed index is immutable so the query path needs no
locking.

# Usage

Start the server with the default word list:

	spellserve

Use a custom word list and enable debug mode:

	spellserve -dict /path/to/words.txt -d

Run in CLI mode for interactive testing:

	spellserve -c -limit 10 -k 2

The word list holds one entry per line: a word optionally followed by an
occurrence count. Malformed lines are skipped; an unreadable file aborts
startup.

# Configuration

Runtime configuration is managed through a TOML file that supports suggestion
parameters, dictionary settings, and CLI defaults:

	[spell]
	max_distance = 2
	max_limit = 64
	min_query = 1
	max_query = 60

	[dict]
	path = "words.txt"
	max_words = 0
	chunk_size = 2000

The config file is automatically created with defaults if it doesn't exist.
max_distance is fixed for the process lifetime: the index is built with it and
every query probes with the same value.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Suggestion requests
are processed synchronously with microsecond timing information included in
responses.

Send a suggestion request:

	{"id": "req1", "q": "tubr", "l": 10}

Receive corrections ranked by distance, then frequency, then word:

	{"id": "req1", "s": [{"w": "tub", "d": 1, "f": 120}, {"w": "tube", "d": 1, "f": 80}], "c": 2, "t": 145}

Status requests expose index statistics:

	{"id": "st1", "action": "get_stats"}

# Server Mode

The default mode starts a MessagePack IPC server that processes suggestion
requests from stdin and writes responses to stdout. This design enables
integration with text editors and other applications through process
communication.

	srv := server.NewServer(checker, appConfig)
	err := srv.Start()

The server waits for the index build gate before answering, validates query
lengths against the configured bounds and reports empty results explicitly
(count 0), distinct from errors.

# CLI Mode

CLI mode provides an interactive interface for testing and debugging the
suggestion engine. It reads one word per line from stdin and displays ranked
corrections with distance and frequency information.

	inputHandler := cli.NewInputHandler(checker, minLen, maxLen, limit, noFilter)
	err := inputHandler.Start()

This mode is primarily intended for development and testing new features
before deploying to server mode.

# Suggestion Engine

The core functionality is provided by the spell package, which implements
deletion-variant generation, the parallel index build and distance-ranked
lookups.

	checker, err := spell.NewChecker(maxDistance, chunkSize)
	go checker.Build(ctx, entries)
	suggestions, err := checker.Suggest("tubr", 10)

Suggest blocks until the build completes; if the build fails or is cancelled
no partial index is ever exposed and queries report the index as unavailable.

# Command Line Flags

The following flags control application behavior:

	-dict string
	    Path to the word list file (default from config)
	-k int
	    Maximum edit distance for corrections (default from config)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-config string
	    Custom config file path
	-limit int
	    Number of suggestions to return (default from config)
	-words int
	    Maximum words to load (0 for all)
	-chunk int
	    Words per builder chunk
	-no-filter
	    Disable input filtering for debugging
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/spellserve/internal/cli"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/server"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "spellserve"
	gh      = "https://github.com/bastiangx/spellserve"
)

// sigHandler cancels the build on the first signal and exits on the second.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cancel()
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		<-c
		os.Exit(1)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Path to the word list file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Custom config file path")
	maxDistance := flag.Int("k", -1, "Maximum edit distance for corrections (default from config)")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to return")
	minQuery := flag.Int("qmin", defaultConfig.CLI.DefaultMinLen, "Minimum query length (1 < n <= qmax)")
	maxQuery := flag.Int("qmax", defaultConfig.CLI.DefaultMaxLen, "Maximum query length")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only) - passes raw queries through")
	wordLimit := flag.Int("words", defaultConfig.Dict.MaxWords, "Maximum number of words to load (use 0 for all words)")
	chunkSize := flag.Int("chunk", defaultConfig.Dict.ChunkSize, "Number of words per builder chunk")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	// flag overrides
	if *maxDistance >= 0 {
		appConfig.Spell.MaxDistance = *maxDistance
	}
	if *dictPath != "" {
		appConfig.Dict.Path = *dictPath
	}
	if *wordLimit != defaultConfig.Dict.MaxWords {
		appConfig.Dict.MaxWords = *wordLimit
	}
	if *chunkSize != defaultConfig.Dict.ChunkSize {
		appConfig.Dict.ChunkSize = *chunkSize
	}

	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := dictionary.ValidateWordList(appConfig.Dict.Path); err != nil {
		log.Fatalf("Word list validation failed: %v", err)
	}

	entries, err := dictionary.Load(appConfig.Dict.Path, appConfig.Dict.MaxWords)
	if err != nil {
		log.Fatalf("Failed to read word list: %v", err)
	}
	log.Debugf("Init checker: entries=[%d], k=[%d], chunkSize=[%d]",
		len(entries), appConfig.Spell.MaxDistance, appConfig.Dict.ChunkSize)

	checker, err := spell.NewChecker(appConfig.Spell.MaxDistance, appConfig.Dict.ChunkSize)
	if err != nil {
		log.Fatalf("Failed to init checker: %v", err)
	}

	// build in the background; the server and CLI wait on the gate
	go func() {
		if err := checker.Build(ctx, entries); err != nil {
			log.Errorf("Index build did not complete: %v", err)
		}
	}()

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minQuery", *minQuery,
			"maxQuery", *maxQuery,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(checker, *minQuery, *maxQuery, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(checker, appConfig)

	showStartupInfo(appConfig.Dict.Path, appConfig.Spell.MaxDistance)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// showVersionInfo prints a styled version banner.
func showVersionInfo() {
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
	logger.Print("[ SpellServe ] Serves really fast spelling corrections!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictPath string, maxDistance int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("============")
	println(" SpellServe ")
	println("============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("word list: ( %s )", dictPath)
	log.Infof("max distance: [ %d ]", maxDistance)
	log.Info("status: building index...")
	println("============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
