/*
Package main implements the buzzword lookup server and CLI application.

buzzserve translates corporate buzzwords: it takes a free-text query and
returns ranked matches from a phrase catalog, including typo-tolerant
near-misses. It can operate as a msgpack IPC server for integration with
editors and pickers, or as an interactive CLI for testing and debugging.

# Usage

Start the IPC server with the built-in catalog:

	buzzserve

Use a custom dictionary file and enable debug logging:

	buzzserve -data /path/to/dictionary.toml -d

Run in CLI mode for interactive testing:

	buzzserve -c

# Configuration

Runtime configuration is managed through a TOML file with search thresholds,
suggestion options and CLI defaults:

	[search]
	min_query_len = 2
	max_query_len = 100
	score_threshold = 0.1
	max_results = 10
	cache_capacity = 100

	[suggest]
	max_suggestions = 6
	category_cap = 2
	popular = ["synergy", "leverage", "paradigm shift"]

The config file is automatically created with defaults if it doesn't exist.

# Dictionary

The catalog is a TOML file of [[entry]] tables, each with a phrase, a plain
language translation, search keywords, a category and optional alternate
meanings. Entries missing a phrase or translation are dropped at load; the
loader refuses to start when more than half the file is malformed. Without
a -data flag the compiled-in catalog is used.

# IPC Protocol

The server communicates via msgpack over stdin/stdout. See the server
package docs for message layouts. Ops: query, similar, related, random,
health.
*/
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vhaldran/buzzserve/internal/cli"
	"github.com/vhaldran/buzzserve/pkg/config"
	"github.com/vhaldran/buzzserve/pkg/dictionary"
	"github.com/vhaldran/buzzserve/pkg/search"
	"github.com/vhaldran/buzzserve/pkg/server"
	"github.com/vhaldran/buzzserve/pkg/suggest"
)

const (
	Version = "0.3.0"
	AppName = "buzzserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, catalog and engine together and picks the run mode.
// It holds no logic of its own.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Path to a TOML dictionary file (builtin catalog when empty)")
	configPath := flag.String("config", "", "Path to config.toml (default user config dir)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI instead of the IPC server")
	seed := flag.Int64("seed", 0, "Random seed for suggestion fill (0 uses the clock)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfgPath := *configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.GetDefaultConfigPath()
		if err != nil {
			log.Fatalf("Failed to determine config path: %v", err)
		}
	}
	log.Debugf("Using config file: %s", cfgPath)

	appConfig, err := config.InitConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *dataPath == "" && appConfig.Dict.Path != "" {
		*dataPath = appConfig.Dict.Path
	}

	dict, err := loadDictionary(*dataPath)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debugf("Catalog ready with %d entries", dict.Len())

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	searcher := search.NewSearcher(dict, appConfig.Search)
	suggester := suggest.NewGenerator(dict, appConfig.Suggest, rng)

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(searcher, suggester, dict, appConfig.CLI)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(searcher, suggester, dict)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadDictionary picks the file catalog when a path is given, otherwise the
// compiled-in one.
func loadDictionary(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		log.Debug("No dictionary path given, using builtin catalog")
		return dictionary.Builtin(), nil
	}
	return dictionary.LoadFile(path)
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Printf("[ %s ] Translates corporate buzzwords into plain language.", AppName)
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
}
