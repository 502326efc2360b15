// Package main is the entry point for the replkit chat frontend.
//
// It wires the process-global pieces the REPL core deliberately leaves
// outside: OS signal handling (SIGINT/SIGTERM request stop, SIGWINCH
// requests a redraw), history persistence, configuration, and logging.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/replkit/internal/config"
	"github.com/dshills/replkit/internal/history"
	"github.com/dshills/replkit/internal/logging"
	"github.com/dshills/replkit/internal/session"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	applyFlagOverrides(&cfg, opts)

	log, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	var store history.Store
	if cfg.HistoryFile != "" {
		store = history.NewFileStore(cfg.HistoryFile, cfg.HistoryMax)
	}

	poll, err := cfg.ParsePollInterval()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	c := newChat(log)
	sess := session.New(c.handleLine, session.Options{
		Prompt:       cfg.Prompt,
		PollInterval: poll,
		History:      store,
		Logger:       log,
	})

	// Signals stay on the main goroutine's side; the session only ever
	// sees cooperative requests.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGWINCH)
	defer signal.Stop(signals)

	go func() {
		for sig := range signals {
			switch sig {
			case syscall.SIGWINCH:
				sess.RequestResize()
			default:
				sess.Stop()
			}
		}
	}()

	if opts.demo {
		go c.producer(sess)
	}

	log.Info("session starting id=%s version=%s", c.id, version)
	sess.Start()
	sess.Join()
	log.Info("session finished")
	return 0
}

// openLogger builds the frontend logger. Stdout belongs to the REPL worker,
// so logs go to a file or nowhere.
func openLogger(cfg config.Config) (*logging.Logger, func(), error) {
	if cfg.Log.File == "" {
		return logging.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := logging.New(f, logging.ParseLevel(cfg.Log.Level), "replkit")
	return log, func() { f.Close() }, nil
}

type options struct {
	configPath  string
	prompt      string
	historyPath string
	logLevel    string
	logFile     string
	demo        bool
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.prompt, "prompt", "", "Prompt text")
	flag.StringVar(&opts.historyPath, "history", "", "History file path (empty string disables)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Log file path")
	flag.BoolVar(&opts.demo, "demo", false, "Run a demo producer posting periodic messages")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "replkit - thread-safe raw-terminal REPL\n\n")
		fmt.Fprintf(os.Stderr, "Usage: replkit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nType /help at the prompt for commands.\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("replkit %s (%s)\n", version, commit)
		os.Exit(0)
	}
	return opts
}

// applyFlagOverrides lets command-line flags win over file and environment.
func applyFlagOverrides(cfg *config.Config, opts options) {
	if opts.prompt != "" {
		cfg.Prompt = opts.prompt
	}
	if flagWasSet("history") {
		cfg.HistoryFile = opts.historyPath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
