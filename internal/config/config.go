// Package config loads the replkit frontend configuration from a TOML file
// with environment variable overrides.
//
// Resolution order, later wins: built-in defaults, the TOML file, then
// REPLKIT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// envPrefix is the prefix for override variables, e.g. REPLKIT_PROMPT.
const envPrefix = "REPLKIT_"

// Config holds the frontend settings.
type Config struct {
	// Prompt is the input prompt text.
	Prompt string `toml:"prompt"`

	// HistoryFile is the path for persisted command history.
	// Empty disables persistence.
	HistoryFile string `toml:"history_file"`

	// HistoryMax bounds the number of persisted history entries.
	HistoryMax int `toml:"history_max"`

	// PollInterval is the input poll interval as a Go duration string.
	PollInterval string `toml:"poll_interval"`

	// Log configures the frontend log file. The REPL owns the terminal,
	// so logs never go to stdout or stderr while the session runs.
	Log LogConfig `toml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `toml:"level"`

	// File is the log destination. Empty discards log output.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Prompt:       "> ",
		HistoryFile:  defaultHistoryPath(),
		HistoryMax:   2000,
		PollInterval: "50ms",
		Log:          LogConfig{Level: "info"},
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".replkit_history")
}

// Load reads path on top of the defaults and applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays REPLKIT_* environment variables.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envPrefix + "PROMPT"); ok {
		c.Prompt = v
	}
	if v, ok := os.LookupEnv(envPrefix + "HISTORY_FILE"); ok {
		c.HistoryFile = v
	}
	if v, ok := os.LookupEnv(envPrefix + "HISTORY_MAX"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("config: %sHISTORY_MAX: %q is not a non-negative integer", envPrefix, v)
		}
		c.HistoryMax = n
	}
	if v, ok := os.LookupEnv(envPrefix + "POLL_INTERVAL"); ok {
		c.PollInterval = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_FILE"); ok {
		c.Log.File = v
	}
	return nil
}

// validate rejects values the session cannot run with.
func (c *Config) validate() error {
	if c.Prompt == "" {
		return fmt.Errorf("config: prompt must not be empty")
	}
	if _, err := c.ParsePollInterval(); err != nil {
		return fmt.Errorf("config: poll_interval: %w", err)
	}
	return nil
}

// ParsePollInterval returns the poll interval as a duration.
func (c *Config) ParsePollInterval() (time.Duration, error) {
	if c.PollInterval == "" {
		return 50 * time.Millisecond, nil
	}
	d, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}
