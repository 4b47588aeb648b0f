// SPDX-License-Identifier: MIT
// Package config loads the negpath binary's settings from an optional
// dotenv file and the environment. Command-line flags override these values
// in the cli package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogLevel    = "NEGPATH_LOG_LEVEL"
	EnvLogFormat   = "NEGPATH_LOG_FORMAT"
	EnvTimingsFile = "NEGPATH_TIMINGS_FILE"
	EnvWorkers     = "NEGPATH_WORKERS"
	EnvFile        = "NEGPATH_ENV_FILE"
)

// DefaultEnvFile is loaded when NEGPATH_ENV_FILE is unset.
const DefaultEnvFile = ".env"

// ErrInvalid indicates an environment value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings shared by every subcommand.
type Config struct {
	LogLevel    string // debug, info, warn, error
	LogFormat   string // text or json
	TimingsFile string // results file for "run"; empty disables it
	Workers     int    // Johnson workers, ≥ 1
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Workers:   1,
	}
}

// Load reads envFile (a missing file is not an error) into the process
// environment, then builds a Config from the NEGPATH_* variables over the
// defaults. Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", envFile, err)
		}
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup over the defaults.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup(EnvTimingsFile); ok {
		cfg.TimingsFile = v
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("%w: %s=%q must be a positive integer", ErrInvalid, EnvWorkers, v)
		}
		cfg.Workers = n
	}

	return cfg, cfg.Validate()
}

// Validate checks the level and format names.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}

	return nil
}
