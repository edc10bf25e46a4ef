// Package config loads process configuration from the environment and
// command-line flags.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/zeusync/geomkit/internal/observability/log"
	"github.com/zeusync/geomkit/pkg/linalg"
)

type Config struct {
	LogLevel    string `env:"GEOMKIT_LOG_LEVEL" envDefault:"info"`
	Workers     int    `env:"GEOMKIT_WORKERS" envDefault:"4"`
	PrintFormat string `env:"GEOMKIT_PRINT_FORMAT" envDefault:"row"`

	// Files are the scene paths given as positional arguments.
	Files []string
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfig parses the environment, then lets flags in args override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "scenes evaluated concurrently")
	fs.StringVar(&cfg.PrintFormat, "format", cfg.PrintFormat, "vector print format (row, column)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Files = fs.Args()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := linalg.ParsePrintFormat(c.PrintFormat); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

// Format returns the parsed vector print format. Call Validate first.
func (c Config) Format() linalg.PrintFormat {
	format, _ := linalg.ParsePrintFormat(c.PrintFormat)
	return format
}
