// Package config provides configuration management for the projtrack CLI.
//
// Values are layered, lowest to highest precedence: built-in defaults,
// projtrack.yaml, the .env file next to it, PROJTRACK_* environment
// variables, and explicitly set command-line flags.
package config

import (
	sharedcfg "github.com/leapstack-labs/projtrack/internal/config"
	"github.com/leapstack-labs/projtrack/pkg/core"
)

// Config holds all CLI configuration options.
type Config struct {
	DueSoonDays       int       `koanf:"due_soon_days" validate:"gte=1"`
	RetryInvalidDates bool      `koanf:"retry_invalid_dates"`
	Today             core.Date `koanf:"today"` // zero means the system clock
	OutputFormat      string    `koanf:"output" validate:"oneof=auto text markdown json yaml"`
	LogLevel          string    `koanf:"log_level" validate:"oneof=debug info warn error"`
	Verbose           bool      `koanf:"verbose"`
	HistoryFile       string    `koanf:"history_file"`

	// ProjectRoot is the directory the config was resolved against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultDueSoonDays = sharedcfg.DefaultDueSoonDays
	DefaultOutput      = sharedcfg.DefaultOutput
	DefaultLogLevel    = sharedcfg.DefaultLogLevel
)

// Default returns the configuration used when nothing was loaded.
func Default() *Config {
	return &Config{
		DueSoonDays:  DefaultDueSoonDays,
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
	}
}

// CurrentDate returns the pinned date if one is configured, otherwise today.
func (c *Config) CurrentDate() core.Date {
	if !c.Today.IsZero() {
		return c.Today
	}
	return core.Today()
}
