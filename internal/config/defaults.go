// Package config provides shared configuration defaults and file discovery
// for projtrack. It is decoupled from CLI concerns.
package config

import "github.com/leapstack-labs/projtrack/pkg/core"

// Default configuration values.
const (
	DefaultDueSoonDays       = core.DefaultDueSoonDays
	DefaultRetryInvalidDates = false
	DefaultOutput            = "auto" // TTY=text, otherwise markdown
	DefaultLogLevel          = "warn"
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "PROJTRACK_"

// Defaults returns the default configuration as a flat key map,
// suitable for a koanf confmap provider.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"due_soon_days":       DefaultDueSoonDays,
		"retry_invalid_dates": DefaultRetryInvalidDates,
		"today":               "",
		"output":              DefaultOutput,
		"log_level":           DefaultLogLevel,
		"verbose":             false,
		"history_file":        "",
	}
}
