package commands

import (
	"log/slog"

	"github.com/leapstack-labs/projtrack/internal/cli/config"
	"github.com/leapstack-labs/projtrack/internal/cli/output"
	"github.com/leapstack-labs/projtrack/internal/tracker"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration
// and the logger stored on the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// NewTracker creates an empty tracker configured from the command context.
func (c *CommandContext) NewTracker() *tracker.Tracker {
	return tracker.New(tracker.Config{
		DueSoonDays: c.Cfg.DueSoonDays,
		Logger:      c.Logger,
	})
}

// getConfig returns the current configuration, or defaults when the
// command runs without the root pre-run (tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}
