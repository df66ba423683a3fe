package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewSessionCommand creates the interactive session command.
func NewSessionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "session",
		Aliases: []string{"shell"},
		Short:   "Start the interactive project menu",
		Long: `Start the interactive project menu.

Projects and tasks live in memory for the duration of the session.
On a terminal the prompt supports history and tab completion of
project names. With --input, or when stdin is not a terminal, menu
input is read line by line.`,
		Example: `  projtrack session
  projtrack session --today 2024-01-06 --due-soon-days 5
  projtrack session --input script.txt -o markdown`,
		Args: cobra.NoArgs,
		RunE: RunSession,
	}
}

// RunSession runs the menu loop. It is also the root command's default action.
func RunSession(cmd *cobra.Command, _ []string) error {
	cc := NewCommandContext(cmd)
	trk := cc.NewTracker()

	inputPath, _ := cmd.Flags().GetString("input")
	prompter, err := openPrompter(cmd, inputPath, cc.Cfg.HistoryFile, trk.ProjectNames, cc.Renderer.Styles().Prompt.Render)
	if err != nil {
		return err
	}
	defer func() { _ = prompter.Close() }()

	cc.Logger.Debug("session started",
		"due_soon_days", trk.DueSoonDays(),
		"retry_invalid_dates", cc.Cfg.RetryInvalidDates,
		"output", string(cc.Renderer.EffectiveMode()))

	s := NewSession(SessionOptions{
		Tracker:           trk,
		Prompter:          prompter,
		Renderer:          cc.Renderer,
		Logger:            cc.Logger,
		Today:             cc.Cfg.CurrentDate,
		RetryInvalidDates: cc.Cfg.RetryInvalidDates,
	})
	return s.Run(cmd.Context())
}

// openPrompter picks readline on an interactive terminal and a line reader otherwise.
func openPrompter(cmd *cobra.Command, inputPath, historyFile string, names func() []string, labelStyle func(...string) string) (Prompter, error) {
	out := cmd.OutOrStdout()

	if inputPath != "" {
		f, err := os.Open(inputPath) //nolint:gosec // user-supplied script path
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		return &closingPrompter{Prompter: NewLinePrompter(f, out), c: f}, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && f == os.Stdin && term.IsTerminal(int(f.Fd())) {
		return newReadlinePrompter(historyFile, out, names, labelStyle)
	}
	return NewLinePrompter(in, out), nil
}

// closingPrompter closes the underlying input when the prompter closes.
type closingPrompter struct {
	Prompter
	c io.Closer
}

func (p *closingPrompter) Close() error {
	_ = p.Prompter.Close()
	return p.c.Close()
}
