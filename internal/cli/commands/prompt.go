package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// errCanceled is returned by a Prompter when the user interrupts the
// current prompt (Ctrl-C). The session abandons the action in progress.
var errCanceled = errors.New("input canceled")

// Prompter reads one line of user input per call.
// Prompt returns io.EOF when input is exhausted and errCanceled on interrupt.
type Prompter interface {
	Prompt(label string) (string, error)
	Close() error
}

// linePrompter reads newline-terminated input from any reader.
// Used for scripted input (--input, pipes) where there is no terminal.
// Lines of any length are accepted; a final line without a newline still counts.
type linePrompter struct {
	br  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a Prompter over in, writing labels to out.
func NewLinePrompter(in io.Reader, out io.Writer) Prompter {
	return &linePrompter{br: bufio.NewReader(in), out: out}
}

func (p *linePrompter) Prompt(label string) (string, error) {
	_, _ = fmt.Fprint(p.out, label)
	line, err := p.br.ReadString('\n')
	// Input is not echoed without a terminal, so end the prompt line here.
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *linePrompter) Close() error {
	return nil
}

// readlinePrompter is the interactive Prompter with history and completion.
type readlinePrompter struct {
	rl    *readline.Instance
	style func(...string) string
}

// newReadlinePrompter configures readline for the menu session.
// names supplies the current project names for tab completion; style
// renders prompt labels.
func newReadlinePrompter(historyFile string, out io.Writer, names func() []string, style func(...string) string) (*readlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		AutoComplete:    newSessionCompleter(names),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt: %w", err)
	}
	return &readlinePrompter{rl: rl, style: style}, nil
}

func (p *readlinePrompter) Prompt(label string) (string, error) {
	p.rl.SetPrompt(p.style(label))
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", errCanceled
	}
	if errors.Is(err, io.EOF) {
		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

func (p *readlinePrompter) Close() error {
	return p.rl.Close()
}

// newSessionCompleter completes project names, status values and the
// "done" sentinel.
func newSessionCompleter(names func() []string) *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItemDynamic(func(string) []string {
			return names()
		}),
		readline.PcItem("done"),
		readline.PcItem("complete"),
		readline.PcItem("incomplete"),
	)
}
