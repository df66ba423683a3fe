package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/projtrack/internal/cli/config"
	clitestutil "github.com/leapstack-labs/projtrack/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRoot executes the root command in an empty working directory.
func runRoot(t *testing.T, input []string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	outBuf, errBuf := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetIn(clitestutil.ScriptInput(input...))
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootCmd_Metadata(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "projtrack", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, name := range []string{"config", "due-soon-days", "retry-invalid-dates", "today", "log-level", "verbose", "output", "history-file", "input"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %q should exist", name)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"session", "version", "completion"})
}

func TestRootCmd_DefaultRunsSession(t *testing.T) {
	out, _, err := runRoot(t,
		[]string{"1", "Alpha", "Build", "2024-01-05", "done", "6", "7"},
		"--today", "2024-01-06", "-o", "markdown",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Project 'Alpha' created.")
	assert.Contains(t, out, "Alert: Task 'Build' in project 'Alpha' is overdue!")
	assert.Contains(t, out, "Exiting...")
	clitestutil.AssertNoANSI(t, out)
}

func TestRootCmd_SessionAlias(t *testing.T) {
	out, _, err := runRoot(t, []string{"7"}, "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "Exiting...")
}

func TestRootCmd_DueSoonWindowFlag(t *testing.T) {
	script := []string{"1", "P", "T", "2024-01-06", "done", "6", "7"}

	out, _, err := runRoot(t, script, "--today", "2024-01-01")
	require.NoError(t, err)
	assert.NotContains(t, out, "Alert:")

	out, _, err = runRoot(t, script, "--today", "2024-01-01", "--due-soon-days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Alert: Task 'T' in project 'P' is due soon!")
}

func TestRootCmd_RetryInvalidDatesFlag(t *testing.T) {
	out, _, err := runRoot(t,
		[]string{"1", "P", "T", "nope", "2024-01-02", "done", "7"},
		"--retry-invalid-dates",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid date format. Please use YYYY-MM-DD.")
	assert.Contains(t, out, "Task 'T' added to 'P'.")
}

func TestRootCmd_InputFile(t *testing.T) {
	script := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(script, []byte("1\nFromFile\ndone\n7\n"), 0o600))

	out, _, err := runRoot(t, nil, "--input", script)
	require.NoError(t, err)
	assert.Contains(t, out, "Project 'FromFile' created.")
}

func TestRootCmd_JSONOutput(t *testing.T) {
	out, _, err := runRoot(t,
		[]string{"1", "P", "T", "2024-01-02", "done", "4", "7"},
		"-o", "json",
	)
	require.NoError(t, err)
	assert.Contains(t, out, `"task_count": 1`)
	assert.Contains(t, out, `"upcoming_deadline": "2024-01-02"`)
}

func TestRootCmd_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := runRoot(t, []string{"7"}, "-v")
	require.NoError(t, err)

	assert.Contains(t, errOut, "session_id=")
	assert.Contains(t, errOut, "session started")
	assert.NotContains(t, out, "session_id=")
}

func TestRootCmd_QuietByDefault(t *testing.T) {
	_, errOut, err := runRoot(t, []string{"7"})
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestRootCmd_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown output format",
			args:    []string{"-o", "html"},
			wantErr: "invalid configuration",
		},
		{
			name:    "window below one",
			args:    []string{"--due-soon-days", "0"},
			wantErr: "due_soon_days",
		},
		{
			name:    "malformed today",
			args:    []string{"--today", "06-01-2024"},
			wantErr: "unable to decode config",
		},
		{
			name:    "missing config file",
			args:    []string{"--config", "does-not-exist.yaml"},
			wantErr: "error reading config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runRoot(t, []string{"7"}, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRootCmd_Version(t *testing.T) {
	out, _, err := runRoot(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "projtrack v"+Version)
}

func TestCompletionCommand(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "bash completion"},
		{"zsh", "#compdef projtrack"},
		{"fish", "fish completion"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, _, err := runRoot(t, nil, "completion", tt.shell)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCompletionCommand_RejectsUnknownShell(t *testing.T) {
	_, _, err := runRoot(t, nil, "completion", "tcsh")
	assert.Error(t, err)
}
