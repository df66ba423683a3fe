package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/projtrack/internal/testutil"
	"github.com/leapstack-labs/projtrack/pkg/core"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	return New(Config{Logger: testutil.NewTestLogger(t)})
}

func TestNew_Defaults(t *testing.T) {
	tr := New(Config{})
	assert.Equal(t, core.DefaultDueSoonDays, tr.DueSoonDays())
	assert.Empty(t, tr.Projects())
	assert.Empty(t, tr.Overview())

	tr = New(Config{DueSoonDays: 7})
	assert.Equal(t, 7, tr.DueSoonDays())
}

func TestTracker_CreateAndFindProject(t *testing.T) {
	tr := newTestTracker(t)
	tr.CreateProject("Alpha")
	tr.CreateProject("Beta")

	p, err := tr.FindProject("Beta")
	require.NoError(t, err)
	assert.Equal(t, "Beta", p.Name)

	_, err = tr.FindProject("beta")
	assert.ErrorIs(t, err, core.ErrProjectNotFound, "lookup is case-sensitive")

	_, err = tr.FindProject("Gamma")
	assert.ErrorIs(t, err, core.ErrProjectNotFound)
}

func TestTracker_DuplicateProjectNamesResolveToFirst(t *testing.T) {
	tr := newTestTracker(t)
	first := tr.CreateProject("X")
	second := tr.CreateProject("X")
	require.NotSame(t, first, second)

	got, err := tr.FindProject("X")
	require.NoError(t, err)
	assert.Same(t, first, got)

	_, err = tr.AddTaskToProject("X", "Plan", core.MustParseDate("2024-01-10"))
	require.NoError(t, err)
	assert.Equal(t, 1, first.TaskCount())
	assert.Equal(t, 0, second.TaskCount())

	_, err = tr.UpdateTask("X", "Plan", "complete")
	require.NoError(t, err)
	assert.Equal(t, core.StatusComplete, first.Tasks()[0].Status)

	tasks, err := tr.TaskList("X")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	overview := tr.Overview()
	require.Len(t, overview, 2)
	assert.Equal(t, 1, overview[0].TaskCount)
	assert.Equal(t, 0, overview[1].TaskCount)

	assert.Equal(t, []string{"X"}, tr.ProjectNames())
}

func TestTracker_AddTaskToMissingProject(t *testing.T) {
	tr := newTestTracker(t)
	tr.CreateProject("Alpha")

	_, err := tr.AddTaskToProject("Nope", "Design", core.MustParseDate("2024-01-10"))
	require.ErrorIs(t, err, core.ErrProjectNotFound)

	p, err := tr.FindProject("Alpha")
	require.NoError(t, err)
	assert.Equal(t, 0, p.TaskCount())
}

func TestTracker_UpdateTaskErrors(t *testing.T) {
	tr := newTestTracker(t)
	tr.CreateProject("Alpha")
	_, err := tr.AddTaskToProject("Alpha", "Design", core.MustParseDate("2024-01-10"))
	require.NoError(t, err)

	_, err = tr.UpdateTask("Nope", "Design", "complete")
	assert.ErrorIs(t, err, core.ErrProjectNotFound)

	_, err = tr.UpdateTask("Alpha", "Nope", "complete")
	assert.ErrorIs(t, err, core.ErrTaskNotFound)

	tasks, err := tr.TaskList("Alpha")
	require.NoError(t, err)
	assert.Equal(t, core.StatusIncomplete, tasks[0].Status)
}

func TestTracker_TaskListMissingProject(t *testing.T) {
	tr := newTestTracker(t)
	tasks, err := tr.TaskList("Nope")
	assert.ErrorIs(t, err, core.ErrProjectNotFound)
	assert.Nil(t, tasks)
}

func TestTracker_OverviewWithEmptyProject(t *testing.T) {
	tr := newTestTracker(t)
	tr.CreateProject("Empty")

	overview := tr.Overview()
	require.Len(t, overview, 1)
	assert.Equal(t, "Empty", overview[0].Name)
	assert.Equal(t, 0, overview[0].TaskCount)
	assert.True(t, overview[0].UpcomingDeadline.IsZero())
}

func TestTracker_CheckDeadlines(t *testing.T) {
	today := core.MustParseDate("2024-03-10")

	tr := newTestTracker(t)
	tr.CreateProject("P")
	add := func(name string, offset int) {
		t.Helper()
		_, err := tr.AddTaskToProject("P", name, today.AddDays(offset))
		require.NoError(t, err)
	}
	add("yesterday", -1)
	add("today", 0)
	add("in-two", 2)
	add("in-three", 3)
	add("done-overdue", -5)
	add("odd-status", -2)

	_, err := tr.UpdateTask("P", "done-overdue", "Complete")
	require.NoError(t, err)
	_, err = tr.UpdateTask("P", "odd-status", "waiting")
	require.NoError(t, err)

	alerts := tr.CheckDeadlines(today)
	require.Len(t, alerts, 3)

	assert.Equal(t, core.Alert{Project: "P", Task: "yesterday", Deadline: today.AddDays(-1), Kind: core.AlertOverdue}, alerts[0])
	assert.Equal(t, "today", alerts[1].Task)
	assert.Equal(t, core.AlertDueSoon, alerts[1].Kind)
	assert.Equal(t, "in-two", alerts[2].Task)
	assert.Equal(t, core.AlertDueSoon, alerts[2].Kind)
}

func TestTracker_CheckDeadlinesCustomWindow(t *testing.T) {
	today := core.MustParseDate("2024-03-10")
	tr := New(Config{DueSoonDays: 7, Logger: testutil.NewTestLogger(t)})
	tr.CreateProject("P")
	_, err := tr.AddTaskToProject("P", "next-week", today.AddDays(6))
	require.NoError(t, err)
	_, err = tr.AddTaskToProject("P", "edge", today.AddDays(7))
	require.NoError(t, err)

	alerts := tr.CheckDeadlines(today)
	require.Len(t, alerts, 1)
	assert.Equal(t, "next-week", alerts[0].Task)
}

func TestTracker_ParseDeadline(t *testing.T) {
	tr := newTestTracker(t)

	d, err := tr.ParseDeadline("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", d.String())

	for _, bad := range []string{"15-03-2024", "2024-13-40"} {
		d, err := tr.ParseDeadline(bad)
		assert.ErrorIs(t, err, core.ErrInvalidDate, bad)
		assert.True(t, d.IsZero(), bad)
	}
}

// TestTracker_EndToEnd walks the reference scenario from project creation
// through a deadline check.
func TestTracker_EndToEnd(t *testing.T) {
	tr := newTestTracker(t)
	tr.CreateProject("Alpha")

	_, err := tr.AddTaskToProject("Alpha", "Design", core.MustParseDate("2024-01-10"))
	require.NoError(t, err)
	_, err = tr.AddTaskToProject("Alpha", "Build", core.MustParseDate("2024-01-05"))
	require.NoError(t, err)

	overview := tr.Overview()
	require.Len(t, overview, 1)
	assert.Equal(t, "Alpha", overview[0].Name)
	assert.Equal(t, 2, overview[0].TaskCount)
	assert.Equal(t, "2024-01-05", overview[0].UpcomingDeadline.String())

	updated, err := tr.UpdateTask("Alpha", "Design", "Complete")
	require.NoError(t, err)
	assert.Equal(t, core.StatusComplete, updated.Status)

	alerts := tr.CheckDeadlines(core.MustParseDate("2024-01-06"))
	require.Len(t, alerts, 1)
	assert.Equal(t, "Build", alerts[0].Task)
	assert.Equal(t, core.AlertOverdue, alerts[0].Kind)
	assert.Equal(t, "Alert: Task 'Build' in project 'Alpha' is overdue!", alerts[0].Message())
}

func TestTracker_ProjectsReturnsCopy(t *testing.T) {
	tr := newTestTracker(t)
	tr.CreateProject("Alpha")

	projects := tr.Projects()
	projects[0] = core.NewProject("Intruder")

	p, err := tr.FindProject("Alpha")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", p.Name)
}
