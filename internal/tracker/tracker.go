// Package tracker provides the in-memory project tracker.
// It owns every project of a session and implements each menu operation
// on top of the core data model.
package tracker

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/projtrack/pkg/core"
)

// Tracker holds all projects of one session in insertion order.
// It is not safe for concurrent use.
type Tracker struct {
	projects    []*core.Project
	dueSoonDays int
	logger      *slog.Logger
}

// Config holds tracker configuration.
type Config struct {
	// DueSoonDays is the width of the "due soon" window in days.
	// Zero or negative means core.DefaultDueSoonDays.
	DueSoonDays int
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an empty tracker.
func New(cfg Config) *Tracker {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	window := cfg.DueSoonDays
	if window <= 0 {
		window = core.DefaultDueSoonDays
	}

	logger.Debug("initializing tracker", "due_soon_days", window)

	return &Tracker{
		dueSoonDays: window,
		logger:      logger,
	}
}

// DueSoonDays returns the effective "due soon" window.
func (t *Tracker) DueSoonDays() int {
	return t.dueSoonDays
}

// CreateProject appends a new empty project. Names are not checked for
// collisions; lookups always resolve to the first project with a name.
func (t *Tracker) CreateProject(name string) *core.Project {
	p := core.NewProject(name)
	t.projects = append(t.projects, p)
	t.logger.Debug("project created", "project", name, "projects", len(t.projects))
	return p
}

// FindProject returns the first project whose name matches exactly.
func (t *Tracker) FindProject(name string) (*core.Project, error) {
	for _, p := range t.projects {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", core.ErrProjectNotFound, name)
}

// AddTaskToProject adds a task to an existing project.
// Nothing is mutated when the project does not exist.
func (t *Tracker) AddTaskToProject(projectName, taskName string, deadline core.Date) (core.Task, error) {
	p, err := t.FindProject(projectName)
	if err != nil {
		t.logger.Debug("add task rejected", "project", projectName, "task", taskName, "error", err)
		return core.Task{}, err
	}
	task := p.AddTask(taskName, deadline)
	t.logger.Debug("task added", "project", projectName, "task", taskName, "deadline", deadline.String())
	return task, nil
}

// UpdateTask sets the status of the first matching task in the first matching project.
func (t *Tracker) UpdateTask(projectName, taskName, status string) (core.Task, error) {
	p, err := t.FindProject(projectName)
	if err != nil {
		t.logger.Debug("update task rejected", "project", projectName, "task", taskName, "error", err)
		return core.Task{}, err
	}
	task, err := p.UpdateTask(taskName, status)
	if err != nil {
		t.logger.Debug("update task rejected", "project", projectName, "task", taskName, "error", err)
		return core.Task{}, err
	}
	t.logger.Debug("task updated", "project", projectName, "task", taskName, "status", task.Status.String())
	return task, nil
}

// Overview returns one summary row per project in insertion order.
func (t *Tracker) Overview() []core.ProjectSummary {
	rows := make([]core.ProjectSummary, 0, len(t.projects))
	for _, p := range t.projects {
		rows = append(rows, p.Summary())
	}
	return rows
}

// TaskList returns the tasks of the named project in insertion order.
func (t *Tracker) TaskList(projectName string) ([]core.Task, error) {
	p, err := t.FindProject(projectName)
	if err != nil {
		return nil, err
	}
	return p.Tasks(), nil
}

// CheckDeadlines returns an alert for every incomplete task that is overdue
// or due soon relative to today, in project then task order.
func (t *Tracker) CheckDeadlines(today core.Date) []core.Alert {
	var alerts []core.Alert
	for _, p := range t.projects {
		for _, task := range p.Tasks() {
			if !task.Status.IsIncomplete() {
				continue
			}
			kind, ok := core.ClassifyDeadline(task.Deadline, today, t.dueSoonDays)
			if !ok {
				continue
			}
			alerts = append(alerts, core.Alert{
				Project:  p.Name,
				Task:     task.Name,
				Deadline: task.Deadline,
				Kind:     kind,
			})
		}
	}
	t.logger.Debug("deadlines checked", "today", today.String(), "alerts", len(alerts))
	return alerts
}

// ParseDeadline parses user-supplied deadline text.
// On malformed input it returns the zero Date and an error wrapping
// core.ErrInvalidDate; callers abort the operation in progress.
func (t *Tracker) ParseDeadline(text string) (core.Date, error) {
	d, err := core.ParseDate(text)
	if err != nil {
		t.logger.Debug("deadline rejected", "input", text)
		return core.Date{}, err
	}
	return d, nil
}

// Projects returns the projects in insertion order.
func (t *Tracker) Projects() []*core.Project {
	out := make([]*core.Project, len(t.projects))
	copy(out, t.projects)
	return out
}

// ProjectNames returns the distinct project names in first-seen order.
func (t *Tracker) ProjectNames() []string {
	seen := make(map[string]struct{}, len(t.projects))
	names := make([]string, 0, len(t.projects))
	for _, p := range t.projects {
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}
	return names
}
