package core

import (
	"fmt"
	"slices"
)

// Project is a named container of tasks.
// It exclusively owns its tasks; Tasks returns copies.
type Project struct {
	Name  string
	tasks []Task
}

// ProjectSummary is the overview row for one project.
// UpcomingDeadline is the zero Date when the project has no tasks.
type ProjectSummary struct {
	Name             string `json:"name" yaml:"name"`
	TaskCount        int    `json:"task_count" yaml:"task_count"`
	UpcomingDeadline Date   `json:"upcoming_deadline,omitzero" yaml:"upcoming_deadline,omitempty"`
}

// NewProject creates an empty project.
func NewProject(name string) *Project {
	return &Project{Name: name}
}

// AddTask appends a new incomplete task and returns it.
// Duplicate names are allowed; lookups resolve to the earliest one.
func (p *Project) AddTask(name string, deadline Date) Task {
	task := NewTask(name, deadline)
	p.tasks = append(p.tasks, task)
	return task
}

// UpdateTask sets the normalized status on the first task named name
// (exact, case-sensitive match) and returns the updated task.
// Later tasks with the same name are left alone.
func (p *Project) UpdateTask(name, status string) (Task, error) {
	for i := range p.tasks {
		if p.tasks[i].Name == name {
			p.tasks[i].Status = NormalizeStatus(status)
			return p.tasks[i], nil
		}
	}
	return Task{}, fmt.Errorf("%w: %q in project %q", ErrTaskNotFound, name, p.Name)
}

// UpcomingDeadline returns the earliest deadline over all tasks, whatever
// their status. ok is false when the project has no tasks.
func (p *Project) UpcomingDeadline() (deadline Date, ok bool) {
	for i, task := range p.tasks {
		if i == 0 || task.Deadline.Before(deadline) {
			deadline = task.Deadline
		}
	}
	return deadline, len(p.tasks) > 0
}

// Tasks returns a copy of the tasks in insertion order.
func (p *Project) Tasks() []Task {
	return slices.Clone(p.tasks)
}

// TaskCount returns the number of tasks.
func (p *Project) TaskCount() int {
	return len(p.tasks)
}

// Summary returns the overview row for the project.
func (p *Project) Summary() ProjectSummary {
	upcoming, _ := p.UpcomingDeadline()
	return ProjectSummary{
		Name:             p.Name,
		TaskCount:        len(p.tasks),
		UpcomingDeadline: upcoming,
	}
}
