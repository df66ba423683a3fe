package core

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// =============================================================================
// Status
// =============================================================================

// Status is the free-text state of a task. Input is normalized to lower case
// but otherwise accepted verbatim; only the canonical values carry meaning.
type Status string

// Canonical status values.
const (
	StatusIncomplete Status = "incomplete"
	StatusComplete   Status = "complete"
)

// NormalizeStatus lowercases s. Any text is accepted.
func NormalizeStatus(s string) Status {
	// Casers hold state and are not shared.
	return Status(cases.Lower(language.Und).String(s))
}

// IsIncomplete reports whether s equals "incomplete", ignoring case.
// Only incomplete tasks take part in deadline alerting.
func (s Status) IsIncomplete() bool {
	fold := cases.Fold()
	return fold.String(string(s)) == fold.String(string(StatusIncomplete))
}

// String returns the status text.
func (s Status) String() string {
	return string(s)
}

// =============================================================================
// Task
// =============================================================================

// Task is a unit of work with a name, a deadline and a status.
// Name is the lookup key within its project and is not required to be unique.
type Task struct {
	Name     string `json:"name" yaml:"name"`
	Status   Status `json:"status" yaml:"status"`
	Deadline Date   `json:"deadline" yaml:"deadline"`
}

// NewTask returns an incomplete task.
func NewTask(name string, deadline Date) Task {
	return Task{
		Name:     name,
		Status:   StatusIncomplete,
		Deadline: deadline,
	}
}
