package core

import "fmt"

// DefaultDueSoonDays is the width of the "due soon" window.
const DefaultDueSoonDays = 3

// AlertKind classifies a deadline alert.
type AlertKind string

// Alert kinds.
const (
	AlertOverdue AlertKind = "overdue"
	AlertDueSoon AlertKind = "due_soon"
)

// String returns the human-readable phrase for the kind.
func (k AlertKind) String() string {
	switch k {
	case AlertOverdue:
		return "overdue"
	case AlertDueSoon:
		return "due soon"
	default:
		return string(k)
	}
}

// Alert reports an incomplete task that is overdue or due soon.
type Alert struct {
	Project  string    `json:"project" yaml:"project"`
	Task     string    `json:"task" yaml:"task"`
	Deadline Date      `json:"deadline" yaml:"deadline"`
	Kind     AlertKind `json:"kind" yaml:"kind"`
}

// Message returns the alert line shown to the user.
func (a Alert) Message() string {
	return fmt.Sprintf("Alert: Task '%s' in project '%s' is %s!", a.Task, a.Project, a.Kind)
}

// ClassifyDeadline decides whether a deadline warrants an alert on today.
// A deadline strictly before today is overdue. Otherwise a deadline strictly
// before today+window is due soon, so today itself is due soon and
// today+window is not. ok is false when no alert applies.
func ClassifyDeadline(deadline, today Date, window int) (kind AlertKind, ok bool) {
	switch {
	case deadline.Before(today):
		return AlertOverdue, true
	case deadline.Before(today.AddDays(window)):
		return AlertDueSoon, true
	default:
		return "", false
	}
}
