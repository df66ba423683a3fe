package core

import "errors"

// Sentinel errors returned by lookups and parsing. Callers match them with errors.Is.
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidDate     = errors.New("invalid date")
)
