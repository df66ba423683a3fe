package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/leapstack-labs/projtrack/internal/cli/output"
	"github.com/leapstack-labs/projtrack/internal/tracker"
	"github.com/leapstack-labs/projtrack/pkg/core"
)

// Menu choices.
const (
	choiceCreateProject = iota + 1
	choiceAddTask
	choiceUpdateTask
	choiceOverview
	choiceTaskList
	choiceCheckDeadlines
	choiceExit
)

// User-facing messages.
const (
	msgProjectNotFound = "Project not found."
	msgTaskNotFound    = "Task not found."
	msgInvalidDate     = "Invalid date format. Please use YYYY-MM-DD."
	msgInvalidChoice   = "Invalid choice."
	msgExiting         = "Exiting..."
	msgCanceled        = "Canceled."
)

// Prompt labels.
const (
	promptChoice   = "Enter your choice: "
	promptProject  = "Enter project name: "
	promptTask     = "Enter task name: "
	promptNewTask  = "Enter task name (or type 'done'): "
	promptDeadline = "Enter deadline (YYYY-MM-DD): "
	promptStatus   = "Enter new status (Complete/Incomplete): "
)

// SessionOptions configures a Session.
type SessionOptions struct {
	Tracker  *tracker.Tracker
	Prompter Prompter
	Renderer *output.Renderer
	Logger   *slog.Logger

	// Today returns the reference date for deadline checks. Defaults to core.Today.
	Today func() core.Date

	// RetryInvalidDates re-prompts on a malformed deadline instead of
	// abandoning the task.
	RetryInvalidDates bool
}

// Session is the interactive menu loop over a Tracker.
type Session struct {
	tracker    *tracker.Tracker
	prompter   Prompter
	r          *output.Renderer
	logger     *slog.Logger
	today      func() core.Date
	retryDates bool
}

// NewSession creates a Session from opts.
func NewSession(opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	today := opts.Today
	if today == nil {
		today = core.Today
	}
	return &Session{
		tracker:    opts.Tracker,
		prompter:   opts.Prompter,
		r:          opts.Renderer,
		logger:     logger,
		today:      today,
		retryDates: opts.RetryInvalidDates,
	}
}

// Run shows the menu and dispatches choices until the user exits or input
// ends. End of input is a clean exit.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.showMenu()

		line, err := s.prompter.Prompt(promptChoice)
		switch {
		case errors.Is(err, io.EOF):
			s.r.Println(msgExiting)
			return nil
		case errors.Is(err, errCanceled):
			continue
		case err != nil:
			return err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.logger.Debug("non-numeric menu choice", "input", line)
			s.r.Warning(msgInvalidChoice)
			continue
		}

		exit, err := s.dispatch(choice)
		switch {
		case errors.Is(err, io.EOF):
			s.r.Println(msgExiting)
			return nil
		case errors.Is(err, errCanceled):
			s.r.Muted(msgCanceled)
		case err != nil:
			return err
		}
		if exit {
			return nil
		}
	}
}

func (s *Session) dispatch(choice int) (exit bool, err error) {
	s.logger.Debug("menu choice", "choice", choice)

	switch choice {
	case choiceCreateProject:
		return false, s.createProject()
	case choiceAddTask:
		return false, s.addTask()
	case choiceUpdateTask:
		return false, s.updateTask()
	case choiceOverview:
		return false, s.showOverview()
	case choiceTaskList:
		return false, s.showTaskList()
	case choiceCheckDeadlines:
		return false, s.checkDeadlines()
	case choiceExit:
		s.r.Println(msgExiting)
		return true, nil
	default:
		s.r.Warning(msgInvalidChoice)
		return false, nil
	}
}

// createProject registers the project first, then collects tasks until
// "done". A task with a malformed deadline is skipped.
func (s *Session) createProject() error {
	name, err := s.prompter.Prompt(promptProject)
	if err != nil {
		return err
	}
	project := s.tracker.CreateProject(name)

	for {
		taskName, err := s.prompter.Prompt(promptNewTask)
		if err != nil {
			return err
		}
		if strings.EqualFold(taskName, "done") {
			break
		}

		deadline, ok, err := s.readDeadline()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		// Add to this project directly: by-name lookup would resolve to an
		// older project sharing the name.
		project.AddTask(taskName, deadline)
		s.r.Success(fmt.Sprintf("Task '%s' added to '%s'.", taskName, project.Name))
	}

	s.r.Success(fmt.Sprintf("Project '%s' created.", name))
	return nil
}

func (s *Session) addTask() error {
	project, ok, err := s.readProject()
	if err != nil || !ok {
		return err
	}

	taskName, err := s.prompter.Prompt(promptTask)
	if err != nil {
		return err
	}
	deadline, ok, err := s.readDeadline()
	if err != nil || !ok {
		return err
	}

	if _, err := s.tracker.AddTaskToProject(project.Name, taskName, deadline); err != nil {
		return s.reportLookup(err)
	}
	s.r.Success(fmt.Sprintf("Task '%s' added to '%s'.", taskName, project.Name))
	return nil
}

func (s *Session) updateTask() error {
	project, ok, err := s.readProject()
	if err != nil || !ok {
		return err
	}

	taskName, err := s.prompter.Prompt(promptTask)
	if err != nil {
		return err
	}
	status, err := s.prompter.Prompt(promptStatus)
	if err != nil {
		return err
	}

	if _, err := s.tracker.UpdateTask(project.Name, taskName, status); err != nil {
		return s.reportLookup(err)
	}
	s.r.Success(fmt.Sprintf("Task '%s' updated.", taskName))
	return nil
}

// readProject prompts for a project name and resolves it.
// ok is false (with a nil error) when the project does not exist.
func (s *Session) readProject() (project *core.Project, ok bool, err error) {
	name, err := s.prompter.Prompt(promptProject)
	if err != nil {
		return nil, false, err
	}
	project, err = s.tracker.FindProject(name)
	if err != nil {
		return nil, false, s.reportLookup(err)
	}
	return project, true, nil
}

// readDeadline prompts for a deadline. ok is false when the input was
// malformed and retries are disabled.
func (s *Session) readDeadline() (deadline core.Date, ok bool, err error) {
	for {
		text, err := s.prompter.Prompt(promptDeadline)
		if err != nil {
			return core.Date{}, false, err
		}
		deadline, err := s.tracker.ParseDeadline(text)
		if err == nil {
			return deadline, true, nil
		}
		s.r.Warning(msgInvalidDate)
		if !s.retryDates {
			return core.Date{}, false, nil
		}
	}
}

// reportLookup prints the not-found message for err and swallows it.
// Any other error is returned.
func (s *Session) reportLookup(err error) error {
	switch {
	case errors.Is(err, core.ErrProjectNotFound):
		s.r.Warning(msgProjectNotFound)
	case errors.Is(err, core.ErrTaskNotFound):
		s.r.Warning(msgTaskNotFound)
	default:
		return err
	}
	return nil
}
