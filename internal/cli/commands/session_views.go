package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/projtrack/internal/cli/output"
	"github.com/leapstack-labs/projtrack/pkg/core"
)

const (
	menuTitle  = "Project Management Tool"
	notApplied = "N/A"
)

var menuItems = []string{
	"Create project",
	"Add task to existing project",
	"Update task",
	"View projects overview",
	"View task list",
	"Check deadlines",
	"Exit",
}

// TaskListView is the structured form of a project's task list.
type TaskListView struct {
	Project string      `json:"project" yaml:"project"`
	Tasks   []core.Task `json:"tasks" yaml:"tasks"`
}

// DeadlineReport is the structured form of a deadline check.
type DeadlineReport struct {
	Today  core.Date    `json:"today" yaml:"today"`
	Alerts []core.Alert `json:"alerts" yaml:"alerts"`
}

func (s *Session) showMenu() {
	lines := make([]string, 0, len(menuItems)+1)
	lines = append(lines, "Menu:")
	for i, item := range menuItems {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, item))
	}

	if s.r.EffectiveMode() == output.ModeText {
		st := s.r.Styles()
		body := st.Title.Render(menuTitle) + "\n\n" + strings.Join(lines, "\n")
		s.r.Println(st.Box.Render(body))
		return
	}

	s.r.Println(menuTitle)
	for _, line := range lines {
		s.r.Println(line)
	}
}

func (s *Session) showOverview() error {
	summaries := s.tracker.Overview()
	if s.r.IsStructured() {
		return s.r.Encode(summaries)
	}

	rows := make([]table.Row, 0, len(summaries))
	for _, sum := range summaries {
		rows = append(rows, table.Row{sum.Name, sum.TaskCount, formatDeadline(sum.UpcomingDeadline)})
	}
	s.r.Header(2, "Projects")
	s.r.Table(table.Row{"Project", "Tasks", "Upcoming Deadline"}, rows, "No projects.")
	return nil
}

func (s *Session) showTaskList() error {
	name, err := s.prompter.Prompt(promptProject)
	if err != nil {
		return err
	}
	tasks, err := s.tracker.TaskList(name)
	if err != nil {
		return s.reportLookup(err)
	}

	if s.r.IsStructured() {
		if tasks == nil {
			tasks = []core.Task{}
		}
		return s.r.Encode(TaskListView{Project: name, Tasks: tasks})
	}

	rows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, table.Row{t.Name, t.Status.String(), formatDeadline(t.Deadline)})
	}
	s.r.Header(2, "Tasks in "+name)
	s.r.Table(table.Row{"Task", "Status", "Deadline"}, rows, "No tasks.")
	return nil
}

func (s *Session) checkDeadlines() error {
	today := s.today()
	alerts := s.tracker.CheckDeadlines(today)
	if s.r.IsStructured() {
		if alerts == nil {
			alerts = []core.Alert{}
		}
		return s.r.Encode(DeadlineReport{Today: today, Alerts: alerts})
	}

	if len(alerts) == 0 {
		s.r.Muted("No overdue or upcoming tasks.")
		return nil
	}
	for _, a := range alerts {
		if a.Kind == core.AlertOverdue {
			s.r.Error(a.Message())
			continue
		}
		s.r.Warning(a.Message())
	}
	return nil
}

func formatDeadline(d core.Date) string {
	if d.IsZero() {
		return notApplied
	}
	return d.String()
}
