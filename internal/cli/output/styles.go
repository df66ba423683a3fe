package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the renderer.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Box     lipgloss.Style
	Prompt  lipgloss.Style
}

// NewStyles builds styles bound to a lipgloss renderer, so the color
// profile follows the renderer's writer.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Title:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Box: lr.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1),
		Prompt: lr.NewStyle().Bold(true),
	}
}
