package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/linechart/pkg/theme"
)

// Styles holds the lipgloss styles of the chart browser.
type Styles struct {
	Title       lipgloss.Style
	Placeholder lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
}

// StylesFromTheme derives the browser styles from th.
func StylesFromTheme(th theme.Theme) Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Hex(th.Title))),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(theme.Hex(th.Placeholder))),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Hex(th.Axis))),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75")),
	}
}
