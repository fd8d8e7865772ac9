// Package tui is the terminal client: a login screen and the clinic
// dashboard, both driven by the same controllers as the web pages.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.Color("#1E6FB8")
	Accent      = lipgloss.Color("#2E9E6A")
	Muted       = lipgloss.Color("#8A94A6")
	Destructive = lipgloss.Color("#D64545")
	Warning     = lipgloss.Color("#E0A526")
)

// Styles groups every lipgloss style the screens use.
type Styles struct {
	App       lipgloss.Style
	Title     lipgloss.Style
	Header    lipgloss.Style
	Subtle    lipgloss.Style
	Label     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Button    lipgloss.Style
	Disabled  lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	StatValue lipgloss.Style
	StatLabel lipgloss.Style
	Card      lipgloss.Style
	Prompt    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		App:       lipgloss.NewStyle().Padding(1, 2),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1),
		Subtle:    lipgloss.NewStyle().Foreground(Muted),
		Label:     lipgloss.NewStyle().Bold(true),
		Error:     lipgloss.NewStyle().Foreground(Destructive),
		Success:   lipgloss.NewStyle().Foreground(Accent).Bold(true),
		Button:    lipgloss.NewStyle().Padding(0, 2).Background(Primary).Foreground(lipgloss.Color("#FFFFFF")),
		Disabled:  lipgloss.NewStyle().Padding(0, 2).Background(Muted).Foreground(lipgloss.Color("#FFFFFF")),
		NavItem:   lipgloss.NewStyle().Padding(0, 1).Foreground(Muted),
		NavActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(Primary),
		StatValue: lipgloss.NewStyle().Bold(true).Foreground(Primary),
		StatLabel: lipgloss.NewStyle().Foreground(Muted),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Muted).Padding(0, 1).MarginRight(1),
		Prompt:    lipgloss.NewStyle().Foreground(Warning).Bold(true),
	}
}
