package views

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Placeholder   lipgloss.Style
	Focused       lipgloss.Style
	Filter        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	PageLink      lipgloss.Style
	CurrentPage   lipgloss.Style
	NoImage       lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	Table         table.Styles
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		BorderBottom(true).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:         lipgloss.NewStyle().Faint(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		PageLink:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		CurrentPage:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		NoImage:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Table:         tableStyles,
	}
}
