package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(keys, desc string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-12s", keys)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("pokebrowse Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Table"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, j/k", "Move between rows"))
	help.WriteString(line("Enter", "Show details of the selected row"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Pages"))
	help.WriteString("\n")
	help.WriteString(line("←/→, h/l", "Previous/next page"))
	help.WriteString(line("g/G", "First/last page"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search & Filters"))
	help.WriteString("\n")
	help.WriteString(line("/", "Edit the name search, results follow as you type"))
	help.WriteString(line("f", "Edit min/max ranges (Tab/Shift+Tab to move)"))
	help.WriteString(line("Esc", "Leave the editor (search: revert)"))
	help.WriteString("\n")

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Changing filters keeps the current page number."))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Sorting"))
	help.WriteString("\n")
	help.WriteString(line("s", "Choose the sort column"))
	help.WriteString(line("o", "Toggle ascending/descending"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("r, Ctrl+R", "Reload the current page"))
	help.WriteString(line("?", "Show this help"))
	help.WriteString(strings.TrimSuffix(line("q", "Quit"), "\n"))

	return help.String()
}

// PagerOps shows content in the ov pager on top of the running program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages content using ov
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
