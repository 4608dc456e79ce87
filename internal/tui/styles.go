package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibseq/internal/ui"
)

// Style variables for the sequence browser.
// Initialized from the ui theme system via initTUIStyles().
var (
	titleStyle     lipgloss.Style
	borderStyle    lipgloss.Style
	indexStyle     lipgloss.Style
	valueStyle     lipgloss.Style
	cursorRowStyle lipgloss.Style
	dimStyle       lipgloss.Style
	footerStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has run.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	indexStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Width(10)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	cursorRowStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Cursor)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	footerStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Padding(0, 1)
}
