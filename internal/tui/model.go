// Package tui implements the interactive sequence browser launched by the
// -tui flag. The browser is a read-only view over terms computed before
// the program starts; no calculation happens inside the event loop.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/fibseq/internal/fib"
)

// Model is the bubbletea model for the sequence browser.
type Model struct {
	terms  []fib.Term
	policy fib.Policy

	cursor int
	offset int // index of the first visible row
	width  int
	height int

	keymap KeyMap
	help   help.Model
}

// NewModel creates a browser over the given precomputed terms.
func NewModel(terms []fib.Term, policy fib.Policy) Model {
	return Model{
		terms:  terms,
		policy: policy,
		keymap: DefaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

// Run starts the browser in the alternate screen and blocks until quit.
func Run(terms []fib.Term, policy fib.Policy) error {
	initTUIStyles()
	p := tea.NewProgram(NewModel(terms, policy), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model. The browser is static; no initial command.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampView()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes a key press against the key map.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keymap.Up):
		m.cursor--
	case key.Matches(msg, m.keymap.Down):
		m.cursor++
	case key.Matches(msg, m.keymap.PageUp):
		m.cursor -= m.pageSize()
	case key.Matches(msg, m.keymap.PageDown):
		m.cursor += m.pageSize()
	case key.Matches(msg, m.keymap.Home):
		m.cursor = 0
	case key.Matches(msg, m.keymap.End):
		m.cursor = len(m.terms) - 1
	}
	m.clampView()
	return m, nil
}

// pageSize is the number of term rows visible at the current height.
func (m Model) pageSize() int {
	// title + border (2) + footer
	rows := m.height - 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clampView keeps the cursor in range and the viewport around it.
func (m *Model) clampView() {
	if len(m.terms) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.terms) {
		m.cursor = len(m.terms) - 1
	}

	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	title := fmt.Sprintf("fibseq: %d terms (policy: %s)", len(m.terms), m.policy)
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")

	sb.WriteString(borderStyle.Render(m.renderRows()))
	sb.WriteString("\n")

	sb.WriteString(footerStyle.Render(m.help.View(m.keymap)))
	return sb.String()
}

// renderRows renders the visible window of term rows.
func (m Model) renderRows() string {
	if len(m.terms) == 0 {
		return dimStyle.Render("no terms")
	}

	page := m.pageSize()
	end := m.offset + page
	if end > len(m.terms) {
		end = len(m.terms)
	}

	var rows []string
	for i := m.offset; i < end; i++ {
		term := m.terms[i]
		line := indexStyle.Render(fmt.Sprintf("F(%d)", term.Index)) +
			valueStyle.Render(fmt.Sprintf("%d", term.Value))
		if i == m.cursor {
			line = cursorRowStyle.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}
