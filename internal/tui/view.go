package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ElijahMwambazi/clipb/internal/history"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))
	flashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// View renders the list with the current selection highlighted, plus a
// status line.
func (m *Model) View() string {
	rows := m.Visible()

	var content strings.Builder
	content.WriteString(titleStyle.Render(m.title()) + "\n\n")

	listHeight := m.listHeight()
	start := 0
	if m.Selected >= listHeight {
		start = m.Selected - listHeight + 1
	}

	end := start + listHeight
	if end > len(rows) {
		end = len(rows)
	}

	lineWidth := m.Width - 4
	for i := start; i < end; i++ {
		line := truncate(entryLine(rows[i]), lineWidth)
		if i == m.Selected {
			line = selectedStyle.Width(lineWidth).Render(line)
		}
		content.WriteString(line + "\n")
	}

	if len(rows) == 0 {
		content.WriteString(helpStyle.Render("(history is empty)") + "\n")
	}

	list := borderStyle.Width(m.Width - 2).Height(m.Height - 3).Render(content.String())

	return list + "\n" + m.statusLine()
}

// title reflects the item count in normal mode and the live query while
// searching.
func (m *Model) title() string {
	if m.Mode == ModeSearching {
		return fmt.Sprintf("Search: %s", m.Query)
	}
	return fmt.Sprintf("Clipboard History (%d items)", len(m.Entries))
}

// statusLine shows an active flash message or mode-specific key help.
func (m *Model) statusLine() string {
	if m.FlashText != "" {
		return flashStyle.Width(m.Width).Render(m.FlashText)
	}

	var help string
	switch m.Mode {
	case ModeSearching:
		help = fmt.Sprintf("/%s (Enter or Esc to stop filtering)", m.Query)
	default:
		help = "↑/↓ move · Enter restore · / search · q quit"
	}
	return helpStyle.Width(m.Width).Render(help)
}

// listHeight is the number of rows that fit between the title block and the
// status line.
func (m *Model) listHeight() int {
	h := m.Height - 7
	if h < 1 {
		h = 1
	}
	return h
}

// entryLine formats one display row. Whitespace-only captures would render
// as an empty-looking row, so they are shown quoted instead.
func entryLine(e history.Entry) string {
	display := e.Content
	if strings.TrimSpace(display) == "" {
		display = fmt.Sprintf("(whitespace: %q)", e.Content)
	}
	display = strings.ReplaceAll(display, "\n", " ")
	display = strings.ReplaceAll(display, "\r", " ")

	return fmt.Sprintf("[%s] %s", e.Timestamp, display)
}

// truncate cuts line to at most width runes, marking the cut with an
// ellipsis.
func truncate(line string, width int) string {
	if width <= 3 {
		width = 3
	}
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-3]) + "..."
}
