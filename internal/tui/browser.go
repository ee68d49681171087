// Package tui implements the interactive history browser: a full-screen
// bubbletea list over the shared history store. Each frame renders from a
// consistent snapshot copied out under the store lock; a periodic refresh
// tick keeps the view converging on the sampler's background writes without
// any push notification.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ElijahMwambazi/clipb/internal/clipboard"
	"github.com/ElijahMwambazi/clipb/internal/history"
)

// refreshInterval bounds how stale the view can be relative to the store.
const refreshInterval = 200 * time.Millisecond

const flashDuration = 2 * time.Second

// Mode is the browser input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearching
)

// refreshMsg triggers a new store snapshot for the next frame.
type refreshMsg time.Time

// FlashMsg displays a transient status-line notification. The sampler's
// diagnostics arrive as FlashMsg via Program.Send.
type FlashMsg struct {
	Text string
}

type flashExpiredMsg struct{}

// Model is the browser state. Mode, query, and selection are local to the
// browser and never shared; Entries is the per-frame snapshot of history,
// oldest first.
type Model struct {
	store *history.Store
	clip  clipboard.Clipboard

	Mode     Mode
	Query    string
	Selected int

	Entries []history.Entry
	Width   int
	Height  int

	FlashText   string
	FlashExpiry time.Time
}

// NewModel creates a browser over the given store and clipboard.
func NewModel(store *history.Store, clip clipboard.Clipboard) *Model {
	return &Model{
		store:   store,
		clip:    clip,
		Entries: store.Snapshot(),
		Width:   80,
		Height:  24,
	}
}

// NewProgram creates the browser program on the alternate screen. The
// caller runs it and may Send FlashMsg values from other goroutines.
func NewProgram(store *history.Store, clip clipboard.Clipboard) *tea.Program {
	return tea.NewProgram(NewModel(store, clip), tea.WithAltScreen())
}

// Init schedules the first refresh tick.
func (m *Model) Init() tea.Cmd {
	return refreshTick()
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// Update handles browser messages, mode-first for key input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	case refreshMsg:
		m.Entries = m.store.Snapshot()
		m.clampSelection()
		return m, refreshTick()
	case FlashMsg:
		return m, m.setFlash(msg.Text)
	case flashExpiredMsg:
		if !time.Now().Before(m.FlashExpiry) {
			m.FlashText = ""
		}
		return m, nil
	case tea.KeyMsg:
		switch m.Mode {
		case ModeSearching:
			return m.handleSearchingKeys(msg)
		default:
			return m.handleNormalKeys(msg)
		}
	}

	return m, nil
}

// handleNormalKeys processes keys in normal browsing mode.
func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		m.Selected++
		m.clampSelection()
		return m, nil
	case "up", "k":
		m.Selected--
		m.clampSelection()
		return m, nil
	case "enter":
		return m, m.restoreSelected()
	case "/":
		m.Mode = ModeSearching
		m.Query = ""
		m.clampSelection()
		return m, nil
	}

	return m, nil
}

// handleSearchingKeys processes keys while the filter query is being edited.
func (m *Model) handleSearchingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter, tea.KeyEsc:
		m.Mode = ModeNormal
		m.Query = ""
		m.clampSelection()
		return m, nil
	case tea.KeyBackspace:
		if runes := []rune(m.Query); len(runes) > 0 {
			m.Query = string(runes[:len(runes)-1])
		}
		m.clampSelection()
		return m, nil
	case tea.KeySpace:
		m.Query += " "
		m.clampSelection()
		return m, nil
	case tea.KeyRunes:
		m.Query += string(msg.Runes)
		m.clampSelection()
		return m, nil
	}

	return m, nil
}

// Visible computes the display list for the current frame: all entries
// most-recent-first, narrowed in search mode to those whose content contains
// the query as a case-sensitive substring.
func (m *Model) Visible() []history.Entry {
	out := make([]history.Entry, 0, len(m.Entries))
	for i := len(m.Entries) - 1; i >= 0; i-- {
		e := m.Entries[i]
		if m.Mode == ModeSearching && !strings.Contains(e.Content, m.Query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// clampSelection bounds the selection against the visible list, not the full
// history, so the cursor can never rest on a filtered-out row.
func (m *Model) clampSelection() {
	if n := len(m.Visible()); m.Selected >= n {
		m.Selected = n - 1
	}
	if m.Selected < 0 {
		m.Selected = 0
	}
}

// restoreSelected writes the selected entry's content back to the clipboard.
// Failures surface as a flash message; the session stays alive either way.
func (m *Model) restoreSelected() tea.Cmd {
	rows := m.Visible()
	if m.Selected >= len(rows) {
		return m.setFlash("Nothing to restore")
	}

	entry := rows[m.Selected]
	if err := m.clip.WriteText(entry.Content); err != nil {
		return m.setFlash(fmt.Sprintf("Restore failed: %v", err))
	}

	return m.setFlash(fmt.Sprintf("Restored %d bytes to clipboard", len(entry.Content)))
}

// setFlash shows a transient status-line message.
func (m *Model) setFlash(text string) tea.Cmd {
	m.FlashText = text
	m.FlashExpiry = time.Now().Add(flashDuration)
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{}
	})
}
