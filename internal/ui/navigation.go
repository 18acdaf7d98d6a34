package ui

import (
	"github.com/atomicstack/tmenu/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.quitting {
		return nil
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return m.quit()
	}
	switch m.mode {
	case ModeEditing:
		return m.handleEditingKey(keyMsg)
	default:
		return m.handleBrowsingKey(keyMsg)
	}
}

func (m *Model) handleBrowsingKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.keys.Browse
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.Select):
		return m.handleSelect()
	case key.Matches(msg, keys.Search):
		m.beginEditing()
	case key.Matches(msg, keys.Up):
		m.moveCursorUp()
	case key.Matches(msg, keys.Down):
		m.moveCursorDown()
	case key.Matches(msg, keys.PageUp):
		m.moveCursorPageUp()
	case key.Matches(msg, keys.PageDown):
		m.moveCursorPageDown()
	case key.Matches(msg, keys.Home):
		m.moveCursorHome()
	case key.Matches(msg, keys.End):
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.keys.Edit
	switch {
	case key.Matches(msg, keys.Cancel):
		m.cancelEditing()
	case key.Matches(msg, keys.Confirm):
		m.confirmEditing()
	case key.Matches(msg, keys.Up):
		m.moveCursorUp()
	case key.Matches(msg, keys.Down):
		m.moveCursorDown()
	case key.Matches(msg, keys.PageUp):
		m.moveCursorPageUp()
	case key.Matches(msg, keys.PageDown):
		m.moveCursorPageDown()
	default:
		m.handleTextInput(msg)
	}
	return nil
}

// beginEditing remembers the query in force so cancel can put it back.
func (m *Model) beginEditing() {
	m.committed = m.list.Filter
	m.setMode(ModeEditing)
}

// cancelEditing drops everything typed since editing began.
func (m *Model) cancelEditing() {
	if m.list.Filter != m.committed {
		events.Filter.Reverted(m.list.Filter, m.committed)
		m.list.SetFilter(m.committed)
	}
	m.setMode(ModeBrowsing)
}

// confirmEditing keeps the typed query and hands the keyboard back to the list.
func (m *Model) confirmEditing() {
	m.committed = m.list.Filter
	events.Filter.Committed(m.committed)
	m.setMode(ModeBrowsing)
}

func (m *Model) handleSelect() tea.Cmd {
	entry, ok := m.list.Current()
	if !ok {
		return nil
	}
	events.UI.Select(entry.Name, m.list.Filter)
	m.selected = &entry
	m.quitting = true
	return tea.Quit
}

func (m *Model) quit() tea.Cmd {
	events.UI.Quit(m.mode.String())
	m.quitting = true
	return tea.Quit
}

func (m *Model) moveCursorUp() {
	if m.list.Previous() {
		m.noteCursor()
	}
}

func (m *Model) moveCursorDown() {
	if m.list.Next() {
		m.noteCursor()
	}
}

func (m *Model) moveCursorPageUp() {
	if m.list.MoveCursorPageUp(m.maxVisibleItems()) {
		m.noteCursor()
	}
}

func (m *Model) moveCursorPageDown() {
	if m.list.MoveCursorPageDown(m.maxVisibleItems()) {
		m.noteCursor()
	}
}

func (m *Model) moveCursorHome() {
	if m.list.MoveCursorHome() {
		m.noteCursor()
	}
}

func (m *Model) moveCursorEnd() {
	if m.list.MoveCursorEnd() {
		m.noteCursor()
	}
}

func (m *Model) noteCursor() {
	m.syncViewport()
	events.UI.Cursor(m.list.Cursor, len(m.list.Items))
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}
