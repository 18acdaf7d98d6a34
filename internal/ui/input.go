package ui

import (
	"unicode"

	"github.com/atomicstack/tmenu/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const searchPlaceholder = "press / to search"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleTextInput applies an editing keystroke to the search text. Edits only
// ever touch the tail of the query.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if key.Matches(msg, m.keys.Edit.Clear) {
		if !m.list.ClearFilter() {
			return false
		}
		events.Filter.Cleared(len(m.list.Items))
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if !m.list.AppendFilter(text) {
		return false
	}
	events.Filter.Append(m.list.Filter, len(m.list.Items))
	return true
}

func (m *Model) removeFilterRune() bool {
	if !m.list.DeleteFilterRune() {
		return false
	}
	events.Filter.Backspace(m.list.Filter, len(m.list.Items))
	return true
}

// searchLine renders the content of the search band: the query followed by
// the caret while editing, the query alone while browsing, or a placeholder.
func (m *Model) searchLine() string {
	text := m.list.Filter
	if m.mode == ModeEditing {
		return render(styles.Filter, text) + m.filterCursor.View()
	}
	if text == "" {
		return render(styles.FilterPlaceholder, searchPlaceholder)
	}
	return render(styles.Filter, text)
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
