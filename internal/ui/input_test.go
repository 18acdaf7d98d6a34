package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func editingModel() *Model {
	m := NewModel(scenarioCatalog(), 0, 0)
	m.Update(runeKey('/'))
	return m
}

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := editingModel()
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("fi")}) {
		t.Fatalf("expected key press to be handled")
	}
	if m.Filter() != "fi" {
		t.Fatalf("expected filter 'fi', got %q", m.Filter())
	}
	items := m.Items()
	if len(items) != 1 || items[0].Name != "Firefox" {
		t.Fatalf("expected only Firefox, got %+v", items)
	}
}

func TestHandleTextInputSpaceAndBackspace(t *testing.T) {
	m := editingModel()
	m.Update(runeKey('w'))
	m.Update(runeKey('e'))
	m.Update(runeKey('b'))
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Filter() != "web " {
		t.Fatalf("expected trailing space, got %q", m.Filter())
	}
	if len(m.Items()) != 1 {
		t.Fatalf("expected description match on Firefox, got %d", len(m.Items()))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Filter() != "web" {
		t.Fatalf("expected last rune removed, got %q", m.Filter())
	}
}

func TestHandleTextInputBackspaceOnEmptyFilter(t *testing.T) {
	m := editingModel()
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatalf("expected backspace on empty filter to be unhandled")
	}
}

func TestHandleTextInputIgnoresAltAndControl(t *testing.T) {
	m := editingModel()
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}) {
		t.Fatalf("expected alt-modified rune to be ignored")
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'\x07'}}) {
		t.Fatalf("expected control rune to be ignored")
	}
	if m.Filter() != "" {
		t.Fatalf("expected filter untouched, got %q", m.Filter())
	}
}

func TestCtrlUClearsFilter(t *testing.T) {
	m := editingModel()
	m.Update(runeKey('z'))
	if len(m.Items()) != 0 {
		t.Fatalf("expected empty view for z")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.Filter() != "" || len(m.Items()) != 2 {
		t.Fatalf("expected cleared filter and full view, got %q %d", m.Filter(), len(m.Items()))
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected clearing an empty filter to be unhandled")
	}
}

func TestFilterClampsCursor(t *testing.T) {
	m := NewModel(threeCatalog(), 0, 0)
	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m.Update(runeKey('/'))
	m.Update(runeKey('e'))
	items := m.Items()
	if len(items) != 1 || items[0].Name != "Beta" {
		t.Fatalf("expected only Beta, got %+v", items)
	}
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor 2 mod 1 = 0, got %d", m.Cursor())
	}
}
