package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHarnessRecordsOneFramePerEvent(t *testing.T) {
	h := NewHarness(NewModel(scenarioCatalog(), 0, 0))
	h.Send(tea.WindowSizeMsg{Width: 50, Height: 12})
	h.Type("/fi")
	h.Press(tea.KeyEnter)
	frames := h.Frames()
	if len(frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(frames))
	}
	if !strings.Contains(frames[1], "apply") {
		t.Fatalf("expected editing help after slash, got:\n%s", frames[1])
	}
	if !strings.Contains(frames[0], "Terminal") {
		t.Fatalf("expected Terminal listed before filtering, got:\n%s", frames[0])
	}
	if strings.Contains(frames[3], "Terminal") {
		t.Fatalf("expected Terminal filtered after fi, got:\n%s", frames[3])
	}
	if !strings.Contains(frames[4], "launch") {
		t.Fatalf("expected browsing help after confirm, got:\n%s", frames[4])
	}
}

func TestHarnessSelectFlow(t *testing.T) {
	h := NewHarness(NewModel(scenarioCatalog(), 0, 0))
	h.Type("/fi")
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyEnter)
	if !h.Quit() {
		t.Fatalf("expected program to quit after selection")
	}
	entry, ok := h.Model().Selected()
	if !ok || entry.Name != "Firefox" {
		t.Fatalf("expected Firefox selected, got %+v", entry)
	}
	if entry.Command != "firefox %u" {
		t.Fatalf("expected raw command kept on entry, got %q", entry.Command)
	}
	frames := len(h.Frames())
	h.Press(tea.KeyDown)
	if len(h.Frames()) != frames {
		t.Fatalf("expected events after quit to be dropped")
	}
}

func TestHarnessQuitWithoutSelection(t *testing.T) {
	h := NewHarness(NewModel(scenarioCatalog(), 0, 0))
	h.Press(tea.KeyDown)
	h.Press(tea.KeyEsc)
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
	if _, ok := h.Model().Selected(); ok {
		t.Fatalf("expected no selection")
	}
	if h.View() != "" {
		t.Fatalf("expected blank final frame")
	}
}
