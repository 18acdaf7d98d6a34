package ui

import (
	"reflect"

	"github.com/atomicstack/tmenu/internal/catalog"
	"github.com/atomicstack/tmenu/internal/logging/events"
	"github.com/atomicstack/tmenu/internal/theme"
	uistate "github.com/atomicstack/tmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects how key presses are interpreted.
type Mode int

const (
	// ModeBrowsing routes keys to list navigation.
	ModeBrowsing Mode = iota
	// ModeEditing routes printable keys to the search text.
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the application picker.
type Model struct {
	list        *uistate.List
	total       int
	mode        Mode
	committed   string
	selected    *catalog.Entry
	quitting    bool
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	keys         KeyMap
	help         help.Model
	filterCursor cursor.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the picker over the entries of c. Positive width and height
// pin the layout size; otherwise it follows the terminal.
func NewModel(c *catalog.Catalog, width, height int) *Model {
	var entries []catalog.Entry
	if c != nil {
		entries = c.Entries()
	}
	m := &Model{
		list:  uistate.NewList(entries),
		total: len(entries),
		mode:  ModeBrowsing,
		keys:  DefaultKeyMap(),
		help:  newHelp(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	fc := cursor.New()
	fc.SetMode(cursor.CursorStatic)
	if styles.Cursor != nil {
		fc.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		fc.TextStyle = styles.Filter.Copy()
	}
	fc.SetChar(" ")
	fc.Focus()
	m.filterCursor = fc
	m.registerHandlers()
	m.syncViewport()
	return m
}

func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = " • "
	if styles.HelpKey != nil {
		h.Styles.ShortKey = styles.HelpKey.Copy()
	}
	if styles.Help != nil {
		h.Styles.ShortDesc = styles.Help.Copy()
	}
	if styles.HelpSeparator != nil {
		h.Styles.ShortSeparator = styles.HelpSeparator.Copy()
	}
	return h
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Mouse messages are captured by the program but have no handler.
func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncViewport()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Mode reports the current input mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Filter reports the search text currently applied to the list.
func (m *Model) Filter() string {
	return m.list.Filter
}

// Cursor reports the index of the highlighted row in the filtered view.
func (m *Model) Cursor() int {
	return m.list.Cursor
}

// Items returns a copy of the filtered view.
func (m *Model) Items() []catalog.Entry {
	return uistate.CloneEntries(m.list.Items)
}

// Selected returns the entry chosen by the user, if any.
func (m *Model) Selected() (catalog.Entry, bool) {
	if m.selected == nil {
		return catalog.Entry{}, false
	}
	return *m.selected, true
}

// Quitting reports whether the model has asked the program to stop.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) setMode(next Mode) {
	if m.mode == next {
		return
	}
	events.UI.Mode(m.mode.String(), next.String())
	m.mode = next
}
