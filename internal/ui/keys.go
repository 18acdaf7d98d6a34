package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap groups key bindings by the mode they apply in. ForceQuit is honoured
// in every mode.
type KeyMap struct {
	Browse    BrowseKeys
	Edit      EditKeys
	ForceQuit key.Binding
}

// BrowseKeys apply while navigating the list.
type BrowseKeys struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Search   key.Binding
	Select   key.Binding
	Quit     key.Binding
}

// EditKeys apply while typing into the search box. Letters are text here, so
// movement is limited to the arrow and paging keys.
type EditKeys struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Clear    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Browse: BrowseKeys{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			PageUp:   key.NewBinding(key.WithKeys("pgup")),
			PageDown: key.NewBinding(key.WithKeys("pgdown")),
			Home:     key.NewBinding(key.WithKeys("home", "g")),
			End:      key.NewBinding(key.WithKeys("end", "G")),
			Search: key.NewBinding(
				key.WithKeys("/"),
				key.WithHelp("/", "search"),
			),
			Select: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "launch"),
			),
			Quit: key.NewBinding(
				key.WithKeys("esc", "q"),
				key.WithHelp("esc", "exit"),
			),
		},
		Edit: EditKeys{
			Up: key.NewBinding(
				key.WithKeys("up"),
				key.WithHelp("↑/↓", "move"),
			),
			Down:     key.NewBinding(key.WithKeys("down")),
			PageUp:   key.NewBinding(key.WithKeys("pgup")),
			PageDown: key.NewBinding(key.WithKeys("pgdown")),
			Confirm: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "apply"),
			),
			Cancel: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "cancel"),
			),
			Clear: key.NewBinding(
				key.WithKeys("ctrl+u"),
				key.WithHelp("ctrl+u", "clear"),
			),
		},
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp returns the bindings advertised in the help band for mode.
func (k KeyMap) ShortHelp(mode Mode) []key.Binding {
	if mode == ModeEditing {
		return []key.Binding{k.Edit.Up, k.Edit.Confirm, k.Edit.Cancel, k.Edit.Clear}
	}
	return []key.Binding{k.Browse.Up, k.Browse.Down, k.Browse.Search, k.Browse.Select, k.Browse.Quit}
}
