package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the status list. Everything not listed
// here is ignored by the update loop.
type KeyMap struct {
	Down    key.Binding
	Up      key.Binding
	Home    key.Binding
	End     key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybindings. g/G mirror home/end for
// vim muscle memory.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Home:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Refresh: key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
