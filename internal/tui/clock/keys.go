package clock

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	NextUnit key.Binding
	PrevUnit key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextUnit: key.NewBinding(
			key.WithKeys("u", "right"),
			key.WithHelp("u", "next unit"),
		),
		PrevUnit: key.NewBinding(
			key.WithKeys("U", "left"),
			key.WithHelp("U", "previous unit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextUnit, k.PrevUnit, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
