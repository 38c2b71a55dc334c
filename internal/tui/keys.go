package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Policy key.Binding
	Half   key.Binding
	Help   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Policy: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "match mode")),
		Half:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "upper/lower row")),
		Help:   key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Policy, k.Half, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Policy, k.Half}, {k.Help, k.Quit}}
}
