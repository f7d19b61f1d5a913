package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Cycle   key.Binding
	Save    key.Binding
	Load    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Cycle:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "run monthly cycle")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save fund to file")),
		Load:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "load fund from file")),
		NextTab: key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→/tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "previous tab")),
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.Save, k.Load, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cycle, k.Save, k.Load},
		{k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
