package demo

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open     key.Binding
	Library  key.Binding
	Settings key.Binding
	Replace  key.Binding
	Back     key.Binding
	Home     key.Binding
	Mode     key.Binding
	NavBar   key.Binding
	Wider    key.Binding
	Narrower key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open:     key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open game")),
		Library:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "library (single)")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings (pop to)")),
		Replace:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "replace")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace", "left", "h"), key.WithHelp("esc", "back")),
		Home:     key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("0", "clear")),
		Mode:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "cycle mode")),
		NavBar:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "toggle navbar")),
		Wider:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "wider navbar")),
		Narrower: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "narrower navbar")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.Replace, k.Mode, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Library, k.Settings, k.Replace},
		{k.Back, k.Home},
		{k.Mode, k.NavBar, k.Wider, k.Narrower},
		{k.Help, k.Quit},
	}
}
