package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Navigation
	Clients    key.Binding
	Properties key.Binding
	Deals      key.Binding
	Events     key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding

	// Actions
	Filter key.Binding
	Apply  key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	End  key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
	Clients:    key.NewBinding(key.WithKeys("c", "1"), key.WithHelp("c", "clients")),
	Properties: key.NewBinding(key.WithKeys("p", "2"), key.WithHelp("p", "properties")),
	Deals:      key.NewBinding(key.WithKeys("d", "3"), key.WithHelp("d", "deals")),
	Events:     key.NewBinding(key.WithKeys("e", "4"), key.WithHelp("e", "events")),
	NextTab:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
	PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "previous tab")),
	Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Apply:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
}
