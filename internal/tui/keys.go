package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	copy     key.Binding
	copyUser key.Binding
	open     key.Binding
	back     key.Binding
	delete   key.Binding
	reload   key.Binding
	info     key.Binding
	quit     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	copy:     key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "copy password")),
	copyUser: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "copy username")),
	open:     key.NewBinding(key.WithKeys("o", "right"), key.WithHelp("o", "details")),
	back:     key.NewBinding(key.WithKeys("esc", "left", "backspace"), key.WithHelp("esc", "back")),
	delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	info:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}

func listHelpKeys() []key.Binding {
	return []key.Binding{keys.copy, keys.copyUser, keys.open, keys.delete, keys.reload}
}
