package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keybindings of the browser.
type keyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Open     key.Binding
	Filter   key.Binding
	Reload   key.Binding
	Lookup   key.Binding
	Modes    key.Binding
	Copy     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	TabIndex key.Binding
}

// defaultKeyMap returns the default keybindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Lookup: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "look up shortcut"),
		),
		Modes: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "go to mode"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy command"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next mode"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab", "previous mode"),
		),
		TabIndex: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "modes"),
		),
	}
}

// helpLine renders the short help for the given bindings.
func helpLine(bindings ...key.Binding) string {
	var s string
	for i, b := range bindings {
		if i > 0 {
			s += "  "
		}
		h := b.Help()
		s += h.Key + ": " + h.Desc
	}
	return s
}
