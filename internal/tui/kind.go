package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jbeckham/skhd-keys/internal/skhdrc"
)

// bindingKind tells apart the three kinds of lines skhd binds.
type bindingKind int

const (
	kindCommand     bindingKind = iota // keys : command
	kindModeSwitch                     // keys ; mode
	kindModeCommand                    // :: mode : command, run on entering a mode
)

// kindDef holds the icon, color and name of a binding kind.
type kindDef struct {
	icon  string
	color lipgloss.Color
	name  string
}

var kindMap = map[bindingKind]kindDef{
	kindCommand:     {icon: "▸", color: lipgloss.Color("#2684FF"), name: "command"},
	kindModeSwitch:  {icon: "⇄", color: lipgloss.Color("#FFAB00"), name: "mode switch"},
	kindModeCommand: {icon: "◆", color: lipgloss.Color("#6B778C"), name: "mode entry"},
}

// kindOf classifies a binding.
func kindOf(b skhdrc.Binding) bindingKind {
	if b.IsModeSwitch() {
		return kindModeSwitch
	}
	if _, ok := b.Shortcut.Mode(); ok && b.Shortcut.Key() == "" && len(b.Shortcut.Operators()) == 0 {
		return kindModeCommand
	}
	return kindCommand
}

// kindIcon returns a colored icon for the binding's kind.
// Used in the binding list (table) view.
func kindIcon(b skhdrc.Binding) string {
	def := kindMap[kindOf(b)]
	return lipgloss.NewStyle().Foreground(def.color).Render(def.icon)
}

// kindLabel returns a colored "icon name" string for the binding's kind.
// Used in the detail view.
func kindLabel(b skhdrc.Binding) string {
	def := kindMap[kindOf(b)]
	style := lipgloss.NewStyle().Foreground(def.color)
	return style.Render(def.icon) + " " + def.name
}
