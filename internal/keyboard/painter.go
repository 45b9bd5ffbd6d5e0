package keyboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Painter marks the text of a highlighted key.
type Painter func(string) string

var highlightStyle = lipgloss.NewStyle().Reverse(true)

// ReversePainter draws highlighted keys in reverse video.
func ReversePainter(s string) string {
	return highlightStyle.Render(s)
}

// PlainPainter marks highlighted keys without escape sequences by
// upper-casing them.
func PlainPainter(s string) string {
	return strings.ToUpper(s)
}
