package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jbeckham/skhd-keys/internal/keyboard"
	"github.com/jbeckham/skhd-keys/internal/skhdrc"
)

// Ensure bindingDetailView implements the view interface.
var _ view = (*bindingDetailView)(nil)

var (
	detailKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	detailSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				MarginTop(1)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Width(14)

	detailValueStyle = lipgloss.NewStyle()

	detailUnboundStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")) // yellow
)

// bindingDetailView shows one binding with its keys highlighted on the
// keyboard.
type bindingDetailView struct {
	binding  skhdrc.Binding
	bound    bool // false for a looked-up shortcut with no binding
	kb       keyboard.Keyboard
	scale    int
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func newBindingDetailView(b skhdrc.Binding, bound bool, kb keyboard.Keyboard, scale, width, height int) bindingDetailView {
	v := bindingDetailView{
		binding: b,
		bound:   bound,
		kb:      kb,
		scale:   scale,
		width:   width,
		height:  height,
	}
	v.buildViewport()
	return v
}

func (v bindingDetailView) title() string {
	return v.binding.Shortcut.String()
}

// buildViewport creates the viewport with rendered content.
func (v *bindingDetailView) buildViewport() {
	// Total height minus tab bar (2) and status bar (1)
	vpHeight := v.height - 3
	if vpHeight < 3 {
		vpHeight = 3
	}

	vp := viewport.New(v.width, vpHeight)
	vp.SetContent(v.renderContent())
	vp.KeyMap.Up.SetKeys("up", "k")
	vp.KeyMap.Down.SetKeys("down", "j")
	v.viewport = vp
	v.ready = true
}

// renderContent builds the full detail text.
func (v *bindingDetailView) renderContent() string {
	b := v.binding
	maxWidth := v.width - 2
	if maxWidth < 20 {
		maxWidth = 20
	}

	var out strings.Builder

	out.WriteString(detailKeyStyle.Render(b.Shortcut.String()))
	if v.bound {
		out.WriteString("  " + kindLabel(b))
	} else {
		out.WriteString("  " + detailUnboundStyle.Render("not bound"))
	}
	out.WriteString("\n\n")

	out.WriteString(renderField("Mode", modeOf(b)))
	if target, ok := b.TargetMode(); ok {
		out.WriteString(renderField("Switches to", target))
	}
	out.WriteString(renderField("Operators", strings.Join(b.Shortcut.Operators(), ", ")))
	out.WriteString(renderField("Key", b.Shortcut.Key()))

	out.WriteString(renderSection("Keyboard", maxWidth))
	highlight := keyboard.HighlightFor(b.Shortcut)
	drawn, err := v.kb.Render(v.scale, highlight)
	if err != nil {
		out.WriteString(errorStyle.Render(err.Error()))
		out.WriteString("\n")
	} else {
		out.WriteString(drawn)
	}
	if missing := v.kb.Missing(highlight); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, k := range missing {
			names[i] = k.CodeName()
		}
		out.WriteString(renderField("Not on layout", strings.Join(names, ", ")))
	}

	if b.Comment != "" {
		out.WriteString(renderSection("Comment", maxWidth))
		out.WriteString(lipgloss.NewStyle().Width(maxWidth).Render(b.Comment))
		out.WriteString("\n")
	}

	if v.bound {
		out.WriteString(renderSection("Command", maxWidth))
		out.WriteString(b.Command)
		out.WriteString("\n")
	}

	return out.String()
}

// Update processes key events for the detail view's viewport.
func (v *bindingDetailView) Update(msg tea.Msg) tea.Cmd {
	if !v.ready {
		return nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View renders the detail view viewport.
func (v *bindingDetailView) View() string {
	if !v.ready {
		return loadingStyle.Render("Loading...")
	}
	return v.viewport.View()
}

// setSize updates the viewport dimensions.
func (v *bindingDetailView) setSize(width, height int) {
	v.width = width
	v.height = height
	if v.ready {
		v.buildViewport()
	}
}

func renderSection(label string, maxWidth int) string {
	// "─── Label ─────────"
	remaining := maxWidth - 4 - len(label) - 1
	if remaining < 0 {
		remaining = 0
	}
	tail := strings.Repeat("─", remaining)
	return detailSectionStyle.Render(fmt.Sprintf("─── %s %s", label, tail)) + "\n"
}

func renderField(label, value string) string {
	if value == "" {
		return ""
	}
	return detailLabelStyle.Render(label) + detailValueStyle.Render(value) + "\n"
}
