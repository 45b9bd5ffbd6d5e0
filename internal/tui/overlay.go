package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// overlay captures input on top of any view until done reports true.
// The result is nil when the user cancelled.
type overlay interface {
	Update(tea.Msg) (overlay, tea.Cmd)
	View(width, height int) string
	done() (bool, interface{})
}

var (
	overlayBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("12")).
				Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12")).
				MarginBottom(1)

	overlayHintStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				MarginTop(1)

	overlaySelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("12")).
				Bold(true)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// placeOverlay frames content in a bordered box centered in the area.
func placeOverlay(content string, width, height int) string {
	boxWidth := width - 10
	if boxWidth < 30 {
		boxWidth = 30
	}
	if boxWidth > 70 {
		boxWidth = 70
	}
	box := overlayBorderStyle.Width(boxWidth).Render(content)
	return lipgloss.Place(width, height-2, lipgloss.Center, lipgloss.Center, box)
}

// --- Mode picker ---

// modeChoice is one entry of the mode picker.
type modeChoice struct {
	tabIndex int
	mode     string
	count    int
}

// modePicker is a filterable list of the modes found in the skhdrc.
type modePicker struct {
	choices  []modeChoice
	filtered []int // indices into choices
	cursor   int
	filter   textinput.Model
	isDone   bool
	result   interface{} // *modeChoice or nil
}

func newModePicker(choices []modeChoice) *modePicker {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 100
	ti.Focus()

	p := &modePicker{
		choices: choices,
		filter:  ti,
	}
	p.applyFilter()
	return p
}

func (p *modePicker) applyFilter() {
	query := strings.ToLower(p.filter.Value())
	p.filtered = nil
	for i, c := range p.choices {
		if query == "" || strings.Contains(strings.ToLower(c.mode), query) {
			p.filtered = append(p.filtered, i)
		}
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = max(0, len(p.filtered)-1)
	}
}

func (p *modePicker) Update(msg tea.Msg) (overlay, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			p.isDone = true
			p.result = nil
			return p, nil
		case "enter":
			if p.cursor < len(p.filtered) {
				p.result = &p.choices[p.filtered[p.cursor]]
			}
			p.isDone = true
			return p, nil
		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case "down", "ctrl+n":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	p.applyFilter()
	return p, cmd
}

func (p *modePicker) View(width, height int) string {
	var b strings.Builder

	b.WriteString(overlayTitleStyle.Render("Go to mode"))
	b.WriteString("\n")
	b.WriteString(p.filter.View())
	b.WriteString("\n\n")

	maxVisible := height - 12
	if maxVisible > 15 {
		maxVisible = 15
	}
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := 0
	if p.cursor >= maxVisible {
		start = p.cursor - maxVisible + 1
	}

	for i := start; i < len(p.filtered) && i < start+maxVisible; i++ {
		c := p.choices[p.filtered[i]]
		line := c.mode + overlayDimStyle.Render(bindingCount(c.count))
		if i == p.cursor {
			b.WriteString(overlaySelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if len(p.filtered) == 0 {
		b.WriteString(overlayDimStyle.Render("  No matches"))
		b.WriteString("\n")
	}

	b.WriteString(overlayHintStyle.Render("↑/↓: navigate  enter: go  esc: cancel"))
	return placeOverlay(b.String(), width, height)
}

func (p *modePicker) done() (bool, interface{}) {
	return p.isDone, p.result
}

func bindingCount(n int) string {
	if n == 1 {
		return "  1 binding"
	}
	return fmt.Sprintf("  %d bindings", n)
}

// --- Shortcut prompt ---

// shortcutPrompt reads a shortcut in skhd notation, e.g. "cmd + shift - k".
type shortcutPrompt struct {
	input  textinput.Model
	isDone bool
	result interface{} // string or nil
}

func newShortcutPrompt() *shortcutPrompt {
	ti := textinput.New()
	ti.Placeholder = "cmd + shift - k"
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()
	return &shortcutPrompt{input: ti}
}

func (s *shortcutPrompt) Update(msg tea.Msg) (overlay, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			s.isDone = true
			s.result = nil
			return s, nil
		case "enter":
			s.isDone = true
			if v := strings.TrimSpace(s.input.Value()); v != "" {
				s.result = v
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *shortcutPrompt) View(width, height int) string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Look up shortcut"))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n")
	b.WriteString(overlayHintStyle.Render("enter: look up  esc: cancel"))
	return placeOverlay(b.String(), width, height)
}

func (s *shortcutPrompt) done() (bool, interface{}) {
	return s.isDone, s.result
}
