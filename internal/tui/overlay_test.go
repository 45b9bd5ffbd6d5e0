package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateOverlay(o overlay, msg tea.Msg) overlay {
	updated, _ := o.Update(msg)
	return updated
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

var testModeChoices = []modeChoice{
	{tabIndex: 1, mode: "default", count: 3},
	{tabIndex: 2, mode: "resize", count: 1},
	{tabIndex: 3, mode: "swap", count: 4},
}

func TestModePickerFilterAndSelect(t *testing.T) {
	var o overlay = newModePicker(testModeChoices)

	p := o.(*modePicker)
	if len(p.filtered) != 3 {
		t.Errorf("expected 3 filtered choices, got %d", len(p.filtered))
	}

	for _, ch := range "res" {
		o = updateOverlay(o, keyMsg(string(ch)))
	}
	p = o.(*modePicker)
	if len(p.filtered) != 1 {
		t.Fatalf("expected 1 filtered choice, got %d", len(p.filtered))
	}

	o = updateOverlay(o, keyMsg("enter"))
	isDone, result := o.done()
	if !isDone {
		t.Fatal("expected overlay to be done")
	}
	choice, ok := result.(*modeChoice)
	if !ok {
		t.Fatalf("expected *modeChoice, got %T", result)
	}
	if choice.mode != "resize" || choice.tabIndex != 2 {
		t.Errorf("unexpected choice %+v", choice)
	}
}

func TestModePickerNavigate(t *testing.T) {
	var o overlay = newModePicker(testModeChoices)

	o = updateOverlay(o, keyMsg("down"))
	o = updateOverlay(o, keyMsg("down"))
	o = updateOverlay(o, keyMsg("down")) // clamped at the last choice
	o = updateOverlay(o, keyMsg("up"))
	o = updateOverlay(o, keyMsg("enter"))

	_, result := o.done()
	choice := result.(*modeChoice)
	if choice.mode != "resize" {
		t.Errorf("expected resize, got %s", choice.mode)
	}
}

func TestModePickerCancel(t *testing.T) {
	var o overlay = newModePicker(testModeChoices)
	o = updateOverlay(o, keyMsg("esc"))

	isDone, result := o.done()
	if !isDone {
		t.Fatal("expected overlay to be done after esc")
	}
	if result != nil {
		t.Errorf("expected nil result, got %v", result)
	}
}

func TestModePickerNoMatch(t *testing.T) {
	var o overlay = newModePicker(testModeChoices)
	for _, ch := range "zzz" {
		o = updateOverlay(o, keyMsg(string(ch)))
	}
	if !strings.Contains(o.View(80, 24), "No matches") {
		t.Error("expected no matches message")
	}

	o = updateOverlay(o, keyMsg("enter"))
	isDone, result := o.done()
	if !isDone || result != nil {
		t.Errorf("expected done with nil result, got %v %v", isDone, result)
	}
}

func TestModePickerView(t *testing.T) {
	o := newModePicker(testModeChoices)
	view := o.View(80, 24)
	for _, want := range []string{"Go to mode", "default", "3 bindings", "1 binding", "swap"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestShortcutPromptSubmit(t *testing.T) {
	var o overlay = newShortcutPrompt()
	o = updateOverlay(o, keyMsg("alt - h"))
	o = updateOverlay(o, keyMsg("enter"))

	isDone, result := o.done()
	if !isDone {
		t.Fatal("expected overlay to be done")
	}
	if result != "alt - h" {
		t.Errorf("expected 'alt - h', got %v", result)
	}
}

func TestShortcutPromptEmptySubmit(t *testing.T) {
	var o overlay = newShortcutPrompt()
	o = updateOverlay(o, keyMsg("enter"))

	isDone, result := o.done()
	if !isDone {
		t.Fatal("expected overlay to be done")
	}
	if result != nil {
		t.Errorf("expected nil result for empty input, got %v", result)
	}
}

func TestShortcutPromptCancel(t *testing.T) {
	var o overlay = newShortcutPrompt()
	o = updateOverlay(o, keyMsg("cmd"))
	o = updateOverlay(o, keyMsg("esc"))

	isDone, result := o.done()
	if !isDone || result != nil {
		t.Errorf("expected done with nil result, got %v %v", isDone, result)
	}
}
