package tui

import (
	"strings"
	"testing"

	"github.com/jbeckham/skhd-keys/internal/skhdrc"
)

var testSkhdrc = []string{
	"# open terminal",
	"cmd - return : open -a Terminal",
	"# focus left",
	"alt - h : yabai -m window --focus west",
	"",
	":: resize : echo resizing",
	"ctrl - r ; resize",
	"resize < left : yabai -m window --resize left:-20:0",
	"resize < escape ; default",
}

func testTable() *skhdrc.Table {
	return skhdrc.ParseLines(testSkhdrc, nil)
}

func TestBuildTabs(t *testing.T) {
	tabs := buildTabs(testTable())

	if len(tabs) != 3 {
		t.Fatalf("expected 3 tabs, got %d", len(tabs))
	}
	want := []struct {
		label string
		count int
	}{
		{"all", 6},
		{"default", 3},
		{"resize", 3},
	}
	for i, w := range want {
		if tabs[i].label != w.label {
			t.Errorf("tab %d: expected label %q, got %q", i, w.label, tabs[i].label)
		}
		if len(tabs[i].bindings) != w.count {
			t.Errorf("tab %q: expected %d bindings, got %d", w.label, w.count, len(tabs[i].bindings))
		}
		if tabs[i].state != tabReady {
			t.Errorf("tab %q: expected tabReady, got %d", w.label, tabs[i].state)
		}
	}
	if len(tabs[0].columns) != len(allColumns) {
		t.Errorf("expected the all tab to show the mode column")
	}
	if len(tabs[1].columns) != len(modeColumns) {
		t.Errorf("expected mode tabs to hide the mode column")
	}
}

func TestBuildTabsNilTable(t *testing.T) {
	tabs := buildTabs(nil)
	if len(tabs) != 1 {
		t.Fatalf("expected only the all tab, got %d", len(tabs))
	}
	if tabs[0].state != tabEmpty {
		t.Errorf("expected tabEmpty, got %d", tabs[0].state)
	}
}

func TestModeOf(t *testing.T) {
	bindings := testTable().Bindings()
	want := []string{"default", "default", "resize", "default", "resize", "resize"}
	for i, b := range bindings {
		if got := modeOf(b); got != want[i] {
			t.Errorf("binding %d (%s): expected mode %q, got %q", i, b.Shortcut, want[i], got)
		}
	}
}

func TestTabSelectedBinding(t *testing.T) {
	tab := newTab("all", "")
	tab.setSize(80, 20)

	if got := tab.selectedBinding(); got != nil {
		t.Error("expected nil when no bindings")
	}

	tab.setBindings(testTable().Bindings())
	selected := tab.selectedBinding()
	if selected == nil {
		t.Fatal("expected selected binding, got nil")
	}
	if selected.Command != "open -a Terminal" {
		t.Errorf("expected first row, got %q", selected.Command)
	}
}

func TestTabSelectedBindingFiltered(t *testing.T) {
	tab := newTab("all", "")
	tab.setSize(80, 20)
	tab.setBindings(testTable().Bindings())

	tab.quickFilter.activate()
	tab.quickFilter.input.SetValue("west")
	tab.quickFilter.apply(tab.bindings, tab.columns)
	tab.applyFilter()

	selected := tab.selectedBinding()
	if selected == nil {
		t.Fatal("expected selected binding, got nil")
	}
	if selected.Shortcut.Key() != "h" {
		t.Errorf("expected alt - h, got %s", selected.Shortcut)
	}

	tab.clearFilter()
	if tab.quickFilter.isActive() {
		t.Error("expected filter to be cleared")
	}
	if got := tab.selectedBinding(); got == nil || got.Shortcut.Key() != "return" {
		t.Errorf("expected cursor back on the first binding, got %v", got)
	}
}

func TestBindingsToRows(t *testing.T) {
	rows := bindingsToRows(testTable().Bindings()[:2], allColumns)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	row := rows[0]
	if !strings.Contains(row[0], "▸") {
		t.Errorf("expected command icon, got %q", row[0])
	}
	if row[1] != "default" {
		t.Errorf("expected mode 'default', got %q", row[1])
	}
	if row[2] != "cmd - return" {
		t.Errorf("expected shortcut 'cmd - return', got %q", row[2])
	}
	if row[3] != "open -a Terminal" {
		t.Errorf("expected command, got %q", row[3])
	}
	if row[4] != "open terminal" {
		t.Errorf("expected comment, got %q", row[4])
	}
}

func TestFieldValue(t *testing.T) {
	bindings := testTable().Bindings()

	tests := []struct {
		name    string
		binding skhdrc.Binding
		column  string
		want    string
	}{
		{"kind command", bindings[0], "kind", "command"},
		{"kind mode entry", bindings[2], "kind", "mode entry"},
		{"kind mode switch", bindings[3], "kind", "mode switch"},
		{"shortcut with operators", bindings[1], "shortcut", "alt - h"},
		{"shortcut key only", bindings[4], "shortcut", "left"},
		{"shortcut mode entry", bindings[2], "shortcut", ""},
		{"mode switch command", bindings[3], "command", "modeswitch resize"},
		{"unknown column", bindings[0], "nope", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldValue(tt.binding, tt.column); got != tt.want {
				t.Errorf("fieldValue(%q) = %q, want %q", tt.column, got, tt.want)
			}
		})
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"echo hi", "echo hi"},
		{"echo a \\\necho b", "echo a …"},
		{"first\nsecond", "first …"},
	}
	for _, tt := range tests {
		if got := firstLine(tt.in); got != tt.want {
			t.Errorf("firstLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
