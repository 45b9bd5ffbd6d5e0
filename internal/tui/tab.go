package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/jbeckham/skhd-keys/internal/skhdrc"
)

// defaultMode is the mode skhd uses for bindings without a mode prefix.
const defaultMode = "default"

// tabState represents the content state of a tab.
type tabState int

const (
	tabReady tabState = iota
	tabEmpty
)

// tab holds one view over the parsed bindings: either every binding or
// the bindings of a single mode.
type tab struct {
	label       string
	mode        string // empty for the "all" tab
	table       table.Model
	bindings    []skhdrc.Binding
	state       tabState
	columns     []string
	quickFilter bindingFilter
}

// newTab creates an empty tab. Columns and rows are set once bindings
// load and the width is known.
func newTab(label, mode string) tab {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10), // will be resized
	)
	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = tableSelectedStyle
	s.Cell = tableCellStyle
	t.SetStyles(s)

	columns := modeColumns
	if mode == "" {
		columns = allColumns
	}
	return tab{
		label:       label,
		mode:        mode,
		table:       t,
		state:       tabEmpty,
		columns:     columns,
		quickFilter: newBindingFilter(),
	}
}

// buildTabs creates the "all" tab followed by one tab per mode, in the
// order modes first appear in the table.
func buildTabs(t *skhdrc.Table) []tab {
	all := newTab("all", "")
	var bindings []skhdrc.Binding
	if t != nil {
		bindings = t.Bindings()
	}
	all.setBindings(bindings)
	tabs := []tab{all}

	var modes []string
	byMode := make(map[string][]skhdrc.Binding)
	for _, b := range bindings {
		m := modeOf(b)
		if _, ok := byMode[m]; !ok {
			modes = append(modes, m)
		}
		byMode[m] = append(byMode[m], b)
	}
	for _, m := range modes {
		mt := newTab(m, m)
		mt.setBindings(byMode[m])
		tabs = append(tabs, mt)
	}
	return tabs
}

// modeOf returns the mode a binding is active in.
func modeOf(b skhdrc.Binding) string {
	if m, ok := b.Shortcut.Mode(); ok && m != "" {
		return m
	}
	return defaultMode
}

// setSize updates the table dimensions.
func (t *tab) setSize(width, height int) {
	t.table.SetColumns(buildColumns(t.columns, width))
	t.table.SetWidth(width)
	t.table.SetHeight(height)

	if t.state == tabReady {
		t.table.SetRows(bindingsToRows(t.quickFilter.visible(t.bindings), t.columns))
	}
}

// setBindings populates the tab.
func (t *tab) setBindings(bindings []skhdrc.Binding) {
	t.bindings = bindings
	t.quickFilter.clear()
	if len(bindings) == 0 {
		t.state = tabEmpty
		t.table.SetRows(nil)
		return
	}
	t.state = tabReady
	t.table.SetRows(bindingsToRows(bindings, t.columns))
	t.table.GotoTop()
}

// selectedBinding returns the binding at the cursor, or nil.
// When a quick filter is active, the cursor indexes into the filtered list.
func (t *tab) selectedBinding() *skhdrc.Binding {
	if t.state != tabReady {
		return nil
	}
	visible := t.quickFilter.visible(t.bindings)
	idx := t.table.Cursor()
	if idx >= 0 && idx < len(visible) {
		return &visible[idx]
	}
	return nil
}

// applyFilter updates the table rows based on the current quick filter.
func (t *tab) applyFilter() {
	visible := t.quickFilter.visible(t.bindings)
	t.table.SetRows(bindingsToRows(visible, t.columns))
	t.table.GotoTop()
}

// clearFilter removes the quick filter and restores the full list.
func (t *tab) clearFilter() {
	t.quickFilter.clear()
	t.table.SetRows(bindingsToRows(t.bindings, t.columns))
	t.table.GotoTop()
}

// bindingsToRows converts bindings to table rows. The kind column shows
// a colored icon instead of text.
func bindingsToRows(bindings []skhdrc.Binding, columns []string) []table.Row {
	rows := make([]table.Row, len(bindings))
	for i, b := range bindings {
		row := make(table.Row, len(columns))
		for j, col := range columns {
			if col == "kind" {
				row[j] = kindIcon(b)
			} else {
				row[j] = fieldValue(b, col)
			}
		}
		rows[i] = row
	}
	return rows
}

// fieldValue extracts a single-line display string for a column.
func fieldValue(b skhdrc.Binding, column string) string {
	switch column {
	case "kind":
		return kindMap[kindOf(b)].name
	case "mode":
		return modeOf(b)
	case "shortcut":
		return keysOf(b)
	case "command":
		return firstLine(b.Command)
	case "comment":
		return firstLine(b.Comment)
	}
	return ""
}

// keysOf renders the operators and key of a binding without its mode.
func keysOf(b skhdrc.Binding) string {
	ops := strings.Join(b.Shortcut.Operators(), " + ")
	k := b.Shortcut.Key()
	switch {
	case ops == "":
		return k
	case k == "":
		return ops
	}
	return ops + " - " + k
}

// firstLine returns the first line of s, marking dropped lines with an
// ellipsis.
func firstLine(s string) string {
	head, _, more := strings.Cut(s, "\n")
	head = strings.TrimSuffix(strings.TrimSpace(head), "\\")
	head = strings.TrimSpace(head)
	if more {
		return head + " …"
	}
	return head
}
