package skhdrc

import (
	"strings"

	"github.com/jbeckham/skhd-keys/internal/shortcut"
)

// Binding is one entry of a Table.
type Binding struct {
	Shortcut shortcut.Shortcut
	Command  string
	Comment  string
}

// IsModeSwitch reports whether the binding switches mode rather than
// running a command.
func (b Binding) IsModeSwitch() bool {
	return strings.HasPrefix(b.Command, ModeSwitchPrefix)
}

// TargetMode returns the mode a mode-switch binding switches to.
func (b Binding) TargetMode() (string, bool) {
	if !b.IsModeSwitch() {
		return "", false
	}
	return strings.TrimPrefix(b.Command, ModeSwitchPrefix), true
}

// Table holds bindings in the order they were first seen, keyed by
// shortcut identity. Since identity ignores the mode, a later binding with
// the same operators and key replaces the command and comment of an
// earlier one, even across modes. The replaced entry keeps its position and
// its original shortcut.
type Table struct {
	bindings []Binding
	index    map[shortcut.ID]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: make(map[shortcut.ID]int)}
}

// Len returns the number of distinct shortcuts.
func (t *Table) Len() int {
	return len(t.bindings)
}

// Bindings returns a copy of the bindings in order.
func (t *Table) Bindings() []Binding {
	return append([]Binding(nil), t.bindings...)
}

// Put stores b, replacing the command and comment of an equal shortcut.
func (t *Table) Put(b Binding) {
	id := b.Shortcut.ID()
	if i, ok := t.index[id]; ok {
		t.bindings[i].Command = b.Command
		t.bindings[i].Comment = b.Comment
		return
	}
	t.index[id] = len(t.bindings)
	t.bindings = append(t.bindings, b)
}

// Lookup returns the binding whose shortcut equals s.
func (t *Table) Lookup(s shortcut.Shortcut) (Binding, bool) {
	i, ok := t.index[s.ID()]
	if !ok {
		return Binding{}, false
	}
	return t.bindings[i], true
}

// Command returns the command bound to s.
func (t *Table) Command(s shortcut.Shortcut) (string, bool) {
	b, ok := t.Lookup(s)
	return b.Command, ok
}

// Comment returns the comment attached to s. Bindings without a comment
// block have an empty comment.
func (t *Table) Comment(s shortcut.Shortcut) (string, bool) {
	b, ok := t.Lookup(s)
	return b.Comment, ok
}

// Commands returns the command of every binding keyed by identity.
func (t *Table) Commands() map[shortcut.ID]string {
	m := make(map[shortcut.ID]string, len(t.bindings))
	for _, b := range t.bindings {
		m[b.Shortcut.ID()] = b.Command
	}
	return m
}

// Comments returns the comment of every binding keyed by identity.
func (t *Table) Comments() map[shortcut.ID]string {
	m := make(map[shortcut.ID]string, len(t.bindings))
	for _, b := range t.bindings {
		m[b.Shortcut.ID()] = b.Comment
	}
	return m
}

// Modes returns the distinct modes referenced by bindings, in order of
// first appearance.
func (t *Table) Modes() []string {
	var modes []string
	seen := make(map[string]bool)
	add := func(m string) {
		if m != "" && !seen[m] {
			seen[m] = true
			modes = append(modes, m)
		}
	}
	for _, b := range t.bindings {
		if m, ok := b.Shortcut.Mode(); ok {
			add(m)
		}
		if m, ok := b.TargetMode(); ok {
			add(strings.TrimSpace(m))
		}
	}
	return modes
}

// apply records what a single line emitted.
func (t *Table) apply(e Emission) {
	if e.Append != nil {
		if i, ok := t.index[e.Append.Target.ID()]; ok {
			t.bindings[i].Command += e.Append.Text
		}
	}
	if e.Binding != nil {
		t.Put(*e.Binding)
	}
}
