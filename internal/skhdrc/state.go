// Package skhdrc parses skhd configuration files into an ordered table of
// shortcut bindings, keeping the comment block written above each one.
package skhdrc

import (
	"strings"

	"github.com/jbeckham/skhd-keys/internal/shortcut"
)

const (
	bindSep       = " : "
	modeSwitchSep = " ; "
	continuation  = `\`

	// ModeSwitchPrefix marks commands synthesized from "keys ; mode" lines.
	ModeSwitchPrefix = "modeswitch "
)

// State is the parse state carried from one line to the next.
type State struct {
	pending []string           // comment block waiting for a binding
	cont    *shortcut.Shortcut // binding whose command is being continued
}

// Continuing reports whether the previous binding's command ended in a
// backslash and is still collecting lines.
func (s State) Continuing() bool {
	return s.cont != nil
}

// PendingComment returns the comment lines collected so far.
func (s State) PendingComment() []string {
	return append([]string(nil), s.pending...)
}

// Append extends the command of an already emitted binding.
type Append struct {
	Target shortcut.Shortcut
	Text   string
}

// Emission is what a single line produces. Both fields may be set: a
// continuation line is still checked for a binding afterwards.
type Emission struct {
	Append  *Append
	Binding *Binding
}

// Empty reports whether the line produced nothing.
func (e Emission) Empty() bool {
	return e.Append == nil && e.Binding == nil
}

// Step classifies one line and returns the next state and what the line
// emitted. rules is applied to every parsed shortcut and may be nil.
func (s State) Step(line string, rules shortcut.RenameRules) (State, Emission) {
	var out Emission
	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, "#"):
		s.pending = append(s.PendingComment(), strings.TrimSpace(line[1:]))
		return s, out
	case line == "":
		s.pending = nil
		return s, out
	}

	if s.cont != nil {
		out.Append = &Append{Target: *s.cont, Text: "\n" + line}
		if !strings.HasSuffix(line, continuation) {
			s.cont = nil
		}
	}

	var (
		keys, cmd string
		isBind    bool
	)
	if k, c, ok := strings.Cut(line, bindSep); ok {
		keys, cmd, isBind = k, c, true
	} else if k, mode, ok := strings.Cut(line, modeSwitchSep); ok {
		keys, cmd = k, ModeSwitchPrefix+mode
	} else {
		return s, out
	}

	sh := shortcut.Parse(keys).ReplaceOperators(rules)
	if isBind && strings.HasSuffix(cmd, continuation) {
		s.cont = &sh
	}
	out.Binding = &Binding{
		Shortcut: sh,
		Command:  cmd,
		Comment:  strings.TrimSpace(strings.Join(s.pending, "\n")),
	}
	s.pending = nil
	return s, out
}
