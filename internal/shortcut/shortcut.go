// Package shortcut parses skhd shortcut notation such as "shift + cmd - q",
// "resize < up" or ":: default".
package shortcut

import (
	"sort"
	"strings"
)

// Shortcut is a parsed shortcut notation: an optional mode, a set of
// operator (modifier) tokens and a key token.
//
// Identity ignores the mode. Two shortcuts with the same operators and key
// are equal even when they belong to different modes, so they collide as
// map keys. Callers building binding tables rely on this.
type Shortcut struct {
	mode      string
	hasMode   bool
	operators []string
	key       string
}

// ID is the comparable identity of a Shortcut: its sorted operator set and
// its key. It is suitable as a map key.
type ID struct {
	Operators string
	Key       string
}

// Parse parses shortcut notation. It never fails: malformed input yields a
// shortcut with empty fields.
func Parse(text string) Shortcut {
	var s Shortcut

	expr, key := strings.TrimSpace(text), ""
	parts := strings.Split(expr, "-")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 2 {
		expr, key = parts[0], parts[1]
	} else {
		expr = parts[0]
	}

	if mode, rest, found := strings.Cut(expr, "<"); found {
		s.mode, s.hasMode = strings.TrimSpace(mode), true
		expr = rest
	} else if strings.HasPrefix(expr, "::") {
		s.mode, s.hasMode = strings.TrimSpace(expr[2:]), true
		expr = ""
	}

	var ops []string
	for _, tok := range strings.Split(expr, "+") {
		if tok = strings.TrimSpace(tok); tok != "" {
			ops = appendUnique(ops, tok)
		}
	}

	// A lone token without a key is the key itself ("q", "resize < up").
	if key == "" && len(ops) == 1 {
		key, ops = ops[0], nil
	}

	s.operators = ops
	s.key = key
	return s
}

// Mode returns the mode the shortcut is scoped to. ok is false for the
// default mode.
func (s Shortcut) Mode() (mode string, ok bool) {
	return s.mode, s.hasMode
}

// Operators returns a copy of the operator tokens in the order they were
// written.
func (s Shortcut) Operators() []string {
	return append([]string(nil), s.operators...)
}

// Key returns the key token, possibly empty.
func (s Shortcut) Key() string {
	return s.key
}

// HasOperator reports whether op is one of the shortcut's operators.
func (s Shortcut) HasOperator(op string) bool {
	for _, o := range s.operators {
		if o == op {
			return true
		}
	}
	return false
}

// ID returns the shortcut's identity. The mode is not part of it.
func (s Shortcut) ID() ID {
	ops := s.Operators()
	sort.Strings(ops)
	return ID{Operators: strings.Join(ops, "+"), Key: s.key}
}

// Equal reports whether s and o have the same operator set and key.
func (s Shortcut) Equal(o Shortcut) bool {
	return s.ID() == o.ID()
}

// String renders the shortcut as "[mode] op1+op2 - key". It is meant for
// display: parsing the result back is not guaranteed to give the same
// shortcut.
func (s Shortcut) String() string {
	var sb strings.Builder
	if s.mode != "" {
		sb.WriteString("[" + s.mode + "] ")
	}
	sb.WriteString(strings.Join(s.operators, "+"))
	if s.key != "" {
		if len(s.operators) > 0 {
			sb.WriteString(" - ")
		}
		sb.WriteString(s.key)
	}
	return strings.TrimSpace(sb.String())
}

func appendUnique(set []string, tokens ...string) []string {
	for _, t := range tokens {
		dup := false
		for _, s := range set {
			if s == t {
				dup = true
				break
			}
		}
		if !dup {
			set = append(set, t)
		}
	}
	return set
}
