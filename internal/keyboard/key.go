// Package keyboard draws a physical keyboard layout as text, highlighting
// the keys of a shortcut.
package keyboard

import (
	"strings"

	"github.com/jbeckham/skhd-keys/internal/shortcut"
)

// Key is one key cap of a layout.
type Key struct {
	Label    string  // text printed on the cap
	Code     string  // name used in shortcuts; defaults to Label
	Width    float64 // in standard key widths
	Modifier bool
}

// NewKey returns a standard-width, non-modifier key.
func NewKey(label string) Key {
	return Key{Label: label, Width: 1}
}

// Modifier returns a modifier key with the given label.
func Modifier(label string) Key {
	return Key{Label: label, Width: 1, Modifier: true}
}

// WithCode returns k with a shortcut code different from its label.
func (k Key) WithCode(code string) Key {
	k.Code = code
	return k
}

// WithWidth returns k with the given width.
func (k Key) WithWidth(w float64) Key {
	k.Width = w
	return k
}

// CodeName returns the code a shortcut uses for k.
func (k Key) CodeName() string {
	if k.Code == "" {
		return k.Label
	}
	return k.Code
}

// Matches reports whether k and o name the same key: codes are compared
// case-insensitively and both must agree on being a modifier. This is
// unrelated to shortcut identity.
func (k Key) Matches(o Key) bool {
	return k.Modifier == o.Modifier && strings.EqualFold(k.CodeName(), o.CodeName())
}

func (k Key) String() string {
	if c := k.CodeName(); c != k.Label {
		return k.Label + " (" + c + ")"
	}
	return k.Label
}

// HighlightFor returns the keys to highlight for s: every operator as a
// modifier key, plus the key itself when there is one.
func HighlightFor(s shortcut.Shortcut) []Key {
	var keys []Key
	for _, op := range s.Operators() {
		keys = append(keys, Modifier(op))
	}
	if s.Key() != "" {
		keys = append(keys, NewKey(s.Key()))
	}
	return keys
}

func highlighted(k Key, highlight []Key) bool {
	for _, h := range highlight {
		if k.Matches(h) {
			return true
		}
	}
	return false
}
