package keyboard

import (
	"fmt"
	"strings"
)

// Scales accepted by NewKeyboard as a default render scale.
var Scales = []int{4, 8, 12}

// Keyboard is a layout of rows.
type Keyboard struct {
	rows  []Row
	scale int
	paint Painter
}

// NewKeyboard returns a keyboard that renders at scale by default.
func NewKeyboard(scale int, rows ...Row) (Keyboard, error) {
	if !ValidScale(scale) {
		return Keyboard{}, fmt.Errorf("unsupported scale %d", scale)
	}
	return Keyboard{rows: rows, scale: scale, paint: ReversePainter}, nil
}

// MustKeyboard is like NewKeyboard but panics on error.
func MustKeyboard(scale int, rows ...Row) Keyboard {
	kb, err := NewKeyboard(scale, rows...)
	if err != nil {
		panic(err)
	}
	return kb
}

// ValidScale reports whether scale is one of Scales.
func ValidScale(scale int) bool {
	for _, s := range Scales {
		if s == scale {
			return true
		}
	}
	return false
}

// Scale returns the default render scale.
func (kb Keyboard) Scale() int {
	return kb.scale
}

// Rows returns a copy of the keyboard's rows.
func (kb Keyboard) Rows() []Row {
	return append([]Row(nil), kb.rows...)
}

// WithPainter returns a copy of kb that marks highlighted keys with p.
func (kb Keyboard) WithPainter(p Painter) Keyboard {
	kb.paint = p
	return kb
}

// Find returns the first key matching k.
func (kb Keyboard) Find(k Key) (Key, bool) {
	for _, r := range kb.rows {
		for _, key := range r.keys {
			if key.Matches(k) {
				return key, true
			}
		}
	}
	return Key{}, false
}

// Missing returns the keys of highlight that are not on the keyboard.
func (kb Keyboard) Missing(highlight []Key) []Key {
	var missing []Key
	for _, h := range highlight {
		if _, ok := kb.Find(h); !ok {
			missing = append(missing, h)
		}
	}
	return missing
}

// Render draws every row at scale, one row (or three lines per row for
// scales above 4) after another, each followed by a newline.
func (kb Keyboard) Render(scale int, highlight []Key) (string, error) {
	var sb strings.Builder
	for _, r := range kb.rows {
		s, err := r.Render(scale, highlight, kb.paint)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// String renders the keyboard at its default scale without highlights.
func (kb Keyboard) String() string {
	s, err := kb.Render(kb.scale, nil)
	if err != nil {
		return err.Error()
	}
	return s
}
