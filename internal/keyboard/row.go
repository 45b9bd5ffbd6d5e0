package keyboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RowWidth is the total width, in key widths, every row must add up to.
const RowWidth = 14.5

var (
	// ErrRowWidth is returned for rows whose keys do not add up to RowWidth.
	ErrRowWidth = errors.New("keyboard row has incorrect width")
	// ErrScale is returned for render scales that are not a positive
	// multiple of 4.
	ErrScale = errors.New("scale must be a positive multiple of 4")
)

// box drawing pieces for the multi-line form
var (
	boxTop    = [3]string{"┌", "─", "┐"}
	boxMiddle = [3]string{"│", " ", "│"}
	boxBottom = [3]string{"└", "─", "┘"}
)

// Row is one row of keys.
type Row struct {
	keys []Key
}

// NewRow returns a row of keys, or ErrRowWidth if their widths do not add
// up to RowWidth.
func NewRow(keys ...Key) (Row, error) {
	var w float64
	for _, k := range keys {
		w += k.Width
	}
	if w != RowWidth {
		return Row{}, fmt.Errorf("%w (%g)", ErrRowWidth, w)
	}
	return Row{keys: keys}, nil
}

// MustRow is like NewRow but panics on error. It is meant for built-in
// layouts.
func MustRow(keys ...Key) Row {
	r, err := NewRow(keys...)
	if err != nil {
		panic(err)
	}
	return r
}

// Keys returns a copy of the row's keys.
func (r Row) Keys() []Key {
	return append([]Key(nil), r.keys...)
}

// Render draws the row at the given scale. Scale 4 is a single line of
// "[label]" cells; larger scales draw a three-line box per key.
func (r Row) Render(scale int, highlight []Key, paint Painter) (string, error) {
	if scale <= 0 || scale%4 != 0 {
		return "", fmt.Errorf("%w: %d", ErrScale, scale)
	}
	if paint == nil {
		paint = PlainPainter
	}
	if scale == 4 {
		return r.render(scale, highlight, paint, "[", "]", func(k Key, w int) string {
			return center(k.Label, w)
		}), nil
	}

	lines := []string{
		r.renderBox(scale, highlight, paint, boxTop, nil),
		r.renderBox(scale, highlight, paint, boxMiddle, func(k Key, w int) string {
			return center(k.Label, w)
		}),
		r.renderBox(scale, highlight, paint, boxBottom, nil),
	}
	return strings.Join(lines, "\n"), nil
}

func (r Row) renderBox(scale int, highlight []Key, paint Painter, box [3]string, text func(Key, int) string) string {
	if text == nil {
		text = func(_ Key, w int) string { return strings.Repeat(box[1], w) }
	}
	return r.render(scale, highlight, paint, box[0], box[2], text)
}

func (r Row) render(scale int, highlight []Key, paint Painter, start, end string, text func(Key, int) string) string {
	var sb strings.Builder
	for _, k := range r.keys {
		inner := cellWidth(k, scale) - 2
		if inner < 0 {
			inner = 0
		}
		txt := text(k, inner)
		if highlighted(k, highlight) {
			txt = paint(txt)
		}
		sb.WriteString(start + txt + end)
	}
	return sb.String()
}

// cellWidth is the number of columns a key takes, borders included.
func cellWidth(k Key, scale int) int {
	return int(k.Width * float64(scale))
}

// center truncates s to w columns and pads it to exactly w columns. With
// odd padding the extra space goes left when w is odd, right otherwise.
func center(s string, w int) string {
	s = runewidth.Truncate(s, w, "")
	pad := w - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad/2 + (pad & w & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
