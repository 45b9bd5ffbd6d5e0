package shortcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in        string
		mode      string
		hasMode   bool
		operators []string
		key       string
	}{
		{"cmd + ctrl + alt - 1", "", false, []string{"cmd", "ctrl", "alt"}, "1"},
		{"cmd + ctrl + alt-1", "", false, []string{"cmd", "ctrl", "alt"}, "1"},
		{"cmd+ctrl  +   alt-1", "", false, []string{"cmd", "ctrl", "alt"}, "1"},
		{"cmd + ctrl + alt - 0x2C", "", false, []string{"cmd", "ctrl", "alt"}, "0x2C"},
		{"cmd + ctrl + ralt + lalt - 0x2B", "", false, []string{"cmd", "ctrl", "ralt", "lalt"}, "0x2B"},
		{":: default", "default", true, nil, ""},
		{"resize   <  up", "resize", true, nil, "up"},
		{"resize   <  shift - up", "resize", true, []string{"shift"}, "up"},
		{"q", "", false, nil, "q"},
		{"shift + shift - a", "", false, []string{"shift"}, "a"},
		{"", "", false, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s := Parse(tt.in)
			mode, ok := s.Mode()
			assert.Equal(t, tt.hasMode, ok, "has mode")
			assert.Equal(t, tt.mode, mode, "mode")
			assert.ElementsMatch(t, tt.operators, s.Operators(), "operators")
			assert.Equal(t, tt.key, s.Key(), "key")
		})
	}
}

func TestParseNaiveHyphenSplit(t *testing.T) {
	// Three parts after splitting on "-": the key is lost and the lone
	// operator is taken as the key.
	s := Parse("cmd - -")
	assert.Empty(t, s.Operators())
	assert.Equal(t, "cmd", s.Key())
}

func TestEqualIgnoresMode(t *testing.T) {
	a := Parse("default < cmd + alt - r")
	b := Parse("resize < alt + cmd - r")
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.ID(), b.ID())

	m := map[ID]string{a.ID(): "first"}
	m[b.ID()] = "second"
	assert.Len(t, m, 1)
	assert.Equal(t, "second", m[a.ID()])
}

func TestEqualDistinguishesOperatorsAndKey(t *testing.T) {
	assert.False(t, Parse("cmd - a").Equal(Parse("alt - a")))
	assert.False(t, Parse("cmd - a").Equal(Parse("cmd - b")))
	assert.False(t, Parse("cmd - a").Equal(Parse("cmd + shift - a")))
}

func TestString(t *testing.T) {
	tests := map[string]string{
		"shift + cmd - q":   "shift+cmd - q",
		"q":                 "q",
		"resize < up":       "[resize] up",
		"resize < shift-up": "[resize] shift - up",
		":: default":        "[default]",
		"cmd + alt":         "cmd+alt",
		"< x":               "x",
	}
	for in, want := range tests {
		assert.Equal(t, want, Parse(in).String(), "String() of %q", in)
	}
}

func TestStringNotLossless(t *testing.T) {
	// A single operator without a key renders like a bare key.
	s := Parse("cmd + ")
	assert.Equal(t, "cmd", s.String())
	assert.Equal(t, "cmd", s.Key())
}

func TestOperatorsReturnsCopy(t *testing.T) {
	s := Parse("cmd + alt - x")
	ops := s.Operators()
	ops[0] = "changed"
	assert.Equal(t, []string{"cmd", "alt"}, s.Operators())
}
