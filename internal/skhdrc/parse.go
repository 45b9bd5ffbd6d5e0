package skhdrc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jbeckham/skhd-keys/internal/shortcut"
)

// ParseLines builds a table from lines already in memory.
func ParseLines(lines []string, rules shortcut.RenameRules) *Table {
	t := NewTable()
	var st State
	for i, line := range lines {
		var e Emission
		st, e = st.Step(line, rules)
		if e.Empty() && !isCommentOrBlank(line) {
			slog.Debug("skhdrc: ignoring line", "line", i+1)
		}
		t.apply(e)
	}
	return t
}

// Parse reads r to the end and parses it. Read errors are returned without
// a partial table.
func Parse(r io.Reader, rules shortcut.RenameRules) (*Table, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, trimEOL(line))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading skhdrc: %w", err)
		}
	}
	return ParseLines(lines, rules), nil
}

// trimEOL drops a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// ParseFile parses the skhd configuration file at path.
func ParseFile(path string, rules shortcut.RenameRules) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening skhdrc: %w", err)
	}
	defer f.Close()

	t, err := Parse(f, rules)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("skhdrc: parsed", "path", path, "bindings", t.Len())
	return t, nil
}

func isCommentOrBlank(line string) bool {
	for _, r := range line {
		switch r {
		case ' ', '\t', '\r':
			continue
		case '#':
			return true
		}
		return false
	}
	return true
}
