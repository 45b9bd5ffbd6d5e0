package tui

import "github.com/charmbracelet/bubbles/table"

// columnDef holds display metadata for a binding column.
type columnDef struct {
	title    string
	minWidth int
	flex     bool // if true, absorbs remaining space
}

// knownColumns maps column names to display metadata.
var knownColumns = map[string]columnDef{
	"kind":     {title: "", minWidth: 2},
	"mode":     {title: "Mode", minWidth: 10},
	"shortcut": {title: "Shortcut", minWidth: 24},
	"command":  {title: "Command", minWidth: 20, flex: true},
	"comment":  {title: "Comment", minWidth: 20, flex: true},
}

// Column sets for the "all" tab and for per-mode tabs.
var (
	allColumns  = []string{"kind", "mode", "shortcut", "command", "comment"}
	modeColumns = []string{"kind", "shortcut", "command", "comment"}
)

// buildColumns creates bubbles table columns from column names,
// auto-sizing to the given total width.
func buildColumns(names []string, totalWidth int) []table.Column {
	cols := make([]table.Column, len(names))
	fixedTotal := 0
	flexCount := 0

	for i, name := range names {
		def, ok := knownColumns[name]
		if !ok {
			def = columnDef{title: name, minWidth: 12}
		}
		cols[i] = table.Column{Title: def.title, Width: def.minWidth}
		if def.flex {
			flexCount++
		} else {
			fixedTotal += def.minWidth
		}
	}

	// Distribute remaining width to flex columns
	if flexCount > 0 {
		// Reserve a small gap per column for padding
		padding := len(names) * 2
		remaining := totalWidth - fixedTotal - padding
		if remaining < 0 {
			remaining = 0
		}
		perFlex := remaining / flexCount
		if perFlex < 20 {
			perFlex = 20
		}
		for i, name := range names {
			def := knownColumns[name]
			if def.flex {
				cols[i].Width = perFlex
			}
		}
	}

	return cols
}
