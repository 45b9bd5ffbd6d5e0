package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jbeckham/skhd-keys/internal/skhdrc"
)

// filterState tracks whether the filter bar is active and/or focused.
type filterState int

const (
	filterInactive filterState = iota // no filter bar visible
	filterFocused                     // filter bar visible, text input focused
	filterApplied                     // filter bar visible, text input blurred (confirmed)
)

// bindingFilter narrows a tab's bindings to those matching a query.
type bindingFilter struct {
	state    filterState
	input    textinput.Model
	query    string
	total    int
	matched  int
	filtered []skhdrc.Binding
}

func newBindingFilter() bindingFilter {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = filterPromptStyle
	ti.CharLimit = 128
	return bindingFilter{
		state: filterInactive,
		input: ti,
	}
}

// activate shows the filter bar and focuses the text input.
func (f *bindingFilter) activate() {
	f.state = filterFocused
	f.input.Focus()
}

// apply confirms the filter and blurs the input.
// An empty query clears the filter instead.
func (f *bindingFilter) apply(all []skhdrc.Binding, columns []string) {
	q := strings.TrimSpace(f.input.Value())
	if q == "" {
		f.clear()
		return
	}
	f.query = q
	f.state = filterApplied
	f.input.Blur()
	f.filtered = filterBindings(all, columns, q)
	f.total = len(all)
	f.matched = len(f.filtered)
}

// clear removes the filter entirely.
func (f *bindingFilter) clear() {
	f.state = filterInactive
	f.query = ""
	f.input.SetValue("")
	f.input.Blur()
	f.filtered = nil
	f.total = 0
	f.matched = 0
}

// updateQuery live-filters as the user types.
func (f *bindingFilter) updateQuery(all []skhdrc.Binding, columns []string) {
	q := strings.TrimSpace(f.input.Value())
	f.query = q
	f.total = len(all)
	if q == "" {
		f.filtered = all
	} else {
		f.filtered = filterBindings(all, columns, q)
	}
	f.matched = len(f.filtered)
}

func (f *bindingFilter) isActive() bool {
	return f.state != filterInactive
}

func (f *bindingFilter) isFocused() bool {
	return f.state == filterFocused
}

// visible returns the filtered set, or all bindings when no query is set.
func (f *bindingFilter) visible(all []skhdrc.Binding) []skhdrc.Binding {
	if f.state == filterInactive || f.query == "" {
		return all
	}
	return f.filtered
}

// filterBindings returns bindings where any column value contains the
// query, ignoring case.
func filterBindings(bindings []skhdrc.Binding, columns []string, query string) []skhdrc.Binding {
	q := strings.ToLower(query)
	var result []skhdrc.Binding
	for _, b := range bindings {
		for _, col := range columns {
			if strings.Contains(strings.ToLower(fieldValue(b, col)), q) {
				result = append(result, b)
				break
			}
		}
	}
	return result
}
