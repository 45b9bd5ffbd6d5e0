package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jbeckham/skhd-keys/internal/keyboard"
	"github.com/jbeckham/skhd-keys/internal/shortcut"
	"github.com/jbeckham/skhd-keys/internal/skhdrc"
)

// --- Messages ---

// bindingsLoadedMsg delivers a freshly parsed skhdrc.
type bindingsLoadedMsg struct {
	table *skhdrc.Table
	err   error
}

// flashMsg sets a temporary status message.
type flashMsg struct {
	text  string
	isErr bool
}

// --- View stack ---

// view is a stacked view that renders on top of the tab bar.
type view interface {
	// title returns a label for the view (e.g., the shortcut).
	title() string
}

// --- App model ---

// Options configures the browser.
type Options struct {
	Path     string               // skhdrc to read and reload
	Rules    shortcut.RenameRules // applied to every parsed shortcut
	Keyboard keyboard.Keyboard
	Scale    int           // keyboard render scale in the detail view
	Table    *skhdrc.Table // already parsed bindings, if any
}

// App is the root bubbletea model of the bindings browser.
type App struct {
	width  int
	height int
	ready  bool

	path  string
	rules shortcut.RenameRules
	kb    keyboard.Keyboard
	scale int
	keys  keyMap

	table   *skhdrc.Table
	loading bool
	loadErr error

	tabs      []tab
	activeTab int
	viewStack []view
	overlay   overlay

	flash      string // transient status message
	flashIsErr bool   // true if the flash is an error

	copyText func(string) error
}

// NewApp creates a new App model. Without a preloaded table the bindings
// are read from Options.Path by Init.
func NewApp(opts Options) App {
	scale := opts.Scale
	if scale == 0 {
		scale = opts.Keyboard.Scale()
	}
	a := App{
		path:     opts.Path,
		rules:    opts.Rules,
		kb:       opts.Keyboard,
		scale:    scale,
		keys:     defaultKeyMap(),
		copyText: clipboard.WriteAll,
	}
	if opts.Table != nil {
		a.table = opts.Table
		a.tabs = buildTabs(opts.Table)
	} else {
		a.loading = opts.Path != ""
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if !a.loading {
		return nil
	}
	return a.loadBindings()
}

// loadBindings returns a Cmd that parses the skhdrc.
func (a App) loadBindings() tea.Cmd {
	path, rules := a.path, a.rules
	return func() tea.Msg {
		t, err := skhdrc.ParseFile(path, rules)
		return bindingsLoadedMsg{table: t, err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.resizeTabs()
		if dv := a.topDetail(); dv != nil {
			dv.setSize(a.width, a.height)
		}

	case bindingsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			slog.Warn("loading skhdrc failed", "path", a.path, "err", msg.err)
			a.loadErr = msg.err
			a.flash = msg.err.Error()
			a.flashIsErr = true
			return a, nil
		}
		a.loadErr = nil
		a.table = msg.table
		a.tabs = buildTabs(msg.table)
		if a.activeTab >= len(a.tabs) {
			a.activeTab = 0
		}
		a.resizeTabs()
		slog.Debug("skhdrc loaded", "path", a.path, "bindings", msg.table.Len())
		a.flash = fmt.Sprintf("%d bindings loaded", msg.table.Len())
		a.flashIsErr = false

	case flashMsg:
		a.flash = msg.text
		a.flashIsErr = msg.isErr

	case tea.KeyMsg:
		a.flash = "" // clear flash on any keypress
		return a.handleKey(msg)
	}
	return a, nil
}

// resizeTabs fits every tab table to the window.
func (a *App) resizeTabs() {
	if !a.ready {
		return
	}
	tableH := a.tableHeight()
	for i := range a.tabs {
		a.tabs[i].setSize(a.width, tableH)
	}
}

// topDetail returns the detail view on top of the stack, or nil.
func (a App) topDetail() *bindingDetailView {
	if len(a.viewStack) == 0 {
		return nil
	}
	dv, _ := a.viewStack[len(a.viewStack)-1].(*bindingDetailView)
	return dv
}

// currentTab returns the active tab, or nil before bindings load.
func (a *App) currentTab() *tab {
	if a.activeTab < len(a.tabs) {
		return &a.tabs[a.activeTab]
	}
	return nil
}

// handleKey processes key input.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// An active overlay takes every key
	if a.overlay != nil {
		var cmd tea.Cmd
		a.overlay, cmd = a.overlay.Update(msg)
		if isDone, result := a.overlay.done(); isDone {
			return a.handleOverlayResult(result)
		}
		return a, cmd
	}

	if dv := a.topDetail(); dv != nil {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Back):
			a.viewStack = a.viewStack[:len(a.viewStack)-1]
			return a, nil
		case key.Matches(msg, a.keys.Copy):
			if dv.bound {
				return a, a.copyCommand(dv.binding)
			}
			return a, nil
		}
		return a, dv.Update(msg)
	}

	t := a.currentTab()
	if t != nil && t.quickFilter.isFocused() {
		return a.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Back):
		if t != nil && t.quickFilter.isActive() {
			t.clearFilter()
		}
		return a, nil

	case key.Matches(msg, a.keys.Filter):
		if t != nil && t.state == tabReady {
			t.quickFilter.activate()
			a.resizeTabs()
			return a, t.quickFilter.input.Focus()
		}

	case key.Matches(msg, a.keys.Reload):
		if a.path != "" && !a.loading {
			a.loading = true
			a.flash = "Reloading " + a.path + "..."
			return a, a.loadBindings()
		}

	case key.Matches(msg, a.keys.Open):
		if t != nil {
			if b := t.selectedBinding(); b != nil {
				a.pushDetail(*b, true)
			}
		}

	case key.Matches(msg, a.keys.Lookup):
		a.overlay = newShortcutPrompt()
		return a, nil

	case key.Matches(msg, a.keys.Modes):
		if len(a.tabs) > 1 {
			a.overlay = newModePicker(a.modeChoices())
		}
		return a, nil

	case key.Matches(msg, a.keys.Copy):
		if t != nil {
			if b := t.selectedBinding(); b != nil {
				return a, a.copyCommand(*b)
			}
		}

	case key.Matches(msg, a.keys.TabIndex):
		a.switchTab(int(msg.String()[0]-'0') - 1)

	case key.Matches(msg, a.keys.NextTab):
		if len(a.tabs) > 0 {
			a.switchTab((a.activeTab + 1) % len(a.tabs))
		}

	case key.Matches(msg, a.keys.PrevTab):
		if len(a.tabs) > 0 {
			a.switchTab((a.activeTab + len(a.tabs) - 1) % len(a.tabs))
		}

	default:
		// j/k/up/down scrolling
		if t != nil && t.state == tabReady {
			var cmd tea.Cmd
			t.table, cmd = t.table.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

// handleFilterKey routes keypresses when the filter input is focused.
func (a App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &a.tabs[a.activeTab]

	switch msg.String() {
	case "enter":
		t.quickFilter.apply(t.bindings, t.columns)
		t.applyFilter()
		a.resizeTabs()
		return a, nil

	case "esc":
		t.clearFilter()
		a.resizeTabs()
		return a, nil
	}

	var cmd tea.Cmd
	t.quickFilter.input, cmd = t.quickFilter.input.Update(msg)

	// Live filter as the user types
	t.quickFilter.updateQuery(t.bindings, t.columns)
	t.applyFilter()

	return a, cmd
}

// switchTab activates tab idx, clearing the filter of the one left behind.
func (a *App) switchTab(idx int) {
	if idx < 0 || idx >= len(a.tabs) || idx == a.activeTab {
		return
	}
	if t := a.currentTab(); t != nil {
		t.clearFilter()
	}
	a.activeTab = idx
	a.resizeTabs()
}

// pushDetail opens the detail view for b.
func (a *App) pushDetail(b skhdrc.Binding, bound bool) {
	dv := newBindingDetailView(b, bound, a.kb, a.scale, a.width, a.height)
	a.viewStack = append(a.viewStack, &dv)
}

// modeChoices lists the per-mode tabs for the mode picker.
func (a App) modeChoices() []modeChoice {
	var choices []modeChoice
	for i, t := range a.tabs {
		if t.mode == "" {
			continue
		}
		choices = append(choices, modeChoice{tabIndex: i, mode: t.mode, count: len(t.bindings)})
	}
	return choices
}

// handleOverlayResult acts on a completed overlay.
func (a App) handleOverlayResult(result interface{}) (tea.Model, tea.Cmd) {
	a.overlay = nil

	switch r := result.(type) {
	case *modeChoice:
		a.switchTab(r.tabIndex)

	case string:
		sh := shortcut.Parse(r).ReplaceOperators(a.rules)
		if a.table != nil {
			if b, ok := a.table.Lookup(sh); ok {
				a.pushDetail(b, true)
				return a, nil
			}
		}
		a.pushDetail(skhdrc.Binding{Shortcut: sh}, false)
		a.flash = "No binding for " + sh.String()
		a.flashIsErr = true
	}

	return a, nil
}

// copyCommand returns a Cmd that puts the binding's command on the
// clipboard.
func (a App) copyCommand(b skhdrc.Binding) tea.Cmd {
	copyText := a.copyText
	return func() tea.Msg {
		if err := copyText(b.Command); err != nil {
			return flashMsg{text: "Copy failed: " + err.Error(), isErr: true}
		}
		return flashMsg{text: "Copied command of " + b.Shortcut.String()}
	}
}

// tableHeight returns the height available for the bindings table.
func (a App) tableHeight() int {
	// Reserve: tab bar (1) + margin (1) + status/help line (1) + margin (1)
	h := a.height - 4
	if a.activeTab < len(a.tabs) && a.tabs[a.activeTab].quickFilter.isActive() {
		h--
	}
	if h < 3 {
		h = 3
	}
	return h
}

// --- View ---

// View implements tea.Model.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, a.renderTabBar())

	switch {
	case a.overlay != nil:
		sections = append(sections, a.overlay.View(a.width, a.height-2))
	case len(a.viewStack) > 0:
		sections = append(sections, a.renderStackView())
	case a.loading && a.table == nil:
		sections = append(sections, loadingStyle.Render("Reading "+a.path+"..."))
	case a.loadErr != nil && a.table == nil:
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", a.loadErr)))
	case len(a.tabs) > 0:
		sections = append(sections, a.renderActiveTab())
	default:
		sections = append(sections, emptyStyle.Render("No bindings"))
	}

	sections = append(sections, a.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabBar draws the mode tabs across the top.
func (a App) renderTabBar() string {
	if len(a.tabs) == 0 {
		return ""
	}

	var tabs []string
	for i, t := range a.tabs {
		label := fmt.Sprintf(" %d %s ", i+1, t.label)
		if i == a.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return tabBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderActiveTab draws the content of the currently active tab.
func (a App) renderActiveTab() string {
	t := &a.tabs[a.activeTab]

	var parts []string
	if t.quickFilter.isActive() {
		parts = append(parts, a.renderFilterBar(t))
	}

	switch t.state {
	case tabEmpty:
		parts = append(parts, emptyStyle.Render("No bindings"))
	case tabReady:
		parts = append(parts, t.table.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderFilterBar draws the quick filter bar for a tab.
func (a App) renderFilterBar(t *tab) string {
	var bar string
	if t.quickFilter.isFocused() {
		bar = t.quickFilter.input.View()
	} else {
		bar = filterPromptStyle.Render("/ ") + helpStyle.Render(t.quickFilter.query)
	}

	count := filterCountStyle.Render(
		fmt.Sprintf("  %d of %d bindings", t.quickFilter.matched, t.quickFilter.total),
	)
	return filterBarStyle.Render(bar + count)
}

// renderStackView draws the top view on the stack.
func (a App) renderStackView() string {
	if dv := a.topDetail(); dv != nil {
		return dv.View()
	}
	return ""
}

// renderStatusBar draws the bottom help/status line.
func (a App) renderStatusBar() string {
	var parts []string

	if a.path != "" {
		parts = append(parts, successStyle.Render(a.path))
	}

	if a.flash != "" {
		if a.flashIsErr {
			parts = append(parts, errorStyle.Render(a.flash))
		} else {
			parts = append(parts, successStyle.Render(a.flash))
		}
	}

	k := a.keys
	if len(a.viewStack) > 0 {
		parts = append(parts, helpStyle.Render("j/k: scroll  "+helpLine(k.Copy, k.Back, k.Quit)))
	} else {
		parts = append(parts, helpStyle.Render("j/k: navigate  "+
			helpLine(k.Open, k.Filter, k.Lookup, k.Modes, k.Copy, k.Reload, k.TabIndex, k.Quit)))
	}

	return strings.Join(parts, helpStyle.Render("  │  "))
}
