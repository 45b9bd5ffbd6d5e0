package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	flag "github.com/spf13/pflag"

	"github.com/jbeckham/skhd-keys/internal/config"
	"github.com/jbeckham/skhd-keys/internal/keyboard"
	"github.com/jbeckham/skhd-keys/internal/shortcut"
	"github.com/jbeckham/skhd-keys/internal/skhdrc"
	"github.com/jbeckham/skhd-keys/internal/tui"
)

const usage = `Usage: skhd-keys [flags] [command]

Commands:
  browse            browse the bindings of the skhdrc (default)
  show [shortcut]   draw the keyboard with the shortcut's keys highlighted
  dump              print the bindings' commands and comments
  init              write a sample config file

Flags:
`

// options holds the command-line flags. Zero values mean "not given".
type options struct {
	configPath string
	skhdrc     string
	scale      int
	color      string
	format     string
	debug      bool
}

func main() {
	opts, args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogging(os.Stderr, opts.debug)

	command := "browse"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	if command == "init" {
		runInit()
		return
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	colored := applyColor(cfg.Color, os.Stdout)

	switch command {
	case "show":
		err = runShow(os.Stdout, cfg, args, colored)
	case "dump":
		err = runDump(os.Stdout, cfg, opts.format)
	case "browse":
		err = runBrowse(cfg, colored, opts.debug)
	default:
		err = fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses args and returns the remaining positional arguments.
func parseFlags(args []string, out io.Writer) (options, []string, error) {
	var opts options
	fs := flag.NewFlagSet("skhd-keys", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/skhd-keys/config.yaml)")
	fs.StringVarP(&opts.skhdrc, "skhdrc", "f", "", "skhd configuration file to read")
	fs.IntVarP(&opts.scale, "scale", "s", 0, "keyboard render scale: 4, 8 or 12")
	fs.StringVar(&opts.color, "color", "", "highlight colour: auto, always or never")
	fs.StringVar(&opts.format, "format", skhdrc.FormatYAML, "dump format: yaml or json")
	fs.BoolVarP(&opts.debug, "debug", "d", false, "log debug output")
	fs.Usage = func() {
		fmt.Fprint(out, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}

// setupLogging installs a charm logger writing to w as the default slog
// handler.
func setupLogging(w io.Writer, debug bool) {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "skhd-keys",
		ReportTimestamp: debug,
	})
	slog.SetDefault(slog.New(logger))
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist, and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("config loaded", "path", path, "skhdrc", cfg.Skhdrc, "layout", cfg.Layout)

	if opts.skhdrc != "" {
		cfg.Skhdrc = opts.skhdrc
	}
	if opts.scale != 0 {
		cfg.Scale = opts.scale
	}
	if opts.color != "" {
		cfg.Color = opts.color
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyColor sets the lipgloss colour profile for the colour mode and
// reports whether highlights may use escape sequences.
func applyColor(mode string, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
		return false
	}
	if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
		return true
	}
	lipgloss.SetColorProfile(termenv.Ascii)
	return false
}

func painterFor(colored bool) keyboard.Painter {
	if colored {
		return keyboard.ReversePainter
	}
	return keyboard.PlainPainter
}

// demoHighlight is drawn by show when no shortcut is given.
var demoHighlight = []keyboard.Key{keyboard.KeyFn, keyboard.KeyCtrl, keyboard.NewKey("0x2B")}

func runShow(w io.Writer, cfg *config.Config, args []string, colored bool) error {
	kb := cfg.Keyboard().WithPainter(painterFor(colored))

	if len(args) == 0 {
		for _, scale := range []int{4, 8} {
			s, err := kb.Render(scale, demoHighlight)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, s)
		}
		return nil
	}

	sh := shortcut.Parse(strings.Join(args, " ")).ReplaceOperators(cfg.OperatorRenames)
	highlight := keyboard.HighlightFor(sh)
	s, err := kb.Render(cfg.Scale, highlight)
	if err != nil {
		return err
	}
	fmt.Fprint(w, s)

	if missing := kb.Missing(highlight); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, k := range missing {
			names[i] = k.CodeName()
		}
		fmt.Fprintf(w, "not on the %s layout: %s\n", cfg.Layout, strings.Join(names, ", "))
	}

	table, err := parseSkhdrc(cfg)
	if err != nil {
		slog.Warn("skipping binding lookup", "err", err)
		return nil
	}
	b, ok := table.Lookup(sh)
	if !ok {
		fmt.Fprintf(w, "\n%s is not bound\n", sh)
		return nil
	}
	fmt.Fprintln(w)
	for _, line := range strings.Split(b.Comment, "\n") {
		if line != "" {
			fmt.Fprintf(w, "# %s\n", line)
		}
	}
	fmt.Fprintf(w, "%s : %s\n", b.Shortcut, b.Command)
	return nil
}

func runDump(w io.Writer, cfg *config.Config, format string) error {
	table, err := parseSkhdrc(cfg)
	if err != nil {
		return err
	}
	return table.Export(w, format)
}

func runBrowse(cfg *config.Config, colored, debug bool) error {
	path, err := cfg.SkhdrcPath()
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs go to a file or nowhere.
	if debug {
		f, err := tea.LogToFile(filepath.Join(os.TempDir(), "skhd-keys.log"), "skhd-keys")
		if err != nil {
			return err
		}
		defer f.Close()
		setupLogging(f, true)
	} else {
		setupLogging(io.Discard, false)
	}

	app := tui.NewApp(tui.Options{
		Path:     path,
		Rules:    cfg.OperatorRenames,
		Keyboard: cfg.Keyboard().WithPainter(painterFor(colored)),
		Scale:    cfg.Scale,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runInit() {
	if config.DirExists() {
		dir, _ := config.DefaultConfigDir()
		if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err == nil {
			fmt.Printf("%s/config.yaml already exists\n", dir)
			os.Exit(0)
		}
	}
	dir, err := config.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created %s/\n", dir)
	fmt.Printf("  config.yaml  skhdrc path, layout, scale, operator renames\n")
}

func parseSkhdrc(cfg *config.Config) (*skhdrc.Table, error) {
	path, err := cfg.SkhdrcPath()
	if err != nil {
		return nil, err
	}
	return skhdrc.ParseFile(path, cfg.OperatorRenames)
}
