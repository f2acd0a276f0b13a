package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leonardinius/golury/internal/config"
	"github.com/leonardinius/golury/internal/diagfmt"
)

type globalFlags struct {
	configPath     string
	format         string
	color          string
	logLevel       string
	maxDiagnostics int
	jobs           int
	trace          bool
	noLint         bool
}

func (f *globalFlags) register(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to "+config.FileName+" (default: ./"+config.FileName+" when present)")
	pf.StringVar(&f.format, "format", "", "diagnostics format (text|json|msgpack)")
	pf.StringVar(&f.color, "color", "", "colorize output (auto|on|off)")
	pf.StringVar(&f.logLevel, "log-level", "warn", "log level (debug|info|warn|error|disabled)")
	pf.IntVar(&f.maxDiagnostics, "max-diagnostics", 0, "maximum number of diagnostics to show")
	pf.IntVar(&f.jobs, "jobs", 0, "number of scripts checked in parallel")
	pf.BoolVar(&f.trace, "trace", false, "record an info diagnostic for every evaluated expression")
	pf.BoolVar(&f.noLint, "no-lint", false, "do not report lint warnings")
}

// settings is the configuration file merged with command line flags.
type settings struct {
	render diagfmt.Options
	lint   bool
	trace  bool
	jobs   int
	log    zerolog.Logger
}

func (app *LuryApp) settings(cmd *cobra.Command, flags *globalFlags) (*settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, cfgPath, err := config.Find(flags.configPath, wd)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Output.Format = flags.format
	}
	if changed("color") {
		cfg.Output.Color = flags.color
	}
	if changed("max-diagnostics") {
		cfg.Output.MaxDiagnostics = flags.maxDiagnostics
	}
	if changed("jobs") {
		cfg.Run.Jobs = flags.jobs
	}
	if changed("trace") {
		cfg.Run.Trace = flags.trace
	}
	if changed("no-lint") {
		cfg.Lint.Warnings = !flags.noLint
	}

	format, err := diagfmt.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	colored, err := colorEnabled(cfg.Output.Color, app.stdout)
	if err != nil {
		return nil, err
	}
	if cfg.Output.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("--max-diagnostics must not be negative, got %d", cfg.Output.MaxDiagnostics)
	}
	if cfg.Run.Jobs < 1 {
		return nil, fmt.Errorf("--jobs must be at least 1")
	}
	log, err := newLog(app.stderr, flags.logLevel, colored)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("config", cfgPath).Str("format", string(format)).Bool("color", colored).Msg("settings resolved")

	return &settings{
		render: diagfmt.Options{Format: format, Color: colored, MaxOutputs: cfg.Output.MaxDiagnostics},
		lint:   cfg.Lint.Warnings,
		trace:  cfg.Run.Trace,
		jobs:   cfg.Run.Jobs,
		log:    log,
	}, nil
}

func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}
	return false, fmt.Errorf("--color must be auto, on or off, got %q", mode)
}

func newLog(w io.Writer, level string, colored bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("--log-level: %w", err)
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: !colored}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
