package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leonardinius/golury/internal/luryerrors"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
)

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type LuryApp struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	reporter luryerrors.ErrReporter
}

type AppOption func(*LuryApp)

func WithStdin(stdin io.Reader) AppOption {
	return func(app *LuryApp) {
		app.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(app *LuryApp) {
		app.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(app *LuryApp) {
		app.stderr = stderr
	}
}

func NewLuryApp(options ...AppOption) *LuryApp {
	app := &LuryApp{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range options {
		opt(app)
	}
	app.reporter = luryerrors.NewErrReporter(app.stderr)
	return app
}

// Main runs the command line and returns the process exit code.
func (app *LuryApp) Main(args []string) int {
	root := app.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return exitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	app.reporter.ReportError(err)
	return exitUsage
}

func (app *LuryApp) rootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "golury [script]",
		Short: "Evaluate Lury boolean expressions",
		Long: `golury evaluates Lury expressions built from true, false, strings,
!, not, and, &&, or, ||, == and !=.

Without arguments it starts an interactive prompt.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.settings(cmd, flags)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return app.runFile(cmd.Context(), s, args[0])
			}
			return app.runPrompt(cmd.Context(), s)
		},
	}
	root.SetIn(app.stdin)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	flags.register(root)

	root.AddCommand(
		app.runCommand(flags),
		app.checkCommand(flags),
		app.parseCommand(flags),
	)

	return root
}

func (app *LuryApp) runCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Evaluate a script and print the last result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.settings(cmd, flags)
			if err != nil {
				return err
			}
			return app.runFile(cmd.Context(), s, args[0])
		},
	}
}
