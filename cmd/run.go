package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/leonardinius/golury/internal/diagfmt"
	"github.com/leonardinius/golury/internal/interpreter"
	"github.com/leonardinius/golury/internal/logger"
)

func (app *LuryApp) newInterpreter(s *settings, outputs *logger.OutputLogger, options ...interpreter.InterpreterOption) interpreter.Interpreter {
	return interpreter.NewInterpreter(append([]interpreter.InterpreterOption{
		interpreter.WithOutputLogger(outputs),
		interpreter.WithErrorReporter(app.reporter),
		interpreter.WithLog(s.log),
		interpreter.WithLint(s.lint),
		interpreter.WithTrace(s.trace),
	}, options...)...)
}

func (app *LuryApp) runFile(ctx context.Context, s *settings, scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	outputs := logger.NewOutputLogger()
	eval := app.newInterpreter(s, outputs, interpreter.WithFileName(scriptPath))

	out, runErr := eval.Run(ctx, string(bytes))
	if runErr == nil {
		fmt.Fprintln(app.stdout, out)
	}

	s.log.Debug().Str("script", scriptPath).Int("outputs", outputs.Len()).Msg("recorded diagnostics")
	if err := diagfmt.Render(app.stderr, outputs.Outputs(), s.render); err != nil {
		return err
	}

	if outputs.HasErrors() || runErr != nil {
		return &exitError{code: exitDataErr}
	}
	return nil
}
