package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/leonardinius/golury/internal/diagfmt"
	"github.com/leonardinius/golury/internal/interpreter"
	"github.com/leonardinius/golury/internal/logger"
)

// session evaluates prompt lines one at a time. The output logger is
// cleared after every line.
type session struct {
	eval    interpreter.Interpreter
	outputs *logger.OutputLogger
	render  diagfmt.Options
	trace   bool
	stdout  io.Writer
	stderr  io.Writer
}

func (app *LuryApp) newSession(s *settings) *session {
	outputs := logger.NewOutputLogger()
	return &session{
		eval:    app.newInterpreter(s, outputs),
		outputs: outputs,
		render:  s.render,
		trace:   s.trace,
		stdout:  app.stdout,
		stderr:  app.stderr,
	}
}

// start records the session start when tracing.
func (s *session) start() error {
	if !s.trace {
		return nil
	}
	defer s.outputs.Clear()

	s.outputs.RecordInfo(logger.InfoSessionStarted, logger.WithAppendix("enter expressions separated by ';', end input to quit"))
	return diagfmt.Render(s.stderr, s.outputs.Outputs(), s.render)
}

func (s *session) evalLine(ctx context.Context, line string) error {
	defer s.outputs.Clear()

	out, err := s.eval.Run(ctx, line)
	if err == nil && out != "" {
		fmt.Fprintln(s.stdout, out)
	}
	return diagfmt.Render(s.stderr, s.outputs.Outputs(), s.render)
}

func (app *LuryApp) runPrompt(ctx context.Context, s *settings) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
		Stdin:  io.NopCloser(app.stdin),
		Stdout: app.stdout,
		Stderr: app.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	sess := app.newSession(s)
	if err := sess.start(); err != nil {
		return err
	}
	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return err
		}

		if err := sess.evalLine(ctx, line); err != nil {
			app.reporter.ReportError(err)
		}
	}
}
