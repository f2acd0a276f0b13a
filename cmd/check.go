package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leonardinius/golury/internal/diagfmt"
	"github.com/leonardinius/golury/internal/interpreter"
	"github.com/leonardinius/golury/internal/logger"
)

func (app *LuryApp) checkCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <script>...",
		Short: "Evaluate scripts in parallel and report their diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.settings(cmd, flags)
			if err != nil {
				return err
			}

			outputs, err := app.check(cmd.Context(), s, args)
			if err != nil {
				return err
			}

			if err := diagfmt.Render(app.stdout, outputs.Outputs(), s.render); err != nil {
				return err
			}
			if outputs.HasErrors() {
				return &exitError{code: exitDataErr}
			}
			return nil
		},
	}
}

// check evaluates every script with its own interpreter and output logger,
// then merges the loggers in argument order.
func (app *LuryApp) check(ctx context.Context, s *settings, scripts []string) (*logger.OutputLogger, error) {
	perScript := make([]*logger.OutputLogger, len(scripts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.jobs)
	for i, script := range scripts {
		g.Go(func() error {
			source, err := os.ReadFile(script)
			if err != nil {
				return err
			}

			outputs := logger.NewOutputLogger()
			eval := app.newInterpreter(s, outputs, interpreter.WithFileName(script))
			if _, err := eval.Run(ctx, string(source)); err != nil {
				// recorded already, unless the run was cancelled
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
			}

			s.log.Debug().Str("script", script).Int("outputs", outputs.Len()).Msg("checked script")
			perScript[i] = outputs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := logger.NewOutputLogger()
	for _, outputs := range perScript {
		merged.Merge(outputs)
	}
	return merged, nil
}
