package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leonardinius/golury/internal/luryerrors"
	"github.com/leonardinius/golury/internal/parser"
	"github.com/leonardinius/golury/internal/scanner"
)

func (app *LuryApp) parseCommand(flags *globalFlags) *cobra.Command {
	var rpn bool

	cmd := &cobra.Command{
		Use:   "parse <script>",
		Short: "Print the syntax tree of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.settings(cmd, flags); err != nil {
				return err
			}

			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tokens, err := scanner.NewScanner(string(source)).Scan()
			if err != nil {
				return app.syntaxError(args[0], err)
			}
			exprs, err := parser.NewParser(tokens).Parse()
			if err != nil {
				return app.syntaxError(args[0], err)
			}

			var printer parser.ExprVisitor[string] = parser.NewAstPrinter()
			if rpn {
				printer = parser.NewRPNPrinter()
			}
			for _, expr := range exprs {
				out, err := parser.Accept(expr, printer)
				if err != nil {
					return err
				}
				fmt.Fprintln(app.stdout, out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&rpn, "rpn", false, "print in reverse polish notation")

	return cmd
}

// syntaxError reports every scanner or parser error of the script on its own line.
func (app *LuryApp) syntaxError(path string, err error) error {
	app.reporter.ReportError(luryerrors.NewFileError(path, err))
	return &exitError{code: exitDataErr}
}
