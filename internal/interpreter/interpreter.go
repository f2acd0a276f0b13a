package interpreter

import (
	"context"
	"fmt"
	"strings"

	"github.com/leonardinius/golury/internal/logger"
	"github.com/leonardinius/golury/internal/luryerrors"
	"github.com/leonardinius/golury/internal/parser"
	"github.com/leonardinius/golury/internal/scanner"
	"github.com/leonardinius/golury/internal/token"
	"github.com/leonardinius/golury/internal/value"
)

type Interpreter interface {
	// Run scans, parses and interprets source.
	// Syntax and evaluation failures are recorded to the output logger
	// and returned.
	//
	// Not thread safe.
	Run(ctx context.Context, source string) (string, error)

	// Interpret interprets the given expressions.
	// Returns the stringified result of the last expression and an error if any.
	//
	// Not thread safe.
	Interpret(ctx context.Context, expressions []parser.Expr) (string, error)

	// Evaluate evaluates a single expression.
	//
	// Not thread safe.
	Evaluate(ctx context.Context, expr parser.Expr) (value.Value, error)

	// Outputs returns the logger diagnostics are recorded to.
	Outputs() *logger.OutputLogger
}

type interpreter struct {
	opts  *interpreterOpts
	lines []string
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	i := &interpreter{opts: newInterpreterOpts(options...)}
	i.setSource(i.opts.source)
	return i
}

// Outputs implements Interpreter.
func (i *interpreter) Outputs() *logger.OutputLogger {
	return i.opts.outputs
}

// Run implements Interpreter.
func (i *interpreter) Run(ctx context.Context, source string) (string, error) {
	i.setSource(source)

	tokens, err := scanner.NewScanner(source).Scan()
	if err != nil {
		i.recordSyntaxError(err)
		return "", err
	}

	expressions, err := parser.NewParser(tokens).Parse()
	if err != nil {
		i.recordSyntaxError(err)
		return "", err
	}

	return i.Interpret(ctx, expressions)
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(ctx context.Context, expressions []parser.Expr) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("interpreter panic: %v", r)
			i.opts.reporter.ReportPanic(err)
		}
	}()

	if i.opts.lint {
		newLinter(i.opts.outputs, i.at).lint(expressions)
	}

	var last value.Value
	for _, expr := range expressions {
		if err = ctx.Err(); err != nil {
			return "", err
		}

		last, err = i.Evaluate(ctx, expr)
		if err != nil {
			return "", err
		}

		i.opts.log.Debug().
			Int("line", expr.Start().Line).
			Stringer("result", last).
			Msg("evaluated expression")

		if i.opts.trace {
			i.opts.outputs.RecordInfo(logger.InfoExpressionEvaluated,
				append(i.at(expr.Start()), logger.WithAppendix(last.String()))...)
		}
	}

	if last == nil {
		return "", nil
	}
	return last.String(), nil
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(ctx context.Context, expr parser.Expr) (value.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return parser.Accept[value.Value](expr, i)
}

// VisitExprBinary implements parser.ExprVisitor.
func (i *interpreter) VisitExprBinary(expr *parser.ExprBinary) (value.Value, error) {
	left, err := parser.Accept[value.Value](expr.Left, i)
	if err != nil {
		return nil, err
	}
	right, err := parser.Accept[value.Value](expr.Right, i)
	if err != nil {
		return nil, err
	}

	result, err := left.Equal(right)
	if err != nil {
		return nil, i.fail(expr.Operator, err)
	}

	switch expr.Operator.Type {
	case token.EQUAL_EQUAL:
		return result, nil
	case token.BANG_EQUAL:
		return result.Not()
	}

	return i.unreachable(expr.Operator)
}

// VisitExprGrouping implements parser.ExprVisitor.
func (i *interpreter) VisitExprGrouping(expr *parser.ExprGrouping) (value.Value, error) {
	return parser.Accept[value.Value](expr.Expression, i)
}

// VisitExprLiteral implements parser.ExprVisitor.
func (i *interpreter) VisitExprLiteral(expr *parser.ExprLiteral) (value.Value, error) {
	return expr.Value, nil
}

// VisitExprLogical implements parser.ExprVisitor.
//
// The right operand is not evaluated when a boolean left operand already
// decides the result.
func (i *interpreter) VisitExprLogical(expr *parser.ExprLogical) (value.Value, error) {
	left, err := parser.Accept[value.Value](expr.Left, i)
	if err != nil {
		return nil, err
	}

	isOr := expr.Operator.Type == token.OR || expr.Operator.Type == token.PIPE_PIPE
	if b, ok := left.(value.Bool); ok && b.Bool() == isOr {
		return left, nil
	}

	right, err := parser.Accept[value.Value](expr.Right, i)
	if err != nil {
		return nil, err
	}

	var result value.Value
	switch expr.Operator.Type {
	case token.AND, token.AMP_AMP:
		result, err = left.And(right)
	case token.OR, token.PIPE_PIPE:
		result, err = left.Or(right)
	default:
		return i.unreachable(expr.Operator)
	}
	if err != nil {
		return nil, i.fail(expr.Operator, err)
	}

	return result, nil
}

// VisitExprUnary implements parser.ExprVisitor.
func (i *interpreter) VisitExprUnary(expr *parser.ExprUnary) (value.Value, error) {
	right, err := parser.Accept[value.Value](expr.Right, i)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.BANG, token.NOT:
		result, err := right.Not()
		if err != nil {
			return nil, i.fail(expr.Operator, err)
		}
		return result, nil
	}

	return i.unreachable(expr.Operator)
}

// fail records a value error raised at tok and wraps it with the token position.
func (i *interpreter) fail(tok *token.Token, err error) error {
	category := logger.ErrUnknown
	if kind, ok := luryerrors.KindOf(err); ok {
		category = errorCategories[kind]
	}

	i.opts.outputs.RecordError(category,
		append(i.at(tok), logger.WithCode(tok.Lexeme), logger.WithAppendix(err.Error()))...)

	return luryerrors.NewRuntimeError(tok, err)
}

func (i *interpreter) unreachable(tok *token.Token) (value.Value, error) {
	panic(fmt.Sprintf("unreachable: operator %s", tok.Type))
}

func (i *interpreter) setSource(source string) {
	i.lines = strings.Split(source, "\n")
}

// excerpt returns the source line, 1-based.
func (i *interpreter) excerpt(line int) string {
	if line < 1 || line > len(i.lines) {
		return ""
	}
	return strings.TrimRight(i.lines[line-1], "\r")
}

// at returns the position options for an output about tok.
func (i *interpreter) at(tok *token.Token) []logger.OutputOption {
	return i.atPosition(tok.Line, tok.Column)
}

func (i *interpreter) atPosition(line, column int) []logger.OutputOption {
	options := []logger.OutputOption{logger.WithPosition(logger.CharPosition{Line: line, Column: column})}
	if excerpt := i.excerpt(line); excerpt != "" {
		options = append(options, logger.WithSourceCode(excerpt))
	}
	if i.opts.fileName != "" {
		options = append(options, logger.WithFile(i.opts.fileName))
	}
	return options
}

var errorCategories = map[luryerrors.Kind]logger.ErrorCategory{
	luryerrors.KindNilReference:               logger.ErrNilReference,
	luryerrors.KindUnsupportedBinaryOperation: logger.ErrUnsupportedBinaryOperation,
	luryerrors.KindUnsupportedUnaryOperation:  logger.ErrUnsupportedUnaryOperation,
}

var _ parser.ExprVisitor[value.Value] = (*interpreter)(nil)
var _ Interpreter = (*interpreter)(nil)
