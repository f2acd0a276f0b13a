package interpreter

import (
	"github.com/leonardinius/golury/internal/logger"
	"github.com/leonardinius/golury/internal/parser"
	"github.com/leonardinius/golury/internal/token"
	"github.com/leonardinius/golury/internal/value"
)

// linter records warnings for expressions that evaluate fine but are
// probably not what the author meant.
type linter struct {
	outputs *logger.OutputLogger
	at      func(*token.Token) []logger.OutputOption
}

func newLinter(outputs *logger.OutputLogger, at func(*token.Token) []logger.OutputOption) *linter {
	return &linter{outputs: outputs, at: at}
}

func (l *linter) lint(expressions []parser.Expr) {
	for _, expr := range expressions {
		_, _ = parser.Accept[struct{}](expr, l)
	}
}

// VisitExprBinary implements parser.ExprVisitor.
func (l *linter) VisitExprBinary(expr *parser.ExprBinary) (struct{}, error) {
	if isBoolLiteral(expr.Left) || isBoolLiteral(expr.Right) {
		l.outputs.RecordWarning(logger.WarnRedundantComparison,
			append(l.at(expr.Operator), logger.WithCode(expr.Operator.Lexeme))...)
	}
	l.walk(expr.Left, expr.Right)
	return struct{}{}, nil
}

// VisitExprGrouping implements parser.ExprVisitor.
func (l *linter) VisitExprGrouping(expr *parser.ExprGrouping) (struct{}, error) {
	l.walk(expr.Expression)
	return struct{}{}, nil
}

// VisitExprLiteral implements parser.ExprVisitor.
func (l *linter) VisitExprLiteral(expr *parser.ExprLiteral) (struct{}, error) {
	return struct{}{}, nil
}

// VisitExprLogical implements parser.ExprVisitor.
//
// A literal left operand that decides the result, `true or x` or
// `false and x`, leaves the right operand unevaluated.
func (l *linter) VisitExprLogical(expr *parser.ExprLogical) (struct{}, error) {
	if literal, ok := expr.Left.(*parser.ExprLiteral); ok {
		isOr := expr.Operator.Type == token.OR || expr.Operator.Type == token.PIPE_PIPE
		if b, ok := literal.Value.(value.Bool); ok && b.Bool() == isOr {
			l.outputs.RecordWarning(logger.WarnConstantCondition,
				append(l.at(expr.Operator), logger.WithCode(expr.Operator.Lexeme),
					logger.WithAppendix("the right operand is never evaluated"))...)
		}
	}
	l.walk(expr.Left, expr.Right)
	return struct{}{}, nil
}

// VisitExprUnary implements parser.ExprVisitor.
func (l *linter) VisitExprUnary(expr *parser.ExprUnary) (struct{}, error) {
	if _, ok := expr.Right.(*parser.ExprUnary); ok {
		l.outputs.RecordWarning(logger.WarnDoubleNegation,
			append(l.at(expr.Operator), logger.WithCode(expr.Operator.Lexeme))...)
		// report a chain once
		l.walk(expr.Right.(*parser.ExprUnary).Right)
		return struct{}{}, nil
	}
	l.walk(expr.Right)
	return struct{}{}, nil
}

func (l *linter) walk(exprs ...parser.Expr) {
	for _, expr := range exprs {
		_, _ = parser.Accept[struct{}](expr, l)
	}
}

func isBoolLiteral(expr parser.Expr) bool {
	literal, ok := expr.(*parser.ExprLiteral)
	if !ok {
		return false
	}
	_, ok = literal.Value.(value.Bool)
	return ok
}

var _ parser.ExprVisitor[struct{}] = (*linter)(nil)
