package parser

import (
	"strings"
)

// RPNPrinter renders an expression in reverse polish notation.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitExprBinary implements ExprVisitor.
func (p *RPNPrinter) VisitExprBinary(expr *ExprBinary) (string, error) {
	return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitExprGrouping implements ExprVisitor.
func (p *RPNPrinter) VisitExprGrouping(expr *ExprGrouping) (string, error) {
	return p.reverse("", expr.Expression)
}

// VisitExprLiteral implements ExprVisitor.
func (p *RPNPrinter) VisitExprLiteral(expr *ExprLiteral) (string, error) {
	return expr.Value.String(), nil
}

// VisitExprLogical implements ExprVisitor.
func (p *RPNPrinter) VisitExprLogical(expr *ExprLogical) (string, error) {
	return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitExprUnary implements ExprVisitor.
func (p *RPNPrinter) VisitExprUnary(expr *ExprUnary) (string, error) {
	return p.reverse(expr.Operator.Lexeme, expr.Right)
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) (string, error) {
	parts := make([]string, 0, len(exprs)+1)
	for _, expr := range exprs {
		s, err := Accept[string](expr, p)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, " "), nil
}

func (p *RPNPrinter) Print(expr Expr) (string, error) {
	return Accept[string](expr, p)
}

var _ ExprVisitor[string] = (*RPNPrinter)(nil)
