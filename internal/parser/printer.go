package parser

import (
	"strings"
)

// AstPrinter renders an expression as a parenthesized prefix tree.
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitExprBinary implements ExprVisitor.
func (p *AstPrinter) VisitExprBinary(expr *ExprBinary) (string, error) {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitExprGrouping implements ExprVisitor.
func (p *AstPrinter) VisitExprGrouping(expr *ExprGrouping) (string, error) {
	return p.parenthesize("group", expr.Expression)
}

// VisitExprLiteral implements ExprVisitor.
func (p *AstPrinter) VisitExprLiteral(expr *ExprLiteral) (string, error) {
	return expr.Value.String(), nil
}

// VisitExprLogical implements ExprVisitor.
func (p *AstPrinter) VisitExprLogical(expr *ExprLogical) (string, error) {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitExprUnary implements ExprVisitor.
func (p *AstPrinter) VisitExprUnary(expr *ExprUnary) (string, error) {
	return p.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) (string, error) {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		s, err := Accept[string](expr, p)
		if err != nil {
			return "", err
		}
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(s)
	}
	_, _ = out.WriteString(")")
	return out.String(), nil
}

func (p *AstPrinter) Print(expr Expr) (string, error) {
	return Accept[string](expr, p)
}

var _ ExprVisitor[string] = (*AstPrinter)(nil)
