package parser

import (
	"fmt"

	"github.com/leonardinius/golury/internal/token"
	"github.com/leonardinius/golury/internal/value"
)

// ExprVisitor is implemented by every pass over the expression tree.
type ExprVisitor[R any] interface {
	VisitExprBinary(exprBinary *ExprBinary) (R, error)
	VisitExprGrouping(exprGrouping *ExprGrouping) (R, error)
	VisitExprLiteral(exprLiteral *ExprLiteral) (R, error)
	VisitExprLogical(exprLogical *ExprLogical) (R, error)
	VisitExprUnary(exprUnary *ExprUnary) (R, error)
}

// Expr is a node of the expression tree.
type Expr interface {
	// Start returns the first token of the expression.
	Start() *token.Token
	expr()
}

// Accept dispatches expr to the matching visitor method.
func Accept[R any](expr Expr, v ExprVisitor[R]) (R, error) {
	switch e := expr.(type) {
	case *ExprBinary:
		return v.VisitExprBinary(e)
	case *ExprGrouping:
		return v.VisitExprGrouping(e)
	case *ExprLiteral:
		return v.VisitExprLiteral(e)
	case *ExprLogical:
		return v.VisitExprLogical(e)
	case *ExprUnary:
		return v.VisitExprUnary(e)
	}
	var zero R
	return zero, fmt.Errorf("unexpected expression %T", expr)
}

// ExprBinary is an equality comparison, == or !=.
type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

// ExprGrouping is a parenthesized expression.
type ExprGrouping struct {
	Paren      *token.Token
	Expression Expr
}

// ExprLiteral is a literal boolean or string.
type ExprLiteral struct {
	Token *token.Token
	Value value.Value
}

// ExprLogical is a conjunction or disjunction.
type ExprLogical struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

// ExprUnary is a logical negation.
type ExprUnary struct {
	Operator *token.Token
	Right    Expr
}

func (e *ExprBinary) Start() *token.Token   { return e.Left.Start() }
func (e *ExprGrouping) Start() *token.Token { return e.Paren }
func (e *ExprLiteral) Start() *token.Token  { return e.Token }
func (e *ExprLogical) Start() *token.Token  { return e.Left.Start() }
func (e *ExprUnary) Start() *token.Token    { return e.Operator }

func (*ExprBinary) expr()   {}
func (*ExprGrouping) expr() {}
func (*ExprLiteral) expr()  {}
func (*ExprLogical) expr()  {}
func (*ExprUnary) expr()    {}

var (
	_ Expr = (*ExprBinary)(nil)
	_ Expr = (*ExprGrouping)(nil)
	_ Expr = (*ExprLiteral)(nil)
	_ Expr = (*ExprLogical)(nil)
	_ Expr = (*ExprUnary)(nil)
)
