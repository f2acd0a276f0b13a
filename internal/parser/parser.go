package parser

import (
	"errors"
	"fmt"

	"github.com/leonardinius/golury/internal/luryerrors"
	"github.com/leonardinius/golury/internal/token"
	"github.com/leonardinius/golury/internal/value"
)

var (
	nilExpr        Expr   = nil
	nilExpressions []Expr = nil
)

type Parser interface {
	Parse() ([]Expr, error)
}

type parser struct {
	tokens  []token.Token
	current int
	err     error
}

func NewParser(tokens []token.Token) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}

	return &parser{
		tokens:  tokens,
		current: 0,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
//
// Expressions are separated by ';', the last one may omit it.
func (p *parser) Parse() (expressions []Expr, err error) {
	var expr Expr
	for !p.isDone() {
		expr, err = p.separated(), p.err
		if err != nil {
			break
		}
		expressions = append(expressions, expr)
	}

	if err == nil {
		return expressions, nil
	}

	// if we are at error state, we do not return invalid ast tree
	// keep parsing to collect the remaining errors
	errs := []error{p.err}
	for !p.isAtEnd() {
		if p.err != nil {
			p.synchronize()
			p.err = nil
			continue
		}
		if _ = p.separated(); p.err != nil {
			errs = append(errs, p.err)
		}
	}
	return nilExpressions, errors.Join(errs...)
}

func (p *parser) separated() Expr {
	expr := p.expression()
	if p.err != nil {
		return nilExpr
	}

	if !p.match(token.SEMICOLON) && !p.isAtEnd() {
		return p.reportExprError(luryerrors.ErrParseExpectedSeparator)
	}

	return expr
}

func (p *parser) expression() Expr {
	return p.logicOr()
}

func (p *parser) logicOr() Expr {
	expr := p.logicAnd()

	for p.anyMatch(token.OR, token.PIPE_PIPE) {
		operator := p.previous()
		right := p.logicAnd()
		expr = &ExprLogical{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) logicAnd() Expr {
	expr := p.equality()

	for p.anyMatch(token.AND, token.AMP_AMP) {
		operator := p.previous()
		right := p.equality()
		expr = &ExprLogical{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) equality() Expr {
	expr := p.unary()

	for p.anyMatch(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.unary()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) unary() Expr {
	if p.anyMatch(token.BANG, token.NOT) {
		operator := p.previous()
		right := p.unary()
		if p.err != nil {
			return nilExpr
		}
		return &ExprUnary{
			Operator: operator,
			Right:    right,
		}
	}

	return p.primary()
}

func (p *parser) primary() Expr {
	if p.match(token.FALSE) {
		return &ExprLiteral{Token: p.previous(), Value: value.False()}
	}
	if p.match(token.TRUE) {
		return &ExprLiteral{Token: p.previous(), Value: value.True()}
	}

	if p.match(token.STRING) {
		tok := p.previous()
		return &ExprLiteral{Token: tok, Value: value.NewString(tok.Literal.(string))}
	}

	return p.grouping()
}

func (p *parser) grouping() Expr {
	if p.match(token.LEFT_PAREN) {
		paren := p.previous()
		expr := p.expression()
		if !p.match(token.RIGHT_PAREN) {
			return p.reportExprError(luryerrors.ErrParseExpectedRightParenToken)
		}
		return &ExprGrouping{Paren: paren, Expression: expr}
	}

	return p.reportExprError(luryerrors.ErrParseUnexpectedToken)
}

func (p *parser) anyMatch(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isDone() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// Be careful with isAtEnd, it does not check for parse errors.
// Use isDone instead.
// isAtEnd is used from top level Parse, synchronize and advance only.
func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

func (p *parser) reportExprError(err error) Expr {
	return p.reportTokenExprError(p.peek(), err)
}

func (p *parser) reportTokenExprError(tok *token.Token, err error) Expr {
	if p.err != nil {
		return nilExpr
	}
	p.err = luryerrors.NewParseError(tok, err)
	return nilExpr
}

// synchronize skips tokens up to and including the next ';'.
func (p *parser) synchronize() {
	for !p.isAtEnd() {
		if p.advance().Type == token.SEMICOLON {
			return
		}
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
