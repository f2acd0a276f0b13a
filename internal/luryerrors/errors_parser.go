package luryerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/golury/internal/token"
)

var (
	ErrParseUnexpectedToken         = errors.New("expected expression.")
	ErrParseExpectedRightParenToken = errors.New("expected ')' after expression.")
	ErrParseExpectedSeparator       = errors.New("expected ';' between expressions.")
)

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{Token: tok, cause: cause}
}

type ParserError struct {
	Token *token.Token
	cause error
}

// Error implements error.
func (p *ParserError) Error() string {
	return fmt.Sprintf("[line %d:%d] %s", p.Token.Line, p.Token.Column, p.Message())
}

// Message describes the error without its position.
func (p *ParserError) Message() string {
	return fmt.Sprintf("parse error %s: %v", p.Token.Where(), p.cause)
}

func (p *ParserError) Position() (line, column int) {
	return p.Token.Position()
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
var _ wrapper = (*ParserError)(nil)
var _ located = (*ParserError)(nil)
