package luryerrors

import (
	"fmt"

	"github.com/leonardinius/golury/internal/token"
)

func NewRuntimeError(tok *token.Token, cause error) error {
	return &RuntimeError{Token: tok, cause: cause}
}

// RuntimeError ties an evaluation failure to the operator token it happened at.
type RuntimeError struct {
	Token *token.Token
	cause error
}

// Error implements error.
func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%v\n[line %d:%d] in script", r.cause, r.Token.Line, r.Token.Column)
}

// Message describes the error without its position.
func (r *RuntimeError) Message() string {
	return r.cause.Error()
}

func (r *RuntimeError) Position() (line, column int) {
	return r.Token.Position()
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

var _ error = (*RuntimeError)(nil)
var _ wrapper = (*RuntimeError)(nil)
var _ located = (*RuntimeError)(nil)
