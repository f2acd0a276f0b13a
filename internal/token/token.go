package token

import (
	"fmt"
)

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
	Column  int
}

func NewToken(t TokenType, lexeme string, literal any, line, column int) Token {
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
		Column:  column,
	}
}

// Position returns the 1-based line and column the token starts at.
func (t Token) Position() (line, column int) {
	return t.Line, t.Column
}

// Where names the token in error messages.
func (t Token) Where() string {
	if t.Type == EOF {
		return "at end"
	}
	return fmt.Sprintf("at '%s'", t.Lexeme)
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %#v, Line: %d, Column: %d}", t.Type, t.Lexeme, t.Literal, t.Line, t.Column)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
