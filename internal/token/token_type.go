package token

import "strconv"

type TokenType uint8

const (
	// Single-character tokens.
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	SEMICOLON

	// One or two character tokens.
	BANG
	BANG_EQUAL
	EQUAL_EQUAL
	AMP_AMP
	PIPE_PIPE

	// Literals.
	STRING

	// Keywords.
	AND
	FALSE
	NOT
	OR
	TRUE

	EOF
)

var tokenTypeNames = [...]string{
	LEFT_PAREN:  "LEFT_PAREN",
	RIGHT_PAREN: "RIGHT_PAREN",
	SEMICOLON:   "SEMICOLON",
	BANG:        "BANG",
	BANG_EQUAL:  "BANG_EQUAL",
	EQUAL_EQUAL: "EQUAL_EQUAL",
	AMP_AMP:     "AMP_AMP",
	PIPE_PIPE:   "PIPE_PIPE",
	STRING:      "STRING",
	AND:         "AND",
	FALSE:       "FALSE",
	NOT:         "NOT",
	OR:          "OR",
	TRUE:        "TRUE",
	EOF:         "EOF",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}
