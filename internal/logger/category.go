package logger

import "fmt"

// OutputCategory is the severity of a CompileOutput.
type OutputCategory uint8

const (
	Error OutputCategory = iota
	Warn
	Info
)

func (c OutputCategory) String() string {
	switch c {
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	case Info:
		return "INFO"
	}
	return fmt.Sprintf("OutputCategory(%d)", uint8(c))
}

// Prefix is the one-letter tag used in output codes, e.g. E0003.
func (c OutputCategory) Prefix() string {
	switch c {
	case Error:
		return "E"
	case Warn:
		return "W"
	case Info:
		return "I"
	}
	return "?"
}

// ErrorCategory, WarnCategory and InfoCategory are independent numbering
// spaces. The same integer means different things under each severity.
type (
	ErrorCategory int
	WarnCategory  int
	InfoCategory  int
)

const (
	ErrUnknown ErrorCategory = iota
	ErrUnexpectedCharacter
	ErrUnterminatedString
	ErrUnexpectedToken
	ErrExpectedRightParen
	ErrNilReference
	ErrUnsupportedBinaryOperation
	ErrUnsupportedUnaryOperation
	ErrUnknownIdentifier
)

const (
	WarnUnknown WarnCategory = iota
	WarnRedundantComparison
	WarnDoubleNegation
	WarnConstantCondition
)

const (
	InfoUnknown InfoCategory = iota
	InfoExpressionEvaluated
	InfoSessionStarted
)

var errorMessages = map[ErrorCategory]string{
	ErrUnknown:                    "unknown error",
	ErrUnexpectedCharacter:        "unexpected character",
	ErrUnterminatedString:         "unterminated string literal",
	ErrUnexpectedToken:            "expected expression",
	ErrExpectedRightParen:         "expected ')' after expression",
	ErrNilReference:               "operation requires a second operand",
	ErrUnsupportedBinaryOperation: "operator is not defined for the operand types",
	ErrUnsupportedUnaryOperation:  "operator is not defined for the operand type",
	ErrUnknownIdentifier:          "unknown identifier",
}

var warnMessages = map[WarnCategory]string{
	WarnUnknown:             "unknown warning",
	WarnRedundantComparison: "comparison with a boolean literal is redundant",
	WarnDoubleNegation:      "double negation has no effect",
	WarnConstantCondition:   "condition is always constant",
}

var infoMessages = map[InfoCategory]string{
	InfoUnknown:             "information",
	InfoExpressionEvaluated: "expression evaluated",
	InfoSessionStarted:      "session started",
}

func (c ErrorCategory) Message() string { return lookupMessage(errorMessages, c) }
func (c WarnCategory) Message() string  { return lookupMessage(warnMessages, c) }
func (c InfoCategory) Message() string  { return lookupMessage(infoMessages, c) }

func lookupMessage[K ~int](messages map[K]string, k K) string {
	if msg, ok := messages[k]; ok {
		return msg
	}
	return fmt.Sprintf("undefined category %d", int(k))
}
