package luryerrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character.")
	ErrScanUnterminatedString  = errors.New("Unterminated string.")
	ErrScanUnknownIdentifier   = errors.New("Unknown identifier.")
)

type ScannerError struct {
	Line    int
	Column  int
	cause   error
	details string
}

func NewScanError(line, column int, cause error, details string) *ScannerError {
	return &ScannerError{Line: line, Column: column, cause: cause, details: details}
}

// Error implements error.
func (s *ScannerError) Error() string {
	return fmt.Sprintf("[line %d:%d] Error: %s", s.Line, s.Column, s.Message())
}

// Message describes the error without its position.
func (s *ScannerError) Message() string {
	if s.details == "" {
		return s.cause.Error()
	}
	return s.cause.Error() + " " + s.details
}

func (s *ScannerError) Position() (line, column int) {
	return s.Line, s.Column
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

// Details returns the offending input, if any.
func (s *ScannerError) Details() string {
	return s.details
}

var _ error = (*ScannerError)(nil)
var _ wrapper = (*ScannerError)(nil)
var _ located = (*ScannerError)(nil)
