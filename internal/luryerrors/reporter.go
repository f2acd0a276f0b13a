package luryerrors

import (
	"errors"
	"fmt"
	"io"
)

// ErrReporter writes errors that are not diagnostics of a script, such as
// usage errors and interpreter panics.
type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

// located is implemented by errors that point at a place in the source.
type located interface {
	Position() (line, column int)
	Message() string
}

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) *errReporter {
	return &errReporter{w: w}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	e.report("FATAL", "", err)
}

// ReportError implements ErrReporter.
//
// Joined errors are written one per line. Positioned errors are written as
//
//	ERROR main.lury:1:6: parse error at 'false': expected ';' between expressions.
func (e *errReporter) ReportError(err error) {
	e.report("ERROR", "", err)
}

func (e *errReporter) report(severity, path string, err error) {
	if fileErr, ok := err.(*FileError); ok {
		e.report(severity, fileErr.Path, fileErr.err)
		return
	}
	if joined, ok := err.(multiWrapper); ok {
		for _, err := range joined.Unwrap() {
			e.report(severity, path, err)
		}
		return
	}
	fmt.Fprintf(e.w, "%s %s\n", severity, format(path, err))
}

func format(path string, err error) string {
	var loc located
	if !errors.As(err, &loc) {
		if path != "" {
			return path + ": " + err.Error()
		}
		return err.Error()
	}

	line, column := loc.Position()
	if path != "" {
		return fmt.Sprintf("%s:%d:%d: %s", path, line, column, loc.Message())
	}
	return fmt.Sprintf("%d:%d: %s", line, column, loc.Message())
}

var _ ErrReporter = (*errReporter)(nil)
