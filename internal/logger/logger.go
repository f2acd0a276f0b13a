// Package logger records the errors, warnings and informational messages
// produced while compiling or evaluating Lury source.
//
// An OutputLogger is an append-only list scoped to one session. It is not
// safe for concurrent use; give every worker its own logger and Merge them.
package logger

import (
	"golang.org/x/exp/slices"
)

type OutputLogger struct {
	outputs []CompileOutput
}

func NewOutputLogger() *OutputLogger {
	return &OutputLogger{}
}

// RecordError appends an error output.
func (l *OutputLogger) RecordError(number ErrorCategory, options ...OutputOption) {
	l.outputs = append(l.outputs, newCompileOutput(Error, int(number), options...))
}

// RecordWarning appends a warning output.
func (l *OutputLogger) RecordWarning(number WarnCategory, options ...OutputOption) {
	l.outputs = append(l.outputs, newCompileOutput(Warn, int(number), options...))
}

// RecordInfo appends an informational output.
func (l *OutputLogger) RecordInfo(number InfoCategory, options ...OutputOption) {
	l.outputs = append(l.outputs, newCompileOutput(Info, int(number), options...))
}

// Outputs returns the recorded outputs in insertion order. The returned
// slice is a copy owned by the caller.
func (l *OutputLogger) Outputs() []CompileOutput {
	return slices.Clone(l.outputs)
}

// Filter returns the outputs of one severity in insertion order.
func (l *OutputLogger) Filter(category OutputCategory) []CompileOutput {
	var filtered []CompileOutput
	for _, o := range l.outputs {
		if o.category == category {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func (l *OutputLogger) Len() int {
	return len(l.outputs)
}

func (l *OutputLogger) Count(category OutputCategory) int {
	n := 0
	for _, o := range l.outputs {
		if o.category == category {
			n++
		}
	}
	return n
}

func (l *OutputLogger) HasErrors() bool {
	return slices.ContainsFunc(l.outputs, func(o CompileOutput) bool {
		return o.category == Error
	})
}

// Merge appends every output of other after the outputs already recorded.
func (l *OutputLogger) Merge(other *OutputLogger) {
	if other == nil {
		return
	}
	l.outputs = append(l.outputs, other.outputs...)
}

// Clear drops all recorded outputs.
func (l *OutputLogger) Clear() {
	l.outputs = nil
}
