package logger

import (
	"fmt"
	"strings"
)

// CompileOutput is one recorded diagnostic. It cannot be changed after it
// was recorded; optional fields report nil when they were omitted.
type CompileOutput struct {
	category   OutputCategory
	number     int
	code       *string
	sourceCode *string
	position   CharPosition
	appendix   *string
	file       string
}

// OutputOption sets an optional field of a CompileOutput.
type OutputOption func(*CompileOutput)

// WithCode attaches the offending code fragment, usually a token lexeme.
func WithCode(code string) OutputOption {
	return func(o *CompileOutput) {
		o.code = &code
	}
}

// WithSourceCode attaches the source text the output refers to.
func WithSourceCode(source string) OutputOption {
	return func(o *CompileOutput) {
		o.sourceCode = &source
	}
}

func WithPosition(pos CharPosition) OutputOption {
	return func(o *CompileOutput) {
		o.position = pos
	}
}

// WithFile names the source file the output belongs to.
func WithFile(name string) OutputOption {
	return func(o *CompileOutput) {
		o.file = name
	}
}

// WithAppendix attaches free text shown after the category message.
func WithAppendix(appendix string) OutputOption {
	return func(o *CompileOutput) {
		o.appendix = &appendix
	}
}

func newCompileOutput(category OutputCategory, number int, options ...OutputOption) CompileOutput {
	out := CompileOutput{category: category, number: number}
	for _, opt := range options {
		opt(&out)
	}
	return out
}

func (o CompileOutput) Category() OutputCategory { return o.category }
func (o CompileOutput) Number() int              { return o.number }
func (o CompileOutput) Position() CharPosition   { return o.position }

// File returns the source file name, empty when unknown.
func (o CompileOutput) File() string { return o.file }

// Code returns the attached code fragment, or nil.
func (o CompileOutput) Code() *string { return cloneString(o.code) }

// SourceCode returns the attached source text, or nil.
func (o CompileOutput) SourceCode() *string { return cloneString(o.sourceCode) }

// Appendix returns the attached free text, or nil.
func (o CompileOutput) Appendix() *string { return cloneString(o.appendix) }

// ID returns the severity-qualified number, e.g. "E0005".
func (o CompileOutput) ID() string {
	return fmt.Sprintf("%s%04d", o.category.Prefix(), o.number)
}

// Message returns the text registered for the output's category.
func (o CompileOutput) Message() string {
	switch o.category {
	case Error:
		return ErrorCategory(o.number).Message()
	case Warn:
		return WarnCategory(o.number).Message()
	case Info:
		return InfoCategory(o.number).Message()
	}
	return ""
}

// String implements fmt.Stringer.
func (o CompileOutput) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", o.category, o.ID())
	switch {
	case o.file != "" && !o.position.IsZero():
		fmt.Fprintf(&b, " at %s:%s", o.file, o.position)
	case o.file != "":
		fmt.Fprintf(&b, " in %s", o.file)
	case !o.position.IsZero():
		fmt.Fprintf(&b, " at %s", o.position)
	}
	fmt.Fprintf(&b, ": %s", o.Message())
	if o.code != nil {
		fmt.Fprintf(&b, " '%s'", *o.code)
	}
	if o.appendix != nil {
		fmt.Fprintf(&b, " (%s)", *o.appendix)
	}
	return b.String()
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

var _ fmt.Stringer = CompileOutput{}
