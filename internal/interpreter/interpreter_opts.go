package interpreter

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/leonardinius/golury/internal/logger"
	"github.com/leonardinius/golury/internal/luryerrors"
)

type interpreterOpts struct {
	outputs  *logger.OutputLogger
	reporter luryerrors.ErrReporter
	log      zerolog.Logger
	source   string
	fileName string
	lint     bool
	trace    bool
}

var defaultInterpreterOpts = interpreterOpts{
	reporter: luryerrors.NewErrReporter(os.Stderr),
	log:      zerolog.Nop(),
	lint:     true,
}

type InterpreterOption func(*interpreterOpts)

// WithOutputLogger sets the logger diagnostics are recorded to.
func WithOutputLogger(l *logger.OutputLogger) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.outputs = l
	}
}

func WithErrorReporter(r luryerrors.ErrReporter) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.reporter = r
	}
}

func WithLog(log zerolog.Logger) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.log = log
	}
}

// WithSource sets the source text used for diagnostic excerpts when the
// expressions are evaluated through Interpret rather than Run.
func WithSource(source string) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.source = source
	}
}

// WithFileName tags every recorded output with the script file name.
func WithFileName(name string) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.fileName = name
	}
}

func WithLint(enabled bool) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.lint = enabled
	}
}

// WithTrace records an info output for every evaluated expression.
func WithTrace(enabled bool) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.trace = enabled
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.outputs == nil {
		opts.outputs = logger.NewOutputLogger()
	}

	return &opts
}
