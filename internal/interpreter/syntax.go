package interpreter

import (
	"errors"

	"github.com/leonardinius/golury/internal/logger"
	"github.com/leonardinius/golury/internal/luryerrors"
	"github.com/leonardinius/golury/internal/token"
)

var scanCategories = map[error]logger.ErrorCategory{
	luryerrors.ErrScanUnexpectedCharacter: logger.ErrUnexpectedCharacter,
	luryerrors.ErrScanUnterminatedString:  logger.ErrUnterminatedString,
	luryerrors.ErrScanUnknownIdentifier:   logger.ErrUnknownIdentifier,
}

var parseCategories = map[error]logger.ErrorCategory{
	luryerrors.ErrParseUnexpectedToken:         logger.ErrUnexpectedToken,
	luryerrors.ErrParseExpectedRightParenToken: logger.ErrExpectedRightParen,
	luryerrors.ErrParseExpectedSeparator:       logger.ErrUnexpectedToken,
}

// recordSyntaxError records one error output per scanner or parser error
// contained in err.
func (i *interpreter) recordSyntaxError(err error) {
	for _, err := range luryerrors.Split(err) {
		i.recordSyntaxOutput(err)
	}
}

func (i *interpreter) recordSyntaxOutput(err error) {
	var scanErr *luryerrors.ScannerError
	if errors.As(err, &scanErr) {
		options := i.atPosition(scanErr.Line, scanErr.Column)
		if details := scanErr.Details(); details != "" {
			options = append(options, logger.WithCode(details))
		}
		i.opts.outputs.RecordError(lookupCategory(scanCategories, err), options...)
		return
	}

	var parseErr *luryerrors.ParserError
	if errors.As(err, &parseErr) {
		options := i.at(parseErr.Token)
		if parseErr.Token.Type != token.EOF {
			options = append(options, logger.WithCode(parseErr.Token.Lexeme))
		}
		options = append(options, logger.WithAppendix(errors.Unwrap(parseErr).Error()))
		i.opts.outputs.RecordError(lookupCategory(parseCategories, err), options...)
		return
	}

	options := []logger.OutputOption{logger.WithAppendix(err.Error())}
	if i.opts.fileName != "" {
		options = append(options, logger.WithFile(i.opts.fileName))
	}
	i.opts.outputs.RecordError(logger.ErrUnknown, options...)
}

func lookupCategory(categories map[error]logger.ErrorCategory, err error) logger.ErrorCategory {
	for sentinel, category := range categories {
		if errors.Is(err, sentinel) {
			return category
		}
	}
	return logger.ErrUnknown
}
