package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/golury/internal/luryerrors"
	"github.com/leonardinius/golury/internal/parser"
	"github.com/leonardinius/golury/internal/scanner"
)

func parse(t *testing.T, input string) ([]parser.Expr, error) {
	t.Helper()

	tokens, err := scanner.NewScanner(input).Scan()
	require.NoError(t, err)

	return parser.NewParser(tokens).Parse()
}

func TestParse(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"literal", "true", []string{"true"}},
		{"string", `"abc"`, []string{`"abc"`}},
		{"trailing separator", "false;", []string{"false"}},
		{"many", "true; false; \"x\"", []string{"true", "false", `"x"`}},
		{"not", "!true", []string{"(! true)"}},
		{"not keyword", "not not false", []string{"(not (not false))"}},
		{"and binds tighter than or", "true or false and true", []string{"(or true (and false true))"}},
		{"left assoc", "true and false and true", []string{"(and (and true false) true)"}},
		{"symbolic", "true || false && true", []string{"(|| true (&& false true))"}},
		{"equality binds tighter than and", "true == false and true != false", []string{"(and (== true false) (!= true false))"}},
		{"unary binds tighter than equality", "!true == false", []string{"(== (! true) false)"}},
		{"grouping", "(true or false) and true", []string{"(and (group (or true false)) true)"}},
	}

	printer := parser.NewAstPrinter()
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			exprs, err := parse(t, tc.input)
			require.NoError(t, err)

			var actual []string
			for _, expr := range exprs {
				out, err := printer.Print(expr)
				require.NoError(t, err)
				actual = append(actual, out)
			}
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name  string
		input string
		errs  []string
		is    error
	}{
		{"dangling and", "true and", []string{"[line 1:9] parse error at end: expected expression."}, luryerrors.ErrParseUnexpectedToken},
		{"unclosed paren", "(true", []string{"[line 1:6] parse error at end: expected ')' after expression."}, luryerrors.ErrParseExpectedRightParenToken},
		{"missing separator", "true false", []string{"[line 1:6] parse error at 'false': expected ';' between expressions."}, luryerrors.ErrParseExpectedSeparator},
		{
			"several errors",
			"true and; false; or true; ==",
			[]string{
				"[line 1:9] parse error at ';': expected expression.",
				"[line 1:18] parse error at 'or': expected expression.",
				"[line 1:27] parse error at '==': expected expression.",
			},
			luryerrors.ErrParseUnexpectedToken,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			exprs, err := parse(t, tc.input)
			assert.Nil(t, exprs)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.is)
			assert.Equal(t, strings.Join(tc.errs, "\n"), err.Error())
		})
	}
}

func TestParserErrorCarriesToken(t *testing.T) {
	t.Parallel()

	_, err := parse(t, "\n  (false")
	var perr *luryerrors.ParserError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Token.Line)
	assert.Equal(t, 9, perr.Token.Column)
}

func TestNewParserPanicsWithoutEOF(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { parser.NewParser(nil) })
}
