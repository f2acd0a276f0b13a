package scanner

import (
	"strconv"

	"github.com/leonardinius/golury/internal/luryerrors"
	"github.com/leonardinius/golury/internal/token"
)

// Scanner splits source text into tokens.
type Scanner interface {
	Scan() ([]token.Token, error)
}

var reservedKeywords = map[string]token.TokenType{
	"and":   token.AND,
	"false": token.FALSE,
	"not":   token.NOT,
	"or":    token.OR,
	"true":  token.TRUE,
}

type scanner struct {
	source                          []rune
	tokens                          []token.Token
	start, current, line, lineStart int
	err                             error
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: []rune(input), start: 0, current: 0, line: 1}
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isDone() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	s.start = s.current
	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", nil, s.line, s.column()))

	return s.tokens, s.err
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) hasErr() bool {
	return s.err != nil
}

func (s *scanner) isDone() bool {
	return s.isAtEnd() || s.hasErr()
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch c {
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case ';':
		s.addToken(token.SEMICOLON)
	case '!':
		s.addMatchToken('=', token.BANG_EQUAL, token.BANG)
	case '=':
		s.addPairToken('=', token.EQUAL_EQUAL, c)
	case '&':
		s.addPairToken('&', token.AMP_AMP, c)
	case '|':
		s.addPairToken('|', token.PIPE_PIPE, c)
	case '/':
		if s.match('/') {
			s.comment()
		} else {
			s.reportUnexpectedCharater(c)
		}
	case ' ', '\r', '\t':
		// Ignore whitespace.
	case '\n':
		s.newLine()
	case '"':
		s.string()
	default:
		if s.isAlpha(c) {
			s.reservedOrIdentifier()
		} else {
			s.reportUnexpectedCharater(c)
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) advance() rune {
	s.current++
	return s.source[s.current-1]
}

func (s *scanner) newLine() {
	s.line++
	s.lineStart = s.current
}

// column is the 1-based column of the current lexeme start.
func (s *scanner) column() int {
	return s.start - s.lineStart + 1
}

func (s *scanner) match(expected rune) bool {
	if !s.isAtEnd() && expected == s.peek() {
		s.advance()
		return true
	}

	return false
}

func (s *scanner) addMatchToken(lookAhead rune, ifMatch, ifNotMatched token.TokenType) {
	if s.match(lookAhead) {
		s.addToken(ifMatch)
	} else {
		s.addToken(ifNotMatched)
	}
}

// addPairToken adds a token spelled as the same character twice, e.g. "&&".
func (s *scanner) addPairToken(lookAhead rune, ifMatch token.TokenType, c rune) {
	if s.match(lookAhead) {
		s.addToken(ifMatch)
	} else {
		s.reportUnexpectedCharater(c)
	}
}

func (s *scanner) addToken(t token.TokenType) {
	s.addTokenLiteral(t, nil)
}

func (s *scanner) addTokenLiteral(t token.TokenType, literal any) {
	s.tokens = append(s.tokens, token.NewToken(t, string(s.source[s.start:s.current]), literal, s.line, s.column()))
}

func (s *scanner) comment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *scanner) string() {
	line, column := s.line, s.column()
	for !s.isAtEnd() && s.peek() != '"' {
		if s.advance() == '\n' {
			s.newLine()
		}
	}

	if s.isAtEnd() {
		s.err = luryerrors.NewScanError(line, column, luryerrors.ErrScanUnterminatedString, "")
		return
	}

	// The closing ".
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.tokens = append(s.tokens, token.NewToken(token.STRING, string(s.source[s.start:s.current]), string(value), line, column))
}

func (s *scanner) reservedOrIdentifier() {
	for s.isAlphaNumeric(s.peek()) {
		s.advance()
	}

	name := string(s.source[s.start:s.current])
	tokenType, ok := reservedKeywords[name]
	if !ok {
		s.err = luryerrors.NewScanError(s.line, s.column(), luryerrors.ErrScanUnknownIdentifier, strconv.Quote(name))
		return
	}
	s.addToken(tokenType)
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func (s *scanner) isAlphaNumeric(c rune) bool {
	return s.isAlpha(c) || s.isDigit(c)
}

func (s *scanner) reportUnexpectedCharater(c rune) {
	s.err = luryerrors.NewScanError(s.line, s.column(), luryerrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c))
}

var _ Scanner = (*scanner)(nil)
