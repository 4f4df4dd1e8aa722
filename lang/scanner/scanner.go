// Package scanner turns source bytes into a token stream. It is a simple
// single-pass, byte-at-a-time cursor scanner: the language has no Unicode
// identifiers, no nested comments and no long-bracket strings, so it does
// not need the UTF-8 decoding or BOM/hashbang handling a general-purpose
// scanner would.
package scanner

import (
	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/token"
)

// TokenAndValue pairs a scanned token type with its lexeme/literal payload.
type TokenAndValue struct {
	Token token.Token
	Value token.Value
	Off   token.Offset
}

// Scanner tokenizes a single source.
type Scanner struct {
	src  *token.Source
	sink diag.Sink

	start, current int // byte offsets into src.Text
	errors         int
}

// New returns a Scanner ready to tokenize src, reporting diagnostics to sink.
func New(src *token.Source, sink diag.Sink) *Scanner {
	return &Scanner{src: src, sink: sink}
}

// ScanAll scans every token up to and including a trailing EOF token, and
// returns the count of scan errors reported.
func (s *Scanner) ScanAll() ([]TokenAndValue, int) {
	var out []TokenAndValue
	for {
		tv := s.scanOne()
		out = append(out, tv)
		if tv.Token == token.EOF {
			break
		}
	}
	return out, s.errors
}

func (s *Scanner) isAtEnd() bool { return s.current >= len(s.src.Text) }

func (s *Scanner) advance() byte {
	c := s.src.Text[s.current]
	s.current++
	return c
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.src.Text[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.src.Text[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src.Text) {
		return 0
	}
	return s.src.Text[s.current+1]
}

func (s *Scanner) lexeme() string { return string(s.src.Text[s.start:s.current]) }

func (s *Scanner) offset() token.Offset { return token.Span(s.src, s.start, s.current) }

func (s *Scanner) errorAt(off token.Offset, msg string) {
	s.errors++
	if s.sink != nil {
		s.sink.OnError(off, msg)
	}
}

func (s *Scanner) tok(tt token.Token) TokenAndValue {
	return TokenAndValue{Token: tt, Value: token.Value{Raw: s.lexeme()}, Off: s.offset()}
}

// scanOne skips leading whitespace and comments, then scans a single token.
func (s *Scanner) scanOne() TokenAndValue {
	for {
		s.skipWhitespaceAndComments()
		if s.isAtEnd() {
			s.start = s.current
			return TokenAndValue{Token: token.EOF, Off: token.Point(s.src, s.current)}
		}
		break
	}

	s.start = s.current
	c := s.advance()

	switch {
	case isAlpha(c):
		return s.identifier()
	case isDigit(c):
		return s.number()
	}

	switch c {
	case '(':
		return s.tok(token.LPAREN)
	case ')':
		return s.tok(token.RPAREN)
	case '{':
		return s.tok(token.LBRACE)
	case '}':
		return s.tok(token.RBRACE)
	case '[':
		return s.tok(token.LBRACK)
	case ']':
		return s.tok(token.RBRACK)
	case ',':
		return s.tok(token.COMMA)
	case '.':
		return s.tok(token.DOT)
	case '+':
		return s.tok(token.PLUS)
	case ';':
		return s.tok(token.SEMI)
	case '*':
		return s.tok(token.STAR)
	case ':':
		return s.tok(token.COLON)
	case '!':
		if s.match('=') {
			return s.tok(token.BANG_EQ)
		}
		return s.tok(token.BANG)
	case '=':
		if s.match('=') {
			return s.tok(token.EQ_EQ)
		}
		return s.tok(token.EQ)
	case '<':
		if s.match('=') {
			return s.tok(token.LT_EQ)
		}
		return s.tok(token.LT)
	case '>':
		if s.match('=') {
			return s.tok(token.GT_EQ)
		}
		return s.tok(token.GT)
	case '-':
		if s.match('>') {
			return s.tok(token.ARROW)
		}
		return s.tok(token.MINUS)
	case '/':
		return s.tok(token.SLASH)
	case '"', '\'':
		return s.stringLiteral(c)
	}

	s.errorAt(token.Span(s.src, s.start, s.start+1), "Unexpected character.")
	return s.scanOne()
}

// skipWhitespaceAndComments consumes spaces, tabs, newlines, carriage
// returns and "//" line comments. The caller re-checks isAtEnd after this.
func (s *Scanner) skipWhitespaceAndComments() {
	for !s.isAtEnd() {
		switch s.peek() {
		case ' ', '\r', '\t', '\n':
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for s.peek() != '\n' && !s.isAtEnd() {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

func (s *Scanner) identifier() TokenAndValue {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lit := s.lexeme()
	return TokenAndValue{Token: token.LookupIdent(lit), Value: token.Value{Raw: lit}, Off: s.offset()}
}
