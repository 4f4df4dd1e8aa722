package scanner

import "github.com/madeso/lox-go/lang/token"

// stringLiteral scans a quoted string opened by quote (either '"' or '\'').
// An unterminated string reports an error and produces no STRING token; the
// scanner falls straight through to EOF, same as running off the end of any
// other construct.
func (s *Scanner) stringLiteral(quote byte) TokenAndValue {
	for s.peek() != quote && !s.isAtEnd() {
		s.advance()
	}

	if s.isAtEnd() {
		s.errorAt(s.offset(), "Unterminated string.")
		s.start = s.current
		return TokenAndValue{Token: token.EOF, Off: token.Point(s.src, s.current)}
	}

	s.advance() // the closing quote

	raw := s.lexeme()
	value := raw[1 : len(raw)-1]
	return TokenAndValue{Token: token.STRING, Value: token.Value{Raw: raw, Str: value}, Off: s.offset()}
}
