package scanner

import (
	"strconv"

	"github.com/madeso/lox-go/lang/token"
)

// number scans an integer or floating-point literal. A '.' is only consumed
// as part of the literal if followed by another digit, so that `1.method()`
// is not misread as a float literal.
func (s *Scanner) number() TokenAndValue {
	for isDigit(s.peek()) {
		s.advance()
	}

	isInt := true
	if s.peek() == '.' && isDigit(s.peekNext()) {
		isInt = false
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lit := s.lexeme()
	off := s.offset()
	if isInt {
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			s.errorAt(off, "integer literal value out of range")
		}
		return TokenAndValue{Token: token.NUMBER_INT, Value: token.Value{Raw: lit, Int: v}, Off: off}
	}

	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.errorAt(off, "float literal value out of range")
	}
	return TokenAndValue{Token: token.NUMBER_FLOAT, Value: token.Value{Raw: lit, Float: v}, Off: off}
}
