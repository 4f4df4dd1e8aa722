package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/scanner"
	"github.com/madeso/lox-go/lang/token"
)

func scanAll(t *testing.T, src string) ([]scanner.TokenAndValue, *diag.List) {
	t.Helper()
	s := token.NewSource("test", []byte(src))
	sink := &diag.List{}
	toks, errs := scanner.New(s, sink).ScanAll()
	require.Zero(t, errs, "%v", sink.Diagnostics)
	return toks, sink
}

func tokenKinds(toks []scanner.TokenAndValue) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tv := range toks {
		out[i] = tv.Token
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, _ := scanAll(t, `(){}[],.+;*:- ! != = == < <= > >= / ->`)
	require.Equal(t, []token.Token{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACK, token.RBRACK, token.COMMA, token.DOT, token.PLUS,
		token.SEMI, token.STAR, token.COLON, token.MINUS,
		token.BANG, token.BANG_EQ, token.EQ, token.EQ_EQ,
		token.LT, token.LT_EQ, token.GT, token.GT_EQ, token.SLASH, token.ARROW,
		token.EOF,
	}, tokenKinds(toks))
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, _ := scanAll(t, `class fun for if return super this var while foo`)
	kinds := tokenKinds(toks)
	require.Equal(t, []token.Token{
		token.CLASS, token.FUN, token.FOR, token.IF, token.RETURN,
		token.SUPER, token.THIS, token.VAR, token.WHILE, token.IDENT, token.EOF,
	}, kinds)
	require.Equal(t, "foo", toks[len(toks)-2].Value.Raw)
}

func TestScanNumberLiterals(t *testing.T) {
	toks, _ := scanAll(t, `42 3.14`)
	require.Equal(t, token.NUMBER_INT, toks[0].Token)
	require.Equal(t, int64(42), toks[0].Value.Int)
	require.Equal(t, token.NUMBER_FLOAT, toks[1].Token)
	require.Equal(t, 3.14, toks[1].Value.Float)
}

func TestScanStringLiteral(t *testing.T) {
	toks, _ := scanAll(t, `"hello"`)
	require.Equal(t, token.STRING, toks[0].Token)
	require.Equal(t, "hello", toks[0].Value.Str)
}

func TestScanSkipsCommentsAndWhitespace(t *testing.T) {
	toks, _ := scanAll(t, `
		// this is a comment
		var a = 1; // trailing
	`)
	require.Equal(t, []token.Token{
		token.VAR, token.IDENT, token.EQ, token.NUMBER_INT, token.SEMI, token.EOF,
	}, tokenKinds(toks))
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	s := token.NewSource("test", []byte(`"unterminated`))
	sink := &diag.List{}
	_, errs := scanner.New(s, sink).ScanAll()
	require.Equal(t, 1, errs)
	require.NotEmpty(t, sink.Diagnostics)
}

func TestScanIllegalCharacterReportsError(t *testing.T) {
	s := token.NewSource("test", []byte(`@`))
	sink := &diag.List{}
	_, errs := scanner.New(s, sink).ScanAll()
	require.Equal(t, 1, errs)
}
