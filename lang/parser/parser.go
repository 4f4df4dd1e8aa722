// Package parser implements a hand-written recursive-descent parser with
// Pratt-style precedence climbing for expressions, turning a token stream
// into an *ast.Program.
package parser

import (
	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/scanner"
	"github.com/madeso/lox-go/lang/token"
)

const maxArgs = 255

// parseError unwinds the current declaration/statement on a syntax error; it
// is caught by parseDeclaration, which then synchronizes and resumes.
type parseError struct{}

// Parser consumes a token stream produced by lang/scanner and builds an AST.
type Parser struct {
	src    *token.Source
	sink   diag.Sink
	toks   []scanner.TokenAndValue
	cur    int
	ids    *ast.IDGen
	errors int
}

// New returns a Parser over toks, reporting diagnostics to sink.
func New(src *token.Source, toks []scanner.TokenAndValue, sink diag.Sink) *Parser {
	return &Parser{src: src, sink: sink, toks: toks, ids: ast.NewIDGen()}
}

// Parse consumes the whole token stream and returns the resulting program
// along with the number of parse errors reported. Every parse error is
// recovered inside parseDeclaration, so the program holds the statements
// that parsed cleanly; malformed statements are dropped.
func (p *Parser) Parse() (*ast.Program, int) {
	prog := &ast.Program{Name: p.src.Name}
	for !p.isAtEnd() {
		if s := p.parseDeclaration(); s != nil {
			prog.Stmts = append(prog.Stmts, s)
		}
	}
	return prog, p.errors
}

func (p *Parser) isAtEnd() bool { return p.peek().Token == token.EOF }

func (p *Parser) peek() scanner.TokenAndValue { return p.toks[p.cur] }

func (p *Parser) previous() scanner.TokenAndValue { return p.toks[p.cur-1] }

func (p *Parser) advance() scanner.TokenAndValue {
	if !p.isAtEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *Parser) check(tt token.Token) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Token == tt
}

func (p *Parser) match(types ...token.Token) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// offsetForError returns the offset to report an error at for the current
// token: EOF errors point at the single byte past the end, not a span.
func (p *Parser) offsetForError() token.Offset {
	tv := p.peek()
	if tv.Token == token.EOF {
		return token.Point(p.src, tv.Off.Start)
	}
	return tv.Off
}

func (p *Parser) consume(tt token.Token, message string) scanner.TokenAndValue {
	if p.check(tt) {
		return p.advance()
	}
	panic(p.errorAt(p.offsetForError(), message))
}

func (p *Parser) errorAt(off token.Offset, message string) parseError {
	p.errors++
	if p.sink != nil {
		p.sink.OnError(off, message)
	}
	return parseError{}
}

// span merges two offsets from the same source into one covering both.
func span(a, b token.Offset) token.Offset { return token.Span(a.Source, a.Start, b.End) }

// synchronize discards tokens until it finds a plausible statement boundary,
// used to resume parsing after a syntax error.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Token == token.SEMI {
			return
		}
		switch p.peek().Token {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// parseDeclaration recovers from a parseError by synchronizing and returning
// nil, so the caller simply skips the malformed statement.
func (p *Parser) parseDeclaration() (s ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	return p.parseDeclarationOrPanic()
}

func (p *Parser) parseDeclarationOrPanic() ast.Stmt {
	switch {
	case p.match(token.CLASS):
		return p.parseClassDeclaration()
	case p.match(token.FUN):
		return p.parseFunction("function")
	case p.match(token.VAR):
		return p.parseVarDeclaration()
	default:
		return p.parseStatement()
	}
}
