package parser

import (
	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/token"
)

func (p *Parser) parseFunction(kind string) *ast.FunctionStmt {
	start := p.previous().Off
	nameTok := p.consume(token.IDENT, "Expected "+kind+" name")
	name := nameTok.Value.Raw
	nameOff := nameTok.Off

	p.consume(token.LPAREN, "Expect '(' after "+kind+" name")
	paramsStart := p.previous().Off
	var params []string
	if !p.check(token.RPAREN) {
		for {
			params = append(params, p.consume(token.IDENT, "Expect parameter name").Value.Raw)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "Expect ')' after parameters")
	paramsEnd := p.previous().Off

	if len(params) > maxArgs {
		p.errorAt(span(paramsStart, paramsEnd), "Can't have more than 255 parameters.")
	}

	p.consume(token.LBRACE, "Expect '{' before "+kind+" body")
	body := p.parseBlockToStmts()
	end := p.previous().Off

	return &ast.FunctionStmt{Off: span(start, end), Name: name, NameOffset: nameOff, Params: params, Body: body}
}

// parseClassDeclaration parses:
//
//	class Name [: Parent] { member* }
//
// where each member is one of:
//
//	public var name [= init];
//	public fun name(params) { body }
//	public static fun name(params) { body }
func (p *Parser) parseClassDeclaration() ast.Stmt {
	start := p.previous().Off
	nameTok := p.consume(token.IDENT, "Expected class name")
	name := nameTok.Value.Raw
	nameOff := nameTok.Off

	var superclass *ast.VariableExpr
	if p.match(token.COLON) {
		parentTok := p.consume(token.IDENT, "Expected superclass name")
		superclass = &ast.VariableExpr{Off: parentTok.Off, ExprID: p.ids.Next(), Name: parentTok.Value.Raw}
	}

	p.consume(token.LBRACE, "Expect '{' before class body")

	cls := &ast.ClassStmt{Name: name, NameOffset: nameOff, Superclass: superclass}

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		p.parseClassMember(cls)
	}

	p.consume(token.RBRACE, "Expect '}' after class body")
	end := p.previous().Off
	cls.Off = span(start, end)
	return cls
}

func (p *Parser) parseClassMember(cls *ast.ClassStmt) {
	// The public/private/const qualifiers are part of the language surface
	// but carry no semantic weight yet; the parser accepts and discards them.
	for p.match(token.PUBLIC, token.PRIVATE, token.CONST) {
	}

	isStatic := p.match(token.STATIC)

	if p.match(token.VAR) {
		if isStatic {
			panic(p.errorAt(p.offsetForError(), "Expected member declaration"))
		}
		nameTok := p.consume(token.IDENT, "Expected field name")
		var initExpr ast.Expr
		if p.match(token.EQ) {
			initExpr = p.parseExpression()
		}
		p.consume(token.SEMI, "Missing ';' after field declaration")
		cls.Members = append(cls.Members, &ast.VarStmt{
			Off:         span(nameTok.Off, p.previous().Off),
			Name:        nameTok.Value.Raw,
			NameOffset:  nameTok.Off,
			Initializer: initExpr,
		})
		return
	}

	p.consume(token.FUN, "Expect method declaration")
	fn := p.parseFunction("method")
	member := &ast.ClassMember{Name: fn.Name, NameOffset: fn.NameOffset, Fn: fn}
	if isStatic {
		cls.StaticMethods = append(cls.StaticMethods, member)
	} else {
		cls.Methods = append(cls.Methods, member)
	}
}

func (p *Parser) parseVarDeclaration() ast.Stmt {
	start := p.previous().Off
	nameTok := p.consume(token.IDENT, "Expected variable name")

	var initExpr ast.Expr
	if p.match(token.EQ) {
		initExpr = p.parseExpression()
	}
	p.consume(token.SEMI, "Missing ';' after variable declaration")
	end := p.previous().Off
	return &ast.VarStmt{Off: span(start, end), Name: nameTok.Value.Raw, NameOffset: nameTok.Off, Initializer: initExpr}
}

func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case p.match(token.IF):
		return p.parseIfStatement()
	case p.match(token.PRINT):
		return p.parsePrintStatement()
	case p.match(token.RETURN):
		return p.parseReturnStatement()
	case p.match(token.WHILE):
		return p.parseWhileStatement()
	case p.match(token.FOR):
		return p.parseForStatement()
	case p.match(token.LBRACE):
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseReturnStatement() ast.Stmt {
	start := p.previous().Off
	var value ast.Expr
	if !p.check(token.SEMI) {
		value = p.parseExpression()
	}
	p.consume(token.SEMI, "Expected ';' after return value")
	end := p.previous().Off
	return &ast.ReturnStmt{Off: span(start, end), Value: value}
}

// parseForStatement desugars `for (init; cond; step) body` into
// `{ init; while (cond) { body; step; } }` at parse time.
func (p *Parser) parseForStatement() ast.Stmt {
	start := p.previous().Off
	p.consume(token.LPAREN, "Expected '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMI):
		// no initializer
	case p.match(token.VAR):
		initializer = p.parseVarDeclaration()
	default:
		initializer = p.parseExpressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMI) {
		condition = p.parseExpression()
	}
	p.consume(token.SEMI, "Expected ';' after loop condition")

	var increment ast.Expr
	if !p.check(token.RPAREN) {
		increment = p.parseExpression()
	}
	p.consume(token.RPAREN, "Expected ')' after for clauses")

	body := p.parseStatement()
	end := p.previous().Off

	if increment != nil {
		io := increment.Offset()
		body = &ast.BlockStmt{Off: span(io, end), Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Off: io, Expr: increment}}}
	}

	coStart := body.Offset().Start
	if condition != nil {
		coStart = condition.Offset().Start
	} else {
		condition = &ast.LiteralExpr{Off: token.Point(p.src, coStart), Kind: token.TRUE, Value: token.Value{Raw: "true"}}
	}
	body = &ast.WhileStmt{Off: token.Span(end.Source, coStart, end.End), Cond: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Off: span(start, end), Stmts: []ast.Stmt{initializer, body}}
	}

	return body
}

func (p *Parser) parseWhileStatement() ast.Stmt {
	start := p.previous().Off
	p.consume(token.LPAREN, "Expected '(' after 'while'")
	cond := p.parseExpression()
	p.consume(token.RPAREN, "Expected ')' after while condition")
	body := p.parseStatement()
	end := p.previous().Off
	return &ast.WhileStmt{Off: span(start, end), Cond: cond, Body: body}
}

func (p *Parser) parseIfStatement() ast.Stmt {
	start := p.previous().Off
	p.consume(token.LPAREN, "Expected '(' after 'if'")
	cond := p.parseExpression()
	p.consume(token.RPAREN, "Expected ')' after if condition")

	then := p.parseStatement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.parseStatement()
	}
	end := p.previous().Off
	return &ast.IfStmt{Off: span(start, end), Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseBlockToStmts() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		if s := p.parseDeclaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RBRACE, "Expected '}' after block.")
	return stmts
}

func (p *Parser) parseBlockStatement() ast.Stmt {
	start := p.previous().Off
	stmts := p.parseBlockToStmts()
	end := p.previous().Off
	return &ast.BlockStmt{Off: span(start, end), Stmts: stmts}
}

func (p *Parser) parsePrintStatement() ast.Stmt {
	start := p.previous().Off
	value := p.parseExpression()
	p.consume(token.SEMI, "Missing ';' after print statement")
	end := p.previous().Off
	return &ast.PrintStmt{Off: span(start, end), Expr: value}
}

func (p *Parser) parseExpressionStatement() ast.Stmt {
	value := p.parseExpression()
	start := value.Offset()
	p.consume(token.SEMI, "Missing ';' after expression")
	end := p.previous().Off
	return &ast.ExpressionStmt{Off: span(start, end), Expr: value}
}
