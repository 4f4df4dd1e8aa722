package parser

import (
	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/token"
)

func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment is right-associative: `a = b = c` parses as `a = (b = c)`.
// The left side must already have parsed to an assignable form; anything
// else is reported as "Invalid assignment target." without aborting the
// parse (the already-parsed left expression is kept as-is).
func (p *Parser) parseAssignment() ast.Expr {
	expr := p.parseOr()

	if p.match(token.EQ) {
		equals := p.previous()
		value := p.parseAssignment()

		switch e := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Off: span(e.Off, value.Offset()), ExprID: p.ids.Next(), Name: e.Name, NameOffset: e.Off, Value: value}
		case *ast.GetPropertyExpr:
			return &ast.SetPropertyExpr{Off: span(e.Off, value.Offset()), Object: e.Object, Name: e.Name, NameOffset: e.NameOffset, Value: value}
		case *ast.GetIndexExpr:
			return &ast.SetIndexExpr{Off: span(e.Off, value.Offset()), Object: e.Object, Index: e.Index, Value: value}
		default:
			p.errorAt(equals.Off, "Invalid assignment target.")
		}
	}

	return expr
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.match(token.OR) {
		op := p.previous().Token
		right := p.parseAnd()
		left = &ast.LogicalExpr{Off: span(left.Offset(), right.Offset()), Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseEquality()
	for p.match(token.AND) {
		op := p.previous().Token
		right := p.parseEquality()
		left = &ast.LogicalExpr{Off: span(left.Offset(), right.Offset()), Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	expr := p.parseComparison()
	for p.match(token.BANG_EQ, token.EQ_EQ) {
		opTok := p.previous()
		right := p.parseComparison()
		expr = &ast.BinaryExpr{Off: span(expr.Offset(), right.Offset()), Left: expr, Op: opTok.Token, OpOffset: opTok.Off, Right: right}
	}
	return expr
}

func (p *Parser) parseComparison() ast.Expr {
	expr := p.parseTerm()
	for p.match(token.GT, token.GT_EQ, token.LT, token.LT_EQ) {
		opTok := p.previous()
		right := p.parseTerm()
		expr = &ast.BinaryExpr{Off: span(expr.Offset(), right.Offset()), Left: expr, Op: opTok.Token, OpOffset: opTok.Off, Right: right}
	}
	return expr
}

func (p *Parser) parseTerm() ast.Expr {
	expr := p.parseFactor()
	for p.match(token.MINUS, token.PLUS) {
		opTok := p.previous()
		right := p.parseFactor()
		expr = &ast.BinaryExpr{Off: span(expr.Offset(), right.Offset()), Left: expr, Op: opTok.Token, OpOffset: opTok.Off, Right: right}
	}
	return expr
}

func (p *Parser) parseFactor() ast.Expr {
	expr := p.parseUnary()
	for p.match(token.SLASH, token.STAR) {
		opTok := p.previous()
		right := p.parseUnary()
		expr = &ast.BinaryExpr{Off: span(expr.Offset(), right.Offset()), Left: expr, Op: opTok.Token, OpOffset: opTok.Off, Right: right}
	}
	return expr
}

func (p *Parser) parseUnary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		opTok := p.previous()
		right := p.parseUnary()
		return &ast.UnaryExpr{Off: span(opTok.Off, right.Offset()), Op: opTok.Token, OpOffset: opTok.Off, Right: right}
	}
	return p.parseCall()
}

// parseCall handles the left-associative postfix chain: calls, property
// access and indexing, e.g. `a.b[0](c).d`.
func (p *Parser) parseCall() ast.Expr {
	expr := p.parsePrimary()

	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			nameTok := p.consume(token.IDENT, "Expect property name after '.'")
			expr = &ast.GetPropertyExpr{Off: span(expr.Offset(), nameTok.Off), Object: expr, Name: nameTok.Value.Raw, NameOffset: nameTok.Off}
		case p.match(token.LBRACK):
			index := p.parseExpression()
			endTok := p.consume(token.RBRACK, "Expect ']' after index")
			expr = &ast.GetIndexExpr{Off: span(expr.Offset(), endTok.Off), Object: expr, Index: index}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	start := p.previous().Off
	args := p.parseArgumentList(start)
	end := p.previous().Off
	return &ast.CallExpr{Off: span(callee.Offset(), end), Callee: callee, Args: args}
}

// parseArgumentList parses a comma-separated argument list up to the closing
// ')', having already consumed the opening '(' at callStart.
func (p *Parser) parseArgumentList(callStart token.Offset) []ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			args = append(args, p.parseExpression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	end := p.consume(token.RPAREN, "Expect ')' after arguments").Off

	if len(args) > maxArgs {
		p.errorAt(span(callStart, end), "Can't have more than 255 arguments.")
	}
	return args
}

func (p *Parser) parsePrimary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.LiteralExpr{Off: p.previous().Off, Kind: token.FALSE, Value: token.Value{Raw: "false"}}
	case p.match(token.TRUE):
		return &ast.LiteralExpr{Off: p.previous().Off, Kind: token.TRUE, Value: token.Value{Raw: "true"}}
	case p.match(token.NIL):
		return &ast.LiteralExpr{Off: p.previous().Off, Kind: token.NIL, Value: token.Value{Raw: "nil"}}
	case p.match(token.NUMBER_INT, token.NUMBER_FLOAT, token.STRING):
		prev := p.previous()
		return &ast.LiteralExpr{Off: prev.Off, Kind: prev.Token, Value: prev.Value}
	case p.match(token.IDENT):
		prev := p.previous()
		return &ast.VariableExpr{Off: prev.Off, ExprID: p.ids.Next(), Name: prev.Value.Raw}
	case p.match(token.THIS):
		return &ast.ThisExpr{Off: p.previous().Off, ExprID: p.ids.Next()}
	case p.match(token.SUPER):
		return p.parseSuper()
	case p.match(token.NEW):
		return p.parseConstructor()
	case p.match(token.LBRACK):
		return p.parseArrayLiteral()
	case p.match(token.LPAREN):
		lparen := p.previous().Off
		expr := p.parseExpression()
		rparen := p.consume(token.RPAREN, "Expect ')' after expression.").Off
		return &ast.GroupingExpr{Off: span(lparen, rparen), Inner: expr}
	}

	panic(p.errorAt(p.offsetForError(), "Expected expression."))
}

func (p *Parser) parseSuper() ast.Expr {
	start := p.previous().Off
	if p.match(token.LPAREN) {
		args := p.parseArgumentList(start)
		end := p.previous().Off
		return &ast.SuperConstructorCallExpr{Off: span(start, end), ExprID: p.ids.Next(), Args: args}
	}
	p.consume(token.DOT, "Expect '.' after 'super'")
	propTok := p.consume(token.IDENT, "Expect superclass method name")
	return &ast.SuperExpr{Off: span(start, propTok.Off), ExprID: p.ids.Next(), Property: propTok.Value.Raw, PropOffset: propTok.Off}
}

// parseConstructor parses `new Class(args)`. The class expression is a name,
// possibly reached through a dotted package path (`new a.b.C(args)`); the
// argument list is optional. Any postfix chain after the arguments, as in
// `new C().m()`, applies to the constructed instance and is left to parseCall.
func (p *Parser) parseConstructor() ast.Expr {
	start := p.previous().Off
	nameTok := p.consume(token.IDENT, "Expect class name after 'new'")
	var class ast.Expr = &ast.VariableExpr{Off: nameTok.Off, ExprID: p.ids.Next(), Name: nameTok.Value.Raw}
	for p.match(token.DOT) {
		nameTok = p.consume(token.IDENT, "Expect property name after '.'")
		class = &ast.GetPropertyExpr{Off: span(class.Offset(), nameTok.Off), Object: class, Name: nameTok.Value.Raw, NameOffset: nameTok.Off}
	}
	if !p.match(token.LPAREN) {
		return &ast.ConstructorExpr{Off: span(start, class.Offset()), Class: class, Args: nil}
	}
	args := p.parseArgumentList(p.previous().Off)
	return &ast.ConstructorExpr{Off: span(start, p.previous().Off), Class: class, Args: args}
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	start := p.previous().Off
	var values []ast.Expr
	if !p.check(token.RBRACK) {
		for {
			values = append(values, p.parseExpression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	end := p.consume(token.RBRACK, "Expect ']' after array literal").Off
	return &ast.ArrayExpr{Off: span(start, end), Values: values}
}
