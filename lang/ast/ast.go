// Package ast defines the abstract syntax tree produced by lang/parser and
// consumed by lang/resolver and lang/interp. Every node carries the byte
// offset it spans; expression nodes that can refer to a name also carry a
// stable id, assigned at parse time, that the resolver keys its
// scope-distance map by.
package ast

import "github.com/madeso/lox-go/lang/token"

// ID uniquely identifies an expression node within a single parse. It has
// no meaning across parses.
type ID int

// Node is implemented by every AST node.
type Node interface {
	// Offset reports the byte range the node spans in its source.
	Offset() token.Offset

	// Walk enters each child node to implement the Visitor pattern.
	Walk(v Visitor)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	expr()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmt()
}

// NameExpr is implemented by the expression variants that resolve against an
// environment: Variable, Assign, This, Super and SuperConstructorCall. The
// resolver's scope-distance map is keyed by ID().
type NameExpr interface {
	Expr
	ID() ID
}

// Program is the result of parsing a single source: an ordered sequence of
// top-level statements.
type Program struct {
	Name  string
	Stmts []Stmt
}

func (n *Program) Offset() token.Offset {
	if len(n.Stmts) == 0 {
		return token.Offset{}
	}
	first, last := n.Stmts[0].Offset(), n.Stmts[len(n.Stmts)-1].Offset()
	return token.Span(first.Source, first.Start, last.End)
}

func (n *Program) Walk(v Visitor) {
	for _, s := range n.Stmts {
		walkAll(v, s)
	}
}

// IDGen assigns monotonically increasing, parse-local expression ids. The
// parser owns one IDGen per parse.
type IDGen struct{ next ID }

// NewIDGen returns a fresh id generator for a single parse.
func NewIDGen() *IDGen { return &IDGen{} }

// Next returns the next unused id.
func (g *IDGen) Next() ID {
	g.next++
	return g.next
}
