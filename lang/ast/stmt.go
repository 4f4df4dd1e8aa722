package ast

import "github.com/madeso/lox-go/lang/token"

type (
	// BlockStmt is a `{ ... }` sequence that introduces a new environment.
	BlockStmt struct {
		Off   token.Offset
		Stmts []Stmt
	}

	// ClassMember is a single method or static method inside a class body,
	// named so the resolver can report every member sharing a name together.
	ClassMember struct {
		Name       string
		NameOffset token.Offset
		Fn         *FunctionStmt
	}

	// ClassStmt declares a class, its optional superclass, its declared
	// fields (`public var name [= init];`), its instance methods and its
	// static methods.
	ClassStmt struct {
		Off           token.Offset
		Name          string
		NameOffset    token.Offset
		Superclass    *VariableExpr // nil if no `: Parent` clause
		Members       []*VarStmt    // declared fields, in source order
		Methods       []*ClassMember
		StaticMethods []*ClassMember
	}

	// FunctionStmt declares a named function or method.
	FunctionStmt struct {
		Off        token.Offset
		Name       string
		NameOffset token.Offset
		Params     []string
		Body       []Stmt
	}

	// ExpressionStmt is an expression evaluated for its side effect.
	ExpressionStmt struct {
		Off  token.Offset
		Expr Expr
	}

	// IfStmt is `if (cond) then [else else_]`.
	IfStmt struct {
		Off   token.Offset
		Cond  Expr
		Then  Stmt
		Else  Stmt // nil if no else branch
	}

	// PrintStmt is `print expr;`.
	PrintStmt struct {
		Off  token.Offset
		Expr Expr
	}

	// ReturnStmt is `return [value];`.
	ReturnStmt struct {
		Off   token.Offset
		Value Expr // nil if bare `return;`
	}

	// VarStmt is `var name [= initializer];`.
	VarStmt struct {
		Off         token.Offset
		Name        string
		NameOffset  token.Offset
		Initializer Expr // nil if uninitialized
	}

	// WhileStmt is `while (cond) body`.
	WhileStmt struct {
		Off  token.Offset
		Cond Expr
		Body Stmt
	}
)

func (n *BlockStmt) stmt()      {}
func (n *ClassStmt) stmt()      {}
func (n *FunctionStmt) stmt()   {}
func (n *ExpressionStmt) stmt() {}
func (n *IfStmt) stmt()         {}
func (n *PrintStmt) stmt()      {}
func (n *ReturnStmt) stmt()     {}
func (n *VarStmt) stmt()        {}
func (n *WhileStmt) stmt()      {}

func (n *BlockStmt) Offset() token.Offset      { return n.Off }
func (n *ClassStmt) Offset() token.Offset      { return n.Off }
func (n *FunctionStmt) Offset() token.Offset   { return n.Off }
func (n *ExpressionStmt) Offset() token.Offset { return n.Off }
func (n *IfStmt) Offset() token.Offset         { return n.Off }
func (n *PrintStmt) Offset() token.Offset      { return n.Off }
func (n *ReturnStmt) Offset() token.Offset     { return n.Off }
func (n *VarStmt) Offset() token.Offset        { return n.Off }
func (n *WhileStmt) Offset() token.Offset      { return n.Off }

func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		walkAll(v, s)
	}
}

func (n *ClassStmt) Walk(v Visitor) {
	if n.Superclass != nil {
		walkAll(v, n.Superclass)
	}
	for _, m := range n.Members {
		walkAll(v, m)
	}
	for _, m := range n.StaticMethods {
		walkAll(v, m.Fn)
	}
	for _, m := range n.Methods {
		walkAll(v, m.Fn)
	}
}

func (n *FunctionStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		walkAll(v, s)
	}
}

func (n *ExpressionStmt) Walk(v Visitor) { walkAll(v, n.Expr) }

func (n *IfStmt) Walk(v Visitor) {
	walkAll(v, n.Cond, n.Then)
	if n.Else != nil {
		walkAll(v, n.Else)
	}
}

func (n *PrintStmt) Walk(v Visitor) { walkAll(v, n.Expr) }

func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		walkAll(v, n.Value)
	}
}

func (n *VarStmt) Walk(v Visitor) {
	if n.Initializer != nil {
		walkAll(v, n.Initializer)
	}
}

func (n *WhileStmt) Walk(v Visitor) { walkAll(v, n.Cond, n.Body) }
