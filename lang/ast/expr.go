package ast

import "github.com/madeso/lox-go/lang/token"

type (
	// AssignExpr represents `name = value`.
	AssignExpr struct {
		Off        token.Offset
		ExprID     ID
		Name       string
		NameOffset token.Offset
		Value      Expr
	}

	// BinaryExpr represents `left op right` for arithmetic, comparison and
	// equality operators.
	BinaryExpr struct {
		Off      token.Offset
		Left     Expr
		Op       token.Token
		OpOffset token.Offset
		Right    Expr
	}

	// LogicalExpr represents `left and right` / `left or right`, which
	// short-circuit and do not evaluate Right unless necessary.
	LogicalExpr struct {
		Off   token.Offset
		Left  Expr
		Op    token.Token // AND or OR
		Right Expr
	}

	// UnaryExpr represents `-right` or `!right`.
	UnaryExpr struct {
		Off      token.Offset
		Op       token.Token
		OpOffset token.Offset
		Right    Expr
	}

	// GroupingExpr represents a parenthesized expression, kept distinct from
	// its inner expression so diagnostics and any printer see the source
	// parens.
	GroupingExpr struct {
		Off   token.Offset
		Inner Expr
	}

	// LiteralExpr represents a literal nil/bool/int/float/string value.
	LiteralExpr struct {
		Off   token.Offset
		Value token.Value
		Kind  token.Token // NIL, TRUE, FALSE, NUMBER_INT, NUMBER_FLOAT, STRING
	}

	// VariableExpr represents a bare identifier used as an expression.
	VariableExpr struct {
		Off    token.Offset
		ExprID ID
		Name   string
	}

	// CallExpr represents `callee(args...)`.
	CallExpr struct {
		Off    token.Offset
		Callee Expr
		Args   []Expr
	}

	// ArrayExpr represents an `[a, b, c]` array literal.
	ArrayExpr struct {
		Off    token.Offset
		Values []Expr
	}

	// ConstructorExpr represents `new Class(args...)`.
	ConstructorExpr struct {
		Off   token.Offset
		Class Expr // typically a VariableExpr naming the class
		Args  []Expr
	}

	// GetPropertyExpr represents `object.name`.
	GetPropertyExpr struct {
		Off    token.Offset
		Object Expr
		Name   string
		NameOffset token.Offset
	}

	// SetPropertyExpr represents `object.name = value`.
	SetPropertyExpr struct {
		Off    token.Offset
		Object Expr
		Name   string
		NameOffset token.Offset
		Value  Expr
	}

	// GetIndexExpr represents `object[index]`.
	GetIndexExpr struct {
		Off    token.Offset
		Object Expr
		Index  Expr
	}

	// SetIndexExpr represents `object[index] = value`.
	SetIndexExpr struct {
		Off    token.Offset
		Object Expr
		Index  Expr
		Value  Expr
	}

	// ThisExpr represents a `this` reference inside an instance method.
	ThisExpr struct {
		Off    token.Offset
		ExprID ID
	}

	// SuperExpr represents `super.property` inside an instance method.
	SuperExpr struct {
		Off        token.Offset
		ExprID     ID
		Property   string
		PropOffset token.Offset
	}

	// SuperConstructorCallExpr represents `super(args...)`, a call to the
	// superclass's init method from within an init method.
	SuperConstructorCallExpr struct {
		Off    token.Offset
		ExprID ID
		Args   []Expr
	}
)

func (n *AssignExpr) expr()               {}
func (n *BinaryExpr) expr()                {}
func (n *LogicalExpr) expr()               {}
func (n *UnaryExpr) expr()                 {}
func (n *GroupingExpr) expr()              {}
func (n *LiteralExpr) expr()               {}
func (n *VariableExpr) expr()              {}
func (n *CallExpr) expr()                  {}
func (n *ArrayExpr) expr()                 {}
func (n *ConstructorExpr) expr()           {}
func (n *GetPropertyExpr) expr()           {}
func (n *SetPropertyExpr) expr()           {}
func (n *GetIndexExpr) expr()              {}
func (n *SetIndexExpr) expr()              {}
func (n *ThisExpr) expr()                  {}
func (n *SuperExpr) expr()                 {}
func (n *SuperConstructorCallExpr) expr()  {}

func (n *AssignExpr) ID() ID              { return n.ExprID }
func (n *VariableExpr) ID() ID            { return n.ExprID }
func (n *ThisExpr) ID() ID                { return n.ExprID }
func (n *SuperExpr) ID() ID               { return n.ExprID }
func (n *SuperConstructorCallExpr) ID() ID { return n.ExprID }

func (n *AssignExpr) Offset() token.Offset              { return n.Off }
func (n *BinaryExpr) Offset() token.Offset               { return n.Off }
func (n *LogicalExpr) Offset() token.Offset              { return n.Off }
func (n *UnaryExpr) Offset() token.Offset                { return n.Off }
func (n *GroupingExpr) Offset() token.Offset             { return n.Off }
func (n *LiteralExpr) Offset() token.Offset              { return n.Off }
func (n *VariableExpr) Offset() token.Offset             { return n.Off }
func (n *CallExpr) Offset() token.Offset                 { return n.Off }
func (n *ArrayExpr) Offset() token.Offset                { return n.Off }
func (n *ConstructorExpr) Offset() token.Offset          { return n.Off }
func (n *GetPropertyExpr) Offset() token.Offset          { return n.Off }
func (n *SetPropertyExpr) Offset() token.Offset          { return n.Off }
func (n *GetIndexExpr) Offset() token.Offset             { return n.Off }
func (n *SetIndexExpr) Offset() token.Offset             { return n.Off }
func (n *ThisExpr) Offset() token.Offset                 { return n.Off }
func (n *SuperExpr) Offset() token.Offset                { return n.Off }
func (n *SuperConstructorCallExpr) Offset() token.Offset { return n.Off }

func (n *AssignExpr) Walk(v Visitor)      { walkAll(v, n.Value) }
func (n *BinaryExpr) Walk(v Visitor)      { walkAll(v, n.Left, n.Right) }
func (n *LogicalExpr) Walk(v Visitor)     { walkAll(v, n.Left, n.Right) }
func (n *UnaryExpr) Walk(v Visitor)       { walkAll(v, n.Right) }
func (n *GroupingExpr) Walk(v Visitor)    { walkAll(v, n.Inner) }
func (n *LiteralExpr) Walk(_ Visitor)     {}
func (n *VariableExpr) Walk(_ Visitor)    {}
func (n *CallExpr) Walk(v Visitor) {
	walkAll(v, n.Callee)
	for _, a := range n.Args {
		walkAll(v, a)
	}
}
func (n *ArrayExpr) Walk(v Visitor) {
	for _, e := range n.Values {
		walkAll(v, e)
	}
}
func (n *ConstructorExpr) Walk(v Visitor) {
	walkAll(v, n.Class)
	for _, a := range n.Args {
		walkAll(v, a)
	}
}
func (n *GetPropertyExpr) Walk(v Visitor) { walkAll(v, n.Object) }
func (n *SetPropertyExpr) Walk(v Visitor) { walkAll(v, n.Object, n.Value) }
func (n *GetIndexExpr) Walk(v Visitor)    { walkAll(v, n.Object, n.Index) }
func (n *SetIndexExpr) Walk(v Visitor)    { walkAll(v, n.Object, n.Index, n.Value) }
func (n *ThisExpr) Walk(_ Visitor)        {}
func (n *SuperExpr) Walk(_ Visitor)       {}
func (n *SuperConstructorCallExpr) Walk(v Visitor) {
	for _, a := range n.Args {
		walkAll(v, a)
	}
}

func walkAll(v Visitor, nodes ...Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		Walk(v, n)
	}
}
