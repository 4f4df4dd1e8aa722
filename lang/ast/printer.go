package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes an indented, one-line-per-node dump of an AST, primarily
// useful for debugging the parser and resolver by hand. It is not involved
// in program execution.
type Printer struct {
	Output io.Writer
}

// Print walks n and writes one line per node, indented by nesting depth. A
// *Program gets no line of its own: its top-level statements print at depth
// zero.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output}
	if prog, ok := n.(*Program); ok {
		for _, s := range prog.Stmts {
			Walk(pp, s)
		}
		return pp.err
	}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(". ", p.depth), label(n))
	p.depth++
	return p
}

func label(n Node) string {
	switch n := n.(type) {
	case *AssignExpr:
		return "assign " + n.Name
	case *BinaryExpr:
		return "binary " + n.Op.String()
	case *LogicalExpr:
		return "logical " + n.Op.String()
	case *UnaryExpr:
		return "unary " + n.Op.String()
	case *GroupingExpr:
		return "grouping"
	case *LiteralExpr:
		return "literal " + n.Value.Raw
	case *VariableExpr:
		return "variable " + n.Name
	case *CallExpr:
		return fmt.Sprintf("call (%d args)", len(n.Args))
	case *ArrayExpr:
		return fmt.Sprintf("array (%d values)", len(n.Values))
	case *ConstructorExpr:
		return fmt.Sprintf("new (%d args)", len(n.Args))
	case *GetPropertyExpr:
		return "get ." + n.Name
	case *SetPropertyExpr:
		return "set ." + n.Name
	case *GetIndexExpr:
		return "index get"
	case *SetIndexExpr:
		return "index set"
	case *ThisExpr:
		return "this"
	case *SuperExpr:
		return "super." + n.Property
	case *SuperConstructorCallExpr:
		return fmt.Sprintf("super call (%d args)", len(n.Args))
	case *BlockStmt:
		return fmt.Sprintf("block (%d stmts)", len(n.Stmts))
	case *ClassStmt:
		return "class " + n.Name
	case *FunctionStmt:
		return "function " + n.Name
	case *ExpressionStmt:
		return "expr stmt"
	case *IfStmt:
		return "if"
	case *PrintStmt:
		return "print"
	case *ReturnStmt:
		return "return"
	case *VarStmt:
		return "var " + n.Name
	case *WhileStmt:
		return "while"
	default:
		return fmt.Sprintf("%T", n)
	}
}
