package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/parser"
	"github.com/madeso/lox-go/lang/scanner"
	"github.com/madeso/lox-go/lang/token"
)

func parse(t *testing.T, src string) (*ast.Program, *diag.List) {
	t.Helper()
	s := token.NewSource("test", []byte(src))
	sink := &diag.List{}
	toks, scanErrs := scanner.New(s, sink).ScanAll()
	require.Zero(t, scanErrs, "%v", sink.Diagnostics)
	prog, parseErrs := parser.New(s, toks, sink).Parse()
	require.Zero(t, parseErrs, "%v", sink.Diagnostics)
	return prog, sink
}

func TestParseVarDeclaration(t *testing.T) {
	prog, _ := parse(t, `var a = 1 + 2;`)
	require.Len(t, prog.Stmts, 1)
	v, ok := prog.Stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	require.Equal(t, "a", v.Name)
	bin, ok := v.Initializer.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.PLUS, bin.Op)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	prog, _ := parse(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	require.Len(t, prog.Stmts, 1)
	block, ok := prog.Stmts[0].(*ast.BlockStmt)
	require.True(t, ok, "%T", prog.Stmts[0])
	require.Len(t, block.Stmts, 2)

	_, ok = block.Stmts[0].(*ast.VarStmt)
	require.True(t, ok, "initializer should be the first statement")

	while, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok, "%T", block.Stmts[1])

	body, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2)
	// the original `{ print i; }` body is kept as its own block
	inner, ok := body.Stmts[0].(*ast.BlockStmt)
	require.True(t, ok, "%T", body.Stmts[0])
	_, ok = inner.Stmts[0].(*ast.PrintStmt)
	require.True(t, ok)
	_, ok = body.Stmts[1].(*ast.ExpressionStmt)
	require.True(t, ok, "increment should be appended to the loop body")
}

func TestParseClassWithFieldsAndMethods(t *testing.T) {
	prog, _ := parse(t, `
		class Box : Container {
			public var size = 0;
			fun init(s) { this.size = s; }
			static fun empty() { return new Box(0); }
		}
	`)
	require.Len(t, prog.Stmts, 1)
	cls, ok := prog.Stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	require.Equal(t, "Box", cls.Name)
	require.NotNil(t, cls.Superclass)
	require.Equal(t, "Container", cls.Superclass.Name)
	require.Len(t, cls.Members, 1)
	require.Equal(t, "size", cls.Members[0].Name)
	require.Len(t, cls.Methods, 1)
	require.Equal(t, "init", cls.Methods[0].Name)
	require.Len(t, cls.StaticMethods, 1)
	require.Equal(t, "empty", cls.StaticMethods[0].Name)
}

func TestParseArrayLiteralAndIndex(t *testing.T) {
	prog, _ := parse(t, `var xs = [1, 2, 3]; print xs[0];`)
	require.Len(t, prog.Stmts, 2)
	v := prog.Stmts[0].(*ast.VarStmt)
	arr, ok := v.Initializer.(*ast.ArrayExpr)
	require.True(t, ok)
	require.Len(t, arr.Values, 3)

	p := prog.Stmts[1].(*ast.PrintStmt)
	_, ok = p.Expr.(*ast.GetIndexExpr)
	require.True(t, ok)
}

func TestParseSuperCallAndProperty(t *testing.T) {
	prog, _ := parse(t, `
		class Dog : Animal {
			fun speak() { super.speak(); }
		}
	`)
	cls := prog.Stmts[0].(*ast.ClassStmt)
	fn := cls.Methods[0].Fn
	require.Len(t, fn.Body, 1)
	exprStmt := fn.Body[0].(*ast.ExpressionStmt)
	call, ok := exprStmt.Expr.(*ast.CallExpr)
	require.True(t, ok)
	_, ok = call.Callee.(*ast.SuperExpr)
	require.True(t, ok)
}

func TestParseMissingSemicolonReportsError(t *testing.T) {
	s := token.NewSource("test", []byte(`var a = 1`))
	sink := &diag.List{}
	toks, _ := scanner.New(s, sink).ScanAll()
	_, errs := parser.New(s, toks, sink).Parse()
	require.Equal(t, 1, errs)
}

func TestParseSynchronizesAfterError(t *testing.T) {
	s := token.NewSource("test", []byte(`
		var a = ;
		var b = 2;
	`))
	sink := &diag.List{}
	toks, _ := scanner.New(s, sink).ScanAll()
	prog, errs := parser.New(s, toks, sink).Parse()
	require.Equal(t, 1, errs)
	// parsing resumes after the bad declaration and still recovers the
	// next one.
	var found bool
	for _, st := range prog.Stmts {
		if v, ok := st.(*ast.VarStmt); ok && v.Name == "b" {
			found = true
		}
	}
	require.True(t, found)
}
