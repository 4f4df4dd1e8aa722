package ast_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/diff"
	"github.com/stretchr/testify/require"

	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/parser"
	"github.com/madeso/lox-go/lang/scanner"
	"github.com/madeso/lox-go/lang/token"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	s := token.NewSource("test", []byte(src))
	sink := &diag.List{}
	toks, scanErrs := scanner.New(s, sink).ScanAll()
	require.Zero(t, scanErrs, "%v", sink.Diagnostics)
	prog, parseErrs := parser.New(s, toks, sink).Parse()
	require.Zero(t, parseErrs, "%v", sink.Diagnostics)
	return prog
}

func TestPrinterPrintsOneLinePerNodeIndentedByDepth(t *testing.T) {
	prog := parse(t, `var a = 1 + 2;`)

	var buf strings.Builder
	p := &ast.Printer{Output: &buf}
	require.NoError(t, p.Print(prog))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"var a",
		". binary +",
		". . literal 1",
		". . literal 2",
	}, lines)
}

func TestPrinterLabelsEveryStatementAndExprKind(t *testing.T) {
	prog := parse(t, `
		class Box : Container {
			public var size = 0;
			fun init(s) { this.size = s; }
		}
		if (true) { print "yes"; } else { print "no"; }
		var xs = [1, 2];
		print xs[0];
		xs[0] = new Box(1).size;
	`)

	var buf strings.Builder
	p := &ast.Printer{Output: &buf}
	require.NoError(t, p.Print(prog))

	out := buf.String()
	for _, want := range []string{
		"class Box", "function init", "var size",
		"if", "print", "block",
		"var xs", "array (2 values)",
		"index get", "index set", "new (1 args)", "get .size",
	} {
		require.Contains(t, out, want, "missing label %q in:\n%s", want, out)
	}
}

func TestPrinterPropagatesWriteError(t *testing.T) {
	prog := parse(t, `print 1;`)
	p := &ast.Printer{Output: failingWriter{}}
	require.Error(t, p.Print(prog))
}

// TestPrinterIsDeterministic parses the same source into two independent
// ASTs (each parse with its own IDGen) and checks their printer dumps agree
// character for character.
func TestPrinterIsDeterministic(t *testing.T) {
	src := `
		class Shape {
			public var name = "shape";
			public fun describe() { return this.name; }
		}
		class Circle : Shape {
			public fun describe() { return "circle: " + super.describe(); }
		}
		var c = new Circle();
		print c.describe();
	`
	progA := parse(t, src)
	progB := parse(t, src)

	var bufA, bufB strings.Builder
	require.NoError(t, (&ast.Printer{Output: &bufA}).Print(progA))
	require.NoError(t, (&ast.Printer{Output: &bufB}).Print(progB))

	if d := diff.Diff(bufA.String(), bufB.String()); d != "" {
		t.Fatalf("printer dump not deterministic across independent parses:\n%s", d)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}
