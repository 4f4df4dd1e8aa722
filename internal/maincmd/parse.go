package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/parser"
	"github.com/madeso/lox-go/lang/scanner"
	"github.com/madeso/lox-go/lang/token"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var failed bool
	for _, path := range args {
		if _, err := parseFile(stdio, path); err != nil {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("parse: one or more files failed")
	}
	return nil
}

// parseFile runs the scanner and parser over path, printing the resulting
// syntax tree and returning it for reuse by Resolve and Run.
func parseFile(stdio mainer.Stdio, path string) (*ast.Program, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return nil, err
	}

	src := token.NewSource(path, text)
	sink := &diag.List{}
	toks, scanErrs := scanner.New(src, sink).ScanAll()
	prog, parseErrs := parser.New(src, toks, sink).Parse()

	printer := ast.Printer{Output: stdio.Stdout}
	if err := printer.Print(prog); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return nil, err
	}

	if scanErrs+parseErrs > 0 {
		sink.Sort()
		fmt.Fprintln(stdio.Stderr, sink.Error())
		return nil, sink
	}
	return prog, nil
}
