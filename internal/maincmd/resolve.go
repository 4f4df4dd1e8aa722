package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/resolver"
)

func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var failed bool
	for _, path := range args {
		if _, _, err := resolveFile(stdio, path); err != nil {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("resolve: one or more files failed")
	}
	return nil
}

// resolveFile parses path and resolves it, printing the syntax tree
// followed by the expr-id -> scope-distance table Run consumes directly.
func resolveFile(stdio mainer.Stdio, path string) (*ast.Program, resolver.Result, error) {
	prog, err := parseFile(stdio, path)
	if err != nil {
		return nil, nil, err
	}

	sink := &diag.List{}
	locals, ok := resolver.Resolve(prog, sink)
	if !ok {
		sink.Sort()
		fmt.Fprintln(stdio.Stderr, sink.Error())
		return nil, nil, sink
	}

	fmt.Fprintf(stdio.Stdout, "resolved %d local reference(s):\n", len(locals))
	for id, dist := range locals {
		fmt.Fprintf(stdio.Stdout, "  expr#%d -> %d\n", id, dist)
	}
	return prog, locals, nil
}
