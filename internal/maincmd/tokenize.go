package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/scanner"
	"github.com/madeso/lox-go/lang/token"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var failed bool
	for _, path := range args {
		if err := tokenizeFile(stdio, path); err != nil {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("tokenize: one or more files failed")
	}
	return nil
}

func tokenizeFile(stdio mainer.Stdio, path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	src := token.NewSource(path, text)
	sink := &diag.List{}
	toks, errCount := scanner.New(src, sink).ScanAll()
	for _, tv := range toks {
		line, col := src.Position(tv.Off.Start)
		fmt.Fprintf(stdio.Stdout, "%s:%d:%d: %s", path, line, col, tv.Token)
		if lit := tv.Value.Raw; lit != "" {
			fmt.Fprintf(stdio.Stdout, " %s", lit)
		}
		fmt.Fprintln(stdio.Stdout)
	}
	if errCount > 0 {
		sink.Sort()
		fmt.Fprintln(stdio.Stderr, sink.Error())
		return sink
	}
	return nil
}
