package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/interp"
)

func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var failed bool
	for _, path := range args {
		prog, locals, err := resolveFile(stdio, path)
		if err != nil {
			failed = true
			continue
		}

		sink := &diag.List{}
		out := bufio.NewWriter(stdio.Stdout)
		it := interp.New(sink, func(line string) { fmt.Fprintln(out, line) })
		ok := it.Run(prog, locals)
		out.Flush()
		if !ok {
			sink.Sort()
			fmt.Fprintln(stdio.Stderr, sink.Error())
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("run: one or more files failed")
	}
	return nil
}
