package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/interp"
	"github.com/madeso/lox-go/lang/parser"
	"github.com/madeso/lox-go/lang/resolver"
	"github.com/madeso/lox-go/lang/scanner"
	"github.com/madeso/lox-go/lang/token"
)

// Repl reads one line at a time, parsing and running each as its own
// program but sharing one Interpreter so top-level var/class/function
// declarations persist across lines.
func (c *Cmd) Repl(ctx context.Context, stdio mainer.Stdio, args []string) error {
	runtimeSink := &diag.List{}
	it := interp.New(runtimeSink, func(line string) { fmt.Fprintln(stdio.Stdout, line) })

	scan := bufio.NewScanner(stdio.Stdin)
	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if !scan.Scan() {
			return scan.Err()
		}
		line := scan.Text()
		if line == "" {
			continue
		}

		src := token.NewSource("<repl>", []byte(line))
		sink := &diag.List{}
		toks, scanErrs := scanner.New(src, sink).ScanAll()
		prog, parseErrs := parser.New(src, toks, sink).Parse()
		if scanErrs+parseErrs > 0 {
			sink.Sort()
			fmt.Fprintln(stdio.Stderr, sink.Error())
			continue
		}

		locals, ok := resolver.Resolve(prog, sink)
		if !ok {
			sink.Sort()
			fmt.Fprintln(stdio.Stderr, sink.Error())
			continue
		}

		if !it.Run(prog, locals) {
			runtimeSink.Sort()
			fmt.Fprintln(stdio.Stderr, runtimeSink.Error())
			runtimeSink.Diagnostics = nil
		}
	}
}
