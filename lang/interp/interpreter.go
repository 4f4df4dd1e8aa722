// Package interp implements the tree-walking evaluator: given a parsed and
// resolved *ast.Program, it executes statements for their side effects
// (print output via a host callback) and dispatches expression evaluation
// over the lang/types object model. It also exposes the host-facing native
// package/class registration API.
package interp

import (
	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/resolver"
	"github.com/madeso/lox-go/lang/token"
	"github.com/madeso/lox-go/lang/types"
)

// Value re-exports types.Value so callers of this package rarely need to
// import lang/types directly for the common case of reading a result back.
type Value = types.Value

// PrintFunc is the host-provided print-output callback: one invocation per
// evaluated print statement, with the line already rendered and not
// newline-terminated.
type PrintFunc func(line string)

// Interpreter holds the root (global) environment plus a cursor environment,
// and the registry of host-registered native classes keyed by integer
// identity.
type Interpreter struct {
	globals *types.Environment
	env     *types.Environment

	sink  diag.Sink
	print PrintFunc

	locals resolver.Result

	natives map[int]*types.NativeClass
	nextID  int
}

// New returns an Interpreter with a fresh global environment, reporting
// runtime errors to sink and print statements through print.
func New(sink diag.Sink, print PrintFunc) *Interpreter {
	g := types.NewEnvironment()
	return &Interpreter{globals: g, env: g, sink: sink, print: print, natives: make(map[int]*types.NativeClass)}
}

// Globals exposes the root environment, e.g. for a REPL that wants to
// persist bindings across successive Run calls.
func (it *Interpreter) Globals() *types.Environment { return it.globals }

// Run executes prog's statements in the global environment using the
// resolver's scope-distance map, returning true iff no runtime error was
// raised.
func (it *Interpreter) Run(prog *ast.Program, locals resolver.Result) bool {
	it.locals = locals
	it.env = it.globals
	for _, s := range prog.Stmts {
		if err := it.execStmt(s); err != nil {
			it.report(err)
			return false
		}
	}
	return true
}

func (it *Interpreter) report(err error) {
	re, ok := err.(*RuntimeError)
	if !ok {
		// A *returnSignal escaping to the top level would mean the resolver
		// failed to reject a top-level return; nothing sensible to report.
		return
	}
	if it.sink == nil {
		return
	}
	it.sink.OnError(re.Offset, re.Message)
	for _, n := range re.Notes {
		it.sink.OnNote(n.Offset, n.Message)
	}
}

// execBlock runs stmts with env installed as the cursor environment,
// restoring the previous cursor on every exit path (normal, error, or
// return-unwind).
func (it *Interpreter) execBlock(stmts []ast.Stmt, env *types.Environment) error {
	prev := it.env
	it.env = env
	defer func() { it.env = prev }()

	for _, s := range stmts {
		if err := it.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// lookupVariable implements the Variable read rule: resolved local reads
// ascend exactly `distance` frames, unresolved names fall back to a direct
// global read.
func (it *Interpreter) lookupVariable(id ast.ID, name string, off token.Offset) (Value, error) {
	if distance, ok := it.locals[id]; ok {
		if v, ok := it.env.GetAtOrNull(distance, name); ok {
			return v, nil
		}
		return nil, it.newErr(off, "Variable %s was neither declared in global nor local scope", name)
	}
	if v, ok := it.globals.GetOrNull(name); ok {
		return v, nil
	}
	return nil, it.newErr(off, "Undefined variable %s", name)
}

// assignVariable implements the Assign rule, symmetric to lookupVariable.
func (it *Interpreter) assignVariable(id ast.ID, name string, off token.Offset, v Value) error {
	if distance, ok := it.locals[id]; ok {
		if it.env.SetAtOrFalse(distance, name, v) {
			return nil
		}
		return it.newErr(off, "Variable %s was neither declared in global nor local scope", name)
	}
	if it.globals.SetOrFalse(name, v) {
		return nil
	}
	return it.newErr(off, "Global variable %s was never declared", name)
}
