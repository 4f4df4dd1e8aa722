package types

import "github.com/madeso/lox-go/lang/ast"

// FunctionKind distinguishes the three flavors of language-defined callable,
// each with slightly different `return`/`this` rules enforced by the
// resolver and interpreted differently on call: a bare function has no
// receiver, a method is bound to an instance, and an initializer
// additionally returns `this` on a bare `return`.
type FunctionKind int

const (
	KindFunction FunctionKind = iota
	KindMethod
	KindInitializer
)

// Function is a language-defined function or method: declared parameters,
// body statements, the environment it closes over, and its kind. lang/interp
// dispatches on this concrete type to execute a call; this package only
// holds the data (see DESIGN.md on why Callable dispatch isn't an interface
// method here).
type Function struct {
	Name    string
	Params  []string
	Body    []ast.Stmt
	Closure *Environment
	Kind    FunctionKind
}

func (f *Function) String() string { return "<fn " + f.Name + ">" }
func (f *Function) Type() string   { return "function" }
func (f *Function) Truth() bool    { return true }
func (f *Function) Arity() int     { return len(f.Params) }

// BoundMethod pairs an underlying callable with an implicit receiver; calling
// it prepends the receiver as the `this` binding for the call.
type BoundMethod struct {
	Receiver Value
	Method   *Function
}

func (m *BoundMethod) String() string { return "<fn " + m.Method.Name + ">" }
func (m *BoundMethod) Type() string   { return "function" }
func (m *BoundMethod) Truth() bool    { return true }
func (m *BoundMethod) Arity() int     { return m.Method.Arity() }
