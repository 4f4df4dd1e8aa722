// Package resolver implements the static analysis pass between parsing and
// interpretation: it walks the AST once, builds a per-use scope-distance map
// keyed by expression id, and validates every name-resolution and
// class/function-shape invariant (self-initializer reads, top-level/
// initializer return misuse, this/super validity, duplicate class members,
// self-inheritance).
//
// The scope-stack shape (a slice of name->binding maps, pushed/popped around
// blocks and functions) uses a simple declared/defined two-phase binding.
package resolver

import (
	"fmt"

	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/token"
)

// functionKind tracks what return/this validity rules apply to the code
// currently being resolved.
type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

// classKind tracks whether `this`/`super` are legal at all, and whether
// `super` specifically has somewhere to resolve to.
type classKind int

const (
	classNone classKind = iota
	classClass
	classDerived
)

type binding struct {
	offset  token.Offset
	defined bool
}

// Result maps a name-resolving expression's id to the number of enclosing
// environments the interpreter must ascend to find its declaration. An id
// with no entry in Result is a global reference.
type Result map[ast.ID]int

// Resolve walks prog and returns the scope-distance map. ok is false if any
// resolution error was reported, in which case the map is nil.
func Resolve(prog *ast.Program, sink diag.Sink) (Result, bool) {
	r := &resolver{sink: sink, result: make(Result), classParents: make(map[string]string)}
	// No scope is pushed for the top level: an empty scope stack is how
	// declare/resolveLocal recognize a reference as global. Globals may be
	// freely redeclared, and top-level reads always fall back to a direct
	// global lookup at runtime instead of a resolved distance.
	for _, s := range prog.Stmts {
		r.resolveStmt(s)
	}
	if r.errors > 0 {
		return nil, false
	}
	return r.result, true
}

type resolver struct {
	sink   diag.Sink
	scopes []map[string]*binding
	result Result
	errors int

	currentFunction functionKind
	currentClass    classKind
	insideStatic    bool

	// classParents records the superclass name of every class seen so far,
	// used to detect indirect self-inheritance cycles (A : B, B : A), not
	// just the direct `class Oops : Oops` case.
	classParents map[string]string
}

func (r *resolver) errorf(off token.Offset, format string, args ...any) {
	r.errors++
	if r.sink != nil {
		r.sink.OnError(off, fmt.Sprintf(format, args...))
	}
}

func (r *resolver) note(off token.Offset, format string, args ...any) {
	if r.sink != nil {
		r.sink.OnNote(off, fmt.Sprintf(format, args...))
	}
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, make(map[string]*binding)) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }
func (r *resolver) top() map[string]*binding {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare adds name to the innermost scope as "declared but not defined",
// reporting a duplicate-declaration error (plus a note at the prior
// declaration) if it already exists there. It is a no-op at global scope
// (no scope is ever pushed for the top level), since globals may be
// redeclared freely.
func (r *resolver) declare(name string, off token.Offset) {
	scope := r.top()
	if scope == nil {
		return
	}
	if prior, ok := scope[name]; ok {
		r.errorf(off, "There is already a variable with this name in this scope.")
		r.note(prior.offset, "previous declaration of '%s' is here", name)
		return
	}
	scope[name] = &binding{offset: off}
}

func (r *resolver) define(name string) {
	scope := r.top()
	if scope == nil {
		return
	}
	if b, ok := scope[name]; ok {
		b.defined = true
	}
}

// resolveLocal walks scopes from innermost outward; if found, it records the
// distance from the innermost scope to the declaring one. No entry is
// recorded for a name found nowhere (treated as global at interpretation
// time).
func (r *resolver) resolveLocal(id ast.ID, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.result[id] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name, s.NameOffset)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name, s.NameOffset)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ast.ClassStmt:
		r.resolveClass(s)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.ReturnStmt:
		if r.currentFunction == fnNone {
			r.errorf(s.Off, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == fnInitializer {
				r.errorf(s.Off, "Can't return value from initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	default:
		panic(fmt.Sprintf("resolver: unexpected stmt %T", stmt))
	}
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosing := r.currentFunction
	r.currentFunction = kind
	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p, fn.Off)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
	r.currentFunction = enclosing
}

func (r *resolver) resolveClass(cls *ast.ClassStmt) {
	r.declare(cls.Name, cls.NameOffset)
	r.define(cls.Name)

	enclosingClass := r.currentClass
	r.currentClass = classClass

	wasStatic := r.insideStatic
	r.insideStatic = true
	for _, m := range cls.StaticMethods {
		r.resolveFunction(m.Fn, fnFunction)
	}
	r.insideStatic = wasStatic

	openedSuperScope := false
	if cls.Superclass != nil {
		if cls.Superclass.Name == cls.Name {
			r.errorf(cls.Superclass.Off, "A class can't inherit from itself.")
		} else if r.inheritanceCycle(cls.Name, cls.Superclass.Name) {
			r.errorf(cls.Superclass.Off, "A class can't inherit from itself.")
		}
		r.classParents[cls.Name] = cls.Superclass.Name
		r.resolveExpr(cls.Superclass)

		r.currentClass = classDerived
		r.beginScope()
		r.declare("super", cls.Superclass.Off)
		r.define("super")
		openedSuperScope = true
	}

	r.beginScope()
	r.declare("this", cls.NameOffset)
	r.define("this")

	for _, m := range cls.Methods {
		kind := fnMethod
		if m.Name == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(m.Fn, kind)
	}

	r.checkDuplicateMembers(cls)

	r.endScope() // this
	if openedSuperScope {
		r.endScope() // super
	}
	r.currentClass = enclosingClass
}

// inheritanceCycle reports whether chasing parent from `from` ever reaches
// `name`, catching indirect self-inheritance (A:B, B:A) in addition to the
// direct case already checked by the caller.
func (r *resolver) inheritanceCycle(name, from string) bool {
	seen := map[string]bool{name: true}
	for cur := from; cur != ""; {
		if seen[cur] {
			return cur == name
		}
		seen[cur] = true
		next, ok := r.classParents[cur]
		if !ok {
			return false
		}
		cur = next
	}
	return false
}

// checkDuplicateMembers groups every declared field and instance method by
// name across the whole class body and reports one error at the last
// occurrence plus one note per earlier occurrence (a single duplicate pair
// is just the n=2 case of this rule).
func (r *resolver) checkDuplicateMembers(cls *ast.ClassStmt) {
	type occurrence struct {
		name string
		off  token.Offset
	}
	var all []occurrence
	for _, f := range cls.Members {
		all = append(all, occurrence{f.Name, f.NameOffset})
	}
	for _, m := range cls.Methods {
		all = append(all, occurrence{m.Name, m.NameOffset})
	}

	byName := make(map[string][]token.Offset)
	order := make([]string, 0, len(all))
	for _, o := range all {
		if _, ok := byName[o.name]; !ok {
			order = append(order, o.name)
		}
		byName[o.name] = append(byName[o.name], o.off)
	}

	for _, name := range order {
		offs := byName[name]
		if len(offs) < 2 {
			continue
		}
		last := offs[len(offs)-1]
		r.errorf(last, "'%s' declared multiple times.", name)
		for _, earlier := range offs[:len(offs)-1] {
			r.note(earlier, "'%s' previously declared here", name)
		}
	}
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveName(e.ExprID, e.Name, e.Off)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)

	case *ast.LiteralExpr:
		// no-op

	case *ast.VariableExpr:
		r.resolveName(e.ExprID, e.Name, e.Off)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.ArrayExpr:
		for _, v := range e.Values {
			r.resolveExpr(v)
		}

	case *ast.ConstructorExpr:
		r.resolveExpr(e.Class)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetPropertyExpr:
		r.resolveExpr(e.Object)

	case *ast.SetPropertyExpr:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Value)

	case *ast.GetIndexExpr:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Index)

	case *ast.SetIndexExpr:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Index)
		r.resolveExpr(e.Value)

	case *ast.ThisExpr:
		if r.insideStatic {
			r.errorf(e.Off, "Can't use 'this' in a static method.")
		} else if r.currentClass == classNone {
			r.errorf(e.Off, "Can't use 'this' outside of a class.")
		}
		r.resolveLocal(e.ExprID, "this")

	case *ast.SuperExpr:
		r.checkSuperUsable(e.Off)
		r.resolveLocal(e.ExprID, "super")

	case *ast.SuperConstructorCallExpr:
		r.checkSuperUsable(e.Off)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
		r.resolveLocal(e.ExprID, "super")

	default:
		panic(fmt.Sprintf("resolver: unexpected expr %T", expr))
	}
}

func (r *resolver) checkSuperUsable(off token.Offset) {
	switch {
	case r.insideStatic:
		r.errorf(off, "Can't use 'super' in a static method.")
	case r.currentClass == classNone:
		r.errorf(off, "Can't use 'super' outside of a class.")
	case r.currentClass == classClass:
		r.errorf(off, "Can't use 'super' in a class with no superclass.")
	}
}

// resolveName implements the Variable/Assign self-initializer check ("Can't
// read local variable in its own initializer.") and then resolves the name
// like any other local/global reference.
func (r *resolver) resolveName(id ast.ID, name string, off token.Offset) {
	if scope := r.top(); scope != nil {
		if b, ok := scope[name]; ok && !b.defined {
			r.errorf(off, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(id, name)
}
