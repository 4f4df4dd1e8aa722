package interp

import "github.com/madeso/lox-go/lang/types"

// GlobalScope exposes the host registration API rooted at the global
// environment: native functions and native classes defined here are visible
// to every script the Interpreter runs.
type GlobalScope struct {
	it *Interpreter
}

// Global returns the Scope for defining names directly in the global
// environment.
func (it *Interpreter) Global() *GlobalScope { return &GlobalScope{it: it} }

// DefineNativeFunction binds name to a native callable of the given arity.
func (s *GlobalScope) DefineNativeFunction(name string, arity int, fn func(*types.NativeArgs) (types.Value, error)) {
	s.it.globals.Define(name, &types.NativeFunction{Name: name, ArityN: arity, Fn: fn})
}

// RegisterNativeClass exposes a first-class host-backed class under name,
// returning the handle used both to add getters/setters and, later, to
// build instances via types.MakeNative.
func (s *GlobalScope) RegisterNativeClass(name string, ctor func(*types.NativeArgs) (any, error)) *types.NativeClass {
	s.it.nextID++
	nc := types.NewNativeClass(s.it.nextID, name, ctor)
	s.it.natives[nc.ID] = nc
	s.it.globals.Define(name, nc)
	return nc
}

// PackageScope exposes the same registration API as GlobalScope, scoped to
// one native package in a dotted host namespace: packages are read-only
// property bags, never new-able or callable themselves.
type PackageScope struct {
	it  *Interpreter
	pkg *types.Package
}

// Package locates or creates the chain of nested packages named by path,
// rooted in the global environment: a path like a.b.c creates or locates a
// chain of packages rooted there.
func (it *Interpreter) Package(path ...string) *PackageScope {
	if len(path) == 0 {
		panic("interp: Package requires at least one path segment")
	}

	var pkg *types.Package
	if existing, ok := it.globals.GetOrNull(path[0]); ok {
		p, ok := existing.(*types.Package)
		if !ok {
			panic("interp: " + path[0] + " is already bound to a non-package value")
		}
		pkg = p
	} else {
		pkg = types.NewPackage(path[0])
		it.globals.Define(path[0], pkg)
	}

	for _, seg := range path[1:] {
		pkg = pkg.Child(seg)
	}
	return &PackageScope{it: it, pkg: pkg}
}

func (s *PackageScope) DefineNativeFunction(name string, arity int, fn func(*types.NativeArgs) (types.Value, error)) {
	s.pkg.Members[name] = &types.NativeFunction{Name: name, ArityN: arity, Fn: fn}
}

func (s *PackageScope) RegisterNativeClass(name string, ctor func(*types.NativeArgs) (any, error)) *types.NativeClass {
	s.it.nextID++
	nc := types.NewNativeClass(s.it.nextID, name, ctor)
	s.it.natives[nc.ID] = nc
	s.pkg.Members[name] = nc
	return nc
}

// AddNativeGetter installs a lazily-computed property, evaluated on every
// read rather than memoized (packages only).
func (s *PackageScope) AddNativeGetter(name string, generator func() types.Value) {
	s.pkg.Getters[name] = generator
}
