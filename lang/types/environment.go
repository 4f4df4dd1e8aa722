package types

import "github.com/dolthub/swiss"

// Environment is a lexical frame: a name->value mapping plus an optional
// parent. The global environment is the root; each function call and each
// `{ }` block creates a child. Frames are retained as long as any live
// callable closes over them, which Go's GC handles for free.
//
// The name->value table is backed by swiss.Map, the same open-addressing
// hash map used elsewhere in this object model for interior bindings, since
// this language has no user-facing map type of its own (see DESIGN.md).
type Environment struct {
	values *swiss.Map[string, Value]
	parent *Environment
}

// NewEnvironment returns a root (global) environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8)}
}

// NewChild returns a new environment whose parent is e.
func (e *Environment) NewChild() *Environment {
	return &Environment{values: swiss.NewMap[string, Value](4), parent: e}
}

// Parent returns e's enclosing environment, or nil for the root.
func (e *Environment) Parent() *Environment { return e.parent }

// Define binds name to v in e, shadowing any existing binding of the same
// name in e (redeclaration inside one block is legal at the interpreter
// level; the resolver is what rejects it statically).
func (e *Environment) Define(name string, v Value) {
	e.values.Put(name, v)
}

// ancestor walks distance parent links up from e.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env == nil {
			return nil
		}
		env = env.parent
	}
	return env
}

// GetAtOrNull returns the value bound to name exactly distance frames above
// e, or (nil, false) if that frame holds no such binding.
func (e *Environment) GetAtOrNull(distance int, name string) (Value, bool) {
	env := e.ancestor(distance)
	if env == nil {
		return nil, false
	}
	return env.values.Get(name)
}

// SetAtOrFalse assigns name to v exactly distance frames above e, returning
// false (without effect) if that frame holds no existing binding of name.
func (e *Environment) SetAtOrFalse(distance int, name string, v Value) bool {
	env := e.ancestor(distance)
	if env == nil {
		return false
	}
	if _, ok := env.values.Get(name); !ok {
		return false
	}
	env.values.Put(name, v)
	return true
}

// GetOrNull reads name directly from e (used only for globals, which chain
// no further).
func (e *Environment) GetOrNull(name string) (Value, bool) {
	return e.values.Get(name)
}

// SetOrFalse assigns name in e directly, returning false if e has no such
// binding (used only for globals).
func (e *Environment) SetOrFalse(name string, v Value) bool {
	if _, ok := e.values.Get(name); !ok {
		return false
	}
	e.values.Put(name, v)
	return true
}
