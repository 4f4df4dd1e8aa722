// Package types implements the runtime object model: the tagged value sum
// (nil, bool, number_int, number_float, string, array, callable, klass,
// instance, native_package), the lexical Environment chain, and the
// native-host registration API. Values are plain Go data; nothing in this
// package evaluates AST nodes or walks statements — that is lang/interp's
// job, which dispatches on the concrete types defined here.
package types

import "fmt"

// Value is implemented by every runtime object: a small String/Type/Truth
// interface, trimmed to the subset this language's simpler, GC-free object
// model needs (no Freeze, since this interpreter has no concurrent
// publishing story).
type Value interface {
	// String renders the value the way `print` shows it at top level.
	String() string
	// Type names the value's kind, used in type-mismatch diagnostics.
	Type() string
	// Truth reports whether the value is truthy: everything except nil and
	// false is truthy.
	Truth() bool
}

// Nil is the unique nil value.
type Nil struct{}

func (Nil) String() string { return "nil" }
func (Nil) Type() string   { return "nil" }
func (Nil) Truth() bool    { return false }

// NilValue is the single shared Nil instance; every nil-producing site
// returns this value rather than allocating a fresh Nil{}.
var NilValue Value = Nil{}

// Bool is a boolean value.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Type() string { return "bool" }
func (b Bool) Truth() bool  { return bool(b) }

// Int is a 64-bit signed integer value.
type Int int64

func (i Int) String() string { return fmt.Sprintf("%d", int64(i)) }
func (i Int) Type() string   { return "int" }
func (i Int) Truth() bool    { return true }

// Float is a 64-bit IEEE-754 float value.
type Float float64

func (f Float) String() string { return fmt.Sprintf("%g", float64(f)) }
func (f Float) Type() string   { return "float" }
func (f Float) Truth() bool    { return true }

// String is a text value. Named String (not Str) to read naturally at call
// sites (types.String("x")) even though it shadows the String() method name
// on other types; the method below satisfies the Value interface with Go's
// usual named-type method resolution.
type String string

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }
func (s String) Truth() bool    { return true }

// Equal implements `==`/`!=` structural comparison: nil==nil, bools/numbers/
// strings compare by value within kind, everything else (arrays, instances,
// callables, classes, packages) compares by identity.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return a == b
	}
}
