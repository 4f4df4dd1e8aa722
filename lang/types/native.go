package types

import (
	"fmt"

	"github.com/madeso/lox-go/lang/token"
)

// NativeArgs is the typed argument helper passed to every native function
// and native-class constructor closure. It enforces arity and gives host
// code typed, bounds-checked accessors instead of raw Value type assertions.
type NativeArgs struct {
	Items []Value
	// Offset is the call site, used by hosts that want to build their own
	// diagnostic; the interpreter already reports arity/type errors using it
	// on the host's behalf.
	Offset token.Offset
}

func (a *NativeArgs) Count() int { return len(a.Items) }

// Check reports an error if fewer than n arguments were supplied.
func (a *NativeArgs) Check(n int) error {
	if len(a.Items) < n {
		return fmt.Errorf("expected at least %d argument(s), got %d", n, len(a.Items))
	}
	return nil
}

func (a *NativeArgs) Any(i int) Value {
	if i < 0 || i >= len(a.Items) {
		return NilValue
	}
	return a.Items[i]
}

func (a *NativeArgs) Int(i int) (int64, error) {
	v := a.Any(i)
	n, ok := v.(Int)
	if !ok {
		return 0, fmt.Errorf("argument %d: expected int, got %s", i, v.Type())
	}
	return int64(n), nil
}

func (a *NativeArgs) Float(i int) (float64, error) {
	v := a.Any(i)
	switch n := v.(type) {
	case Float:
		return float64(n), nil
	case Int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("argument %d: expected number, got %s", i, v.Type())
	}
}

func (a *NativeArgs) Str(i int) (string, error) {
	v := a.Any(i)
	s, ok := v.(String)
	if !ok {
		return "", fmt.Errorf("argument %d: expected string, got %s", i, v.Type())
	}
	return string(s), nil
}

func (a *NativeArgs) Instance(i int) (*Instance, error) {
	v := a.Any(i)
	in, ok := v.(*Instance)
	if !ok {
		return nil, fmt.Errorf("argument %d: expected instance, got %s", i, v.Type())
	}
	return in, nil
}

// NativeFunction wraps a host closure as a first-class callable.
type NativeFunction struct {
	Name   string
	ArityN int
	Fn     func(args *NativeArgs) (Value, error)
}

func (f *NativeFunction) String() string { return "<native fun " + f.Name + ">" }
func (f *NativeFunction) Type() string   { return "function" }
func (f *NativeFunction) Truth() bool    { return true }
func (f *NativeFunction) Arity() int     { return f.ArityN }

// NativeClass registers a host-implemented class under an integer identity:
// its constructor closure builds an opaque Go payload, and its
// getters/setters expose that payload through the same GetProperty/
// SetProperty path language instances use.
type NativeClass struct {
	Name    string
	ID      int
	Ctor    func(args *NativeArgs) (any, error)
	Getters map[string]func(payload any) (Value, error)
	Setters map[string]func(payload any, v Value) error
}

func NewNativeClass(id int, name string, ctor func(args *NativeArgs) (any, error)) *NativeClass {
	return &NativeClass{
		Name:    name,
		ID:      id,
		Ctor:    ctor,
		Getters: make(map[string]func(payload any) (Value, error)),
		Setters: make(map[string]func(payload any, v Value) error),
	}
}

func (c *NativeClass) String() string { return "<class " + c.Name + ">" }
func (c *NativeClass) Type() string   { return "class" }
func (c *NativeClass) Truth() bool    { return true }

// NativeInstance carries a NativeClass's opaque host payload, reached
// uniformly through GetProperty/SetProperty like a language Instance.
type NativeInstance struct {
	Class   *NativeClass
	Payload any
}

func (i *NativeInstance) String() string { return "<instance " + i.Class.Name + ">" }
func (i *NativeInstance) Type() string   { return "instance" }
func (i *NativeInstance) Truth() bool    { return true }

// MakeNative builds an instance of a previously registered NativeClass
// carrying payload.
func MakeNative(class *NativeClass, payload any) *NativeInstance {
	return &NativeInstance{Class: class, Payload: payload}
}
