package interp

import (
	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/token"
	"github.com/madeso/lox-go/lang/types"
)

func (it *Interpreter) evalArgs(exprs []ast.Expr) ([]Value, error) {
	args := make([]Value, len(exprs))
	for i, a := range exprs {
		v, err := it.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (it *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := it.eval(e.Callee)
	if err != nil {
		return nil, err
	}
	args, err := it.evalArgs(e.Args)
	if err != nil {
		return nil, err
	}
	return it.call(callee, args, e.Off)
}

// call dispatches a call expression's callee to the matching callable kind.
// Classes are deliberately excluded: calling one directly is the
// distinguished "forgot new" error.
func (it *Interpreter) call(callee Value, args []Value, callOff token.Offset) (Value, error) {
	switch c := callee.(type) {
	case *types.Function:
		return it.callFunction(c, nil, args, callOff)

	case *types.BoundMethod:
		return it.callFunction(c.Method, c.Receiver, args, callOff)

	case *types.NativeFunction:
		return it.callNative(c, args, callOff)

	case *types.Klass:
		return nil, it.newErrWithNote(callOff,
			"class is not a callable, evaluates to "+c.String(),
			callOff, "did you forget to use new?")

	case *types.NativeClass:
		return nil, it.newErrWithNote(callOff,
			"class is not a callable, evaluates to "+c.String(),
			callOff, "did you forget to use new?")

	default:
		return nil, it.newErr(callOff, "Can only call functions and classes.")
	}
}

// callFunction executes a language function or method body. receiver is nil
// for a bare function; for a method it is bound to `this` in its own frame,
// nested between the closure and the parameter frame, mirroring the
// resolver's scope nesting (super scope, then a this scope, then the
// parameter scope) so resolved distances land on the right runtime frame. A
// return unwinds via *returnSignal; falling off the end of an initializer
// yields the receiver.
func (it *Interpreter) callFunction(fn *types.Function, receiver Value, args []Value, callOff token.Offset) (Value, error) {
	if len(args) != fn.Arity() {
		return nil, it.newErr(callOff, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}

	env := fn.Closure
	if receiver != nil {
		env = env.NewChild()
		env.Define("this", receiver)
	}
	env = env.NewChild()
	for i, p := range fn.Params {
		env.Define(p, args[i])
	}

	err := it.execBlock(fn.Body, env)
	if err == nil {
		if fn.Kind == types.KindInitializer {
			return receiver, nil
		}
		return types.NilValue, nil
	}

	if rs, ok := asReturn(err); ok {
		if fn.Kind == types.KindInitializer {
			return receiver, nil
		}
		return rs.Value, nil
	}
	return nil, err
}

// callNative invokes a host closure, surfacing any host-returned error as a
// runtime error at the call site.
func (it *Interpreter) callNative(fn *types.NativeFunction, args []Value, callOff token.Offset) (Value, error) {
	if fn.ArityN >= 0 && len(args) != fn.ArityN {
		return nil, it.newErr(callOff, "Expected %d arguments but got %d.", fn.ArityN, len(args))
	}
	result, err := fn.Fn(&types.NativeArgs{Items: args, Offset: callOff})
	if err != nil {
		return nil, it.newErr(callOff, "%s", err.Error())
	}
	if result == nil {
		return types.NilValue, nil
	}
	return result, nil
}

// evalConstructor implements `new Class(args)`: evaluate the class
// expression, allocate an instance (or host payload), run `init` if
// present, and return the instance.
func (it *Interpreter) evalConstructor(e *ast.ConstructorExpr) (Value, error) {
	classVal, err := it.eval(e.Class)
	if err != nil {
		return nil, err
	}
	args, err := it.evalArgs(e.Args)
	if err != nil {
		return nil, err
	}

	switch klass := classVal.(type) {
	case *types.Klass:
		return it.instantiate(klass, args, e.Off)
	case *types.NativeClass:
		payload, err := klass.Ctor(&types.NativeArgs{Items: args, Offset: e.Off})
		if err != nil {
			return nil, it.newErr(e.Off, "%s", err.Error())
		}
		return types.MakeNative(klass, payload), nil
	default:
		return nil, it.newErr(e.Off, "%s is not a class.", classVal.Type())
	}
}

// instantiate allocates a language instance, seeds its declared fields
// (base classes first so a derived class's own defaults can shadow them),
// and runs `init` if the class chain defines one.
func (it *Interpreter) instantiate(klass *types.Klass, args []Value, callOff token.Offset) (Value, error) {
	inst := types.NewInstance(klass)

	var chain []*types.Klass
	for k := klass; k != nil; k = k.Super {
		chain = append(chain, k)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		k := chain[i]
		for _, f := range k.FieldDecls {
			value := Value(types.NilValue)
			if f.Initializer != nil {
				prev := it.env
				it.env = k.FieldEnv
				v, err := it.eval(f.Initializer)
				it.env = prev
				if err != nil {
					return nil, err
				}
				value = v
			}
			inst.Fields.Put(f.Name, value)
		}
	}

	if initFn, ok := klass.FindMethod("init"); ok {
		if _, err := it.callFunction(initFn, inst, args, callOff); err != nil {
			return nil, err
		}
	} else if len(args) != 0 {
		return nil, it.newErr(callOff, "Expected 0 arguments but got %d.", len(args))
	}
	return inst, nil
}
