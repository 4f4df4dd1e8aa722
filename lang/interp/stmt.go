package interp

import (
	"fmt"

	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/types"
)

// execStmt dispatches a single statement. A non-nil error is either a
// *RuntimeError (propagated all the way out to Run) or a *returnSignal
// (caught by the nearest enclosing call).
func (it *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		return it.execBlock(s.Stmts, it.env.NewChild())

	case *ast.VarStmt:
		value := Value(types.NilValue)
		if s.Initializer != nil {
			v, err := it.eval(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		it.env.Define(s.Name, value)
		return nil

	case *ast.FunctionStmt:
		it.env.Define(s.Name, &types.Function{Name: s.Name, Params: s.Params, Body: s.Body, Closure: it.env, Kind: types.KindFunction})
		return nil

	case *ast.ClassStmt:
		return it.execClassStmt(s)

	case *ast.ExpressionStmt:
		_, err := it.eval(s.Expr)
		return err

	case *ast.IfStmt:
		cond, err := it.eval(s.Cond)
		if err != nil {
			return err
		}
		if cond.Truth() {
			return it.execStmt(s.Then)
		}
		if s.Else != nil {
			return it.execStmt(s.Else)
		}
		return nil

	case *ast.PrintStmt:
		v, err := it.eval(s.Expr)
		if err != nil {
			return err
		}
		if it.print != nil {
			it.print(v.String())
		}
		return nil

	case *ast.ReturnStmt:
		value := Value(types.NilValue)
		if s.Value != nil {
			v, err := it.eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{Value: value}

	case *ast.WhileStmt:
		for {
			cond, err := it.eval(s.Cond)
			if err != nil {
				return err
			}
			if !cond.Truth() {
				return nil
			}
			if err := it.execStmt(s.Body); err != nil {
				return err
			}
		}

	default:
		panic(fmt.Sprintf("interp: unexpected stmt %T", stmt))
	}
}

// execClassStmt builds a Klass from a class declaration: it evaluates the
// optional superclass expression, opens the `super`-binding closure instance
// methods capture when the class is derived, and records the declared field
// defaults for instantiation time.
func (it *Interpreter) execClassStmt(s *ast.ClassStmt) error {
	var super *types.Klass
	if s.Superclass != nil {
		v, err := it.eval(s.Superclass)
		if err != nil {
			return err
		}
		k, ok := v.(*types.Klass)
		if !ok {
			return it.newErr(s.Superclass.Off, "Superclass must be a class, was %s.", v.Type())
		}
		super = k
	}

	methodEnv := it.env
	if super != nil {
		methodEnv = it.env.NewChild()
		methodEnv.Define("super", super)
	}

	klass := types.NewKlass(s.Name, super)
	klass.FieldDecls = s.Members
	klass.FieldEnv = it.env
	for _, m := range s.Members {
		klass.Fields.Put(m.Name, true)
	}

	for _, m := range s.Methods {
		kind := types.KindMethod
		if m.Name == "init" {
			kind = types.KindInitializer
		}
		klass.Methods.Put(m.Name, &types.Function{Name: m.Fn.Name, Params: m.Fn.Params, Body: m.Fn.Body, Closure: methodEnv, Kind: kind})
	}
	for _, m := range s.StaticMethods {
		klass.StaticMethods.Put(m.Name, &types.Function{Name: m.Fn.Name, Params: m.Fn.Params, Body: m.Fn.Body, Closure: it.env, Kind: types.KindFunction})
	}

	it.env.Define(s.Name, klass)
	return nil
}
