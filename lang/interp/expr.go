package interp

import (
	"fmt"

	"github.com/madeso/lox-go/lang/ast"
	"github.com/madeso/lox-go/lang/token"
	"github.com/madeso/lox-go/lang/types"
)

// eval dispatches a single expression, returning its value or the
// *RuntimeError that aborted evaluation.
func (it *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e), nil

	case *ast.GroupingExpr:
		return it.eval(e.Inner)

	case *ast.VariableExpr:
		return it.lookupVariable(e.ExprID, e.Name, e.Off)

	case *ast.AssignExpr:
		v, err := it.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if err := it.assignVariable(e.ExprID, e.Name, e.Off, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.UnaryExpr:
		return it.evalUnary(e)

	case *ast.BinaryExpr:
		return it.evalBinary(e)

	case *ast.LogicalExpr:
		left, err := it.eval(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op == token.OR {
			if left.Truth() {
				return left, nil
			}
			return it.eval(e.Right)
		}
		// AND
		if !left.Truth() {
			return left, nil
		}
		return it.eval(e.Right)

	case *ast.CallExpr:
		return it.evalCall(e)

	case *ast.ArrayExpr:
		items := make([]Value, len(e.Values))
		for i, v := range e.Values {
			val, err := it.eval(v)
			if err != nil {
				return nil, err
			}
			items[i] = val
		}
		return types.NewArray(items), nil

	case *ast.ConstructorExpr:
		return it.evalConstructor(e)

	case *ast.GetPropertyExpr:
		obj, err := it.eval(e.Object)
		if err != nil {
			return nil, err
		}
		return it.getProperty(obj, e.Name, e.NameOffset)

	case *ast.SetPropertyExpr:
		obj, err := it.eval(e.Object)
		if err != nil {
			return nil, err
		}
		val, err := it.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if err := it.setProperty(obj, e.Name, e.NameOffset, val); err != nil {
			return nil, err
		}
		return val, nil

	case *ast.GetIndexExpr:
		obj, err := it.eval(e.Object)
		if err != nil {
			return nil, err
		}
		idx, err := it.eval(e.Index)
		if err != nil {
			return nil, err
		}
		return it.getIndex(obj, idx, e.Off)

	case *ast.SetIndexExpr:
		obj, err := it.eval(e.Object)
		if err != nil {
			return nil, err
		}
		idx, err := it.eval(e.Index)
		if err != nil {
			return nil, err
		}
		val, err := it.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if err := it.setIndex(obj, idx, val, e.Off); err != nil {
			return nil, err
		}
		return val, nil

	case *ast.ThisExpr:
		return it.lookupVariable(e.ExprID, "this", e.Off)

	case *ast.SuperExpr:
		return it.evalSuper(e)

	case *ast.SuperConstructorCallExpr:
		return it.evalSuperConstructorCall(e)

	default:
		panic(fmt.Sprintf("interp: unexpected expr %T", expr))
	}
}

func literalValue(e *ast.LiteralExpr) Value {
	switch e.Kind {
	case token.NIL:
		return types.NilValue
	case token.TRUE:
		return types.Bool(true)
	case token.FALSE:
		return types.Bool(false)
	case token.NUMBER_INT:
		return types.Int(e.Value.Int)
	case token.NUMBER_FLOAT:
		return types.Float(e.Value.Float)
	case token.STRING:
		return types.String(e.Value.Str)
	default:
		panic(fmt.Sprintf("interp: unexpected literal kind %v", e.Kind))
	}
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case token.BANG:
		return types.Bool(!right.Truth()), nil
	case token.MINUS:
		switch n := right.(type) {
		case types.Int:
			return -n, nil
		case types.Float:
			return -n, nil
		default:
			return nil, it.newErr(e.OpOffset, "Operand of '-' must be a number, was %s.", right.Type())
		}
	default:
		panic(fmt.Sprintf("interp: unexpected unary op %v", e.Op))
	}
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case token.EQ_EQ:
		return types.Bool(types.Equal(left, right)), nil
	case token.BANG_EQ:
		return types.Bool(!types.Equal(left, right)), nil
	case token.PLUS:
		return it.evalAdd(e, left, right)
	case token.MINUS, token.STAR, token.SLASH:
		return it.evalArith(e, left, right)
	case token.LT, token.LT_EQ, token.GT, token.GT_EQ:
		return it.evalCompare(e, left, right)
	default:
		panic(fmt.Sprintf("interp: unexpected binary op %v", e.Op))
	}
}

func (it *Interpreter) evalAdd(e *ast.BinaryExpr, left, right Value) (Value, error) {
	switch l := left.(type) {
	case types.Int:
		if r, ok := right.(types.Int); ok {
			return l + r, nil
		}
	case types.Float:
		if r, ok := right.(types.Float); ok {
			return l + r, nil
		}
	case types.String:
		if r, ok := right.(types.String); ok {
			return l + r, nil
		}
	}
	return nil, it.newErr(e.OpOffset, "Cannot add %s and %s.", left.Type(), right.Type())
}

func (it *Interpreter) evalArith(e *ast.BinaryExpr, left, right Value) (Value, error) {
	li, lIsInt := left.(types.Int)
	ri, rIsInt := right.(types.Int)
	if lIsInt && rIsInt {
		switch e.Op {
		case token.MINUS:
			return li - ri, nil
		case token.STAR:
			return li * ri, nil
		case token.SLASH:
			if ri == 0 {
				return nil, it.newErr(e.OpOffset, "Division by zero.")
			}
			return li / ri, nil
		}
	}

	lf, lIsFloat := left.(types.Float)
	rf, rIsFloat := right.(types.Float)
	if lIsFloat && rIsFloat {
		switch e.Op {
		case token.MINUS:
			return lf - rf, nil
		case token.STAR:
			return lf * rf, nil
		case token.SLASH:
			if rf == 0 {
				return nil, it.newErr(e.OpOffset, "Division by zero.")
			}
			return lf / rf, nil
		}
	}

	return nil, it.newErr(e.OpOffset, "Operands of '%s' must be two numbers of the same kind, was %s and %s.", e.Op.GoString(), left.Type(), right.Type())
}

func (it *Interpreter) evalCompare(e *ast.BinaryExpr, left, right Value) (Value, error) {
	li, lIsInt := left.(types.Int)
	ri, rIsInt := right.(types.Int)
	if lIsInt && rIsInt {
		return types.Bool(compareOrdered(e.Op, int64(li), int64(ri))), nil
	}

	lf, lIsFloat := left.(types.Float)
	rf, rIsFloat := right.(types.Float)
	if lIsFloat && rIsFloat {
		return types.Bool(compareOrdered(e.Op, float64(lf), float64(rf))), nil
	}

	return nil, it.newErr(e.OpOffset, "Operands of '%s' must be two numbers of the same kind, was %s and %s.", e.Op.GoString(), left.Type(), right.Type())
}

func compareOrdered[T int64 | float64](op token.Token, l, r T) bool {
	switch op {
	case token.LT:
		return l < r
	case token.LT_EQ:
		return l <= r
	case token.GT:
		return l > r
	case token.GT_EQ:
		return l >= r
	default:
		panic(fmt.Sprintf("interp: unexpected comparison op %v", op))
	}
}

func (it *Interpreter) evalSuper(e *ast.SuperExpr) (Value, error) {
	super, this, err := it.resolveSuperAndThis(e.ExprID, e.Off)
	if err != nil {
		return nil, err
	}
	method, ok := super.FindMethod(e.Property)
	if !ok {
		return nil, it.newErr(e.PropOffset, "%s doesn't have a property named %s.", this.String(), e.Property)
	}
	return &types.BoundMethod{Receiver: this, Method: method}, nil
}

func (it *Interpreter) evalSuperConstructorCall(e *ast.SuperConstructorCallExpr) (Value, error) {
	super, this, err := it.resolveSuperAndThis(e.ExprID, e.Off)
	if err != nil {
		return nil, err
	}
	args, err := it.evalArgs(e.Args)
	if err != nil {
		return nil, err
	}
	initFn, ok := super.FindMethod("init")
	if !ok {
		if len(args) != 0 {
			return nil, it.newErr(e.Off, "Expected 0 arguments but got %d.", len(args))
		}
		return this, nil
	}
	return it.callFunction(initFn, this, args, e.Off)
}

// resolveSuperAndThis reads the `super` binding at the resolved distance and
// the enclosing `this` binding one frame closer.
func (it *Interpreter) resolveSuperAndThis(id ast.ID, off token.Offset) (*types.Klass, Value, error) {
	distance, ok := it.locals[id]
	if !ok {
		return nil, nil, it.newErr(off, "Variable super was neither declared in global nor local scope")
	}
	superVal, ok := it.env.GetAtOrNull(distance, "super")
	if !ok {
		return nil, nil, it.newErr(off, "Variable super was neither declared in global nor local scope")
	}
	super, ok := superVal.(*types.Klass)
	if !ok {
		return nil, nil, it.newErr(off, "super does not refer to a class.")
	}
	thisVal, ok := it.env.GetAtOrNull(distance-1, "this")
	if !ok {
		return nil, nil, it.newErr(off, "Variable this was neither declared in global nor local scope")
	}
	return super, thisVal, nil
}
