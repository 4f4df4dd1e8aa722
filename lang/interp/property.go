package interp

import (
	"github.com/madeso/lox-go/lang/token"
	"github.com/madeso/lox-go/lang/types"
)

// getProperty implements property access across every property-bearing
// value kind: instances (fields then bound methods), classes (static
// methods), native instances (host getters), packages (members and lazy
// getters) and arrays (the built-in len/push/remove_front methods).
func (it *Interpreter) getProperty(obj Value, name string, nameOff token.Offset) (Value, error) {
	switch o := obj.(type) {
	case *types.Instance:
		if v, ok := o.Fields.Get(name); ok {
			return v, nil
		}
		if fn, ok := o.Class.FindMethod(name); ok {
			return &types.BoundMethod{Receiver: o, Method: fn}, nil
		}
		return nil, it.newErr(nameOff, "%s doesn't have a property named %s.", o.String(), name)

	case *types.Klass:
		if fn, ok := o.FindStaticMethod(name); ok {
			return fn, nil
		}
		return nil, it.newErr(nameOff, "%s doesn't have a static property named %s.", o.String(), name)

	case *types.NativeInstance:
		if getter, ok := o.Class.Getters[name]; ok {
			v, err := getter(o.Payload)
			if err != nil {
				return nil, it.newErr(nameOff, "%s", err.Error())
			}
			return v, nil
		}
		return nil, it.newErr(nameOff, "%s doesn't have a property named %s.", o.String(), name)

	case *types.Package:
		if v, ok := o.Members[name]; ok {
			return v, nil
		}
		if gen, ok := o.Getters[name]; ok {
			return gen(), nil
		}
		return nil, it.newErr(nameOff, "package %s doesn't have a member named %s.", o.Name, name)

	case *types.Array:
		return it.arrayMethod(o, name, nameOff)

	default:
		return nil, it.newErr(nameOff, "%s is not capable of having any properties.", obj.Type())
	}
}

// setProperty implements property assignment: only declared fields on a
// language instance (or a host-exposed native setter) may be written.
func (it *Interpreter) setProperty(obj Value, name string, nameOff token.Offset, value Value) error {
	switch o := obj.(type) {
	case *types.Instance:
		if !o.Class.HasField(name) {
			return it.newErr(nameOff, "%s doesn't have a property named %s.", o.String(), name)
		}
		o.Fields.Put(name, value)
		return nil

	case *types.NativeInstance:
		if setter, ok := o.Class.Setters[name]; ok {
			if err := setter(o.Payload, value); err != nil {
				return it.newErr(nameOff, "%s", err.Error())
			}
			return nil
		}
		return it.newErr(nameOff, "%s doesn't have a property named %s.", o.String(), name)

	default:
		return it.newErr(nameOff, "%s is not capable of having any properties.", obj.Type())
	}
}

// getIndex and setIndex implement indexing: arrays only, index must be a
// non-negative int less than the current length.
func (it *Interpreter) getIndex(obj, idx Value, off token.Offset) (Value, error) {
	arr, i, err := it.checkedArrayIndex(obj, idx, off)
	if err != nil {
		return nil, err
	}
	return arr.Items[i], nil
}

func (it *Interpreter) setIndex(obj, idx, value Value, off token.Offset) error {
	arr, i, err := it.checkedArrayIndex(obj, idx, off)
	if err != nil {
		return err
	}
	arr.Items[i] = value
	return nil
}

func (it *Interpreter) checkedArrayIndex(obj, idx Value, off token.Offset) (*types.Array, int, error) {
	arr, ok := obj.(*types.Array)
	if !ok {
		return nil, 0, it.newErr(off, "%s is not indexable.", obj.Type())
	}
	i, ok := idx.(types.Int)
	if !ok {
		return nil, 0, it.newErr(off, "Array index must be an int, was %s.", idx.Type())
	}
	if i < 0 || int(i) >= len(arr.Items) {
		return nil, 0, it.newErr(off, "Array index %d out of range for array of length %d.", i, len(arr.Items))
	}
	return arr, int(i), nil
}
