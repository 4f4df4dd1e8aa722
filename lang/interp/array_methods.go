package interp

import (
	"fmt"

	"github.com/madeso/lox-go/lang/token"
	"github.com/madeso/lox-go/lang/types"
)

// arrayMethod builds the host-provided len/push/remove_front methods arrays
// expose: each access builds a NativeFunction closing over the receiving
// array, the same shape any other host-registered native function has.
func (it *Interpreter) arrayMethod(arr *types.Array, name string, off token.Offset) (Value, error) {
	switch name {
	case "len":
		return &types.NativeFunction{Name: "len", ArityN: 0, Fn: func(*types.NativeArgs) (Value, error) {
			return types.Int(len(arr.Items)), nil
		}}, nil

	case "push":
		return &types.NativeFunction{Name: "push", ArityN: 1, Fn: func(a *types.NativeArgs) (Value, error) {
			arr.Items = append(arr.Items, a.Any(0))
			return types.NilValue, nil
		}}, nil

	case "remove_front":
		return &types.NativeFunction{Name: "remove_front", ArityN: 0, Fn: func(*types.NativeArgs) (Value, error) {
			if len(arr.Items) == 0 {
				return nil, fmt.Errorf("remove_front called on an empty array")
			}
			v := arr.Items[0]
			arr.Items = arr.Items[1:]
			return v, nil
		}}, nil

	default:
		return nil, it.newErr(off, "array doesn't have a property named %s.", name)
	}
}
