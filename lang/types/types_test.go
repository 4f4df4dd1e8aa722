package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/madeso/lox-go/lang/types"
)

func TestEqualStructuralForPrimitives(t *testing.T) {
	require.True(t, types.Equal(types.NilValue, types.Nil{}))
	require.True(t, types.Equal(types.Int(1), types.Int(1)))
	require.False(t, types.Equal(types.Int(1), types.Int(2)))
	require.False(t, types.Equal(types.Int(1), types.Float(1)))
	require.True(t, types.Equal(types.String("a"), types.String("a")))
	require.True(t, types.Equal(types.Bool(true), types.Bool(true)))
}

func TestEqualIdentityForArrays(t *testing.T) {
	a := types.NewArray(nil)
	b := types.NewArray(nil)
	require.True(t, types.Equal(a, a))
	require.False(t, types.Equal(a, b))
}

func TestArrayStringFlatWhenShort(t *testing.T) {
	arr := types.NewArray([]types.Value{types.Int(1), types.String("x")})
	require.Equal(t, `[1, "x"]`, arr.String())
}

func TestArrayStringMultilineWhenLong(t *testing.T) {
	arr := types.NewArray([]types.Value{
		types.Int(1), types.Int(2), types.Int(3), types.Int(4), types.Int(5),
	})
	require.Equal(t, "[\n  1\n  2\n  3\n  4\n  5\n]", arr.String())
}

func TestArrayStringEscapesNestedStrings(t *testing.T) {
	arr := types.NewArray([]types.Value{types.String("a\nb\"c")})
	require.Equal(t, `["a\nb\"c"]`, arr.String())
}

func TestEnvironmentDefineAndGetAtDistance(t *testing.T) {
	root := types.NewEnvironment()
	root.Define("a", types.Int(1))

	child := root.NewChild()
	child.Define("b", types.Int(2))

	v, ok := child.GetAtOrNull(0, "b")
	require.True(t, ok)
	require.Equal(t, types.Int(2), v)

	v, ok = child.GetAtOrNull(1, "a")
	require.True(t, ok)
	require.Equal(t, types.Int(1), v)

	_, ok = child.GetAtOrNull(0, "a")
	require.False(t, ok)
}

func TestEnvironmentSetAtDistanceRequiresExistingBinding(t *testing.T) {
	root := types.NewEnvironment()
	root.Define("a", types.Int(1))
	child := root.NewChild()

	require.True(t, child.SetAtOrFalse(1, "a", types.Int(9)))
	v, _ := root.GetOrNull("a")
	require.Equal(t, types.Int(9), v)

	require.False(t, child.SetAtOrFalse(1, "missing", types.Int(0)))
}

func TestKlassFindMethodWalksSuperclassChain(t *testing.T) {
	base := types.NewKlass("Animal", nil)
	base.Methods.Put("speak", &types.Function{Name: "speak", Kind: types.KindMethod})

	derived := types.NewKlass("Dog", base)

	fn, ok := derived.FindMethod("speak")
	require.True(t, ok)
	require.Equal(t, "speak", fn.Name)

	_, ok = derived.FindMethod("missing")
	require.False(t, ok)
}

func TestKlassHasFieldWalksSuperclassChain(t *testing.T) {
	base := types.NewKlass("Animal", nil)
	base.Fields.Put("name", true)
	derived := types.NewKlass("Dog", base)

	require.True(t, derived.HasField("name"))
	require.False(t, derived.HasField("legs"))
}
