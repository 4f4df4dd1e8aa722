package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/parser"
	"github.com/madeso/lox-go/lang/resolver"
	"github.com/madeso/lox-go/lang/scanner"
	"github.com/madeso/lox-go/lang/token"
)

// parseResolve scans and parses src, then resolves the result, returning the
// accumulated diagnostics alongside whatever Resolve produced.
func parseResolve(t *testing.T, src string) (resolver.Result, bool, *diag.List) {
	t.Helper()
	s := token.NewSource("test", []byte(src))
	sink := &diag.List{}
	toks, scanErrs := scanner.New(s, sink).ScanAll()
	require.Zero(t, scanErrs, "unexpected scan errors: %v", sink.Diagnostics)
	prog, parseErrs := parser.New(s, toks, sink).Parse()
	require.Zero(t, parseErrs, "unexpected parse errors: %v", sink.Diagnostics)

	result, ok := resolver.Resolve(prog, sink)
	return result, ok, sink
}

func TestResolveSimpleLocal(t *testing.T) {
	result, ok, sink := parseResolve(t, `
		var a = 1;
		{
			var b = a;
			print b;
		}
	`)
	require.True(t, ok, "%v", sink.Diagnostics)
	require.NotEmpty(t, result)
}

func TestResolveSelfInitializerError(t *testing.T) {
	_, ok, sink := parseResolve(t, `
		var a = 1;
		{
			var a = a;
		}
	`)
	require.False(t, ok)
	require.Len(t, sink.Diagnostics, 1)
	require.Contains(t, sink.Diagnostics[0].Message, "own initializer")
}

func TestResolveDuplicateLocalError(t *testing.T) {
	_, ok, sink := parseResolve(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	require.False(t, ok)
	require.Contains(t, sink.Diagnostics[0].Message, "already a variable")
}

func TestResolveTopLevelReturnError(t *testing.T) {
	_, ok, sink := parseResolve(t, `return 1;`)
	require.False(t, ok)
	require.Contains(t, sink.Diagnostics[0].Message, "Can't return from top-level code.")
}

func TestResolveReturnValueFromInitializerError(t *testing.T) {
	_, ok, sink := parseResolve(t, `
		class Box {
			fun init() {
				return 1;
			}
		}
	`)
	require.False(t, ok)
	require.Contains(t, sink.Diagnostics[0].Message, "Can't return value from initializer.")
}

func TestResolveSelfInheritanceError(t *testing.T) {
	_, ok, sink := parseResolve(t, `class Oops : Oops {}`)
	require.False(t, ok)
	require.Contains(t, sink.Diagnostics[0].Message, "can't inherit from itself")
}

func TestResolveIndirectInheritanceCycleError(t *testing.T) {
	_, ok, sink := parseResolve(t, `
		class A : B {}
		class B : A {}
	`)
	require.False(t, ok)
	require.Contains(t, sink.Diagnostics[0].Message, "can't inherit from itself")
}

func TestResolveDuplicateMemberError(t *testing.T) {
	_, ok, sink := parseResolve(t, `
		class Box {
			public var size;
			fun say() { print "first"; }
			fun say() { print "second"; }
		}
	`)
	require.False(t, ok)
	var found bool
	for _, d := range sink.Diagnostics {
		if d.Message == "'say' declared multiple times." {
			found = true
		}
	}
	require.True(t, found, "%v", sink.Diagnostics)
}

func TestResolveThisOutsideClassError(t *testing.T) {
	_, ok, sink := parseResolve(t, `print this;`)
	require.False(t, ok)
	require.Contains(t, sink.Diagnostics[0].Message, "Can't use 'this' outside of a class.")
}

func TestResolveSuperWithoutSuperclassError(t *testing.T) {
	_, ok, sink := parseResolve(t, `
		class Box {
			fun say() { super.say(); }
		}
	`)
	require.False(t, ok)
	require.Contains(t, sink.Diagnostics[0].Message, "Can't use 'super' in a class with no superclass.")
}

func TestResolveValidInheritance(t *testing.T) {
	_, ok, sink := parseResolve(t, `
		class Animal {
			public var name;
			fun init(n) { this.name = n; }
			fun speak() { print this.name; }
		}
		class Dog : Animal {
			fun speak() { super.speak(); }
		}
	`)
	require.True(t, ok, "%v", sink.Diagnostics)
}
