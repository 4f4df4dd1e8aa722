package interp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/madeso/lox-go/lang/diag"
	"github.com/madeso/lox-go/lang/interp"
	"github.com/madeso/lox-go/lang/parser"
	"github.com/madeso/lox-go/lang/resolver"
	"github.com/madeso/lox-go/lang/scanner"
	"github.com/madeso/lox-go/lang/token"
	"github.com/madeso/lox-go/lang/types"
)

// run scans, parses, resolves and executes src on a fresh Interpreter,
// returning the printed lines and whatever diagnostics were reported.
func run(t *testing.T, src string) ([]string, bool, *diag.List) {
	t.Helper()
	s := token.NewSource("test", []byte(src))
	sink := &diag.List{}
	toks, scanErrs := scanner.New(s, sink).ScanAll()
	require.Zero(t, scanErrs, "%v", sink.Diagnostics)
	prog, parseErrs := parser.New(s, toks, sink).Parse()
	require.Zero(t, parseErrs, "%v", sink.Diagnostics)

	locals, ok := resolver.Resolve(prog, sink)
	require.True(t, ok, "%v", sink.Diagnostics)

	var lines []string
	it := interp.New(sink, func(line string) { lines = append(lines, line) })
	ok = it.Run(prog, locals)
	return lines, ok, sink
}

func TestRunHelloWorld(t *testing.T) {
	lines, ok, sink := run(t, `print "Hello, world!";`)
	require.True(t, ok, "%v", sink.Diagnostics)
	require.Equal(t, []string{"Hello, world!"}, lines)
}

func TestRunFibonacciFor(t *testing.T) {
	lines, ok, sink := run(t, `
		var a = 0;
		var b = 1;
		for (var i = 0; i < 6; i = i + 1) {
			print a;
			var next = a + b;
			a = b;
			b = next;
		}
	`)
	require.True(t, ok, "%v", sink.Diagnostics)
	require.Equal(t, []string{"0", "1", "1", "2", "3", "5"}, lines)
}

func TestRunClosures(t *testing.T) {
	lines, ok, sink := run(t, `
		fun makeCounter() {
			var count = 0;
			fun counter() {
				count = count + 1;
				print count;
			}
			return counter;
		}
		var c = makeCounter();
		c();
		c();
		c();
	`)
	require.True(t, ok, "%v", sink.Diagnostics)
	require.Equal(t, []string{"1", "2", "3"}, lines)
}

func TestRunInheritanceAndSuper(t *testing.T) {
	lines, ok, sink := run(t, `
		class Animal {
			public var name;
			fun init(n) { this.name = n; }
			fun speak() { print this.name + " makes a noise."; }
		}
		class Dog : Animal {
			fun speak() {
				super.speak();
				print this.name + " barks.";
			}
		}
		var d = new Dog("Rex");
		d.speak();
	`)
	require.True(t, ok, "%v", sink.Diagnostics)
	require.Equal(t, []string{"Rex makes a noise.", "Rex barks."}, lines)
}

func TestRunArrayLiteralAndIndexing(t *testing.T) {
	lines, ok, sink := run(t, `
		var xs = [1, 2, 3];
		print xs[1];
		xs[1] = 9;
		print xs;
		print xs.len();
		xs.push(4);
		print xs.len();
	`)
	require.True(t, ok, "%v", sink.Diagnostics)
	require.Equal(t, []string{"2", "[1, 9, 3]", "3", "4"}, lines)
}

func TestRunCallingClassWithoutNewErrors(t *testing.T) {
	_, ok, sink := run(t, `
		class Box {}
		Box();
	`)
	require.False(t, ok)
	require.Contains(t, sink.Diagnostics[1].Message, "did you forget to use new?")
}

func TestRunArrayIndexOutOfRangeErrors(t *testing.T) {
	_, ok, sink := run(t, `
		var xs = [1, 2];
		print xs[5];
	`)
	require.False(t, ok)
	require.Contains(t, sink.Diagnostics[0].Message, "out of range")
}

func TestRunUndefinedVariableErrors(t *testing.T) {
	_, ok, sink := run(t, `print missing;`)
	require.False(t, ok)
	require.Contains(t, sink.Diagnostics[0].Message, "Undefined variable")
}

func TestRunSettingUndeclaredFieldErrors(t *testing.T) {
	_, ok, sink := run(t, `
		class Box {
			public var size;
		}
		var b = new Box();
		b.weight = 3;
	`)
	require.False(t, ok)
	require.Contains(t, sink.Diagnostics[0].Message, "doesn't have a property named weight")
}

func TestHostNativeFunctionRoundTrip(t *testing.T) {
	s := token.NewSource("test", []byte(`print double(21);`))
	sink := &diag.List{}
	toks, _ := scanner.New(s, sink).ScanAll()
	prog, _ := parser.New(s, toks, sink).Parse()
	locals, ok := resolver.Resolve(prog, sink)
	require.True(t, ok, "%v", sink.Diagnostics)

	var lines []string
	it := interp.New(sink, func(line string) { lines = append(lines, line) })
	it.Global().DefineNativeFunction("double", 1, func(args *types.NativeArgs) (types.Value, error) {
		n, err := args.Int(0)
		if err != nil {
			return nil, err
		}
		return types.Int(n * 2), nil
	})

	require.True(t, it.Run(prog, locals), "%v", sink.Diagnostics)
	require.Equal(t, []string{"42"}, lines)
}

func TestHostNativeClassRoundTrip(t *testing.T) {
	s := token.NewSource("test", []byte(`
		var p = new Point(1, 2);
		print p.x;
	`))
	sink := &diag.List{}
	toks, _ := scanner.New(s, sink).ScanAll()
	prog, _ := parser.New(s, toks, sink).Parse()
	locals, ok := resolver.Resolve(prog, sink)
	require.True(t, ok, "%v", sink.Diagnostics)

	var lines []string
	it := interp.New(sink, func(line string) { lines = append(lines, line) })

	type point struct{ x, y int64 }
	nc := it.Global().RegisterNativeClass("Point", func(args *types.NativeArgs) (any, error) {
		x, err := args.Int(0)
		if err != nil {
			return nil, err
		}
		y, err := args.Int(1)
		if err != nil {
			return nil, err
		}
		return &point{x: x, y: y}, nil
	})
	nc.Getters["x"] = func(payload any) (types.Value, error) {
		return types.Int(payload.(*point).x), nil
	}

	require.True(t, it.Run(prog, locals), "%v", sink.Diagnostics)
	require.Equal(t, []string{"1"}, lines)
}
