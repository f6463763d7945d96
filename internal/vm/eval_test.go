package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/goscript/internal/lexer"
	"github.com/cwbudde/goscript/internal/parser"
	"github.com/cwbudde/goscript/internal/values"
	"github.com/cwbudde/goscript/internal/vm"
)

// eval parses and evaluates source against a fresh Interpreter (no
// runtime.Install — these tests exercise only the core evaluator, never
// console/Math/Array builtins).
func eval(t *testing.T, source string) (*vm.Interpreter, values.Value, error) {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l)
	script := p.ParseScript()
	require.Empty(t, l.Errors())
	require.Empty(t, p.Errors())

	it := vm.New()
	result, err := it.EvalScript(script)
	return it, result, err
}

func TestConstBindingReadsSameValue(t *testing.T) {
	it, result, err := eval(t, "const a = 10; a === 10;")
	require.NoError(t, err)
	state, _ := it.State()
	require.Equal(t, vm.Advance, state)
	require.True(t, result.AsBool())
}

func TestConstReassignIsRuntimeError(t *testing.T) {
	_, _, err := eval(t, "const a = 10; a = 20;")
	require.Error(t, err)
	var verr *vm.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, vm.KindAssignToConstVariable, verr.Kind)
}

func TestThrowInsideWhileStopsExecution(t *testing.T) {
	it, _, err := eval(t, `
		let i = 0;
		while (i < 10) {
			if (i === 3) { throw i; }
			i += 1;
		}
	`)
	require.NoError(t, err)
	state, payload := it.State()
	require.Equal(t, vm.Throw, state)
	require.Equal(t, int64(3), payload.AsNumber().I)
}

func TestTryFinallyRunsThenRestoresException(t *testing.T) {
	it, _, err := eval(t, `
		let ran = false;
		try {
			throw 1;
		} finally {
			ran = true;
		}
	`)
	require.NoError(t, err)
	state, payload := it.State()
	require.Equal(t, vm.Throw, state)
	require.Equal(t, int64(1), payload.AsNumber().I)

	ran, ok := it.Stack.Scope().Lookup("ran")
	require.True(t, ok)
	require.True(t, ran.AsBool())
}

func TestArithmeticPrecedence(t *testing.T) {
	_, result, err := eval(t, "2 + 3 * 4;")
	require.NoError(t, err)
	require.Equal(t, int64(14), result.AsNumber().I)

	_, result, err = eval(t, "(2 + 3) * 4;")
	require.NoError(t, err)
	require.Equal(t, int64(20), result.AsNumber().I)
}

func TestExponentiationIsRightAssociative(t *testing.T) {
	_, result, err := eval(t, "2 ** 3 ** 2;")
	require.NoError(t, err)
	require.InDelta(t, 512, result.AsNumber().AsFloat(), 0.0001)
}

func TestFunctionCallReturnsValueIgnoringExtraArgs(t *testing.T) {
	_, result, err := eval(t, "function f(){ return 42; } f();")
	require.NoError(t, err)
	require.Equal(t, int64(42), result.AsNumber().I)

	_, result, err = eval(t, "function f(){ return 42; } f(1,2,3);")
	require.NoError(t, err)
	require.Equal(t, int64(42), result.AsNumber().I)
}

func TestStrictEqualityReflexiveExceptNaN(t *testing.T) {
	_, result, err := eval(t, "let x = 1/0 - 1/0; x === x;")
	require.NoError(t, err)
	require.False(t, result.AsBool())
}

func TestStrictEqualityReflexiveOnConcreteValues(t *testing.T) {
	_, result, err := eval(t, "let x = 7; x === x;")
	require.NoError(t, err)
	require.True(t, result.AsBool())
}

func TestNaNComparisonsAllFalse(t *testing.T) {
	for _, src := range []string{
		"let n = 0/0; n < 1;",
		"let n = 0/0; n <= 1;",
		"let n = 0/0; n > 1;",
		"let n = 0/0; n >= 1;",
		"let n = 0/0; n == n;",
		"let n = 0/0; n === n;",
	} {
		_, result, err := eval(t, src)
		require.NoError(t, err)
		require.False(t, result.AsBool(), "expected false for %q", src)
	}
}

func TestNamedFunctionExpressionCanRecurse(t *testing.T) {
	_, result, err := eval(t, `
		let fact = function f(n) {
			if (n <= 1) { return 1; }
			return n * f(n - 1);
		};
		fact(5);
	`)
	require.NoError(t, err)
	require.Equal(t, int64(120), result.AsNumber().I)
}

func TestHoistedDeclarationsEvaluateBeforeBody(t *testing.T) {
	_, result, err := eval(t, `
		let r = greet();
		function greet() { return "hi"; }
		r;
	`)
	require.NoError(t, err)
	require.True(t, result.IsObject())
}

func TestClosureCapturesEnclosingScope(t *testing.T) {
	_, result, err := eval(t, `
		function makeCounter() {
			let n = 0;
			return function() { n += 1; return n; };
		}
		let counter = makeCounter();
		counter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	require.Equal(t, int64(3), result.AsNumber().I)
}

func TestObjectAndArrayLiteralsWithMemberAccess(t *testing.T) {
	_, result, err := eval(t, `
		let o = { x: 1, y: [1, 2, 3] };
		o.y[2] + o.x;
	`)
	require.NoError(t, err)
	require.Equal(t, int64(4), result.AsNumber().I)
}

func TestInstanceofFollowsPrototypeChain(t *testing.T) {
	_, result, err := eval(t, `
		function Animal() {}
		let a = new Animal();
		a instanceof Animal;
	`)
	require.NoError(t, err)
	require.True(t, result.AsBool())
}
