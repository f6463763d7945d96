package runtime_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/goscript/internal/lexer"
	"github.com/cwbudde/goscript/internal/parser"
	"github.com/cwbudde/goscript/internal/runtime"
	"github.com/cwbudde/goscript/internal/values"
	"github.com/cwbudde/goscript/internal/vm"
)

// eval constructs a fresh interpreter with the full host runtime
// installed, parses source, and evaluates it.
func eval(t *testing.T, source string) (*vm.Interpreter, values.Value, error) {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l)
	script := p.ParseScript()
	require.Empty(t, l.Errors())
	require.Empty(t, p.Errors())

	it := vm.New()
	require.NoError(t, runtime.Install(it))

	result, err := it.EvalScript(script)
	return it, result, err
}

func TestConsoleAssertFailureJoinsExtraArgsWithSpace(t *testing.T) {
	_, _, err := eval(t, `console.assert(false, "x", 1);`)
	require.Error(t, err)
	var verr *vm.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, vm.KindAssertion, verr.Kind)
	require.Equal(t, "x 1", verr.Detail)
}

func TestConsoleAssertPassingIsANoop(t *testing.T) {
	_, _, err := eval(t, `console.assert(true, "unreachable detail");`)
	require.NoError(t, err)
}

func TestConsoleAssertNotReachedHasEmptyDetailWithNoArgs(t *testing.T) {
	_, _, err := eval(t, `console.assertNotReached();`)
	require.Error(t, err)
	var verr *vm.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "", verr.Detail)
}

func TestMathSqrtAndPi(t *testing.T) {
	_, result, err := eval(t, "Math.sqrt(16);")
	require.NoError(t, err)
	require.Equal(t, float64(4), result.AsNumber().AsFloat())

	_, result, err = eval(t, "Math.PI > 3.14 && Math.PI < 3.15;")
	require.NoError(t, err)
	require.True(t, result.AsBool())
}

func TestMathMaxMinWithNoArgsMatchIEEEIdentities(t *testing.T) {
	_, result, err := eval(t, "Math.max();")
	require.NoError(t, err)
	require.True(t, result.AsNumber().IsFloat)
	require.True(t, math.IsInf(result.AsNumber().AsFloat(), -1))

	_, result, err = eval(t, "Math.min();")
	require.NoError(t, err)
	require.True(t, math.IsInf(result.AsNumber().AsFloat(), 1))

	_, result, err = eval(t, "Math.max(1, 5, 3);")
	require.NoError(t, err)
	require.Equal(t, float64(5), result.AsNumber().AsFloat())
}

func TestArrayPushPopJoinAndLength(t *testing.T) {
	_, result, err := eval(t, `
		let a = [1, 2];
		a.push(3);
		a.length;
	`)
	require.NoError(t, err)
	require.Equal(t, int64(3), result.AsNumber().I)

	_, result, err = eval(t, `
		let b = [1, 2, 3];
		let last = b.pop();
		last * 10 + b.length;
	`)
	require.NoError(t, err)
	require.Equal(t, int64(32), result.AsNumber().I)

	it, result, err := eval(t, `[1, 2, 3].join("-");`)
	require.NoError(t, err)
	require.True(t, result.IsObject())
	require.Equal(t, "1-2-3", it.ToString(result))
}

func TestArrayMapFilterForEach(t *testing.T) {
	it, result, err := eval(t, `
		let doubled = [1, 2, 3].map(function(x) { return x * 2; });
		doubled.join(",");
	`)
	require.NoError(t, err)
	require.Equal(t, "2,4,6", it.ToString(result))

	_, result, err = eval(t, `
		let evens = [1, 2, 3, 4].filter(function(x) { return x % 2 === 0; });
		evens.length;
	`)
	require.NoError(t, err)
	require.Equal(t, int64(2), result.AsNumber().I)

	_, result, err = eval(t, `
		let sum = 0;
		[1, 2, 3].forEach(function(x) { sum += x; });
		sum;
	`)
	require.NoError(t, err)
	require.Equal(t, int64(6), result.AsNumber().I)
}

func TestArrayIsArray(t *testing.T) {
	_, result, err := eval(t, "Array.isArray([1, 2]);")
	require.NoError(t, err)
	require.True(t, result.AsBool())

	_, result, err = eval(t, "Array.isArray({});")
	require.NoError(t, err)
	require.False(t, result.AsBool())
}

func TestJSONStringifyAndParseRoundTrip(t *testing.T) {
	it, result, err := eval(t, `JSON.stringify({ a: 1, b: [1, 2, 3] });`)
	require.NoError(t, err)
	require.Equal(t, `{"a":1,"b":[1,2,3]}`, it.ToString(result))

	_, result, err = eval(t, `JSON.parse('{"x":1,"y":[true,false]}').x;`)
	require.NoError(t, err)
	require.Equal(t, int64(1), result.AsNumber().I)
}
