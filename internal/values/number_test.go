package values

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumAddOverflowPromotesToFloat(t *testing.T) {
	sum := NumAdd(Int(math.MaxInt64), Int(1))
	require.True(t, sum.IsFloat)
	require.InDelta(t, float64(math.MaxInt64)+1, sum.F, 1)
}

func TestNumAddNoOverflowStaysInt(t *testing.T) {
	sum := NumAdd(Int(2), Int(3))
	require.False(t, sum.IsFloat)
	require.Equal(t, int64(5), sum.I)
}

func TestNumMulOverflowPromotesToFloat(t *testing.T) {
	prod := NumMul(Int(math.MaxInt64), Int(2))
	require.True(t, prod.IsFloat)
}

func TestNumDivByZero(t *testing.T) {
	require.True(t, math.IsInf(NumDiv(Int(1), Int(0)).AsFloat(), 1))
	require.True(t, math.IsInf(NumDiv(Int(-1), Int(0)).AsFloat(), -1))
	require.True(t, NumDiv(Int(0), Int(0)).IsNaN())
}

func TestNumDivExactStaysInt(t *testing.T) {
	q := NumDiv(Int(10), Int(2))
	require.False(t, q.IsFloat)
	require.Equal(t, int64(5), q.I)
}

func TestNumNegMinInt64PromotesToFloat(t *testing.T) {
	n := NumNeg(Int(math.MinInt64))
	require.True(t, n.IsFloat)
}

func TestBitwiseNaNIdentity(t *testing.T) {
	nan := Float(math.NaN())
	require.True(t, NumAnd(nan, Int(5)).IsNaN())
	require.True(t, NumOr(nan, Int(5)).IsNaN())
	require.True(t, NumNot(nan).IsNaN())
}

func TestBitwiseInfinityIdentity(t *testing.T) {
	inf := Float(math.Inf(1))
	require.Equal(t, Int(5), NumAnd(inf, Int(5)))
	got := NumNot(inf)
	require.True(t, got.IsFloat)
	require.True(t, math.IsInf(got.F, 1))
}

func TestNumCompareNaNUnordered(t *testing.T) {
	_, ok := NumCompare(Float(math.NaN()), Int(1))
	require.False(t, ok)
}

func TestNumEqualReflexiveExceptNaN(t *testing.T) {
	require.True(t, NumEqual(Int(3), Int(3)))
	require.False(t, NumEqual(Float(math.NaN()), Float(math.NaN())))
}

func TestParseNumericString(t *testing.T) {
	require.Equal(t, Int(0), ParseNumericString("  "))
	require.Equal(t, Int(42), ParseNumericString("42"))
	require.True(t, ParseNumericString("abc").IsNaN())
}

func TestNumberStringSpecialValues(t *testing.T) {
	require.Equal(t, "NaN", Float(math.NaN()).String())
	require.Equal(t, "Infinity", Float(math.Inf(1)).String())
	require.Equal(t, "-Infinity", Float(math.Inf(-1)).String())
	require.Equal(t, "5", Int(5).String())
}
