// Package values implements the value sum type and its checked-overflow
// number algebra: Boolean, Number, Object (by Reference), Null, and
// Undefined, plus the to-boolean/to-number/to-string conversion helpers
// the evaluator dispatches through instead of a virtual method set on
// values.
package values

import (
	"math"
	"strconv"
	"strings"
)

// Number is the tagged union Int(i64) | Float(f64). A Number is always
// exactly one of the two; IsFloat distinguishes them.
type Number struct {
	IsFloat bool
	I       int64
	F       float64
}

// Int constructs an integer Number.
func Int(i int64) Number { return Number{I: i} }

// Float constructs a floating-point Number.
func Float(f float64) Number { return Number{IsFloat: true, F: f} }

// AsFloat returns the number widened to float64 regardless of variant.
func (n Number) AsFloat() float64 {
	if n.IsFloat {
		return n.F
	}
	return float64(n.I)
}

// IsNaN reports whether n is the float NaN.
func (n Number) IsNaN() bool { return n.IsFloat && math.IsNaN(n.F) }

// NumAdd implements `+` on two numbers: integer overflow promotes to
// float; any float operand promotes the result to float.
func NumAdd(a, b Number) Number {
	if !a.IsFloat && !b.IsFloat {
		sum := a.I + b.I
		if overflowsAdd(a.I, b.I, sum) {
			return Float(float64(a.I) + float64(b.I))
		}
		return Int(sum)
	}
	return Float(a.AsFloat() + b.AsFloat())
}

// NumSub implements `-`.
func NumSub(a, b Number) Number {
	if !a.IsFloat && !b.IsFloat {
		diff := a.I - b.I
		if overflowsSub(a.I, b.I, diff) {
			return Float(float64(a.I) - float64(b.I))
		}
		return Int(diff)
	}
	return Float(a.AsFloat() - b.AsFloat())
}

// NumMul implements `*`.
func NumMul(a, b Number) Number {
	if !a.IsFloat && !b.IsFloat {
		prod := a.I * b.I
		if overflowsMul(a.I, b.I, prod) {
			return Float(float64(a.I) * float64(b.I))
		}
		return Int(prod)
	}
	return Float(a.AsFloat() * b.AsFloat())
}

// NumDiv implements `/`. Division by zero follows float semantics: n/0
// is ±Infinity by the sign of n; 0/0 is NaN.
func NumDiv(a, b Number) Number {
	if !a.IsFloat && !b.IsFloat {
		if b.I == 0 {
			return Float(divByZero(float64(a.I)))
		}
		if a.I%b.I == 0 && !overflowsDiv(a.I, b.I) {
			return Int(a.I / b.I)
		}
		return Float(float64(a.I) / float64(b.I))
	}
	return Float(a.AsFloat() / b.AsFloat())
}

// NumRem implements `%`. Remainder by zero is NaN.
func NumRem(a, b Number) Number {
	if !a.IsFloat && !b.IsFloat {
		if b.I == 0 {
			return Float(math.NaN())
		}
		return Int(a.I % b.I)
	}
	bf := b.AsFloat()
	if bf == 0 {
		return Float(math.NaN())
	}
	return Float(math.Mod(a.AsFloat(), bf))
}

// NumPow implements `**`, always through f64.
func NumPow(a, b Number) Number {
	return Float(math.Pow(a.AsFloat(), b.AsFloat()))
}

// NumNeg implements unary `-`. Negating the minimum int64 would overflow,
// so it wraps to float, mirroring the other checked-overflow operators.
func NumNeg(a Number) Number {
	if !a.IsFloat {
		if a.I == math.MinInt64 {
			return Float(-float64(a.I))
		}
		return Int(-a.I)
	}
	return Float(-a.F)
}

func divByZero(n float64) float64 {
	switch {
	case n > 0:
		return math.Inf(1)
	case n < 0:
		return math.Inf(-1)
	default:
		return math.NaN()
	}
}

func overflowsAdd(a, b, sum int64) bool {
	return ((a ^ sum) & (b ^ sum)) < 0
}

func overflowsSub(a, b, diff int64) bool {
	return ((a ^ b) & (a ^ diff)) < 0
}

func overflowsMul(a, b, prod int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a == -1 && b == math.MinInt64 {
		return true
	}
	if b == -1 && a == math.MinInt64 {
		return true
	}
	return prod/b != a
}

func overflowsDiv(a, b int64) bool {
	return a == math.MinInt64 && b == -1
}

// toInt64Bits truncates a number to an int64 for bitwise operators, per
// the language's 32/64-bit-agnostic bitwise semantics adopted here: NaN
// and the infinities are handled by the caller before reaching here.
func toInt64Bits(n Number) int64 {
	if !n.IsFloat {
		return n.I
	}
	if math.IsNaN(n.F) || math.IsInf(n.F, 0) {
		return 0
	}
	return int64(n.F)
}

// NumAnd, NumOr, NumXor implement `&`, `|`, `^` with the NaN/Infinity
// identity rules: bitwise ops on NaN yield NaN; on an infinite operand,
// the finite side passes through unchanged.
func NumAnd(a, b Number) Number {
	if r, ok := bitwiseIdentity(a, b); ok {
		return r
	}
	return Int(toInt64Bits(a) & toInt64Bits(b))
}

func NumOr(a, b Number) Number {
	if r, ok := bitwiseIdentity(a, b); ok {
		return r
	}
	return Int(toInt64Bits(a) | toInt64Bits(b))
}

func NumXor(a, b Number) Number {
	if r, ok := bitwiseIdentity(a, b); ok {
		return r
	}
	return Int(toInt64Bits(a) ^ toInt64Bits(b))
}

// NumNot implements unary `~`, following the same NaN/Infinity identity
// rule as the binary bitwise operators.
func NumNot(a Number) Number {
	if a.IsNaN() {
		return Float(math.NaN())
	}
	if a.IsFloat && math.IsInf(a.F, 0) {
		return a
	}
	return Int(^toInt64Bits(a))
}

// NumShl, NumShr, NumUShr implement `<<`, `>>`, `>>>`.
func NumShl(a, b Number) Number {
	if r, ok := bitwiseIdentity(a, b); ok {
		return r
	}
	return Int(toInt64Bits(a) << (uint64(toInt64Bits(b)) & 63))
}

func NumShr(a, b Number) Number {
	if r, ok := bitwiseIdentity(a, b); ok {
		return r
	}
	return Int(toInt64Bits(a) >> (uint64(toInt64Bits(b)) & 63))
}

func NumUShr(a, b Number) Number {
	if r, ok := bitwiseIdentity(a, b); ok {
		return r
	}
	return Int(int64(uint64(toInt64Bits(a)) >> (uint64(toInt64Bits(b)) & 63)))
}

// bitwiseIdentity implements "bitwise ops on NaN -> NaN; on infinities ->
// identity on the finite side".
func bitwiseIdentity(a, b Number) (Number, bool) {
	if a.IsNaN() || b.IsNaN() {
		return Float(math.NaN()), true
	}
	aInf := a.IsFloat && math.IsInf(a.F, 0)
	bInf := b.IsFloat && math.IsInf(b.F, 0)
	switch {
	case aInf && bInf:
		return Int(0), true
	case aInf:
		return b, true
	case bInf:
		return a, true
	}
	return Number{}, false
}

// NumCompare orders two numbers: int/int by integer ordering, otherwise
// by f64. ok is false when either operand is NaN (unordered).
func NumCompare(a, b Number) (cmp int, ok bool) {
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}
	if !a.IsFloat && !b.IsFloat {
		switch {
		case a.I < b.I:
			return -1, true
		case a.I > b.I:
			return 1, true
		default:
			return 0, true
		}
	}
	af, bf := a.AsFloat(), b.AsFloat()
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

// NumEqual is numeric equality; NaN is unequal to itself even here,
// mirroring the strict-equality rule.
func NumEqual(a, b Number) bool {
	cmp, ok := NumCompare(a, b)
	return ok && cmp == 0
}

// String renders a number using the language's spellings for the special
// float values.
func (n Number) String() string {
	if !n.IsFloat {
		return strconv.FormatInt(n.I, 10)
	}
	switch {
	case math.IsNaN(n.F):
		return "NaN"
	case math.IsInf(n.F, 1):
		return "Infinity"
	case math.IsInf(n.F, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(n.F, 'g', -1, 64)
	}
}

// ParseNumericString implements the to-number string-coercion rule:
// empty (after trimming whitespace) is 0, malformed text is NaN.
func ParseNumericString(s string) Number {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Int(0)
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Float(f)
	}
	return Float(math.NaN())
}
