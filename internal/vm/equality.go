package vm

import "github.com/cwbudde/goscript/internal/values"

// StrictEqual implements `===`: same-variant and equal (numbers by
// numeric equality including NaN !== NaN; objects by reference
// identity).
func StrictEqual(it *Interpreter, a, b values.Value) bool {
	if !values.SameVariant(a, b) {
		return false
	}
	switch a.Kind() {
	case values.KindUndefined, values.KindNull:
		return true
	case values.KindBoolean:
		return a.AsBool() == b.AsBool()
	case values.KindNumber:
		return values.NumEqual(a.AsNumber(), b.AsNumber())
	case values.KindObject:
		return a.AsReference() == b.AsReference()
	default:
		return false
	}
}

// LooseEqual implements `==`: coerce by the left operand's kind, then
// strict identity; null and undefined equal each other and nothing
// else.
func LooseEqual(it *Interpreter, a, b values.Value) bool {
	aNullish := a.IsNull() || a.IsUndefined()
	bNullish := b.IsNull() || b.IsUndefined()
	if aNullish || bNullish {
		return aNullish && bNullish
	}
	if values.SameVariant(a, b) {
		return StrictEqual(it, a, b)
	}

	var coerced values.Value
	switch a.Kind() {
	case values.KindBoolean:
		coerced = values.Bool(it.ToBoolean(b))
	case values.KindNumber:
		coerced = values.Num(it.ToNumber(b))
	default:
		return false
	}
	return StrictEqual(it, a, coerced)
}

// Compare implements the ordered-comparison rule: string-like operands
// compare lexicographically; otherwise both sides coerce to-number and
// compare there. ok is false when the comparison is unordered (either
// side is NaN), making every relational operator false in that case.
func Compare(it *Interpreter, a, b values.Value) (cmp int, ok bool) {
	if it.IsStringLike(a) && it.IsStringLike(b) {
		as, bs := it.ToString(a), it.ToString(b)
		switch {
		case as < bs:
			return -1, true
		case as > bs:
			return 1, true
		default:
			return 0, true
		}
	}
	return values.NumCompare(it.ToNumber(a), it.ToNumber(b))
}
