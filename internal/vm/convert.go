package vm

import (
	"github.com/cwbudde/goscript/internal/values"
)

// ToBoolean implements to-boolean for every Value variant. Objects
// never need heap access for truthiness (every reference is truthy),
// so this simply delegates to the primitive helper.
func (it *Interpreter) ToBoolean(v values.Value) bool {
	return values.ToBooleanPrimitive(v)
}

// ToString implements to-string, dispatching to an object's
// `js_to_string()`.
func (it *Interpreter) ToString(v values.Value) string {
	if v.IsObject() {
		return it.Heap.Resolve(v.AsReference()).JSToString()
	}
	return values.ToStringPrimitive(v)
}

// ToNumber implements to-number. Objects first coerce to a string via
// JSToString and then follow the string-parsing rule (empty -> 0,
// malformed -> NaN), since the language has no separate valueOf hook in
// this subset.
func (it *Interpreter) ToNumber(v values.Value) values.Number {
	if v.IsObject() {
		return values.ParseNumericString(it.ToString(v))
	}
	return values.ToNumberPrimitive(v)
}

// IsStringLike reports whether v is a string-data object, used by the
// evaluator's `+` dispatch: when either operand is a string-data
// object, the result is string concatenation.
func (it *Interpreter) IsStringLike(v values.Value) bool {
	return v.IsObject() && it.Heap.Resolve(v.AsReference()).DataKind == DataString
}
