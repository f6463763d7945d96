package values

import (
	"math"
	"strconv"
)

// ToBooleanPrimitive implements to-boolean for every variant except
// Object, whose truthiness (every object reference is truthy) the caller
// already knows without consulting the heap.
func ToBooleanPrimitive(v Value) bool {
	switch v.kind {
	case KindUndefined, KindNull:
		return false
	case KindBoolean:
		return v.b
	case KindNumber:
		if v.n.IsNaN() {
			return false
		}
		return v.n.AsFloat() != 0
	case KindObject:
		return true
	default:
		return false
	}
}

// ToNumberPrimitive implements to-number for Boolean/Number/Null/
// Undefined: booleans coerce to 0/1, null coerces to 0, undefined
// coerces to NaN, matching the language's usual rule. Object string
// coercion (needed before this applies) is the caller's job.
func ToNumberPrimitive(v Value) Number {
	switch v.kind {
	case KindUndefined:
		return Float(math.NaN())
	case KindNull:
		return Int(0)
	case KindBoolean:
		if v.b {
			return Int(1)
		}
		return Int(0)
	case KindNumber:
		return v.n
	default:
		return Int(0)
	}
}

// ToStringPrimitive implements to-string for every variant except
// Object, which requires a `js_to_string()` dispatch through the heap
// (see internal/vm).
func ToStringPrimitive(v Value) string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return v.n.String()
	default:
		return ""
	}
}
