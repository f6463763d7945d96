package values

// Reference is an opaque handle naming a heap object; equality is
// identity. The heap package is the only allocator of Reference values;
// this package only needs to carry them around.
type Reference struct {
	id uint64
}

// NewReference wraps a raw heap index. Only the heap package should call
// this; everything else receives references already constructed.
func NewReference(id uint64) Reference { return Reference{id: id} }

// ID returns the raw heap index, used by the heap for indexed storage.
func (r Reference) ID() uint64 { return r.id }

// Kind tags which variant a Value holds.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindObject
)

// Value is the sum type Boolean | Number | Object(Reference) | Null |
// Undefined. The zero value is Undefined.
type Value struct {
	kind Kind
	b    bool
	n    Number
	ref  Reference
}

// Undefined is the value of that name.
var Undefined = Value{kind: KindUndefined}

// Null is the value of that name.
var Null = Value{kind: KindNull}

// Bool constructs a Boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Num constructs a Number value.
func Num(n Number) Value { return Value{kind: KindNumber, n: n} }

// Obj constructs an Object value wrapping a heap reference.
func Obj(ref Reference) Value { return Value{kind: KindObject, ref: ref} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }
func (v Value) IsNull() bool      { return v.kind == KindNull }
func (v Value) IsBoolean() bool   { return v.kind == KindBoolean }
func (v Value) IsNumber() bool    { return v.kind == KindNumber }
func (v Value) IsObject() bool    { return v.kind == KindObject }

// AsBool returns the boolean payload; only meaningful when IsBoolean().
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the Number payload; only meaningful when IsNumber().
func (v Value) AsNumber() Number { return v.n }

// AsReference returns the Reference payload; only meaningful when
// IsObject().
func (v Value) AsReference() Reference { return v.ref }

// SameVariant reports whether a and b hold the same Kind, the first half
// of the strict-identity test.
func SameVariant(a, b Value) bool { return a.kind == b.kind }
