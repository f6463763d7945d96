package vm

import (
	"strconv"

	"github.com/cwbudde/goscript/internal/ast"
	"github.com/cwbudde/goscript/internal/token"
	"github.com/cwbudde/goscript/internal/values"
)

// DataKind tags an Object's data field: none, call (function), or
// string (box of chars).
type DataKind int

const (
	DataNone DataKind = iota
	DataCall
	DataString
)

// NativeFunc is a host-implemented callable: it receives the interpreter
// handle, the receiver, and a slice of argument values. thisVal is the
// Undefined value when the object has no receiver bound at the call
// site.
type NativeFunc func(it *Interpreter, thisVal values.Value, args []values.Value) (values.Value, error)

// CallData is either a user function (AST body closing over a Scope) or
// a native function.
type CallData struct {
	IsNative bool
	Native   NativeFunc

	Params  []*ast.Identifier
	Body    *ast.Block
	Closure *Scope
	Name    string // empty for anonymous; recorded on the call frame and used as the out-of-stack-space detail
}

// Property is a data property (value/writable/enumerable/configurable)
// or an accessor property (get/set/enumerable/configurable).
type Property struct {
	IsAccessor bool

	Value Value

	Get *values.Reference // nil if absent
	Set *values.Reference // nil if absent

	Writable     bool
	Enumerable   bool
	Configurable bool
}

// Value aliases values.Value for brevity within this package.
type Value = values.Value

// defaultDataProperty returns the attribute set new own properties get
// when defined by ordinary assignment or object-literal construction:
// writable, enumerable, and configurable.
func defaultDataProperty(v Value) *Property {
	return &Property{Value: v, Writable: true, Enumerable: true, Configurable: true}
}

// Object is a heap-resident prototype-chain object.
type Object struct {
	Proto      *values.Reference
	Props      map[string]*Property
	Order      []string // insertion order, for Object.keys/JSON.stringify
	Extensible bool

	DataKind DataKind
	Call     *CallData
	Str      string

	// IsArray and ArrayLen back the array-specific object shape: array
	// instances store elements as own properties keyed by their decimal
	// index string, with ArrayLen tracking the current element count so
	// the array prototype's `length` accessor doesn't need to rescan
	// Order.
	IsArray  bool
	ArrayLen int
}

// NewObject allocates a plain object with the given prototype (nil for
// none) and no own properties.
func NewObject(proto *values.Reference) *Object {
	return &Object{Proto: proto, Props: make(map[string]*Property), Extensible: true}
}

// NewStringObject wraps s as a string-data object.
func NewStringObject(proto *values.Reference, s string) *Object {
	o := NewObject(proto)
	o.DataKind = DataString
	o.Str = s
	return o
}

// NewArrayObject allocates an array instance with elements as own
// indexed properties.
func NewArrayObject(proto *values.Reference, elements []Value) *Object {
	o := NewObject(proto)
	o.IsArray = true
	for i, el := range elements {
		o.setOwn(arrayIndexKey(i), defaultDataProperty(el))
	}
	o.ArrayLen = len(elements)
	return o
}

// arrayIndexKey renders i as the decimal property-key string used for
// array element storage.
func arrayIndexKey(i int) string {
	return strconv.Itoa(i)
}

// NewUserFunctionObject wraps a user function body as an object's call
// data, closing over the current scope.
func NewUserFunctionObject(proto *values.Reference, name string, params []*ast.Identifier, body *ast.Block, closure *Scope) *Object {
	o := NewObject(proto)
	o.DataKind = DataCall
	o.Call = &CallData{Params: params, Body: body, Closure: closure, Name: name}
	return o
}

// NewNativeFunctionObject wraps fn as a native callable.
func NewNativeFunctionObject(proto *values.Reference, name string, fn NativeFunc) *Object {
	o := NewObject(proto)
	o.DataKind = DataCall
	o.Call = &CallData{IsNative: true, Native: fn, Name: name}
	return o
}

// Own performs a local-only property lookup, ignoring the prototype
// chain.
func (o *Object) Own(key string) (*Property, bool) {
	p, ok := o.Props[key]
	return p, ok
}

// setOwn records a new own property, tracking insertion order the first
// time key is seen.
func (o *Object) setOwn(key string, p *Property) {
	if _, exists := o.Props[key]; !exists {
		o.Order = append(o.Order, key)
	}
	o.Props[key] = p
}

// deleteOwn removes key, dropping it from both the map and Order.
func (o *Object) deleteOwn(key string) {
	delete(o.Props, key)
	for i, k := range o.Order {
		if k == key {
			o.Order = append(o.Order[:i], o.Order[i+1:]...)
			break
		}
	}
}

// Get walks the prototype chain starting at self until key is found,
// invoking an accessor's getter with receiver when the found property is
// one. Returns Undefined when key is not found anywhere on the chain.
func (it *Interpreter) Get(self *Object, key string, receiver Value, pos token.Position) (Value, error) {
	cur := self
	for {
		if p, ok := cur.Own(key); ok {
			if p.IsAccessor {
				if p.Get == nil {
					return values.Undefined, nil
				}
				getter := it.Heap.Resolve(*p.Get)
				return it.CallObject(getter, receiver, nil, pos)
			}
			return p.Value, nil
		}
		if cur.Proto == nil {
			return values.Undefined, nil
		}
		cur = it.Heap.Resolve(*cur.Proto)
	}
}

// Set writes an own writable data property or invokes an own setter;
// otherwise walk the prototype chain
// looking for an inherited accessor/data property to honor; otherwise,
// if self is extensible, define a new own data property with default
// attributes; else return false (silent failure, mirrored by the
// evaluator's assignment rule).
func (it *Interpreter) Set(self *Object, key string, receiver Value, v Value, pos token.Position) (bool, error) {
	if p, ok := self.Own(key); ok {
		if p.IsAccessor {
			if p.Set == nil {
				return false, nil
			}
			setter := it.Heap.Resolve(*p.Set)
			_, err := it.CallObject(setter, receiver, []Value{v}, pos)
			return err == nil, err
		}
		if !p.Writable {
			return false, nil
		}
		p.Value = v
		return true, nil
	}

	cur := self
	for cur.Proto != nil {
		cur = it.Heap.Resolve(*cur.Proto)
		if p, ok := cur.Own(key); ok {
			if p.IsAccessor {
				if p.Set == nil {
					return false, nil
				}
				setter := it.Heap.Resolve(*p.Set)
				_, err := it.CallObject(setter, receiver, []Value{v}, pos)
				return err == nil, err
			}
			break // inherited data property: falls through to own-define below
		}
	}

	if !self.Extensible {
		return false, nil
	}
	self.setOwn(key, defaultDataProperty(v))
	return true, nil
}

// Delete removes an own configurable property.
func (o *Object) Delete(key string) bool {
	p, ok := o.Own(key)
	if !ok {
		return true
	}
	if !p.Configurable {
		return false
	}
	o.deleteOwn(key)
	return true
}

// DefineOwnProperty sets or adds an own property; if the object is not
// extensible, it only succeeds when an existing property already equals
// the proposed one (by key presence — a full structural comparison is
// not needed by anything in this interpreter, since every call site here
// only (re)defines a property it itself just removed or is creating).
func (o *Object) DefineOwnProperty(key string, p *Property) bool {
	if _, exists := o.Own(key); !exists && !o.Extensible {
		return false
	}
	o.setOwn(key, p)
	return true
}

// JSToString implements `js_to_string()`: string-data objects return
// their contained string; everything else renders as "[object Object]".
func (o *Object) JSToString() string {
	if o.DataKind == DataString {
		return o.Str
	}
	return "[object Object]"
}

// CallObject dispatches self's call data to either a user or native
// function. Returns *Error{Kind: KindNotCallable} if self has no call
// data.
func (it *Interpreter) CallObject(self *Object, receiver Value, args []Value, pos token.Position) (Value, error) {
	if self.DataKind != DataCall || self.Call == nil {
		return values.Undefined, newError(KindNotCallable, pos, "")
	}
	if self.Call.IsNative {
		return self.Call.Native(it, receiver, args)
	}
	return it.CallUserFunction(self.Call, receiver, args, pos)
}
