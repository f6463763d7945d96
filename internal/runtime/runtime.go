// Package runtime builds the host runtime: the global object, its
// well-known builtins (Boolean/Number/String/Math/console/exit/isNaN),
// and the array/string prototype methods and JSON/Object/Array
// constructors. Install is called once after vm.New to populate an
// otherwise bare interpreter.
package runtime

import (
	"github.com/cwbudde/goscript/internal/token"
	"github.com/cwbudde/goscript/internal/values"
	"github.com/cwbudde/goscript/internal/vm"
)

// zeroPos is used by native calls, which receive only the interpreter
// handle, the receiver, and a slice of argument values — no source
// position.
var zeroPos = token.Position{}

// Install populates it's global object and well-known prototypes with the
// host runtime surface.
func Install(it *vm.Interpreter) error {
	for _, step := range []func(*vm.Interpreter) error{
		installGlobalConstants,
		installCoercionConstructors,
		installConsole,
		installMath,
		installArray,
		installStringProto,
		installObjectConstructor,
		installJSON,
	} {
		if err := step(it); err != nil {
			return err
		}
	}
	return nil
}

// dataProperty builds a plain data property with the given attributes.
func dataProperty(v values.Value, writable, enumerable, configurable bool) *vm.Property {
	return &vm.Property{Value: v, Writable: writable, Enumerable: enumerable, Configurable: configurable}
}

// accessorProperty builds a get-only (or get/set) accessor property.
func accessorProperty(get, set *values.Reference, enumerable, configurable bool) *vm.Property {
	return &vm.Property{IsAccessor: true, Get: get, Set: set, Enumerable: enumerable, Configurable: configurable}
}

// defineConst installs a non-writable, non-enumerable data property —
// the shape used for globals like Infinity/NaN/undefined.
func defineConst(obj *vm.Object, key string, v values.Value) {
	obj.DefineOwnProperty(key, dataProperty(v, false, false, true))
}

// defineMethod allocates fn as a native function object and installs it as
// a writable, non-enumerable own property of obj: builtin methods are
// writable and configurable but not enumerable, so they don't show up in
// for-in/Object.keys.
func defineMethod(it *vm.Interpreter, obj *vm.Object, name string, fn vm.NativeFunc, proto *values.Reference) error {
	ref, err := it.AllocObject(vm.NewNativeFunctionObject(proto, name, fn))
	if err != nil {
		return err
	}
	obj.DefineOwnProperty(name, dataProperty(values.Obj(ref), true, false, true))
	return nil
}

func newPlainObject(it *vm.Interpreter) *vm.Object {
	return vm.NewObject(&it.ObjectProto)
}

func allocObject(it *vm.Interpreter, obj *vm.Object) (values.Value, error) {
	ref, err := it.AllocObject(obj)
	if err != nil {
		return values.Undefined, err
	}
	return values.Obj(ref), nil
}

func newStringValue(it *vm.Interpreter, s string) (values.Value, error) {
	return allocObject(it, vm.NewStringObject(&it.StringProto, s))
}

func arg(args []values.Value, i int) values.Value {
	if i < len(args) {
		return args[i]
	}
	return values.Undefined
}
