package runtime

import (
	"github.com/cwbudde/goscript/internal/values"
	"github.com/cwbudde/goscript/internal/vm"
)

// installObjectConstructor installs the Object global with keys/values/
// assign static methods, grounded in jakescript's runtime/object.rs
// constructors.
func installObjectConstructor(it *vm.Interpreter) error {
	ctorRef, err := it.AllocObject(vm.NewNativeFunctionObject(&it.FunctionProto, "Object", nativeObjectConstructor))
	if err != nil {
		return err
	}
	ctorObj := it.Heap.Resolve(ctorRef)
	if err := errFirst(
		defineMethod(it, ctorObj, "keys", nativeObjectKeys, &it.FunctionProto),
		defineMethod(it, ctorObj, "values", nativeObjectValues, &it.FunctionProto),
		defineMethod(it, ctorObj, "assign", nativeObjectAssign, &it.FunctionProto),
	); err != nil {
		return err
	}
	ctorObj.DefineOwnProperty("prototype", dataProperty(values.Obj(it.ObjectProto), false, false, false))
	it.Global.DefineOwnProperty("Object", dataProperty(values.Obj(ctorRef), true, false, true))
	return nil
}

func nativeObjectConstructor(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	v := arg(args, 0)
	if v.IsObject() {
		return v, nil
	}
	return allocObject(it, newPlainObject(it))
}

// enumerableOwnKeys returns obj's own enumerable keys in insertion order.
func enumerableOwnKeys(obj *vm.Object) []string {
	var keys []string
	for _, k := range obj.Order {
		if p, ok := obj.Own(k); ok && p.Enumerable {
			keys = append(keys, k)
		}
	}
	return keys
}

func nativeObjectKeys(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	v := arg(args, 0)
	if !v.IsObject() {
		return allocObject(it, vm.NewArrayObject(&it.ArrayProto, nil))
	}
	obj := it.Heap.Resolve(v.AsReference())
	keys := enumerableOwnKeys(obj)
	elems := make([]values.Value, len(keys))
	for i, k := range keys {
		sv, err := newStringValue(it, k)
		if err != nil {
			return values.Undefined, err
		}
		elems[i] = sv
	}
	return allocObject(it, vm.NewArrayObject(&it.ArrayProto, elems))
}

func nativeObjectValues(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	v := arg(args, 0)
	if !v.IsObject() {
		return allocObject(it, vm.NewArrayObject(&it.ArrayProto, nil))
	}
	obj := it.Heap.Resolve(v.AsReference())
	keys := enumerableOwnKeys(obj)
	elems := make([]values.Value, len(keys))
	for i, k := range keys {
		p, _ := obj.Own(k)
		elems[i] = p.Value
	}
	return allocObject(it, vm.NewArrayObject(&it.ArrayProto, elems))
}

func nativeObjectAssign(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	target := arg(args, 0)
	if !target.IsObject() {
		return target, nil
	}
	targetObj := it.Heap.Resolve(target.AsReference())
	rest := args
	if len(args) > 1 {
		rest = args[1:]
	} else {
		rest = nil
	}
	for _, src := range rest {
		if !src.IsObject() {
			continue
		}
		srcObj := it.Heap.Resolve(src.AsReference())
		for _, k := range enumerableOwnKeys(srcObj) {
			p, _ := srcObj.Own(k)
			if _, err := it.Set(targetObj, k, target, p.Value, zeroPos); err != nil {
				return values.Undefined, err
			}
		}
	}
	return target, nil
}
