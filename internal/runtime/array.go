package runtime

import (
	"strconv"
	"strings"

	"github.com/cwbudde/goscript/internal/values"
	"github.com/cwbudde/goscript/internal/vm"
)

// installArray installs the array prototype's built-in methods
// (push/pop/join/slice/indexOf/forEach/map/filter, length as a read-only
// accessor) plus the Array constructor and Array.isArray global.
func installArray(it *vm.Interpreter) error {
	protoObj := it.Heap.Resolve(it.ArrayProto)

	getterRef, err := it.AllocObject(vm.NewNativeFunctionObject(&it.FunctionProto, "length", nativeArrayLengthGetter))
	if err != nil {
		return err
	}
	protoObj.DefineOwnProperty("length", accessorProperty(&getterRef, nil, false, false))

	if err := errFirst(
		defineMethod(it, protoObj, "push", nativeArrayPush, &it.FunctionProto),
		defineMethod(it, protoObj, "pop", nativeArrayPop, &it.FunctionProto),
		defineMethod(it, protoObj, "join", nativeArrayJoin, &it.FunctionProto),
		defineMethod(it, protoObj, "slice", nativeArraySlice, &it.FunctionProto),
		defineMethod(it, protoObj, "indexOf", nativeArrayIndexOf, &it.FunctionProto),
		defineMethod(it, protoObj, "forEach", nativeArrayForEach, &it.FunctionProto),
		defineMethod(it, protoObj, "map", nativeArrayMap, &it.FunctionProto),
		defineMethod(it, protoObj, "filter", nativeArrayFilter, &it.FunctionProto),
	); err != nil {
		return err
	}

	ctorRef, err := it.AllocObject(vm.NewNativeFunctionObject(&it.FunctionProto, "Array", nativeArrayConstructor))
	if err != nil {
		return err
	}
	ctorObj := it.Heap.Resolve(ctorRef)
	if err := defineMethod(it, ctorObj, "isArray", nativeArrayIsArray, &it.FunctionProto); err != nil {
		return err
	}
	ctorObj.DefineOwnProperty("prototype", dataProperty(values.Obj(it.ArrayProto), false, false, false))
	it.Global.DefineOwnProperty("Array", dataProperty(values.Obj(ctorRef), true, false, true))
	return nil
}

func arrayIndexKey(i int) string { return strconv.Itoa(i) }

// arrayElements reads an array object's own elements in order, returning
// nil if thisVal is not an array object.
func arrayElements(it *vm.Interpreter, thisVal values.Value) (*vm.Object, []values.Value, bool) {
	if !thisVal.IsObject() {
		return nil, nil, false
	}
	obj := it.Heap.Resolve(thisVal.AsReference())
	if !obj.IsArray {
		return nil, nil, false
	}
	elems := make([]values.Value, obj.ArrayLen)
	for i := range elems {
		if p, ok := obj.Own(arrayIndexKey(i)); ok {
			elems[i] = p.Value
		} else {
			elems[i] = values.Undefined
		}
	}
	return obj, elems, true
}

func nativeArrayLengthGetter(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	obj, _, ok := arrayElements(it, thisVal)
	if !ok {
		return values.Num(values.Int(0)), nil
	}
	return values.Num(values.Int(int64(obj.ArrayLen))), nil
}

func nativeArrayConstructor(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	return allocObject(it, vm.NewArrayObject(&it.ArrayProto, args))
}

func nativeArrayIsArray(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	v := arg(args, 0)
	if !v.IsObject() {
		return values.Bool(false), nil
	}
	return values.Bool(it.Heap.Resolve(v.AsReference()).IsArray), nil
}

func nativeArrayPush(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	obj, _, ok := arrayElements(it, thisVal)
	if !ok {
		return values.Undefined, nil
	}
	for _, a := range args {
		obj.DefineOwnProperty(arrayIndexKey(obj.ArrayLen), &vm.Property{Value: a, Writable: true, Enumerable: true, Configurable: true})
		obj.ArrayLen++
	}
	return values.Num(values.Int(int64(obj.ArrayLen))), nil
}

func nativeArrayPop(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	obj, _, ok := arrayElements(it, thisVal)
	if !ok || obj.ArrayLen == 0 {
		return values.Undefined, nil
	}
	idx := obj.ArrayLen - 1
	key := arrayIndexKey(idx)
	p, _ := obj.Own(key)
	v := p.Value
	obj.Delete(key)
	obj.ArrayLen--
	return v, nil
}

func nativeArrayJoin(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	_, elems, ok := arrayElements(it, thisVal)
	if !ok {
		return newStringValue(it, "")
	}
	sep := ","
	if len(args) > 0 {
		sep = it.ToString(args[0])
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		if e.IsUndefined() || e.IsNull() {
			parts[i] = ""
		} else {
			parts[i] = it.ToString(e)
		}
	}
	return newStringValue(it, strings.Join(parts, sep))
}

func nativeArraySlice(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	_, elems, ok := arrayElements(it, thisVal)
	if !ok {
		return allocObject(it, vm.NewArrayObject(&it.ArrayProto, nil))
	}
	start, end := sliceBounds(len(elems), args, it)
	if start > end {
		start = end
	}
	return allocObject(it, vm.NewArrayObject(&it.ArrayProto, elems[start:end]))
}

func sliceBounds(n int, args []values.Value, it *vm.Interpreter) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			i += n
		}
		if i < 0 {
			return 0
		}
		if i > n {
			return n
		}
		return i
	}
	start, end := 0, n
	if len(args) > 0 {
		start = clamp(int(it.ToNumber(args[0]).AsFloat()))
	}
	if len(args) > 1 {
		end = clamp(int(it.ToNumber(args[1]).AsFloat()))
	}
	return start, end
}

func nativeArrayIndexOf(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	_, elems, ok := arrayElements(it, thisVal)
	if !ok {
		return values.Num(values.Int(-1)), nil
	}
	target := arg(args, 0)
	for i, e := range elems {
		if vm.StrictEqual(it, e, target) {
			return values.Num(values.Int(int64(i))), nil
		}
	}
	return values.Num(values.Int(-1)), nil
}

func callbackObject(it *vm.Interpreter, v values.Value) (*vm.Object, error) {
	if !v.IsObject() {
		return nil, vm.NewRuntimeError(vm.KindNotCallable, zeroPos, "")
	}
	obj := it.Heap.Resolve(v.AsReference())
	if obj.DataKind != vm.DataCall {
		return nil, vm.NewRuntimeError(vm.KindNotCallable, zeroPos, "")
	}
	return obj, nil
}

func nativeArrayForEach(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	_, elems, ok := arrayElements(it, thisVal)
	if !ok {
		return values.Undefined, nil
	}
	fn, err := callbackObject(it, arg(args, 0))
	if err != nil {
		return values.Undefined, err
	}
	for i, e := range elems {
		if _, err := it.CallObject(fn, values.Undefined, []values.Value{e, values.Num(values.Int(int64(i))), thisVal}, zeroPos); err != nil {
			return values.Undefined, err
		}
	}
	return values.Undefined, nil
}

func nativeArrayMap(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	_, elems, ok := arrayElements(it, thisVal)
	if !ok {
		return allocObject(it, vm.NewArrayObject(&it.ArrayProto, nil))
	}
	fn, err := callbackObject(it, arg(args, 0))
	if err != nil {
		return values.Undefined, err
	}
	out := make([]values.Value, len(elems))
	for i, e := range elems {
		v, err := it.CallObject(fn, values.Undefined, []values.Value{e, values.Num(values.Int(int64(i))), thisVal}, zeroPos)
		if err != nil {
			return values.Undefined, err
		}
		out[i] = v
	}
	return allocObject(it, vm.NewArrayObject(&it.ArrayProto, out))
}

func nativeArrayFilter(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	_, elems, ok := arrayElements(it, thisVal)
	if !ok {
		return allocObject(it, vm.NewArrayObject(&it.ArrayProto, nil))
	}
	fn, err := callbackObject(it, arg(args, 0))
	if err != nil {
		return values.Undefined, err
	}
	var out []values.Value
	for i, e := range elems {
		v, err := it.CallObject(fn, values.Undefined, []values.Value{e, values.Num(values.Int(int64(i))), thisVal}, zeroPos)
		if err != nil {
			return values.Undefined, err
		}
		if it.ToBoolean(v) {
			out = append(out, e)
		}
	}
	return allocObject(it, vm.NewArrayObject(&it.ArrayProto, out))
}
