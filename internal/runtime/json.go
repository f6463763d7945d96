package runtime

import (
	"github.com/cwbudde/goscript/internal/jsonvalue"
	"github.com/cwbudde/goscript/internal/values"
	"github.com/cwbudde/goscript/internal/vm"
)

// installJSON installs JSON.stringify/JSON.parse, a minimal
// object/array/primitive round-trip with no reviver/replacer, built on
// internal/jsonvalue.
func installJSON(it *vm.Interpreter) error {
	j := newPlainObject(it)
	if err := errFirst(
		defineMethod(it, j, "stringify", nativeJSONStringify, &it.FunctionProto),
		defineMethod(it, j, "parse", nativeJSONParse, &it.FunctionProto),
	); err != nil {
		return err
	}
	v, err := allocObject(it, j)
	if err != nil {
		return err
	}
	it.Global.DefineOwnProperty("JSON", dataProperty(v, true, false, true))
	return nil
}

func nativeJSONStringify(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	jv := toJSONValue(it, arg(args, 0))
	if jv == nil {
		return values.Undefined, nil
	}
	b, err := jv.MarshalJSON()
	if err != nil {
		return values.Undefined, vm.NewRuntimeError(vm.KindAssertion, zeroPos, err.Error())
	}
	return newStringValue(it, string(b))
}

func nativeJSONParse(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	text := it.ToString(arg(args, 0))
	jv, err := jsonvalue.ParseJSON(text)
	if err != nil {
		return values.Undefined, vm.NewRuntimeError(vm.KindAssertion, zeroPos, err.Error())
	}
	return fromJSONValue(it, jv)
}

// toJSONValue converts a language Value into a jsonvalue.Value, per
// JSON.stringify's usual rule: functions and undefined serialize to
// nothing (the caller treats a nil result as "omit this").
func toJSONValue(it *vm.Interpreter, v values.Value) *jsonvalue.Value {
	switch v.Kind() {
	case values.KindUndefined:
		return nil
	case values.KindNull:
		return jsonvalue.NewNull()
	case values.KindBoolean:
		return jsonvalue.NewBoolean(v.AsBool())
	case values.KindNumber:
		n := v.AsNumber()
		if !n.IsFloat {
			return jsonvalue.NewInt64(n.I)
		}
		return jsonvalue.NewNumber(n.F)
	case values.KindObject:
		obj := it.Heap.Resolve(v.AsReference())
		if obj.DataKind == vm.DataCall {
			return nil
		}
		if obj.DataKind == vm.DataString {
			return jsonvalue.NewString(obj.JSToString())
		}
		if obj.IsArray {
			arr := jsonvalue.NewArray()
			for i := 0; i < obj.ArrayLen; i++ {
				p, ok := obj.Own(arrayIndexKey(i))
				if !ok {
					arr.ArrayAppend(jsonvalue.NewNull())
					continue
				}
				el := toJSONValue(it, p.Value)
				if el == nil {
					el = jsonvalue.NewNull()
				}
				arr.ArrayAppend(el)
			}
			return arr
		}
		out := jsonvalue.NewObject()
		for _, k := range enumerableOwnKeys(obj) {
			p, _ := obj.Own(k)
			el := toJSONValue(it, p.Value)
			if el == nil {
				continue
			}
			out.ObjectSet(k, el)
		}
		return out
	default:
		return nil
	}
}

func fromJSONValue(it *vm.Interpreter, jv *jsonvalue.Value) (values.Value, error) {
	switch jv.Kind() {
	case jsonvalue.KindUndefined:
		return values.Undefined, nil
	case jsonvalue.KindNull:
		return values.Null, nil
	case jsonvalue.KindBoolean:
		return values.Bool(jv.BoolValue()), nil
	case jsonvalue.KindInt64:
		return values.Num(values.Int(jv.Int64Value())), nil
	case jsonvalue.KindNumber:
		return values.Num(values.Float(jv.NumberValue())), nil
	case jsonvalue.KindString:
		return newStringValue(it, jv.StringValue())
	case jsonvalue.KindArray:
		elems := jv.ArrayElements()
		vals := make([]values.Value, len(elems))
		for i, e := range elems {
			v, err := fromJSONValue(it, e)
			if err != nil {
				return values.Undefined, err
			}
			vals[i] = v
		}
		return allocObject(it, vm.NewArrayObject(&it.ArrayProto, vals))
	case jsonvalue.KindObject:
		obj := newPlainObject(it)
		for _, k := range jv.ObjectKeys() {
			v, err := fromJSONValue(it, jv.ObjectGet(k))
			if err != nil {
				return values.Undefined, err
			}
			obj.DefineOwnProperty(k, &vm.Property{Value: v, Writable: true, Enumerable: true, Configurable: true})
		}
		return allocObject(it, obj)
	default:
		return values.Undefined, nil
	}
}
