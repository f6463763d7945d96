package runtime

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/cwbudde/goscript/internal/values"
	"github.com/cwbudde/goscript/internal/vm"
)

// installStringProto installs the string prototype's built-in methods:
// charAt, charCodeAt, indexOf, slice, split, toUpperCase, toLowerCase,
// trim, concat, includes. Indices are rune offsets rather than UTF-16
// code units (documented simplification, see DESIGN.md).
func installStringProto(it *vm.Interpreter) error {
	proto := it.Heap.Resolve(it.StringProto)
	return errFirst(
		defineMethod(it, proto, "charAt", nativeStringCharAt, &it.FunctionProto),
		defineMethod(it, proto, "charCodeAt", nativeStringCharCodeAt, &it.FunctionProto),
		defineMethod(it, proto, "indexOf", nativeStringIndexOf, &it.FunctionProto),
		defineMethod(it, proto, "slice", nativeStringSlice, &it.FunctionProto),
		defineMethod(it, proto, "split", nativeStringSplit, &it.FunctionProto),
		defineMethod(it, proto, "toUpperCase", nativeStringToUpperCase, &it.FunctionProto),
		defineMethod(it, proto, "toLowerCase", nativeStringToLowerCase, &it.FunctionProto),
		defineMethod(it, proto, "trim", nativeStringTrim, &it.FunctionProto),
		defineMethod(it, proto, "concat", nativeStringConcat, &it.FunctionProto),
		defineMethod(it, proto, "includes", nativeStringIncludes, &it.FunctionProto),
	)
}

func receiverString(it *vm.Interpreter, thisVal values.Value) string {
	if !thisVal.IsObject() {
		return ""
	}
	return it.Heap.Resolve(thisVal.AsReference()).JSToString()
}

func nativeStringCharAt(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	r := []rune(receiverString(it, thisVal))
	idx := int(it.ToNumber(arg(args, 0)).AsFloat())
	if idx < 0 || idx >= len(r) {
		return newStringValue(it, "")
	}
	return newStringValue(it, string(r[idx]))
}

func nativeStringCharCodeAt(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	r := []rune(receiverString(it, thisVal))
	idx := int(it.ToNumber(arg(args, 0)).AsFloat())
	if idx < 0 || idx >= len(r) {
		return values.Num(values.Float(math.NaN())), nil
	}
	return values.Num(values.Int(int64(r[idx]))), nil
}

func nativeStringIndexOf(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	s := receiverString(it, thisVal)
	needle := it.ToString(arg(args, 0))
	i := strings.Index(s, needle)
	if i > 0 {
		i = utf8.RuneCountInString(s[:i])
	}
	return values.Num(values.Int(int64(i))), nil
}

func nativeStringSlice(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	r := []rune(receiverString(it, thisVal))
	start, end := sliceBounds(len(r), args, it)
	if start > end {
		start = end
	}
	return newStringValue(it, string(r[start:end]))
}

func nativeStringSplit(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	s := receiverString(it, thisVal)
	var parts []string
	if len(args) == 0 {
		parts = []string{s}
	} else {
		sep := it.ToString(args[0])
		if sep == "" {
			for _, r := range s {
				parts = append(parts, string(r))
			}
		} else {
			parts = strings.Split(s, sep)
		}
	}
	elems := make([]values.Value, len(parts))
	for i, p := range parts {
		v, err := newStringValue(it, p)
		if err != nil {
			return values.Undefined, err
		}
		elems[i] = v
	}
	return allocObject(it, vm.NewArrayObject(&it.ArrayProto, elems))
}

func nativeStringToUpperCase(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	return newStringValue(it, strings.ToUpper(receiverString(it, thisVal)))
}

func nativeStringToLowerCase(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	return newStringValue(it, strings.ToLower(receiverString(it, thisVal)))
}

func nativeStringTrim(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	return newStringValue(it, strings.TrimSpace(receiverString(it, thisVal)))
}

func nativeStringConcat(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	var b strings.Builder
	b.WriteString(receiverString(it, thisVal))
	for _, a := range args {
		b.WriteString(it.ToString(a))
	}
	return newStringValue(it, b.String())
}

func nativeStringIncludes(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	s := receiverString(it, thisVal)
	needle := it.ToString(arg(args, 0))
	return values.Bool(strings.Contains(s, needle)), nil
}
