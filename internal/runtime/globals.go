package runtime

import (
	"math"

	"github.com/cwbudde/goscript/internal/values"
	"github.com/cwbudde/goscript/internal/vm"
)

// installGlobalConstants installs Infinity, NaN, undefined, isNaN and
// exit.
func installGlobalConstants(it *vm.Interpreter) error {
	defineConst(it.Global, "Infinity", values.Num(values.Float(math.Inf(1))))
	defineConst(it.Global, "NaN", values.Num(values.Float(math.NaN())))
	defineConst(it.Global, "undefined", values.Undefined)

	return errFirst(
		defineMethod(it, it.Global, "isNaN", nativeIsNaN, &it.FunctionProto),
		defineMethod(it, it.Global, "exit", nativeExit, &it.FunctionProto),
	)
}

func errFirst(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// nativeIsNaN reports true for any non-number value, or for numeric NaN.
func nativeIsNaN(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	v := arg(args, 0)
	if !v.IsNumber() {
		return values.Bool(true), nil
	}
	return values.Bool(v.AsNumber().IsNaN()), nil
}

// nativeExit sets the execution state to Exit.
func nativeExit(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	it.SetState(vm.Exit, arg(args, 0))
	return values.Undefined, nil
}

// installCoercionConstructors installs Boolean/Number/String as
// identity-defaulting coercion callables.
func installCoercionConstructors(it *vm.Interpreter) error {
	return errFirst(
		defineMethod(it, it.Global, "Boolean", nativeBoolean, &it.FunctionProto),
		defineMethod(it, it.Global, "Number", nativeNumber, &it.FunctionProto),
		defineMethod(it, it.Global, "String", nativeString, &it.FunctionProto),
	)
}

func nativeBoolean(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return values.Bool(false), nil
	}
	return values.Bool(it.ToBoolean(args[0])), nil
}

func nativeNumber(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return values.Num(values.Int(0)), nil
	}
	return values.Num(it.ToNumber(args[0])), nil
}

func nativeString(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return newStringValue(it, "")
	}
	return newStringValue(it, it.ToString(args[0]))
}
