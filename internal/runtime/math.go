package runtime

import (
	"math"

	"github.com/cwbudde/goscript/internal/values"
	"github.com/cwbudde/goscript/internal/vm"
)

// installMath installs the Math object with its sqrt, abs, floor, ceil,
// round, max and min methods and its PI constant.
func installMath(it *vm.Interpreter) error {
	m := newPlainObject(it)
	if err := errFirst(
		defineMethod(it, m, "sqrt", nativeMathSqrt, &it.FunctionProto),
		defineMethod(it, m, "abs", nativeMathAbs, &it.FunctionProto),
		defineMethod(it, m, "floor", nativeMathFloor, &it.FunctionProto),
		defineMethod(it, m, "ceil", nativeMathCeil, &it.FunctionProto),
		defineMethod(it, m, "round", nativeMathRound, &it.FunctionProto),
		defineMethod(it, m, "max", nativeMathMax, &it.FunctionProto),
		defineMethod(it, m, "min", nativeMathMin, &it.FunctionProto),
	); err != nil {
		return err
	}
	defineConst(m, "PI", values.Num(values.Float(math.Pi)))
	v, err := allocObject(it, m)
	if err != nil {
		return err
	}
	it.Global.DefineOwnProperty("Math", dataProperty(v, true, false, true))
	return nil
}

func nativeMathSqrt(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	return values.Num(values.Float(math.Sqrt(it.ToNumber(arg(args, 0)).AsFloat()))), nil
}

func nativeMathAbs(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	return values.Num(values.Float(math.Abs(it.ToNumber(arg(args, 0)).AsFloat()))), nil
}

func nativeMathFloor(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	return values.Num(values.Float(math.Floor(it.ToNumber(arg(args, 0)).AsFloat()))), nil
}

func nativeMathCeil(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	return values.Num(values.Float(math.Ceil(it.ToNumber(arg(args, 0)).AsFloat()))), nil
}

func nativeMathRound(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	return values.Num(values.Float(math.Round(it.ToNumber(arg(args, 0)).AsFloat()))), nil
}

func nativeMathMax(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return values.Num(values.Float(math.Inf(-1))), nil
	}
	best := it.ToNumber(args[0]).AsFloat()
	for _, a := range args[1:] {
		if f := it.ToNumber(a).AsFloat(); f > best {
			best = f
		}
	}
	return values.Num(values.Float(best)), nil
}

func nativeMathMin(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return values.Num(values.Float(math.Inf(1))), nil
	}
	best := it.ToNumber(args[0]).AsFloat()
	for _, a := range args[1:] {
		if f := it.ToNumber(a).AsFloat(); f < best {
			best = f
		}
	}
	return values.Num(values.Float(best)), nil
}
