package runtime

import (
	"fmt"
	"strings"

	"github.com/cwbudde/goscript/internal/values"
	"github.com/cwbudde/goscript/internal/vm"
)

// installConsole installs console.assert/assertNotReached/log.
func installConsole(it *vm.Interpreter) error {
	console := newPlainObject(it)
	if err := errFirst(
		defineMethod(it, console, "assert", nativeConsoleAssert, &it.FunctionProto),
		defineMethod(it, console, "assertNotReached", nativeConsoleAssertNotReached, &it.FunctionProto),
		defineMethod(it, console, "log", nativeConsoleLog, &it.FunctionProto),
	); err != nil {
		return err
	}
	v, err := allocObject(it, console)
	if err != nil {
		return err
	}
	it.Global.DefineOwnProperty("console", dataProperty(v, true, false, true))
	return nil
}

func joinAsStrings(it *vm.Interpreter, args []values.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = it.ToString(a)
	}
	return strings.Join(parts, " ")
}

// nativeConsoleAssert fails with an *assertion* error whose detail is the
// remaining arguments joined by single spaces.
func nativeConsoleAssert(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	if len(args) > 0 && it.ToBoolean(args[0]) {
		return values.Undefined, nil
	}
	detail := ""
	if len(args) > 1 {
		detail = joinAsStrings(it, args[1:])
	}
	return values.Undefined, vm.NewRuntimeError(vm.KindAssertion, zeroPos, detail)
}

func nativeConsoleAssertNotReached(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	return values.Undefined, vm.NewRuntimeError(vm.KindAssertion, zeroPos, joinAsStrings(it, args))
}

func nativeConsoleLog(it *vm.Interpreter, thisVal values.Value, args []values.Value) (values.Value, error) {
	fmt.Fprintln(it.Out, joinAsStrings(it, args))
	return values.Undefined, nil
}
