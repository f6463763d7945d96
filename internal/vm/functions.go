package vm

import (
	"github.com/cwbudde/goscript/internal/ast"
	"github.com/cwbudde/goscript/internal/token"
	"github.com/cwbudde/goscript/internal/values"
)

// makeUserFunction allocates a user-function object closing over
// closure. It also vivifies the function's own "prototype" object (with
// a "constructor" property pointing back at the function), matching the
// object model evalNew and evalInstanceof expect when a script never
// assigns fn.prototype itself.
func (it *Interpreter) makeUserFunction(name string, params []*ast.Identifier, body *ast.Block, closure *Scope) (values.Reference, error) {
	obj := NewUserFunctionObject(&it.FunctionProto, name, params, body, closure)
	fnRef, err := it.AllocObject(obj)
	if err != nil {
		return values.Reference{}, err
	}
	if err := it.attachPrototype(fnRef, obj); err != nil {
		return values.Reference{}, err
	}
	return fnRef, nil
}

// attachPrototype installs a fresh own "prototype" object on fn, with its
// own "constructor" property set back to fn, per the standard
// constructor/instance relationship evalNew's and evalInstanceof's
// prototype-chain walk assume.
func (it *Interpreter) attachPrototype(fnRef values.Reference, fn *Object) error {
	protoObj := NewObject(&it.ObjectProto)
	protoObj.setOwn("constructor", &Property{Value: values.Obj(fnRef), Writable: true, Configurable: true})

	protoRef, err := it.AllocObject(protoObj)
	if err != nil {
		return err
	}
	fn.setOwn("prototype", &Property{Value: values.Obj(protoRef), Writable: true})
	return nil
}

// CallUserFunction binds parameters into a fresh scope (missing
// arguments become undefined; extra arguments were already evaluated by
// the caller for side effects and are simply unused here), pushes a call
// frame, evaluates the body, pops, and translates the resulting
// execution state into a value. Return is consumed at the call boundary;
// Throw and Exit keep propagating past it.
func (it *Interpreter) CallUserFunction(call *CallData, receiver values.Value, args []values.Value, pos token.Position) (values.Value, error) {
	scope := call.Closure.Push(true)
	for i, p := range call.Params {
		v := values.Undefined
		if i < len(args) {
			v = args[i]
		}
		if err := scope.Declare(KindLet, p.Value, v, p.Pos()); err != nil {
			return values.Undefined, err
		}
	}

	if !it.Stack.Push(scope, receiver, call.Name) {
		return values.Undefined, newError(KindOutOfStackSpace, pos, call.Name)
	}
	defer it.Stack.Pop()

	if _, err := it.evalBlockBody(call.Body); err != nil {
		return values.Undefined, Wrap(pos, err)
	}

	switch it.state {
	case Return:
		_, v := it.ResetState()
		return v, nil
	default:
		return values.Undefined, nil
	}
}
