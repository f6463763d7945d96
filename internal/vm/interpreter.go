// Package vm implements the tree-walking evaluator: the heap, the
// prototype-based object model, the lexical scope graph and call stack,
// and the recursive evaluator with its single execution-state slot.
package vm

import (
	"io"
	"os"

	"github.com/cwbudde/goscript/internal/token"
	"github.com/cwbudde/goscript/internal/values"
)

// zeroPos is used for errors that have no specific source-level origin
// (e.g. heap exhaustion, which is a host-resource condition, not a
// property of any one AST node).
var zeroPos = token.Position{}

// State is the execution-state enumeration: the VM holds exactly one at
// a time, inspected after each statement.
type State int

const (
	Advance State = iota
	Break
	Continue
	Return
	Throw
	Exit
)

// Interpreter is the VM: heap, call stack, well-known prototypes, the
// global object, and the single execution-state slot plus the
// hidden-exception slot `finally` needs.
type Interpreter struct {
	Heap  *Heap
	Stack *CallStack

	ObjectProto   values.Reference
	FunctionProto values.Reference
	ArrayProto    values.Reference
	StringProto   values.Reference

	Global *Object
	globalRef values.Reference

	state      State
	stateValue values.Value // payload for Return/Throw

	hiddenException values.Value
	hasHidden       bool

	// Out is where console.log and similar host-runtime sinks write;
	// diagnostics and console.log go to stderr by default.
	Out io.Writer
}

// New constructs an Interpreter with its well-known prototypes and
// empty global object already allocated and linked. Builtin population
// (Boolean/Number/String/Math/console/...) is the internal/runtime
// package's job, invoked by the caller after New.
func New() *Interpreter {
	it := &Interpreter{Heap: NewHeap(), Out: os.Stderr}

	objProto := NewObject(nil)
	objProtoRef, _ := it.Heap.Allocate(objProto)
	it.ObjectProto = objProtoRef

	funcProto := NewObject(&objProtoRef)
	funcProtoRef, _ := it.Heap.Allocate(funcProto)
	it.FunctionProto = funcProtoRef

	arrProto := NewObject(&objProtoRef)
	arrProtoRef, _ := it.Heap.Allocate(arrProto)
	it.ArrayProto = arrProtoRef

	strProto := NewObject(&objProtoRef)
	strProtoRef, _ := it.Heap.Allocate(strProto)
	it.StringProto = strProtoRef

	global := NewObject(&objProtoRef)
	globalRef, _ := it.Heap.Allocate(global)
	it.Global = global
	it.globalRef = globalRef

	it.Stack = NewCallStack(NewRootScope())
	return it
}

// GlobalReference returns the heap reference of the global object, for
// host-runtime code that needs to hand it out as a Value.
func (it *Interpreter) GlobalReference() values.Reference { return it.globalRef }

// State returns the current execution state and its payload.
func (it *Interpreter) State() (State, values.Value) { return it.state, it.stateValue }

// SetState transitions out of Advance into a non-local control state.
// This requires the current state be Advance; it panics otherwise, since
// every evaluator call site checks state before proceeding and a
// violation is a bug in this package, not a user-facing condition.
func (it *Interpreter) SetState(s State, payload values.Value) {
	if it.state != Advance {
		panic("vm: SetState called while not Advance")
	}
	it.state = s
	it.stateValue = payload
}

// ResetState atomically returns the current state's payload and clears
// the slot back to Advance.
func (it *Interpreter) ResetState() (State, values.Value) {
	s, v := it.state, it.stateValue
	it.state = Advance
	it.stateValue = values.Undefined
	return s, v
}

// hideException implements the `finally` hide half of the protocol:
// move an active Throw to the hidden slot and reset state to Advance so
// `finally` runs in a clean state.
func (it *Interpreter) hideException() {
	if it.state == Throw {
		it.hiddenException = it.stateValue
		it.hasHidden = true
		it.state = Advance
		it.stateValue = values.Undefined
	}
}

// restoreException implements the restore half: if finally left the
// state at Advance, reinstate the hidden exception (if any); if finally
// produced its own abnormal state, the hidden exception is discarded.
func (it *Interpreter) restoreException() {
	if it.hasHidden {
		if it.state == Advance {
			it.state = Throw
			it.stateValue = it.hiddenException
		}
		it.hasHidden = false
		it.hiddenException = values.Undefined
	}
}

// AllocObject allocates obj on the heap, translating ErrOutOfHeapSpace
// into the runtime error taxonomy's KindOutOfMemory.
func (it *Interpreter) AllocObject(obj *Object) (values.Reference, error) {
	ref, err := it.Heap.Allocate(obj)
	if err != nil {
		return values.Reference{}, newError(KindOutOfMemory, zeroPos, "")
	}
	return ref, nil
}
