package vm

import "github.com/cwbudde/goscript/internal/values"

// Heap is a monotonically-indexed allocate-only object store: every
// Allocate call returns a fresh Reference whose index equals the
// allocation sequence number. There is no garbage collection, so
// objects are never freed within a program run; cycles (closures
// capturing scopes that hold functions, etc.) are therefore harmless.
type Heap struct {
	objects []*Object
}

// NewHeap constructs an empty heap.
func NewHeap() *Heap {
	return &Heap{}
}

// Allocate stores obj and returns its fresh Reference. Fails with
// ErrOutOfHeapSpace if the allocation counter would overflow.
func (h *Heap) Allocate(obj *Object) (values.Reference, error) {
	if len(h.objects) == maxHeapObjects {
		return values.Reference{}, ErrOutOfHeapSpace
	}
	id := uint64(len(h.objects))
	h.objects = append(h.objects, obj)
	return values.NewReference(id), nil
}

// Resolve returns the live object named by ref. Every Reference produced
// by Allocate always resolves to exactly one live object. A Reference
// from a different heap is a programming error; it panics only when its
// index is out of range for this heap.
func (h *Heap) Resolve(ref values.Reference) *Object {
	return h.objects[ref.ID()]
}

// maxHeapObjects bounds the allocation counter; it is a generous ceiling
// rather than a real memory limit, existing only so Allocate has a
// well-defined failure mode.
const maxHeapObjects = 1 << 32
