package vm

import (
	"github.com/cwbudde/goscript/internal/token"
	"github.com/cwbudde/goscript/internal/values"
)

// VarKind is a binding's declared kind.
type VarKind int

const (
	KindVar VarKind = iota
	KindLet
	KindConstVar
)

// variable is one (kind, name, value) binding. const rejects
// reassignment, enforced by the scope's Assign, not here.
type variable struct {
	kind  VarKind
	name  string
	value values.Value
}

// Scope is a node in the scope tree: child scopes point at their parent
// (parents hold no links to children); the escalation-boundary flag is set only at
// function-frame roots, and `var` declarations climb to the nearest
// such ancestor.
type Scope struct {
	parent   *Scope
	vars     map[string]*variable
	boundary bool
}

// NewRootScope constructs the outermost scope, itself an escalation
// boundary (there is nowhere further for a top-level `var` to climb).
func NewRootScope() *Scope {
	return &Scope{vars: make(map[string]*variable), boundary: true}
}

// Push creates a child scope; boundary is true only for function-body
// roots.
func (s *Scope) Push(boundary bool) *Scope {
	return &Scope{parent: s, vars: make(map[string]*variable), boundary: boundary}
}

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope { return s.parent }

// boundaryAncestor returns the nearest scope (possibly s itself) with
// the escalation-boundary flag set; it always terminates because the
// root scope is always a boundary.
func (s *Scope) boundaryAncestor() *Scope {
	cur := s
	for !cur.boundary {
		cur = cur.parent
	}
	return cur
}

// resolvesInChain reports whether name is visible from s (declared in s
// or any ancestor), used by Declare to detect redeclaration within the
// same declaration region.
func (s *Scope) resolvesInChain(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[name]; ok {
			return true
		}
	}
	return false
}

// Declare adds name to s directly (used for let/const and function
// parameters). Fails with *Error{Kind: KindVariableAlreadyDefined} if
// name already resolves anywhere in s's visible chain.
func (s *Scope) Declare(kind VarKind, name string, value values.Value, pos token.Position) error {
	if s.resolvesInChain(name) {
		return newError(KindVariableAlreadyDefined, pos, name)
	}
	s.vars[name] = &variable{kind: kind, name: name, value: value}
	return nil
}

// DeclareVar implements `var`'s hoist-to-boundary placement: the
// binding lands on the nearest escalation-boundary ancestor of s. A
// `var` redeclaring a name already hoisted to the same boundary is not
// an error (hoisting may visit the same name twice). It fails if the
// boundary scope itself holds a non-var binding of the name, or if any
// ancestor of the boundary holds a binding of it, var included.
func (s *Scope) DeclareVar(name string, pos token.Position) error {
	boundary := s.boundaryAncestor()
	if existing, ok := boundary.vars[name]; ok {
		if existing.kind == KindVar {
			return nil
		}
		return newError(KindVariableAlreadyDefined, pos, name)
	}
	if boundary.resolvesInChain(name) {
		return newError(KindVariableAlreadyDefined, pos, name)
	}
	boundary.vars[name] = &variable{kind: KindVar, name: name, value: values.Undefined}
	return nil
}

// Lookup walks s and its ancestors for name, returning (value, true) on
// the first match or (Undefined, false) if the chain is exhausted.
func (s *Scope) Lookup(name string) (values.Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v.value, true
		}
	}
	return values.Undefined, false
}

// Assign writes value to the nearest declaration of name in s's chain.
// Returns (false, nil) if name is not declared anywhere in the chain (the
// caller falls back to the global object); returns
// *Error{Kind: KindAssignToConstVariable} if the binding is const.
func (s *Scope) Assign(name string, value values.Value, pos token.Position) (bool, error) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			if v.kind == KindConstVar {
				return false, newError(KindAssignToConstVariable, pos, name)
			}
			v.value = value
			return true, nil
		}
	}
	return false, nil
}
