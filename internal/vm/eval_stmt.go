package vm

import (
	"github.com/cwbudde/goscript/internal/ast"
	"github.com/cwbudde/goscript/internal/values"
)

// EvalScript evaluates a parsed program's top-level block directly in
// the root scope already installed by New.
func (it *Interpreter) EvalScript(script *ast.Script) (values.Value, error) {
	return it.evalBlockBody(script.Body)
}

// evalBlockBody runs a block's hoisted declarations, then its body
// statements, in the call stack's current scope. A block never pushes
// its own scope; callers that need a fresh scope for a
// branch/loop-iteration/function-body push one before calling this.
func (it *Interpreter) evalBlockBody(block *ast.Block) (values.Value, error) {
	scope := it.Stack.Scope()
	if err := it.hoist(block, scope); err != nil {
		return values.Undefined, err
	}

	last := values.Undefined
	for _, stmt := range block.Body {
		v, err := it.evalStatement(stmt)
		if err != nil {
			return values.Undefined, err
		}
		last = v
		if it.state != Advance {
			break
		}
	}
	return last, nil
}

// hoist implements the first half of two-phase block evaluation:
// function declarations bind into the innermost (current) scope; var
// declarations bind (as undefined) into the nearest escalation-boundary
// ancestor.
func (it *Interpreter) hoist(block *ast.Block, scope *Scope) error {
	for _, decl := range block.Hoisted {
		switch d := decl.(type) {
		case *ast.FunctionDecl:
			fnRef, err := it.makeUserFunction(d.Name.Value, d.Params, d.Body, scope)
			if err != nil {
				return err
			}
			if err := scope.Declare(KindLet, d.Name.Value, values.Obj(fnRef), d.Pos()); err != nil {
				return err
			}
		case *ast.VarDecl:
			for _, decl := range d.Declarators {
				if err := scope.DeclareVar(decl.Name.Value, decl.Pos()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// evalStatement dispatches one statement node.
func (it *Interpreter) evalStatement(stmt ast.Statement) (values.Value, error) {
	switch s := stmt.(type) {
	case *ast.Block:
		it.Stack.PushScope(false)
		defer it.Stack.PopScope()
		return it.evalBlockBody(s)
	case *ast.ExpressionStmt:
		return it.evalExpression(s.Expr)
	case *ast.EmptyStmt:
		return values.Undefined, nil
	case *ast.VarDecl:
		return values.Undefined, it.evalVarDecl(s)
	case *ast.LexicalDecl:
		return values.Undefined, it.evalLexicalDecl(s)
	case *ast.FunctionDecl:
		// Already bound during hoisting; nothing left to do at body
		// position (the synthesized-assignment rewrite does not apply to
		// functions, only to var initialisers).
		return values.Undefined, nil
	case *ast.IfStmt:
		return it.evalIf(s)
	case *ast.SwitchStmt:
		return it.evalSwitch(s)
	case *ast.TryStmt:
		return it.evalTry(s)
	case *ast.DoWhileStmt:
		return it.evalDoWhile(s)
	case *ast.WhileStmt:
		return it.evalWhile(s)
	case *ast.ForStmt:
		return it.evalFor(s)
	case *ast.BreakStmt:
		it.SetState(Break, values.Undefined)
		return values.Undefined, nil
	case *ast.ContinueStmt:
		it.SetState(Continue, values.Undefined)
		return values.Undefined, nil
	case *ast.ReturnStmt:
		v := values.Undefined
		if s.Value != nil {
			var err error
			v, err = it.evalExpression(s.Value)
			if err != nil {
				return values.Undefined, err
			}
		}
		it.SetState(Return, v)
		return values.Undefined, nil
	case *ast.ThrowStmt:
		v, err := it.evalExpression(s.Value)
		if err != nil {
			return values.Undefined, err
		}
		it.SetState(Throw, v)
		return values.Undefined, nil
	default:
		return values.Undefined, newError(KindAssertion, stmt.Pos(), "unknown statement node")
	}
}

// evalVarDecl evaluates `var` declarators in order; initialisers that
// survived parsing (for-loop `var` initialisers, which are not
// hoist-rewritten the way block-level var is) write directly.
func (it *Interpreter) evalVarDecl(d *ast.VarDecl) error {
	scope := it.Stack.Scope()
	for _, decl := range d.Declarators {
		if err := scope.DeclareVar(decl.Name.Value, decl.Pos()); err != nil {
			return err
		}
		if decl.Init != nil {
			v, err := it.evalExpression(decl.Init)
			if err != nil {
				return err
			}
			boundary := scope.boundaryAncestor()
			if _, err := boundary.Assign(decl.Name.Value, v, decl.Pos()); err != nil {
				return err
			}
		}
	}
	return nil
}

// evalLexicalDecl binds each declarator into the innermost scope.
func (it *Interpreter) evalLexicalDecl(d *ast.LexicalDecl) error {
	scope := it.Stack.Scope()
	kind := KindLet
	if d.Kind == ast.KindConst {
		kind = KindConstVar
	}
	for _, decl := range d.Declarators {
		v := values.Undefined
		if decl.Init != nil {
			var err error
			v, err = it.evalExpression(decl.Init)
			if err != nil {
				return err
			}
		}
		if err := scope.Declare(kind, decl.Name.Value, v, decl.Pos()); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) evalIf(s *ast.IfStmt) (values.Value, error) {
	cond, err := it.evalExpression(s.Cond)
	if err != nil {
		return values.Undefined, err
	}
	it.Stack.PushScope(false)
	defer it.Stack.PopScope()
	if it.ToBoolean(cond) {
		return it.evalStatement(s.Then)
	}
	if s.Else != nil {
		return it.evalStatement(s.Else)
	}
	return values.Undefined, nil
}

// evalSwitch skips cases until one is strictly-equal to the
// discriminant, then falls through evaluating case bodies until `break`
// or the end; the default case (if present) participates in the same
// fallthrough sequence at its source position.
func (it *Interpreter) evalSwitch(s *ast.SwitchStmt) (values.Value, error) {
	disc, err := it.evalExpression(s.Discriminant)
	if err != nil {
		return values.Undefined, err
	}

	matchIdx := -1
	for i, c := range s.Cases {
		if c.Test == nil {
			continue
		}
		testVal, err := it.evalExpression(c.Test)
		if err != nil {
			return values.Undefined, err
		}
		if StrictEqual(it, disc, testVal) {
			matchIdx = i
			break
		}
	}
	if matchIdx == -1 {
		for i, c := range s.Cases {
			if c.Test == nil {
				matchIdx = i
				break
			}
		}
	}
	if matchIdx == -1 {
		return values.Undefined, nil
	}

	last := values.Undefined
	for i := matchIdx; i < len(s.Cases); i++ {
		for _, stmt := range s.Cases[i].Body {
			v, err := it.evalStatement(stmt)
			if err != nil {
				return values.Undefined, err
			}
			last = v
			if it.state != Advance {
				if it.state == Break {
					it.ResetState()
				}
				return last, nil
			}
		}
	}
	return last, nil
}

func (it *Interpreter) evalTry(s *ast.TryStmt) (values.Value, error) {
	it.Stack.PushScope(false)
	_, err := it.evalBlockBody(s.Block)
	it.Stack.PopScope()
	if err != nil {
		return values.Undefined, err
	}

	if it.state == Throw && s.Catch != nil {
		exc := it.stateValue
		it.ResetState()
		it.Stack.PushScope(false)
		if s.Catch.Param != nil {
			if err := it.Stack.Scope().Declare(KindLet, s.Catch.Param.Value, exc, s.Catch.Param.Pos()); err != nil {
				it.Stack.PopScope()
				return values.Undefined, err
			}
		}
		_, err := it.evalBlockBody(s.Catch.Body)
		it.Stack.PopScope()
		if err != nil {
			return values.Undefined, err
		}
	}

	if s.Finally != nil {
		var pending State
		pendingVal := values.Undefined
		if it.state != Advance && it.state != Throw {
			pending, pendingVal = it.ResetState()
		}
		it.hideException()
		it.Stack.PushScope(false)
		_, err := it.evalBlockBody(s.Finally)
		it.Stack.PopScope()
		if err != nil {
			return values.Undefined, err
		}
		it.restoreException()
		if pending != Advance && it.state == Advance {
			it.SetState(pending, pendingVal)
		}
	}
	return values.Undefined, nil
}

// handleLoopBodyState applies the shared after-body rule:
// Advance/Continue both resume the loop (Continue resets to Advance
// first); Break resets to Advance and stops the loop cleanly; any other
// state (Return/Throw/Exit) stops the loop, propagating unchanged.
func (it *Interpreter) handleLoopBodyState() (stop bool) {
	switch it.state {
	case Advance:
		return false
	case Continue:
		it.ResetState()
		return false
	case Break:
		it.ResetState()
		return true
	default:
		return true
	}
}

func (it *Interpreter) evalDoWhile(s *ast.DoWhileStmt) (values.Value, error) {
	for {
		it.Stack.PushScope(false)
		_, err := it.evalStatement(s.Body)
		it.Stack.PopScope()
		if err != nil {
			return values.Undefined, err
		}
		if it.handleLoopBodyState() {
			break
		}
		cond, err := it.evalExpression(s.Cond)
		if err != nil {
			return values.Undefined, err
		}
		if !it.ToBoolean(cond) {
			break
		}
	}
	return values.Undefined, nil
}

func (it *Interpreter) evalWhile(s *ast.WhileStmt) (values.Value, error) {
	for {
		cond, err := it.evalExpression(s.Cond)
		if err != nil {
			return values.Undefined, err
		}
		if !it.ToBoolean(cond) {
			break
		}
		it.Stack.PushScope(false)
		_, err = it.evalStatement(s.Body)
		it.Stack.PopScope()
		if err != nil {
			return values.Undefined, err
		}
		if it.handleLoopBodyState() {
			break
		}
	}
	return values.Undefined, nil
}

// evalFor hoists an outer scope for the initialiser, shared by
// init/cond/update across iterations and distinct from the fresh
// per-iteration body scope.
func (it *Interpreter) evalFor(s *ast.ForStmt) (values.Value, error) {
	it.Stack.PushScope(false)
	defer it.Stack.PopScope()

	if s.Init != nil {
		if _, err := it.evalStatement(s.Init); err != nil {
			return values.Undefined, err
		}
	}

	for {
		if s.Cond != nil {
			cond, err := it.evalExpression(s.Cond)
			if err != nil {
				return values.Undefined, err
			}
			if !it.ToBoolean(cond) {
				break
			}
		}

		it.Stack.PushScope(false)
		_, err := it.evalStatement(s.Body)
		it.Stack.PopScope()
		if err != nil {
			return values.Undefined, err
		}
		if it.handleLoopBodyState() {
			break
		}

		if s.Update != nil {
			if _, err := it.evalExpression(s.Update); err != nil {
				return values.Undefined, err
			}
		}
	}
	return values.Undefined, nil
}
