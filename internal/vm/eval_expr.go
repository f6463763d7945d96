package vm

import (
	"strconv"

	"github.com/cwbudde/goscript/internal/ast"
	"github.com/cwbudde/goscript/internal/token"
	"github.com/cwbudde/goscript/internal/values"
)

// abnormal reports whether the execution state has left Advance,
// signalling every composite expression evaluator to stop descending and
// let the non-local control state propagate up to the nearest statement
// boundary.
func (it *Interpreter) abnormal() bool { return it.state != Advance }

// evalExpression dispatches one expression node.
func (it *Interpreter) evalExpression(expr ast.Expression) (values.Value, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return it.evalIdentifier(e)
	case *ast.ThisExpr:
		return it.Stack.Receiver(), nil
	case *ast.Literal:
		return it.evalLiteral(e)
	case *ast.ArrayLiteral:
		return it.evalArrayLiteral(e)
	case *ast.ObjectLiteral:
		return it.evalObjectLiteral(e)
	case *ast.FunctionExpr:
		return it.evalFunctionExpr(e)
	case *ast.AssignmentExpr:
		return it.evalAssignment(e)
	case *ast.BinaryExpr:
		return it.evalBinary(e)
	case *ast.RelationalExpr:
		return it.evalRelational(e)
	case *ast.UnaryExpr:
		return it.evalUnary(e)
	case *ast.UpdateExpr:
		return it.evalUpdate(e)
	case *ast.NewExpr:
		return it.evalNew(e)
	case *ast.MemberExpr:
		return it.evalMember(e)
	case *ast.CallExpr:
		return it.evalCall(e)
	case *ast.GroupingExpr:
		return it.evalExpression(e.Inner)
	case *ast.TernaryExpr:
		return it.evalTernary(e)
	default:
		return values.Undefined, newError(KindAssertion, expr.Pos(), "unknown expression node")
	}
}

func (it *Interpreter) evalIdentifier(e *ast.Identifier) (values.Value, error) {
	if v, ok := it.Stack.Scope().Lookup(e.Value); ok {
		return v, nil
	}
	return it.Get(it.Global, e.Value, values.Obj(it.globalRef), e.Pos())
}

func (it *Interpreter) makeString(s string) (values.Value, error) {
	ref, err := it.AllocObject(NewStringObject(&it.StringProto, s))
	if err != nil {
		return values.Undefined, err
	}
	return values.Obj(ref), nil
}

func (it *Interpreter) evalLiteral(e *ast.Literal) (values.Value, error) {
	switch e.Kind {
	case ast.LitBoolean:
		return values.Bool(e.Bool), nil
	case ast.LitNumberInt:
		return values.Num(values.Int(e.Int)), nil
	case ast.LitNumberFloat:
		return values.Num(values.Float(e.Float)), nil
	case ast.LitString:
		return it.makeString(e.Str)
	case ast.LitNull:
		return values.Null, nil
	case ast.LitUndefined:
		return values.Undefined, nil
	default:
		return values.Undefined, newError(KindAssertion, e.Pos(), "unknown literal kind")
	}
}

func (it *Interpreter) evalArrayLiteral(e *ast.ArrayLiteral) (values.Value, error) {
	elements := make([]values.Value, len(e.Elements))
	for i, el := range e.Elements {
		if el == nil {
			elements[i] = values.Undefined
			continue
		}
		v, err := it.evalExpression(el)
		if err != nil {
			return values.Undefined, err
		}
		if it.abnormal() {
			return values.Undefined, nil
		}
		elements[i] = v
	}
	ref, err := it.AllocObject(NewArrayObject(&it.ArrayProto, elements))
	if err != nil {
		return values.Undefined, err
	}
	return values.Obj(ref), nil
}

func (it *Interpreter) evalObjectLiteral(e *ast.ObjectLiteral) (values.Value, error) {
	obj := NewObject(&it.ObjectProto)
	for _, p := range e.Properties {
		v, err := it.evalExpression(p.Value)
		if err != nil {
			return values.Undefined, err
		}
		if it.abnormal() {
			return values.Undefined, nil
		}
		obj.setOwn(p.Key.Value, defaultDataProperty(v))
	}
	ref, err := it.AllocObject(obj)
	if err != nil {
		return values.Undefined, err
	}
	return values.Obj(ref), nil
}

// evalFunctionExpr allocates a user function closing over the current
// scope. A named function expression wraps its closure in an extra
// scope that binds its own name to itself, so recursion works without
// polluting the declaration site.
func (it *Interpreter) evalFunctionExpr(e *ast.FunctionExpr) (values.Value, error) {
	name := ""
	if e.Name != nil {
		name = e.Name.Value
	}
	closure := it.Stack.Scope()
	fnRef, err := it.makeUserFunction(name, e.Params, e.Body, closure)
	if err != nil {
		return values.Undefined, err
	}
	if e.Name != nil {
		wrapper := closure.Push(false)
		if err := wrapper.Declare(KindConstVar, e.Name.Value, values.Obj(fnRef), e.Pos()); err != nil {
			return values.Undefined, err
		}
		it.Heap.Resolve(fnRef).Call.Closure = wrapper
	}
	return values.Obj(fnRef), nil
}

// computeMemberKey evaluates a MemberExpr's property side to a property
// key string: dot access is the static identifier's text; computed
// access evaluates the property expression, using its integer value as a
// decimal index when it is a number and otherwise falling back to
// to-string conversion.
func (it *Interpreter) computeMemberKey(m *ast.MemberExpr) (string, error) {
	if !m.Computed {
		return m.Property.(*ast.Identifier).Value, nil
	}
	v, err := it.evalExpression(m.Property)
	if err != nil {
		return "", err
	}
	if it.abnormal() {
		return "", nil
	}
	if v.IsNumber() {
		n := v.AsNumber()
		if !n.IsFloat {
			return strconv.FormatInt(n.I, 10), nil
		}
		return strconv.FormatInt(int64(n.F), 10), nil
	}
	return it.ToString(v), nil
}

func (it *Interpreter) evalMember(e *ast.MemberExpr) (values.Value, error) {
	objVal, err := it.evalExpression(e.Object)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}
	key, err := it.computeMemberKey(e)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}
	if !objVal.IsObject() {
		return values.Undefined, nil
	}
	obj := it.Heap.Resolve(objVal.AsReference())
	return it.Get(obj, key, objVal, e.Pos())
}

// target is the resolved write-location for an assignment/update
// expression: either an identifier binding or a member-access slot.
type target struct {
	isMember bool
	name     string      // identifier targets
	obj      values.Value // member targets
	key      string       // member targets
}

func (it *Interpreter) resolveTarget(e ast.Expression) (target, error) {
	switch t := e.(type) {
	case *ast.Identifier:
		return target{name: t.Value}, nil
	case *ast.MemberExpr:
		objVal, err := it.evalExpression(t.Object)
		if err != nil {
			return target{}, err
		}
		if it.abnormal() {
			return target{}, nil
		}
		key, err := it.computeMemberKey(t)
		if err != nil {
			return target{}, err
		}
		return target{isMember: true, obj: objVal, key: key}, nil
	default:
		return target{}, newError(KindAssertion, e.Pos(), "invalid assignment target")
	}
}

func (it *Interpreter) readTarget(t target, pos token.Position) (values.Value, error) {
	if t.isMember {
		if !t.obj.IsObject() {
			return values.Undefined, nil
		}
		obj := it.Heap.Resolve(t.obj.AsReference())
		return it.Get(obj, t.key, t.obj, pos)
	}
	if v, ok := it.Stack.Scope().Lookup(t.name); ok {
		return v, nil
	}
	return it.Get(it.Global, t.name, values.Obj(it.globalRef), pos)
}

func (it *Interpreter) writeTarget(t target, v values.Value, pos token.Position) error {
	if t.isMember {
		if !t.obj.IsObject() {
			return nil
		}
		obj := it.Heap.Resolve(t.obj.AsReference())
		_, err := it.Set(obj, t.key, t.obj, v, pos)
		return err
	}
	ok, err := it.Stack.Scope().Assign(t.name, v, pos)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	_, err = it.Set(it.Global, t.name, values.Obj(it.globalRef), v, pos)
	return err
}

// evalAssignment evaluates the right-hand side first; for compound
// assignment, it then reads the old value, applies the operator, and
// writes the result.
func (it *Interpreter) evalAssignment(e *ast.AssignmentExpr) (values.Value, error) {
	rhs, err := it.evalExpression(e.Value)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}

	t, err := it.resolveTarget(e.Target)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}

	result := rhs
	if binOp, ok := ast.BinaryOpFromAssign(e.Op); ok {
		old, err := it.readTarget(t, e.Pos())
		if err != nil {
			return values.Undefined, err
		}
		result, err = it.applyBinary(binOp, old, rhs, e.Pos())
		if err != nil {
			return values.Undefined, err
		}
	}
	if err := it.writeTarget(t, result, e.Pos()); err != nil {
		return values.Undefined, err
	}
	return result, nil
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr) (values.Value, error) {
	switch e.Op {
	case token.AND:
		left, err := it.evalExpression(e.Left)
		if err != nil || it.abnormal() {
			return values.Undefined, err
		}
		if !it.ToBoolean(left) {
			return left, nil
		}
		return it.evalExpression(e.Right)
	case token.OR:
		left, err := it.evalExpression(e.Left)
		if err != nil || it.abnormal() {
			return values.Undefined, err
		}
		if it.ToBoolean(left) {
			return left, nil
		}
		return it.evalExpression(e.Right)
	default:
		left, err := it.evalExpression(e.Left)
		if err != nil {
			return values.Undefined, err
		}
		if it.abnormal() {
			return values.Undefined, nil
		}
		right, err := it.evalExpression(e.Right)
		if err != nil {
			return values.Undefined, err
		}
		if it.abnormal() {
			return values.Undefined, nil
		}
		return it.applyBinary(e.Op, left, right, e.Pos())
	}
}

// applyBinary implements the number algebra and `+`'s string-or-number
// dispatch.
func (it *Interpreter) applyBinary(op token.Type, l, r values.Value, pos token.Position) (values.Value, error) {
	if op == token.PLUS && (it.IsStringLike(l) || it.IsStringLike(r)) {
		return it.makeString(it.ToString(l) + it.ToString(r))
	}
	a, b := it.ToNumber(l), it.ToNumber(r)
	switch op {
	case token.PLUS:
		return values.Num(values.NumAdd(a, b)), nil
	case token.MINUS:
		return values.Num(values.NumSub(a, b)), nil
	case token.STAR:
		return values.Num(values.NumMul(a, b)), nil
	case token.SLASH:
		return values.Num(values.NumDiv(a, b)), nil
	case token.PERCENT:
		return values.Num(values.NumRem(a, b)), nil
	case token.STAR_STAR:
		return values.Num(values.NumPow(a, b)), nil
	case token.AMP:
		return values.Num(values.NumAnd(a, b)), nil
	case token.PIPE:
		return values.Num(values.NumOr(a, b)), nil
	case token.CARET:
		return values.Num(values.NumXor(a, b)), nil
	case token.SHL:
		return values.Num(values.NumShl(a, b)), nil
	case token.SHR:
		return values.Num(values.NumShr(a, b)), nil
	case token.USHR:
		return values.Num(values.NumUShr(a, b)), nil
	default:
		return values.Undefined, newError(KindAssertion, pos, "unknown binary operator")
	}
}

func (it *Interpreter) evalRelational(e *ast.RelationalExpr) (values.Value, error) {
	left, err := it.evalExpression(e.Left)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}
	right, err := it.evalExpression(e.Right)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}

	switch e.Op {
	case token.EQ:
		return values.Bool(LooseEqual(it, left, right)), nil
	case token.NEQ:
		return values.Bool(!LooseEqual(it, left, right)), nil
	case token.SEQ:
		return values.Bool(StrictEqual(it, left, right)), nil
	case token.SNEQ:
		return values.Bool(!StrictEqual(it, left, right)), nil
	case token.LT, token.GT, token.LE, token.GE:
		cmp, ok := Compare(it, left, right)
		if !ok {
			return values.Bool(false), nil
		}
		switch e.Op {
		case token.LT:
			return values.Bool(cmp < 0), nil
		case token.GT:
			return values.Bool(cmp > 0), nil
		case token.LE:
			return values.Bool(cmp <= 0), nil
		default:
			return values.Bool(cmp >= 0), nil
		}
	case token.IN:
		if !right.IsObject() {
			return values.Bool(false), nil
		}
		key := it.ToString(left)
		obj := it.Heap.Resolve(right.AsReference())
		return values.Bool(hasProperty(it, obj, key)), nil
	case token.INSTANCEOF:
		return it.evalInstanceof(left, right, e.Pos())
	default:
		return values.Undefined, newError(KindAssertion, e.Pos(), "unknown relational operator")
	}
}

func hasProperty(it *Interpreter, obj *Object, key string) bool {
	for cur := obj; ; {
		if _, ok := cur.Own(key); ok {
			return true
		}
		if cur.Proto == nil {
			return false
		}
		cur = it.Heap.Resolve(*cur.Proto)
	}
}

func (it *Interpreter) evalInstanceof(left, right values.Value, pos token.Position) (values.Value, error) {
	if !right.IsObject() {
		return values.Bool(false), nil
	}
	ctor := it.Heap.Resolve(right.AsReference())
	protoVal, err := it.Get(ctor, "prototype", right, pos)
	if err != nil {
		return values.Undefined, err
	}
	if !protoVal.IsObject() || !left.IsObject() {
		return values.Bool(false), nil
	}
	protoRef := protoVal.AsReference()
	cur := it.Heap.Resolve(left.AsReference())
	for cur.Proto != nil {
		if *cur.Proto == protoRef {
			return values.Bool(true), nil
		}
		cur = it.Heap.Resolve(*cur.Proto)
	}
	return values.Bool(false), nil
}

// evalUnary implements the prefix unary operators: + - ~ ! typeof void
// delete.
func (it *Interpreter) evalUnary(e *ast.UnaryExpr) (values.Value, error) {
	if e.Op == token.DELETE {
		return it.evalDelete(e.Operand, e.Pos())
	}

	operand, err := it.evalExpression(e.Operand)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}

	switch e.Op {
	case token.PLUS:
		return values.Num(it.ToNumber(operand)), nil
	case token.MINUS:
		return values.Num(values.NumNeg(it.ToNumber(operand))), nil
	case token.TILDE:
		return values.Num(values.NumNot(it.ToNumber(operand))), nil
	case token.NOT:
		return values.Bool(!it.ToBoolean(operand)), nil
	case token.TYPEOF:
		return it.makeString(it.typeofName(operand))
	case token.VOID:
		return values.Undefined, nil
	default:
		return values.Undefined, newError(KindAssertion, e.Pos(), "unknown unary operator")
	}
}

func (it *Interpreter) typeofName(v values.Value) string {
	switch v.Kind() {
	case values.KindUndefined:
		return "undefined"
	case values.KindBoolean:
		return "boolean"
	case values.KindNumber:
		return "number"
	case values.KindNull:
		return "object"
	case values.KindObject:
		obj := it.Heap.Resolve(v.AsReference())
		switch obj.DataKind {
		case DataCall:
			return "function"
		case DataString:
			return "string"
		default:
			return "object"
		}
	default:
		return "undefined"
	}
}

func (it *Interpreter) evalDelete(operand ast.Expression, pos token.Position) (values.Value, error) {
	m, ok := operand.(*ast.MemberExpr)
	if !ok {
		_, err := it.evalExpression(operand)
		return values.Bool(true), err
	}
	objVal, err := it.evalExpression(m.Object)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}
	key, err := it.computeMemberKey(m)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}
	if !objVal.IsObject() {
		return values.Bool(true), nil
	}
	obj := it.Heap.Resolve(objVal.AsReference())
	return values.Bool(obj.Delete(key)), nil
}

// evalUpdate implements `++`/`--`, coercing the old value to a number
// before adjusting it: prefix returns the new value, postfix returns the
// old (numeric-coerced) value.
func (it *Interpreter) evalUpdate(e *ast.UpdateExpr) (values.Value, error) {
	t, err := it.resolveTarget(e.Target)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}
	old, err := it.readTarget(t, e.Pos())
	if err != nil {
		return values.Undefined, err
	}
	oldNum := it.ToNumber(old)

	var newNum values.Number
	if e.Op == token.INC {
		newNum = values.NumAdd(oldNum, values.Int(1))
	} else {
		newNum = values.NumSub(oldNum, values.Int(1))
	}
	newVal := values.Num(newNum)
	if err := it.writeTarget(t, newVal, e.Pos()); err != nil {
		return values.Undefined, err
	}
	if e.Prefix {
		return newVal, nil
	}
	return values.Num(oldNum), nil
}

// evalNew implements `new Callee(args...)`: allocate a fresh instance
// whose prototype is Callee.prototype (falling back to the base object
// prototype), invoke Callee with `this` bound to the instance, and
// return the constructor's object result if it produced one, else the
// instance itself.
func (it *Interpreter) evalNew(e *ast.NewExpr) (values.Value, error) {
	calleeVal, err := it.evalExpression(e.Callee)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}
	if !calleeVal.IsObject() {
		return values.Undefined, newError(KindNotCallable, e.Pos(), "")
	}
	ctor := it.Heap.Resolve(calleeVal.AsReference())
	if ctor.DataKind != DataCall {
		return values.Undefined, newError(KindNotCallable, e.Pos(), "")
	}

	args, err := it.evalArgs(e.Args)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}

	protoVal, err := it.Get(ctor, "prototype", calleeVal, e.Pos())
	if err != nil {
		return values.Undefined, err
	}
	protoRef := it.ObjectProto
	if protoVal.IsObject() {
		protoRef = protoVal.AsReference()
	}
	instRef, err := it.AllocObject(NewObject(&protoRef))
	if err != nil {
		return values.Undefined, err
	}

	result, err := it.CallObject(ctor, values.Obj(instRef), args, e.Pos())
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}
	if result.IsObject() {
		return result, nil
	}
	return values.Obj(instRef), nil
}

func (it *Interpreter) evalArgs(exprs []ast.Expression) ([]values.Value, error) {
	args := make([]values.Value, len(exprs))
	for i, a := range exprs {
		v, err := it.evalExpression(a)
		if err != nil {
			return nil, err
		}
		if it.abnormal() {
			return args[:i], nil
		}
		args[i] = v
	}
	return args, nil
}

// evalCall resolves and invokes a call expression's callee, including
// the dedicated function-not-defined error for an unresolved identifier
// callee (as opposed to not-callable for a resolved-but-uncallable
// value).
func (it *Interpreter) evalCall(e *ast.CallExpr) (values.Value, error) {
	var calleeVal, thisVal values.Value
	thisVal = values.Undefined
	unresolvedName := ""

	switch callee := e.Callee.(type) {
	case *ast.MemberExpr:
		objVal, err := it.evalExpression(callee.Object)
		if err != nil {
			return values.Undefined, err
		}
		if it.abnormal() {
			return values.Undefined, nil
		}
		key, err := it.computeMemberKey(callee)
		if err != nil {
			return values.Undefined, err
		}
		if it.abnormal() {
			return values.Undefined, nil
		}
		thisVal = objVal
		if objVal.IsObject() {
			obj := it.Heap.Resolve(objVal.AsReference())
			calleeVal, err = it.Get(obj, key, objVal, e.Pos())
			if err != nil {
				return values.Undefined, err
			}
		}
	case *ast.Identifier:
		if v, ok := it.Stack.Scope().Lookup(callee.Value); ok {
			calleeVal = v
		} else {
			v, err := it.Get(it.Global, callee.Value, values.Obj(it.globalRef), e.Pos())
			if err != nil {
				return values.Undefined, err
			}
			calleeVal = v
			if v.IsUndefined() {
				unresolvedName = callee.Value
			}
		}
	default:
		v, err := it.evalExpression(e.Callee)
		if err != nil {
			return values.Undefined, err
		}
		if it.abnormal() {
			return values.Undefined, nil
		}
		calleeVal = v
	}

	args, err := it.evalArgs(e.Args)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}

	if !calleeVal.IsObject() {
		if unresolvedName != "" {
			return values.Undefined, newError(KindFunctionNotDefined, e.Pos(), unresolvedName)
		}
		return values.Undefined, newError(KindNotCallable, e.Pos(), "")
	}
	obj := it.Heap.Resolve(calleeVal.AsReference())
	if obj.DataKind != DataCall {
		return values.Undefined, newError(KindNotCallable, e.Pos(), "")
	}
	return it.CallObject(obj, thisVal, args, e.Pos())
}

func (it *Interpreter) evalTernary(e *ast.TernaryExpr) (values.Value, error) {
	cond, err := it.evalExpression(e.Cond)
	if err != nil {
		return values.Undefined, err
	}
	if it.abnormal() {
		return values.Undefined, nil
	}
	if it.ToBoolean(cond) {
		return it.evalExpression(e.Then)
	}
	return it.evalExpression(e.Else)
}
