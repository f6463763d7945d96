package ast

import (
	"strconv"
	"strings"

	"github.com/cwbudde/goscript/internal/token"
)

// Identifier is an identifier-reference expression.
type Identifier struct {
	Tok   Token
	Value string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Tok.Literal }
func (e *Identifier) Pos() token.Position  { return e.Tok.Pos }
func (e *Identifier) String() string       { return e.Value }

// ThisExpr is the `this` expression.
type ThisExpr struct{ Tok Token }

func (e *ThisExpr) expressionNode()      {}
func (e *ThisExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *ThisExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *ThisExpr) String() string       { return "this" }

// LiteralKind distinguishes literal expression payload shapes.
type LiteralKind int

const (
	LitBoolean LiteralKind = iota
	LitNumberInt
	LitNumberFloat
	LitString
	LitNull
	LitUndefined
)

// Literal is a boolean/numeric/string/null/undefined literal. NumberKind
// records the radix the lexer observed; String() does not consult it and
// always prints integers in decimal.
type Literal struct {
	Tok        Token
	Kind       LiteralKind
	Bool       bool
	Int        int64
	Float      float64
	Str        string
	NumberKind token.NumberKind
}

func (e *Literal) expressionNode()      {}
func (e *Literal) TokenLiteral() string { return e.Tok.Literal }
func (e *Literal) Pos() token.Position  { return e.Tok.Pos }
func (e *Literal) String() string {
	switch e.Kind {
	case LitBoolean:
		return strconv.FormatBool(e.Bool)
	case LitNumberInt:
		return strconv.FormatInt(e.Int, 10)
	case LitNumberFloat:
		return strconv.FormatFloat(e.Float, 'g', -1, 64)
	case LitString:
		return strconv.Quote(e.Str)
	case LitNull:
		return "null"
	case LitUndefined:
		return "undefined"
	default:
		return "<literal>"
	}
}

// ArrayLiteral is `[expr, expr, ...]`. A nil entry models an elided
// element (`[1, , 3]`), which evaluates to `undefined`.
type ArrayLiteral struct {
	Tok      Token
	Elements []Expression
}

func (e *ArrayLiteral) expressionNode()      {}
func (e *ArrayLiteral) TokenLiteral() string { return e.Tok.Literal }
func (e *ArrayLiteral) Pos() token.Position  { return e.Tok.Pos }
func (e *ArrayLiteral) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		if el != nil {
			parts[i] = el.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectProperty is one `key: value` entry of an ObjectLiteral.
type ObjectProperty struct {
	Key   *Identifier
	Value Expression
}

// ObjectLiteral is `{ key: expr, ... }` with identifier keys.
type ObjectLiteral struct {
	Tok        Token
	Properties []*ObjectProperty
}

func (e *ObjectLiteral) expressionNode()      {}
func (e *ObjectLiteral) TokenLiteral() string { return e.Tok.Literal }
func (e *ObjectLiteral) Pos() token.Position  { return e.Tok.Pos }
func (e *ObjectLiteral) String() string {
	parts := make([]string, len(e.Properties))
	for i, p := range e.Properties {
		parts[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FunctionExpr is a function expression, named or anonymous. A named
// function expression's own name is visible only inside its own body,
// bound in an extra enclosing scope around the body.
type FunctionExpr struct {
	Tok    Token
	Name   *Identifier // nil if anonymous
	Params []*Identifier
	Body   *Block
}

func (e *FunctionExpr) expressionNode()      {}
func (e *FunctionExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *FunctionExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *FunctionExpr) String() string {
	names := make([]string, len(e.Params))
	for i, p := range e.Params {
		names[i] = p.String()
	}
	name := ""
	if e.Name != nil {
		name = e.Name.Value
	}
	return "function " + name + "(" + strings.Join(names, ", ") + ") " + e.Body.String()
}

// AssignTarget is the closed set of valid assignment/update targets:
// Identifier or MemberExpr.
type AssignTarget = Expression

// AssignmentExpr is `target op= value`, right-associative at precedence
// 3. Op is ASSIGN or one of the compound-assignment punctuators.
type AssignmentExpr struct {
	Tok    Token
	Op     token.Type
	Target AssignTarget
	Value  Expression
}

func (e *AssignmentExpr) expressionNode()      {}
func (e *AssignmentExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *AssignmentExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *AssignmentExpr) String() string {
	return e.Target.String() + " " + e.Op.String() + " " + e.Value.String()
}

// BinaryExpr covers arithmetic, bitwise, shift, logical and `+`
// (concatenation-or-addition) operators.
type BinaryExpr struct {
	Tok   Token
	Op    token.Type
	Left  Expression
	Right Expression
}

func (e *BinaryExpr) expressionNode()      {}
func (e *BinaryExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *BinaryExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// RelationalExpr covers equality/strict-equality/ordering/`in`/
// `instanceof`, kept distinct from BinaryExpr since its operands compare
// rather than combine.
type RelationalExpr struct {
	Tok   Token
	Op    token.Type
	Left  Expression
	Right Expression
}

func (e *RelationalExpr) expressionNode()      {}
func (e *RelationalExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *RelationalExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *RelationalExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// UnaryExpr is a prefix unary operator: +, -, ~, !, typeof, void, delete.
type UnaryExpr struct {
	Tok      Token
	Op       token.Type
	Operand  Expression
}

func (e *UnaryExpr) expressionNode()      {}
func (e *UnaryExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *UnaryExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *UnaryExpr) String() string       { return e.Op.String() + e.Operand.String() }

// UpdateExpr is `++`/`--` in prefix or postfix position on a variable or
// member-access target.
type UpdateExpr struct {
	Tok     Token
	Op      token.Type // INC or DEC
	Target  AssignTarget
	Prefix  bool
}

func (e *UpdateExpr) expressionNode()      {}
func (e *UpdateExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *UpdateExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *UpdateExpr) String() string {
	if e.Prefix {
		return e.Op.String() + e.Target.String()
	}
	return e.Target.String() + e.Op.String()
}

// NewExpr is `new Callee(args...)`.
type NewExpr struct {
	Tok    Token
	Callee Expression
	Args   []Expression
}

func (e *NewExpr) expressionNode()      {}
func (e *NewExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *NewExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *NewExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return "new " + e.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// MemberExpr is `.field` or `[computed]` access. When Computed is false,
// Property is the static field Identifier wrapped as an Expression; when
// true, Property is the evaluated index/key expression.
type MemberExpr struct {
	Tok      Token
	Object   Expression
	Property Expression
	Computed bool
}

func (e *MemberExpr) expressionNode()      {}
func (e *MemberExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *MemberExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *MemberExpr) String() string {
	if e.Computed {
		return e.Object.String() + "[" + e.Property.String() + "]"
	}
	return e.Object.String() + "." + e.Property.String()
}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Tok    Token
	Callee Expression
	Args   []Expression
}

func (e *CallExpr) expressionNode()      {}
func (e *CallExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *CallExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *CallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// GroupingExpr is a parenthesized expression, kept as its own node so the
// printer can re-render explicit grouping.
type GroupingExpr struct {
	Tok   Token
	Inner Expression
}

func (e *GroupingExpr) expressionNode()      {}
func (e *GroupingExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *GroupingExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *GroupingExpr) String() string       { return "(" + e.Inner.String() + ")" }

// TernaryExpr is `cond ? then : else`, right-associative at precedence 4.
type TernaryExpr struct {
	Tok       Token
	Cond      Expression
	Then      Expression
	Else      Expression
}

func (e *TernaryExpr) expressionNode()      {}
func (e *TernaryExpr) TokenLiteral() string { return e.Tok.Literal }
func (e *TernaryExpr) Pos() token.Position  { return e.Tok.Pos }
func (e *TernaryExpr) String() string {
	return e.Cond.String() + " ? " + e.Then.String() + " : " + e.Else.String()
}
