package parser

import (
	"fmt"

	"github.com/cwbudde/goscript/internal/lexer"
	"github.com/cwbudde/goscript/internal/token"
)

// ExpectedKind is the small algebraic description of what the parser
// wanted to see: a single keyword/punctuator, an identifier placeholder,
// any-expression/any-statement, or a disjunction of those.
type ExpectedKind int

const (
	ExpectToken ExpectedKind = iota
	ExpectIdentifier
	ExpectAnyExpression
	ExpectAnyStatement
	ExpectOneOf
)

// Expected describes what the parser wanted at the point of failure.
type Expected struct {
	Kind    ExpectedKind
	Token   token.Type   // meaningful when Kind == ExpectToken
	OneOf   []token.Type // meaningful when Kind == ExpectOneOf
}

func (e Expected) String() string {
	switch e.Kind {
	case ExpectToken:
		return e.Token.String()
	case ExpectIdentifier:
		return "identifier"
	case ExpectAnyExpression:
		return "expression"
	case ExpectAnyStatement:
		return "statement"
	case ExpectOneOf:
		s := ""
		for i, t := range e.OneOf {
			if i > 0 {
				s += " or "
			}
			s += t.String()
		}
		return s
	default:
		return "?"
	}
}

// Error is either a wrapped lexical error or an "unexpected token" parse
// error.
type Error struct {
	Lexical  *lexer.Error // non-nil for a boxed lexical error
	Expected Expected
	Actual   *token.Token // nil means end-of-input
	Pos      token.Position
}

func (e *Error) Error() string {
	if e.Lexical != nil {
		return e.Lexical.Error()
	}
	actual := "end of input"
	if e.Actual != nil {
		actual = e.Actual.String()
	}
	return fmt.Sprintf("expected %s, got %s at %s", e.Expected, actual, e.Pos)
}

func newTokenError(pos token.Position, expected token.Type, actual token.Token) *Error {
	a := actual
	return &Error{Expected: Expected{Kind: ExpectToken, Token: expected}, Actual: &a, Pos: pos}
}

func newIdentError(pos token.Position, actual token.Token) *Error {
	a := actual
	return &Error{Expected: Expected{Kind: ExpectIdentifier}, Actual: &a, Pos: pos}
}

func newExprError(pos token.Position, actual token.Token) *Error {
	a := actual
	return &Error{Expected: Expected{Kind: ExpectAnyExpression}, Actual: &a, Pos: pos}
}

func newStmtError(pos token.Position, actual token.Token) *Error {
	a := actual
	return &Error{Expected: Expected{Kind: ExpectAnyStatement}, Actual: &a, Pos: pos}
}
