package ast

import "github.com/cwbudde/goscript/internal/token"

// Associativity is attached to every operator so the parser can decide,
// after matching a precedence level, how far down the right-hand side
// should bind.
type Associativity int

const (
	LeftToRight Associativity = iota
	RightToLeft
)

// Precedence levels 1..21, mirroring the usual JavaScript operator
// precedence table. Grouping/member/call/computed-member sit at the top
// (20-21); assignment and ternary are the lowest binding, right-associative
// levels.
const (
	PrecNone       = 0
	PrecComma      = 1
	PrecAssign     = 3
	PrecTernary    = 4
	PrecLogicalOr  = 5
	PrecLogicalAnd = 6
	PrecBitOr      = 7
	PrecBitXor     = 8
	PrecBitAnd     = 9
	PrecEquality   = 10
	PrecRelational = 11
	PrecShift      = 12
	PrecAdditive   = 13
	PrecMultiplic  = 14
	PrecExponent   = 15
	PrecUnary      = 16
	PrecUpdate     = 17
	PrecCall       = 20
	PrecMember     = 21
)

// OperatorInfo is the metadata table entry for one binary/assignment
// operator token.
type OperatorInfo struct {
	Precedence int
	Assoc      Associativity
}

var binaryOperators = map[token.Type]OperatorInfo{
	token.OR:         {PrecLogicalOr, LeftToRight},
	token.AND:        {PrecLogicalAnd, LeftToRight},
	token.PIPE:       {PrecBitOr, LeftToRight},
	token.CARET:      {PrecBitXor, LeftToRight},
	token.AMP:        {PrecBitAnd, LeftToRight},
	token.EQ:         {PrecEquality, LeftToRight},
	token.NEQ:        {PrecEquality, LeftToRight},
	token.SEQ:        {PrecEquality, LeftToRight},
	token.SNEQ:       {PrecEquality, LeftToRight},
	token.LT:         {PrecRelational, LeftToRight},
	token.GT:         {PrecRelational, LeftToRight},
	token.LE:         {PrecRelational, LeftToRight},
	token.GE:         {PrecRelational, LeftToRight},
	token.IN:         {PrecRelational, LeftToRight},
	token.INSTANCEOF: {PrecRelational, LeftToRight},
	token.SHL:        {PrecShift, LeftToRight},
	token.SHR:        {PrecShift, LeftToRight},
	token.USHR:       {PrecShift, LeftToRight},
	token.PLUS:       {PrecAdditive, LeftToRight},
	token.MINUS:      {PrecAdditive, LeftToRight},
	token.STAR:       {PrecMultiplic, LeftToRight},
	token.SLASH:      {PrecMultiplic, LeftToRight},
	token.PERCENT:    {PrecMultiplic, LeftToRight},
	token.STAR_STAR:  {PrecExponent, RightToLeft},
}

// BinaryOperatorInfo returns the precedence/associativity metadata for a
// binary operator token, or (zero value, false) if t is not one.
func BinaryOperatorInfo(t token.Type) (OperatorInfo, bool) {
	info, ok := binaryOperators[t]
	return info, ok
}

var assignOperators = map[token.Type]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.STAR_STAR_ASSIGN: true, token.AMP_ASSIGN: true, token.PIPE_ASSIGN: true,
	token.CARET_ASSIGN: true, token.SHL_ASSIGN: true, token.SHR_ASSIGN: true,
	token.USHR_ASSIGN: true,
}

// IsAssignOperator reports whether t is `=` or a compound-assignment
// operator.
func IsAssignOperator(t token.Type) bool { return assignOperators[t] }

// BinaryOpFromAssign strips the trailing '=' semantics of a compound
// assignment operator, returning the underlying binary operator applied
// before the write (e.g. PLUS_ASSIGN -> PLUS). Returns (0, false) for a
// plain ASSIGN, which has no underlying operator.
func BinaryOpFromAssign(t token.Type) (token.Type, bool) {
	switch t {
	case token.PLUS_ASSIGN:
		return token.PLUS, true
	case token.MINUS_ASSIGN:
		return token.MINUS, true
	case token.STAR_ASSIGN:
		return token.STAR, true
	case token.SLASH_ASSIGN:
		return token.SLASH, true
	case token.PERCENT_ASSIGN:
		return token.PERCENT, true
	case token.STAR_STAR_ASSIGN:
		return token.STAR_STAR, true
	case token.AMP_ASSIGN:
		return token.AMP, true
	case token.PIPE_ASSIGN:
		return token.PIPE, true
	case token.CARET_ASSIGN:
		return token.CARET, true
	case token.SHL_ASSIGN:
		return token.SHL, true
	case token.SHR_ASSIGN:
		return token.SHR, true
	case token.USHR_ASSIGN:
		return token.USHR, true
	default:
		return 0, false
	}
}
