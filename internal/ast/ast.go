// Package ast defines the tagged-variant tree produced by the parser:
// expressions, statements, and declarations, each carrying its source
// Position and literal token text.
package ast

import (
	"strings"

	"github.com/cwbudde/goscript/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	Pos() token.Position
	String() string
}

// Expression is any node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself producing a
// value (though its evaluation may update the execution state).
type Statement interface {
	Node
	statementNode()
}

// Declaration is the subset of statements that introduce a binding.
// IsHoisted is true for function and var declarations.
type Declaration interface {
	Statement
	declarationNode()
	IsHoisted() bool
}

// Script is the parser's top-level output: a single Block representing the
// whole program.
type Script struct {
	Body *Block
}

func (s *Script) TokenLiteral() string {
	if s.Body != nil {
		return s.Body.TokenLiteral()
	}
	return ""
}
func (s *Script) Pos() token.Position {
	if s.Body != nil {
		return s.Body.Pos()
	}
	return token.Position{}
}
func (s *Script) String() string {
	if s.Body == nil {
		return ""
	}
	return s.Body.String()
}

// Block owns its hoisted declarations (function/var, in parse order) and
// its body statements (source order, hoisted declarations already removed
// by the parser). Hoisted declarations evaluate before any body statement.
type Block struct {
	BraceTok Token
	Hoisted  []Declaration
	Body     []Statement
}

func (b *Block) statementNode()        {}
func (b *Block) TokenLiteral() string  { return b.BraceTok.Literal }
func (b *Block) Pos() token.Position   { return b.BraceTok.Pos }
func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for _, d := range b.Hoisted {
		sb.WriteString(d.String())
	}
	for _, s := range b.Body {
		sb.WriteString(s.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Token is a small alias so AST files don't need to import the token
// package under a different name than the rest of the codebase uses.
type Token = token.Token
