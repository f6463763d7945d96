package ast

import (
	"strings"

	"github.com/cwbudde/goscript/internal/token"
)

// DeclKind distinguishes const/let/var for a LexicalDecl/VarDecl binding.
type DeclKind int

const (
	KindVar DeclKind = iota
	KindLet
	KindConst
)

func (k DeclKind) String() string {
	switch k {
	case KindVar:
		return "var"
	case KindLet:
		return "let"
	case KindConst:
		return "const"
	default:
		return "?"
	}
}

// Declarator is one `name` or `name = init` entry in a var/let/const list.
type Declarator struct {
	Name *Identifier
	Init Expression // nil if omitted
}

func (d *Declarator) String() string {
	if d.Init == nil {
		return d.Name.String()
	}
	return d.Name.String() + " = " + d.Init.String()
}

// VarDecl is a `var` declaration: hoisted to the nearest function or
// script boundary, not the innermost block.
type VarDecl struct {
	Tok         Token
	Declarators []*Declarator
}

func (d *VarDecl) statementNode()       {}
func (d *VarDecl) declarationNode()     {}
func (d *VarDecl) IsHoisted() bool      { return true }
func (d *VarDecl) TokenLiteral() string { return d.Tok.Literal }
func (d *VarDecl) Pos() token.Position  { return d.Tok.Pos }
func (d *VarDecl) String() string {
	parts := make([]string, len(d.Declarators))
	for i, decl := range d.Declarators {
		parts[i] = decl.String()
	}
	return "var " + strings.Join(parts, ", ") + ";"
}

// LexicalDecl is a `let` or `const` declaration: bound in the innermost
// block scope, not hoisted.
type LexicalDecl struct {
	Tok         Token
	Kind        DeclKind // KindLet or KindConst
	Declarators []*Declarator
}

func (d *LexicalDecl) statementNode()       {}
func (d *LexicalDecl) declarationNode()     {}
func (d *LexicalDecl) IsHoisted() bool      { return false }
func (d *LexicalDecl) TokenLiteral() string { return d.Tok.Literal }
func (d *LexicalDecl) Pos() token.Position  { return d.Tok.Pos }
func (d *LexicalDecl) String() string {
	parts := make([]string, len(d.Declarators))
	for i, decl := range d.Declarators {
		parts[i] = decl.String()
	}
	return d.Kind.String() + " " + strings.Join(parts, ", ") + ";"
}

// FunctionDecl declares a named function in the innermost scope; it is
// hoisted (visible at the top of its containing block).
type FunctionDecl struct {
	Tok    Token
	Name   *Identifier
	Params []*Identifier
	Body   *Block
}

func (d *FunctionDecl) statementNode()       {}
func (d *FunctionDecl) declarationNode()     {}
func (d *FunctionDecl) IsHoisted() bool      { return true }
func (d *FunctionDecl) TokenLiteral() string { return d.Tok.Literal }
func (d *FunctionDecl) Pos() token.Position  { return d.Tok.Pos }
func (d *FunctionDecl) String() string {
	names := make([]string, len(d.Params))
	for i, p := range d.Params {
		names[i] = p.String()
	}
	return "function " + d.Name.String() + "(" + strings.Join(names, ", ") + ") " + d.Body.String()
}
