// Package parser implements a Pratt/precedence-climbing parser over a
// peekable token stream.
package parser

import (
	"github.com/cwbudde/goscript/internal/ast"
	"github.com/cwbudde/goscript/internal/lexer"
	"github.com/cwbudde/goscript/internal/token"
)

// Parser turns a lexer's token stream into an AST. It keeps a small
// lookahead buffer (cur + peek) and skips trivia on demand via the
// lexer's NextToken.
type Parser struct {
	l    *lexer.Lexer
	cur  token.Token
	peek token.Token

	errors []*Error
}

// New constructs a Parser over l and primes the lookahead buffer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	p.advance()
	return p
}

// Errors returns every parse error observed, in encounter order.
func (p *Parser) Errors() []*Error { return p.errors }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

// expect advances past cur if it matches t, else records a token error and
// does not advance.
func (p *Parser) expect(t token.Type) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.errors = append(p.errors, newTokenError(p.cur.Pos, t, p.cur))
	return false
}

func (p *Parser) expectIdentifier() (*ast.Identifier, bool) {
	if !p.curIs(token.IDENT) {
		p.errors = append(p.errors, newIdentError(p.cur.Pos, p.cur))
		return nil, false
	}
	id := &ast.Identifier{Tok: p.cur, Value: p.cur.Literal}
	p.advance()
	return id, true
}

// ParseScript parses an entire program as a single top-level Block.
func (p *Parser) ParseScript() *ast.Script {
	body := p.parseStatementsUntil(token.EOF)
	return &ast.Script{Body: body}
}

// parseStatementsUntil parses statements (applying hoisting) until the
// current token is `until` or end of input, without consuming `until`.
func (p *Parser) parseStatementsUntil(until token.Type) *ast.Block {
	block := &ast.Block{BraceTok: p.cur}
	for !p.curIs(until) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			p.advance()
			continue
		}
		p.hoistIfNeeded(block, stmt)
	}
	return block
}

// hoistIfNeeded implements the hoisting transform: function/var
// declarations are moved to the block's Hoisted list; any initializer a
// var declarator carried is rewritten into a synthesized assignment
// expression statement that stays at the original position.
func (p *Parser) hoistIfNeeded(block *ast.Block, stmt ast.Statement) {
	switch d := stmt.(type) {
	case *ast.FunctionDecl:
		block.Hoisted = append(block.Hoisted, d)
	case *ast.VarDecl:
		hoisted := &ast.VarDecl{Tok: d.Tok}
		for _, decl := range d.Declarators {
			hoisted.Declarators = append(hoisted.Declarators, &ast.Declarator{Name: decl.Name})
			if decl.Init != nil {
				assign := &ast.AssignmentExpr{
					Tok:    decl.Name.Tok,
					Op:     token.ASSIGN,
					Target: decl.Name,
					Value:  decl.Init,
				}
				block.Body = append(block.Body, &ast.ExpressionStmt{Tok: decl.Name.Tok, Expr: assign})
			}
		}
		block.Hoisted = append(block.Hoisted, hoisted)
	default:
		block.Body = append(block.Body, stmt)
	}
}

// parseBlock parses a `{ ... }` block with hoisting.
func (p *Parser) parseBlock() *ast.Block {
	braceTok := p.cur
	if !p.expect(token.LBRACE) {
		return &ast.Block{BraceTok: braceTok}
	}
	block := p.parseStatementsUntil(token.RBRACE)
	block.BraceTok = braceTok
	p.expect(token.RBRACE)
	return block
}
