package parser

import (
	"github.com/cwbudde/goscript/internal/ast"
	"github.com/cwbudde/goscript/internal/token"
)

// parseStatement dispatches on one significant token of lookahead.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.LBRACE:
		return p.parseBlock()
	case token.SEMICOLON:
		return p.parseEmptyStatement()
	case token.VAR:
		return p.parseVarDecl()
	case token.LET, token.CONST:
		return p.parseLexicalDecl()
	case token.FUNCTION:
		return p.parseFunctionDecl()
	case token.IF:
		return p.parseIfStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.THROW:
		return p.parseThrowStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseEmptyStatement() ast.Statement {
	tok := p.cur
	p.advance()
	return &ast.EmptyStmt{Tok: tok}
}

// consumeSemicolon consumes an optional trailing `;` (automatic semicolon
// insertion is out of scope; a missing terminator before `}`/EOF is
// simply tolerated rather than flagged).
func (p *Parser) consumeSemicolon() {
	if p.curIs(token.SEMICOLON) {
		p.advance()
	}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur
	expr := p.parseExpression(ast.PrecNone)
	p.consumeSemicolon()
	return &ast.ExpressionStmt{Tok: tok, Expr: expr}
}

func (p *Parser) parseDeclaratorList() []*ast.Declarator {
	var decls []*ast.Declarator
	for {
		name, ok := p.expectIdentifier()
		if !ok {
			break
		}
		d := &ast.Declarator{Name: name}
		if p.curIs(token.ASSIGN) {
			p.advance()
			d.Init = p.parseExpression(ast.PrecAssign)
		}
		decls = append(decls, d)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return decls
}

func (p *Parser) parseVarDecl() ast.Statement {
	tok := p.cur
	p.advance() // 'var'
	decl := &ast.VarDecl{Tok: tok, Declarators: p.parseDeclaratorList()}
	p.consumeSemicolon()
	return decl
}

func (p *Parser) parseLexicalDecl() ast.Statement {
	tok := p.cur
	kind := ast.KindLet
	if tok.Type == token.CONST {
		kind = ast.KindConst
	}
	p.advance() // 'let'/'const'
	decl := &ast.LexicalDecl{Tok: tok, Kind: kind, Declarators: p.parseDeclaratorList()}
	p.consumeSemicolon()
	return decl
}

func (p *Parser) parseParamList() []*ast.Identifier {
	var params []*ast.Identifier
	p.expect(token.LPAREN)
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		if id, ok := p.expectIdentifier(); ok {
			params = append(params, id)
		} else {
			break
		}
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseFunctionDecl() ast.Statement {
	tok := p.cur
	p.advance() // 'function'
	name, _ := p.expectIdentifier()
	params := p.parseParamList()
	body := p.parseBlock()
	return &ast.FunctionDecl{Tok: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.cur
	p.advance() // 'if'
	p.expect(token.LPAREN)
	cond := p.parseExpression(ast.PrecNone)
	p.expect(token.RPAREN)
	then := p.parseStatement()
	stmt := &ast.IfStmt{Tok: tok, Cond: cond, Then: then}
	if p.curIs(token.ELSE) {
		p.advance()
		stmt.Else = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	tok := p.cur
	p.advance() // 'switch'
	p.expect(token.LPAREN)
	discriminant := p.parseExpression(ast.PrecNone)
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)

	stmt := &ast.SwitchStmt{Tok: tok, Discriminant: discriminant}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		c := &ast.SwitchCase{}
		if p.curIs(token.CASE) {
			p.advance()
			c.Test = p.parseExpression(ast.PrecNone)
			p.expect(token.COLON)
		} else if p.curIs(token.DEFAULT) {
			p.advance()
			p.expect(token.COLON)
		} else {
			p.errors = append(p.errors, newStmtError(p.cur.Pos, p.cur))
			p.advance()
			continue
		}
		for !p.curIs(token.CASE) && !p.curIs(token.DEFAULT) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
			c.Body = append(c.Body, p.parseStatement())
		}
		stmt.Cases = append(stmt.Cases, c)
	}
	p.expect(token.RBRACE)
	return stmt
}

func (p *Parser) parseTryStatement() ast.Statement {
	tok := p.cur
	p.advance() // 'try'
	stmt := &ast.TryStmt{Tok: tok, Block: p.parseBlock()}

	if p.curIs(token.CATCH) {
		p.advance()
		clause := &ast.CatchClause{}
		if p.curIs(token.LPAREN) {
			p.advance()
			clause.Param, _ = p.expectIdentifier()
			p.expect(token.RPAREN)
		}
		clause.Body = p.parseBlock()
		stmt.Catch = clause
	}
	if p.curIs(token.FINALLY) {
		p.advance()
		stmt.Finally = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	tok := p.cur
	p.advance() // 'do'
	body := p.parseStatement()
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpression(ast.PrecNone)
	p.expect(token.RPAREN)
	p.consumeSemicolon()
	return &ast.DoWhileStmt{Tok: tok, Body: body, Cond: cond}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.cur
	p.advance() // 'while'
	p.expect(token.LPAREN)
	cond := p.parseExpression(ast.PrecNone)
	p.expect(token.RPAREN)
	body := p.parseStatement()
	return &ast.WhileStmt{Tok: tok, Cond: cond, Body: body}
}

// parseForStatement parses the C-style for loop. The initializer is one
// of an expression, a `var` declaration, or a lexical declaration.
func (p *Parser) parseForStatement() ast.Statement {
	tok := p.cur
	p.advance() // 'for'
	p.expect(token.LPAREN)

	var init ast.Statement
	switch {
	case p.curIs(token.SEMICOLON):
		// no initializer
	case p.curIs(token.VAR):
		init = p.parseVarDeclNoSemi()
	case p.curIs(token.LET) || p.curIs(token.CONST):
		init = p.parseLexicalDeclNoSemi()
	default:
		exprTok := p.cur
		init = &ast.ExpressionStmt{Tok: exprTok, Expr: p.parseExpression(ast.PrecNone)}
	}
	p.expect(token.SEMICOLON)

	var cond ast.Expression
	if !p.curIs(token.SEMICOLON) {
		cond = p.parseExpression(ast.PrecNone)
	}
	p.expect(token.SEMICOLON)

	var update ast.Expression
	if !p.curIs(token.RPAREN) {
		update = p.parseExpression(ast.PrecNone)
	}
	p.expect(token.RPAREN)

	body := p.parseStatement()
	return &ast.ForStmt{Tok: tok, Init: init, Cond: cond, Update: update, Body: body}
}

func (p *Parser) parseVarDeclNoSemi() ast.Statement {
	tok := p.cur
	p.advance()
	return &ast.VarDecl{Tok: tok, Declarators: p.parseDeclaratorList()}
}

func (p *Parser) parseLexicalDeclNoSemi() ast.Statement {
	tok := p.cur
	kind := ast.KindLet
	if tok.Type == token.CONST {
		kind = ast.KindConst
	}
	p.advance()
	return &ast.LexicalDecl{Tok: tok, Kind: kind, Declarators: p.parseDeclaratorList()}
}

func (p *Parser) parseBreakStatement() ast.Statement {
	tok := p.cur
	p.advance()
	p.consumeSemicolon()
	return &ast.BreakStmt{Tok: tok}
}

func (p *Parser) parseContinueStatement() ast.Statement {
	tok := p.cur
	p.advance()
	p.consumeSemicolon()
	return &ast.ContinueStmt{Tok: tok}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.cur
	p.advance()
	var value ast.Expression
	if !p.curIs(token.SEMICOLON) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		value = p.parseExpression(ast.PrecNone)
	}
	p.consumeSemicolon()
	return &ast.ReturnStmt{Tok: tok, Value: value}
}

func (p *Parser) parseThrowStatement() ast.Statement {
	tok := p.cur
	p.advance()
	value := p.parseExpression(ast.PrecNone)
	p.consumeSemicolon()
	return &ast.ThrowStmt{Tok: tok, Value: value}
}
