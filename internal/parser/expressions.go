package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/goscript/internal/ast"
	"github.com/cwbudde/goscript/internal/token"
)

// parseExpression is the Pratt-parsing core: parse one prefix expression,
// then repeatedly fold in infix/postfix operators whose precedence is at
// least minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	return p.parseInfix(left, minPrec)
}

func (p *Parser) parseInfix(left ast.Expression, minPrec int) ast.Expression {
	for {
		switch {
		case ast.IsAssignOperator(p.cur.Type) && ast.PrecAssign > minPrec-1 && ast.PrecAssign >= minPrec:
			left = p.parseAssignment(left)
		case p.curIs(token.QUESTION) && ast.PrecTernary >= minPrec:
			left = p.parseTernary(left)
		case p.curIs(token.LPAREN) && ast.PrecCall >= minPrec:
			left = p.parseCall(left)
		case p.curIs(token.LBRACKET) && ast.PrecMember >= minPrec:
			left = p.parseComputedMember(left)
		case p.curIs(token.DOT) && ast.PrecMember >= minPrec:
			left = p.parseDotMember(left)
		case (p.curIs(token.INC) || p.curIs(token.DEC)) && ast.PrecUpdate >= minPrec:
			left = p.parsePostfixUpdate(left)
		default:
			if info, ok := ast.BinaryOperatorInfo(p.cur.Type); ok && info.Precedence >= minPrec {
				left = p.parseBinary(left, info)
				continue
			}
			return left
		}
	}
}

// parseAssignment is right-associative at precedence 3. The right-hand
// side is always parsed (and, at evaluation time, evaluated) before the
// target is resolved.
func (p *Parser) parseAssignment(left ast.Expression) ast.Expression {
	tok := p.cur
	op := p.cur.Type
	p.advance()
	right := p.parseExpression(ast.PrecAssign)
	return &ast.AssignmentExpr{Tok: tok, Op: op, Target: left, Value: right}
}

// parseTernary is right-associative at precedence 4.
func (p *Parser) parseTernary(cond ast.Expression) ast.Expression {
	tok := p.cur
	p.advance() // '?'
	then := p.parseExpression(ast.PrecAssign)
	p.expect(token.COLON)
	elseExpr := p.parseExpression(ast.PrecTernary)
	return &ast.TernaryExpr{Tok: tok, Cond: cond, Then: then, Else: elseExpr}
}

func (p *Parser) parseBinary(left ast.Expression, info ast.OperatorInfo) ast.Expression {
	tok := p.cur
	op := p.cur.Type
	p.advance()
	nextMin := info.Precedence + 1
	if info.Assoc == ast.RightToLeft {
		nextMin = info.Precedence
	}
	right := p.parseExpression(nextMin)

	switch op {
	case token.EQ, token.NEQ, token.SEQ, token.SNEQ, token.LT, token.GT, token.LE, token.GE,
		token.IN, token.INSTANCEOF:
		return &ast.RelationalExpr{Tok: tok, Op: op, Left: left, Right: right}
	default:
		return &ast.BinaryExpr{Tok: tok, Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	tok := p.cur
	p.advance() // '('
	var args []ast.Expression
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		args = append(args, p.parseExpression(ast.PrecAssign))
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return &ast.CallExpr{Tok: tok, Callee: callee, Args: args}
}

func (p *Parser) parseComputedMember(object ast.Expression) ast.Expression {
	tok := p.cur
	p.advance() // '['
	prop := p.parseExpression(ast.PrecNone)
	p.expect(token.RBRACKET)
	return &ast.MemberExpr{Tok: tok, Object: object, Property: prop, Computed: true}
}

func (p *Parser) parseDotMember(object ast.Expression) ast.Expression {
	tok := p.cur
	p.advance() // '.'
	name, _ := p.expectIdentifier()
	var prop ast.Expression
	if name != nil {
		prop = name
	}
	return &ast.MemberExpr{Tok: tok, Object: object, Property: prop, Computed: false}
}

func (p *Parser) parsePostfixUpdate(target ast.Expression) ast.Expression {
	tok := p.cur
	op := p.cur.Type
	p.advance()
	return &ast.UpdateExpr{Tok: tok, Op: op, Target: target, Prefix: false}
}

// parsePrefix dispatches prefix expressions: identifiers, this, new,
// literals, array/object literals, function expressions, and prefix
// unary/update/grouping operators.
func (p *Parser) parsePrefix() ast.Expression {
	switch p.cur.Type {
	case token.IDENT:
		tok := p.cur
		p.advance()
		return &ast.Identifier{Tok: tok, Value: tok.Literal}
	case token.THIS:
		tok := p.cur
		p.advance()
		return &ast.ThisExpr{Tok: tok}
	case token.NEW:
		return p.parseNew()
	case token.TRUE, token.FALSE:
		return p.parseBooleanLiteral()
	case token.NULL:
		tok := p.cur
		p.advance()
		return &ast.Literal{Tok: tok, Kind: ast.LitNull}
	case token.UNDEFINED:
		tok := p.cur
		p.advance()
		return &ast.Literal{Tok: tok, Kind: ast.LitUndefined}
	case token.NUMBER:
		return p.parseNumberLiteral()
	case token.STRING:
		tok := p.cur
		p.advance()
		return &ast.Literal{Tok: tok, Kind: ast.LitString, Str: tok.Literal}
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral()
	case token.FUNCTION:
		return p.parseFunctionExpr()
	case token.LPAREN:
		return p.parseGrouping()
	case token.PLUS, token.MINUS, token.TILDE, token.NOT,
		token.TYPEOF, token.VOID, token.DELETE:
		return p.parseUnary()
	case token.INC, token.DEC:
		return p.parsePrefixUpdate()
	default:
		p.errors = append(p.errors, newExprError(p.cur.Pos, p.cur))
		p.advance()
		return nil
	}
}

func (p *Parser) parseNew() ast.Expression {
	tok := p.cur
	p.advance() // 'new'
	callee := p.parseExpression(ast.PrecCall)
	// If callee folded in a CallExpr (because '(' binds at PrecCall), the
	// call's own arguments are this `new` expression's arguments.
	if call, ok := callee.(*ast.CallExpr); ok {
		return &ast.NewExpr{Tok: tok, Callee: call.Callee, Args: call.Args}
	}
	return &ast.NewExpr{Tok: tok, Callee: callee}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	return &ast.Literal{Tok: tok, Kind: ast.LitBoolean, Bool: tok.Type == token.TRUE}
}

// parseNumberLiteral converts the lexer's raw numeric text into Int or
// Float, dispatching on the radix/format the lexer recorded.
func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	text := tok.Literal

	switch tok.Kind {
	case token.BinaryInt:
		v, _ := strconv.ParseInt(strings.TrimPrefix(strings.TrimPrefix(text, "0b"), "0B"), 2, 64)
		return &ast.Literal{Tok: tok, Kind: ast.LitNumberInt, Int: v, NumberKind: tok.Kind}
	case token.OctalInt:
		v, _ := strconv.ParseInt(strings.TrimPrefix(strings.TrimPrefix(text, "0o"), "0O"), 8, 64)
		return &ast.Literal{Tok: tok, Kind: ast.LitNumberInt, Int: v, NumberKind: tok.Kind}
	case token.HexInt:
		v, _ := strconv.ParseInt(strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X"), 16, 64)
		return &ast.Literal{Tok: tok, Kind: ast.LitNumberInt, Int: v, NumberKind: tok.Kind}
	case token.DecimalFloat:
		v, _ := strconv.ParseFloat(text, 64)
		return &ast.Literal{Tok: tok, Kind: ast.LitNumberFloat, Float: v, NumberKind: tok.Kind}
	default:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			f, _ := strconv.ParseFloat(text, 64)
			return &ast.Literal{Tok: tok, Kind: ast.LitNumberFloat, Float: f, NumberKind: tok.Kind}
		}
		return &ast.Literal{Tok: tok, Kind: ast.LitNumberInt, Int: v, NumberKind: tok.Kind}
	}
}

// parseArrayLiteral supports elided elements (`[1, , 3]`).
func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.cur
	p.advance() // '['
	lit := &ast.ArrayLiteral{Tok: tok}
	for !p.curIs(token.RBRACKET) && !p.curIs(token.EOF) {
		if p.curIs(token.COMMA) {
			lit.Elements = append(lit.Elements, nil)
			p.advance()
			continue
		}
		lit.Elements = append(lit.Elements, p.parseExpression(ast.PrecAssign))
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBRACKET)
	return lit
}

// parseObjectLiteral supports a trailing comma.
func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.cur
	p.advance() // '{'
	lit := &ast.ObjectLiteral{Tok: tok}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		var key *ast.Identifier
		switch {
		case p.curIs(token.IDENT):
			key = &ast.Identifier{Tok: p.cur, Value: p.cur.Literal}
			p.advance()
		case p.curIs(token.STRING):
			key = &ast.Identifier{Tok: p.cur, Value: p.cur.Literal}
			p.advance()
		default:
			p.errors = append(p.errors, newIdentError(p.cur.Pos, p.cur))
			p.advance()
			continue
		}
		p.expect(token.COLON)
		value := p.parseExpression(ast.PrecAssign)
		lit.Properties = append(lit.Properties, &ast.ObjectProperty{Key: key, Value: value})
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBRACE)
	return lit
}

func (p *Parser) parseFunctionExpr() ast.Expression {
	tok := p.cur
	p.advance() // 'function'
	var name *ast.Identifier
	if p.curIs(token.IDENT) {
		name, _ = p.expectIdentifier()
	}
	params := p.parseParamList()
	body := p.parseBlock()
	return &ast.FunctionExpr{Tok: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseGrouping() ast.Expression {
	tok := p.cur
	p.advance() // '('
	inner := p.parseExpression(ast.PrecNone)
	p.expect(token.RPAREN)
	return &ast.GroupingExpr{Tok: tok, Inner: inner}
}

func (p *Parser) parseUnary() ast.Expression {
	tok := p.cur
	op := p.cur.Type
	p.advance()
	operand := p.parseExpression(ast.PrecUnary)
	return &ast.UnaryExpr{Tok: tok, Op: op, Operand: operand}
}

func (p *Parser) parsePrefixUpdate() ast.Expression {
	tok := p.cur
	op := p.cur.Type
	p.advance()
	target := p.parseExpression(ast.PrecUnary)
	return &ast.UpdateExpr{Tok: tok, Op: op, Target: target, Prefix: true}
}
