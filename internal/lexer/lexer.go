// Package lexer turns source text into a lazy sequence of elements: tokens
// plus preserved trivia (comments, whitespace, line terminators), each
// carrying a precise source Position.
package lexer

import (
	"strings"
	"unicode"

	"github.com/cwbudde/goscript/internal/source"
	"github.com/cwbudde/goscript/internal/token"
)

// Lexer produces elements on demand from a source.Reader. It never
// allocates the whole token stream up front; NextElement is called
// repeatedly by the parser's peekable wrapper.
type Lexer struct {
	r      *source.Reader
	errors []*Error

	// lastSignificant is the type of the most recently emitted non-trivia
	// token, used only to disambiguate a leading '/' between division and
	// a regex literal.
	lastSignificant token.Type
	haveLast        bool
}

// New constructs a Lexer over input.
func New(input string) *Lexer {
	return &Lexer{r: source.New(input)}
}

// Errors returns every lexical error observed so far, in encounter order.
func (l *Lexer) Errors() []*Error { return l.errors }

func (l *Lexer) addError(kind ErrorKind, pos token.Position, text string) {
	l.errors = append(l.errors, &Error{Kind: kind, Pos: pos, Text: text})
}

func (l *Lexer) pos() token.Position {
	line, col := l.r.Position()
	return token.Position{Line: line, Column: col}
}

// NextElement returns the next element in the stream: exactly one of
// whitespace run, one line terminator, one comment, or one token. It
// returns a token.EOF token once the input is exhausted.
func (l *Lexer) NextElement() token.Token {
	startPos := l.pos()

	ch, ok := l.r.Peek(0)
	if !ok {
		return token.Token{Type: token.EOF, Pos: startPos}
	}

	if isWhitespace(ch) {
		return l.readWhitespace(startPos)
	}
	if isLineTerminator(ch) {
		return l.readLineTerminator(startPos)
	}
	if ch == '/' {
		if next, ok := l.r.Peek(1); ok && next == '/' {
			return l.readLineComment(startPos)
		}
		if next, ok := l.r.Peek(1); ok && next == '*' {
			return l.readBlockComment(startPos)
		}
	}

	tok := l.readToken(startPos)
	if tok.Type != token.ILLEGAL {
		l.lastSignificant = tok.Type
		l.haveLast = true
	}
	return tok
}

// NextToken skips trivia and returns the next significant token.
func (l *Lexer) NextToken() token.Token {
	for {
		el := l.NextElement()
		switch el.Type {
		case token.COMMENT, token.WHITESPACE, token.LINETERMINATOR:
			continue
		default:
			return el
		}
	}
}

func (l *Lexer) readWhitespace(start token.Position) token.Token {
	var sb strings.Builder
	for {
		ch, ok := l.r.Peek(0)
		if !ok || !isWhitespace(ch) {
			break
		}
		l.r.Next()
		sb.WriteRune(ch)
	}
	return token.Token{Type: token.WHITESPACE, Literal: sb.String(), Raw: sb.String(), Pos: start}
}

func (l *Lexer) readLineTerminator(start token.Position) token.Token {
	ch, _ := l.r.Next()
	text := string(ch)
	if ch == '\r' {
		if next, ok := l.r.Peek(0); ok && next == '\n' {
			l.r.Next()
			text += "\n"
		}
	}
	return token.Token{Type: token.LINETERMINATOR, Literal: text, Raw: text, Pos: start}
}

func (l *Lexer) readLineComment(start token.Position) token.Token {
	var sb strings.Builder
	sb.WriteString("//")
	l.r.SkipN(2)
	for {
		ch, ok := l.r.Peek(0)
		if !ok || isLineTerminator(ch) {
			break
		}
		l.r.Next()
		sb.WriteRune(ch)
	}
	return token.Token{Type: token.COMMENT, Literal: sb.String(), Raw: sb.String(), Pos: start}
}

func (l *Lexer) readBlockComment(start token.Position) token.Token {
	var sb strings.Builder
	sb.WriteString("/*")
	l.r.SkipN(2)
	for {
		ch, ok := l.r.Peek(0)
		if !ok {
			l.addError(UnclosedComment, start, "")
			break
		}
		if ch == '*' {
			if next, ok := l.r.Peek(1); ok && next == '/' {
				l.r.SkipN(2)
				sb.WriteString("*/")
				break
			}
		}
		l.r.Next()
		sb.WriteRune(ch)
	}
	return token.Token{Type: token.COMMENT, Literal: sb.String(), Raw: sb.String(), Pos: start}
}

// readToken dispatches over the closed set of token forms, checked in a
// fixed order so e.g. a leading digit never falls through to the
// identifier branch.
func (l *Lexer) readToken(start token.Position) token.Token {
	ch, _ := l.r.Peek(0)

	switch {
	case isDigit(ch) || (ch == '.' && isDigitAt(l, 1)):
		return l.readNumber(start)
	case ch == '"' || ch == '\'':
		return l.readString(start, ch)
	case ch == '`':
		return l.readTemplate(start)
	case ch == '/' && l.regexAllowed():
		return l.readRegex(start)
	case isIdentifierStart(ch):
		return l.readIdentifier(start)
	default:
		if tok, ok := l.readPunctuator(start); ok {
			return tok
		}
	}

	l.r.Next()
	l.addError(UnrecognizedCharacter, start, string(ch))
	return token.Token{Type: token.ILLEGAL, Literal: string(ch), Raw: string(ch), Pos: start}
}

func isDigitAt(l *Lexer, n int) bool {
	ch, ok := l.r.Peek(n)
	return ok && isDigit(ch)
}

// regexAllowed applies the standard previous-token heuristic plus a
// "not followed by * or /" guard (already unreachable here since comments
// are consumed earlier in NextElement, but kept as a defensive check).
func (l *Lexer) regexAllowed() bool {
	if next, ok := l.r.Peek(1); ok && (next == '*' || next == '/') {
		return false
	}
	if !l.haveLast {
		return true
	}
	switch l.lastSignificant {
	case token.IDENT, token.NUMBER, token.STRING, token.RBRACKET, token.RPAREN,
		token.THIS, token.TRUE, token.FALSE, token.NULL, token.UNDEFINED, token.INC, token.DEC:
		return false
	default:
		return true
	}
}

func isWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\v', '\f', ' ', '﻿':
		return true
	}
	return unicode.Is(unicode.Zs, ch)
}

func isLineTerminator(ch rune) bool {
	switch ch {
	case '\n', '\r', ' ', ' ':
		return true
	}
	return false
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isIdentifierStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isIdentifierPart(ch rune) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}
