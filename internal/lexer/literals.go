package lexer

import (
	"strings"

	"github.com/cwbudde/goscript/internal/token"
)

// readNumber lexes binary/octal/hex integers and decimal int/float
// literals. Sign is never consumed here: it is a prefix unary operator
// handled by the parser.
func (l *Lexer) readNumber(start token.Position) token.Token {
	var sb strings.Builder

	if ch, _ := l.r.Peek(0); ch == '0' {
		if next, ok := l.r.Peek(1); ok {
			switch next {
			case 'b', 'B':
				return l.readRadixInt(start, "01", token.BinaryInt)
			case 'o', 'O':
				return l.readRadixInt(start, "01234567", token.OctalInt)
			case 'x', 'X':
				return l.readRadixInt(start, "0123456789abcdefABCDEF", token.HexInt)
			}
		}
	}

	kind := token.DecimalInt
	for {
		ch, ok := l.r.Peek(0)
		if !ok || !isDigit(ch) {
			break
		}
		l.r.Next()
		sb.WriteRune(ch)
	}

	if ch, ok := l.r.Peek(0); ok && ch == '.' {
		if next, ok := l.r.Peek(1); ok && isDigit(next) {
			kind = token.DecimalFloat
			l.r.Next()
			sb.WriteByte('.')
			for {
				ch, ok := l.r.Peek(0)
				if !ok || !isDigit(ch) {
					break
				}
				l.r.Next()
				sb.WriteRune(ch)
			}
		}
	}

	if ch, ok := l.r.Peek(0); ok && (ch == 'e' || ch == 'E') {
		kind = token.DecimalFloat
		l.r.Next()
		sb.WriteRune(ch)
		if sign, ok := l.r.Peek(0); ok && (sign == '+' || sign == '-') {
			l.r.Next()
			sb.WriteRune(sign)
		}
		for {
			ch, ok := l.r.Peek(0)
			if !ok || !isDigit(ch) {
				break
			}
			l.r.Next()
			sb.WriteRune(ch)
		}
	}

	l.checkNumberBoundary(start)
	return token.Token{Type: token.NUMBER, Literal: sb.String(), Raw: sb.String(), Kind: kind, Pos: start}
}

func (l *Lexer) readRadixInt(start token.Position, digits string, kind token.NumberKind) token.Token {
	var sb strings.Builder
	ch, _ := l.r.Next() // '0'
	sb.WriteRune(ch)
	ch, _ = l.r.Next() // 'b'/'o'/'x'
	sb.WriteRune(ch)
	for {
		ch, ok := l.r.Peek(0)
		if !ok || !strings.ContainsRune(digits, ch) {
			break
		}
		l.r.Next()
		sb.WriteRune(ch)
	}
	l.checkNumberBoundary(start)
	return token.Token{Type: token.NUMBER, Literal: sb.String(), Raw: sb.String(), Kind: kind, Pos: start}
}

// checkNumberBoundary enforces that a numeric literal is not immediately
// followed by an identifier character or another digit.
func (l *Lexer) checkNumberBoundary(start token.Position) {
	ch, ok := l.r.Peek(0)
	if !ok {
		return
	}
	if isDigit(ch) {
		l.addError(DigitFollowingNumericLiteral, start, string(ch))
	} else if isIdentifierStart(ch) {
		l.addError(IdentifierFollowingNumericLiteral, start, string(ch))
	}
}

// readString lexes a single- or double-quoted string literal, decoding
// escapes through the shared readEscape table.
func (l *Lexer) readString(start token.Position, quote rune) token.Token {
	l.r.Next() // opening quote
	var sb, raw strings.Builder
	raw.WriteRune(quote)

	for {
		ch, ok := l.r.Peek(0)
		if !ok {
			l.addError(UnclosedString, start, "")
			break
		}
		if ch == quote {
			l.r.Next()
			raw.WriteRune(quote)
			break
		}
		if ch == '\\' {
			l.r.Next()
			raw.WriteByte('\\')
			l.readEscape(&sb, &raw)
			continue
		}
		if isLineTerminator(ch) {
			l.addError(RawLineTerminatorInString, start, "")
			break
		}
		l.r.Next()
		sb.WriteRune(ch)
		raw.WriteRune(ch)
	}

	return token.Token{Type: token.STRING, Literal: sb.String(), Raw: raw.String(), Pos: start}
}

// readTemplate lexes a backtick-delimited template literal as a plain
// string; `${...}` interpolation is not supported.
func (l *Lexer) readTemplate(start token.Position) token.Token {
	l.r.Next() // opening backtick
	var sb, raw strings.Builder
	raw.WriteByte('`')
	for {
		ch, ok := l.r.Peek(0)
		if !ok {
			l.addError(UnclosedString, start, "")
			break
		}
		if ch == '`' {
			l.r.Next()
			raw.WriteByte('`')
			break
		}
		if ch == '\\' {
			l.r.Next()
			raw.WriteByte('\\')
			l.readEscape(&sb, &raw)
			continue
		}
		l.r.Next()
		sb.WriteRune(ch)
		raw.WriteRune(ch)
	}
	return token.Token{Type: token.STRING, Literal: sb.String(), Raw: raw.String(), Pos: start}
}

// readEscape consumes one escape sequence body (the backslash itself has
// already been consumed) and appends its decoded form to sb. A line
// terminator here is a line continuation: CRLF collapses to nothing, as
// do lone CR/LF/LS/PS.
func (l *Lexer) readEscape(sb, raw *strings.Builder) {
	ch, ok := l.r.Peek(0)
	if !ok {
		return
	}
	switch ch {
	case '\r':
		l.r.Next()
		raw.WriteByte('\r')
		if next, ok := l.r.Peek(0); ok && next == '\n' {
			l.r.Next()
			raw.WriteByte('\n')
		}
		return
	case '\n', ' ', ' ':
		l.r.Next()
		raw.WriteRune(ch)
		return
	}

	l.r.Next()
	raw.WriteRune(ch)
	switch ch {
	case '0':
		sb.WriteByte(0)
	case 'b':
		sb.WriteByte('\b')
	case 't':
		sb.WriteByte('\t')
	case 'n':
		sb.WriteByte('\n')
	case 'v':
		sb.WriteByte('\v')
	case 'f':
		sb.WriteByte('\f')
	case 'r':
		sb.WriteByte('\r')
	default:
		sb.WriteRune(ch)
	}
}

// readRegex lexes a /pattern/flags literal, tracking character-class
// nesting so an unescaped '/' inside '[...]' does not terminate early.
func (l *Lexer) readRegex(start token.Position) token.Token {
	var sb strings.Builder
	l.r.Next() // opening '/'
	sb.WriteByte('/')

	inClass := false
	closed := false
	for {
		ch, ok := l.r.Peek(0)
		if !ok {
			l.addError(UnclosedRegex, start, "")
			break
		}
		if isLineTerminator(ch) {
			l.addError(RawLineTerminatorInRegex, start, "")
			break
		}
		if ch == '\\' {
			l.r.Next()
			sb.WriteByte('\\')
			if next, ok := l.r.Peek(0); ok {
				l.r.Next()
				sb.WriteRune(next)
			}
			continue
		}
		if ch == '[' {
			inClass = true
		} else if ch == ']' {
			inClass = false
		} else if ch == '/' && !inClass {
			l.r.Next()
			sb.WriteByte('/')
			closed = true
			break
		}
		l.r.Next()
		sb.WriteRune(ch)
	}

	if closed {
		for {
			ch, ok := l.r.Peek(0)
			if !ok || !isIdentifierStart(ch) {
				break
			}
			l.r.Next()
			sb.WriteRune(ch)
		}
	}

	return token.Token{Type: token.REGEX, Literal: sb.String(), Raw: sb.String(), Pos: start}
}

// readIdentifier lexes the maximal identifier run and classifies it as a
// keyword or plain identifier.
func (l *Lexer) readIdentifier(start token.Position) token.Token {
	var sb strings.Builder
	for {
		ch, ok := l.r.Peek(0)
		if !ok || !isIdentifierPart(ch) {
			break
		}
		l.r.Next()
		sb.WriteRune(ch)
	}
	text := sb.String()
	typ := token.LookupIdent(text)
	return token.Token{Type: typ, Literal: text, Raw: text, Pos: start}
}
