package lexer

import "github.com/cwbudde/goscript/internal/token"

// punctuatorEntry pairs literal text with its token type; punctuators is
// sorted longest-first so readPunctuator always matches the maximal
// punctuator (e.g. ">>>=" before ">>>" before ">>=").
type punctuatorEntry struct {
	text string
	typ  token.Type
}

var punctuators = []punctuatorEntry{
	{">>>=", token.USHR_ASSIGN},
	{"===", token.SEQ},
	{"!==", token.SNEQ},
	{"**=", token.STAR_STAR_ASSIGN},
	{">>>", token.USHR},
	{"<<=", token.SHL_ASSIGN},
	{">>=", token.SHR_ASSIGN},
	{"==", token.EQ},
	{"!=", token.NEQ},
	{"<=", token.LE},
	{">=", token.GE},
	{"&&", token.AND},
	{"||", token.OR},
	{"++", token.INC},
	{"--", token.DEC},
	{"+=", token.PLUS_ASSIGN},
	{"-=", token.MINUS_ASSIGN},
	{"*=", token.STAR_ASSIGN},
	{"/=", token.SLASH_ASSIGN},
	{"%=", token.PERCENT_ASSIGN},
	{"&=", token.AMP_ASSIGN},
	{"|=", token.PIPE_ASSIGN},
	{"^=", token.CARET_ASSIGN},
	{"**", token.STAR_STAR},
	{"<<", token.SHL},
	{">>", token.SHR},
	{"=>", token.ARROW},
	{"{", token.LBRACE},
	{"}", token.RBRACE},
	{"(", token.LPAREN},
	{")", token.RPAREN},
	{"[", token.LBRACKET},
	{"]", token.RBRACKET},
	{";", token.SEMICOLON},
	{",", token.COMMA},
	{".", token.DOT},
	{":", token.COLON},
	{"?", token.QUESTION},
	{"=", token.ASSIGN},
	{"<", token.LT},
	{">", token.GT},
	{"!", token.NOT},
	{"+", token.PLUS},
	{"-", token.MINUS},
	{"*", token.STAR},
	{"/", token.SLASH},
	{"%", token.PERCENT},
	{"&", token.AMP},
	{"|", token.PIPE},
	{"^", token.CARET},
	{"~", token.TILDE},
}

// readPunctuator matches the longest punctuator starting at the cursor.
// punctuators is already ordered longest-first, so the first match wins.
func (l *Lexer) readPunctuator(start token.Position) (token.Token, bool) {
	for _, p := range punctuators {
		if l.matchesAt(p.text) {
			l.r.SkipN(len([]rune(p.text)))
			return token.Token{Type: p.typ, Literal: p.text, Raw: p.text, Pos: start}, true
		}
	}
	return token.Token{}, false
}

func (l *Lexer) matchesAt(text string) bool {
	runes := []rune(text)
	for i, want := range runes {
		got, ok := l.r.Peek(i)
		if !ok || got != want {
			return false
		}
	}
	return true
}
