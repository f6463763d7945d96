package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/goscript/internal/token"
)

// render concatenates every element's raw text, reproducing the
// original input byte-for-byte as long as NextElement never drops
// trivia.
func render(t *testing.T, input string) string {
	t.Helper()
	l := New(input)
	var sb strings.Builder
	for {
		el := l.NextElement()
		if el.Type == token.EOF {
			break
		}
		sb.WriteString(el.Raw)
	}
	return sb.String()
}

func TestNextElementRoundTripsByteForByte(t *testing.T) {
	for _, src := range []string{
		"let x = 1 + 2;\n",
		"// a comment\nfunction f(a, b) { return a + b; }\n",
		"/* block\ncomment */ const y = \"hi\\n\";",
		"if (a === b) { a; } else { b; }\r\n",
		"let obj = { x: 1, y: [1, 2, 3] };",
	} {
		require.Equal(t, src, render(t, src))
	}
}

func TestNextTokenSkipsTrivia(t *testing.T) {
	l := New("  // comment\n  let x")
	tok := l.NextToken()
	require.Equal(t, token.LET, tok.Type)
	tok = l.NextToken()
	require.Equal(t, token.IDENT, tok.Type)
	require.Equal(t, "x", tok.Literal)
}

func TestUnclosedBlockCommentIsError(t *testing.T) {
	l := New("/* never closed")
	for l.NextToken().Type != token.EOF {
	}
	require.Len(t, l.Errors(), 1)
	require.Equal(t, UnclosedComment, l.Errors()[0].Kind)
}

func TestUnrecognizedCharacterIsError(t *testing.T) {
	l := New("let x = 1 @ 2;")
	for l.NextToken().Type != token.EOF {
	}
	require.Len(t, l.Errors(), 1)
	require.Equal(t, UnrecognizedCharacter, l.Errors()[0].Kind)
}

func TestRegexNotAllowedAfterIdentifier(t *testing.T) {
	// After an identifier, a leading '/' is division, not a regex start.
	l := New("a / b")
	require.Equal(t, token.IDENT, l.NextToken().Type)
	require.Equal(t, token.SLASH, l.NextToken().Type)
}

func TestPositionsAdvanceAcrossLines(t *testing.T) {
	l := New("let a\nlet b")
	first := l.NextToken()
	require.Equal(t, 0, first.Pos.Line)

	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			t.Fatal("expected to find second 'let' before EOF")
		}
		if tok.Type == token.LET && tok.Pos.Line == 1 {
			break
		}
	}
}
