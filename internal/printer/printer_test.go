package printer

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/goscript/internal/lexer"
	"github.com/cwbudde/goscript/internal/parser"
)

const sampleScript = `
function add(a, b) {
	return a + b;
}
let total = add(1, 2);
if (total > 2) {
	total = total - 1;
} else {
	total = 0;
}
`

func TestToJSONSnapshot(t *testing.T) {
	l := lexer.New(sampleScript)
	p := parser.New(l)
	script := p.ParseScript()
	require.Empty(t, p.Errors())

	out, err := ToJSON(script)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, "ast_json", string(out))
}

func TestToYAMLSnapshot(t *testing.T) {
	l := lexer.New(sampleScript)
	p := parser.New(l)
	script := p.ParseScript()
	require.Empty(t, p.Errors())

	out, err := ToYAML(script)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, "ast_yaml", string(out))
}
