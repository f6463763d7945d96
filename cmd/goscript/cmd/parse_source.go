package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/goscript/internal/ast"
	"github.com/cwbudde/goscript/internal/lexer"
	"github.com/cwbudde/goscript/internal/parser"
)

// parseSource lexes and parses input, printing any lexer/parser errors to
// stderr (one per line, prefixed with filename) and returning a non-nil
// error if parsing failed.
func parseSource(input, filename string) (*ast.Script, error) {
	l := lexer.New(input)
	p := parser.New(l)
	script := p.ParseScript()

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: lex error: %s\n", filename, e.Error())
		}
		return nil, fmt.Errorf("lexing failed with %d error(s)", len(errs))
	}
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: parse error: %s\n", filename, e.Error())
		}
		return nil, fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}
	return script, nil
}
