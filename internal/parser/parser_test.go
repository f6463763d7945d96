package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/goscript/internal/ast"
	"github.com/cwbudde/goscript/internal/lexer"
	"github.com/cwbudde/goscript/internal/token"
)

func parse(t *testing.T, src string) *ast.Script {
	t.Helper()
	l := lexer.New(src)
	p := New(l)
	script := p.ParseScript()
	require.Empty(t, p.Errors())
	return script
}

func TestMultiplicationBindsTighterThanAddition(t *testing.T) {
	script := parse(t, "2 + 3 * 4;")
	stmt := script.Body.Body[0].(*ast.ExpressionStmt)
	add := stmt.Expr.(*ast.BinaryExpr)
	require.Equal(t, token.PLUS, add.Op)

	right := add.Right.(*ast.BinaryExpr)
	require.Equal(t, token.STAR, right.Op)
}

func TestFunctionDeclarationsAreHoisted(t *testing.T) {
	script := parse(t, `
		let r = greet();
		function greet() { return "hi"; }
	`)
	require.Len(t, script.Body.Hoisted, 1)
	fn := script.Body.Hoisted[0].(*ast.FunctionDecl)
	require.Equal(t, "greet", fn.Name.Value)

	// the let statement itself is not hoisted, only the function is.
	require.Len(t, script.Body.Body, 1)
}

func TestVarDeclarationsHoistAndKeepInitAsAssignment(t *testing.T) {
	script := parse(t, `
		x = 1;
		var x = 2;
	`)
	// The var's declarator is moved to Hoisted with no initializer; its
	// initializer becomes a plain assignment statement at the original
	// position, per the hoisting transform.
	require.Len(t, script.Body.Hoisted, 1)
	varDecl := script.Body.Hoisted[0].(*ast.VarDecl)
	require.Nil(t, varDecl.Declarators[0].Init)

	require.Len(t, script.Body.Body, 2)
	assignStmt := script.Body.Body[1].(*ast.ExpressionStmt)
	assign := assignStmt.Expr.(*ast.AssignmentExpr)
	require.Equal(t, "x", assign.Target.(*ast.Identifier).Value)
}

func TestParseErrorsAccumulateWithoutAborting(t *testing.T) {
	l := lexer.New("if (true { a; } let b = 1;")
	p := New(l)
	p.ParseScript()
	require.NotEmpty(t, p.Errors())
}
