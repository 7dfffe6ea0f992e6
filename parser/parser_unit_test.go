// ==============================================================================================
// FILE: parser/parser_unit_test.go
// ==============================================================================================
// PURPOSE: Exercises each grammar production in isolation on small inputs.
// ==============================================================================================

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ember/ast"
	"ember/lexer"
)

func parse(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	tokens, err := lexer.New(source).ScanTokens()
	require.NoError(t, err)
	stmts, err := New(tokens).Parse()
	require.NoError(t, err)
	return stmts
}

func TestParse_VarDeclarationWithInitializer(t *testing.T) {
	stmts := parse(t, "var x = 1;")
	require.Len(t, stmts, 1)
	varStmt, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", varStmt.Name.Lexeme)
	lit, ok := varStmt.Initializer.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, 1.0, lit.Value)
}

func TestParse_VarDeclarationWithoutInitializerDefaultsToNil(t *testing.T) {
	stmts := parse(t, "var x;")
	varStmt := stmts[0].(*ast.VarStmt)
	lit, ok := varStmt.Initializer.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Nil(t, lit.Value)
}

func TestParse_BinaryPrecedence(t *testing.T) {
	stmts := parse(t, "1 + 2 * 3;")
	expr := stmts[0].(*ast.ExpressionStmt).Expression
	assert.Equal(t, "(1 + (2 * 3))", expr.String())
}

func TestParse_Assignment(t *testing.T) {
	stmts := parse(t, "x = 5;")
	expr := stmts[0].(*ast.ExpressionStmt).Expression
	assign, ok := expr.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
}

func TestParse_IfElse(t *testing.T) {
	stmts := parse(t, "if (true) { print 1; } else { print 2; }")
	ifStmt, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_WhileLoop(t *testing.T) {
	stmts := parse(t, "while (x < 10) { x = x + 1; }")
	_, ok := stmts[0].(*ast.WhileStmt)
	assert.True(t, ok)
}

func TestParse_ForLoopDesugarsToWhile(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) { print i; }")
	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)

	whileStmt, isWhile := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, isWhile)

	body, isBlock := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, isBlock)
	assert.Len(t, body.Statements, 2) // original body + increment
}

func TestParse_ForLoopWithNoConditionDefaultsToTrue(t *testing.T) {
	stmts := parse(t, "for (;;) { break_condition = true; }")
	outer := stmts[0].(*ast.WhileStmt)
	lit, ok := outer.Condition.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts := parse(t, "fn add(a, b) { return a + b; }")
	fn, ok := stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
}

func TestParse_AnonymousFunction(t *testing.T) {
	stmts := parse(t, "var f = fn(x) { return x; };")
	varStmt := stmts[0].(*ast.VarStmt)
	_, ok := varStmt.Initializer.(*ast.AnonFunctionExpr)
	assert.True(t, ok)
}

func TestParse_CallExpression(t *testing.T) {
	stmts := parse(t, "add(1, 2);")
	call := stmts[0].(*ast.ExpressionStmt).Expression.(*ast.CallExpr)
	assert.Len(t, call.Arguments, 2)
}

func TestParse_LogicalOperators(t *testing.T) {
	stmts := parse(t, "a and b or c;")
	expr := stmts[0].(*ast.ExpressionStmt).Expression
	logical, ok := expr.(*ast.LogicalExpr)
	require.True(t, ok)
	assert.Equal(t, "or", logical.Operator.Lexeme)
}

func TestParse_ReturnWithAndWithoutValue(t *testing.T) {
	stmts := parse(t, "fn f() { return; } fn g() { return 1; }")
	f := stmts[0].(*ast.FunctionStmt)
	g := stmts[1].(*ast.FunctionStmt)
	assert.Nil(t, f.Body[0].(*ast.ReturnStmt).Value)
	assert.NotNil(t, g.Body[0].(*ast.ReturnStmt).Value)
}
