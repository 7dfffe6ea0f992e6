// ==============================================================================================
// FILE: ast/ast_sanity_test.go
// ==============================================================================================
// PURPOSE: Every node type must satisfy its marker interface; this guards
//          against a new variant being added without exprNode()/stmtNode().
// ==============================================================================================

package ast

import "testing"

func TestSanity_ExprVariantsSatisfyExpr(t *testing.T) {
	var exprs = []Expr{
		&LiteralExpr{}, &VariableExpr{}, &AssignExpr{}, &UnaryExpr{},
		&BinaryExpr{}, &LogicalExpr{}, &GroupingExpr{}, &CallExpr{}, &AnonFunctionExpr{},
	}
	for _, e := range exprs {
		if e == nil {
			t.Fatal("nil expr in variant list")
		}
	}
}

func TestSanity_StmtVariantsSatisfyStmt(t *testing.T) {
	var stmts = []Stmt{
		&ExpressionStmt{Expression: &LiteralExpr{}},
		&PrintStmt{Expression: &LiteralExpr{}},
		&VarStmt{Initializer: &LiteralExpr{}},
		&BlockStmt{},
		&IfStmt{Predicate: &LiteralExpr{}, Then: &BlockStmt{}},
		&WhileStmt{Condition: &LiteralExpr{}, Body: &BlockStmt{}},
		&FunctionStmt{},
		&ReturnStmt{},
	}
	for _, s := range stmts {
		if s == nil {
			t.Fatal("nil stmt in variant list")
		}
	}
}
