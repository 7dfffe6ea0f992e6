// ==============================================================================================
// FILE: resolver/resolver.go
// ==============================================================================================
// PACKAGE: resolver
// PURPOSE: A static scope-resolution pass: walks the tree once before
//          execution and records, for every variable reference, how many
//          enclosing scopes separate it from its declaration. Not wired into
//          the interpreter — the interpreter resolves names dynamically by
//          walking the live Environment chain at run time instead (see
//          package interpreter). Kept as a skeleton for a future static-
//          binding optimization pass, the way a single-pass resolver would
//          be layered onto a tree-walking interpreter that currently looks
//          names up at every reference.
// ==============================================================================================

package resolver

import (
	"fmt"

	"ember/ast"
	"ember/token"
)

// Resolver performs one static pass over a program, building a Depths table
// mapping each variable reference (VariableExpr or AssignExpr) to the
// number of enclosing scopes between its use and its declaration.
type Resolver struct {
	scopes []map[string]bool
	Depths map[ast.Expr]int
}

// New returns a Resolver ready to walk a program.
func New() *Resolver {
	return &Resolver{Depths: make(map[ast.Expr]int)}
}

// ResolveProgram resolves every top-level statement in order.
func (r *Resolver) ResolveProgram(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := r.resolveStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		err := r.resolveMany(s.Statements)
		r.endScope()
		return err

	case *ast.VarStmt:
		r.declare(s.Name)
		if err := r.resolveExpr(s.Initializer); err != nil {
			return err
		}
		r.define(s.Name)
		return nil

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		return r.resolveFunction(s.Params, s.Body)

	case *ast.ExpressionStmt:
		return r.resolveExpr(s.Expression)

	case *ast.PrintStmt:
		return r.resolveExpr(s.Expression)

	case *ast.IfStmt:
		if err := r.resolveExpr(s.Predicate); err != nil {
			return err
		}
		if err := r.resolveStmt(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			return r.resolveStmt(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		if err := r.resolveExpr(s.Condition); err != nil {
			return err
		}
		return r.resolveStmt(s.Body)

	case *ast.ReturnStmt:
		if s.Value == nil {
			return nil
		}
		return r.resolveExpr(s.Value)

	default:
		return fmt.Errorf("resolver: unhandled statement type %T", stmt)
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
				return fmt.Errorf("line %d: Can't read local variable %q in its own initializer.", e.Name.Line, e.Name.Lexeme)
			}
		}
		r.resolveLocal(e, e.Name)
		return nil

	case *ast.AssignExpr:
		if err := r.resolveExpr(e.Value); err != nil {
			return err
		}
		r.resolveLocal(e, e.Name)
		return nil

	case *ast.BinaryExpr:
		if err := r.resolveExpr(e.Left); err != nil {
			return err
		}
		return r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		if err := r.resolveExpr(e.Left); err != nil {
			return err
		}
		return r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		return r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		return r.resolveExpr(e.Inner)

	case *ast.LiteralExpr:
		return nil

	case *ast.CallExpr:
		if err := r.resolveExpr(e.Callee); err != nil {
			return err
		}
		for _, arg := range e.Arguments {
			if err := r.resolveExpr(arg); err != nil {
				return err
			}
		}
		return nil

	case *ast.AnonFunctionExpr:
		return r.resolveFunction(e.Params, e.Body)

	default:
		return fmt.Errorf("resolver: unhandled expression type %T", expr)
	}
}

func (r *Resolver) resolveFunction(params []token.Token, body []ast.Stmt) error {
	r.beginScope()
	for _, param := range params {
		r.declare(param)
		r.define(param)
	}
	err := r.resolveMany(body)
	r.endScope()
	return err
}

func (r *Resolver) resolveMany(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := r.resolveStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// resolveLocal records how many scopes out name was declared, searching
// from the innermost scope outward. A reference found in no tracked scope
// is left unresolved — it is global (or undeclared), which the interpreter
// already handles dynamically. A closure's reference to a variable of an
// enclosing function is found in that function's scope and recorded.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Depths[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}
