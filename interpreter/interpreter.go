// ==============================================================================================
// FILE: interpreter/interpreter.go
// ==============================================================================================
// PACKAGE: interpreter
// PURPOSE: Walks the AST and produces side effects (printing) and values. No
//          byte-code, no compilation step: every expression is evaluated and
//          every statement is executed directly against a scope chain.
// ==============================================================================================

package interpreter

import (
	"fmt"
	"io"
	"os"
	"time"

	"ember/ast"
	"ember/object"
	"ember/token"
)

// returnSignalKey is the binding name the signals environment uses to carry
// a function's return value out of however many nested blocks it was
// produced in. It is never a legal identifier, so it can never collide with
// a user-defined variable.
const returnSignalKey = "@return"

// Interpreter holds the one piece of state that outlives a single Run call:
// the global scope. Everything else — the current lexical environment and
// the per-invocation signals environment — is threaded through as
// parameters, since a running program may have many call frames alive at
// once (recursion).
type Interpreter struct {
	Globals *object.Environment
	out     io.Writer
}

// New builds an Interpreter with its global scope pre-populated with the
// built-in functions, and wires `print` to out (os.Stdout if out is nil).
func New(out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	i := &Interpreter{Globals: object.NewEnvironment(), out: out}
	i.defineBuiltins()
	return i
}

func (i *Interpreter) defineBuiltins() {
	i.Globals.Define("clock", &object.Callable{
		Name:  "clock",
		Arity: 0,
		Invoke: func(args []object.Value) (object.Value, error) {
			return &object.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	})
}

// Run executes a parsed program's top-level statements against the global
// scope. A `return` at the top level simply stops the program early instead
// of erroring, the same way a bare `return` in a script-style file would.
func (i *Interpreter) Run(statements []ast.Stmt) error {
	signals := object.NewEnvironment()
	return i.executeBlock(statements, i.Globals, signals)
}

// ----------------------------------------------------------------------------------------------
// STATEMENTS
// ----------------------------------------------------------------------------------------------

func (i *Interpreter) executeBlock(statements []ast.Stmt, env, signals *object.Environment) error {
	for _, stmt := range statements {
		if err := i.execute(stmt, env, signals); err != nil {
			return err
		}
		if _, returned := signals.Get(returnSignalKey); returned {
			return nil
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt ast.Stmt, env, signals *object.Environment) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evaluate(s.Expression, env, signals)
		return err

	case *ast.PrintStmt:
		val, err := i.evaluate(s.Expression, env, signals)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, val.Inspect())
		return nil

	case *ast.VarStmt:
		val, err := i.evaluate(s.Initializer, env, signals)
		if err != nil {
			return err
		}
		env.Define(s.Name.Lexeme, val)
		return nil

	case *ast.BlockStmt:
		return i.executeBlock(s.Statements, object.NewEnclosedEnvironment(env), signals)

	case *ast.IfStmt:
		cond, err := i.evaluate(s.Predicate, env, signals)
		if err != nil {
			return err
		}
		truthy, err := object.IsTruthy(cond)
		if err != nil {
			return err
		}
		switch {
		case truthy:
			return i.execute(s.Then, env, signals)
		case s.Else != nil:
			return i.execute(s.Else, env, signals)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.evaluate(s.Condition, env, signals)
			if err != nil {
				return err
			}
			truthy, err := object.IsTruthy(cond)
			if err != nil {
				return err
			}
			if !truthy {
				return nil
			}
			if err := i.execute(s.Body, env, signals); err != nil {
				return err
			}
			if _, returned := signals.Get(returnSignalKey); returned {
				return nil
			}
		}

	case *ast.FunctionStmt:
		fn := i.makeFunction(s.Name.Lexeme, s.Params, s.Body, env)
		env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var val object.Value = object.NIL
		if s.Value != nil {
			v, err := i.evaluate(s.Value, env, signals)
			if err != nil {
				return err
			}
			val = v
		}
		signals.DefineAtRoot(returnSignalKey, val)
		return nil

	default:
		return fmt.Errorf("interpreter: unhandled statement type %T", stmt)
	}
}

// ----------------------------------------------------------------------------------------------
// EXPRESSIONS
// ----------------------------------------------------------------------------------------------

func (i *Interpreter) evaluate(expr ast.Expr, env, signals *object.Environment) (object.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil

	case *ast.VariableExpr:
		val, ok := env.Get(e.Name.Lexeme)
		if !ok {
			return nil, runtimeError(e.Name, fmt.Sprintf("Variable '%s' has not been declared", e.Name.Lexeme))
		}
		return val, nil

	case *ast.AssignExpr:
		val, err := i.evaluate(e.Value, env, signals)
		if err != nil {
			return nil, err
		}
		if !env.Assign(e.Name.Lexeme, val) {
			return nil, runtimeError(e.Name, fmt.Sprintf("Variable %s has not been declared", e.Name.Lexeme))
		}
		return val, nil

	case *ast.GroupingExpr:
		return i.evaluate(e.Inner, env, signals)

	case *ast.UnaryExpr:
		return i.evalUnary(e, env, signals)

	case *ast.LogicalExpr:
		return i.evalLogical(e, env, signals)

	case *ast.BinaryExpr:
		return i.evalBinary(e, env, signals)

	case *ast.CallExpr:
		return i.evalCall(e, env, signals)

	case *ast.AnonFunctionExpr:
		return i.makeFunction("", e.Params, e.Body, env), nil

	default:
		return nil, fmt.Errorf("interpreter: unhandled expression type %T", expr)
	}
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr, env, signals *object.Environment) (object.Value, error) {
	right, err := i.evaluate(e.Right, env, signals)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.MINUS:
		num, ok := right.(*object.Number)
		if !ok {
			return nil, runtimeError(e.Operator, fmt.Sprintf("'-' is not defined for %s", typeName(right)))
		}
		return &object.Number{Value: -num.Value}, nil
	case token.BANG:
		truthy, err := object.IsTruthy(right)
		if err != nil {
			return nil, runtimeError(e.Operator, err.Error())
		}
		return object.NativeBool(!truthy), nil
	default:
		return nil, runtimeError(e.Operator, fmt.Sprintf("Unknown unary operator '%s'.", e.Operator.Lexeme))
	}
}

func (i *Interpreter) evalLogical(e *ast.LogicalExpr, env, signals *object.Environment) (object.Value, error) {
	left, err := i.evaluate(e.Left, env, signals)
	if err != nil {
		return nil, err
	}
	leftTruthy, err := object.IsTruthy(left)
	if err != nil {
		return nil, runtimeError(e.Operator, err.Error())
	}

	if e.Operator.Type == token.OR {
		if leftTruthy {
			return left, nil
		}
	} else { // AND
		if !leftTruthy {
			return left, nil
		}
	}
	return i.evaluate(e.Right, env, signals)
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr, env, signals *object.Environment) (object.Value, error) {
	left, err := i.evaluate(e.Left, env, signals)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right, env, signals)
	if err != nil {
		return nil, err
	}

	op := e.Operator

	switch op.Type {
	case token.EQUAL_EQUAL:
		return object.NativeBool(object.Equal(left, right)), nil
	case token.BANG_EQUAL:
		return object.NativeBool(!object.Equal(left, right)), nil

	case token.PLUS:
		if ln, lok := left.(*object.Number); lok {
			if rn, rok := right.(*object.Number); rok {
				return &object.Number{Value: ln.Value + rn.Value}, nil
			}
			if rs, rok := right.(*object.String); rok {
				return &object.String{Value: ln.Inspect() + rs.Value}, nil
			}
		}
		if ls, lok := left.(*object.String); lok {
			if rs, rok := right.(*object.String); rok {
				return &object.String{Value: ls.Value + rs.Value}, nil
			}
			if rn, rok := right.(*object.Number); rok {
				return &object.String{Value: ls.Value + rn.Inspect()}, nil
			}
		}
		return nil, runtimeError(op, fmt.Sprintf("'+' is not defined for %s and %s", typeName(left), typeName(right)))

	case token.MINUS, token.STAR, token.SLASH,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(*object.Number)
		rn, rok := right.(*object.Number)
		if !lok || !rok {
			return nil, runtimeError(op, fmt.Sprintf("'%s' is not defined for %s and %s", op.Lexeme, typeName(left), typeName(right)))
		}
		switch op.Type {
		case token.MINUS:
			return &object.Number{Value: ln.Value - rn.Value}, nil
		case token.STAR:
			return &object.Number{Value: ln.Value * rn.Value}, nil
		case token.SLASH:
			return &object.Number{Value: ln.Value / rn.Value}, nil
		case token.GREATER:
			return object.NativeBool(ln.Value > rn.Value), nil
		case token.GREATER_EQUAL:
			return object.NativeBool(ln.Value >= rn.Value), nil
		case token.LESS:
			return object.NativeBool(ln.Value < rn.Value), nil
		case token.LESS_EQUAL:
			return object.NativeBool(ln.Value <= rn.Value), nil
		}
	}

	return nil, runtimeError(op, fmt.Sprintf("'%s' is not implemented for the operands %s and %s", op.Lexeme, typeName(left), typeName(right)))
}

func (i *Interpreter) evalCall(e *ast.CallExpr, env, signals *object.Environment) (object.Value, error) {
	callee, err := i.evaluate(e.Callee, env, signals)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, len(e.Arguments))
	for idx, argExpr := range e.Arguments {
		val, err := i.evaluate(argExpr, env, signals)
		if err != nil {
			return nil, err
		}
		args[idx] = val
	}

	fn, ok := callee.(*object.Callable)
	if !ok {
		return nil, runtimeError(e.Paren, fmt.Sprintf("%s is not callable.", typeName(callee)))
	}
	if len(args) != fn.Arity {
		return nil, runtimeError(e.Paren, fmt.Sprintf("Callable %s expected %d arguments got %d", fn.Name, fn.Arity, len(args)))
	}
	return fn.Invoke(args)
}

// makeFunction builds the Callable backing a named or anonymous function
// declaration. Each invocation gets its own enclosed environment (linked to
// closure, the environment captured at definition time) and its own signals
// environment, so recursive and concurrent-looking calls never share return
// state.
func (i *Interpreter) makeFunction(name string, params []token.Token, body []ast.Stmt, closure *object.Environment) *object.Callable {
	return &object.Callable{
		Name:  name,
		Arity: len(params),
		Invoke: func(args []object.Value) (object.Value, error) {
			callEnv := object.NewEnclosedEnvironment(closure)
			for idx, param := range params {
				callEnv.Define(param.Lexeme, args[idx])
			}

			callSignals := object.NewEnvironment()
			if err := i.executeBlock(body, callEnv, callSignals); err != nil {
				return nil, err
			}
			if val, ok := callSignals.Get(returnSignalKey); ok {
				return val, nil
			}
			return object.NIL, nil
		},
	}
}

// ----------------------------------------------------------------------------------------------
// HELPERS
// ----------------------------------------------------------------------------------------------

// literalValue converts the raw Go value held by a LiteralExpr (set by the
// parser from token.Literal or a parsed true/false/nil keyword) into the
// runtime Value it denotes.
func literalValue(v any) object.Value {
	switch val := v.(type) {
	case float64:
		return &object.Number{Value: val}
	case string:
		return &object.String{Value: val}
	case bool:
		return object.NativeBool(val)
	case nil:
		return object.NIL
	default:
		return object.NIL
	}
}

func typeName(v object.Value) string {
	switch v.Type() {
	case object.NUMBER_OBJ:
		return "Number"
	case object.STRING_OBJ:
		return "String"
	case object.BOOLEAN_OBJ:
		return "Boolean"
	case object.NIL_OBJ:
		return "Nil"
	case object.CALLABLE_OBJ:
		return "Callable"
	default:
		return "Unknown"
	}
}

func runtimeError(tok token.Token, message string) error {
	return fmt.Errorf("line %d: %s", tok.Line, message)
}
