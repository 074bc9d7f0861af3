// Package eval implements the tree-walking evaluator: Eval dispatches
// on the concrete ast.Node type it receives and either produces an
// object.Value or, on the error paths the language defines, an
// *object.Error that short-circuits the enclosing statement sequence.
package eval

import (
	"github.com/wicklang/wick/ast"
	"github.com/wicklang/wick/environment"
	"github.com/wicklang/wick/object"
)

// Eval evaluates node in env. It is the single recursive entry point
// every other function in this package calls back into; there is no
// separate per-node-type evaluator type, just a type switch.
func Eval(node ast.Node, env *environment.Environment) object.Value {
	switch node := node.(type) {

	case *ast.Program:
		return evalProgram(node, env)

	case *ast.ExpressionStatement:
		return Eval(node.Expression, env)

	case *ast.BlockStatement:
		return evalBlockStatement(node, env)

	case *ast.ParseError:
		return object.NewError(object.ParseErrorKind, "%s", node.Msg)

	case *ast.LetStatement:
		val := Eval(node.Value, env)
		if isError(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return object.NULL

	case *ast.ReturnStatement:
		val := Eval(node.ReturnValue, env)
		if isError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.Boolean:
		return nativeBoolToBooleanValue(node.Value)

	case *ast.Identifier:
		return evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left := Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)

	case *ast.IfExpression:
		return evalIfExpression(node, env)

	case *ast.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}

	case *ast.CallExpression:
		fn := Eval(node.Function, env)
		if isError(fn) {
			return fn
		}
		args := evalExpressions(node.Arguments, env)
		if len(args) == 1 && isError(args[0]) {
			return args[0]
		}
		return applyFunction(fn, args)

	case *ast.ArrayLiteral:
		elements := evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &object.Array{Elements: elements}

	case *ast.IndexExpression:
		left := Eval(node.Left, env)
		if isError(left) {
			return left
		}
		index := Eval(node.Index, env)
		if isError(index) {
			return index
		}
		return evalIndexExpression(left, index)

	case *ast.HashLiteral:
		return evalHashLiteral(node, env)
	}

	return object.NewError(object.UnexpectedNodeKind, "no evaluation rule for %T", node)
}

// evalProgram evaluates each top-level statement in order. A
// ReturnValue at program scope unwraps to its inner value (there is no
// enclosing call frame left to receive it); an Error stops evaluation
// of the remaining statements and is returned as-is.
func evalProgram(program *ast.Program, env *environment.Environment) object.Value {
	var result object.Value = object.NULL

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}
	return result
}

// evalBlockStatement evaluates a block's statements in order. Unlike
// evalProgram, a ReturnValue here is left wrapped so it keeps
// propagating up through any enclosing if/else block until it reaches
// the function call frame that unwraps it in applyFunction.
func evalBlockStatement(block *ast.BlockStatement, env *environment.Environment) object.Value {
	var result object.Value = object.NULL

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			rt := result.Type()
			if rt == object.ReturnValueType || rt == object.ErrorType {
				return result
			}
		}
	}
	return result
}

func nativeBoolToBooleanValue(b bool) *object.Boolean {
	if b {
		return object.TRUE
	}
	return object.FALSE
}

func isError(v object.Value) bool {
	if v == nil {
		return false
	}
	err, ok := v.(*object.Error)
	return ok && err != nil
}

func evalIdentifier(node *ast.Identifier, env *environment.Environment) object.Value {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return object.NewError(object.UndefinedKind, "identifier not found: %s", node.Value)
}

// evalExpressions evaluates exps left to right, stopping and returning
// a single-element slice holding the error the moment one occurs.
func evalExpressions(exps []ast.Expression, env *environment.Environment) []object.Value {
	var result []object.Value

	for _, e := range exps {
		evaluated := Eval(e, env)
		if isError(evaluated) {
			return []object.Value{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}
