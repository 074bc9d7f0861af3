package environment

import "github.com/wicklang/wick/object"

// Builtins is the fixed, process-wide table of builtin functions every
// Environment resolves ahead of its own bindings. It is intentionally
// small and closed: there is no mechanism for user code to register
// new builtins.
var Builtins = map[string]object.Value{
	"len":   &object.Builtin{Name: "len", Fn: builtinLen},
	"first": &object.Builtin{Name: "first", Fn: builtinFirst},
	"last":  &object.Builtin{Name: "last", Fn: builtinLast},
	"rest":  &object.Builtin{Name: "rest", Fn: builtinRest},
	"push":  &object.Builtin{Name: "push", Fn: builtinPush},
}

func builtinLen(args ...object.Value) object.Value {
	if len(args) != 1 {
		return object.NewError(object.IncorrectArgsKind, "len: expected 1 argument, got %d", len(args))
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}
	default:
		return object.NewError(object.IncorrectArgsKind, "len: argument of type %s not supported", arg.Type())
	}
}

func builtinFirst(args ...object.Value) object.Value {
	if len(args) != 1 {
		return object.NewError(object.IncorrectArgsKind, "first: expected 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError(object.IncorrectArgsKind, "first: argument must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NewError(object.IncorrectArgsKind, "first: array is empty")
	}
	return arr.Elements[0]
}

func builtinLast(args ...object.Value) object.Value {
	if len(args) != 1 {
		return object.NewError(object.IncorrectArgsKind, "last: expected 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError(object.IncorrectArgsKind, "last: argument must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NewError(object.IncorrectArgsKind, "last: array is empty")
	}
	return arr.Elements[len(arr.Elements)-1]
}

func builtinRest(args ...object.Value) object.Value {
	if len(args) != 1 {
		return object.NewError(object.IncorrectArgsKind, "rest: expected 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError(object.IncorrectArgsKind, "rest: argument must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NewError(object.IncorrectArgsKind, "rest: array is empty")
	}
	tail := make([]object.Value, len(arr.Elements)-1)
	copy(tail, arr.Elements[1:])
	return &object.Array{Elements: tail}
}

func builtinPush(args ...object.Value) object.Value {
	if len(args) != 2 {
		return object.NewError(object.IncorrectArgsKind, "push: expected 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError(object.IncorrectArgsKind, "push: first argument must be ARRAY, got %s", args[0].Type())
	}
	newElements := make([]object.Value, len(arr.Elements), len(arr.Elements)+1)
	copy(newElements, arr.Elements)
	newElements = append(newElements, args[1])
	return &object.Array{Elements: newElements}
}
