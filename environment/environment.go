// Package environment implements the lexical scope chain values are
// looked up and bound in: a mutable local frame, an optional parent
// frame, and a process-wide, read-only builtins overlay.
package environment

import "github.com/wicklang/wick/object"

// Environment is one frame of the scope chain. A Function literal
// captures its defining Environment by reference (see object.Function),
// so bindings made into an enclosing frame after a closure is created
// remain visible through that closure.
type Environment struct {
	store    map[string]object.Value
	parent   *Environment
	builtins map[string]object.Value
}

// New creates a top-level environment with no parent, wired to the
// language's fixed builtin table.
func New() *Environment {
	return &Environment{
		store:    make(map[string]object.Value),
		builtins: Builtins,
	}
}

// NewEnclosed creates a child frame of parent, used when entering a
// function call (blocks evaluate in their enclosing frame and do not
// get one of their own). The builtins overlay is inherited
// directly from the root rather than re-resolved per frame.
func NewEnclosed(parent *Environment) *Environment {
	return &Environment{
		store:    make(map[string]object.Value),
		parent:   parent,
		builtins: parent.builtins,
	}
}

// Get resolves name against the builtins overlay first, then this
// frame, then each enclosing frame in turn. Builtins are therefore
// never shadowable by a let binding of the same name — the first
// match found, in that fixed order, wins.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.builtins[name]; ok {
		return v, true
	}
	for env := e; env != nil; env = env.parent {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name to val in this frame only; it never writes through to
// a parent frame. Returns val for call-site convenience.
func (e *Environment) Set(name string, val object.Value) object.Value {
	e.store[name] = val
	return val
}
