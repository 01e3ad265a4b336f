// Package symbolic implements optional named-dimension
// overlay: an Environment tracks named-dimension bindings and equality
// constraints between them, and resolves a symbolic shape (dimensions
// given as literal sizes or names) against that environment.
package symbolic

// Environment holds the dimension-name bindings and equality constraints
// used to resolve symbolic shapes. It is the only mutable value in this
// engine: callers build one with the chainable methods below,
// then call Resolve, and must not mutate it concurrently with resolution.
type Environment struct {
	bindings map[string]int
	known map[string]bool
	constraints []Constraint
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{
		bindings: map[string]int{},
		known: map[string]bool{},
	}
}

// Bind fixes name to value. Returns the Environment for chaining.
func (e *Environment) Bind(name string, value int) *Environment {
	e.bindings[name] = value
	e.known[name] = true
	return e
}

// Define declares name as a dimension the environment knows about without
// fixing its value; it is a no-op if name is already bound. Returns the
// Environment for chaining.
func (e *Environment) Define(name string) *Environment {
	if _, ok := e.known[name]; !ok {
		e.known[name] = false
	}
	return e
}

// Eq adds an equality constraint between two dimension names (or between a
// name and a literal integer, given as a decimal string). Returns the
// Environment for chaining.
func (e *Environment) Eq(lhs, rhs string) *Environment {
	e.constraints = append(e.constraints, Constraint{LHS: lhs, RHS: rhs, Op: OpEq})
	return e
}

// IsBound reports whether name currently has a known value.
func (e *Environment) IsBound(name string) bool {
	return e.known[name]
}

// Value returns name's bound value and whether it is known.
func (e *Environment) Value(name string) (int, bool) {
	v, ok := e.known[name]
	if !ok || !v {
		return 0, false
	}
	return e.bindings[name], true
}

// snapshot copies the environment's bindings and known-set into fresh maps
// so Resolve can propagate constraints without mutating the Environment.
func (e *Environment) snapshot() (map[string]int, map[string]bool) {
	bindings := make(map[string]int, len(e.bindings))
	for k, v := range e.bindings {
		bindings[k] = v
	}
	known := make(map[string]bool, len(e.known))
	for k, v := range e.known {
		known[k] = v
	}
	return bindings, known
}
