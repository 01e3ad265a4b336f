package symbolic

import (
	"strconv"
	"strings"

	"github.com/gomlx/tensorshape/shape"
)

// Op identifies the relation a Constraint asserts. Eq is the only relation
// defines; the overlay does not solve arithmetic.
type Op int

const OpEq Op = iota

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpEq:
		return "eq"
	default:
		return "unknown"
	}
}

// Constraint asserts that two dimension tokens (a bound/unbound name, or a
// literal decimal size) must be equal once resolved.
type Constraint struct {
	LHS, RHS string
	Op Op
}

// Resolution is the outcome of resolving a symbolic shape against an
// Environment (step 4).
type Resolution struct {
	// Dims holds one entry per symbolic-shape axis; an unresolved axis is
	// left at -1 and named in Warnings.
	Dims []int
	// Resolved is true iff every axis in Dims is known.
	Resolved bool
	// Warnings names axes that remain unresolved (only set when Resolved
	// is false and the resolution was not run in strict mode).
	Warnings []string
}

// isLiteral reports whether token is a decimal integer rather than a
// dimension name.
func isLiteral(token string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, false
	}
	return v, true
}

// resolveToken returns token's value under the given bindings, treating a
// literal decimal as already resolved.
func resolveToken(token string, known map[string]bool, bindings map[string]int) (int, bool) {
	if v, ok := isLiteral(token); ok {
		return v, true
	}
	if known[token] {
		return bindings[token], true
	}
	return 0, false
}

// propagate runs step 2: fixed-point iteration over the
// constraint list, binding one side of an eq constraint whenever the other
// side is known, bounded at len(constraints)+10 passes. It reports whether
// the pass converged (a full iteration made no new binding) before the
// bound was exhausted.
func propagate(constraints []Constraint, known map[string]bool, bindings map[string]int) (converged bool) {
	maxIters := len(constraints) + 10
	for iter := 0; iter < maxIters; iter++ {
		changed := false
		for _, c := range constraints {
			lv, lok := resolveToken(c.LHS, known, bindings)
			rv, rok := resolveToken(c.RHS, known, bindings)
			_, lhsLiteral := isLiteral(c.LHS)
			_, rhsLiteral := isLiteral(c.RHS)
			switch {
			case lok && !rok && !rhsLiteral:
				bindings[c.RHS] = lv
				known[c.RHS] = true
				changed = true
			case rok && !lok && !lhsLiteral:
				bindings[c.LHS] = rv
				known[c.LHS] = true
				changed = true
			}
		}
		if !changed {
			return true
		}
	}
	return false
}

// validate runs step 3: every constraint whose both sides are
// known must agree, or resolution fails with ConstraintViolation.
func validate(constraints []Constraint, known map[string]bool, bindings map[string]int) error {
	for _, c := range constraints {
		lv, lok := resolveToken(c.LHS, known, bindings)
		rv, rok := resolveToken(c.RHS, known, bindings)
		if lok && rok && lv != rv {
			return shape.NewError(shape.ConstraintViolation,
				"symbolic constraint violated: %s %s %s resolves to %d != %d", c.LHS, c.Op, c.RHS, lv, rv)
		}
	}
	return nil
}

// Resolve runs full resolution pipeline against a symbolic
// shape: each entry is either a literal decimal size or a dimension name.
// In strict mode an unresolved axis is a failure; otherwise a Partial
// Resolution is returned naming the unresolved axes.
func (e *Environment) Resolve(symbolicDims []string, strict bool) (Resolution, error) {
	bindings, known := e.snapshot()
	if !propagate(e.constraints, known, bindings) {
		return Resolution{}, shape.NewError(shape.ResolutionDivergent,
			"symbolic constraint propagation did not reach a fixed point within %d passes", len(e.constraints)+10)
	}
	if err := validate(e.constraints, known, bindings); err != nil {
		return Resolution{}, err
	}

	dims := make([]int, len(symbolicDims))
	var warnings []string
	allResolved := true
	for i, tok := range symbolicDims {
		v, ok := resolveToken(tok, known, bindings)
		if !ok {
			allResolved = false
			dims[i] = -1
			warnings = append(warnings, tok)
			continue
		}
		dims[i] = v
	}

	if !allResolved && strict {
		return Resolution{}, shape.NewError(shape.UnresolvedDim,
			"symbolic shape has unresolved axes %v in strict mode", warnings)
	}

	return Resolution{Dims: dims, Resolved: allResolved, Warnings: warnings}, nil
}
