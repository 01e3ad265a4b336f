// Package broadcast implements data-movement-free
// broadcasting execution helpers: the strategy classifier, per-input
// virtual stride/repeat expansions, and the general index-mapping
// iterator a backend uses to walk a broadcast operation without ever
// materializing the expanded inputs.
package broadcast

import "github.com/gomlx/tensorshape/shape"

// Strategy classifies a broadcast so a backend can dispatch to a fast path.
type Strategy int

const (
	// Scalar: every input (after alignment) has size 1.
	Scalar Strategy = iota
	// Vector: all inputs already share the exact same shape; no
	// broadcasting is actually needed.
	Vector
	// General: at least one input needs genuine broadcast expansion.
	General
)

func (s Strategy) String() string {
	switch s {
	case Scalar:
		return "Scalar"
	case Vector:
		return "Vector"
	default:
		return "General"
	}
}

// Analyze classifies the broadcast strategy for a set of input shapes.
func Analyze(shapes ...shape.Shape) Strategy {
	if len(shapes) == 0 {
		return Vector
	}
	allScalar := true
	for _, s := range shapes {
		if s.Size() != 1 {
			allScalar = false
			break
		}
	}
	if allScalar {
		return Scalar
	}

	first := shapes[0]
	allEqual := true
	for _, s := range shapes[1:] {
		if !s.Equal(first) {
			allEqual = false
			break
		}
	}
	if allEqual {
		return Vector
	}
	return General
}
