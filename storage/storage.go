// Package storage implements the operation-free tensor description
// (TensorStorage) and the tagged operation descriptor (Transformation) a
// downstream executor consumes without re-parsing or re-validating.
package storage

import (
	"fmt"

	"github.com/gomlx/tensorshape/dtype"
	"github.com/gomlx/tensorshape/internal/optypes"
	"github.com/gomlx/tensorshape/layout"
	"github.com/gomlx/tensorshape/shape"
)

// TensorStorage is a value description of a tensor's metadata: dtype,
// shape, strides, total element count, layout flags and a base offset.
// It never holds actual element data.
type TensorStorage struct {
	DType dtype.DType
	Shape shape.Shape
	Strides []int
	Size int
	Layout layout.Flags
	Offset int
}

// Fresh builds the TensorStorage for a freshly allocated, owned,
// C-contiguous tensor of the given shape (invariant 8).
func Fresh(s shape.Shape) TensorStorage {
	return TensorStorage{
		DType: s.DType,
		Shape: s,
		Strides: layout.CStrides(s.Dimensions),
		Size: s.Size(),
		Layout: layout.Fresh(),
		Offset: 0,
	}
}

// String implements fmt.Stringer.
func (t TensorStorage) String() string {
	return fmt.Sprintf("TensorStorage{%s, strides=%v, offset=%d}", t.Shape, t.Strides, t.Offset)
}

// Transformation is the tagged, self-describing operation record: a
// downstream executor acts on Output/Inputs/Attributes without re-parsing
// patterns or recomputing broadcasts.
type Transformation struct {
	Op optypes.OpType
	Output TensorStorage
	Inputs []TensorStorage
	Attributes map[string]any
}

// NewTransformation builds a Transformation with an initialized, empty
// Attributes map so callers can always assign into it.
func NewTransformation(op optypes.OpType, output TensorStorage, inputs ...TensorStorage) Transformation {
	return Transformation{Op: op, Output: output, Inputs: inputs, Attributes: map[string]any{}}
}

// WithAttr attaches an op-specific attribute (axes, indices, pattern,
// reps,...) and returns the same Transformation for chaining.
func (t Transformation) WithAttr(name string, value any) Transformation {
	t.Attributes[name] = value
	return t
}
