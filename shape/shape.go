// Package shape implements shape algebra: pure functions over
// ordered dimension sequences, with no notion of strides, memory, or
// execution. Every function here is deterministic and side-effect free.
package shape

import (
	"fmt"
	"strings"

	"github.com/gomlx/tensorshape/dtype"
)

// MaxRank is the maximum rank the engine supports.
const MaxRank = 8

// MaxSize is the default upper bound on a shape's total element count.
// Go's largest exactly representable integer for this purpose is taken
// as the float64 mantissa bound.
const MaxSize = 1 << 53

// Shape is an ordered, non-negative sequence of dimension sizes plus the
// element type of whatever it describes.
type Shape struct {
	DType dtype.DType
	Dimensions []int
}

// Make creates a new Shape with the given dtype and dimensions.
func Make(dt dtype.DType, dims ...int) Shape {
	return Shape{DType: dt, Dimensions: append([]int(nil), dims...)}
}

// Invalid returns the zero-value-equivalent invalid shape, used as an error
// return value in place of a zero Shape{}.
func Invalid() Shape {
	return Shape{DType: dtype.Invalid}
}

// Ok returns true if the shape has a valid (non-Invalid) dtype.
func (s Shape) Ok() bool {
	return s.DType != dtype.Invalid
}

// Rank returns the number of dimensions (axes) in the shape.
func (s Shape) Rank() int {
	return len(s.Dimensions)
}

// IsScalar returns true if the shape has rank 0.
func (s Shape) IsScalar() bool {
	return len(s.Dimensions) == 0
}

// Size returns the total number of elements described by the shape:
// the product of all dimensions, or 1 for a scalar.
func (s Shape) Size() int {
	size := 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return size
}

// Memory returns the number of bytes the shape's elements would occupy
// in a fully packed (contiguous) buffer.
func (s Shape) Memory() int {
	return s.Size() * s.DType.Size()
}

// Dim returns the size of the dimension at the given axis. Negative axes
// count from the end of the shape (-1 is the last axis). It panics if axis
// is out of range, since this is a programming error at every call site in
// this engine (every caller first normalizes and range-checks with
// AdjustAxisToRank).
func (s Shape) Dim(axis int) int {
	adjusted, err := AdjustAxisToRank(axis, s.Rank())
	if err != nil {
		panic(err)
	}
	return s.Dimensions[adjusted]
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: append([]int(nil), s.Dimensions...)}
}

// Equal returns true if both shapes have the same dtype and dimensions.
func (s Shape) Equal(other Shape) bool {
	if s.DType != other.DType || len(s.Dimensions) != len(other.Dimensions) {
		return false
	}
	for i, d := range s.Dimensions {
		if other.Dimensions[i] != d {
			return false
		}
	}
	return true
}

// CheckDims returns an error if the shape's dimensions don't exactly match
// the given dims.
func (s Shape) CheckDims(dims ...int) error {
	if len(s.Dimensions) != len(dims) {
		return newError(PatternRankMismatch, "expected rank %d, got shape %s", len(dims), s)
	}
	for i, d := range dims {
		if s.Dimensions[i] != d {
			return newAxisError(ShapeReshape, i, "dimension mismatch at axis %d: expected %d, got %s", i, d, s)
		}
	}
	return nil
}

// String implements fmt.Stringer, used throughout the engine's error
// messages (calls for actionable error text).
func (s Shape) String() string {
	if !s.Ok() {
		return "InvalidShape"
	}
	dims := make([]string, len(s.Dimensions))
	for i, d := range s.Dimensions {
		dims[i] = fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("%s[%s]", s.DType, strings.Join(dims, ","))
}

// AdjustAxisToRank normalizes a possibly-negative axis against rank,
// returning an error if it is out of [-rank, rank) once normalized.
// Every axis-taking operation in this engine's catalog routes through this
// single helper.
func AdjustAxisToRank(axis, rank int) (int, error) {
	adjusted := axis
	if adjusted < 0 {
		adjusted += rank
	}
	if adjusted < 0 || adjusted >= rank {
		return 0, newAxisError(AxisOutOfRange, axis, "axis %d is out of range for rank %d", axis, rank)
	}
	return adjusted, nil
}

// CheckRankAndSize validates that rank <= MaxRank and size <= MaxSize.
func CheckRankAndSize(s Shape) error {
	if s.Rank() > MaxRank {
		return newError(RankOverflow, "shape %s has rank %d, exceeding the maximum of %d", s, s.Rank(), MaxRank)
	}
	if size := s.Size(); size > MaxSize {
		return newError(SizeOverflow, "shape %s has size %d, exceeding the maximum of %d", s, size, MaxSize)
	}
	return nil
}
