// Package tensorshape is the engine's external surface: a
// constructor that yields canonical C-order storage, one function per
// catalog entry, and the single tagged error type, all without requiring
// callers to reach into the engine's internal packages directly.
package tensorshape

import (
	"github.com/gomlx/tensorshape/dtype"
	"github.com/gomlx/tensorshape/einops"
	"github.com/gomlx/tensorshape/internal/optypes"
	"github.com/gomlx/tensorshape/layout"
	"github.com/gomlx/tensorshape/ops"
	"github.com/gomlx/tensorshape/shape"
	"github.com/gomlx/tensorshape/storage"
)

// Re-exported value types, so callers never need to import this module's
// sub-packages directly.
type (
	TensorStorage = storage.TensorStorage
	Transformation = storage.Transformation
	Shape = shape.Shape
	Flags = layout.Flags
	Range = shape.Range
	SliceIndex = shape.SliceIndex
	DType = dtype.DType
	OpType = optypes.OpType
	Error = shape.Error
	Classifier = shape.Classifier
)

// Op tags re-exported here since internal/optypes is not importable
// outside this module.
const (
	OpNeg = optypes.Neg
	OpAbs = optypes.Abs
	OpSign = optypes.Sign
	OpSin = optypes.Sin
	OpCos = optypes.Cos
	OpTan = optypes.Tan
	OpAsin = optypes.Asin
	OpAcos = optypes.Acos
	OpAtan = optypes.Atan
	OpExp = optypes.Exp
	OpLog = optypes.Log
	OpSqrt = optypes.Sqrt
	OpSquare = optypes.Square
	OpFloor = optypes.Floor
	OpCeil = optypes.Ceil
	OpRound = optypes.Round
	OpLogicalNot = optypes.LogicalNot

	OpAdd = optypes.Add
	OpSub = optypes.Sub
	OpMul = optypes.Mul
	OpDiv = optypes.Div
	OpMod = optypes.Mod
	OpPow = optypes.Pow
	OpMin = optypes.Min
	OpMax = optypes.Max
	OpEq = optypes.Eq
	OpNe = optypes.Ne
	OpLt = optypes.Lt
	OpLe = optypes.Le
	OpGt = optypes.Gt
	OpGe = optypes.Ge
	OpLogicalAnd = optypes.LogicalAnd
	OpLogicalOr = optypes.LogicalOr

	OpMatMul = optypes.MatMul

	OpReshape = optypes.Reshape
	OpFlatten = optypes.Flatten
	OpSqueeze = optypes.Squeeze
	OpUnsqueeze = optypes.Unsqueeze
	OpTranspose = optypes.Transpose
	OpPermute = optypes.Permute
	OpSlice = optypes.Slice

	OpExpand = optypes.Expand
	OpTile = optypes.Tile

	OpSum = optypes.Sum
	OpMean = optypes.Mean
	OpReduceMax = optypes.ReduceMax
	OpReduceMin = optypes.ReduceMin
	OpProd = optypes.Prod
)

// New builds a fresh, owned, C-contiguous tensor description of the given
// dtype and dimensions.
func New(dt DType, dims ...int) (TensorStorage, error) {
	s := shape.Make(dt, dims...)
	if err := shape.CheckRankAndSize(s); err != nil {
		return TensorStorage{}, err
	}
	return storage.Fresh(s), nil
}

// ClassifierOf returns err's Classifier if it is (or wraps) an *Error, and
// shape.NoError otherwise.
func ClassifierOf(err error) Classifier {
	return shape.ClassifierOf(err)
}

// Unary builds the Transformation for a unary op.
func Unary(op OpType, operand TensorStorage) (Transformation, error) {
	return ops.DescribeUnary(op, operand)
}

// Binary builds the Transformation for a binary op.
func Binary(op OpType, lhs, rhs TensorStorage) (Transformation, error) {
	return ops.DescribeBinary(op, lhs, rhs)
}

// MatMul builds the Transformation for matrix multiplication.
func MatMul(lhs, rhs TensorStorage) (Transformation, error) {
	return ops.DescribeMatMul(lhs, rhs)
}

// Reshape builds the Transformation for reshape/view; target may contain
// at most one shape.InferredDim (-1) entry.
func Reshape(input TensorStorage, target []int) (Transformation, error) {
	return ops.DescribeReshape(input, target)
}

// Flatten builds the Transformation for flattening input to rank 1.
func Flatten(input TensorStorage) (Transformation, error) {
	return ops.DescribeFlatten(input)
}

// Squeeze builds the Transformation for squeeze. axes == nil removes every
// size-1 dimension.
func Squeeze(input TensorStorage, axes []int) (Transformation, error) {
	return ops.DescribeSqueeze(input, axes)
}

// Unsqueeze builds the Transformation for inserting a size-1 axis.
func Unsqueeze(input TensorStorage, axis int) (Transformation, error) {
	return ops.DescribeUnsqueeze(input, axis)
}

// Transpose builds the Transformation for the default transpose (swaps
// the last two axes).
func Transpose(input TensorStorage) (Transformation, error) {
	return ops.DescribeTranspose(input)
}

// Permute builds the Transformation for an explicit axis permutation.
func Permute(input TensorStorage, perm []int) (Transformation, error) {
	return ops.DescribePermute(input, perm)
}

// Slice builds the Transformation for a per-axis slice.
func Slice(input TensorStorage, indices []SliceIndex) (Transformation, error) {
	return ops.DescribeSlice(input, indices)
}

// Expand builds the Transformation for a broadcast-style expand view.
func Expand(input TensorStorage, target []int) (Transformation, error) {
	return ops.DescribeExpand(input, target)
}

// Tile builds the Transformation for a copy-style tile/repeat.
func Tile(input TensorStorage, reps []int) (Transformation, error) {
	return ops.DescribeTile(input, reps)
}

// Reduce builds the Transformation for sum/mean/max/min/prod.
func Reduce(op OpType, input TensorStorage, axes []int, keepDims bool) (Transformation, error) {
	return ops.DescribeReduce(op, input, axes, keepDims)
}

// Rearrange builds the Transformation for an einops rearrange: a pure
// reindexing, no reduction.
func Rearrange(pattern string, input TensorStorage, axesMap map[string]int) (Transformation, error) {
	return einops.DescribeRearrange(pattern, input, axesMap)
}

// EinopsReduce builds the Transformation for an einops reduce, applying op
// (one of OpSum/OpMean/OpReduceMax/OpReduceMin/OpProd) over every input
// identifier missing from pattern's output side.
func EinopsReduce(op OpType, pattern string, input TensorStorage, axesMap map[string]int, keepDims bool) (Transformation, error) {
	return einops.DescribeReduce(op, pattern, input, axesMap, keepDims)
}

// Repeat builds the Transformation for an einops repeat: new output
// identifiers are allowed as long as axesMap gives them a size.
func Repeat(pattern string, input TensorStorage, axesMap map[string]int) (Transformation, error) {
	return einops.DescribeRepeat(pattern, input, axesMap)
}
