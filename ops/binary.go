package ops

import (
	"github.com/pkg/errors"

	"github.com/gomlx/tensorshape/dtype"
	"github.com/gomlx/tensorshape/internal/optypes"
	"github.com/gomlx/tensorshape/internal/utils"
	"github.com/gomlx/tensorshape/layout"
	"github.com/gomlx/tensorshape/shape"
	"github.com/gomlx/tensorshape/storage"
)

// BinaryOps is the set of binary ops this package implements.
var BinaryOps = utils.SetWith(optypes.Add, optypes.Sub, optypes.Mul, optypes.Div, optypes.Mod, optypes.Pow,
	optypes.Min, optypes.Max, optypes.Eq, optypes.Ne, optypes.Lt, optypes.Le,
	optypes.Gt, optypes.Ge, optypes.LogicalAnd, optypes.LogicalOr,)

// comparisonOps always return bool regardless of operand dtype.
var comparisonOps = utils.SetWith(optypes.Eq, optypes.Ne, optypes.Lt, optypes.Le, optypes.Gt, optypes.Ge)

// logicalOps always return bool; operands of any valid dtype are accepted.
var logicalOps = utils.SetWith(optypes.LogicalAnd, optypes.LogicalOr)

// ValidateBinary checks that op is a known binary op, operands have valid
// dtypes, and the shapes are broadcast-compatible.
func ValidateBinary(op optypes.OpType, lhs, rhs storage.TensorStorage) error {
	if !BinaryOps.Has(op) {
		return errors.Errorf("%s is not a binary operation", op)
	}
	if lhs.DType == dtype.Invalid || rhs.DType == dtype.Invalid {
		return errors.Errorf("invalid dtype for binary operation %s", op)
	}
	if _, err := shape.Broadcast(lhs.Shape, rhs.Shape); err != nil {
		return errors.Wrapf(err, "binary operation %s", op)
	}
	return nil
}

// OutputBinary computes the output storage for a binary op: shape =
// broadcast(lhs, rhs); dtype = promote(lhs, rhs), except comparisons and
// logicals which always return bool.
func OutputBinary(op optypes.OpType, lhs, rhs storage.TensorStorage) (storage.TensorStorage, error) {
	if err := ValidateBinary(op, lhs, rhs); err != nil {
		return storage.TensorStorage{}, err
	}
	outShape, err := shape.Broadcast(lhs.Shape, rhs.Shape)
	if err != nil {
		return storage.TensorStorage{}, err
	}

	outDType := dtype.Promote(lhs.DType, rhs.DType)
	if comparisonOps.Has(op) || logicalOps.Has(op) {
		outDType = dtype.Bool
	} else if op == optypes.Div && outDType.IsInt() {
		// Integer division follows the engine's true-division policy:
		// int / int still promotes to float rather than truncating.
		outDType = dtype.ToFloat(outDType)
	}
	outShape.DType = outDType

	out := storage.Fresh(outShape)
	out.Layout = layout.Binary(lhs.Layout, rhs.Layout)
	return out, nil
}

// DescribeBinary builds the Transformation for a binary op.
func DescribeBinary(op optypes.OpType, lhs, rhs storage.TensorStorage) (storage.Transformation, error) {
	out, err := OutputBinary(op, lhs, rhs)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(op, out, lhs, rhs), nil
}
