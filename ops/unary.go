// Package ops implements the operation catalog: one
// Validate/Output/Describe trio per operation family, each consuming and
// producing storage.TensorStorage / storage.Transformation values.
package ops

import (
	"github.com/pkg/errors"

	"github.com/gomlx/tensorshape/dtype"
	"github.com/gomlx/tensorshape/internal/optypes"
	"github.com/gomlx/tensorshape/internal/utils"
	"github.com/gomlx/tensorshape/layout"
	"github.com/gomlx/tensorshape/storage"
)

// UnaryOps is the set of unary ops this package implements.
var UnaryOps = utils.SetWith(optypes.Neg, optypes.Abs, optypes.Sign, optypes.Sin, optypes.Cos, optypes.Tan,
	optypes.Asin, optypes.Acos, optypes.Atan, optypes.Exp, optypes.Log, optypes.Sqrt,
	optypes.Square, optypes.Floor, optypes.Ceil, optypes.Round, optypes.LogicalNot)

// transcendentalOps returns to_float(dtype) instead of preserving the
// input dtype: sin, cos, tan and the other transcendental functions.
var transcendentalOps = utils.SetWith(optypes.Sin, optypes.Cos, optypes.Tan, optypes.Asin, optypes.Acos, optypes.Atan,
	optypes.Exp, optypes.Log, optypes.Sqrt)

// ValidateUnary checks that op is a known unary op and that the operand's
// dtype is valid.
func ValidateUnary(op optypes.OpType, operand storage.TensorStorage) error {
	if !UnaryOps.Has(op) {
		return errors.Errorf("%s is not a unary operation", op)
	}
	if operand.DType == dtype.Invalid {
		return errors.Errorf("invalid dtype for unary operation %s", op)
	}
	return nil
}

// OutputUnary computes the output storage for a unary op: shape and
// strides are unchanged; the dtype follows the per-op rule (most ops
// preserve dtype, transcendentals use to_float, logical_not maps to bool).
func OutputUnary(op optypes.OpType, operand storage.TensorStorage) (storage.TensorStorage, error) {
	if err := ValidateUnary(op, operand); err != nil {
		return storage.TensorStorage{}, err
	}
	out := operand
	switch {
	case op == optypes.LogicalNot:
		out.DType = dtype.Bool
	case transcendentalOps.Has(op):
		out.DType = dtype.ToFloat(operand.DType)
	}
	out.Shape.DType = out.DType
	out.Layout = layout.Unary(operand.Layout)
	return out, nil
}

// DescribeUnary builds the Transformation for a unary op.
func DescribeUnary(op optypes.OpType, operand storage.TensorStorage) (storage.Transformation, error) {
	out, err := OutputUnary(op, operand)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(op, out, operand), nil
}
