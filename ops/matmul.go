package ops

import (
	"github.com/pkg/errors"

	"github.com/gomlx/tensorshape/dtype"
	"github.com/gomlx/tensorshape/internal/optypes"
	"github.com/gomlx/tensorshape/layout"
	"github.com/gomlx/tensorshape/shape"
	"github.com/gomlx/tensorshape/storage"
)

// ValidateMatMul checks operand dtypes and delegates shape validity to
// shape.MatMul.
func ValidateMatMul(lhs, rhs storage.TensorStorage) error {
	if lhs.DType == dtype.Invalid || rhs.DType == dtype.Invalid {
		return errors.New("invalid dtype for matmul operand")
	}
	_, err := shape.MatMul(lhs.Shape, rhs.Shape)
	return errors.Wrap(err, "matmul")
}

// OutputMatMul computes the output storage for matmul. The batch-
// broadcasting layer is symmetric (shape.MatMul/shape.Broadcast) and the
// result is always canonical C-order.
func OutputMatMul(lhs, rhs storage.TensorStorage) (storage.TensorStorage, error) {
	outShape, err := shape.MatMul(lhs.Shape, rhs.Shape)
	if err != nil {
		return storage.TensorStorage{}, errors.Wrap(err, "matmul")
	}
	outShape.DType = dtype.Promote(lhs.DType, rhs.DType)

	out := storage.Fresh(outShape)
	out.Layout = layout.MatMul()
	return out, nil
}

// DescribeMatMul builds the Transformation for matmul.
func DescribeMatMul(lhs, rhs storage.TensorStorage) (storage.Transformation, error) {
	out, err := OutputMatMul(lhs, rhs)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.MatMul, out, lhs, rhs), nil
}
