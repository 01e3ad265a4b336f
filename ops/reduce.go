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

// ReductionOps is the set of reduction ops this package implements.
var ReductionOps = utils.SetWith(optypes.Sum, optypes.Mean, optypes.ReduceMax, optypes.ReduceMin, optypes.Prod)

// OutputReduce computes the output storage for a reduction. sum/max/min/
// prod preserve the input dtype; mean applies to_float.
func OutputReduce(op optypes.OpType, input storage.TensorStorage, axes []int, keepDims bool) (storage.TensorStorage, error) {
	if !ReductionOps.Has(op) {
		return storage.TensorStorage{}, errors.Errorf("%s is not a reduction operation", op)
	}
	outShape, err := shape.Reduce(input.Shape, axes, keepDims)
	if err != nil {
		return storage.TensorStorage{}, err
	}
	if op == optypes.Mean {
		outShape.DType = dtype.ToFloat(input.DType)
	}

	out := storage.Fresh(outShape)
	out.Layout = layout.Reduction(input.Layout)
	return out, nil
}

// DescribeReduce builds the Transformation for a reduction, attaching the
// axes and keep_dims attributes.
func DescribeReduce(op optypes.OpType, input storage.TensorStorage, axes []int, keepDims bool) (storage.Transformation, error) {
	out, err := OutputReduce(op, input, axes, keepDims)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(op, out, input).
		WithAttr("axes", append([]int(nil), axes...)).
		WithAttr("keep_dims", keepDims), nil
}
