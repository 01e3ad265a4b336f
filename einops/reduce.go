package einops

import (
	"github.com/pkg/errors"

	"github.com/gomlx/tensorshape/dtype"
	"github.com/gomlx/tensorshape/internal/optypes"
	"github.com/gomlx/tensorshape/internal/utils"
	"github.com/gomlx/tensorshape/layout"
	"github.com/gomlx/tensorshape/shape"
	"github.com/gomlx/tensorshape/storage"
)

// ReduceOps is the set of reduction operations an einops reduce pattern may
// request (reduce rule), matching the op tags of ops.ReductionOps.
var ReduceOps = utils.SetWith(optypes.Sum, optypes.Mean, optypes.ReduceMax, optypes.ReduceMin, optypes.Prod)

// Reduce computes the output storage for an einops reduce: every output
// identifier must appear on the input; every input identifier missing from
// the output is reduced over using op.
func Reduce(op optypes.OpType, pattern string, input storage.TensorStorage, axesMap map[string]int, keepDims bool) (storage.TensorStorage, error) {
	if !ReduceOps.Has(op) {
		return storage.TensorStorage{}, errors.Errorf("%s is not a reduction operation usable by einops reduce", op)
	}

	p, err := Parse(pattern)
	if err != nil {
		return storage.TensorStorage{}, err
	}

	bindings, ellipsisDims, err := MatchInput(p.Input, input.Shape.Dimensions, axesMap)
	if err != nil {
		return storage.TensorStorage{}, err
	}

	outputNames := IdentifierSet(p.Output)
	for name := range outputNames {
		if _, ok := bindings[name]; !ok {
			return storage.TensorStorage{}, shape.NewError(shape.UnknownAxisInOutput,
				"reduce pattern %q output identifier %q does not appear on the input side", pattern, name)
		}
	}

	dims, err := EmitOutput(p.Output, bindings, ellipsisDims, axesMap, false)
	if err != nil {
		return storage.TensorStorage{}, err
	}

	outDType := input.DType
	if op == optypes.Mean {
		outDType = dtype.ToFloat(input.DType)
	}
	outShape := shape.Make(outDType, dims...)
	out := storage.Fresh(outShape)
	out.Layout = layout.EinopsReduceRepeat()
	return out, nil
}

// DescribeReduce builds the Transformation for an einops reduce, attaching
// the source pattern, keep_dims, and any explicit axis sizes.
func DescribeReduce(op optypes.OpType, pattern string, input storage.TensorStorage, axesMap map[string]int, keepDims bool) (storage.Transformation, error) {
	out, err := Reduce(op, pattern, input, axesMap, keepDims)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.EinopsReduce, out, input).
		WithAttr("pattern", pattern).
		WithAttr("reduce_op", op.Tag()).
		WithAttr("keep_dims", keepDims).
		WithAttr("axes", cloneAxesMap(axesMap)), nil
}
