package einops

import (
	"github.com/gomlx/tensorshape/internal/optypes"
	"github.com/gomlx/tensorshape/layout"
	"github.com/gomlx/tensorshape/shape"
	"github.com/gomlx/tensorshape/storage"
)

// Repeat computes the output storage for an einops repeat: new identifiers
// may appear on the output side as long as axesMap gives them a size; no
// input identifier may be dropped (repeat performs no reduction).
func Repeat(pattern string, input storage.TensorStorage, axesMap map[string]int) (storage.TensorStorage, error) {
	p, err := Parse(pattern)
	if err != nil {
		return storage.TensorStorage{}, err
	}

	bindings, ellipsisDims, err := MatchInput(p.Input, input.Shape.Dimensions, axesMap)
	if err != nil {
		return storage.TensorStorage{}, err
	}

	inputNames := IdentifierSet(p.Input)
	outputNames := IdentifierSet(p.Output)
	for name := range inputNames {
		if !outputNames[name] {
			return storage.TensorStorage{}, shape.NewError(shape.UnknownAxisInOutput,
				"repeat pattern %q drops input identifier %q; repeat performs no reduction", pattern, name)
		}
	}

	dims, err := EmitOutput(p.Output, bindings, ellipsisDims, axesMap, true)
	if err != nil {
		return storage.TensorStorage{}, err
	}

	outShape := shape.Make(input.DType, dims...)
	out := storage.Fresh(outShape)
	out.Layout = layout.EinopsReduceRepeat()
	return out, nil
}

// DescribeRepeat builds the Transformation for an einops repeat, attaching
// the source pattern and the explicit axis sizes used for new identifiers.
func DescribeRepeat(pattern string, input storage.TensorStorage, axesMap map[string]int) (storage.Transformation, error) {
	out, err := Repeat(pattern, input, axesMap)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.Repeat, out, input).
		WithAttr("pattern", pattern).
		WithAttr("axes", cloneAxesMap(axesMap)), nil
}
