package einops

import (
	"github.com/gomlx/tensorshape/internal/optypes"
	"github.com/gomlx/tensorshape/layout"
	"github.com/gomlx/tensorshape/shape"
	"github.com/gomlx/tensorshape/storage"
)

// Rearrange computes the output storage for a pure reindexing: every
// identifier on the pattern's output side must also appear on its input
// side, and vice versa, since rearrange performs no reduction (spec.md
// §4.6's rearrange rule).
func Rearrange(pattern string, input storage.TensorStorage, axesMap map[string]int) (storage.TensorStorage, error) {
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
				"rearrange pattern %q drops input identifier %q; use reduce for that", pattern, name)
		}
	}

	dims, err := EmitOutput(p.Output, bindings, ellipsisDims, axesMap, false)
	if err != nil {
		return storage.TensorStorage{}, err
	}

	outShape := shape.Make(input.DType, dims...)
	out := storage.Fresh(outShape)
	out.Layout = layout.EinopsRearrange(input.Layout)
	return out, nil
}

// DescribeRearrange builds the Transformation for a rearrange, attaching
// the source pattern string and any explicit axis sizes.
func DescribeRearrange(pattern string, input storage.TensorStorage, axesMap map[string]int) (storage.Transformation, error) {
	out, err := Rearrange(pattern, input, axesMap)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.Rearrange, out, input).
		WithAttr("pattern", pattern).
		WithAttr("axes", cloneAxesMap(axesMap)), nil
}

func cloneAxesMap(m map[string]int) map[string]int {
	clone := make(map[string]int, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}
