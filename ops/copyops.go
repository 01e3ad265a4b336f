package ops

import (
	"github.com/gomlx/tensorshape/internal/optypes"
	"github.com/gomlx/tensorshape/layout"
	"github.com/gomlx/tensorshape/shape"
	"github.com/gomlx/tensorshape/storage"
)

// OutputExpand computes the output storage for an expand: a broadcast-
// style view, never a copy.
func OutputExpand(input storage.TensorStorage, target []int) (storage.TensorStorage, error) {
	outShape, err := shape.Expand(input.Shape, target)
	if err != nil {
		return storage.TensorStorage{}, err
	}
	return storage.TensorStorage{
		DType: outShape.DType,
		Shape: outShape,
		Strides: expandStrides(input, target),
		Size: outShape.Size(),
		Layout: layout.Expand(input.Layout),
		Offset: input.Offset,
	}, nil
}

// DescribeExpand builds the Transformation for expand, attaching the
// target shape so the executor doesn't recompute the broadcast.
func DescribeExpand(input storage.TensorStorage, target []int) (storage.Transformation, error) {
	out, err := OutputExpand(input, target)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.Expand, out, input).
		WithAttr("target_shape", append([]int(nil), target...)), nil
}

// expandStrides computes a virtual stride vector for an expand view: any
// axis whose input dimension was 1 but whose target dimension is larger
// gets stride 0 (the broadcast axis reuses the same element), matching
// the broadcast/ package's "virtual stride of 0" contract.
func expandStrides(input storage.TensorStorage, target []int) []int {
	offset := len(target) - input.Shape.Rank()
	strides := make([]int, len(target))
	for i := range target {
		if i < offset {
			strides[i] = 0
			continue
		}
		inDim := input.Shape.Dimensions[i-offset]
		if inDim == 1 && target[i] != 1 {
			strides[i] = 0
			continue
		}
		strides[i] = input.Strides[i-offset]
	}
	return strides
}

// OutputTile computes the output storage for a tile: a copy-style repeat,
// always materialized fresh, unlike expand's view semantics.
func OutputTile(input storage.TensorStorage, reps []int) (storage.TensorStorage, error) {
	outShape, err := shape.Tile(input.Shape, reps)
	if err != nil {
		return storage.TensorStorage{}, err
	}
	out := storage.Fresh(outShape)
	out.Layout = layout.Tile()
	return out, nil
}

// DescribeTile builds the Transformation for tile, attaching reps.
func DescribeTile(input storage.TensorStorage, reps []int) (storage.Transformation, error) {
	out, err := OutputTile(input, reps)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.Tile, out, input).
		WithAttr("reps", append([]int(nil), reps...)), nil
}
