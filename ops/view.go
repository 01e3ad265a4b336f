package ops

import (
	"github.com/gomlx/tensorshape/internal/optypes"
	"github.com/gomlx/tensorshape/layout"
	"github.com/gomlx/tensorshape/shape"
	"github.com/gomlx/tensorshape/storage"
)

// OutputReshape computes the output storage for reshape/view. It enforces
// the layout guard first: reshaping a non-contiguous tensor must fail
// (single most-tested layout contract). The guard only clears a
// C-contiguous source, so the result is always recomputed in canonical
// C-order strides.
func OutputReshape(input storage.TensorStorage, target []int) (storage.TensorStorage, error) {
	if err := layout.ReshapeGuard(input.Shape.Dimensions, input.Strides); err != nil {
		return storage.TensorStorage{}, err
	}
	outShape, err := shape.Reshape(input.Shape, target)
	if err != nil {
		return storage.TensorStorage{}, err
	}
	return storage.TensorStorage{
		DType: outShape.DType,
		Shape: outShape,
		Strides: layout.CStrides(outShape.Dimensions),
		Size: outShape.Size(),
		Layout: layout.ReshapeView(input.Layout),
		Offset: input.Offset,
	}, nil
}

// DescribeReshape builds the Transformation for reshape, attaching the
// target shape so the executor never re-infers the -1 dimension.
func DescribeReshape(input storage.TensorStorage, target []int) (storage.Transformation, error) {
	out, err := OutputReshape(input, target)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.Reshape, out, input).
		WithAttr("target_shape", append([]int(nil), out.Shape.Dimensions...)), nil
}

// OutputFlatten reshapes input down to a single dimension.
func OutputFlatten(input storage.TensorStorage) (storage.TensorStorage, error) {
	return OutputReshape(input, []int{shape.InferredDim})
}

// DescribeFlatten builds the Transformation for flatten.
func DescribeFlatten(input storage.TensorStorage) (storage.Transformation, error) {
	out, err := OutputFlatten(input)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.Flatten, out, input), nil
}

// OutputSqueeze computes the output storage for squeeze. axes == nil
// means "remove every size-1 dimension".
func OutputSqueeze(input storage.TensorStorage, axes []int) (storage.TensorStorage, error) {
	outShape, err := shape.Squeeze(input.Shape, axes)
	if err != nil {
		return storage.TensorStorage{}, err
	}
	return viewStorage(input, outShape, layout.SqueezeUnsqueeze(input.Layout)), nil
}

// DescribeSqueeze builds the Transformation for squeeze.
func DescribeSqueeze(input storage.TensorStorage, axes []int) (storage.Transformation, error) {
	out, err := OutputSqueeze(input, axes)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.Squeeze, out, input).
		WithAttr("axes", append([]int(nil), axes...)), nil
}

// OutputUnsqueeze computes the output storage for unsqueeze at axis.
func OutputUnsqueeze(input storage.TensorStorage, axis int) (storage.TensorStorage, error) {
	outShape, err := shape.Unsqueeze(input.Shape, axis)
	if err != nil {
		return storage.TensorStorage{}, err
	}
	return viewStorage(input, outShape, layout.SqueezeUnsqueeze(input.Layout)), nil
}

// DescribeUnsqueeze builds the Transformation for unsqueeze.
func DescribeUnsqueeze(input storage.TensorStorage, axis int) (storage.Transformation, error) {
	out, err := OutputUnsqueeze(input, axis)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.Unsqueeze, out, input).WithAttr("axis", axis), nil
}

// OutputTranspose computes the output storage for the default transpose
// (last two axes swapped).
func OutputTranspose(input storage.TensorStorage) (storage.TensorStorage, error) {
	outShape, err := shape.Transpose(input.Shape)
	if err != nil {
		return storage.TensorStorage{}, err
	}
	return transposedStorage(input, outShape, defaultPerm(input.Shape.Rank()))
}

// DescribeTranspose builds the Transformation for the default transpose.
func DescribeTranspose(input storage.TensorStorage) (storage.Transformation, error) {
	out, err := OutputTranspose(input)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.Transpose, out, input).
		WithAttr("axes", defaultPerm(input.Shape.Rank())), nil
}

// OutputPermute computes the output storage for an explicit permutation.
func OutputPermute(input storage.TensorStorage, perm []int) (storage.TensorStorage, error) {
	outShape, err := shape.Permute(input.Shape, perm)
	if err != nil {
		return storage.TensorStorage{}, err
	}
	return transposedStorage(input, outShape, perm)
}

// DescribePermute builds the Transformation for permute.
func DescribePermute(input storage.TensorStorage, perm []int) (storage.Transformation, error) {
	out, err := OutputPermute(input, perm)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.Permute, out, input).
		WithAttr("axes", append([]int(nil), perm...)), nil
}

// OutputSlice computes the output storage for a per-axis slice.
func OutputSlice(input storage.TensorStorage, indices []shape.SliceIndex) (storage.TensorStorage, error) {
	outShape, err := shape.Slice(input.Shape, indices)
	if err != nil {
		return storage.TensorStorage{}, err
	}
	return viewStorage(input, outShape, layout.Slice(input.Layout)), nil
}

// DescribeSlice builds the Transformation for slice, attaching the
// original per-axis indices so the executor never re-derives them.
func DescribeSlice(input storage.TensorStorage, indices []shape.SliceIndex) (storage.Transformation, error) {
	out, err := OutputSlice(input, indices)
	if err != nil {
		return storage.Transformation{}, err
	}
	return storage.NewTransformation(optypes.Slice, out, input).
		WithAttr("indices", append([]shape.SliceIndex(nil), indices...)), nil
}

// viewStorage builds the output TensorStorage for a view op that doesn't
// reorder axes: strides are recomputed C-order for the new shape (a
// materialization-free view over contiguous input would instead slice the
// existing stride vector, left to the executor, which owns the buffer).
func viewStorage(input storage.TensorStorage, outShape shape.Shape, flags layout.Flags) storage.TensorStorage {
	return storage.TensorStorage{
		DType: outShape.DType,
		Shape: outShape,
		Strides: layout.CStrides(outShape.Dimensions),
		Size: outShape.Size(),
		Layout: flags,
		Offset: input.Offset,
	}
}

func defaultPerm(rank int) []int {
	perm := make([]int, rank)
	for i := range perm {
		perm[i] = i
	}
	if rank >= 2 {
		perm[rank-2], perm[rank-1] = perm[rank-1], perm[rank-2]
	}
	return perm
}

func transposedStorage(input storage.TensorStorage, outShape shape.Shape, perm []int) (storage.TensorStorage, error) {
	strides := make([]int, len(perm))
	for i, axis := range perm {
		adjusted, err := shape.AdjustAxisToRank(axis, input.Shape.Rank())
		if err != nil {
			return storage.TensorStorage{}, err
		}
		strides[i] = input.Strides[adjusted]
	}
	return storage.TensorStorage{
		DType: outShape.DType,
		Shape: outShape,
		Strides: strides,
		Size: outShape.Size(),
		Layout: layout.TransposePermute(input.Layout),
		Offset: input.Offset,
	}, nil
}

