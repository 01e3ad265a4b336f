package shape

// Squeeze removes size-1 dimensions. With no axes given, every size-1
// dimension is removed; with explicit axes, each named axis must have
// size 1, or the call fails.
func Squeeze(in Shape, axes []int) (Shape, error) {
	rank := in.Rank()

	if axes == nil {
		var dims []int
		for _, d := range in.Dimensions {
			if d != 1 {
				dims = append(dims, d)
			}
		}
		return Shape{DType: in.DType, Dimensions: dims}, nil
	}

	toRemove := make([]bool, rank)
	for _, axis := range axes {
		adjusted, err := AdjustAxisToRank(axis, rank)
		if err != nil {
			return Invalid(), err
		}
		if in.Dimensions[adjusted] != 1 {
			return Invalid(), newAxisError(SqueezeNonUnit, axis,
				"cannot squeeze axis %d of %s: size is %d, not 1", axis, in, in.Dimensions[adjusted])
		}
		toRemove[adjusted] = true
	}

	var dims []int
	for i, d := range in.Dimensions {
		if !toRemove[i] {
			dims = append(dims, d)
		}
	}
	return Shape{DType: in.DType, Dimensions: dims}, nil
}

// Unsqueeze inserts a size-1 dimension at axis, which may be negative and
// is resolved against the output rank (rank(in)+1), since Unsqueeze axes
// address the post-insertion shape.
func Unsqueeze(in Shape, axis int) (Shape, error) {
	outRank := in.Rank() + 1
	adjusted, err := AdjustAxisToRank(axis, outRank)
	if err != nil {
		return Invalid(), err
	}
	dims := make([]int, 0, outRank)
	dims = append(dims, in.Dimensions[:adjusted]...)
	dims = append(dims, 1)
	dims = append(dims, in.Dimensions[adjusted:]...)
	return Shape{DType: in.DType, Dimensions: dims}, nil
}
