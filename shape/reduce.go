package shape

// Reduce computes the output shape for a reduction over axes (sum, mean,
// max, min, prod;). A nil axes slice means "reduce all axes".
// Negative axes are normalized with AdjustAxisToRank; duplicates (after
// normalization) are rejected.
func Reduce(in Shape, axes []int, keepDims bool) (Shape, error) {
	rank := in.Rank()

	var reduced []int
	if axes == nil {
		reduced = make([]int, rank)
		for i := range reduced {
			reduced[i] = i
		}
	} else {
		seen := make(map[int]bool, len(axes))
		reduced = make([]int, len(axes))
		for i, axis := range axes {
			adjusted, err := AdjustAxisToRank(axis, rank)
			if err != nil {
				return Invalid(), err
			}
			if seen[adjusted] {
				return Invalid(), newAxisError(AxisDuplicate, axis, "axis %d is repeated in reduction axes %v", axis, axes)
			}
			seen[adjusted] = true
			reduced[i] = adjusted
		}
	}

	isReduced := make([]bool, rank)
	for _, a := range reduced {
		isReduced[a] = true
	}

	var dims []int
	for i, d := range in.Dimensions {
		if !isReduced[i] {
			dims = append(dims, d)
			continue
		}
		if keepDims {
			dims = append(dims, 1)
		}
	}
	return Shape{DType: in.DType, Dimensions: dims}, nil
}
