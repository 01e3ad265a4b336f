package shape

// Transpose swaps the last two axes of in. It is the zero-argument form of
// Permute ("default transpose swaps the last two axes").
func Transpose(in Shape) (Shape, error) {
	rank := in.Rank()
	if rank < 2 {
		return Invalid(), newError(AxisOutOfRange, "transpose requires rank >= 2, got %s", in)
	}
	perm := make([]int, rank)
	for i := range perm {
		perm[i] = i
	}
	perm[rank-2], perm[rank-1] = perm[rank-1], perm[rank-2]
	return Permute(in, perm)
}

// Permute reorders in's axes according to perm, which must be a bijection
// over [0, rank).
func Permute(in Shape, perm []int) (Shape, error) {
	rank := in.Rank()
	if len(perm) != rank {
		return Invalid(), newError(PatternRankMismatch,
			"permutation %v has length %d, expected rank %d", perm, len(perm), rank)
	}
	seen := make([]bool, rank)
	dims := make([]int, rank)
	for i, axis := range perm {
		adjusted, err := AdjustAxisToRank(axis, rank)
		if err != nil {
			return Invalid(), err
		}
		if seen[adjusted] {
			return Invalid(), newAxisError(AxisDuplicate, axis, "permutation %v is not a bijection: axis %d repeats", perm, axis)
		}
		seen[adjusted] = true
		dims[i] = in.Dimensions[adjusted]
	}
	return Shape{DType: in.DType, Dimensions: dims}, nil
}
