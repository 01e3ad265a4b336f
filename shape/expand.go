package shape

// ExpandKeep is the target-dimension sentinel meaning "keep the input's
// dimension unchanged" (Expand).
const ExpandKeep = -1

// Expand computes the output shape for a broadcast-style view expansion:
// target must have rank >= in's rank, with extra leading dims added. For
// each aligned position, target dim must equal the input dim, or the input
// dim must be 1 (virtually repeated), or target dim is ExpandKeep.
func Expand(in Shape, target []int) (Shape, error) {
	if len(target) < in.Rank() {
		return Invalid(), newError(ExpandNonSingleton,
			"expand target rank %d is smaller than input rank %d", len(target), in.Rank())
	}

	offset := len(target) - in.Rank()
	dims := make([]int, len(target))
	for i, t := range target {
		if i < offset {
			if t < 0 {
				return Invalid(), newAxisError(ExpandNonSingleton, i,
					"expand target at new leading axis %d must be concrete, got %d", i, t)
			}
			dims[i] = t
			continue
		}
		inDim := in.Dimensions[i-offset]
		switch {
		case t == ExpandKeep:
			dims[i] = inDim
		case t == inDim:
			dims[i] = t
		case inDim == 1:
			dims[i] = t
		default:
			return Invalid(), newAxisError(ExpandNonSingleton, i,
				"cannot expand axis %d of size %d to %d: input dim is neither 1 nor equal", i, inDim, t)
		}
	}
	return Shape{DType: in.DType, Dimensions: dims}, nil
}
