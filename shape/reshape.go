package shape

// InferredDim is the sentinel value used in a reshape/view target to mean
// "infer this dimension from the total size". Reshape resolves it to a
// concrete value before the result reaches storage.
const InferredDim = -1

// Reshape validates and computes the output shape for a reshape/view
// operation: Π from == Π to, with at most one InferredDim entry in target,
// inferred as Π from / Π(known targets) when that quotient is integral.
func Reshape(from Shape, target []int) (Shape, error) {
	fromSize := from.Size()

	inferredAxis := -1
	knownProduct := 1
	for i, d := range target {
		if d == InferredDim {
			if inferredAxis != -1 {
				return Invalid(), newError(ShapeReshape,
					"reshape target %v has more than one inferred (-1) dimension", target)
			}
			inferredAxis = i
			continue
		}
		if d < 0 {
			return Invalid(), newAxisError(ShapeReshape, i, "reshape target dimension %d at axis %d is negative", d, i)
		}
		knownProduct *= d
	}

	resolved := append([]int(nil), target...)
	if inferredAxis != -1 {
		if knownProduct == 0 || fromSize%knownProduct != 0 {
			return Invalid(), newError(ShapeReshape,
				"cannot infer dimension for reshape of size %d into %v: %d does not divide evenly",
				fromSize, target, knownProduct)
		}
		resolved[inferredAxis] = fromSize / knownProduct
	}

	out := Shape{DType: from.DType, Dimensions: resolved}
	if out.Size() != fromSize {
		return Invalid(), newError(ShapeReshape,
			"cannot reshape %s (size %d) into %v (size %d)", from, fromSize, target, out.Size())
	}
	return out, nil
}
