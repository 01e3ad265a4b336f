package shape

// MatMul computes the output shape for matrix multiplication between a and
// b, following cases for rank-1 operands and the general
// batched case. The dtype of the inputs is assumed already reconciled by
// the caller (the ops catalog runs dtype.Promote separately); the output
// dtype here is taken from a.
func MatMul(a, b Shape) (Shape, error) {
	if a.Rank() == 0 || b.Rank() == 0 {
		return Invalid(), newError(ShapeMatmulInner, "matmul operands must have rank >= 1, got %s and %s", a, b)
	}

	switch {
	case a.Rank() == 1 && b.Rank() == 1:
		if a.Dimensions[0] != b.Dimensions[0] {
			return Invalid(), newError(ShapeMatmulInner,
				"matmul inner dimensions don't match: %s and %s", a, b)
		}
		return Shape{DType: a.DType}, nil

	case a.Rank() == 1 && b.Rank() >= 2:
		innerB := b.Dimensions[len(b.Dimensions)-2]
		if a.Dimensions[0] != innerB {
			return Invalid(), newError(ShapeMatmulInner,
				"matmul inner dimensions don't match: %s and %s", a, b)
		}
		out := append([]int(nil), b.Dimensions[:len(b.Dimensions)-2]...)
		out = append(out, b.Dimensions[len(b.Dimensions)-1])
		return Shape{DType: a.DType, Dimensions: out}, nil

	case a.Rank() >= 2 && b.Rank() == 1:
		innerA := a.Dimensions[len(a.Dimensions)-1]
		if innerA != b.Dimensions[0] {
			return Invalid(), newError(ShapeMatmulInner,
				"matmul inner dimensions don't match: %s and %s", a, b)
		}
		out := append([]int(nil), a.Dimensions[:len(a.Dimensions)-1]...)
		return Shape{DType: a.DType, Dimensions: out}, nil

	default:
		innerA := a.Dimensions[len(a.Dimensions)-1]
		innerB := b.Dimensions[len(b.Dimensions)-2]
		if innerA != innerB {
			return Invalid(), newError(ShapeMatmulInner,
				"matmul inner dimensions don't match: last axis of %s (%d) vs second-to-last of %s (%d)",
				a, innerA, b, innerB)
		}
		batchA := Shape{DType: a.DType, Dimensions: a.Dimensions[:len(a.Dimensions)-2]}
		batchB := Shape{DType: b.DType, Dimensions: b.Dimensions[:len(b.Dimensions)-2]}
		batch, err := Broadcast(batchA, batchB)
		if err != nil {
			return Invalid(), newError(ShapeMatmulBatch,
				"matmul batch dimensions are not broadcast-compatible: %s and %s: %v", batchA, batchB, err)
		}
		out := append(append([]int(nil), batch.Dimensions...),
			a.Dimensions[len(a.Dimensions)-2], b.Dimensions[len(b.Dimensions)-1])
		return Shape{DType: a.DType, Dimensions: out}, nil
	}
}
