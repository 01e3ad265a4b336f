package ops

import (
	"testing"

	"github.com/gomlx/tensorshape/dtype"
	"github.com/gomlx/tensorshape/shape"
	"github.com/gomlx/tensorshape/storage"
)

func TestOutputMatMul(t *testing.T) {
	lhs := storage.Fresh(shape.Make(dtype.Float32, 2, 3, 4))
	rhs := storage.Fresh(shape.Make(dtype.Float32, 2, 4, 5))
	out, err := OutputMatMul(lhs, rhs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Shape.Equal(shape.Make(dtype.Float32, 2, 3, 5)) {
		t.Errorf("Shape = %s, want Float32[2,3,5]", out.Shape)
	}
	if !out.Layout.CContiguous.IsTrue() {
		t.Error("matmul output must be C-contiguous")
	}
}

func TestOutputMatMulDTypePromotion(t *testing.T) {
	lhs := storage.Fresh(shape.Make(dtype.Int32, 3, 4))
	rhs := storage.Fresh(shape.Make(dtype.Float32, 4, 5))
	out, err := OutputMatMul(lhs, rhs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DType != dtype.Promote(dtype.Int32, dtype.Float32) {
		t.Errorf("DType = %s, want %s", out.DType, dtype.Promote(dtype.Int32, dtype.Float32))
	}
}
