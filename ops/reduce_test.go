package ops

import (
	"testing"

	"github.com/gomlx/tensorshape/dtype"
	"github.com/gomlx/tensorshape/internal/optypes"
	"github.com/gomlx/tensorshape/shape"
	"github.com/gomlx/tensorshape/storage"
)

func TestOutputReduceSumPreservesDType(t *testing.T) {
	in := storage.Fresh(shape.Make(dtype.Int32, 2, 3, 4))
	out, err := OutputReduce(optypes.Sum, in, []int{1}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DType != dtype.Int32 {
		t.Errorf("DType = %s, want Int32", out.DType)
	}
	if !out.Shape.Equal(shape.Make(dtype.Int32, 2, 4)) {
		t.Errorf("Shape = %s, want Int32[2,4]", out.Shape)
	}
}

func TestOutputReduceMeanUsesToFloat(t *testing.T) {
	in := storage.Fresh(shape.Make(dtype.Int32, 2, 3))
	out, err := OutputReduce(optypes.Mean, in, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DType != dtype.ToFloat(dtype.Int32) {
		t.Errorf("DType = %s, want %s", out.DType, dtype.ToFloat(dtype.Int32))
	}
}

func TestOutputReduceKeepDims(t *testing.T) {
	in := st(2, 3, 4)
	out, err := OutputReduce(optypes.ReduceMax, in, []int{1}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Shape.Equal(shape.Make(dtype.Float32, 2, 1, 4)) {
		t.Errorf("Shape = %s, want Float32[2,1,4]", out.Shape)
	}
}
