package tensorshape

import (
	"testing"

	"github.com/gomlx/tensorshape/dtype"
	"github.com/gomlx/tensorshape/shape"
)

func TestNewBuildsCContiguousStorage(t *testing.T) {
	s, err := New(dtype.Float32, 2, 3, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Layout.CContiguous.IsTrue() {
		t.Error("expected a fresh tensor to be C-contiguous")
	}
	if s.Size != 24 {
		t.Errorf("Size = %d, want 24", s.Size)
	}
}

func TestNewRejectsOversizedRank(t *testing.T) {
	dims := make([]int, 20)
	for i := range dims {
		dims[i] = 1
	}
	if _, err := New(dtype.Float32, dims...); ClassifierOf(err) != shape.RankOverflow {
		t.Error("expected a RankOverflow classified error")
	}
}

func TestUnaryThroughFacade(t *testing.T) {
	in, err := New(dtype.Float32, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tr, err := Unary(OpNeg, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Op != OpNeg {
		t.Errorf("Op = %v, want OpNeg", tr.Op)
	}
}

func TestMatMulThroughFacade(t *testing.T) {
	a, _ := New(dtype.Float32, 2, 3)
	b, _ := New(dtype.Float32, 3, 4)
	tr, err := MatMul(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{2, 4}
	for i, d := range want {
		if tr.Output.Shape.Dimensions[i] != d {
			t.Errorf("dim %d = %d, want %d", i, tr.Output.Shape.Dimensions[i], d)
		}
	}
}

func TestRearrangeThroughFacade(t *testing.T) {
	in, _ := New(dtype.Float32, 4, 5, 3)
	tr, err := Rearrange("h w c -> c h w", in, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{3, 4, 5}
	for i, d := range want {
		if tr.Output.Shape.Dimensions[i] != d {
			t.Errorf("dim %d = %d, want %d", i, tr.Output.Shape.Dimensions[i], d)
		}
	}
}
