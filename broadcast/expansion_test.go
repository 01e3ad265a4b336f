package broadcast

import (
	"testing"

	"github.com/gomlx/tensorshape/shape"
)

func TestExpansionsBroadcastAxisIsZeroStride(t *testing.T) {
	out := s(3, 4)
	exps := Expansions([]shape.Shape{s(1, 4), s(3, 4)}, out)

	if exps[0].Strides[0] != 0 {
		t.Errorf("expected broadcast axis stride 0 for first input, got %v", exps[0].Strides)
	}
	if exps[0].Strides[1] != 1 {
		t.Errorf("expected non-broadcast axis stride 1 for first input, got %v", exps[0].Strides)
	}
	if exps[1].Strides[0] != 4 || exps[1].Strides[1] != 1 {
		t.Errorf("expected row-major strides for second (non-broadcast) input, got %v", exps[1].Strides)
	}
}

func TestIteratorCoversEveryOutputPosition(t *testing.T) {
	out := s(2, 3)
	exps := Expansions([]shape.Shape{s(1, 3)}, out)
	it := NewIterator(out, exps)

	count := 0
	seen := map[int]int{}
	for {
		indices, ok := it.Next()
		if !ok {
			break
		}
		seen[indices[0]]++
		count++
	}
	if count != 6 {
		t.Errorf("expected 6 output positions, got %d", count)
	}
	for idx := 0; idx < 3; idx++ {
		if seen[idx] != 2 {
			t.Errorf("expected input index %d to be visited twice (once per broadcast row), got %d", idx, seen[idx])
		}
	}
}

func TestIteratorScalarShape(t *testing.T) {
	out := s()
	it := NewIterator(out, nil)
	_, ok := it.Next()
	if !ok {
		t.Fatal("expected one position for a scalar output")
	}
	_, ok = it.Next()
	if ok {
		t.Error("expected iterator to be exhausted after one position for a scalar output")
	}
}
