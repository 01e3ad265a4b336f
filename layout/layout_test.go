package layout

import "testing"

func TestCStrides(t *testing.T) {
	type testCase struct {
		name string
		dims []int
		expected []int
	}
	testCases := []testCase{
		{name: "3d", dims: []int{2, 3, 4}, expected: []int{12, 4, 1}},
		{name: "1d", dims: []int{5}, expected: []int{1}},
		{name: "scalar", dims: []int{}, expected: []int{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CStrides(tc.dims)
			if !intsEqual(got, tc.expected) {
				t.Errorf("CStrides(%v) = %v, want %v", tc.dims, got, tc.expected)
			}
		})
	}
}

func TestFStrides(t *testing.T) {
	got := FStrides([]int{2, 3, 4})
	want := []int{1, 2, 6}
	if !intsEqual(got, want) {
		t.Errorf("FStrides = %v, want %v", got, want)
	}
}

func TestIsCContiguous(t *testing.T) {
	if !IsCContiguous([]int{2, 3}, []int{3, 1}) {
		t.Error("expected C-contiguous strides to be recognized")
	}
	if IsCContiguous([]int{2, 3}, []int{1, 2}) {
		t.Error("expected non-C-contiguous strides to be rejected")
	}
	if !IsCContiguous([]int{0, 3}, []int{99, 1}) {
		t.Error("expected zero-size shape to be trivially contiguous")
	}
	if !IsCContiguous([]int{1, 1}, []int{0, 0}) {
		t.Error("expected all-dims-<=1 shape to be trivially contiguous")
	}
}

func TestReshapeGuard(t *testing.T) {
	if err := ReshapeGuard([]int{2, 3}, CStrides([]int{2, 3})); err != nil {
		t.Errorf("unexpected error for contiguous reshape: %v", err)
	}
	if err := ReshapeGuard([]int{2, 3}, []int{1, 2}); err == nil {
		t.Error("expected error reshaping a non-contiguous tensor")
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
