package shape

import (
	"testing"

	"github.com/gomlx/tensorshape/dtype"
)

func s(dims ...int) Shape { return Make(dtype.Float32, dims...) }

func TestBroadcast(t *testing.T) {
	type testCase struct {
		name string
		a, b Shape
		expected Shape
		wantErr bool
	}
	testCases := []testCase{
		{name: "same shape", a: s(2, 3), b: s(2, 3), expected: s(2, 3)},
		{name: "scalar with vector", a: s(), b: s(5), expected: s(5)},
		{name: "right-aligned padding", a: s(3, 1, 5), b: s(4, 5), expected: s(3, 4, 5)},
		{name: "one broadcasts", a: s(1, 5), b: s(3, 5), expected: s(3, 5)},
		{name: "zero wins over one", a: s(0, 5), b: s(1, 5), expected: s(0, 5)},
		{name: "zero and zero", a: s(0), b: s(0), expected: s(0)},
		{name: "incompatible", a: s(2, 5), b: s(3, 5), wantErr: true},
		{name: "zero vs non-one-non-zero", a: s(0), b: s(3), wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Broadcast(tc.a, tc.b)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error broadcasting %s and %s, got none", tc.a, tc.b)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("Broadcast(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestBroadcastAll(t *testing.T) {
	got, err := BroadcastAll(s(1, 5), s(3, 1), s(3, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(s(3, 5)) {
		t.Errorf("got %s, want %s", got, s(3, 5))
	}

	if _, err := BroadcastAll(); err == nil {
		t.Error("expected error for empty BroadcastAll, got none")
	}
}
