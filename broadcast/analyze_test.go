package broadcast

import (
	"testing"

	"github.com/gomlx/tensorshape/dtype"
	"github.com/gomlx/tensorshape/shape"
)

func s(dims ...int) shape.Shape { return shape.Make(dtype.Float32, dims...) }

func TestAnalyze(t *testing.T) {
	type testCase struct {
		name string
		shapes []shape.Shape
		expected Strategy
	}
	testCases := []testCase{
		{name: "all scalars", shapes: []shape.Shape{s(), s()}, expected: Scalar},
		{name: "identical shapes", shapes: []shape.Shape{s(2, 3), s(2, 3)}, expected: Vector},
		{name: "genuine broadcast", shapes: []shape.Shape{s(2, 3), s(1, 3)}, expected: General},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Analyze(tc.shapes...); got != tc.expected {
				t.Errorf("Analyze(%v) = %s, want %s", tc.shapes, got, tc.expected)
			}
		})
	}
}
