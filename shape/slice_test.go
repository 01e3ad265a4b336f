package shape

import "testing"

func TestSlice(t *testing.T) {
	type testCase struct {
		name string
		in Shape
		indices []SliceIndex
		expected Shape
		wantErr bool
	}
	testCases := []testCase{
		{
			name: "keep all",
			in: s(2, 3),
			indices: []SliceIndex{KeepAxis(), KeepAxis()},
			expected: s(2, 3),
		},
		{
			name: "integer index drops axis",
			in: s(2, 3),
			indices: []SliceIndex{IndexAxis(0), KeepAxis()},
			expected: s(3),
		},
		{
			name: "basic range",
			in: s(10),
			indices: []SliceIndex{RangeAxis(Range{Start: 2, Stop: 5, Step: 1, HasStart: true, HasStop: true})},
			expected: s(3),
		},
		{
			name: "default range is full axis",
			in: s(10),
			indices: []SliceIndex{RangeAxis(Range{Step: 1})},
			expected: s(10),
		},
		{
			name: "step 2",
			in: s(10),
			indices: []SliceIndex{RangeAxis(Range{Step: 2})},
			expected: s(5),
		},
		{
			name: "negative step reverses with defaults",
			in: s(10),
			indices: []SliceIndex{RangeAxis(Range{Step: -1})},
			expected: s(10),
		},
		{
			name: "negative step partial",
			in: s(10),
			indices: []SliceIndex{RangeAxis(Range{Start: 5, Step: -1, HasStart: true})},
			expected: s(6),
		},
		{
			name: "zero step fails",
			in: s(10),
			indices: []SliceIndex{RangeAxis(Range{Step: 0})},
			wantErr: true,
		},
		{
			name: "integer index out of range",
			in: s(10),
			indices: []SliceIndex{IndexAxis(20)},
			wantErr: true,
		},
		{
			name: "wrong number of indices",
			in: s(2, 3),
			indices: []SliceIndex{KeepAxis()},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Slice(tc.in, tc.indices)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("Slice(%s,...) = %s, want %s", tc.in, got, tc.expected)
			}
		})
	}
}
