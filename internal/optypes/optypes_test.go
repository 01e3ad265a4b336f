package optypes

import "testing"

func TestTag(t *testing.T) {
	type testCase struct {
		op OpType
		expected string
	}
	testCases := []testCase{
		{Add, "add"},
		{LogicalNot, "logical_not"},
		{MatMul, "matmul"},
		{Rearrange, "rearrange"},
		{EinopsReduce, "reduce"},
		{ReduceMax, "max"},
	}
	for _, tc := range testCases {
		if got := tc.op.Tag(); got != tc.expected {
			t.Errorf("%s.Tag() = %q, want %q", tc.op, got, tc.expected)
		}
	}
}

func TestStringUnknown(t *testing.T) {
	op := OpType(9999)
	if got := op.String(); got != "OpType(9999)" {
		t.Errorf("String() for unknown op = %q", got)
	}
}
