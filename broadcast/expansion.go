package broadcast

import "github.com/gomlx/tensorshape/shape"

// Expansion describes, for one input, the virtual stride vector it should
// be read through to behave as if broadcast to outShape: a virtual stride
// of 0 at a given output axis means "reuse the same element". The vector
// always has len(outShape.Dimensions) entries.
type Expansion struct {
	Strides []int
}

// Expansions computes the per-input Expansion for each of shapes against
// outShape, which must already be their combined broadcast (the caller
// typically obtains it via shape.BroadcastAll).
func Expansions(shapes []shape.Shape, outShape shape.Shape) []Expansion {
	outRank := outShape.Rank()
	result := make([]Expansion, len(shapes))
	for i, s := range shapes {
		offset := outRank - s.Rank()
		strides := make([]int, outRank)
		acc := 1
		rowMajor := make([]int, s.Rank())
		for j := s.Rank() - 1; j >= 0; j-- {
			rowMajor[j] = acc
			acc *= s.Dimensions[j]
		}
		for axis := 0; axis < outRank; axis++ {
			if axis < offset {
				strides[axis] = 0
				continue
			}
			inAxis := axis - offset
			if s.Dimensions[inAxis] == 1 && outShape.Dimensions[axis] != 1 {
				strides[axis] = 0
			} else {
				strides[axis] = rowMajor[inAxis]
			}
		}
		result[i] = Expansion{Strides: strides}
	}
	return result
}

// Iterator walks every output index of outShape in C order and, for each,
// returns each input's linear index via its Expansion's virtual strides.
// The mapping is a pure function of out_index: deterministic, and it never
// re-reads input values.
type Iterator struct {
	outDims []int
	expansions []Expansion
	outIndex []int
	total int
	pos int
	exhausted bool
}

// NewIterator creates an Iterator over outShape's index space for the
// given per-input expansions.
func NewIterator(outShape shape.Shape, expansions []Expansion) *Iterator {
	return &Iterator{
		outDims: outShape.Dimensions,
		expansions: expansions,
		outIndex: make([]int, outShape.Rank()),
		total: outShape.Size(),
	}
}

// Next advances the iterator and returns the linear input index for each
// expansion at the current output position, plus false once exhausted.
func (it *Iterator) Next() ([]int, bool) {
	if it.exhausted || it.pos >= it.total {
		return nil, false
	}

	inputIndices := make([]int, len(it.expansions))
	for i, exp := range it.expansions {
		idx := 0
		for axis, stride := range exp.Strides {
			idx += it.outIndex[axis] * stride
		}
		inputIndices[i] = idx
	}

	it.pos++
	it.advance()
	if it.pos >= it.total {
		it.exhausted = true
	}
	return inputIndices, true
}

// advance increments outIndex by one position in C (row-major) order.
func (it *Iterator) advance() {
	for axis := len(it.outIndex) - 1; axis >= 0; axis-- {
		it.outIndex[axis]++
		if it.outIndex[axis] < it.outDims[axis] {
			return
		}
		it.outIndex[axis] = 0
	}
}
