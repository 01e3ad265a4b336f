// Package layout implements layout algebra: stride
// calculators for C-order and F-order, contiguity checks, and the
// per-operation layout-flags propagation table. None of this package
// touches actual memory; it only reasons about the metadata a backend
// would need to allocate and index a tensor.
package layout

import "github.com/gomlx/tensorshape/shape"

// Tri is a three-valued boolean used for contiguity flags that a backend
// may not have determined yet ("unknown").
type Tri int

const (
	Unknown Tri = iota
	True
	False
)

// FromBool lifts a plain bool into a known Tri value.
func FromBool(b bool) Tri {
	if b {
		return True
	}
	return False
}

// IsTrue reports whether the flag is definitely true; Unknown is treated
// as "not known to be true".
func (t Tri) IsTrue() bool {
	return t == True
}

func (t Tri) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// Flags is the `{c_contiguous, f_contiguous, is_view, writeable, aligned}`
// record a backend needs to decide whether an operation can alias memory.
type Flags struct {
	CContiguous Tri
	FContiguous Tri
	IsView bool
	Writeable bool
	Aligned bool
}

// Fresh returns the flags for a freshly allocated, owned, C-contiguous
// tensor (invariant 8).
func Fresh() Flags {
	return Flags{CContiguous: True, FContiguous: Unknown, IsView: false, Writeable: true, Aligned: true}
}

// CStrides computes row-major strides for shape: s[i] = Π dims[i+1:].
// A scalar (rank 0) has empty strides.
func CStrides(dims []int) []int {
	strides := make([]int, len(dims))
	acc := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= dims[i]
	}
	return strides
}

// FStrides computes column-major strides for shape: s[i] = Π dims[:i].
func FStrides(dims []int) []int {
	strides := make([]int, len(dims))
	acc := 1
	for i := range dims {
		strides[i] = acc
		acc *= dims[i]
	}
	return strides
}

// IsCContiguous reports whether strides match CStrides(dims), treating a
// zero-size or all-dims-<=1 shape as trivially contiguous.
func IsCContiguous(dims, strides []int) bool {
	return isContiguous(dims, strides, CStrides(dims))
}

// IsFContiguous reports whether strides match FStrides(dims).
func IsFContiguous(dims, strides []int) bool {
	return isContiguous(dims, strides, FStrides(dims))
}

func isContiguous(dims, strides, canonical []int) bool {
	if trivial(dims) {
		return true
	}
	if len(strides) != len(canonical) {
		return false
	}
	for i := range strides {
		if strides[i] != canonical[i] {
			return false
		}
	}
	return true
}

func trivial(dims []int) bool {
	size := 1
	for _, d := range dims {
		size *= d
	}
	if size == 0 {
		return true
	}
	for _, d := range dims {
		if d > 1 {
			return false
		}
	}
	return true
}

// ReshapeGuard enforces the "reshape-of-non-contiguous must fail" rule. A
// zero-copy reshape/view is only permitted when the source is
// C-contiguous: a transpose of a C-contiguous tensor can land on strides
// that happen to read as F-contiguous (e.g. shape [3,2] strides [1,3] from
// transposing a [2,3] tensor), but transpose/permute is never a
// reshape-safe layout per the propagation table, so F-contiguity alone
// does not clear this guard.
func ReshapeGuard(dims, strides []int) error {
	if IsCContiguous(dims, strides) {
		return nil
	}
	return shape.NewError(shape.LayoutNonContiguous,
		"cannot reshape a non-contiguous tensor (strides %v for shape %v) without a prior copy", strides, dims)
}
