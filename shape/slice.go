package shape

// Range is the `{start?, stop?, step?}` form of a SliceIndex:
// a half-open range over one axis. HasStart/HasStop distinguish an
// explicit 0 from an omitted field, since their defaults depend on the
// sign of Step.
type Range struct {
	Start, Stop, Step int
	HasStart, HasStop bool
}

// SliceIndex is one axis of a Slice call: either a Range, or an integer
// Index that removes the axis entirely, or Keep to pass the axis through
// unchanged ("keep all" marker).
type SliceIndex struct {
	Kind SliceIndexKind
	Index int
	Range Range
}

// SliceIndexKind discriminates SliceIndex's variants.
type SliceIndexKind int

const (
	SliceKeep SliceIndexKind = iota
	SliceInteger
	SliceRange
)

// KeepAxis returns a SliceIndex that passes an axis through unchanged.
func KeepAxis() SliceIndex { return SliceIndex{Kind: SliceKeep} }

// IndexAxis returns a SliceIndex that selects a single element and removes
// the axis.
func IndexAxis(i int) SliceIndex { return SliceIndex{Kind: SliceInteger, Index: i} }

// RangeAxis returns a SliceIndex over a half-open range.
func RangeAxis(r Range) SliceIndex { return SliceIndex{Kind: SliceRange, Range: r} }

// Slice computes the output shape for a per-axis slice, given one
// SliceIndex per axis of in.
func Slice(in Shape, indices []SliceIndex) (Shape, error) {
	rank := in.Rank()
	if len(indices) != rank {
		return Invalid(), newError(PatternRankMismatch,
			"slice has %d indices, expected one per axis (rank %d)", len(indices), rank)
	}

	var dims []int
	for axis, idx := range indices {
		length := in.Dimensions[axis]
		switch idx.Kind {
		case SliceKeep:
			dims = append(dims, length)
		case SliceInteger:
			if _, err := AdjustAxisToRank(idx.Index, length); err != nil {
				return Invalid(), newAxisError(SliceIndexOutOfRange, axis,
					"slice index %d at axis %d is out of range for length %d", idx.Index, axis, length)
			}
		case SliceRange:
			n, err := sliceRangeLen(idx.Range, axis, length)
			if err != nil {
				return Invalid(), err
			}
			dims = append(dims, n)
		default:
			return Invalid(), newAxisError(SliceIndexOutOfRange, axis, "unknown slice index kind at axis %d", axis)
		}
	}
	return Shape{DType: in.DType, Dimensions: dims}, nil
}

// sliceRangeLen computes the resulting length of a half-open {start,stop,step}
// range over an axis of the given length, applying sign-
// dependent defaults and the step != 0 rule.
func sliceRangeLen(r Range, axis, length int) (int, error) {
	if r.Step == 0 {
		return 0, newAxisError(SliceZeroStep, axis, "slice step at axis %d must not be 0", axis)
	}

	start := r.Start
	stop := r.Stop
	if r.Step > 0 {
		if !r.HasStart {
			start = 0
		}
		if !r.HasStop {
			stop = length
		}
	} else {
		if !r.HasStart {
			start = length - 1
		}
		if !r.HasStop {
			stop = -1
		}
	}

	if start < 0 {
		start += length
	}
	if stop < 0 && r.HasStop {
		stop += length
	}

	if r.Step > 0 {
		start = clamp(start, 0, length)
		stop = clamp(stop, 0, length)
		if stop <= start {
			return 0, nil
		}
		return (stop - start + r.Step - 1) / r.Step, nil
	}

	start = clamp(start, -1, length-1)
	stop = clamp(stop, -1, length-1)
	if stop >= start {
		return 0, nil
	}
	n := (start - stop + (-r.Step) - 1) / (-r.Step)
	return n, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
