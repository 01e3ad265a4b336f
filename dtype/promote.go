package dtype

// intRank orders integer (and bool-as-uint8) types by the width of the value
// range they can represent, used by the "smallest integer type that
// contains both ranges" rule (rule 4).
var intRank = map[DType]int{
	Bool: 0, // bool is treated as unsigned-1-bit, narrower than every other integer.
	Int8: 1,
	Uint8: 1,
	Int16: 2,
	Uint16: 2,
	Int32: 3,
	Uint32: 3,
	Int64: 4,
	Uint64: 4,
}

// widerSignedUnsigned maps a (signed, unsigned) pair at the same rank to the
// integer type that can hold both -- the next rank up, since an unsigned
// value at rank N may exceed what a signed value at rank N can represent.
var widerSignedUnsigned = map[DType]DType{
	Int8: Int16,
	Uint8: Int16,
	Int16: Int32,
	Uint16: Int32,
	Int32: Int64,
	Uint32: Int64,
}

// Promote returns the result type of a binary operation between values of
// type a and b, following five ordered rules. Promote is a
// total function: every pair of valid DType values produces a valid DType.
func Promote(a, b DType) DType {
	if a == b {
		return a
	}

	// Rule 1: float64 dominates everything.
	if a == Float64 || b == Float64 {
		return Float64
	}

	// Rule 2: float32 against floating or <=16-bit integer/bool.
	if a == Float32 || b == Float32 {
		other := a
		if a == Float32 {
			other = b
		}
		if other.IsFloat() || other == Bool || other == Int8 || other == Uint8 || other == Int16 || other == Uint16 {
			return Float32
		}
		// Rule 3: a 32/64-bit integer against float32 must not lose precision.
		return Float64
	}

	// Rule 2 (continued): float16 against an integer/bool promotes to float32
	// unless the integer is wide enough to need float64 (handled by rule 3
	// via the same precision-preserving reasoning as for float32).
	if a == Float16 || b == Float16 {
		other := a
		if a == Float16 {
			other = b
		}
		if other.IsFloat() {
			return Float32
		}
		if other == Bool || other == Int8 || other == Uint8 || other == Int16 || other == Uint16 {
			return Float32
		}
		return Float64
	}

	// Rule 4/5: both are integral (or bool, treated as unsigned-1-bit).
	return promoteIntegral(a, b)
}

func promoteIntegral(a, b DType) DType {
	rankA, rankB := intRank[a], intRank[b]
	if rankA != rankB {
		dominant, other := a, b
		if rankA < rankB {
			dominant, other = b, a
		}
		// A narrower signed operand against a wider unsigned one needs the
		// next signed rank up, since the unsigned type cannot hold negatives.
		if dominant.IsUnsigned() && other.IsSigned() {
			if wider, ok := widerSignedUnsigned[dominant]; ok {
				return wider
			}
		}
		return widestAt(dominant, intRank[dominant])
	}
	// Same rank: if both signed or both unsigned (or one is bool), keep it;
	// a signed/unsigned clash at the same rank needs the next rank up.
	if a == b {
		return a
	}
	if a == Bool {
		return b
	}
	if b == Bool {
		return a
	}
	if wider, ok := widerSignedUnsigned[a]; ok {
		return wider
	}
	if wider, ok := widerSignedUnsigned[b]; ok {
		return wider
	}
	// Uint64 vs Int64: no wider signed integer type exists in the closed set;
	// keep unsigned, since it is the one that can represent the other's range
	// for the common case of non-negative values exchanged between the two.
	return Uint64
}

// widestAt returns the canonical integer type to use when one operand's rank
// dominates and no signed/unsigned clash needs a wider type: keep that
// operand's own type. Uint64 against a narrower signed type also lands here,
// since the closed set has no wider signed type.
func widestAt(dominant DType, _ int) DType {
	return dominant
}

// ToFloat returns the floating point type that mean-like reductions should
// promote t to (to_float mapping).
func ToFloat(t DType) DType {
	switch t {
	case Bool, Int8, Uint8, Int16, Uint16, Float16, Float32:
		return Float32
	case Uint32, Int32, Uint64, Int64, Float64:
		return Float64
	default:
		return Float32
	}
}
