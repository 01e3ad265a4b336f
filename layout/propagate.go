package layout

// The functions below each implement one row of the per-op
// layout propagation table. They take the input flags (and, where the
// rule depends on it, the input/output shapes) and return the output
// flags; they never touch strides directly, since CStrides/FStrides
// already cover that half of the contract.

// Unary propagates flags through an elementwise unary op: shape and
// strides are untouched, so contiguity is preserved; the result is a
// freshly computed value, not a view.
func Unary(in Flags) Flags {
	return Flags{CContiguous: in.CContiguous, FContiguous: in.FContiguous, IsView: false, Writeable: true, Aligned: true}
}

// Binary propagates flags through a broadcasting binary op. The output is
// materialized fresh; a backend may choose to produce C-contiguous output
// even though that's not guaranteed by the inputs alone, so CContiguous is
// left Unknown rather than asserted.
func Binary(Flags, Flags) Flags {
	return Flags{CContiguous: Unknown, FContiguous: False, IsView: false, Writeable: true, Aligned: true}
}

// ReshapeView propagates flags through reshape/view/flatten. Callers must
// run ReshapeGuard first; this only decides which contiguity flag survives.
func ReshapeView(in Flags) Flags {
	out := Flags{IsView: true, Writeable: in.Writeable, Aligned: in.Aligned}
	if in.CContiguous.IsTrue() {
		out.CContiguous = True
	}
	if in.FContiguous.IsTrue() {
		out.FContiguous = True
	}
	return out
}

// TransposePermute propagates flags through transpose/permute: reordering
// axes breaks both canonical orderings in general.
func TransposePermute(in Flags) Flags {
	return Flags{CContiguous: False, FContiguous: False, IsView: true, Writeable: in.Writeable, Aligned: in.Aligned}
}

// Slice propagates flags through a per-axis slice: a non-trivial slice may
// lose contiguity (a strided slice is not dense), so the input's flags
// pass through unchanged and the caller is expected to have recomputed
// them against the new strides if it cares about precision.
func Slice(in Flags) Flags {
	return Flags{CContiguous: in.CContiguous, FContiguous: in.FContiguous, IsView: true, Writeable: in.Writeable, Aligned: in.Aligned}
}

// SqueezeUnsqueeze propagates flags through squeeze/unsqueeze: inserting
// or removing a size-1 axis never changes element order, so contiguity
// carries over exactly.
func SqueezeUnsqueeze(in Flags) Flags {
	return Flags{CContiguous: in.CContiguous, FContiguous: in.FContiguous, IsView: true, Writeable: in.Writeable, Aligned: in.Aligned}
}

// Expand propagates flags through a broadcast-style expand view: the
// existing contiguity classification (true/false/unknown) carries
// through unchanged.
func Expand(in Flags) Flags {
	return Flags{CContiguous: in.CContiguous, FContiguous: in.FContiguous, IsView: true, Writeable: in.Writeable, Aligned: in.Aligned}
}

// Tile propagates flags through a copy-style tile/repeat: the result is a
// freshly materialized, C-contiguous buffer.
func Tile() Flags {
	return Flags{CContiguous: True, FContiguous: False, IsView: false, Writeable: true, Aligned: true}
}

// MatMul propagates flags through matrix multiplication: always a fresh,
// C-contiguous, non-view result.
func MatMul() Flags {
	return Flags{CContiguous: True, FContiguous: False, IsView: false, Writeable: true, Aligned: true}
}

// Reduction propagates flags through sum/mean/max/min/prod: the output is
// fresh and C-contiguous; F-contiguity survives only when the input was
// already F-contiguous.
func Reduction(in Flags) Flags {
	out := Flags{CContiguous: True, FContiguous: False, IsView: false, Writeable: true, Aligned: true}
	if in.FContiguous.IsTrue() {
		out.FContiguous = True
	}
	return out
}

// EinopsRearrange propagates flags through an einops rearrange: general
// axis permutation and composition/decomposition, so neither canonical
// ordering is guaranteed, but the result may still be a view over the
// input's storage.
func EinopsRearrange(in Flags) Flags {
	return Flags{CContiguous: False, FContiguous: False, IsView: true, Writeable: in.Writeable, Aligned: in.Aligned}
}

// EinopsReduceRepeat propagates flags through einops reduce/repeat: like
// Reduction and Tile, both materialize a fresh C-contiguous buffer.
func EinopsReduceRepeat() Flags {
	return Flags{CContiguous: True, FContiguous: False, IsView: false, Writeable: true, Aligned: true}
}
