package dtype

import "testing"

func TestPromoteFloatDominance(t *testing.T) {
	cases := []struct {
		a, b, want DType
	}{
		{Float64, Float32, Float64},
		{Float32, Float64, Float64},
		{Float32, Bool, Float32},
		{Float32, Int8, Float32},
		{Float32, Uint16, Float32},
		{Float32, Int32, Float64},
		{Float32, Int64, Float64},
		{Float32, Uint64, Float64},
		{Float16, Int8, Float32},
		{Float16, Int32, Float64},
		{Float16, Float32, Float32},
	}
	for _, c := range cases {
		if got := Promote(c.a, c.b); got != c.want {
			t.Errorf("Promote(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
		if got := Promote(c.b, c.a); got != c.want {
			t.Errorf("Promote(%s, %s) = %s, want %s (symmetric)", c.b, c.a, got, c.want)
		}
	}
}

func TestPromoteIntegral(t *testing.T) {
	cases := []struct {
		a, b, want DType
	}{
		{Int8, Int8, Int8},
		{Int8, Int16, Int16},
		{Int32, Int64, Int64},
		{Uint8, Uint16, Uint16},
		{Int8, Uint8, Int16},
		{Int16, Uint16, Int32},
		{Int32, Uint32, Int64},
		{Bool, Int8, Int8},
		{Bool, Uint32, Uint32},
		{Uint64, Int64, Uint64},
	}
	for _, c := range cases {
		if got := Promote(c.a, c.b); got != c.want {
			t.Errorf("Promote(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestPromoteSame(t *testing.T) {
	for _, d := range []DType{Bool, Int32, Float64, Uint8} {
		if got := Promote(d, d); got != d {
			t.Errorf("Promote(%s, %s) = %s, want %s", d, d, got, d)
		}
	}
}

func TestToFloat(t *testing.T) {
	cases := []struct {
		in, want DType
	}{
		{Bool, Float32},
		{Int8, Float32},
		{Uint8, Float32},
		{Int16, Float32},
		{Float16, Float32},
		{Float32, Float32},
		{Int32, Float64},
		{Uint32, Float64},
		{Int64, Float64},
		{Uint64, Float64},
		{Float64, Float64},
	}
	for _, c := range cases {
		if got := ToFloat(c.in); got != c.want {
			t.Errorf("ToFloat(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFloat16RoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1, -1, 0.5, 1234.5} {
		bits := Float32ToFloat16(v)
		got := Float16ToFloat32(bits)
		if got != v {
			t.Errorf("Float16 round-trip of %v = %v", v, got)
		}
	}
}
