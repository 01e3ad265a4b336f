package dtype

import "github.com/x448/float16"

// Float16ToFloat32 converts a raw IEEE754-half bit pattern to a float32.
func Float16ToFloat32(bits uint16) float32 {
	return float16.Frombits(bits).Float32()
}

// Float32ToFloat16 converts a float32 to its nearest IEEE754-half bit pattern.
func Float32ToFloat16(v float32) uint16 {
	return float16.Fromfloat32(v).Bits()
}
