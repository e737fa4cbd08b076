package index

import "math/bits"

// Log2Uint64 efficiently computes log base 2 of num. num must be non zero.
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}

// saturatingMul returns a * b, or math.MaxUint64 if the product overflows.
func saturatingMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return maxUint64
	}
	return lo
}

// saturatingAdd returns a + b, or math.MaxUint64 if the sum overflows.
func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return maxUint64
	}
	return sum
}
