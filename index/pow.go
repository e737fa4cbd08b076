package index

import (
	"math"
	"math/bits"
)

const maxUint64 = math.MaxUint64

// MaxPosition is the largest flat position any coordinate can address.
// Keeping it one below math.MaxUint64 means the length of a tree which
// includes it, and the end of a half open range over it, both still fit.
const MaxPosition = maxUint64 - 1

// Pow returns base^exp and false if the result does not fit in a uint64.
func Pow(base, exp uint64) (uint64, bool) {
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			hi, lo := bits.Mul64(result, base)
			if hi != 0 {
				return 0, false
			}
			result = lo
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		hi, lo := bits.Mul64(base, base)
		if hi != 0 {
			// base^2 overflows and there are still factors to apply. That is
			// only survivable if base is 0 or 1, which never overflow.
			return 0, false
		}
		base = lo
	}
	return result, true
}

// LevelWidth returns the number of nodes a full level at depth holds in a
// tree of the given arity, and false if that count is not representable.
//
// This is the nominal width. For the boundary depth returned by Max, the
// representable part of that level is narrower; see Level.
func LevelWidth(arity, depth uint64) (uint64, bool) {
	if arity == 0 {
		return 0, false
	}
	return Pow(arity, depth)
}

// mustLevelWidth is LevelWidth for callers that only ever pass depths
// strictly below the boundary depth. Reaching the panic means an Index was
// built without going through New or navigation from a valid Index.
func mustLevelWidth(arity, depth uint64) uint64 {
	w, ok := Pow(arity, depth)
	if !ok {
		panic("index: level width overflows uint64, depth is beyond the representable boundary")
	}
	return w
}
