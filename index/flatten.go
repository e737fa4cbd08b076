package index

import "math/bits"

// FromFlattened returns the coordinate of flat position i in a tree of the
// given arity.
//
// Both arity == 0 and i == math.MaxUint64 are precondition violations and
// panic. Every other position is valid; see MaxPosition.
func FromFlattened(arity, i uint64) Index {
	if arity == 0 {
		panic("index: arity must be at least 1")
	}
	if i > MaxPosition {
		panic("index: flat position math.MaxUint64 is not addressable")
	}

	switch arity {
	case 1:
		return Index{arity: 1, depth: i, offset: 0}
	case 2:
		next := i + 1
		depth := Log2Uint64(next)
		return Index{arity: 2, depth: depth, offset: next - (1 << depth)}
	}
	return fromFlattenedLevels(arity, i)
}

// fromFlattenedLevels is the general path. It walks down from the root
// subtracting level widths until i lands inside a level. It is correct for
// every arity, but for arity 1 it takes i steps, which is why FromFlattened
// has closed forms for the small cases.
func fromFlattenedLevels(arity, i uint64) Index {
	var depth, count uint64
	for {
		width, ok := Pow(arity, depth)
		if !ok {
			break
		}
		// a carry means this level reaches past every addressable position
		next, carry := bits.Add64(count, width, 0)
		if carry != 0 || i < next {
			break
		}
		count = next
		depth++
	}
	return Index{arity: arity, depth: depth, offset: i - count}
}

// Flatten returns the flat position of ix.
func (ix Index) Flatten() uint64 {
	switch ix.arity {
	case 1:
		return ix.depth
	case 2:
		return (1 << ix.depth) - 1 + ix.offset
	}
	return ix.flattenLevels()
}

// flattenLevels sums the widths of the shallower levels. The closed form
// (N^d - 1) / (N - 1) overflows in the intermediate for large arities, so
// we add the levels up one at a time instead.
func (ix Index) flattenLevels() uint64 {
	var count uint64
	for depth := uint64(0); depth < ix.depth; depth++ {
		count += mustLevelWidth(ix.arity, depth)
	}
	return count + ix.offset
}

// boundaryCacheSize bounds the arities whose Max is computed once, up front.
// Past it the boundary depth is at most 11, so the level walk is short.
const boundaryCacheSize = 65

var boundaries = func() (b [boundaryCacheSize]Index) {
	for arity := uint64(1); arity < boundaryCacheSize; arity++ {
		b[arity] = FromFlattened(arity, MaxPosition)
	}
	return b
}()

// Max returns the coordinate of MaxPosition for the given arity. Its depth is
// the boundary depth. It panics if arity is 0.
func Max(arity uint64) Index {
	if arity != 0 && arity < boundaryCacheSize {
		return boundaries[arity]
	}
	return FromFlattened(arity, MaxPosition)
}
