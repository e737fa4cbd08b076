package index

import (
	"fmt"
	"iter"
)

// Range is a half open interval [start, end) of flat positions in a tree of
// fixed arity. It describes either a whole level, or the children of one
// node, and iterates the coordinates it covers from either end.
//
// Because MaxPosition is math.MaxUint64 - 1, end never needs to exceed
// math.MaxUint64 and a range over the last addressable position is
// representable without overflow.
//
// Next and NextBack consume the range. Copy a Range (it is a plain value) to
// iterate it more than once.
type Range struct {
	arity uint64
	start uint64
	end   uint64
}

// Empty returns a range covering nothing.
func Empty(arity uint64) Range {
	return Range{arity: arity}
}

// RootRange returns the single element range over the root.
func RootRange(arity uint64) Range {
	return Level(arity, 0)
}

// Level returns the range of every position at depth. At the boundary depth
// the range is clamped to MaxPosition, and beyond it the range is empty.
func Level(arity, depth uint64) Range {
	if arity == 0 {
		return Range{}
	}
	limit := Max(arity)
	if depth > limit.depth {
		return Empty(arity)
	}

	start := Index{arity: arity, depth: depth}.Flatten()
	if depth == limit.depth {
		return Range{arity: arity, start: start, end: maxUint64}
	}
	return Range{arity: arity, start: start, end: start + mustLevelWidth(arity, depth)}
}

// FromFlattenedRange returns the range [start, end). If start > end the
// range is empty.
func FromFlattenedRange(arity, start, end uint64) Range {
	if start > end {
		start = end
	}
	return Range{arity: arity, start: start, end: end}
}

func (r Range) Arity() uint64 { return r.arity }

// Bounds returns the half open flat bounds of the range.
func (r Range) Bounds() (uint64, uint64) { return r.start, r.end }

func (r Range) Len() uint64 { return r.end - r.start }

func (r Range) IsEmpty() bool { return r.start >= r.end }

// Contains reports whether flat position i is in the range.
func (r Range) Contains(i uint64) bool { return i >= r.start && i < r.end }

// Cap restricts the range to positions below limit, typically the length of
// a tree whose last level is partially filled. It never grows the range.
func (r Range) Cap(limit uint64) Range {
	if r.end > limit {
		r.end = limit
	}
	if r.start > r.end {
		r.start = r.end
	}
	return r
}

// Next removes and returns the first coordinate in the range.
func (r *Range) Next() (Index, bool) {
	if r.start >= r.end {
		return Index{}, false
	}
	ix := FromFlattened(r.arity, r.start)
	r.start++
	return ix, true
}

// NextBack removes and returns the last coordinate in the range.
func (r *Range) NextBack() (Index, bool) {
	if r.start >= r.end {
		return Index{}, false
	}
	r.end--
	return FromFlattened(r.arity, r.end), true
}

// All yields the coordinates of r front to back. It does not consume r.
func (r Range) All() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		r := r
		for {
			ix, ok := r.Next()
			if !ok || !yield(ix) {
				return
			}
		}
	}
}

// Backward yields the coordinates of r back to front. It does not consume r.
func (r Range) Backward() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		r := r
		for {
			ix, ok := r.NextBack()
			if !ok || !yield(ix) {
				return
			}
		}
	}
}

// Positions yields the flat positions of r front to back.
func (r Range) Positions() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := r.start; i < r.end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.start, r.end)
}
