package index

import (
	"cmp"
	"fmt"
)

// Index is the coordinate of a node in a complete tree of fixed arity: its
// depth and its offset within that depth's level.
//
// The zero value is not a valid coordinate (its arity is 0). Obtain indices
// from New, Root, FromFlattened or by navigating from another Index.
//
// Index values are comparable and may be used as map keys. Indices of the
// same arity are totally ordered by Compare, and that order is flat order.
type Index struct {
	arity  uint64
	depth  uint64
	offset uint64
}

// New returns the coordinate (depth, offset) and true, or false if arity is
// zero or offset is out of range for depth.
//
// Below the boundary depth (see Max) offset must be < arity^depth. At the
// boundary depth offset may not exceed Max(arity).Offset().
func New(arity, depth, offset uint64) (Index, bool) {
	if arity == 0 {
		return Index{}, false
	}
	limit := Max(arity)
	switch {
	case depth < limit.depth:
		if offset >= mustLevelWidth(arity, depth) {
			return Index{}, false
		}
	case depth == limit.depth:
		if offset > limit.offset {
			return Index{}, false
		}
	default:
		return Index{}, false
	}
	return Index{arity: arity, depth: depth, offset: offset}, true
}

// Root returns the depth 0, offset 0 coordinate. It panics if arity is 0.
func Root(arity uint64) Index {
	if arity == 0 {
		panic("index: arity must be at least 1")
	}
	return Index{arity: arity}
}

func (ix Index) Arity() uint64  { return ix.arity }
func (ix Index) Depth() uint64  { return ix.depth }
func (ix Index) Offset() uint64 { return ix.offset }

// IsValid reports whether ix was produced by one of the constructors, as
// opposed to being the zero value.
func (ix Index) IsValid() bool { return ix.arity != 0 }

func (ix Index) IsRoot() bool { return ix.arity != 0 && ix.depth == 0 }

// ChildPosition returns which child of its parent ix is, in [0, arity). It
// is 0 for the root.
func (ix Index) ChildPosition() uint64 {
	if ix.depth == 0 {
		return 0
	}
	return ix.offset % ix.arity
}

// Compare orders by depth then offset. Indices of different arity are
// ordered by arity first; mixing arities is almost certainly a caller bug,
// but Compare still provides a total order.
func (ix Index) Compare(other Index) int {
	if c := cmp.Compare(ix.arity, other.arity); c != 0 {
		return c
	}
	if c := cmp.Compare(ix.depth, other.depth); c != 0 {
		return c
	}
	return cmp.Compare(ix.offset, other.offset)
}

func (ix Index) String() string {
	return fmt.Sprintf("(%d,%d)", ix.depth, ix.offset)
}

// Parent returns the parent of ix, and false for the root.
func (ix Index) Parent() (Index, bool) {
	if ix.depth == 0 {
		return Index{}, false
	}
	return Index{arity: ix.arity, depth: ix.depth - 1, offset: ix.offset / ix.arity}, true
}

// FirstChild returns the left most child of ix.
func (ix Index) FirstChild() (Index, bool) {
	return ix.NthChild(0)
}

// LastChild returns the right most child of ix.
func (ix Index) LastChild() (Index, bool) {
	return ix.NthChild(ix.arity - 1)
}

// NthChild returns child n of ix, counting from 0 on the left. It returns
// false if n >= arity or if the child would lie beyond MaxPosition.
func (ix Index) NthChild(n uint64) (Index, bool) {
	if ix.arity == 0 || n >= ix.arity {
		return Index{}, false
	}
	limit := Max(ix.arity)
	if ix.depth >= limit.depth {
		return Index{}, false
	}

	if ix.depth == limit.depth-1 {
		offset := saturatingAdd(saturatingMul(ix.arity, ix.offset), n)
		if offset > limit.offset {
			return Index{}, false
		}
		return Index{arity: ix.arity, depth: limit.depth, offset: offset}, true
	}
	return Index{arity: ix.arity, depth: ix.depth + 1, offset: ix.arity*ix.offset + n}, true
}

// LeftChild is FirstChild for binary trees. It returns false for any other
// arity, in-order left / right only have meaning when arity is 2.
func (ix Index) LeftChild() (Index, bool) {
	if ix.arity != 2 {
		return Index{}, false
	}
	return ix.NthChild(0)
}

// RightChild is LastChild for binary trees. It returns false for any other
// arity.
func (ix Index) RightChild() (Index, bool) {
	if ix.arity != 2 {
		return Index{}, false
	}
	return ix.NthChild(1)
}

// Children returns the range of flat positions holding the (up to arity)
// children of ix. The range is nominal: it is not limited by the length of
// any particular tree, use Range.Cap for that. It is empty at the boundary
// depth.
func (ix Index) Children() Range {
	if ix.arity == 0 {
		return Range{}
	}
	limit := Max(ix.arity)
	if ix.depth >= limit.depth {
		return Empty(ix.arity)
	}

	if ix.depth == limit.depth-1 {
		first := saturatingMul(ix.arity, ix.offset)
		if first > limit.offset {
			return Empty(ix.arity)
		}
		last := min(saturatingAdd(first, ix.arity-1), limit.offset)
		start := Index{arity: ix.arity, depth: limit.depth, offset: first}.Flatten()
		return Range{arity: ix.arity, start: start, end: start + (last - first) + 1}
	}

	start := Index{arity: ix.arity, depth: ix.depth + 1, offset: ix.arity * ix.offset}.Flatten()
	return Range{arity: ix.arity, start: start, end: start + ix.arity}
}
