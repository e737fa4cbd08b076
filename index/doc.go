package index

/*

# Heap layout for complete N-ary trees

A complete tree is one whose levels are full except possibly the last, which
fills left to right. Such a tree never needs a node graph. Numbering the nodes
breadth first, left to right, gives every node a flat position in a single
contiguous sequence, and parent / child relationships become arithmetic on
that position.

For a binary tree of 12 nodes:

	0                  0
	                 /   \
	1              1       2
	              / \     / \
	2            3   4   5   6
	            / \ / \ /
	3          7  8 9 10 11

and for arity 3 (13 nodes):

	0                       0
	              /         |         \
	1            1          2          3
	           / | \      / | \      / | \
	2         4  5  6    7  8  9   10 11 12

## Coordinates

A node is identified by its depth and its offset within the level. The level
at depth d holds N^d nodes and all the shallower levels hold

	N^0 + N^1 + ... + N^(d-1)

so the flat position of (d, o) is that sum plus o. Going the other way we
subtract level widths, starting at the root, until the remainder is smaller
than the width of the level it lands in. For N == 2 the sum is 2^d - 1 and
the depth is just the position of the highest set bit of pos + 1:

	pos + 1:   1 | 10 11 | 100 101 110 111 | 1000 ...
	depth:     0 |  1  1 |   2   2   2   2 |    3 ...

and for N == 1 the tree is a list, depth == pos.

The children of (d, o) are (d+1, N*o + 0) ... (d+1, N*o + N-1). Its parent is
(d-1, o / N). These are contiguous in the flat layout, so all of a node's
children can be described by one range of flat positions.

## The representable boundary

Positions are uint64 values and the largest position we hand out is
math.MaxUint64 - 1. That keeps every tree length and every half open range
end representable. For most arities the level that contains the maximum
position is only partially representable; we call its depth the boundary
depth, and offsets there are clamped to what fits. Child arithmetic on the
level just above the boundary saturates instead of wrapping, and anything
that would land past the maximum position is reported as absent.

Everything in this package is a pure function of its arguments. Values are
cheap to copy and safe to use as map keys.
*/
