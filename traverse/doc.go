// Package traverse walks the positions of a complete tree held in heap
// layout. The iterators here only ever produce index.Index values: they know
// the length of the tree, never its elements. Separating the order of the
// visit from access to the elements is what lets completetree hand out one
// exclusive pointer per position without aliasing.
//
// Given the tree
//
//	       0
//	    /     \
//	   1       2
//	  / \     / \
//	 3   4   5   6
//
// the orders are
//
//	level: 0 1 2 3 4 5 6
//	pre:   0 1 3 4 2 5 6
//	post:  3 4 1 5 6 2 0
//	in:    3 1 4 0 5 2 6
//
// Every iterator visits each position below the tree length exactly once,
// uses auxiliary memory proportional to the height of the tree, and checks
// every child it discovers against the live length, so a partially filled
// last level is handled without special cases.
package traverse
