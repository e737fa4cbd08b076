package traverse

import (
	"iter"

	"github.com/forestrie/go-ntree/index"
)

// Iterator is implemented by every traversal in this package.
type Iterator interface {
	// Next returns the next position in the traversal, or false once the
	// traversal is exhausted. Exhausted iterators stay exhausted.
	Next() (index.Index, bool)
}

// Seq adapts an Iterator for use with range-over-func. The returned sequence
// consumes it, so it can only be ranged over once.
func Seq(it Iterator) iter.Seq[index.Index] {
	return func(yield func(index.Index) bool) {
		for {
			ix, ok := it.Next()
			if !ok || !yield(ix) {
				return
			}
		}
	}
}

// Height returns the depth of the last position in a tree of treeLen nodes.
// It returns false for the empty tree.
func Height(arity, treeLen uint64) (uint64, bool) {
	if treeLen == 0 {
		return 0, false
	}
	return index.FromFlattened(arity, treeLen-1).Depth(), true
}

// maxInitialStack bounds the stack reserved up front. Stacks still grow past
// it when a (very wide) tree needs them to.
const maxInitialStack = 1024

// stackCapacity bounds an initial stack allocation by the number of nodes,
// so a very wide arity over a small tree does not over allocate.
func stackCapacity(want, treeLen uint64) int {
	return int(min(want, treeLen, maxInitialStack))
}

func saturatingMulAdd(a, b, c uint64) uint64 {
	if a != 0 && b > (^uint64(0)-c)/a {
		return ^uint64(0)
	}
	return a*b + c
}
