package traverse

import (
	"iter"

	"github.com/forestrie/go-ntree/index"
)

// PreOrder visits a node, then each of its subtrees left to right.
//
// It keeps an explicit stack of pending positions seeded with the root. Each
// step pops a position, pushes its existing children in reverse so the left
// most is popped next, and yields the popped position. The stack never holds
// more than height*(arity-1)+1 entries.
type PreOrder struct {
	stack   []index.Index
	treeLen uint64
}

func NewPreOrder(arity, treeLen uint64) *PreOrder {
	height, ok := Height(arity, treeLen)
	if !ok {
		return &PreOrder{}
	}
	stack := make([]index.Index, 0, stackCapacity(saturatingMulAdd(height, arity-1, 1), treeLen))
	stack = append(stack, index.Root(arity))
	return &PreOrder{stack: stack, treeLen: treeLen}
}

func (it *PreOrder) Next() (index.Index, bool) {
	n := len(it.stack)
	if n == 0 {
		return index.Index{}, false
	}
	ix := it.stack[n-1]
	it.stack = it.stack[:n-1]

	children := ix.Children().Cap(it.treeLen)
	for {
		child, ok := children.NextBack()
		if !ok {
			break
		}
		it.stack = append(it.stack, child)
	}
	return ix, true
}

// SizeHint returns a lower and upper bound on the positions left to yield.
func (it *PreOrder) SizeHint() (uint64, uint64) {
	return uint64(len(it.stack)), it.treeLen
}

func (it *PreOrder) All() iter.Seq[index.Index] { return Seq(it) }
