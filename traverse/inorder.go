package traverse

import (
	"iter"

	"github.com/forestrie/go-ntree/index"
)

type inOrderState uint8

const (
	// follow left children from cur, stacking ancestors
	descend inOrderState = iota
	// pop the nearest ancestor, yield it, then descend its right subtree
	ascend
	done
)

// InOrder visits the left subtree, the node, then the right subtree. It is
// only defined for binary trees.
//
// The stack holds the ancestors whose left subtree is being visited, so it is
// bounded by the height of the tree.
type InOrder struct {
	state   inOrderState
	cur     index.Index
	stack   []index.Index
	treeLen uint64
}

func NewInOrder(treeLen uint64) *InOrder {
	height, ok := Height(2, treeLen)
	if !ok {
		return &InOrder{state: done}
	}
	return &InOrder{
		state:   descend,
		cur:     index.Root(2),
		stack:   make([]index.Index, 0, stackCapacity(height, treeLen)),
		treeLen: treeLen,
	}
}

func (it *InOrder) Next() (index.Index, bool) {
	for {
		switch it.state {
		case descend:
			if left, ok := it.cur.LeftChild(); ok && left.Flatten() < it.treeLen {
				it.stack = append(it.stack, it.cur)
				it.cur = left
				continue
			}
			// no left child means no right child either, the tree is complete
			it.state = ascend
			return it.cur, true

		case ascend:
			n := len(it.stack)
			if n == 0 {
				it.state = done
				return index.Index{}, false
			}
			ix := it.stack[n-1]
			it.stack = it.stack[:n-1]
			if right, ok := ix.RightChild(); ok && right.Flatten() < it.treeLen {
				it.state = descend
				it.cur = right
			}
			return ix, true

		default:
			return index.Index{}, false
		}
	}
}

func (it *InOrder) SizeHint() (uint64, uint64) {
	return uint64(len(it.stack)), it.treeLen
}

func (it *InOrder) All() iter.Seq[index.Index] { return Seq(it) }
