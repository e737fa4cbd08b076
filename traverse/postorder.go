package traverse

import (
	"iter"

	"github.com/forestrie/go-ntree/index"
)

type frame struct {
	ix       index.Index
	children index.Range
}

// PostOrder visits each subtree left to right, then the node itself.
//
// The stack holds one frame per node on the path from the root to the
// current position, each with the range of that node's children not yet
// descended into. A step pushes a frame for the next child of the top frame,
// or, when the top frame has no children left, pops and yields it.
type PostOrder struct {
	stack   []frame
	treeLen uint64
}

func NewPostOrder(arity, treeLen uint64) *PostOrder {
	height, ok := Height(arity, treeLen)
	if !ok {
		return &PostOrder{}
	}
	stack := make([]frame, 0, stackCapacity(height+1, treeLen))
	root := index.Root(arity)
	stack = append(stack, frame{ix: root, children: root.Children().Cap(treeLen)})
	return &PostOrder{stack: stack, treeLen: treeLen}
}

func (it *PostOrder) Next() (index.Index, bool) {
	for {
		n := len(it.stack)
		if n == 0 {
			return index.Index{}, false
		}
		top := &it.stack[n-1]
		if child, ok := top.children.Next(); ok {
			it.stack = append(it.stack, frame{
				ix:       child,
				children: child.Children().Cap(it.treeLen),
			})
			continue
		}
		ix := top.ix
		it.stack = it.stack[:n-1]
		return ix, true
	}
}

func (it *PostOrder) SizeHint() (uint64, uint64) {
	return uint64(len(it.stack)), it.treeLen
}

func (it *PostOrder) All() iter.Seq[index.Index] { return Seq(it) }
