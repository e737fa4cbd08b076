package completetree

import (
	"iter"

	"github.com/forestrie/go-ntree/index"
	"github.com/forestrie/go-ntree/traverse"
)

// Binary is a Slice of arity 2. Only binary trees have an in-order
// traversal, and left / right children.
type Binary[T any] struct {
	Slice[T]
}

var _ BinaryTree[int] = (*Binary[int])(nil)

func NewBinary[T any](nodes []T) *Binary[T] {
	return &Binary[T]{Slice: Slice[T]{arity: 2, nodes: nodes}}
}

func (t *Binary[T]) LeftChild(ix index.Index) (T, bool) {
	return navigate(ix, index.Index.LeftChild, t.Get)
}

func (t *Binary[T]) RightChild(ix index.Index) (T, bool) {
	return navigate(ix, index.Index.RightChild, t.Get)
}

func (t *Binary[T]) LeftChildPtr(ix index.Index) (*T, bool) {
	return navigate(ix, index.Index.LeftChild, t.Ptr)
}

func (t *Binary[T]) RightChildPtr(ix index.Index) (*T, bool) {
	return navigate(ix, index.Index.RightChild, t.Ptr)
}

func (t *Binary[T]) InOrder() iter.Seq[T] {
	return t.values(t.walk(t.inOrder))
}

func (t *Binary[T]) InOrderPtr() iter.Seq[*T] {
	return t.pointers(t.walk(t.inOrder))
}

func (t *Binary[T]) InOrderIndexed() iter.Seq2[index.Index, T] {
	return t.indexed(t.inOrder)
}

func (t *Binary[T]) inOrder() traverse.Iterator {
	return traverse.NewInOrder(t.Len())
}
