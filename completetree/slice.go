package completetree

import (
	"iter"

	"github.com/forestrie/go-ntree/index"
	"github.com/forestrie/go-ntree/traverse"
)

// Slice views a caller owned slice as a complete tree of fixed arity. The
// slice is neither copied nor resized.
type Slice[T any] struct {
	arity uint64
	nodes []T
}

var _ Tree[int] = (*Slice[int])(nil)

// NewSlice views nodes as a complete tree of the given arity.
func NewSlice[T any](arity uint64, nodes []T) (*Slice[T], error) {
	if arity == 0 {
		return nil, ErrInvalidArity
	}
	return &Slice[T]{arity: arity, nodes: nodes}, nil
}

// Nodes returns the backing slice in level order.
func (t *Slice[T]) Nodes() []T { return t.nodes }

func (t *Slice[T]) Arity() uint64 { return t.arity }

func (t *Slice[T]) Len() uint64 { return uint64(len(t.nodes)) }

func (t *Slice[T]) IsEmpty() bool { return len(t.nodes) == 0 }

func (t *Slice[T]) Height() (uint64, bool) {
	return traverse.Height(t.arity, t.Len())
}

// position returns the flat position of ix if it is occupied in this tree.
// The length is read on every call; callers never cache it across steps.
func (t *Slice[T]) position(ix index.Index) (uint64, bool) {
	if ix.Arity() != t.arity {
		return 0, false
	}
	i := ix.Flatten()
	if i >= uint64(len(t.nodes)) {
		return 0, false
	}
	return i, true
}

func (t *Slice[T]) Get(ix index.Index) (T, bool) {
	i, ok := t.position(ix)
	if !ok {
		var zero T
		return zero, false
	}
	return t.nodes[i], true
}

func (t *Slice[T]) Ptr(ix index.Index) (*T, bool) {
	i, ok := t.position(ix)
	if !ok {
		return nil, false
	}
	return &t.nodes[i], true
}

func (t *Slice[T]) Swap(a, b index.Index) bool {
	i, ok := t.position(a)
	if !ok {
		return false
	}
	j, ok := t.position(b)
	if !ok {
		return false
	}
	t.nodes[i], t.nodes[j] = t.nodes[j], t.nodes[i]
	return true
}

func (t *Slice[T]) Replace(ix index.Index, v T) (T, bool) {
	i, ok := t.position(ix)
	if !ok {
		var zero T
		return zero, false
	}
	old := t.nodes[i]
	t.nodes[i] = v
	return old, true
}

// navigate composes coordinate navigation with bounded access.
func navigate[R any](ix index.Index, step func(index.Index) (index.Index, bool), get func(index.Index) (R, bool)) (R, bool) {
	next, ok := step(ix)
	if !ok {
		var zero R
		return zero, false
	}
	return get(next)
}

func (t *Slice[T]) Parent(ix index.Index) (T, bool) {
	return navigate(ix, index.Index.Parent, t.Get)
}

func (t *Slice[T]) FirstChild(ix index.Index) (T, bool) {
	return navigate(ix, index.Index.FirstChild, t.Get)
}

func (t *Slice[T]) LastChild(ix index.Index) (T, bool) {
	return navigate(ix, index.Index.LastChild, t.Get)
}

func (t *Slice[T]) NthChild(ix index.Index, n uint64) (T, bool) {
	return navigate(ix, nth(n), t.Get)
}

func (t *Slice[T]) ParentPtr(ix index.Index) (*T, bool) {
	return navigate(ix, index.Index.Parent, t.Ptr)
}

func (t *Slice[T]) FirstChildPtr(ix index.Index) (*T, bool) {
	return navigate(ix, index.Index.FirstChild, t.Ptr)
}

func (t *Slice[T]) LastChildPtr(ix index.Index) (*T, bool) {
	return navigate(ix, index.Index.LastChild, t.Ptr)
}

func (t *Slice[T]) NthChildPtr(ix index.Index, n uint64) (*T, bool) {
	return navigate(ix, nth(n), t.Ptr)
}

func nth(n uint64) func(index.Index) (index.Index, bool) {
	return func(ix index.Index) (index.Index, bool) { return ix.NthChild(n) }
}

func (t *Slice[T]) ChildRange(ix index.Index) (index.Range, bool) {
	if _, ok := t.position(ix); !ok {
		return index.Empty(t.arity), false
	}
	return ix.Children().Cap(t.Len()), true
}

func (t *Slice[T]) Children(ix index.Index) (iter.Seq[T], bool) {
	r, ok := t.ChildRange(ix)
	if !ok {
		return nil, false
	}
	return t.values(r.All()), true
}

func (t *Slice[T]) ChildrenPtr(ix index.Index) (iter.Seq[*T], bool) {
	r, ok := t.ChildRange(ix)
	if !ok {
		return nil, false
	}
	return t.pointers(r.All()), true
}

func (t *Slice[T]) LevelRange(depth uint64) (index.Range, bool) {
	height, ok := t.Height()
	if !ok || depth > height {
		return index.Empty(t.arity), false
	}
	return index.Level(t.arity, depth).Cap(t.Len()), true
}

func (t *Slice[T]) Level(depth uint64) (iter.Seq[T], bool) {
	r, ok := t.LevelRange(depth)
	if !ok {
		return nil, false
	}
	return t.values(r.All()), true
}

func (t *Slice[T]) LevelPtr(depth uint64) (iter.Seq[*T], bool) {
	r, ok := t.LevelRange(depth)
	if !ok {
		return nil, false
	}
	return t.pointers(r.All()), true
}

// LevelOrder needs no traversal state: the backing slice is already in
// breadth first order.
func (t *Slice[T]) LevelOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range t.nodes {
			if !yield(v) {
				return
			}
		}
	}
}

func (t *Slice[T]) LevelOrderPtr() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range t.nodes {
			if !yield(&t.nodes[i]) {
				return
			}
		}
	}
}

func (t *Slice[T]) LevelOrderIndexed() iter.Seq2[index.Index, T] {
	return t.indexed(func() traverse.Iterator { return traverse.NewLevelOrder(t.arity, t.Len()) })
}

func (t *Slice[T]) PreOrder() iter.Seq[T] {
	return t.values(t.walk(func() traverse.Iterator { return traverse.NewPreOrder(t.arity, t.Len()) }))
}

func (t *Slice[T]) PreOrderPtr() iter.Seq[*T] {
	return t.pointers(t.walk(func() traverse.Iterator { return traverse.NewPreOrder(t.arity, t.Len()) }))
}

func (t *Slice[T]) PreOrderIndexed() iter.Seq2[index.Index, T] {
	return t.indexed(func() traverse.Iterator { return traverse.NewPreOrder(t.arity, t.Len()) })
}

func (t *Slice[T]) PostOrder() iter.Seq[T] {
	return t.values(t.walk(func() traverse.Iterator { return traverse.NewPostOrder(t.arity, t.Len()) }))
}

func (t *Slice[T]) PostOrderPtr() iter.Seq[*T] {
	return t.pointers(t.walk(func() traverse.Iterator { return traverse.NewPostOrder(t.arity, t.Len()) }))
}

func (t *Slice[T]) PostOrderIndexed() iter.Seq2[index.Index, T] {
	return t.indexed(func() traverse.Iterator { return traverse.NewPostOrder(t.arity, t.Len()) })
}

// walk returns a sequence which starts a fresh traversal each time it is
// ranged over.
func (t *Slice[T]) walk(start func() traverse.Iterator) iter.Seq[index.Index] {
	return func(yield func(index.Index) bool) {
		for ix := range traverse.Seq(start()) {
			if !yield(ix) {
				return
			}
		}
	}
}

func (t *Slice[T]) values(positions iter.Seq[index.Index]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ix := range positions {
			v, ok := t.Get(ix)
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (t *Slice[T]) pointers(positions iter.Seq[index.Index]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for ix := range positions {
			p, ok := t.Ptr(ix)
			if !ok || !yield(p) {
				return
			}
		}
	}
}

func (t *Slice[T]) indexed(start func() traverse.Iterator) iter.Seq2[index.Index, T] {
	return func(yield func(index.Index, T) bool) {
		for ix := range traverse.Seq(start()) {
			v, ok := t.Get(ix)
			if !ok || !yield(ix, v) {
				return
			}
		}
	}
}
