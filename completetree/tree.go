package completetree

import (
	"iter"

	"github.com/forestrie/go-ntree/index"
)

// Reader is the shared access capability of a complete tree. Every accessor
// returns false, rather than failing, for coordinates of the wrong arity or
// whose flat position is not below Len.
type Reader[T any] interface {
	Arity() uint64
	Len() uint64
	IsEmpty() bool

	// Height returns the depth of the last occupied position, and false for
	// an empty tree.
	Height() (uint64, bool)

	Get(ix index.Index) (T, bool)
	Parent(ix index.Index) (T, bool)
	FirstChild(ix index.Index) (T, bool)
	LastChild(ix index.Index) (T, bool)
	NthChild(ix index.Index, n uint64) (T, bool)

	// ChildRange returns the positions of the children of ix which exist in
	// the tree. It is false if ix itself is not in the tree.
	ChildRange(ix index.Index) (index.Range, bool)
	Children(ix index.Index) (iter.Seq[T], bool)

	// LevelRange returns the occupied positions at depth, and false if depth
	// is greater than Height.
	LevelRange(depth uint64) (index.Range, bool)
	Level(depth uint64) (iter.Seq[T], bool)

	LevelOrder() iter.Seq[T]
	PreOrder() iter.Seq[T]
	PostOrder() iter.Seq[T]

	LevelOrderIndexed() iter.Seq2[index.Index, T]
	PreOrderIndexed() iter.Seq2[index.Index, T]
	PostOrderIndexed() iter.Seq2[index.Index, T]
}

// Tree adds exclusive access to Reader. The pointers it returns alias the
// backing slice.
type Tree[T any] interface {
	Reader[T]

	Ptr(ix index.Index) (*T, bool)
	ParentPtr(ix index.Index) (*T, bool)
	FirstChildPtr(ix index.Index) (*T, bool)
	LastChildPtr(ix index.Index) (*T, bool)
	NthChildPtr(ix index.Index, n uint64) (*T, bool)

	ChildrenPtr(ix index.Index) (iter.Seq[*T], bool)
	LevelPtr(depth uint64) (iter.Seq[*T], bool)

	LevelOrderPtr() iter.Seq[*T]
	PreOrderPtr() iter.Seq[*T]
	PostOrderPtr() iter.Seq[*T]

	// Swap exchanges the elements at a and b. It is false, and the tree is
	// unchanged, unless both are in the tree.
	Swap(a, b index.Index) bool
	// Replace stores v at ix and returns the element it displaced.
	Replace(ix index.Index, v T) (T, bool)
}

// BinaryReader extends Reader for arity 2 with the operations that only
// make sense there.
type BinaryReader[T any] interface {
	Reader[T]

	LeftChild(ix index.Index) (T, bool)
	RightChild(ix index.Index) (T, bool)
	InOrder() iter.Seq[T]
	InOrderIndexed() iter.Seq2[index.Index, T]
}

type BinaryTree[T any] interface {
	Tree[T]
	BinaryReader[T]

	LeftChildPtr(ix index.Index) (*T, bool)
	RightChildPtr(ix index.Index) (*T, bool)
	InOrderPtr() iter.Seq[*T]
}
