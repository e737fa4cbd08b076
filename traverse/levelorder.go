package traverse

import (
	"iter"

	"github.com/forestrie/go-ntree/index"
)

// LevelOrder enumerates positions breadth first. In heap layout that is
// simply flat order, so it carries no state beyond a range, and it can be
// consumed from either end.
type LevelOrder struct {
	r index.Range
}

func NewLevelOrder(arity, treeLen uint64) *LevelOrder {
	return &LevelOrder{r: index.FromFlattenedRange(arity, 0, treeLen)}
}

func (it *LevelOrder) Next() (index.Index, bool) { return it.r.Next() }

func (it *LevelOrder) NextBack() (index.Index, bool) { return it.r.NextBack() }

// Len returns the exact number of positions not yet produced.
func (it *LevelOrder) Len() uint64 { return it.r.Len() }

func (it *LevelOrder) SizeHint() (uint64, uint64) {
	n := it.r.Len()
	return n, n
}

func (it *LevelOrder) All() iter.Seq[index.Index] { return Seq(it) }

// Backward consumes the iterator from the back.
func (it *LevelOrder) Backward() iter.Seq[index.Index] {
	return func(yield func(index.Index) bool) {
		for {
			ix, ok := it.r.NextBack()
			if !ok || !yield(ix) {
				return
			}
		}
	}
}
