package completetree

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-ntree/index"
)

func TestLockedViewAndUpdate(t *testing.T) {
	tree, err := NewSlice(2, heap(7))
	require.NoError(t, err)
	locked := NewLocked[int](tree)
	assert.Equal(t, uint64(7), locked.Len())

	err = locked.Update(func(tr Tree[int]) error {
		for p := range tr.PreOrderPtr() {
			*p++
		}
		return nil
	})
	require.NoError(t, err)

	var got []int
	err = locked.View(func(r Reader[int]) error {
		got = slices.Collect(r.LevelOrder())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got)

	err = locked.View(func(r Reader[int]) error {
		_, isTree := r.(Tree[int])
		assert.False(t, isTree, "a shared view must not be writable")
		_, isSlice := r.(*Slice[int])
		assert.False(t, isSlice)
		return nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	assert.ErrorIs(t, locked.View(func(Reader[int]) error { return boom }), boom)
	assert.ErrorIs(t, locked.Update(func(Tree[int]) error { return boom }), boom)
}

func TestLockedConcurrent(t *testing.T) {
	tree, err := NewSlice(3, make([]int, 121))
	require.NoError(t, err)
	locked := NewLocked[int](tree)

	const writers = 8
	const readers = 8
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locked.Update(func(tr Tree[int]) error {
				for p := range tr.PostOrderPtr() {
					*p++
				}
				return nil
			})
		}()
	}
	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locked.View(func(r Reader[int]) error {
				// every pass sees a consistent tree: all values equal
				first, ok := r.Get(index.Root(r.Arity()))
				if !ok {
					return nil
				}
				for v := range r.PreOrder() {
					assert.Equal(t, first, v)
				}
				return nil
			})
		}()
	}
	wg.Wait()

	for _, v := range tree.Nodes() {
		assert.Equal(t, writers, v)
	}
}

func TestLockedBinary(t *testing.T) {
	tree := NewBinary(heap(7))
	locked := NewLockedBinary[int](tree)
	assert.Equal(t, uint64(7), locked.Len())

	err := locked.Update(func(tr BinaryTree[int]) error {
		for p := range tr.InOrderPtr() {
			*p *= 10
		}
		v, ok := tr.LeftChild(index.Root(2))
		assert.True(t, ok)
		assert.Equal(t, 10, v)
		return nil
	})
	require.NoError(t, err)

	var got []int
	err = locked.View(func(r BinaryReader[int]) error {
		_, isTree := r.(BinaryTree[int])
		assert.False(t, isTree, "a shared view must not be writable")
		_, isTree = r.(Tree[int])
		assert.False(t, isTree)
		got = slices.Collect(r.InOrder())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{30, 10, 40, 0, 50, 20, 60}, got)
}

func TestLockedOverBinary(t *testing.T) {
	// a Binary is also a Tree, so the general lock accepts it
	locked := NewLocked[int](NewBinary(heap(3)))
	err := locked.Update(func(tr Tree[int]) error {
		assert.True(t, tr.Swap(index.Root(2), index.FromFlattened(2, 2)))
		return nil
	})
	require.NoError(t, err)
	err = locked.View(func(r Reader[int]) error {
		assert.Equal(t, []int{2, 1, 0}, slices.Collect(r.LevelOrder()))
		return nil
	})
	require.NoError(t, err)
}
