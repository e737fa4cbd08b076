package index

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelWidths(t *testing.T) {
	for arity := uint64(1); arity <= 5; arity++ {
		limit := Max(arity)
		for depth := uint64(0); depth < 12 && depth < limit.Depth(); depth++ {
			want, ok := Pow(arity, depth)
			require.True(t, ok)
			assert.Equal(t, want, Level(arity, depth).Len(), "arity %d depth %d", arity, depth)
		}
	}

	// N=3 sanity
	assert.Equal(t, uint64(3), Level(3, 1).Len())
	assert.Equal(t, uint64(9), Level(3, 2).Len())

	assert.Equal(t, uint64(1), RootRange(5).Len())
	assert.True(t, Empty(5).IsEmpty())
}

func TestLevelAtBoundary(t *testing.T) {
	// every level of a binary tree fits, including the last
	assert.Equal(t, uint64(1<<63), Level(2, 63).Len())
	assert.True(t, Level(2, 64).IsEmpty())

	r := Level(3, 41)
	assert.Equal(t, uint64(210245885124158414), r.Len())
	_, end := r.Bounds()
	assert.Equal(t, uint64(math.MaxUint64), end)
	assert.True(t, Level(3, 42).IsEmpty())

	last, ok := r.NextBack()
	require.True(t, ok)
	assert.Equal(t, Max(3), last)

	assert.True(t, Level(0, 0).IsEmpty())
}

func TestRangeCap(t *testing.T) {
	r := Level(2, 2) // [3, 7)
	assert.Equal(t, "[3,7)", r.String())

	capped := r.Cap(5)
	assert.Equal(t, uint64(2), capped.Len())
	assert.True(t, capped.Contains(4))
	assert.False(t, capped.Contains(5))

	assert.Equal(t, r, r.Cap(100), "cap never grows a range")
	assert.True(t, r.Cap(2).IsEmpty())
	assert.True(t, r.Cap(0).IsEmpty())

	// a huge nominal range capped to a real length
	assert.Equal(t, uint64(0), Level(3, 41).Cap(10).Len())
}

func TestRangeDoubleEnded(t *testing.T) {
	r := Level(3, 2)
	var forward, backward []Index
	for ix := range r.All() {
		forward = append(forward, ix)
	}
	for ix := range r.Backward() {
		backward = append(backward, ix)
	}
	require.Len(t, forward, 9)
	slices.Reverse(backward)
	assert.Equal(t, forward, backward)

	// All and Backward do not consume the range
	assert.Equal(t, uint64(9), r.Len())

	// interleaved consumption from both ends meets in the middle
	var got []uint64
	for {
		front, ok := r.Next()
		if !ok {
			break
		}
		got = append(got, front.Flatten())
		back, ok := r.NextBack()
		if !ok {
			break
		}
		got = append(got, back.Flatten())
	}
	assert.Equal(t, []uint64{4, 12, 5, 11, 6, 10, 7, 9, 8}, got)
	assert.True(t, r.IsEmpty())
}

func TestRangePositions(t *testing.T) {
	got := slices.Collect(FromFlattenedRange(2, 3, 6).Positions())
	assert.Equal(t, []uint64{3, 4, 5}, got)

	assert.True(t, FromFlattenedRange(2, 6, 3).IsEmpty())

	// an early break stops the sequence
	var first []uint64
	for i := range Level(2, 3).Positions() {
		first = append(first, i)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []uint64{7, 8}, first)
}
