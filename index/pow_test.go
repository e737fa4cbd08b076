package index

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow(t *testing.T) {
	tests := []struct {
		name string
		base uint64
		exp  uint64
		want uint64
		ok   bool
	}{
		{"anything to the 0", 7, 0, 1, true},
		{"zero to the 0", 0, 0, 1, true},
		{"zero", 0, 5, 0, true},
		{"one never overflows", 1, math.MaxUint64, 1, true},
		{"2^10", 2, 10, 1024, true},
		{"2^63", 2, 63, 1 << 63, true},
		{"2^64 overflows", 2, 64, 0, false},
		{"3^40", 3, 40, 12157665459056928801, true},
		{"3^41 overflows", 3, 41, 0, false},
		{"10^19", 10, 19, 10000000000000000000, true},
		{"10^20 overflows", 10, 20, 0, false},
		{"2^32 squared overflows", 1 << 32, 2, 0, false},
		{"2^32 once", 1 << 32, 1, 1 << 32, true},
		{"max once", math.MaxUint64, 1, math.MaxUint64, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pow(tt.base, tt.exp)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLevelWidth(t *testing.T) {
	_, ok := LevelWidth(0, 3)
	assert.False(t, ok)

	for depth := uint64(0); depth < 12; depth++ {
		w, ok := LevelWidth(3, depth)
		assert.True(t, ok)
		want := uint64(1)
		for range depth {
			want *= 3
		}
		assert.Equal(t, want, w, "depth %d", depth)
	}
}
