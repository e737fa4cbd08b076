package index

import (
	"math"
	"testing"
)

func TestLog2Uint64(t *testing.T) {
	type args struct {
		num uint64
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		{"1 -> 0", args{1}, 0},
		{"2 -> 1", args{2}, 1},
		{"3 -> 1", args{3}, 1},
		{"4 -> 2", args{4}, 2},
		{"8 -> 3", args{8}, 3},
		{"16 -> 4", args{16}, 4},
		{"17 -> 4", args{17}, 4},
		{"32 -> 5", args{32}, 5},
		{"max -> 63", args{math.MaxUint64}, 63},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Log2Uint64(tt.args.num); got != tt.want {
				t.Errorf("Log2Uint64() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaturating(t *testing.T) {
	if got := saturatingMul(1<<32, 1<<32); got != math.MaxUint64 {
		t.Errorf("saturatingMul overflow = %d", got)
	}
	if got := saturatingMul(3, 5); got != 15 {
		t.Errorf("saturatingMul = %d", got)
	}
	if got := saturatingAdd(math.MaxUint64-1, 2); got != math.MaxUint64 {
		t.Errorf("saturatingAdd overflow = %d", got)
	}
	if got := saturatingAdd(3, 5); got != 8 {
		t.Errorf("saturatingAdd = %d", got)
	}
}
