package postgres

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestAreaLockKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bound orb.Bound
		want  int
	}{
		{
			name:  "inside one cell",
			bound: orb.Bound{Min: orb.Point{-7.6039, 33.5897}, Max: orb.Point{-7.6037, 33.5899}},
			want:  1,
		},
		{
			name:  "across a latitude boundary",
			bound: orb.Bound{Min: orb.Point{-7.6039, 33.5999}, Max: orb.Point{-7.6037, 33.6001}},
			want:  2,
		},
		{
			name:  "across both boundaries",
			bound: orb.Bound{Min: orb.Point{-7.6001, 33.5999}, Max: orb.Point{-7.5999, 33.6001}},
			want:  4,
		},
		{
			name:  "wide area collapses to the global key",
			bound: orb.Bound{Min: orb.Point{-8, 33}, Max: orb.Point{-7, 34}},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			keys := areaLockKeys(tt.bound)
			assert.Len(t, keys, tt.want)
			assert.IsNonDecreasing(t, keys)
		})
	}
}

func TestAreaLockKeys_Deterministic(t *testing.T) {
	t.Parallel()

	bound := orb.Bound{Min: orb.Point{2.3517, 48.8561}, Max: orb.Point{2.3527, 48.8571}}
	assert.Equal(t, areaLockKeys(bound), areaLockKeys(bound))
	assert.Equal(t, []int64{globalAreaLockKey}, areaLockKeys(orb.Bound{Min: orb.Point{-10, -10}, Max: orb.Point{10, 10}}))
}

func TestCellKey_Unique(t *testing.T) {
	t.Parallel()

	seen := map[int64]bool{}
	for _, lat := range []int64{-9000, -1, 0, 1, 9000} {
		for _, lon := range []int64{-18000, -1, 0, 1, 18000} {
			key := cellKey(lat, lon)
			assert.False(t, seen[key], "duplicate key for %d,%d", lat, lon)
			assert.GreaterOrEqual(t, key, int64(0))
			seen[key] = true
		}
	}
}
