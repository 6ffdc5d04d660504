package internal

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedianOfThreePivot(t *testing.T) {
	testCases := []struct {
		name     string
		arr      []int
		expected int
	}{
		{name: "ascending", arr: []int{1, 5, 9}, expected: 5},
		{name: "descending", arr: []int{9, 5, 1}, expected: 5},
		{name: "median first", arr: []int{5, 1, 9}, expected: 5},
		{name: "median last", arr: []int{1, 9, 5}, expected: 5},
		{name: "all equal", arr: []int{4, 4, 4}, expected: 4},
		{name: "longer range", arr: []int{8, 0, 0, 3, 0, 0, 1}, expected: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			idx := MedianOfThreePivot(tc.arr, 0, len(tc.arr)-1, cmp.Compare[int])
			assert.Equal(t, tc.expected, tc.arr[idx])
		})
	}
}

func TestHashedPivot(t *testing.T) {
	arr := make([]int, 100)
	pick := HashedPivot[int](DEFAULT_PIVOT_SEED)
	for lo := 0; lo < 50; lo++ {
		for hi := lo; hi < 100; hi += 7 {
			idx := pick(arr, lo, hi, cmp.Compare[int])
			assert.GreaterOrEqual(t, idx, lo)
			assert.LessOrEqual(t, idx, hi)
		}
	}

	t.Run("deterministic for a seed", func(t *testing.T) {
		again := HashedPivot[int](DEFAULT_PIVOT_SEED)
		assert.Equal(t, pick(arr, 3, 97, nil), again(arr, 3, 97, nil))
	})
}
