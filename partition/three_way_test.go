package partition

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apache/orderstat-go/common"
)

func TestThreeWay(t *testing.T) {
	testCases := []struct {
		name   string
		arr    []int
		order  common.Order
		wantLt int
		wantGt int
	}{
		{name: "zeros ones and twos", arr: []int{1, 0, 2, 1, 0, 2, 1}, order: common.Ascending, wantLt: 2, wantGt: 4},
		{name: "all equal", arr: []int{7, 7, 7, 7}, order: common.Ascending, wantLt: 0, wantGt: 3},
		{name: "pivot is minimum", arr: []int{1, 5, 3, 1}, order: common.Ascending, wantLt: 0, wantGt: 1},
		{name: "descending", arr: []int{1, 0, 2, 1, 0, 2, 1}, order: common.Descending, wantLt: 2, wantGt: 4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			arr := slices.Clone(tc.arr)
			lt, gt, err := ThreeWay(arr, 0, len(arr)-1, tc.order)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantLt, lt)
			assert.Equal(t, tc.wantGt, gt)
		})
	}
}

func TestThreeWayRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 300; iter++ {
		arr := make([]int, 1+rng.Intn(30))
		for i := range arr {
			arr[i] = rng.Intn(5)
		}
		pivot := arr[0]
		lt, gt, err := ThreeWay(arr, 0, len(arr)-1, common.Ascending)
		assert.NoError(t, err)
		for i, v := range arr {
			switch {
			case i < lt:
				assert.Less(t, v, pivot)
			case i <= gt:
				assert.Equal(t, pivot, v)
			default:
				assert.Greater(t, v, pivot)
			}
		}
	}
}

func TestThreeWayErrors(t *testing.T) {
	_, _, err := ThreeWay[int](nil, 0, 0, common.Ascending)
	assert.ErrorIs(t, err, common.ErrNullInput)

	_, _, err = ThreeWay([]int{1}, 0, 1, common.Ascending)
	assert.ErrorIs(t, err, common.ErrInvalidRange)

	_, _, err = ThreeWay([]int{}, 0, -1, common.Ascending)
	assert.ErrorIs(t, err, common.ErrInvalidRange)

	_, _, err = ThreeWay([]int{1, 2}, 0, 1, common.Order(-1))
	assert.ErrorIs(t, err, common.ErrInvalidOption)

	lt, gt, err := ThreeWay([]int{4}, 0, 0, common.Ascending)
	assert.NoError(t, err)
	assert.Equal(t, 0, lt)
	assert.Equal(t, 0, gt)
}
