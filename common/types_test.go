package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder(t *testing.T) {
	assert.Equal(t, "ascending", Ascending.String())
	assert.Equal(t, "descending", Descending.String())
	assert.Equal(t, "Order(5)", Order(5).String())

	assert.NoError(t, Ascending.Validate())
	assert.NoError(t, Descending.Validate())
	assert.ErrorIs(t, Order(5).Validate(), ErrInvalidOption)

	asc := CompareFor[int](Ascending)
	desc := CompareFor[int](Descending)
	assert.Negative(t, asc(1, 2))
	assert.Positive(t, desc(1, 2))
	assert.Zero(t, desc(3, 3))
	assert.Positive(t, Reverse(asc)(1, 2))
}

func TestScheme(t *testing.T) {
	assert.Equal(t, "lomuto", Lomuto.String())
	assert.Equal(t, "hoare", Hoare.String())
	assert.Equal(t, "Scheme(-1)", Scheme(-1).String())

	assert.NoError(t, Hoare.Validate())
	assert.ErrorIs(t, Scheme(2).Validate(), ErrInvalidOption)
}

func TestCheckRange(t *testing.T) {
	testCases := []struct {
		name    string
		n       int
		low     int
		high    int
		wantErr bool
	}{
		{name: "full range", n: 5, low: 0, high: 4},
		{name: "single index", n: 5, low: 2, high: 2},
		{name: "degenerate", n: 5, low: 3, high: 1},
		{name: "negative low", n: 5, low: -1, high: 4, wantErr: true},
		{name: "high past end", n: 5, low: 0, high: 5, wantErr: true},
		{name: "low past end", n: 5, low: 5, high: 4, wantErr: true},
		{name: "empty sequence", n: 0, low: 0, high: -1, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckRange(tc.n, tc.low, tc.high)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckRank(t *testing.T) {
	assert.NoError(t, CheckRank(3, 1))
	assert.NoError(t, CheckRank(3, 3))
	assert.ErrorIs(t, CheckRank(0, 1), ErrEmptyInput)
	assert.ErrorIs(t, CheckRank(3, 0), ErrOutOfRange)
	assert.ErrorIs(t, CheckRank(3, 4), ErrOutOfRange)
	assert.EqualError(t, CheckRank(2, 3), "rank is outside [1, length]: k=3, length 2")
}

func TestErrorsWrapSentinels(t *testing.T) {
	err := CheckRange(0, 0, -1)
	assert.True(t, errors.Is(err, ErrInvalidRange))
	assert.EqualError(t, err, "range is outside the sequence: [0, -1] for length 0")

	for _, sentinel := range []error{ErrNullInput, ErrInvalidRange, ErrEmptyInput, ErrOutOfRange, ErrInvalidOption} {
		assert.NotEmpty(t, sentinel.Error())
	}
}
