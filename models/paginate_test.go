package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supakorn-kn/go-catalog/errors"
)

func TestPaginate(t *testing.T) {

	items := []string{"A", "B", "C"}

	t.Run("Should window items by page", func(t *testing.T) {

		var testCases = map[string]struct {
			Page     int
			Size     int
			Expected []string
		}{
			"Page 1":         {Page: 1, Size: 2, Expected: []string{"A", "B"}},
			"Page 2":         {Page: 2, Size: 2, Expected: []string{"C"}},
			"Page 3":         {Page: 3, Size: 2, Expected: []string{}},
			"Far past end":   {Page: 1 << 40, Size: 2, Expected: []string{}},
			"Single page":    {Page: 1, Size: 10, Expected: []string{"A", "B", "C"}},
			"Exact boundary": {Page: 3, Size: 1, Expected: []string{"C"}},
		}

		for name, testCase := range testCases {

			t.Run(name, func(t *testing.T) {

				actual, err := Paginate(items, testCase.Page, testCase.Size)
				require.NoError(t, err)
				assert.Equal(t, testCase.Expected, actual)
			})
		}
	})

	t.Run("Should not skip or duplicate items across pages", func(t *testing.T) {

		books := fakeBooks(23)

		var seen []string
		for page := 1; ; page++ {

			data, err := Paginate(books, page, 5)
			require.NoError(t, err)
			if len(data) == 0 {
				break
			}
			seen = append(seen, ids(data)...)
		}

		assert.Equal(t, ids(books), seen)
	})

	t.Run("Should return a copy", func(t *testing.T) {

		actual, err := Paginate(items, 1, 2)
		require.NoError(t, err)

		actual[0] = "Z"
		assert.Equal(t, "A", items[0])
	})

	t.Run("Should throw error when page or size is not positive", func(t *testing.T) {

		_, err := Paginate(items, 0, 2)
		assert.Equal(t, errors.CurrentPageInvalidError.New(), err)

		_, err = Paginate(items, 1, 0)
		assert.Equal(t, errors.PageSizeInvalidError.New(), err)
	})
}

func TestRemainingCount(t *testing.T) {

	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, 3, RemainingCount(items, 1, 2))
	assert.Equal(t, 1, RemainingCount(items, 2, 2))
	assert.Equal(t, 0, RemainingCount(items, 3, 2))
	assert.Equal(t, 0, RemainingCount(items, 9, 2))
	assert.Equal(t, 5, RemainingCount(items, 0, 2))
	assert.Equal(t, 0, RemainingCount([]int{}, 1, 2))
}

func TestTotalPages(t *testing.T) {

	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(11, 0))
}

func TestNewPaginationData(t *testing.T) {

	actual, err := NewPaginationData([]string{"A", "B", "C"}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, PaginationData[string]{
		Page:       1,
		TotalPages: 2,
		Count:      3,
		Remaining:  1,
		Data:       []string{"A", "B"},
	}, actual)

	_, err = NewPaginationData([]string{"A"}, -1, 2)
	assert.True(t, errors.CurrentPageInvalidError.IsEqual(err))
}
