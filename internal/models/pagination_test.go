package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationCeil(t *testing.T) {
	cases := []struct {
		count      int64
		limit      int
		totalPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 10, 10},
		{101, 10, 11},
	}
	for _, tc := range cases {
		p := NewPagination(1, tc.limit, tc.count)
		assert.Equal(t, tc.totalPages, p.TotalPages, "count=%d limit=%d", tc.count, tc.limit)
		assert.Equal(t, tc.count, p.TotalItems)
	}
}

func TestNewPaginationFlags(t *testing.T) {
	p := NewPagination(2, 10, 35)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	first := NewPagination(1, 10, 35)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)

	last := NewPagination(4, 10, 35)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}

func TestNormalizePage(t *testing.T) {
	page, limit := NormalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = NormalizePage(-3, 500)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)

	page, limit = NormalizePage(3, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
}
