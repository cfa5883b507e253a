package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		page     int
		size     int
		expected Pagination
	}{
		{
			name:  "first page",
			total: 14, page: 1, size: 6,
			expected: Pagination{Number: 1, Size: 6, TotalPages: 3, TotalItems: 14, HasNext: true, StartIndex: 1, EndIndex: 6},
		},
		{
			name:  "middle page",
			total: 14, page: 2, size: 6,
			expected: Pagination{Number: 2, Size: 6, TotalPages: 3, TotalItems: 14, HasNext: true, HasPrevious: true, StartIndex: 7, EndIndex: 12},
		},
		{
			name:  "past the end clamps to last page",
			total: 14, page: 10, size: 6,
			expected: Pagination{Number: 3, Size: 6, TotalPages: 3, TotalItems: 14, HasPrevious: true, StartIndex: 13, EndIndex: 14},
		},
		{
			name:  "zero clamps to first page",
			total: 14, page: 0, size: 6,
			expected: Pagination{Number: 1, Size: 6, TotalPages: 3, TotalItems: 14, HasNext: true, StartIndex: 1, EndIndex: 6},
		},
		{
			name:  "negative clamps to first page",
			total: 3, page: -4, size: 6,
			expected: Pagination{Number: 1, Size: 6, TotalPages: 1, TotalItems: 3, StartIndex: 1, EndIndex: 3},
		},
		{
			name:  "empty listing is page one of one",
			total: 0, page: 5, size: 6,
			expected: Pagination{Number: 1, Size: 6, TotalPages: 1},
		},
		{
			name:  "exact multiple",
			total: 12, page: 2, size: 6,
			expected: Pagination{Number: 2, Size: 6, TotalPages: 2, TotalItems: 12, HasPrevious: true, StartIndex: 7, EndIndex: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Paginate(tt.total, tt.page, tt.size))
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Paginate(14, 1, 6).Offset())
	assert.Equal(t, 12, Paginate(14, 10, 6).Offset())
	assert.Equal(t, 0, Paginate(0, 3, 6).Offset())
}
