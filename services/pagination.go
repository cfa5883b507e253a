package services

// Pagination describes one page of a listing. Indexes are 1-based and both
// zero when the listing is empty.
type Pagination struct {
	Number      int   `json:"number"`
	Size        int   `json:"size"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
	StartIndex  int64 `json:"startIndex"`
	EndIndex    int64 `json:"endIndex"`
}

// Page is a Pagination plus the items on it.
type Page[T any] struct {
	Pagination
	Items []T `json:"items"`
}

// Paginate clamps page into [1, last page] for total items split into pages
// of size. An empty listing is page 1 of 1. Out of range requests never fail.
func Paginate(total int64, page, size int) Pagination {
	if size < 1 {
		size = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	p := Pagination{
		Number:      page,
		Size:        size,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
	if total > 0 {
		p.StartIndex = int64(page-1)*int64(size) + 1
		p.EndIndex = min(int64(page)*int64(size), total)
	}
	return p
}

// Offset is the number of items before this page.
func (p Pagination) Offset() int {
	return (p.Number - 1) * p.Size
}
