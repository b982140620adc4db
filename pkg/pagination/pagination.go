// Package pagination slices in-memory collections into fixed-size pages.
package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params are normalized paging inputs: page >= 1, 1 <= limit <= MaxLimit.
type Params struct {
	Page  int
	Limit int
}

// Meta describes the position of a page within the full collection.
type Meta struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Result is one page of items plus its metadata.
type Result[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// Normalize coerces raw paging inputs into valid Params. Non-positive or
// missing values fall back to the defaults; limit is capped at MaxLimit.
func Normalize(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Paginate returns the requested page of items. A page past the end yields an
// empty (non-nil) item slice rather than an error.
func Paginate[T any](items []T, p Params) Result[T] {
	p = Normalize(p.Page, p.Limit)

	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}

	start := (p.Page - 1) * p.Limit
	end := start + p.Limit
	paged := []T{}
	if start < total {
		if end > total {
			end = total
		}
		paged = items[start:end]
	}

	return Result[T]{
		Items: paged,
		Meta: Meta{
			Page:        p.Page,
			Limit:       p.Limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNextPage: p.Page < totalPages,
			HasPrevPage: p.Page > 1,
		},
	}
}
