package models

// ListParams are the query parameters every paginated list endpoint accepts.
type ListParams struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Search string `form:"search"`
	Status string `form:"status"`
}

// WithDefaults clamps page/limit into sane bounds.
func (p ListParams) WithDefaults() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p
}

// Page is one page of a server-fetched collection.
type Page[T any] struct {
	Items       []T
	TotalPages  int
	CurrentPage int
}

// TotalPagesFor computes ceil(total/limit) for a list response.
func TotalPagesFor(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
