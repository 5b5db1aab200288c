package models

// MaxPage is the highest page number served. Larger requests are clamped.
const MaxPage = 100000

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"5"`
}

// NewPagination normalises page and limit and computes the page count.
func NewPagination(page, limit, total, maxLimit int) Pagination {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 || limit > maxLimit {
		limit = maxLimit
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// Offset returns how many items precede page when each page holds limit items.
func Offset(page, limit int) int64 {
	if page < 1 || limit < 1 {
		return 0
	}
	return int64(page-1) * int64(limit)
}
