package models

// Sort directions accepted by PageRequest.Order.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Pagination defaults applied by [PageRequest.Normalize].
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultSort     = "created_at"
)

// PageRequest describes the page of a listing the caller wants:
// zero-based page index, page size, sort column, and sort direction.
// A zero-value PageRequest is valid and resolves to the first page with
// default size, sorted by creation time descending.
type PageRequest struct {
	// Page is the zero-based page index.
	Page int `json:"page"`

	// Size is the number of items per page.
	Size int `json:"size"`

	// Sort is the sort column name. The store only accepts whitelisted
	// columns; anything else falls back to the default.
	Sort string `json:"sort"`

	// Order is the sort direction, "asc" or "desc".
	Order string `json:"order"`
}

// Normalize returns a copy of the request with defaults applied: negative
// page index becomes 0, non-positive size becomes DefaultPageSize, size is
// capped at MaxPageSize, and empty sort/order fall back to creation time,
// descending.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.Sort == "" {
		p.Sort = DefaultSort
	}
	if p.Order != OrderAsc {
		p.Order = OrderDesc
	}
	return p
}

// Offset returns the row offset corresponding to the page index and size.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one page of a listing together with pagination metadata.
type Page[T any] struct {
	// Items holds the records of the current page.
	Items []T `json:"items"`

	// Page is the zero-based index of this page.
	Page int `json:"page"`

	// Size is the requested page size (the last page may hold fewer items).
	Size int `json:"size"`

	// TotalItems is the total number of records matching the query.
	TotalItems int64 `json:"total_items"`

	// TotalPages is the number of pages needed to hold TotalItems.
	TotalPages int `json:"total_pages"`
}

// NewPage assembles a Page from the items of the current page, the
// normalized page request, and the total match count.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	pages := int(total) / req.Size
	if int(total)%req.Size != 0 {
		pages++
	}

	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
		TotalPages: pages,
	}
}
