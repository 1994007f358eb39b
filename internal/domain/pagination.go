package domain

// PaginationParams holds offset-based pagination parameters for list queries.
// Page is 0-based: the first page is page 0.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page.
// Formula: Page * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return p.Page * p.PageSize
}
