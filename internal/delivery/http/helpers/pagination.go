package helpers

import (
	"net/http"
	"strconv"

	"milesahead/internal/domain"
)

// Pagination query parameter defaults and limits. Pages are 0-based to match
// the frontend's skip = page * size arithmetic.
const (
	DefaultPage     = 0
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParsePagination reads page and size from the request query string,
// clamps them to valid ranges, and returns domain.PaginationParams.
// Invalid or missing values fall back to defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	page := DefaultPage
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			page = v
		}
	}
	pageSize := DefaultPageSize
	if s := r.URL.Query().Get("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			pageSize = v
			if pageSize > MaxPageSize {
				pageSize = MaxPageSize
			}
		}
	}
	return domain.PaginationParams{Page: page, PageSize: pageSize}
}

// ParseMarathonListQuery reads the marathon listing query parameters:
// allMarathons selects the paginated mode, createDate/registerDate select
// the sort order (createDate wins when both are present).
func ParseMarathonListQuery(r *http.Request) domain.ListMarathonsParams {
	q := r.URL.Query()
	params := domain.ListMarathonsParams{
		All:        q.Get("allMarathons") != "",
		Pagination: ParsePagination(r),
	}
	switch {
	case q.Get("createDate") != "":
		params.Sort = domain.SortByCreatedAt
	case q.Get("registerDate") != "":
		params.Sort = domain.SortByRegistrationStart
	}
	return params
}
