package dto

import (
	"aircon/shared/constant"
	"aircon/shared/failure"
	"net/http"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries paging and ordering for list queries. A zero Page means the caller did not
// ask for paging. SortBy is never taken from the request and must be set by the service.
type QueryParams struct {
	Page    int    `json:"page"    validate:"omitempty"`
	Limit   int    `json:"limit"   validate:"omitempty"`
	SortBy  string `json:"sortBy"  validate:"omitempty"`
	SortDir string `json:"sortDir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates Page and Limit from the request query. A page below 1 is clamped to 1;
// non numeric values are rejected.
func (q *QueryParams) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil {
			return failure.InvalidPageParam
		}

		q.Page = max(pageInt, constant.DefaultValuePage)
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt < 1 {
			return failure.InvalidLimitParam
		}

		q.Limit = limitInt
	}

	return nil
}

// Paged reports whether the caller asked for a specific page.
func (q *QueryParams) Paged() bool {
	return q.Page > 0
}
