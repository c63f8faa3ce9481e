package dto

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"risecheckout/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams selects one page of a listing and its ordering.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,gte=1"`
	Limit   int    `json:"limit"    validate:"omitempty,gte=1,lte=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir. Missing or invalid
// page and limit take their defaults and limit is capped at
// constant.MaxValueLimit. sort_by is dropped unless it is one of sortable.
func (q *QueryParams) FromRequest(r *http.Request, sortable ...string) {
	queryParams := r.URL.Query()

	q.Page = positiveInt(queryParams.Get(constant.RequestParamPage), constant.DefaultValuePage)
	q.Limit = min(positiveInt(queryParams.Get(constant.RequestParamLimit), constant.DefaultValueLimit), constant.MaxValueLimit)

	if sortBy := strings.ToLower(queryParams.Get(constant.RequestParamSortBy)); slices.Contains(sortable, sortBy) {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}
}

func (q QueryParams) Offset() int {
	if q.Page <= 1 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func positiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}
