package dto

import (
	"net/http"
	"scams/shared/constant"
	"scams/shared/failure"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries offset pagination and ordering down to the repository.
// A zero Limit means "no limit".
type QueryParams struct {
	Limit   int    `json:"limit"    validate:"omitempty,gte=1"`
	Offset  int    `json:"offset"   validate:"omitempty,gte=0"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads limit and offset from the query string, falling back to defaultLimit
// and offset 0 when absent. Values that are present but not integers, a limit below 1 or
// a negative offset are rejected.
func (q *QueryParams) FromRequest(r *http.Request, defaultLimit int) error {
	query := r.URL.Query()

	q.Limit = defaultLimit
	q.Offset = constant.DefaultValueOffset

	if limit := query.Get(constant.RequestParamLimit); limit != "" {
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt < 1 {
			return failure.InvalidPaginationArgs
		}

		q.Limit = limitInt
	}

	if offset := query.Get(constant.RequestParamOffset); offset != "" {
		offsetInt, err := strconv.Atoi(offset)
		if err != nil || offsetInt < 0 {
			return failure.InvalidPaginationArgs
		}

		q.Offset = offsetInt
	}

	return nil
}
