// Package queries contains the read side: projections built with raw SQL through gorm,
// shaped for the HTTP responses rather than for the aggregates.
package queries

import (
	"math"

	"fooddelivery/internal/pkg/errs"
)

// MaxLimit caps every page size.
const MaxLimit = 100

// Page is a limit/offset window.
type Page struct {
	Limit  int
	Offset int
}

// NewPage applies defaultLimit to a non-positive limit and caps it at MaxLimit.
// A negative offset is rejected.
func NewPage(limit, offset, defaultLimit int) (Page, error) {
	if offset < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, math.MaxInt32)
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Limit: limit, Offset: offset}, nil
}
