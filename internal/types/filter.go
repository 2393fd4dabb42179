package types

import (
	"time"

	"github.com/samber/lo"

	ierr "github.com/gymflow/gymflow/internal/errors"
)

const (
	FilterDefaultLimit = 50
	FilterMaxLimit     = 1000

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// BaseFilter is implemented by every entity filter so the generic store can
// apply pagination uniformly.
type BaseFilter interface {
	GetLimit() int
	GetOffset() int
	Validate() error
}

// QueryFilter carries pagination and ordering parameters.
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" form:"limit"`
	Offset *int    `json:"offset,omitempty" form:"offset"`
	Order  *string `json:"order,omitempty" form:"order"`
}

// NewDefaultQueryFilter returns a filter with the default page size.
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(FilterDefaultLimit),
		Offset: lo.ToPtr(0),
	}
}

// NewNoLimitQueryFilter returns a filter that fetches everything.
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Offset: lo.ToPtr(0),
	}
}

func (f *QueryFilter) GetLimit() int {
	if f == nil || f.Limit == nil {
		return 0
	}
	return *f.Limit
}

func (f *QueryFilter) GetOffset() int {
	if f == nil || f.Offset == nil {
		return 0
	}
	return *f.Offset
}

func (f *QueryFilter) GetOrder() string {
	if f == nil || f.Order == nil {
		return OrderDesc
	}
	return *f.Order
}

func (f *QueryFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.Limit != nil && (*f.Limit < 0 || *f.Limit > FilterMaxLimit) {
		return ierr.NewErrorf("limit must be between 0 and %d", FilterMaxLimit).
			WithHint("Invalid pagination limit").
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("offset must be non-negative").
			WithHint("Invalid pagination offset").
			Mark(ierr.ErrValidation)
	}
	if f.Order != nil && *f.Order != OrderAsc && *f.Order != OrderDesc {
		return ierr.NewErrorf("invalid order: %s", *f.Order).
			WithHint("Order must be asc or desc").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// TimeRangeFilter restricts results to a time window.
type TimeRangeFilter struct {
	StartTime *time.Time `json:"start_time,omitempty" form:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty" form:"end_time"`
}

func (f *TimeRangeFilter) Validate() error {
	if f == nil || f.StartTime == nil || f.EndTime == nil {
		return nil
	}
	if f.EndTime.Before(*f.StartTime) {
		return ierr.NewError("end_time must not be before start_time").
			WithHint("Invalid time range").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Within reports whether t falls inside the configured window.
func (f *TimeRangeFilter) Within(t time.Time) bool {
	if f == nil {
		return true
	}
	if f.StartTime != nil && t.Before(*f.StartTime) {
		return false
	}
	if f.EndTime != nil && t.After(*f.EndTime) {
		return false
	}
	return true
}

// PaginationResponse is the standard list envelope metadata.
type PaginationResponse struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func NewPaginationResponse(total, limit, offset int) PaginationResponse {
	return PaginationResponse{Total: total, Limit: limit, Offset: offset}
}
