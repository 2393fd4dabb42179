package auditlog

import (
	"context"

	"github.com/gymflow/gymflow/internal/types"
)

// Repository defines the interface for audit log persistence operations.
// Entries are append-only.
type Repository interface {
	Create(ctx context.Context, a *AuditLog) error
	List(ctx context.Context, filter *Filter) ([]*AuditLog, error)
	Count(ctx context.Context, filter *Filter) (int, error)
}

// Filter defines query parameters for listing audit entries
type Filter struct {
	QueryFilter *types.QueryFilter

	// TimeRangeFilter restricts entries by event time
	TimeRangeFilter *types.TimeRangeFilter

	// Actions filters by audit action
	Actions []types.AuditAction

	// EntityTypes filters by entity type
	EntityTypes []string

	// ActorIDs filters by acting user
	ActorIDs []string
}

func NewFilter() *Filter {
	return &Filter{QueryFilter: types.NewDefaultQueryFilter()}
}

// GetLimit implements types.BaseFilter
func (f *Filter) GetLimit() int {
	if f == nil || f.QueryFilter == nil {
		return 0
	}
	return f.QueryFilter.GetLimit()
}

// GetOffset implements types.BaseFilter
func (f *Filter) GetOffset() int {
	if f == nil || f.QueryFilter == nil {
		return 0
	}
	return f.QueryFilter.GetOffset()
}

func (f *Filter) Validate() error {
	if f == nil {
		return nil
	}
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.TimeRangeFilter != nil {
		if err := f.TimeRangeFilter.Validate(); err != nil {
			return err
		}
	}
	return nil
}
