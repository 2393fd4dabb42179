package member

import (
	"context"

	"github.com/gymflow/gymflow/internal/types"
)

// Repository defines the interface for member persistence operations
type Repository interface {
	Create(ctx context.Context, m *Member) error
	Get(ctx context.Context, id string) (*Member, error)
	List(ctx context.Context, filter *Filter) ([]*Member, error)
	Count(ctx context.Context, filter *Filter) (int, error)
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id string) error
}

// Filter defines query parameters for listing members
type Filter struct {
	QueryFilter *types.QueryFilter

	// MemberStatuses filters by domain status (active/inactive/pending)
	MemberStatuses []types.MemberStatus

	// PlanIDs filters members enrolled in specific plans
	PlanIDs []string

	// Search matches name or email, case-insensitive substring
	Search string
}

func NewFilter() *Filter {
	return &Filter{QueryFilter: types.NewDefaultQueryFilter()}
}

func NewNoLimitFilter() *Filter {
	return &Filter{QueryFilter: types.NewNoLimitQueryFilter()}
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
	if f == nil || f.QueryFilter == nil {
		return nil
	}
	return f.QueryFilter.Validate()
}
