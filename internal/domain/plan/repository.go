package plan

import (
	"context"

	"github.com/gymflow/gymflow/internal/types"
)

// Repository defines the interface for plan persistence operations
type Repository interface {
	Create(ctx context.Context, p *Plan) error
	Get(ctx context.Context, id string) (*Plan, error)
	List(ctx context.Context, filter *Filter) ([]*Plan, error)
	Count(ctx context.Context, filter *Filter) (int, error)
	Update(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, id string) error
}

// Filter defines query parameters for listing plans
type Filter struct {
	QueryFilter *types.QueryFilter

	// PlanIDs filters by specific plan IDs
	PlanIDs []string

	// Search matches plan name, case-insensitive substring
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
