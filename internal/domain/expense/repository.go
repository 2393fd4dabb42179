package expense

import (
	"context"

	"github.com/gymflow/gymflow/internal/types"
)

// Repository defines the interface for expense persistence operations
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	Get(ctx context.Context, id string) (*Expense, error)
	List(ctx context.Context, filter *Filter) ([]*Expense, error)
	Count(ctx context.Context, filter *Filter) (int, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id string) error
}

// Filter defines query parameters for listing expenses
type Filter struct {
	QueryFilter *types.QueryFilter

	// DateRange restricts expenses by date
	DateRange *types.TimeRangeFilter

	// Categories filters by expense category
	Categories []types.ExpenseCategory
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
	if f == nil {
		return nil
	}
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.DateRange != nil {
		if err := f.DateRange.Validate(); err != nil {
			return err
		}
	}
	return nil
}
