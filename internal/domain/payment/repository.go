package payment

import (
	"context"

	"github.com/gymflow/gymflow/internal/types"
)

// Repository defines the interface for payment persistence operations
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	List(ctx context.Context, filter *Filter) ([]*Payment, error)
	Count(ctx context.Context, filter *Filter) (int, error)
	Update(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, id string) error

	// ReplaceAll atomically swaps the full payment set with the result of a
	// billing cycle run.
	ReplaceAll(ctx context.Context, payments []*Payment) error
}

// Filter defines query parameters for listing payments
type Filter struct {
	QueryFilter *types.QueryFilter

	// DueDateRange restricts payments by due date
	DueDateRange *types.TimeRangeFilter

	// MemberIDs filters by specific members
	MemberIDs []string

	// PaymentStatuses filters by payment status
	PaymentStatuses []types.PaymentStatus
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
	if f.DueDateRange != nil {
		if err := f.DueDateRange.Validate(); err != nil {
			return err
		}
	}
	return nil
}
