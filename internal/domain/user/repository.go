package user

import (
	"context"

	"github.com/gymflow/gymflow/internal/types"
)

// Repository defines the interface for user persistence operations
type Repository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter *Filter) ([]*User, error)
	Count(ctx context.Context, filter *Filter) (int, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}

// Filter defines query parameters for listing users
type Filter struct {
	QueryFilter *types.QueryFilter

	// Roles filters by user role
	Roles []types.UserRole
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
	if f == nil || f.QueryFilter == nil {
		return nil
	}
	return f.QueryFilter.Validate()
}
