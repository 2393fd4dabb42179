package memory

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/domain/user"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// UserRepository implements user.Repository
type UserRepository struct {
	*InMemoryStore[*user.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		InMemoryStore: NewInMemoryStore[*user.User](),
	}
}

func copyUser(u *user.User) *user.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if u == nil {
		return ierr.NewError("user cannot be nil").
			WithHint("User cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if existing, _ := r.GetByEmail(ctx, u.Email); existing != nil {
		return ierr.NewError("a user with this email already exists").
			WithHint("User email must be unique").
			WithReportableDetails(map[string]any{
				"email": u.Email,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	if err := r.InMemoryStore.Create(ctx, u.ID, copyUser(u)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create user").
			WithReportableDetails(map[string]any{
				"id": u.ID,
			}).
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	u, err := r.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("user not found").
			WithHint("User not found").
			WithReportableDetails(map[string]any{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyUser(u), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	users, err := r.InMemoryStore.List(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Status != types.StatusDeleted && strings.EqualFold(u.Email, email) {
			return copyUser(u), nil
		}
	}
	return nil, ierr.NewError("user not found").
		WithHint("User not found").
		WithReportableDetails(map[string]any{
			"email": email,
		}).
		Mark(ierr.ErrNotFound)
}

func (r *UserRepository) List(ctx context.Context, filter *user.Filter) ([]*user.User, error) {
	if filter == nil {
		filter = user.NewFilter()
	}
	users, err := r.InMemoryStore.List(ctx, filter, userFilterFn, userSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(users, func(u *user.User, _ int) *user.User {
		return copyUser(u)
	}), nil
}

func (r *UserRepository) Count(ctx context.Context, filter *user.Filter) (int, error) {
	if filter == nil {
		filter = user.NewFilter()
	}
	return r.InMemoryStore.Count(ctx, filter, userFilterFn)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	if u == nil {
		return ierr.NewError("user cannot be nil").
			WithHint("User cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return r.InMemoryStore.Update(ctx, u.ID, copyUser(u))
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.InMemoryStore.Delete(ctx, id)
}

func userFilterFn(_ context.Context, u *user.User, filter interface{}) bool {
	f, ok := filter.(*user.Filter)
	if !ok || u == nil {
		return u != nil
	}
	if u.Status == types.StatusDeleted {
		return false
	}
	if len(f.Roles) > 0 && !lo.Contains(f.Roles, u.Role) {
		return false
	}
	return true
}

func userSortFn(a, b *user.User) bool {
	return a.CreatedAt.Before(b.CreatedAt)
}
