package memory

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/domain/member"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// MemberRepository implements member.Repository
type MemberRepository struct {
	*InMemoryStore[*member.Member]
}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{
		InMemoryStore: NewInMemoryStore[*member.Member](),
	}
}

func copyMember(m *member.Member) *member.Member {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}

func (r *MemberRepository) Create(ctx context.Context, m *member.Member) error {
	if m == nil {
		return ierr.NewError("member cannot be nil").
			WithHint("Member cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := r.InMemoryStore.Create(ctx, m.ID, copyMember(m)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create member").
			WithReportableDetails(map[string]any{
				"id":    m.ID,
				"email": m.Email,
			}).
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (r *MemberRepository) Get(ctx context.Context, id string) (*member.Member, error) {
	m, err := r.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("member not found").
			WithHint("Member not found").
			WithReportableDetails(map[string]any{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyMember(m), nil
}

func (r *MemberRepository) List(ctx context.Context, filter *member.Filter) ([]*member.Member, error) {
	if filter == nil {
		filter = member.NewFilter()
	}
	members, err := r.InMemoryStore.List(ctx, filter, memberFilterFn, memberSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(members, func(m *member.Member, _ int) *member.Member {
		return copyMember(m)
	}), nil
}

func (r *MemberRepository) Count(ctx context.Context, filter *member.Filter) (int, error) {
	if filter == nil {
		filter = member.NewFilter()
	}
	return r.InMemoryStore.Count(ctx, filter, memberFilterFn)
}

func (r *MemberRepository) Update(ctx context.Context, m *member.Member) error {
	if m == nil {
		return ierr.NewError("member cannot be nil").
			WithHint("Member cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return r.InMemoryStore.Update(ctx, m.ID, copyMember(m))
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	return r.InMemoryStore.Delete(ctx, id)
}

func memberFilterFn(_ context.Context, m *member.Member, filter interface{}) bool {
	f, ok := filter.(*member.Filter)
	if !ok || m == nil {
		return m != nil
	}
	if m.Status == types.StatusDeleted {
		return false
	}
	if len(f.MemberStatuses) > 0 && !lo.Contains(f.MemberStatuses, m.MemberStatus) {
		return false
	}
	if len(f.PlanIDs) > 0 && !lo.Contains(f.PlanIDs, m.PlanID) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(m.Name), q) &&
			!strings.Contains(strings.ToLower(m.Email), q) {
			return false
		}
	}
	return true
}

func memberSortFn(a, b *member.Member) bool {
	// Newest enrollments first.
	return a.JoinDate.After(b.JoinDate)
}
