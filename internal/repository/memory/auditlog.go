package memory

import (
	"context"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/domain/auditlog"
	ierr "github.com/gymflow/gymflow/internal/errors"
)

// AuditLogRepository implements auditlog.Repository
type AuditLogRepository struct {
	*InMemoryStore[*auditlog.AuditLog]
}

func NewAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{
		InMemoryStore: NewInMemoryStore[*auditlog.AuditLog](),
	}
}

func copyAuditLog(a *auditlog.AuditLog) *auditlog.AuditLog {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Details = lo.Assign(map[string]any{}, a.Details)
	return &cp
}

func (r *AuditLogRepository) Create(ctx context.Context, a *auditlog.AuditLog) error {
	if a == nil {
		return ierr.NewError("audit entry cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return r.InMemoryStore.Create(ctx, a.ID, copyAuditLog(a))
}

func (r *AuditLogRepository) List(ctx context.Context, filter *auditlog.Filter) ([]*auditlog.AuditLog, error) {
	if filter == nil {
		filter = auditlog.NewFilter()
	}
	entries, err := r.InMemoryStore.List(ctx, filter, auditLogFilterFn, auditLogSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(entries, func(a *auditlog.AuditLog, _ int) *auditlog.AuditLog {
		return copyAuditLog(a)
	}), nil
}

func (r *AuditLogRepository) Count(ctx context.Context, filter *auditlog.Filter) (int, error) {
	if filter == nil {
		filter = auditlog.NewFilter()
	}
	return r.InMemoryStore.Count(ctx, filter, auditLogFilterFn)
}

func auditLogFilterFn(_ context.Context, a *auditlog.AuditLog, filter interface{}) bool {
	f, ok := filter.(*auditlog.Filter)
	if !ok || a == nil {
		return a != nil
	}
	if len(f.Actions) > 0 && !lo.Contains(f.Actions, a.Action) {
		return false
	}
	if len(f.EntityTypes) > 0 && !lo.Contains(f.EntityTypes, a.EntityType) {
		return false
	}
	if len(f.ActorIDs) > 0 && !lo.Contains(f.ActorIDs, a.ActorID) {
		return false
	}
	if f.TimeRangeFilter != nil && !f.TimeRangeFilter.Within(a.CreatedAt) {
		return false
	}
	return true
}

func auditLogSortFn(a, b *auditlog.AuditLog) bool {
	// Most recent activity first.
	return a.CreatedAt.After(b.CreatedAt)
}
