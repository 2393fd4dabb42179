package memory

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/domain/plan"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// PlanRepository implements plan.Repository
type PlanRepository struct {
	*InMemoryStore[*plan.Plan]
}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{
		InMemoryStore: NewInMemoryStore[*plan.Plan](),
	}
}

func copyPlan(p *plan.Plan) *plan.Plan {
	if p == nil {
		return nil
	}
	cp := *p
	if p.DueDateDayOfMonth != nil {
		d := *p.DueDateDayOfMonth
		cp.DueDateDayOfMonth = &d
	}
	return &cp
}

func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	if p == nil {
		return ierr.NewError("plan cannot be nil").
			WithHint("Plan cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := r.InMemoryStore.Create(ctx, p.ID, copyPlan(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create plan").
			WithReportableDetails(map[string]any{
				"id":   p.ID,
				"name": p.Name,
			}).
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (r *PlanRepository) Get(ctx context.Context, id string) (*plan.Plan, error) {
	p, err := r.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("plan not found").
			WithHint("Plan not found").
			WithReportableDetails(map[string]any{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyPlan(p), nil
}

func (r *PlanRepository) List(ctx context.Context, filter *plan.Filter) ([]*plan.Plan, error) {
	if filter == nil {
		filter = plan.NewFilter()
	}
	plans, err := r.InMemoryStore.List(ctx, filter, planFilterFn, planSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(plans, func(p *plan.Plan, _ int) *plan.Plan {
		return copyPlan(p)
	}), nil
}

func (r *PlanRepository) Count(ctx context.Context, filter *plan.Filter) (int, error) {
	if filter == nil {
		filter = plan.NewFilter()
	}
	return r.InMemoryStore.Count(ctx, filter, planFilterFn)
}

func (r *PlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	if p == nil {
		return ierr.NewError("plan cannot be nil").
			WithHint("Plan cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return r.InMemoryStore.Update(ctx, p.ID, copyPlan(p))
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	return r.InMemoryStore.Delete(ctx, id)
}

func planFilterFn(_ context.Context, p *plan.Plan, filter interface{}) bool {
	f, ok := filter.(*plan.Filter)
	if !ok || p == nil {
		return p != nil
	}
	if p.Status == types.StatusDeleted {
		return false
	}
	if len(f.PlanIDs) > 0 && !lo.Contains(f.PlanIDs, p.ID) {
		return false
	}
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func planSortFn(a, b *plan.Plan) bool {
	return a.Price.LessThan(b.Price)
}
