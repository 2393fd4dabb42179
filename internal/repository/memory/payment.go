package memory

import (
	"context"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/domain/payment"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// PaymentRepository implements payment.Repository
type PaymentRepository struct {
	*InMemoryStore[*payment.Payment]
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		InMemoryStore: NewInMemoryStore[*payment.Payment](),
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if p == nil {
		return ierr.NewError("payment cannot be nil").
			WithHint("Payment cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := r.InMemoryStore.Create(ctx, p.ID, p.Copy()); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create payment").
			WithReportableDetails(map[string]any{
				"id":        p.ID,
				"member_id": p.MemberID,
			}).
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (r *PaymentRepository) Get(ctx context.Context, id string) (*payment.Payment, error) {
	p, err := r.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("payment not found").
			WithHint("Payment not found").
			WithReportableDetails(map[string]any{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return p.Copy(), nil
}

func (r *PaymentRepository) List(ctx context.Context, filter *payment.Filter) ([]*payment.Payment, error) {
	if filter == nil {
		filter = payment.NewFilter()
	}
	payments, err := r.InMemoryStore.List(ctx, filter, paymentFilterFn, paymentSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(payments, func(p *payment.Payment, _ int) *payment.Payment {
		return p.Copy()
	}), nil
}

func (r *PaymentRepository) Count(ctx context.Context, filter *payment.Filter) (int, error) {
	if filter == nil {
		filter = payment.NewFilter()
	}
	return r.InMemoryStore.Count(ctx, filter, paymentFilterFn)
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	if p == nil {
		return ierr.NewError("payment cannot be nil").
			WithHint("Payment cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return r.InMemoryStore.Update(ctx, p.ID, p.Copy())
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	return r.InMemoryStore.Delete(ctx, id)
}

// ReplaceAll swaps the full payment set with the output of a billing cycle
// run in one atomic step.
func (r *PaymentRepository) ReplaceAll(ctx context.Context, payments []*payment.Payment) error {
	items := make(map[string]*payment.Payment, len(payments))
	for _, p := range payments {
		if p == nil || p.ID == "" {
			return ierr.NewError("payment set contains an invalid record").
				Mark(ierr.ErrValidation)
		}
		items[p.ID] = p.Copy()
	}
	return r.InMemoryStore.ReplaceAll(ctx, items)
}

func paymentFilterFn(_ context.Context, p *payment.Payment, filter interface{}) bool {
	f, ok := filter.(*payment.Filter)
	if !ok || p == nil {
		return p != nil
	}
	if p.Status == types.StatusDeleted {
		return false
	}
	if len(f.MemberIDs) > 0 && !lo.Contains(f.MemberIDs, p.MemberID) {
		return false
	}
	if len(f.PaymentStatuses) > 0 && !lo.Contains(f.PaymentStatuses, p.PaymentStatus) {
		return false
	}
	if f.DueDateRange != nil && !f.DueDateRange.Within(p.DueDate) {
		return false
	}
	return true
}

func paymentSortFn(a, b *payment.Payment) bool {
	// Due date descending, the canonical payment ordering.
	return a.DueDate.After(b.DueDate)
}
