package memory

import (
	"context"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/domain/expense"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// ExpenseRepository implements expense.Repository
type ExpenseRepository struct {
	*InMemoryStore[*expense.Expense]
}

func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		InMemoryStore: NewInMemoryStore[*expense.Expense](),
	}
}

func copyExpense(e *expense.Expense) *expense.Expense {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	if e == nil {
		return ierr.NewError("expense cannot be nil").
			WithHint("Expense cannot be nil").
			Mark(ierr.ErrValidation)
	}

	if err := r.InMemoryStore.Create(ctx, e.ID, copyExpense(e)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create expense").
			WithReportableDetails(map[string]any{
				"id": e.ID,
			}).
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (r *ExpenseRepository) Get(ctx context.Context, id string) (*expense.Expense, error) {
	e, err := r.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("expense not found").
			WithHint("Expense not found").
			WithReportableDetails(map[string]any{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyExpense(e), nil
}

func (r *ExpenseRepository) List(ctx context.Context, filter *expense.Filter) ([]*expense.Expense, error) {
	if filter == nil {
		filter = expense.NewFilter()
	}
	expenses, err := r.InMemoryStore.List(ctx, filter, expenseFilterFn, expenseSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(expenses, func(e *expense.Expense, _ int) *expense.Expense {
		return copyExpense(e)
	}), nil
}

func (r *ExpenseRepository) Count(ctx context.Context, filter *expense.Filter) (int, error) {
	if filter == nil {
		filter = expense.NewFilter()
	}
	return r.InMemoryStore.Count(ctx, filter, expenseFilterFn)
}

func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	if e == nil {
		return ierr.NewError("expense cannot be nil").
			WithHint("Expense cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return r.InMemoryStore.Update(ctx, e.ID, copyExpense(e))
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	return r.InMemoryStore.Delete(ctx, id)
}

func expenseFilterFn(_ context.Context, e *expense.Expense, filter interface{}) bool {
	f, ok := filter.(*expense.Filter)
	if !ok || e == nil {
		return e != nil
	}
	if e.Status == types.StatusDeleted {
		return false
	}
	if len(f.Categories) > 0 && !lo.Contains(f.Categories, e.Category) {
		return false
	}
	if f.DateRange != nil && !f.DateRange.Within(e.Date) {
		return false
	}
	return true
}

func expenseSortFn(a, b *expense.Expense) bool {
	return a.Date.After(b.Date)
}
