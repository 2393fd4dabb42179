package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gymflow/gymflow/internal/domain/expense"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
	"github.com/gymflow/gymflow/internal/validator"
)

type CreateExpenseRequest struct {
	Description string                `json:"description" validate:"required"`
	Category    types.ExpenseCategory `json:"category" validate:"required"`
	Amount      decimal.Decimal       `json:"amount"`
	Date        time.Time             `json:"date" validate:"required"`
}

func (r *CreateExpenseRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.Amount.IsPositive() {
		return ierr.NewError("amount must be positive").
			WithHint("Expense amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	return r.Category.Validate()
}

func (r *CreateExpenseRequest) ToExpense(ctx context.Context) *expense.Expense {
	return &expense.Expense{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EXPENSE),
		Description: r.Description,
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateExpenseRequest struct {
	Description *string                `json:"description,omitempty"`
	Category    *types.ExpenseCategory `json:"category,omitempty"`
	Amount      *decimal.Decimal       `json:"amount,omitempty"`
	Date        *time.Time             `json:"date,omitempty"`
}

func (r *UpdateExpenseRequest) Validate() error {
	if r.Amount != nil && !r.Amount.IsPositive() {
		return ierr.NewError("amount must be positive").
			WithHint("Expense amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	if r.Category != nil {
		return r.Category.Validate()
	}
	return nil
}

type ExpenseResponse struct {
	*expense.Expense
}

type ListExpensesResponse struct {
	Items      []*ExpenseResponse       `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
