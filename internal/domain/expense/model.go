package expense

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// Expense is an operating cost entry tracked against a calendar date.
type Expense struct {
	ID          string                `json:"id"`
	Description string                `json:"description"`
	Category    types.ExpenseCategory `json:"category"`
	Amount      decimal.Decimal       `json:"amount"`
	Date        time.Time             `json:"date"`
	types.BaseModel
}

func (e *Expense) Validate() error {
	if e.Description == "" {
		return ierr.NewError("description is required").
			WithHint("Expense description cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if !e.Amount.IsPositive() {
		return ierr.NewError("amount must be positive").
			WithHint("Expense amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	if e.Date.IsZero() {
		return ierr.NewError("date is required").
			WithHint("Expense date cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return e.Category.Validate()
}
