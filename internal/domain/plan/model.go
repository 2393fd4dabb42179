package plan

import (
	"github.com/shopspring/decimal"

	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// Plan is a subscription plan. DurationInMonths defines the recurrence
// cadence; DueDateDayOfMonth optionally pins generated due dates to a fixed
// day of the month.
type Plan struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	DurationInMonths  int             `json:"duration_in_months"`
	DueDateDayOfMonth *int            `json:"due_date_day_of_month,omitempty"`
	types.BaseModel
}

func (p *Plan) Validate() error {
	if p.Name == "" {
		return ierr.NewError("name is required").
			WithHint("Plan name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if !p.Price.IsPositive() {
		return ierr.NewError("price must be positive").
			WithHint("Plan price must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	if p.DurationInMonths < 1 {
		return ierr.NewError("duration_in_months must be at least 1").
			WithHint("Plan duration defines the billing cadence in months").
			Mark(ierr.ErrValidation)
	}
	if p.DueDateDayOfMonth != nil {
		if *p.DueDateDayOfMonth < 1 || *p.DueDateDayOfMonth > 31 {
			return ierr.NewError("due_date_day_of_month must be between 1 and 31").
				WithHint("Use a calendar day of month, or omit to bill on the anchor day").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
