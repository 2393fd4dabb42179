package dto

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gymflow/gymflow/internal/domain/plan"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
	"github.com/gymflow/gymflow/internal/validator"
)

type CreatePlanRequest struct {
	Name              string          `json:"name" validate:"required"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	DurationInMonths  int             `json:"duration_in_months" validate:"required,min=1"`
	DueDateDayOfMonth *int            `json:"due_date_day_of_month,omitempty" validate:"omitempty,min=1,max=31"`
}

func (r *CreatePlanRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.Price.IsPositive() {
		return ierr.NewError("price must be positive").
			WithHint("Plan price must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreatePlanRequest) ToPlan(ctx context.Context) *plan.Plan {
	return &plan.Plan{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:              r.Name,
		Description:       r.Description,
		Price:             r.Price,
		DurationInMonths:  r.DurationInMonths,
		DueDateDayOfMonth: r.DueDateDayOfMonth,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}

type UpdatePlanRequest struct {
	Name              *string          `json:"name,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	DurationInMonths  *int             `json:"duration_in_months,omitempty" validate:"omitempty,min=1"`
	DueDateDayOfMonth *int             `json:"due_date_day_of_month,omitempty" validate:"omitempty,min=1,max=31"`
}

func (r *UpdatePlanRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Price != nil && !r.Price.IsPositive() {
		return ierr.NewError("price must be positive").
			WithHint("Plan price must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	return nil
}

type PlanResponse struct {
	*plan.Plan

	// MemberCount is the number of non-deleted members on this plan.
	MemberCount int `json:"member_count"`
}

type ListPlansResponse struct {
	Items      []*PlanResponse          `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
