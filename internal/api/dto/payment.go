package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gymflow/gymflow/internal/domain/payment"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
	"github.com/gymflow/gymflow/internal/validator"
)

type CreatePaymentRequest struct {
	MemberID      string              `json:"member_id" validate:"required"`
	Description   string              `json:"description,omitempty"`
	Amount        decimal.Decimal     `json:"amount"`
	DueDate       time.Time           `json:"due_date" validate:"required"`
	PaidDate      *time.Time          `json:"paid_date,omitempty"`
	PaymentStatus types.PaymentStatus `json:"payment_status,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.Amount.IsPositive() {
		return ierr.NewError("amount must be positive").
			WithHint("Payment amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	if r.PaymentStatus != "" {
		if err := r.PaymentStatus.Validate(); err != nil {
			return err
		}
	}
	if r.PaymentStatus == types.PaymentStatusPaid && r.PaidDate == nil {
		return ierr.NewError("paid_date is required when status is paid").
			WithHint("Provide the date the payment was received").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToPayment builds the domain payment; the plan id is resolved from the
// member by the service.
func (r *CreatePaymentRequest) ToPayment(ctx context.Context, planID string) *payment.Payment {
	status := r.PaymentStatus
	if status == "" {
		status = types.PaymentStatusPending
	}
	return &payment.Payment{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		MemberID:      r.MemberID,
		PlanID:        planID,
		Description:   r.Description,
		Amount:        r.Amount,
		DueDate:       r.DueDate,
		PaidDate:      r.PaidDate,
		PaymentStatus: status,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdatePaymentRequest struct {
	Description   *string              `json:"description,omitempty"`
	Amount        *decimal.Decimal     `json:"amount,omitempty"`
	DueDate       *time.Time           `json:"due_date,omitempty"`
	PaidDate      *time.Time           `json:"paid_date,omitempty"`
	PaymentStatus *types.PaymentStatus `json:"payment_status,omitempty"`
}

func (r *UpdatePaymentRequest) Validate() error {
	if r.Amount != nil && !r.Amount.IsPositive() {
		return ierr.NewError("amount must be positive").
			WithHint("Payment amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	if r.PaymentStatus != nil {
		return r.PaymentStatus.Validate()
	}
	return nil
}

type ConfirmPaymentRequest struct {
	// PaidDate defaults to now when omitted.
	PaidDate *time.Time `json:"paid_date,omitempty"`
}

type PaymentResponse struct {
	*payment.Payment

	// MemberName and PlanName are resolved at read time; "N/A" for
	// orphaned references.
	MemberName string `json:"member_name"`
	PlanName   string `json:"plan_name"`
}

type ListPaymentsResponse struct {
	Items      []*PaymentResponse       `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
