package payment

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// Payment represents one billing cycle occurrence for one member. At most
// one payment exists per (member, calendar year+month of due date); the
// billing engine's existence check enforces this for generated charges.
type Payment struct {
	ID            string              `json:"id"`
	MemberID      string              `json:"member_id"`
	PlanID        string              `json:"plan_id"`
	Description   string              `json:"description,omitempty"`
	Amount        decimal.Decimal     `json:"amount"`
	DueDate       time.Time           `json:"due_date"`
	PaidDate      *time.Time          `json:"paid_date,omitempty"`
	PaymentStatus types.PaymentStatus `json:"payment_status"`
	types.BaseModel
}

func (p *Payment) Validate() error {
	if p.MemberID == "" {
		return ierr.NewError("member_id is required").
			WithHint("Payment must reference a member").
			Mark(ierr.ErrValidation)
	}
	if !p.Amount.IsPositive() {
		return ierr.NewError("amount must be positive").
			WithHint("Payment amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	if p.DueDate.IsZero() {
		return ierr.NewError("due_date is required").
			WithHint("Payment due date cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if err := p.PaymentStatus.Validate(); err != nil {
		return err
	}
	if p.PaymentStatus == types.PaymentStatusPaid && p.PaidDate == nil {
		return ierr.NewError("paid_date is required for paid payments").
			WithHint("Provide the date the payment was received").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Copy returns a deep copy. The engine and the in-memory store never hand
// out shared pointers.
func (p *Payment) Copy() *Payment {
	if p == nil {
		return nil
	}
	cp := *p
	if p.PaidDate != nil {
		d := *p.PaidDate
		cp.PaidDate = &d
	}
	return &cp
}
