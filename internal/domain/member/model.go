package member

import (
	"time"

	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// Member represents an enrolled gym member. JoinDate anchors the first
// billing cycle; MemberStatus gates recurring charge generation.
type Member struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone,omitempty"`
	JoinDate     time.Time          `json:"join_date"`
	PlanID       string             `json:"plan_id"`
	MemberStatus types.MemberStatus `json:"member_status"`
	types.BaseModel
}

func (m *Member) Validate() error {
	if m.Name == "" {
		return ierr.NewError("name is required").
			WithHint("Member name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if m.Email == "" {
		return ierr.NewError("email is required").
			WithHint("Member email cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if m.JoinDate.IsZero() {
		return ierr.NewError("join_date is required").
			WithHint("Member join date cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if m.PlanID == "" {
		return ierr.NewError("plan_id is required").
			WithHint("Member must be assigned a plan").
			Mark(ierr.ErrValidation)
	}
	return m.MemberStatus.Validate()
}

// IsBillable reports whether the billing engine should generate recurring
// charges for this member.
func (m *Member) IsBillable() bool {
	return m.MemberStatus == types.MemberStatusActive &&
		m.Status == types.StatusPublished
}
