package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortalOverviewResponse is the member-facing view of their own account.
type PortalOverviewResponse struct {
	Member      *MemberResponse `json:"member"`
	Plan        *PlanResponse   `json:"plan,omitempty"`
	NextDueDate *time.Time      `json:"next_due_date,omitempty"`
	Outstanding decimal.Decimal `json:"outstanding_amount"`
}
