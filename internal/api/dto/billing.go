package dto

import (
	"fmt"

	"github.com/gymflow/gymflow/internal/domain/billing"
)

// BillingCycleResponse summarizes one billing cycle run for the caller's
// one-line user message.
type BillingCycleResponse struct {
	UpdatedCount   int    `json:"updated_count"`
	GeneratedCount int    `json:"generated_count"`
	Message        string `json:"message,omitempty"`
}

// NewBillingCycleResponse builds the summary. Generated charges take
// priority in the message; reconciliations come second; a no-op run stays
// silent.
func NewBillingCycleResponse(updated, generated int) *BillingCycleResponse {
	resp := &BillingCycleResponse{
		UpdatedCount:   updated,
		GeneratedCount: generated,
	}
	switch {
	case generated > 0:
		resp.Message = fmt.Sprintf("%d charge(s) generated", generated)
	case updated > 0:
		resp.Message = fmt.Sprintf("%d payment(s) marked overdue", updated)
	}
	return resp
}

type NotificationResponse struct {
	billing.Notification
}

type ListNotificationsResponse struct {
	Items []*NotificationResponse `json:"items"`
}
