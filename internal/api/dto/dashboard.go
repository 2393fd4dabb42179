package dto

import (
	"github.com/shopspring/decimal"
)

// DashboardResponse aggregates the headline numbers for the admin
// dashboard.
type DashboardResponse struct {
	Members  MemberStats         `json:"members"`
	Payments PaymentStats        `json:"payments"`
	Finance  []MonthlyFinance    `json:"finance"`
	Recent   []*AuditLogResponse `json:"recent_activity"`
	Insight  string              `json:"insight,omitempty"`
}

type MemberStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Pending  int `json:"pending"`
}

type PaymentStats struct {
	PendingCount   int             `json:"pending_count"`
	OverdueCount   int             `json:"overdue_count"`
	OverdueAmount  decimal.Decimal `json:"overdue_amount"`
	CollectedMonth decimal.Decimal `json:"collected_this_month"`
}

// MonthlyFinance is one month of revenue vs expenses, most recent last.
type MonthlyFinance struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}
