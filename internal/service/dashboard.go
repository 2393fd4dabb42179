package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/auditlog"
	"github.com/gymflow/gymflow/internal/domain/expense"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	"github.com/gymflow/gymflow/internal/types"
)

// financeMonths is how many trailing months the finance chart covers.
const financeMonths = 6

// recentActivityLimit caps the audit entries shown on the dashboard.
const recentActivityLimit = 10

type DashboardService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	ServiceParams
	insight InsightService
}

func NewDashboardService(params ServiceParams, insight InsightService) DashboardService {
	return &dashboardService{ServiceParams: params, insight: insight}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	members, err := s.MemberRepo.List(ctx, member.NewNoLimitFilter())
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.List(ctx, payment.NewNoLimitFilter())
	if err != nil {
		return nil, err
	}
	expenses, err := s.ExpenseRepo.List(ctx, expense.NewNoLimitFilter())
	if err != nil {
		return nil, err
	}

	now := s.NowUTC()

	resp := &dto.DashboardResponse{
		Members:  memberStats(members),
		Payments: paymentStats(payments, now),
		Finance:  monthlyFinance(payments, expenses, now),
	}

	recentFilter := auditlog.NewFilter()
	recentFilter.QueryFilter.Limit = lo.ToPtr(recentActivityLimit)
	entries, err := s.AuditLogRepo.List(ctx, recentFilter)
	if err != nil {
		return nil, err
	}
	resp.Recent = make([]*dto.AuditLogResponse, len(entries))
	for i, entry := range entries {
		resp.Recent[i] = &dto.AuditLogResponse{AuditLog: entry}
	}

	if s.insight != nil {
		insight, err := s.insight.GetInsight(ctx, resp.Members, resp.Payments)
		if err == nil {
			resp.Insight = insight
		}
	}

	return resp, nil
}

func memberStats(members []*member.Member) dto.MemberStats {
	stats := dto.MemberStats{Total: len(members)}
	for _, m := range members {
		switch m.MemberStatus {
		case types.MemberStatusActive:
			stats.Active++
		case types.MemberStatusInactive:
			stats.Inactive++
		case types.MemberStatusPending:
			stats.Pending++
		}
	}
	return stats
}

func paymentStats(payments []*payment.Payment, now time.Time) dto.PaymentStats {
	stats := dto.PaymentStats{
		OverdueAmount:  decimal.Zero,
		CollectedMonth: decimal.Zero,
	}
	for _, p := range payments {
		switch p.PaymentStatus {
		case types.PaymentStatusPending:
			stats.PendingCount++
		case types.PaymentStatusOverdue:
			stats.OverdueCount++
			stats.OverdueAmount = stats.OverdueAmount.Add(p.Amount)
		case types.PaymentStatusPaid:
			if p.PaidDate != nil &&
				p.PaidDate.Year() == now.Year() && p.PaidDate.Month() == now.Month() {
				stats.CollectedMonth = stats.CollectedMonth.Add(p.Amount)
			}
		}
	}
	return stats
}

// monthlyFinance buckets paid revenue and expenses into the trailing
// months, oldest first.
func monthlyFinance(payments []*payment.Payment, expenses []*expense.Expense, now time.Time) []dto.MonthlyFinance {
	type bucket struct {
		revenue  decimal.Decimal
		expenses decimal.Decimal
	}

	buckets := make(map[string]*bucket, financeMonths)
	months := make([]string, 0, financeMonths)
	for i := financeMonths - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		key := first.AddDate(0, -i, 0).Format("Jan 2006")
		months = append(months, key)
		buckets[key] = &bucket{revenue: decimal.Zero, expenses: decimal.Zero}
	}

	for _, p := range payments {
		if p.PaymentStatus != types.PaymentStatusPaid || p.PaidDate == nil {
			continue
		}
		if b, ok := buckets[p.PaidDate.Format("Jan 2006")]; ok {
			b.revenue = b.revenue.Add(p.Amount)
		}
	}
	for _, e := range expenses {
		if b, ok := buckets[e.Date.Format("Jan 2006")]; ok {
			b.expenses = b.expenses.Add(e.Amount)
		}
	}

	out := make([]dto.MonthlyFinance, len(months))
	for i, key := range months {
		b := buckets[key]
		out[i] = dto.MonthlyFinance{
			Month:    key,
			Revenue:  b.revenue,
			Expenses: b.expenses,
			Net:      b.revenue.Sub(b.expenses),
		}
	}
	return out
}
