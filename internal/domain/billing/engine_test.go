package billing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	"github.com/gymflow/gymflow/internal/domain/plan"
	"github.com/gymflow/gymflow/internal/types"
)

func newTestPlan(id string, months int, dueDay *int) *plan.Plan {
	return &plan.Plan{
		ID:                id,
		Name:              "Monthly",
		Price:             decimal.NewFromInt(50),
		DurationInMonths:  months,
		DueDateDayOfMonth: dueDay,
		BaseModel:         types.BaseModel{Status: types.StatusPublished},
	}
}

func newTestMember(id, planID string, joined time.Time, status types.MemberStatus) *member.Member {
	return &member.Member{
		ID:           id,
		Name:         "Test Member",
		Email:        id + "@example.com",
		JoinDate:     joined,
		PlanID:       planID,
		MemberStatus: status,
		BaseModel:    types.BaseModel{Status: types.StatusPublished},
	}
}

func newTestPayment(id, memberID string, due time.Time, status types.PaymentStatus) *payment.Payment {
	p := &payment.Payment{
		ID:            id,
		MemberID:      memberID,
		PlanID:        "plan-1",
		Amount:        decimal.NewFromInt(50),
		DueDate:       due,
		PaymentStatus: status,
		BaseModel:     types.BaseModel{Status: types.StatusPublished},
	}
	if status == types.PaymentStatusPaid {
		p.PaidDate = lo.ToPtr(due)
	}
	return p
}

func TestReconcileStatuses(t *testing.T) {
	today := date(2024, time.April, 20)

	tests := []struct {
		name     string
		status   types.PaymentStatus
		due      time.Time
		expected types.PaymentStatus
	}{
		{
			name:     "pending_past_due_becomes_overdue",
			status:   types.PaymentStatusPending,
			due:      date(2024, time.April, 19),
			expected: types.PaymentStatusOverdue,
		},
		{
			name:     "pending_due_today_stays_pending",
			status:   types.PaymentStatusPending,
			due:      date(2024, time.April, 20),
			expected: types.PaymentStatusPending,
		},
		{
			name:     "pending_future_stays_pending",
			status:   types.PaymentStatusPending,
			due:      date(2024, time.May, 1),
			expected: types.PaymentStatusPending,
		},
		{
			name:     "paid_past_due_untouched",
			status:   types.PaymentStatusPaid,
			due:      date(2024, time.January, 1),
			expected: types.PaymentStatusPaid,
		},
		{
			name:     "overdue_stays_overdue",
			status:   types.PaymentStatusOverdue,
			due:      date(2024, time.January, 1),
			expected: types.PaymentStatusOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []*payment.Payment{newTestPayment("pay-1", "member-1", tt.due, tt.status)}
			out, _ := ReconcileStatuses(in, today)
			require.Len(t, out, 1)
			assert.Equal(t, tt.expected, out[0].PaymentStatus)
			// Input is never mutated.
			assert.Equal(t, tt.status, in[0].PaymentStatus)
		})
	}
}

func TestReconcileStatusesIdempotent(t *testing.T) {
	today := date(2024, time.April, 20)
	in := []*payment.Payment{
		newTestPayment("pay-1", "member-1", date(2024, time.March, 15), types.PaymentStatusPending),
		newTestPayment("pay-2", "member-1", date(2024, time.April, 25), types.PaymentStatusPending),
		newTestPayment("pay-3", "member-2", date(2024, time.February, 1), types.PaymentStatusPaid),
	}

	once, updatedOnce := ReconcileStatuses(in, today)
	twice, updatedTwice := ReconcileStatuses(once, today)

	assert.Equal(t, 1, updatedOnce)
	assert.Equal(t, 0, updatedTwice)
	assert.Equal(t, once, twice)
}

func TestGenerateRecurringChargesMonthlyBackfill(t *testing.T) {
	ctx := context.Background()
	today := date(2024, time.April, 20)
	pl := newTestPlan("plan-1", 1, nil)
	m := newTestMember("member-1", "plan-1", date(2024, time.January, 15), types.MemberStatusActive)

	generated, skipped := GenerateRecurringCharges(ctx, []*member.Member{m}, []*plan.Plan{pl}, nil, today)

	require.Empty(t, skipped)
	require.Len(t, generated, 3)
	assert.Equal(t, date(2024, time.February, 15), generated[0].DueDate)
	assert.Equal(t, date(2024, time.March, 15), generated[1].DueDate)
	assert.Equal(t, date(2024, time.April, 15), generated[2].DueDate)
	for _, p := range generated {
		assert.Equal(t, types.PaymentStatusOverdue, p.PaymentStatus)
		assert.True(t, p.Amount.Equal(pl.Price))
		assert.Equal(t, "member-1", p.MemberID)
	}

	// Re-running against the generated set produces nothing new.
	again, _ := GenerateRecurringCharges(ctx, []*member.Member{m}, []*plan.Plan{pl}, generated, today)
	assert.Empty(t, again)
}

func TestGenerateRecurringChargesDueDayOverride(t *testing.T) {
	ctx := context.Background()
	today := date(2024, time.March, 1)
	pl := newTestPlan("plan-1", 1, lo.ToPtr(5))
	m := newTestMember("member-1", "plan-1", date(2024, time.January, 10), types.MemberStatusActive)

	generated, _ := GenerateRecurringCharges(ctx, []*member.Member{m}, []*plan.Plan{pl}, nil, today)

	require.Len(t, generated, 1)
	assert.Equal(t, date(2024, time.February, 5), generated[0].DueDate)
	assert.Equal(t, types.PaymentStatusOverdue, generated[0].PaymentStatus)
}

func TestGenerateRecurringChargesDueDayClampsShortMonth(t *testing.T) {
	ctx := context.Background()
	today := date(2023, time.March, 5)
	pl := newTestPlan("plan-1", 1, lo.ToPtr(31))
	m := newTestMember("member-1", "plan-1", date(2023, time.January, 31), types.MemberStatusActive)

	generated, _ := GenerateRecurringCharges(ctx, []*member.Member{m}, []*plan.Plan{pl}, nil, today)

	// Day 31 in February clamps to the month end instead of rolling into
	// March; the cycle stays in its intended month.
	require.Len(t, generated, 1)
	assert.Equal(t, date(2023, time.February, 28), generated[0].DueDate)
}

func TestGenerateRecurringChargesDueTodayIsPending(t *testing.T) {
	ctx := context.Background()
	today := date(2024, time.February, 15)
	pl := newTestPlan("plan-1", 1, nil)
	m := newTestMember("member-1", "plan-1", date(2024, time.January, 15), types.MemberStatusActive)

	generated, _ := GenerateRecurringCharges(ctx, []*member.Member{m}, []*plan.Plan{pl}, nil, today)

	require.Len(t, generated, 1)
	assert.Equal(t, today, generated[0].DueDate)
	assert.Equal(t, types.PaymentStatusPending, generated[0].PaymentStatus)
}

func TestGenerateRecurringChargesExcludesNonActiveMembers(t *testing.T) {
	ctx := context.Background()
	today := date(2024, time.June, 1)
	pl := newTestPlan("plan-1", 1, nil)
	joined := date(2024, time.January, 1)

	members := []*member.Member{
		newTestMember("member-inactive", "plan-1", joined, types.MemberStatusInactive),
		newTestMember("member-pending", "plan-1", joined, types.MemberStatusPending),
	}

	generated, skipped := GenerateRecurringCharges(ctx, members, []*plan.Plan{pl}, nil, today)
	assert.Empty(t, generated)
	assert.Empty(t, skipped)
}

func TestGenerateRecurringChargesSkipsBrokenPlanReferences(t *testing.T) {
	ctx := context.Background()
	today := date(2024, time.June, 1)
	joined := date(2024, time.January, 1)

	zeroDuration := newTestPlan("plan-zero", 1, nil)
	zeroDuration.DurationInMonths = 0

	members := []*member.Member{
		newTestMember("member-orphan", "plan-missing", joined, types.MemberStatusActive),
		newTestMember("member-zero", "plan-zero", joined, types.MemberStatusActive),
	}

	generated, skipped := GenerateRecurringCharges(ctx, members, []*plan.Plan{zeroDuration}, nil, today)
	assert.Empty(t, generated)
	assert.ElementsMatch(t, []string{"member-orphan", "member-zero"}, skipped)
}

func TestGenerateRecurringChargesAnchorsOnLatestPayment(t *testing.T) {
	ctx := context.Background()
	today := date(2024, time.May, 1)
	pl := newTestPlan("plan-1", 1, nil)
	m := newTestMember("member-1", "plan-1", date(2023, time.June, 10), types.MemberStatusActive)

	existing := []*payment.Payment{
		newTestPayment("pay-1", "member-1", date(2024, time.February, 10), types.PaymentStatusPaid),
		newTestPayment("pay-2", "member-1", date(2024, time.March, 10), types.PaymentStatusPaid),
	}

	generated, _ := GenerateRecurringCharges(ctx, []*member.Member{m}, []*plan.Plan{pl}, existing, today)

	// Anchored on the March payment, not the join date.
	require.Len(t, generated, 1)
	assert.Equal(t, date(2024, time.April, 10), generated[0].DueDate)
}

func TestGenerateRecurringChargesBackfillCap(t *testing.T) {
	ctx := context.Background()
	today := date(2024, time.June, 1)
	pl := newTestPlan("plan-1", 1, nil)
	// Dormant for a decade before reactivation.
	m := newTestMember("member-1", "plan-1", date(2014, time.January, 15), types.MemberStatusActive)

	generated, _ := GenerateRecurringCharges(ctx, []*member.Member{m}, []*plan.Plan{pl}, nil, today)
	assert.Len(t, generated, maxBackfillCycles)
}

func TestGenerateRecurringChargesQuarterlyCadence(t *testing.T) {
	ctx := context.Background()
	today := date(2024, time.December, 1)
	pl := newTestPlan("plan-1", 3, nil)
	m := newTestMember("member-1", "plan-1", date(2024, time.January, 20), types.MemberStatusActive)

	generated, _ := GenerateRecurringCharges(ctx, []*member.Member{m}, []*plan.Plan{pl}, nil, today)

	require.Len(t, generated, 3)
	assert.Equal(t, date(2024, time.April, 20), generated[0].DueDate)
	assert.Equal(t, date(2024, time.July, 20), generated[1].DueDate)
	assert.Equal(t, date(2024, time.October, 20), generated[2].DueDate)
}

func TestRunCycle(t *testing.T) {
	ctx := context.Background()
	today := date(2024, time.April, 20)
	pl := newTestPlan("plan-1", 1, nil)
	m := newTestMember("member-1", "plan-1", date(2024, time.February, 15), types.MemberStatusActive)

	existing := []*payment.Payment{
		newTestPayment("pay-1", "member-1", date(2024, time.March, 15), types.PaymentStatusPending),
	}

	result := RunCycle(ctx, []*member.Member{m}, []*plan.Plan{pl}, existing, today)

	// The stale March payment flips to overdue and April is generated.
	assert.Equal(t, 1, result.UpdatedCount)
	assert.Equal(t, 1, result.GeneratedCount)
	require.Len(t, result.Payments, 2)

	// Sorted by due date descending.
	assert.Equal(t, date(2024, time.April, 15), result.Payments[0].DueDate)
	assert.Equal(t, date(2024, time.March, 15), result.Payments[1].DueDate)
	assert.Equal(t, types.PaymentStatusOverdue, result.Payments[1].PaymentStatus)

	// Re-running over the corrected set changes nothing.
	second := RunCycle(ctx, []*member.Member{m}, []*plan.Plan{pl}, result.Payments, today)
	assert.Equal(t, 0, second.UpdatedCount)
	assert.Equal(t, 0, second.GeneratedCount)
}

func TestRunCycleOnePaymentPerMemberMonth(t *testing.T) {
	ctx := context.Background()
	today := date(2024, time.August, 10)
	pl := newTestPlan("plan-1", 1, nil)

	members := []*member.Member{
		newTestMember("member-1", "plan-1", date(2024, time.January, 15), types.MemberStatusActive),
		newTestMember("member-2", "plan-1", date(2024, time.March, 31), types.MemberStatusActive),
	}
	existing := []*payment.Payment{
		newTestPayment("pay-1", "member-1", date(2024, time.February, 15), types.PaymentStatusPaid),
		newTestPayment("pay-2", "member-1", date(2024, time.March, 15), types.PaymentStatusPending),
	}

	result := RunCycle(ctx, members, []*plan.Plan{pl}, existing, today)

	seen := map[string]bool{}
	for _, p := range result.Payments {
		key := fmt.Sprintf("%s:%s", p.MemberID, p.DueDate.Format("2006-01"))
		assert.False(t, seen[key], "duplicate cycle %s", key)
		seen[key] = true
	}
}
