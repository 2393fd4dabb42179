package billing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	"github.com/gymflow/gymflow/internal/domain/plan"
	"github.com/gymflow/gymflow/internal/types"
)

// maxBackfillCycles bounds how many missed cycles one run will backfill
// for a single member. A member reactivated after a long gap gets at most
// this many synthetic charges per run; the next run continues from the
// newest generated due date.
const maxBackfillCycles = 60

// CycleResult is the outcome of one billing cycle run.
type CycleResult struct {
	// Payments is the full corrected and re-sorted payment set.
	Payments []*payment.Payment

	// Generated holds only the newly created recurring charges.
	Generated []*payment.Payment

	// UpdatedCount is the number of pending payments marked overdue.
	UpdatedCount int

	// GeneratedCount is the number of new recurring charges.
	GeneratedCount int

	// SkippedMemberIDs lists billable members that were skipped because
	// their plan is missing or has a non-positive duration. These are data
	// integrity gaps for the caller to log, not errors.
	SkippedMemberIDs []string
}

// ReconcileStatuses returns a copy of the payment set where every pending
// payment whose due date has passed is marked overdue. Paid payments are
// never touched. Pure and idempotent.
func ReconcileStatuses(payments []*payment.Payment, today time.Time) ([]*payment.Payment, int) {
	day := truncateToDay(today)

	updated := 0
	out := make([]*payment.Payment, len(payments))
	for i, p := range payments {
		cp := p.Copy()
		if cp.PaymentStatus == types.PaymentStatusPending &&
			truncateToDay(cp.DueDate).Before(day) {
			cp.PaymentStatus = types.PaymentStatusOverdue
			updated++
		}
		out[i] = cp
	}
	return out, updated
}

// GenerateRecurringCharges produces the recurring charges that are due but
// do not yet exist. Only active members are billed. The anchor for a
// member is the due date of their most recent payment, or the join date
// for members with no payment history. The anchor advances one cadence at
// a time so that every missed cycle up to today is considered; at most one
// payment may exist per member per calendar month.
//
// The input is never mutated; only the new payment records are returned.
func GenerateRecurringCharges(
	ctx context.Context,
	members []*member.Member,
	plans []*plan.Plan,
	payments []*payment.Payment,
	today time.Time,
) ([]*payment.Payment, []string) {
	day := truncateToDay(today)
	plansByID := lo.KeyBy(plans, func(p *plan.Plan) string { return p.ID })

	// Existing cycle occupancy at (member, year, month) granularity, plus
	// the newest due date per member for anchoring.
	occupied := make(map[string]struct{}, len(payments))
	newestDue := make(map[string]time.Time, len(payments))
	for _, p := range payments {
		occupied[cycleKey(p.MemberID, p.DueDate)] = struct{}{}
		if cur, ok := newestDue[p.MemberID]; !ok || p.DueDate.After(cur) {
			newestDue[p.MemberID] = p.DueDate
		}
	}

	var generated []*payment.Payment
	var skipped []string

	for _, m := range members {
		if !m.IsBillable() {
			continue
		}

		pl, ok := plansByID[m.PlanID]
		if !ok || pl.DurationInMonths <= 0 {
			skipped = append(skipped, m.ID)
			continue
		}

		anchor, ok := newestDue[m.ID]
		if !ok {
			anchor = m.JoinDate
		}
		anchor = truncateToDay(anchor)

		for i := 0; i < maxBackfillCycles; i++ {
			next := addMonthsClamped(anchor, pl.DurationInMonths)
			if pl.DueDateDayOfMonth != nil {
				next = withDayOfMonth(next, *pl.DueDateDayOfMonth)
			}
			if next.After(day) {
				break
			}

			key := cycleKey(m.ID, next)
			if _, exists := occupied[key]; !exists {
				status := types.PaymentStatusPending
				if next.Before(day) {
					status = types.PaymentStatusOverdue
				}
				generated = append(generated, &payment.Payment{
					ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
					MemberID:      m.ID,
					PlanID:        pl.ID,
					Description:   fmt.Sprintf("Recurring charge for %s plan (%s)", pl.Name, next.Format("Jan 2006")),
					Amount:        pl.Price,
					DueDate:       next,
					PaymentStatus: status,
					BaseModel:     types.GetDefaultBaseModel(ctx),
				})
				occupied[key] = struct{}{}
			}

			anchor = next
		}
	}

	return generated, skipped
}

// RunCycle composes reconciliation and generation: statuses are corrected
// first, recurring charges are generated against the corrected set, and
// the merged result is sorted by due date descending.
func RunCycle(
	ctx context.Context,
	members []*member.Member,
	plans []*plan.Plan,
	payments []*payment.Payment,
	today time.Time,
) *CycleResult {
	reconciled, updated := ReconcileStatuses(payments, today)
	generated, skipped := GenerateRecurringCharges(ctx, members, plans, reconciled, today)

	all := make([]*payment.Payment, 0, len(reconciled)+len(generated))
	all = append(all, reconciled...)
	all = append(all, generated...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].DueDate.After(all[j].DueDate)
	})

	return &CycleResult{
		Payments:         all,
		Generated:        generated,
		UpdatedCount:     updated,
		GeneratedCount:   len(generated),
		SkippedMemberIDs: skipped,
	}
}

func cycleKey(memberID string, due time.Time) string {
	return fmt.Sprintf("%s:%s", memberID, due.Format("2006-01"))
}
