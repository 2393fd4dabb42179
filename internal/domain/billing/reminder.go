package billing

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	"github.com/gymflow/gymflow/internal/types"
)

// Notification is a billing reminder produced against the current payment
// set. Notifications are recomputed on each evaluation rather than stored;
// re-running with the same inputs yields the same reminders.
type Notification struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
}

// EvaluateReminders applies the three reminder rules to the payment set.
// Rules are checked in before-due, on-due, after-due order and each
// payment contributes at most one notification per run.
func EvaluateReminders(
	cfg types.ReminderConfig,
	payments []*payment.Payment,
	members []*member.Member,
	today time.Time,
) []Notification {
	day := truncateToDay(today)
	names := lo.SliceToMap(members, func(m *member.Member) (string, string) {
		return m.ID, m.Name
	})

	var out []Notification
	for _, p := range payments {
		due := truncateToDay(p.DueDate)
		name, ok := names[p.MemberID]
		if !ok {
			name = "N/A"
		}

		var title, message string
		switch {
		case cfg.BeforeDue.Enabled &&
			p.PaymentStatus == types.PaymentStatusPending &&
			due.Equal(day.AddDate(0, 0, cfg.BeforeDue.Days)):
			title = "Upcoming payment"
			message = fmt.Sprintf("Payment of %s for %s is due on %s",
				p.Amount.StringFixed(2), name, due.Format("Jan 2, 2006"))

		case cfg.OnDue.Enabled &&
			p.PaymentStatus == types.PaymentStatusPending &&
			due.Equal(day):
			title = "Payment due today"
			message = fmt.Sprintf("Payment of %s for %s is due today",
				p.Amount.StringFixed(2), name)

		case cfg.AfterDue.Enabled &&
			p.PaymentStatus == types.PaymentStatusOverdue &&
			due.Equal(day.AddDate(0, 0, -cfg.AfterDue.Days)):
			title = "Payment overdue"
			message = fmt.Sprintf("Payment of %s for %s was due on %s",
				p.Amount.StringFixed(2), name, due.Format("Jan 2, 2006"))

		default:
			continue
		}

		out = append(out, Notification{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NOTIFICATION),
			PaymentID: p.ID,
			Title:     title,
			Message:   message,
		})
	}
	return out
}
