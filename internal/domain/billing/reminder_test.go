package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	"github.com/gymflow/gymflow/internal/types"
)

func TestEvaluateReminders(t *testing.T) {
	today := date(2024, time.April, 20)
	cfg := types.ReminderConfig{
		BeforeDue: types.ReminderRule{Enabled: true, Days: 3},
		OnDue:     types.ReminderRule{Enabled: true},
		AfterDue:  types.ReminderRule{Enabled: true, Days: 2},
	}
	members := []*member.Member{
		newTestMember("member-1", "plan-1", date(2024, time.January, 1), types.MemberStatusActive),
	}

	tests := []struct {
		name          string
		status        types.PaymentStatus
		due           time.Time
		expectedTitle string
	}{
		{
			name:          "before_due_window",
			status:        types.PaymentStatusPending,
			due:           date(2024, time.April, 23),
			expectedTitle: "Upcoming payment",
		},
		{
			name:          "due_today",
			status:        types.PaymentStatusPending,
			due:           date(2024, time.April, 20),
			expectedTitle: "Payment due today",
		},
		{
			name:          "after_due_window",
			status:        types.PaymentStatusOverdue,
			due:           date(2024, time.April, 18),
			expectedTitle: "Payment overdue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := []*payment.Payment{
				newTestPayment("pay-1", "member-1", tt.due, tt.status),
			}
			out := EvaluateReminders(cfg, payments, members, today)
			require.Len(t, out, 1)
			assert.Equal(t, tt.expectedTitle, out[0].Title)
			assert.Equal(t, "pay-1", out[0].PaymentID)
		})
	}
}

func TestEvaluateRemindersOutsideWindows(t *testing.T) {
	today := date(2024, time.April, 20)
	cfg := types.DefaultReminderConfig()
	members := []*member.Member{
		newTestMember("member-1", "plan-1", date(2024, time.January, 1), types.MemberStatusActive),
	}

	payments := []*payment.Payment{
		// Pending but five days out; before-due fires at three.
		newTestPayment("pay-1", "member-1", date(2024, time.April, 25), types.PaymentStatusPending),
		// Overdue but a week late; after-due fires at two days.
		newTestPayment("pay-2", "member-1", date(2024, time.April, 13), types.PaymentStatusOverdue),
		// Paid payments never generate reminders.
		newTestPayment("pay-3", "member-1", date(2024, time.April, 20), types.PaymentStatusPaid),
	}

	out := EvaluateReminders(cfg, payments, members, today)
	assert.Empty(t, out)
}

func TestEvaluateRemindersDisabledRules(t *testing.T) {
	today := date(2024, time.April, 20)
	cfg := types.ReminderConfig{
		BeforeDue: types.ReminderRule{Enabled: false, Days: 3},
		OnDue:     types.ReminderRule{Enabled: false},
		AfterDue:  types.ReminderRule{Enabled: false, Days: 2},
	}
	members := []*member.Member{
		newTestMember("member-1", "plan-1", date(2024, time.January, 1), types.MemberStatusActive),
	}
	payments := []*payment.Payment{
		newTestPayment("pay-1", "member-1", date(2024, time.April, 20), types.PaymentStatusPending),
		newTestPayment("pay-2", "member-1", date(2024, time.April, 18), types.PaymentStatusOverdue),
	}

	out := EvaluateReminders(cfg, payments, members, today)
	assert.Empty(t, out)
}

func TestEvaluateRemindersOneNotificationPerPayment(t *testing.T) {
	today := date(2024, time.April, 20)
	// Misconfigured so the before-due and after-due windows land on the
	// same date relative to today.
	cfg := types.ReminderConfig{
		BeforeDue: types.ReminderRule{Enabled: true, Days: 0},
		OnDue:     types.ReminderRule{Enabled: true},
		AfterDue:  types.ReminderRule{Enabled: true, Days: 0},
	}
	members := []*member.Member{
		newTestMember("member-1", "plan-1", date(2024, time.January, 1), types.MemberStatusActive),
	}
	payments := []*payment.Payment{
		newTestPayment("pay-1", "member-1", date(2024, time.April, 20), types.PaymentStatusPending),
	}

	out := EvaluateReminders(cfg, payments, members, today)
	require.Len(t, out, 1)
	// First matching rule wins.
	assert.Equal(t, "Upcoming payment", out[0].Title)
}

func TestEvaluateRemindersOrphanedMember(t *testing.T) {
	today := date(2024, time.April, 20)
	cfg := types.DefaultReminderConfig()

	payments := []*payment.Payment{
		newTestPayment("pay-1", "member-deleted", date(2024, time.April, 20), types.PaymentStatusPending),
	}

	out := EvaluateReminders(cfg, payments, nil, today)
	require.Len(t, out, 1)
	assert.Contains(t, out[0].Message, "N/A")
}
