package service

import (
	"context"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/billing"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	"github.com/gymflow/gymflow/internal/domain/plan"
	"github.com/gymflow/gymflow/internal/types"
)

// BillingService drives the recurring billing cycle and the reminder
// evaluation against the live payment set.
type BillingService interface {
	// RunCycle reconciles payment statuses and generates missing recurring
	// charges, then persists the corrected payment set atomically.
	RunCycle(ctx context.Context) (*dto.BillingCycleResponse, error)

	// GetReminders evaluates the configured reminder rules against the
	// current payment set. Reminders are derived, not stored.
	GetReminders(ctx context.Context) (*dto.ListNotificationsResponse, error)
}

type billingService struct {
	ServiceParams
}

func NewBillingService(params ServiceParams) BillingService {
	return &billingService{ServiceParams: params}
}

func (s *billingService) RunCycle(ctx context.Context) (*dto.BillingCycleResponse, error) {
	members, err := s.MemberRepo.List(ctx, member.NewNoLimitFilter())
	if err != nil {
		return nil, err
	}
	plans, err := s.PlanRepo.List(ctx, plan.NewNoLimitFilter())
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.List(ctx, payment.NewNoLimitFilter())
	if err != nil {
		return nil, err
	}

	result := billing.RunCycle(ctx, members, plans, payments, s.NowUTC())

	if len(result.SkippedMemberIDs) > 0 {
		s.Logger.Warnw("billing cycle skipped members with broken plan references",
			"member_ids", result.SkippedMemberIDs,
		)
	}

	if result.UpdatedCount > 0 || result.GeneratedCount > 0 {
		if err := s.PaymentRepo.ReplaceAll(ctx, result.Payments); err != nil {
			return nil, err
		}
		s.recordAudit(ctx, types.AuditActionBillingCycle, entityTypePayment, "", map[string]any{
			"updated_count":   result.UpdatedCount,
			"generated_count": result.GeneratedCount,
			"skipped_members": len(result.SkippedMemberIDs),
		})
	}

	s.Logger.Infow("billing cycle completed",
		"updated_count", result.UpdatedCount,
		"generated_count", result.GeneratedCount,
	)

	return dto.NewBillingCycleResponse(result.UpdatedCount, result.GeneratedCount), nil
}

func (s *billingService) GetReminders(ctx context.Context) (*dto.ListNotificationsResponse, error) {
	cfg := s.reminderConfig(ctx)

	payments, err := s.PaymentRepo.List(ctx, payment.NewNoLimitFilter())
	if err != nil {
		return nil, err
	}
	members, err := s.MemberRepo.List(ctx, member.NewNoLimitFilter())
	if err != nil {
		return nil, err
	}

	notifications := billing.EvaluateReminders(cfg, payments, members, s.NowUTC())

	items := make([]*dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		items[i] = &dto.NotificationResponse{Notification: n}
	}
	return &dto.ListNotificationsResponse{Items: items}, nil
}

// reminderConfig loads the stored reminder configuration, falling back to
// the shipped defaults when the setting is absent or unreadable.
func (s *billingService) reminderConfig(ctx context.Context) types.ReminderConfig {
	setting, err := s.SettingsRepo.GetByKey(ctx, types.SettingKeyBillingReminderConfig)
	if err != nil {
		return types.DefaultReminderConfig()
	}
	cfg, err := types.DecodeSettingValue(setting.Key, setting.Value)
	if err != nil {
		s.Logger.Warnw("invalid stored reminder configuration, using defaults", "error", err)
		return types.DefaultReminderConfig()
	}
	rc, ok := cfg.(types.ReminderConfig)
	if !ok {
		return types.DefaultReminderConfig()
	}
	return rc
}
