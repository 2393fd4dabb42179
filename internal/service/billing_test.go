package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/gymflow/gymflow/internal/domain/auditlog"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	"github.com/gymflow/gymflow/internal/domain/plan"
	"github.com/gymflow/gymflow/internal/domain/settings"
	"github.com/gymflow/gymflow/internal/testutil"
	"github.com/gymflow/gymflow/internal/types"
)

type BillingServiceSuite struct {
	testutil.BaseServiceTestSuite
	service BillingService
	params  ServiceParams
}

func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceSuite))
}

func (s *BillingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.params = ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Auth:         s.GetAuth(),
		MemberRepo:   stores.MemberRepo,
		PlanRepo:     stores.PlanRepo,
		PaymentRepo:  stores.PaymentRepo,
		ExpenseRepo:  stores.ExpenseRepo,
		UserRepo:     stores.UserRepo,
		AuditLogRepo: stores.AuditLogRepo,
		SettingsRepo: stores.SettingsRepo,
		Now:          s.ClockNow,
	}
	s.service = NewBillingService(s.params)
}

func (s *BillingServiceSuite) createPlan(durationMonths int) *plan.Plan {
	pl := &plan.Plan{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:             "Monthly",
		Price:            decimal.NewFromInt(50),
		DurationInMonths: durationMonths,
		BaseModel:        types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), pl))
	return pl
}

func (s *BillingServiceSuite) createMember(planID string, status types.MemberStatus, joined time.Time) *member.Member {
	m := &member.Member{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MEMBER),
		Name:         "Test Member",
		Email:        "member@example.com",
		JoinDate:     joined,
		PlanID:       planID,
		MemberStatus: status,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().MemberRepo.Create(s.GetContext(), m))
	return m
}

func (s *BillingServiceSuite) TestRunCycleGeneratesCharges() {
	pl := s.createPlan(1)
	// Joined two months before the frozen clock, no payment history.
	s.createMember(pl.ID, types.MemberStatusActive, s.GetNow().AddDate(0, -2, 0))

	resp, err := s.service.RunCycle(s.GetContext())
	s.NoError(err)
	s.Equal(2, resp.GeneratedCount)
	s.Equal(0, resp.UpdatedCount)
	s.Equal("2 charge(s) generated", resp.Message)

	payments, err := s.GetStores().PaymentRepo.List(s.GetContext(), payment.NewNoLimitFilter())
	s.NoError(err)
	s.Len(payments, 2)
}

func (s *BillingServiceSuite) TestRunCycleRecordsAuditEntry() {
	pl := s.createPlan(1)
	s.createMember(pl.ID, types.MemberStatusActive, s.GetNow().AddDate(0, -1, 0))

	_, err := s.service.RunCycle(s.GetContext())
	s.NoError(err)

	filter := auditlog.NewFilter()
	filter.Actions = []types.AuditAction{types.AuditActionBillingCycle}
	entries, err := s.GetStores().AuditLogRepo.List(s.GetContext(), filter)
	s.NoError(err)
	s.Len(entries, 1)
}

func (s *BillingServiceSuite) TestRunCycleIdempotent() {
	pl := s.createPlan(1)
	s.createMember(pl.ID, types.MemberStatusActive, s.GetNow().AddDate(0, -3, 0))

	first, err := s.service.RunCycle(s.GetContext())
	s.NoError(err)
	s.Equal(3, first.GeneratedCount)

	second, err := s.service.RunCycle(s.GetContext())
	s.NoError(err)
	s.Equal(0, second.GeneratedCount)
	s.Equal(0, second.UpdatedCount)
	s.Empty(second.Message)
}

func (s *BillingServiceSuite) TestRunCycleMarksOverdue() {
	pl := s.createPlan(1)
	m := s.createMember(pl.ID, types.MemberStatusInactive, s.GetNow().AddDate(0, -2, 0))

	p := &payment.Payment{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		MemberID:      m.ID,
		PlanID:        pl.ID,
		Description:   "Membership fee",
		Amount:        pl.Price,
		DueDate:       s.GetNow().AddDate(0, 0, -5),
		PaymentStatus: types.PaymentStatusPending,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PaymentRepo.Create(s.GetContext(), p))

	resp, err := s.service.RunCycle(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.UpdatedCount)
	s.Equal(0, resp.GeneratedCount)
	s.Equal("1 payment(s) marked overdue", resp.Message)

	stored, err := s.GetStores().PaymentRepo.Get(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(types.PaymentStatusOverdue, stored.PaymentStatus)
}

func (s *BillingServiceSuite) TestGetRemindersWithDefaults() {
	pl := s.createPlan(1)
	m := s.createMember(pl.ID, types.MemberStatusActive, s.GetNow().AddDate(0, -1, 0))

	p := &payment.Payment{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		MemberID:      m.ID,
		PlanID:        pl.ID,
		Amount:        pl.Price,
		DueDate:       s.GetNow(),
		PaymentStatus: types.PaymentStatusPending,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PaymentRepo.Create(s.GetContext(), p))

	resp, err := s.service.GetReminders(s.GetContext())
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Payment due today", resp.Items[0].Title)
	s.Equal(p.ID, resp.Items[0].PaymentID)
}

func (s *BillingServiceSuite) TestGetRemindersUsesStoredConfig() {
	pl := s.createPlan(1)
	m := s.createMember(pl.ID, types.MemberStatusActive, s.GetNow().AddDate(0, -1, 0))

	cfg := types.ReminderConfig{
		BeforeDue: types.ReminderRule{Enabled: true, Days: 5},
	}
	value, err := types.EncodeSettingValue(cfg)
	s.NoError(err)
	s.NoError(s.GetStores().SettingsRepo.Create(s.GetContext(), &settings.Setting{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SETTING),
		Key:       types.SettingKeyBillingReminderConfig,
		Value:     value,
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}))

	p := &payment.Payment{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		MemberID:      m.ID,
		PlanID:        pl.ID,
		Amount:        pl.Price,
		DueDate:       s.GetNow().AddDate(0, 0, 5),
		PaymentStatus: types.PaymentStatusPending,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PaymentRepo.Create(s.GetContext(), p))

	resp, err := s.service.GetReminders(s.GetContext())
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Upcoming payment", resp.Items[0].Title)
}

func (s *BillingServiceSuite) TestRunCycleSkipsBrokenPlanReference() {
	pl := s.createPlan(1)
	good := s.createMember(pl.ID, types.MemberStatusActive, s.GetNow().AddDate(0, -1, 0))

	orphan := &member.Member{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MEMBER),
		Name:         "Orphan",
		Email:        "orphan@example.com",
		JoinDate:     s.GetNow().AddDate(0, -1, 0),
		PlanID:       "plan_missing",
		MemberStatus: types.MemberStatusActive,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().MemberRepo.Create(s.GetContext(), orphan))

	resp, err := s.service.RunCycle(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.GeneratedCount)

	payments, err := s.GetStores().PaymentRepo.List(s.GetContext(), payment.NewNoLimitFilter())
	s.NoError(err)
	memberIDs := lo.Map(payments, func(p *payment.Payment, _ int) string { return p.MemberID })
	s.Equal([]string{good.ID}, memberIDs)
}
