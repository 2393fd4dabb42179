package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	"github.com/gymflow/gymflow/internal/domain/plan"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/testutil"
	"github.com/gymflow/gymflow/internal/types"
)

type PaymentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PaymentService
	plan    *plan.Plan
	member  *member.Member
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	params := ServiceParams{
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
	s.service = NewPaymentService(params)

	ctx := s.GetContext()
	s.plan = &plan.Plan{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:             "Monthly",
		Price:            decimal.NewFromInt(50),
		DurationInMonths: 1,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
	s.NoError(stores.PlanRepo.Create(ctx, s.plan))

	s.member = &member.Member{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MEMBER),
		Name:         "Alice",
		Email:        "alice@example.com",
		JoinDate:     s.GetNow().AddDate(0, -1, 0),
		PlanID:       s.plan.ID,
		MemberStatus: types.MemberStatusActive,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
	s.NoError(stores.MemberRepo.Create(ctx, s.member))
}

func (s *PaymentServiceSuite) TestRecordPayment() {
	resp, err := s.service.RecordPayment(s.GetContext(), dto.CreatePaymentRequest{
		MemberID: s.member.ID,
		Amount:   decimal.NewFromInt(50),
		DueDate:  s.GetNow(),
	})
	s.NoError(err)
	s.Equal(types.PaymentStatusPending, resp.PaymentStatus)
	s.Equal(s.plan.ID, resp.PlanID)
	s.Equal("Alice", resp.MemberName)
	s.Equal("Monthly", resp.PlanName)
}

func (s *PaymentServiceSuite) TestRecordPaymentUnknownMember() {
	_, err := s.service.RecordPayment(s.GetContext(), dto.CreatePaymentRequest{
		MemberID: "member_missing",
		Amount:   decimal.NewFromInt(50),
		DueDate:  s.GetNow(),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceSuite) TestConfirmPayment() {
	created, err := s.service.RecordPayment(s.GetContext(), dto.CreatePaymentRequest{
		MemberID: s.member.ID,
		Amount:   decimal.NewFromInt(50),
		DueDate:  s.GetNow().AddDate(0, 0, -3),
	})
	s.NoError(err)

	confirmed, err := s.service.ConfirmPayment(s.GetContext(), created.ID, dto.ConfirmPaymentRequest{})
	s.NoError(err)
	s.Equal(types.PaymentStatusPaid, confirmed.PaymentStatus)
	s.NotNil(confirmed.PaidDate)
	s.Equal(s.GetNow(), *confirmed.PaidDate)
}

func (s *PaymentServiceSuite) TestConfirmPaymentWithExplicitDate() {
	created, err := s.service.RecordPayment(s.GetContext(), dto.CreatePaymentRequest{
		MemberID: s.member.ID,
		Amount:   decimal.NewFromInt(50),
		DueDate:  s.GetNow(),
	})
	s.NoError(err)

	paidAt := s.GetNow().AddDate(0, 0, -1)
	confirmed, err := s.service.ConfirmPayment(s.GetContext(), created.ID, dto.ConfirmPaymentRequest{
		PaidDate: &paidAt,
	})
	s.NoError(err)
	s.Equal(paidAt, *confirmed.PaidDate)
}

func (s *PaymentServiceSuite) TestConfirmPaymentAlreadyPaid() {
	created, err := s.service.RecordPayment(s.GetContext(), dto.CreatePaymentRequest{
		MemberID: s.member.ID,
		Amount:   decimal.NewFromInt(50),
		DueDate:  s.GetNow(),
	})
	s.NoError(err)

	_, err = s.service.ConfirmPayment(s.GetContext(), created.ID, dto.ConfirmPaymentRequest{})
	s.NoError(err)

	_, err = s.service.ConfirmPayment(s.GetContext(), created.ID, dto.ConfirmPaymentRequest{})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PaymentServiceSuite) TestUpdatePaymentClearsPaidDateOnStatusRevert() {
	paidAt := s.GetNow()
	created, err := s.service.RecordPayment(s.GetContext(), dto.CreatePaymentRequest{
		MemberID:      s.member.ID,
		Amount:        decimal.NewFromInt(50),
		DueDate:       s.GetNow(),
		PaidDate:      &paidAt,
		PaymentStatus: types.PaymentStatusPaid,
	})
	s.NoError(err)

	pending := types.PaymentStatusPending
	updated, err := s.service.UpdatePayment(s.GetContext(), created.ID, dto.UpdatePaymentRequest{
		PaymentStatus: &pending,
	})
	s.NoError(err)
	s.Equal(types.PaymentStatusPending, updated.PaymentStatus)
	s.Nil(updated.PaidDate)
}

func (s *PaymentServiceSuite) TestGetPaymentsFilterByStatus() {
	_, err := s.service.RecordPayment(s.GetContext(), dto.CreatePaymentRequest{
		MemberID: s.member.ID,
		Amount:   decimal.NewFromInt(50),
		DueDate:  s.GetNow(),
	})
	s.NoError(err)

	paidAt := s.GetNow()
	_, err = s.service.RecordPayment(s.GetContext(), dto.CreatePaymentRequest{
		MemberID:      s.member.ID,
		Amount:        decimal.NewFromInt(50),
		DueDate:       s.GetNow().AddDate(0, -1, 0),
		PaidDate:      &paidAt,
		PaymentStatus: types.PaymentStatusPaid,
	})
	s.NoError(err)

	filter := payment.NewFilter()
	filter.PaymentStatuses = []types.PaymentStatus{types.PaymentStatusPending}
	resp, err := s.service.GetPayments(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(types.PaymentStatusPending, resp.Items[0].PaymentStatus)
}

func (s *PaymentServiceSuite) TestDeletePayment() {
	created, err := s.service.RecordPayment(s.GetContext(), dto.CreatePaymentRequest{
		MemberID: s.member.ID,
		Amount:   decimal.NewFromInt(50),
		DueDate:  s.GetNow(),
	})
	s.NoError(err)

	s.NoError(s.service.DeletePayment(s.GetContext(), created.ID))

	_, err = s.service.GetPayment(s.GetContext(), created.ID)
	s.Error(err)
}
