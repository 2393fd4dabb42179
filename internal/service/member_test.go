package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/plan"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/testutil"
	"github.com/gymflow/gymflow/internal/types"
)

type MemberServiceSuite struct {
	testutil.BaseServiceTestSuite
	service MemberService
	plan    *plan.Plan
}

func TestMemberService(t *testing.T) {
	suite.Run(t, new(MemberServiceSuite))
}

func (s *MemberServiceSuite) SetupTest() {
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
	s.service = NewMemberService(params)

	s.plan = &plan.Plan{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		Name:             "Monthly",
		Price:            decimal.NewFromInt(50),
		DurationInMonths: 1,
		BaseModel:        types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(stores.PlanRepo.Create(s.GetContext(), s.plan))
}

func (s *MemberServiceSuite) TestCreateMember() {
	resp, err := s.service.CreateMember(s.GetContext(), dto.CreateMemberRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		JoinDate: s.GetNow(),
		PlanID:   s.plan.ID,
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal(types.MemberStatusActive, resp.MemberStatus)
	s.Equal("Monthly", resp.PlanName)
}

func (s *MemberServiceSuite) TestCreateMemberUnknownPlan() {
	_, err := s.service.CreateMember(s.GetContext(), dto.CreateMemberRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		JoinDate: s.GetNow(),
		PlanID:   "plan_missing",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *MemberServiceSuite) TestCreateMemberInvalidEmail() {
	_, err := s.service.CreateMember(s.GetContext(), dto.CreateMemberRequest{
		Name:     "Alice",
		Email:    "not-an-email",
		JoinDate: s.GetNow(),
		PlanID:   s.plan.ID,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *MemberServiceSuite) TestUpdateMemberStatus() {
	created, err := s.service.CreateMember(s.GetContext(), dto.CreateMemberRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		JoinDate: s.GetNow(),
		PlanID:   s.plan.ID,
	})
	s.NoError(err)

	inactive := types.MemberStatusInactive
	updated, err := s.service.UpdateMember(s.GetContext(), created.ID, dto.UpdateMemberRequest{
		MemberStatus: &inactive,
	})
	s.NoError(err)
	s.Equal(types.MemberStatusInactive, updated.MemberStatus)
}

func (s *MemberServiceSuite) TestUpdateMemberUnknownPlan() {
	created, err := s.service.CreateMember(s.GetContext(), dto.CreateMemberRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		JoinDate: s.GetNow(),
		PlanID:   s.plan.ID,
	})
	s.NoError(err)

	missing := "plan_missing"
	_, err = s.service.UpdateMember(s.GetContext(), created.ID, dto.UpdateMemberRequest{
		PlanID: &missing,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *MemberServiceSuite) TestGetMembersResolvesPlanNames() {
	_, err := s.service.CreateMember(s.GetContext(), dto.CreateMemberRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		JoinDate: s.GetNow(),
		PlanID:   s.plan.ID,
	})
	s.NoError(err)

	resp, err := s.service.GetMembers(s.GetContext(), member.NewFilter())
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Monthly", resp.Items[0].PlanName)
	s.Equal(1, resp.Pagination.Total)
}

func (s *MemberServiceSuite) TestDeleteMember() {
	created, err := s.service.CreateMember(s.GetContext(), dto.CreateMemberRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		JoinDate: s.GetNow(),
		PlanID:   s.plan.ID,
	})
	s.NoError(err)

	s.NoError(s.service.DeleteMember(s.GetContext(), created.ID))

	_, err = s.service.GetMember(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
