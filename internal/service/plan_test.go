package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/member"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/testutil"
	"github.com/gymflow/gymflow/internal/types"
)

type PlanServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PlanService
	params  ServiceParams
}

func TestPlanService(t *testing.T) {
	suite.Run(t, new(PlanServiceSuite))
}

func (s *PlanServiceSuite) SetupTest() {
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
	s.service = NewPlanService(s.params)
}

func (s *PlanServiceSuite) TestCreatePlan() {
	resp, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:             "Monthly",
		Price:            decimal.NewFromInt(50),
		DurationInMonths: 1,
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("Monthly", resp.Name)
}

func (s *PlanServiceSuite) TestCreatePlanInvalidPrice() {
	_, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:             "Free",
		Price:            decimal.Zero,
		DurationInMonths: 1,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PlanServiceSuite) TestGetPlanIncludesMemberCount() {
	created, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:             "Monthly",
		Price:            decimal.NewFromInt(50),
		DurationInMonths: 1,
	})
	s.NoError(err)

	m := &member.Member{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MEMBER),
		Name:         "Alice",
		Email:        "alice@example.com",
		JoinDate:     s.GetNow(),
		PlanID:       created.ID,
		MemberStatus: types.MemberStatusActive,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().MemberRepo.Create(s.GetContext(), m))

	resp, err := s.service.GetPlan(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(1, resp.MemberCount)
}

func (s *PlanServiceSuite) TestUpdatePlan() {
	created, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:             "Monthly",
		Price:            decimal.NewFromInt(50),
		DurationInMonths: 1,
	})
	s.NoError(err)

	newPrice := decimal.NewFromInt(60)
	updated, err := s.service.UpdatePlan(s.GetContext(), created.ID, dto.UpdatePlanRequest{
		Price: &newPrice,
	})
	s.NoError(err)
	s.True(updated.Price.Equal(newPrice))
}

func (s *PlanServiceSuite) TestDeletePlan() {
	created, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:             "Monthly",
		Price:            decimal.NewFromInt(50),
		DurationInMonths: 1,
	})
	s.NoError(err)

	s.NoError(s.service.DeletePlan(s.GetContext(), created.ID))

	_, err = s.service.GetPlan(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
