package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/user"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/testutil"
	"github.com/gymflow/gymflow/internal/types"
)

type AuthServiceSuite struct {
	testutil.BaseServiceTestSuite
	service AuthService
	user    *user.User
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
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
	s.service = NewAuthService(params)

	hash, err := s.GetAuth().HashPassword("secret12345")
	s.NoError(err)
	s.user = &user.User{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         types.UserRoleAdmin,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(stores.UserRepo.Create(s.GetContext(), s.user))
}

func (s *AuthServiceSuite) TestLogin() {
	resp, err := s.service.Login(s.GetContext(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret12345",
	})
	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(s.user.ID, resp.User.ID)

	claims, err := s.GetAuth().VerifyToken(resp.Token)
	s.NoError(err)
	s.Equal(s.user.ID, claims.UserID)
	s.Equal(types.UserRoleAdmin, claims.Role)
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.Login(s.GetContext(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AuthServiceSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(s.GetContext(), dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret12345",
	})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}
