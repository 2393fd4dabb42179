package service

import (
	"context"

	"github.com/gymflow/gymflow/internal/api/dto"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	ServiceParams
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{ServiceParams: params}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not leak whether the email exists.
		return nil, ierr.NewError("invalid credentials").
			WithHint("Email or password is incorrect").
			Mark(ierr.ErrPermissionDenied)
	}

	if err := s.Auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.Auth.GenerateUserToken(u.ID, u.Role)
	if err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionLogin, entityTypeUser, u.ID, map[string]any{
		"email": u.Email,
	})

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      &dto.UserResponse{User: u},
	}, nil
}
