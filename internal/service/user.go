package service

import (
	"context"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/user"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

const entityTypeUser = "user"

type UserService interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id string) (*dto.UserResponse, error)
	GetUsers(ctx context.Context, filter *user.Filter) (*dto.ListUsersResponse, error)
	UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	ServiceParams
}

func NewUserService(params ServiceParams) UserService {
	return &userService{ServiceParams: params}
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.Auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionCreate, entityTypeUser, u.ID, map[string]any{
		"email": u.Email,
		"role":  u.Role,
	})

	return &dto.UserResponse{User: u}, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	if id == "" {
		return nil, ierr.NewError("user ID is required").
			WithHint("Please provide a valid user ID").
			Mark(ierr.ErrValidation)
	}

	u, err := s.UserRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{User: u}, nil
}

func (s *userService) GetUsers(ctx context.Context, filter *user.Filter) (*dto.ListUsersResponse, error) {
	if filter == nil {
		filter = user.NewFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	users, err := s.UserRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.UserRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.UserResponse, len(users))
	for i, u := range users {
		items[i] = &dto.UserResponse{User: u}
	}

	return &dto.ListUsersResponse{
		Items: items,
		Pagination: types.NewPaginationResponse(
			count,
			filter.GetLimit(),
			filter.GetOffset(),
		),
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.UserRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := s.Auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	u.Touch(ctx)

	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := s.UserRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionUpdate, entityTypeUser, u.ID, nil)

	return &dto.UserResponse{User: u}, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	u, err := s.UserRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	// A user cannot remove their own account.
	if types.GetUserID(ctx) == u.ID {
		return ierr.NewError("cannot delete your own account").
			WithHint("Ask another administrator to remove this account").
			Mark(ierr.ErrInvalidOperation)
	}

	if err := s.UserRepo.Delete(ctx, u.ID); err != nil {
		return err
	}

	s.recordAudit(ctx, types.AuditActionDelete, entityTypeUser, u.ID, map[string]any{
		"email": u.Email,
	})
	return nil
}
