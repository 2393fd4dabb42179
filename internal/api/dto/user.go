package dto

import (
	"github.com/gymflow/gymflow/internal/domain/user"
	"github.com/gymflow/gymflow/internal/types"
	"github.com/gymflow/gymflow/internal/validator"
)

type CreateUserRequest struct {
	Name     string         `json:"name" validate:"required"`
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=8"`
	Role     types.UserRole `json:"role" validate:"required"`
}

func (r *CreateUserRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Role.Validate()
}

type UpdateUserRequest struct {
	Name     *string         `json:"name,omitempty"`
	Email    *string         `json:"email,omitempty" validate:"omitempty,email"`
	Password *string         `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     *types.UserRole `json:"role,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Role != nil {
		return r.Role.Validate()
	}
	return nil
}

type UserResponse struct {
	*user.User
}

type ListUsersResponse struct {
	Items      []*UserResponse          `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
