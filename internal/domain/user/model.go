package user

import (
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// User is a staff account with role-based access to the administration API.
type User struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Role         types.UserRole `json:"role"`
	types.BaseModel
}

func (u *User) Validate() error {
	if u.Name == "" {
		return ierr.NewError("name is required").
			WithHint("User name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if u.Email == "" {
		return ierr.NewError("email is required").
			WithHint("User email cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if u.PasswordHash == "" {
		return ierr.NewError("password is required").
			WithHint("User password cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return u.Role.Validate()
}
