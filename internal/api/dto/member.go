package dto

import (
	"context"
	"time"

	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/types"
	"github.com/gymflow/gymflow/internal/validator"
)

type CreateMemberRequest struct {
	Name         string             `json:"name" validate:"required"`
	Email        string             `json:"email" validate:"required,email"`
	Phone        string             `json:"phone,omitempty"`
	JoinDate     time.Time          `json:"join_date" validate:"required"`
	PlanID       string             `json:"plan_id" validate:"required"`
	MemberStatus types.MemberStatus `json:"member_status,omitempty"`
}

func (r *CreateMemberRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.MemberStatus != "" {
		return r.MemberStatus.Validate()
	}
	return nil
}

func (r *CreateMemberRequest) ToMember(ctx context.Context) *member.Member {
	status := r.MemberStatus
	if status == "" {
		status = types.MemberStatusActive
	}
	return &member.Member{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MEMBER),
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		JoinDate:     r.JoinDate,
		PlanID:       r.PlanID,
		MemberStatus: status,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

type UpdateMemberRequest struct {
	Name         *string             `json:"name,omitempty"`
	Email        *string             `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string             `json:"phone,omitempty"`
	JoinDate     *time.Time          `json:"join_date,omitempty"`
	PlanID       *string             `json:"plan_id,omitempty"`
	MemberStatus *types.MemberStatus `json:"member_status,omitempty"`
}

func (r *UpdateMemberRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.MemberStatus != nil {
		return r.MemberStatus.Validate()
	}
	return nil
}

type MemberResponse struct {
	*member.Member

	// PlanName is resolved at read time; "N/A" when the plan was deleted.
	PlanName string `json:"plan_name"`
}

type ListMembersResponse struct {
	Items      []*MemberResponse        `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
