package service

import (
	"context"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/plan"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

const entityTypeMember = "member"

type MemberService interface {
	CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*dto.MemberResponse, error)
	GetMember(ctx context.Context, id string) (*dto.MemberResponse, error)
	GetMembers(ctx context.Context, filter *member.Filter) (*dto.ListMembersResponse, error)
	UpdateMember(ctx context.Context, id string, req dto.UpdateMemberRequest) (*dto.MemberResponse, error)
	DeleteMember(ctx context.Context, id string) error
}

type memberService struct {
	ServiceParams
}

func NewMemberService(params ServiceParams) MemberService {
	return &memberService{ServiceParams: params}
}

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The plan must exist at enrollment time; orphaned references are only
	// tolerated for historical records.
	pl, err := s.PlanRepo.Get(ctx, req.PlanID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Plan not found for enrollment").
			WithReportableDetails(map[string]any{
				"plan_id": req.PlanID,
			}).
			Mark(ierr.ErrNotFound)
	}

	m := req.ToMember(ctx)
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := s.MemberRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionCreate, entityTypeMember, m.ID, map[string]any{
		"name":    m.Name,
		"plan_id": m.PlanID,
	})

	return &dto.MemberResponse{Member: m, PlanName: pl.Name}, nil
}

func (s *memberService) GetMember(ctx context.Context, id string) (*dto.MemberResponse, error) {
	if id == "" {
		return nil, ierr.NewError("member ID is required").
			WithHint("Please provide a valid member ID").
			Mark(ierr.ErrValidation)
	}

	m, err := s.MemberRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.MemberResponse{Member: m, PlanName: s.planName(ctx, m.PlanID)}, nil
}

func (s *memberService) GetMembers(ctx context.Context, filter *member.Filter) (*dto.ListMembersResponse, error) {
	if filter == nil {
		filter = member.NewFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	members, err := s.MemberRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.MemberRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Resolve plan names in one pass.
	planNames := s.planNames(ctx)

	items := make([]*dto.MemberResponse, len(members))
	for i, m := range members {
		name, ok := planNames[m.PlanID]
		if !ok {
			name = "N/A"
		}
		items[i] = &dto.MemberResponse{Member: m, PlanName: name}
	}

	return &dto.ListMembersResponse{
		Items: items,
		Pagination: types.NewPaginationResponse(
			count,
			filter.GetLimit(),
			filter.GetOffset(),
		),
	}, nil
}

func (s *memberService) UpdateMember(ctx context.Context, id string, req dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m, err := s.MemberRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.JoinDate != nil {
		m.JoinDate = *req.JoinDate
	}
	if req.PlanID != nil {
		if _, err := s.PlanRepo.Get(ctx, *req.PlanID); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Plan not found").
				WithReportableDetails(map[string]any{
					"plan_id": *req.PlanID,
				}).
				Mark(ierr.ErrNotFound)
		}
		m.PlanID = *req.PlanID
	}
	if req.MemberStatus != nil {
		m.MemberStatus = *req.MemberStatus
	}
	m.Touch(ctx)

	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := s.MemberRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionUpdate, entityTypeMember, m.ID, nil)

	return &dto.MemberResponse{Member: m, PlanName: s.planName(ctx, m.PlanID)}, nil
}

// DeleteMember removes the member. Historical payments are kept; their
// member reference becomes orphaned and renders as "N/A".
func (s *memberService) DeleteMember(ctx context.Context, id string) error {
	m, err := s.MemberRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.MemberRepo.Delete(ctx, m.ID); err != nil {
		return err
	}

	s.recordAudit(ctx, types.AuditActionDelete, entityTypeMember, m.ID, map[string]any{
		"name": m.Name,
	})
	return nil
}

func (s *memberService) planName(ctx context.Context, planID string) string {
	pl, err := s.PlanRepo.Get(ctx, planID)
	if err != nil {
		return "N/A"
	}
	return pl.Name
}

func (s *memberService) planNames(ctx context.Context) map[string]string {
	plans, err := s.PlanRepo.List(ctx, plan.NewNoLimitFilter())
	if err != nil {
		s.Logger.Errorw("failed to resolve plan names", "error", err)
		return map[string]string{}
	}
	names := make(map[string]string, len(plans))
	for _, pl := range plans {
		names[pl.ID] = pl.Name
	}
	return names
}
