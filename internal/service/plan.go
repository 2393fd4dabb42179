package service

import (
	"context"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/plan"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

const entityTypePlan = "plan"

type PlanService interface {
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error)
	GetPlan(ctx context.Context, id string) (*dto.PlanResponse, error)
	GetPlans(ctx context.Context, filter *plan.Filter) (*dto.ListPlansResponse, error)
	UpdatePlan(ctx context.Context, id string, req dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	DeletePlan(ctx context.Context, id string) error
}

type planService struct {
	ServiceParams
}

func NewPlanService(params ServiceParams) PlanService {
	return &planService{ServiceParams: params}
}

func (s *planService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pl := req.ToPlan(ctx)
	if err := pl.Validate(); err != nil {
		return nil, err
	}

	if err := s.PlanRepo.Create(ctx, pl); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionCreate, entityTypePlan, pl.ID, map[string]any{
		"name":  pl.Name,
		"price": pl.Price.String(),
	})

	return &dto.PlanResponse{Plan: pl}, nil
}

func (s *planService) GetPlan(ctx context.Context, id string) (*dto.PlanResponse, error) {
	if id == "" {
		return nil, ierr.NewError("plan ID is required").
			WithHint("Please provide a valid plan ID").
			Mark(ierr.ErrValidation)
	}

	pl, err := s.PlanRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.MemberRepo.Count(ctx, &member.Filter{PlanIDs: []string{pl.ID}})
	if err != nil {
		return nil, err
	}

	return &dto.PlanResponse{Plan: pl, MemberCount: count}, nil
}

func (s *planService) GetPlans(ctx context.Context, filter *plan.Filter) (*dto.ListPlansResponse, error) {
	if filter == nil {
		filter = plan.NewFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	plans, err := s.PlanRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.PlanRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PlanResponse, len(plans))
	for i, pl := range plans {
		members, err := s.MemberRepo.Count(ctx, &member.Filter{PlanIDs: []string{pl.ID}})
		if err != nil {
			return nil, err
		}
		items[i] = &dto.PlanResponse{Plan: pl, MemberCount: members}
	}

	return &dto.ListPlansResponse{
		Items: items,
		Pagination: types.NewPaginationResponse(
			count,
			filter.GetLimit(),
			filter.GetOffset(),
		),
	}, nil
}

func (s *planService) UpdatePlan(ctx context.Context, id string, req dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pl, err := s.PlanRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pl.Name = *req.Name
	}
	if req.Description != nil {
		pl.Description = *req.Description
	}
	if req.Price != nil {
		pl.Price = *req.Price
	}
	if req.DurationInMonths != nil {
		pl.DurationInMonths = *req.DurationInMonths
	}
	if req.DueDateDayOfMonth != nil {
		pl.DueDateDayOfMonth = req.DueDateDayOfMonth
	}
	pl.Touch(ctx)

	if err := pl.Validate(); err != nil {
		return nil, err
	}
	if err := s.PlanRepo.Update(ctx, pl); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionUpdate, entityTypePlan, pl.ID, nil)

	return &dto.PlanResponse{Plan: pl}, nil
}

// DeletePlan removes the plan. Members still referencing it stop being
// billed (the engine skips missing plans) and historical payments keep
// their orphaned reference.
func (s *planService) DeletePlan(ctx context.Context, id string) error {
	pl, err := s.PlanRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.PlanRepo.Delete(ctx, pl.ID); err != nil {
		return err
	}

	s.recordAudit(ctx, types.AuditActionDelete, entityTypePlan, pl.ID, map[string]any{
		"name": pl.Name,
	})
	return nil
}
