package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// PortalService serves the member self-service portal. Session creation is
// an operator action; the read operations resolve the member from the
// portal session on the context.
type PortalService interface {
	CreateSession(ctx context.Context, memberID string) (*dto.PortalSessionResponse, error)
	GetOverview(ctx context.Context) (*dto.PortalOverviewResponse, error)
	GetPayments(ctx context.Context) (*dto.ListPaymentsResponse, error)
	GetPlan(ctx context.Context) (*dto.PlanResponse, error)
}

type portalService struct {
	ServiceParams
}

func NewPortalService(params ServiceParams) PortalService {
	return &portalService{ServiceParams: params}
}

func (s *portalService) CreateSession(ctx context.Context, memberID string) (*dto.PortalSessionResponse, error) {
	m, err := s.MemberRepo.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.Auth.GeneratePortalToken(m.ID)
	if err != nil {
		return nil, err
	}

	return &dto.PortalSessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		MemberID:  m.ID,
	}, nil
}

func (s *portalService) GetOverview(ctx context.Context) (*dto.PortalOverviewResponse, error) {
	m, err := s.sessionMember(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.PortalOverviewResponse{
		Member:      &dto.MemberResponse{Member: m, PlanName: "N/A"},
		Outstanding: decimal.Zero,
	}

	if pl, err := s.PlanRepo.Get(ctx, m.PlanID); err == nil {
		resp.Member.PlanName = pl.Name
		resp.Plan = &dto.PlanResponse{Plan: pl}
	}

	payments, err := s.memberPayments(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if p.PaymentStatus == types.PaymentStatusPaid {
			continue
		}
		resp.Outstanding = resp.Outstanding.Add(p.Amount)
		if resp.NextDueDate == nil || p.DueDate.Before(*resp.NextDueDate) {
			due := p.DueDate
			resp.NextDueDate = &due
		}
	}

	return resp, nil
}

func (s *portalService) GetPayments(ctx context.Context) (*dto.ListPaymentsResponse, error) {
	m, err := s.sessionMember(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.memberPayments(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	planName := "N/A"
	if pl, err := s.PlanRepo.Get(ctx, m.PlanID); err == nil {
		planName = pl.Name
	}

	items := make([]*dto.PaymentResponse, len(payments))
	for i, p := range payments {
		items[i] = &dto.PaymentResponse{
			Payment:    p,
			MemberName: m.Name,
			PlanName:   planName,
		}
	}

	return &dto.ListPaymentsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(len(items), len(items), 0),
	}, nil
}

func (s *portalService) GetPlan(ctx context.Context) (*dto.PlanResponse, error) {
	m, err := s.sessionMember(ctx)
	if err != nil {
		return nil, err
	}

	pl, err := s.PlanRepo.Get(ctx, m.PlanID)
	if err != nil {
		return nil, err
	}
	return &dto.PlanResponse{Plan: pl}, nil
}

func (s *portalService) sessionMember(ctx context.Context) (*member.Member, error) {
	memberID := types.GetMemberID(ctx)
	if memberID == "" {
		return nil, ierr.NewError("no portal session").
			WithHint("A valid portal session token is required").
			Mark(ierr.ErrPermissionDenied)
	}
	return s.MemberRepo.Get(ctx, memberID)
}

func (s *portalService) memberPayments(ctx context.Context, memberID string) ([]*payment.Payment, error) {
	filter := payment.NewNoLimitFilter()
	filter.MemberIDs = []string{memberID}
	return s.PaymentRepo.List(ctx, filter)
}
