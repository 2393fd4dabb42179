package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	"github.com/gymflow/gymflow/internal/domain/plan"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

const entityTypePayment = "payment"

type PaymentService interface {
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error)
	GetPayments(ctx context.Context, filter *payment.Filter) (*dto.ListPaymentsResponse, error)
	UpdatePayment(ctx context.Context, id string, req dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	DeletePayment(ctx context.Context, id string) error

	// ConfirmPayment transitions a pending or overdue payment to paid.
	ConfirmPayment(ctx context.Context, id string, req dto.ConfirmPaymentRequest) (*dto.PaymentResponse, error)
}

type paymentService struct {
	ServiceParams
}

func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{ServiceParams: params}
}

func (s *paymentService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m, err := s.MemberRepo.Get(ctx, req.MemberID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Member not found for payment").
			WithReportableDetails(map[string]any{
				"member_id": req.MemberID,
			}).
			Mark(ierr.ErrNotFound)
	}

	p := req.ToPayment(ctx, m.PlanID)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.PaymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionCreate, entityTypePayment, p.ID, map[string]any{
		"member_id": p.MemberID,
		"amount":    p.Amount.String(),
		"status":    p.PaymentStatus,
	})

	return s.toResponse(ctx, p), nil
}

func (s *paymentService) GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	if id == "" {
		return nil, ierr.NewError("payment ID is required").
			WithHint("Please provide a valid payment ID").
			Mark(ierr.ErrValidation)
	}

	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, p), nil
}

func (s *paymentService) GetPayments(ctx context.Context, filter *payment.Filter) (*dto.ListPaymentsResponse, error) {
	if filter == nil {
		filter = payment.NewFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.PaymentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	memberNames := s.memberNames(ctx)
	planNames := s.planNamesForPayments(ctx)

	items := make([]*dto.PaymentResponse, len(payments))
	for i, p := range payments {
		items[i] = &dto.PaymentResponse{
			Payment:    p,
			MemberName: lo.ValueOr(memberNames, p.MemberID, "N/A"),
			PlanName:   lo.ValueOr(planNames, p.PlanID, "N/A"),
		}
	}

	return &dto.ListPaymentsResponse{
		Items: items,
		Pagination: types.NewPaginationResponse(
			count,
			filter.GetLimit(),
			filter.GetOffset(),
		),
	}, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, id string, req dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Amount != nil {
		p.Amount = *req.Amount
	}
	if req.DueDate != nil {
		p.DueDate = *req.DueDate
	}
	if req.PaidDate != nil {
		p.PaidDate = req.PaidDate
	}
	// Manual edit may force any status, including paid back to pending.
	// This is an operator affordance outside the engine's state machine.
	if req.PaymentStatus != nil {
		p.PaymentStatus = *req.PaymentStatus
		if *req.PaymentStatus != types.PaymentStatusPaid {
			p.PaidDate = nil
		}
	}
	p.Touch(ctx)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.PaymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionUpdate, entityTypePayment, p.ID, nil)

	return s.toResponse(ctx, p), nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id string) error {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.PaymentRepo.Delete(ctx, p.ID); err != nil {
		return err
	}

	s.recordAudit(ctx, types.AuditActionDelete, entityTypePayment, p.ID, map[string]any{
		"member_id": p.MemberID,
		"amount":    p.Amount.String(),
	})
	return nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, id string, req dto.ConfirmPaymentRequest) (*dto.PaymentResponse, error) {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.PaymentStatus == types.PaymentStatusPaid {
		return nil, ierr.NewError("payment is already paid").
			WithHint("This payment has already been confirmed").
			Mark(ierr.ErrInvalidOperation)
	}

	paidDate := s.NowUTC()
	if req.PaidDate != nil {
		paidDate = *req.PaidDate
	}

	p.PaymentStatus = types.PaymentStatusPaid
	p.PaidDate = &paidDate
	p.Touch(ctx)

	if err := s.PaymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionConfirmPayment, entityTypePayment, p.ID, map[string]any{
		"member_id": p.MemberID,
		"amount":    p.Amount.String(),
	})

	return s.toResponse(ctx, p), nil
}

func (s *paymentService) toResponse(ctx context.Context, p *payment.Payment) *dto.PaymentResponse {
	resp := &dto.PaymentResponse{Payment: p, MemberName: "N/A", PlanName: "N/A"}
	if m, err := s.MemberRepo.Get(ctx, p.MemberID); err == nil {
		resp.MemberName = m.Name
	}
	if pl, err := s.PlanRepo.Get(ctx, p.PlanID); err == nil {
		resp.PlanName = pl.Name
	}
	return resp
}

func (s *paymentService) memberNames(ctx context.Context) map[string]string {
	members, err := s.MemberRepo.List(ctx, member.NewNoLimitFilter())
	if err != nil {
		s.Logger.Errorw("failed to resolve member names", "error", err)
		return map[string]string{}
	}
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	return names
}

func (s *paymentService) planNamesForPayments(ctx context.Context) map[string]string {
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
