package service

import (
	"context"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/expense"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

const entityTypeExpense = "expense"

type ExpenseService interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	GetExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error)
	GetExpenses(ctx context.Context, filter *expense.Filter) (*dto.ListExpensesResponse, error)
	UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, id string) error
}

type expenseService struct {
	ServiceParams
}

func NewExpenseService(params ServiceParams) ExpenseService {
	return &expenseService{ServiceParams: params}
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e := req.ToExpense(ctx)
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := s.ExpenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionCreate, entityTypeExpense, e.ID, map[string]any{
		"category": e.Category,
		"amount":   e.Amount.String(),
	})

	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) GetExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	if id == "" {
		return nil, ierr.NewError("expense ID is required").
			WithHint("Please provide a valid expense ID").
			Mark(ierr.ErrValidation)
	}

	e, err := s.ExpenseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) GetExpenses(ctx context.Context, filter *expense.Filter) (*dto.ListExpensesResponse, error) {
	if filter == nil {
		filter = expense.NewFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	expenses, err := s.ExpenseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.ExpenseRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = &dto.ExpenseResponse{Expense: e}
	}

	return &dto.ListExpensesResponse{
		Items: items,
		Pagination: types.NewPaginationResponse(
			count,
			filter.GetLimit(),
			filter.GetOffset(),
		),
	}, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.ExpenseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	e.Touch(ctx)

	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := s.ExpenseRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, types.AuditActionUpdate, entityTypeExpense, e.ID, nil)

	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string) error {
	e, err := s.ExpenseRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ExpenseRepo.Delete(ctx, e.ID); err != nil {
		return err
	}

	s.recordAudit(ctx, types.AuditActionDelete, entityTypeExpense, e.ID, map[string]any{
		"category": e.Category,
		"amount":   e.Amount.String(),
	})
	return nil
}
