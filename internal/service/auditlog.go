package service

import (
	"context"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/auditlog"
	"github.com/gymflow/gymflow/internal/types"
)

type AuditLogService interface {
	GetAuditLogs(ctx context.Context, filter *auditlog.Filter) (*dto.ListAuditLogsResponse, error)
}

type auditLogService struct {
	ServiceParams
}

func NewAuditLogService(params ServiceParams) AuditLogService {
	return &auditLogService{ServiceParams: params}
}

func (s *auditLogService) GetAuditLogs(ctx context.Context, filter *auditlog.Filter) (*dto.ListAuditLogsResponse, error) {
	if filter == nil {
		filter = auditlog.NewFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.AuditLogRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.AuditLogRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AuditLogResponse, len(entries))
	for i, entry := range entries {
		items[i] = &dto.AuditLogResponse{AuditLog: entry}
	}

	return &dto.ListAuditLogsResponse{
		Items: items,
		Pagination: types.NewPaginationResponse(
			count,
			filter.GetLimit(),
			filter.GetOffset(),
		),
	}, nil
}
