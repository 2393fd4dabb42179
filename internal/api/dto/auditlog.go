package dto

import (
	"github.com/gymflow/gymflow/internal/domain/auditlog"
	"github.com/gymflow/gymflow/internal/types"
)

type AuditLogResponse struct {
	*auditlog.AuditLog
}

type ListAuditLogsResponse struct {
	Items      []*AuditLogResponse      `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}
