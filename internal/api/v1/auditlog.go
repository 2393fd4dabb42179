package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/domain/auditlog"
	"github.com/gymflow/gymflow/internal/logger"
	"github.com/gymflow/gymflow/internal/service"
	"github.com/gymflow/gymflow/internal/types"
)

type AuditLogHandler struct {
	auditLogService service.AuditLogService
	logger          *logger.Logger
}

func NewAuditLogHandler(auditLogService service.AuditLogService, logger *logger.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogService: auditLogService,
		logger:          logger,
	}
}

func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	filter := auditlog.NewFilter()
	filter.QueryFilter = queryFilterFromParams(c)
	if action := c.Query("action"); action != "" {
		filter.Actions = []types.AuditAction{types.AuditAction(action)}
	}
	if entityType := c.Query("entity_type"); entityType != "" {
		filter.EntityTypes = []string{entityType}
	}
	if actorID := c.Query("actor_id"); actorID != "" {
		filter.ActorIDs = []string{actorID}
	}

	resp, err := h.auditLogService.GetAuditLogs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
