package service

import (
	"context"
	"time"

	"github.com/gymflow/gymflow/internal/auth"
	"github.com/gymflow/gymflow/internal/config"
	"github.com/gymflow/gymflow/internal/domain/auditlog"
	"github.com/gymflow/gymflow/internal/domain/expense"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	"github.com/gymflow/gymflow/internal/domain/plan"
	"github.com/gymflow/gymflow/internal/domain/settings"
	"github.com/gymflow/gymflow/internal/domain/user"
	"github.com/gymflow/gymflow/internal/logger"
	"github.com/gymflow/gymflow/internal/types"
)

// ServiceParams bundles the dependencies shared by all services. Services
// embed it and construct sibling services from it as needed.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Auth   *auth.Service

	MemberRepo   member.Repository
	PlanRepo     plan.Repository
	PaymentRepo  payment.Repository
	ExpenseRepo  expense.Repository
	UserRepo     user.Repository
	AuditLogRepo auditlog.Repository
	SettingsRepo settings.Repository

	// Now is the injectable clock; defaults to time.Now via NowUTC.
	Now func() time.Time
}

// NowUTC returns the current time from the injected clock, in UTC.
func (p ServiceParams) NowUTC() time.Time {
	if p.Now != nil {
		return p.Now().UTC()
	}
	return time.Now().UTC()
}

// recordAudit appends an audit entry for a mutating operation. Audit
// failures are logged and swallowed; they never fail the operation.
func (p ServiceParams) recordAudit(ctx context.Context, action types.AuditAction, entityType, entityID string, details map[string]any) {
	entry := &auditlog.AuditLog{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_AUDIT_LOG),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    types.GetUserID(ctx),
		Details:    details,
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
	if err := p.AuditLogRepo.Create(ctx, entry); err != nil {
		p.Logger.Errorw("failed to record audit entry",
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err,
		)
	}
}
