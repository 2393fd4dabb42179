package auditlog

import (
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// AuditLog records one mutating operation: who did what to which entity.
// The creation timestamp on the base model is the event time.
type AuditLog struct {
	ID         string            `json:"id"`
	Action     types.AuditAction `json:"action"`
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id,omitempty"`
	ActorID    string            `json:"actor_id"`
	Details    map[string]any    `json:"details,omitempty"`
	types.BaseModel
}

func (a *AuditLog) Validate() error {
	if string(a.Action) == "" {
		return ierr.NewError("action is required").Mark(ierr.ErrValidation)
	}
	if a.EntityType == "" {
		return ierr.NewError("entity_type is required").Mark(ierr.ErrValidation)
	}
	return nil
}
