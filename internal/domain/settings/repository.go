package settings

import (
	"context"

	"github.com/gymflow/gymflow/internal/types"
)

// Repository defines the interface for settings persistence operations
type Repository interface {
	Create(ctx context.Context, s *Setting) error
	GetByKey(ctx context.Context, key types.SettingKey) (*Setting, error)
	Update(ctx context.Context, s *Setting) error
	List(ctx context.Context) ([]*Setting, error)
}
