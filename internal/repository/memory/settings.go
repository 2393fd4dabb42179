package memory

import (
	"context"

	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/domain/settings"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// SettingsRepository implements settings.Repository
type SettingsRepository struct {
	*InMemoryStore[*settings.Setting]
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{
		InMemoryStore: NewInMemoryStore[*settings.Setting](),
	}
}

func copySetting(s *settings.Setting) *settings.Setting {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Value = lo.Assign(map[string]any{}, s.Value)
	return &cp
}

func (r *SettingsRepository) Create(ctx context.Context, s *settings.Setting) error {
	if s == nil {
		return ierr.NewError("setting cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if existing, _ := r.GetByKey(ctx, s.Key); existing != nil {
		return ierr.NewErrorf("setting already exists for key: %s", s.Key).
			Mark(ierr.ErrAlreadyExists)
	}
	return r.InMemoryStore.Create(ctx, s.ID, copySetting(s))
}

func (r *SettingsRepository) GetByKey(ctx context.Context, key types.SettingKey) (*settings.Setting, error) {
	all, err := r.InMemoryStore.List(ctx, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if s.Key == key {
			return copySetting(s), nil
		}
	}
	return nil, ierr.NewErrorf("setting not found for key: %s", key).
		WithHint("Setting not found").
		Mark(ierr.ErrNotFound)
}

func (r *SettingsRepository) Update(ctx context.Context, s *settings.Setting) error {
	if s == nil {
		return ierr.NewError("setting cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return r.InMemoryStore.Update(ctx, s.ID, copySetting(s))
}

func (r *SettingsRepository) List(ctx context.Context) ([]*settings.Setting, error) {
	all, err := r.InMemoryStore.List(ctx, nil, nil, settingSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(all, func(s *settings.Setting, _ int) *settings.Setting {
		return copySetting(s)
	}), nil
}

func settingSortFn(a, b *settings.Setting) bool {
	return a.Key < b.Key
}
