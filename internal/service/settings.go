package service

import (
	"context"

	"github.com/gymflow/gymflow/internal/api/dto"
	"github.com/gymflow/gymflow/internal/domain/settings"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

const entityTypeSetting = "setting"

type SettingsService interface {
	GetSetting(ctx context.Context, key types.SettingKey) (*dto.SettingResponse, error)
	GetSettings(ctx context.Context) (*dto.ListSettingsResponse, error)
	UpdateSetting(ctx context.Context, key types.SettingKey, req dto.UpdateSettingRequest) (*dto.SettingResponse, error)
}

type settingsService struct {
	ServiceParams
}

func NewSettingsService(params ServiceParams) SettingsService {
	return &settingsService{ServiceParams: params}
}

// GetSetting returns the stored setting for the key, materializing the
// shipped default when nothing has been stored yet.
func (s *settingsService) GetSetting(ctx context.Context, key types.SettingKey) (*dto.SettingResponse, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	setting, err := s.SettingsRepo.GetByKey(ctx, key)
	if err != nil {
		if !ierr.IsNotFound(err) {
			return nil, err
		}
		setting, err = s.defaultSetting(ctx, key)
		if err != nil {
			return nil, err
		}
	}

	return &dto.SettingResponse{Setting: setting}, nil
}

func (s *settingsService) GetSettings(ctx context.Context) (*dto.ListSettingsResponse, error) {
	stored, err := s.SettingsRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byKey := make(map[types.SettingKey]*settings.Setting, len(stored))
	for _, st := range stored {
		byKey[st.Key] = st
	}

	// Every known key is present in the listing, stored or default.
	keys := []types.SettingKey{
		types.SettingKeyBillingReminderConfig,
		types.SettingKeyGymProfile,
	}
	items := make([]*dto.SettingResponse, 0, len(keys))
	for _, key := range keys {
		st, ok := byKey[key]
		if !ok {
			st, err = s.defaultSetting(ctx, key)
			if err != nil {
				return nil, err
			}
		}
		items = append(items, &dto.SettingResponse{Setting: st})
	}

	return &dto.ListSettingsResponse{Items: items}, nil
}

func (s *settingsService) UpdateSetting(ctx context.Context, key types.SettingKey, req dto.UpdateSettingRequest) (*dto.SettingResponse, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Reject values that do not decode into the typed config for the key.
	if _, err := types.DecodeSettingValue(key, req.Value); err != nil {
		return nil, err
	}

	setting, err := s.SettingsRepo.GetByKey(ctx, key)
	if err != nil {
		if !ierr.IsNotFound(err) {
			return nil, err
		}
		setting = &settings.Setting{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SETTING),
			Key:       key,
			Value:     req.Value,
			BaseModel: types.GetDefaultBaseModel(ctx),
		}
		if err := s.SettingsRepo.Create(ctx, setting); err != nil {
			return nil, err
		}
	} else {
		setting.Value = req.Value
		setting.Touch(ctx)
		if err := s.SettingsRepo.Update(ctx, setting); err != nil {
			return nil, err
		}
	}

	s.recordAudit(ctx, types.AuditActionUpdate, entityTypeSetting, setting.ID, map[string]any{
		"key": key,
	})

	return &dto.SettingResponse{Setting: setting}, nil
}

// defaultSetting builds an unsaved setting entity carrying the shipped
// default value for the key.
func (s *settingsService) defaultSetting(ctx context.Context, key types.SettingKey) (*settings.Setting, error) {
	var cfg types.SettingConfig
	switch key {
	case types.SettingKeyBillingReminderConfig:
		cfg = types.DefaultReminderConfig()
	case types.SettingKeyGymProfile:
		cfg = types.DefaultGymProfileConfig()
	default:
		return nil, ierr.NewErrorf("unsupported setting key: %s", key).
			Mark(ierr.ErrValidation)
	}

	value, err := types.EncodeSettingValue(cfg)
	if err != nil {
		return nil, err
	}

	return &settings.Setting{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SETTING),
		Key:       key,
		Value:     value,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}, nil
}
