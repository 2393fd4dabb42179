package dto

import (
	ierr "github.com/gymflow/gymflow/internal/errors"

	"github.com/gymflow/gymflow/internal/domain/settings"
)

type UpdateSettingRequest struct {
	Value map[string]any `json:"value"`
}

func (r *UpdateSettingRequest) Validate() error {
	if len(r.Value) == 0 {
		return ierr.NewError("value is required").
			WithHint("Setting value cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return nil
}

type SettingResponse struct {
	*settings.Setting
}

type ListSettingsResponse struct {
	Items []*SettingResponse `json:"items"`
}
