package settings

import (
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/types"
)

// Setting represents one application-level configuration setting, keyed by
// a known setting key with a JSON object value.
type Setting struct {
	// ID is the unique identifier for the setting
	ID string `json:"id"`

	// Key is the setting key
	Key types.SettingKey `json:"key"`

	// Value is the JSON value of the setting
	Value map[string]any `json:"value"`

	types.BaseModel
}

func (s *Setting) Validate() error {
	if err := s.Key.Validate(); err != nil {
		return err
	}
	if s.Value == nil {
		return ierr.NewError("value is required").
			WithHint("Setting value cannot be empty").
			Mark(ierr.ErrValidation)
	}
	// The value must decode into the typed config for its key.
	_, err := types.DecodeSettingValue(s.Key, s.Value)
	return err
}
