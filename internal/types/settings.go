package types

import (
	"encoding/json"

	"github.com/samber/lo"

	ierr "github.com/gymflow/gymflow/internal/errors"
)

// SettingConfig is implemented by every typed setting value.
type SettingConfig interface {
	Validate() error
}

type SettingKey string

const (
	SettingKeyBillingReminderConfig SettingKey = "billing_reminder_config"
	SettingKeyGymProfile            SettingKey = "gym_profile"
)

func (s SettingKey) Validate() error {
	allowed := []SettingKey{
		SettingKeyBillingReminderConfig,
		SettingKeyGymProfile,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewErrorf("invalid setting key: %s", s).
			WithHint("Please provide a valid setting key").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ReminderRule toggles one of the three billing reminder windows.
type ReminderRule struct {
	Enabled bool `json:"enabled"`
	Days    int  `json:"days,omitempty" validate:"min=0"`
}

// ReminderConfig configures the billing reminder notifications evaluated
// against the current payment set. Each rule is independently toggleable.
type ReminderConfig struct {
	BeforeDue ReminderRule `json:"before_due"`
	OnDue     ReminderRule `json:"on_due"`
	AfterDue  ReminderRule `json:"after_due"`
}

func (c ReminderConfig) Validate() error {
	if c.BeforeDue.Enabled && c.BeforeDue.Days < 1 {
		return ierr.NewError("before_due.days must be at least 1 when enabled").
			WithHint("Configure how many days before the due date the reminder fires").
			Mark(ierr.ErrValidation)
	}
	if c.AfterDue.Enabled && c.AfterDue.Days < 1 {
		return ierr.NewError("after_due.days must be at least 1 when enabled").
			WithHint("Configure how many days after the due date the reminder fires").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DefaultReminderConfig mirrors the defaults the app ships with.
func DefaultReminderConfig() ReminderConfig {
	return ReminderConfig{
		BeforeDue: ReminderRule{Enabled: true, Days: 3},
		OnDue:     ReminderRule{Enabled: true},
		AfterDue:  ReminderRule{Enabled: true, Days: 2},
	}
}

// GymProfileConfig holds the gym-level branding settings.
type GymProfileConfig struct {
	Name     string `json:"name" validate:"required"`
	Currency string `json:"currency" validate:"required,len=3"`
}

func (c GymProfileConfig) Validate() error {
	if c.Name == "" {
		return ierr.NewError("gym name is required").
			WithHint("Gym name cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if len(c.Currency) != 3 {
		return ierr.NewError("currency must be a 3-letter code").
			WithHint("Use an ISO 4217 currency code, e.g. USD").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DefaultGymProfileConfig returns the seeded gym profile.
func DefaultGymProfileConfig() GymProfileConfig {
	return GymProfileConfig{Name: "GymFlow Academy", Currency: "USD"}
}

// DecodeSettingValue converts an untyped setting value into the typed
// config for its key and validates it.
func DecodeSettingValue(key SettingKey, value map[string]any) (SettingConfig, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid setting value").
			Mark(ierr.ErrValidation)
	}

	var cfg SettingConfig
	switch key {
	case SettingKeyBillingReminderConfig:
		var c ReminderConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Invalid reminder configuration").
				Mark(ierr.ErrValidation)
		}
		cfg = c
	case SettingKeyGymProfile:
		var c GymProfileConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Invalid gym profile configuration").
				Mark(ierr.ErrValidation)
		}
		cfg = c
	default:
		return nil, ierr.NewErrorf("unsupported setting key: %s", key).
			Mark(ierr.ErrValidation)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EncodeSettingValue converts a typed config back to the untyped map stored
// on the setting entity.
func EncodeSettingValue(cfg SettingConfig) (map[string]any, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to encode setting value").
			Mark(ierr.ErrSystem)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to encode setting value").
			Mark(ierr.ErrSystem)
	}
	return out, nil
}
