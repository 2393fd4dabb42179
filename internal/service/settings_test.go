package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gymflow/gymflow/internal/api/dto"
	ierr "github.com/gymflow/gymflow/internal/errors"
	"github.com/gymflow/gymflow/internal/testutil"
	"github.com/gymflow/gymflow/internal/types"
)

type SettingsServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SettingsService
}

func TestSettingsService(t *testing.T) {
	suite.Run(t, new(SettingsServiceSuite))
}

func (s *SettingsServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	params := ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		Auth:         s.GetAuth(),
		MemberRepo:   stores.MemberRepo,
		PlanRepo:     stores.PlanRepo,
		PaymentRepo:  stores.PaymentRepo,
		ExpenseRepo:  stores.ExpenseRepo,
		UserRepo:     stores.UserRepo,
		AuditLogRepo: stores.AuditLogRepo,
		SettingsRepo: stores.SettingsRepo,
		Now:          s.ClockNow,
	}
	s.service = NewSettingsService(params)
}

func (s *SettingsServiceSuite) TestGetSettingReturnsDefault() {
	resp, err := s.service.GetSetting(s.GetContext(), types.SettingKeyBillingReminderConfig)
	s.NoError(err)
	s.Equal(types.SettingKeyBillingReminderConfig, resp.Key)

	cfg, err := types.DecodeSettingValue(resp.Key, resp.Value)
	s.NoError(err)
	s.Equal(types.DefaultReminderConfig(), cfg)
}

func (s *SettingsServiceSuite) TestUpdateSettingPersists() {
	value, err := types.EncodeSettingValue(types.ReminderConfig{
		BeforeDue: types.ReminderRule{Enabled: true, Days: 7},
		OnDue:     types.ReminderRule{Enabled: true},
	})
	s.NoError(err)

	updated, err := s.service.UpdateSetting(s.GetContext(), types.SettingKeyBillingReminderConfig, dto.UpdateSettingRequest{
		Value: value,
	})
	s.NoError(err)

	stored, err := s.service.GetSetting(s.GetContext(), types.SettingKeyBillingReminderConfig)
	s.NoError(err)
	s.Equal(updated.ID, stored.ID)

	cfg, err := types.DecodeSettingValue(stored.Key, stored.Value)
	s.NoError(err)
	rc := cfg.(types.ReminderConfig)
	s.Equal(7, rc.BeforeDue.Days)
	s.False(rc.AfterDue.Enabled)
}

func (s *SettingsServiceSuite) TestUpdateSettingRejectsInvalidValue() {
	_, err := s.service.UpdateSetting(s.GetContext(), types.SettingKeyBillingReminderConfig, dto.UpdateSettingRequest{
		Value: map[string]any{"before_due": map[string]any{"enabled": true, "days": 0}},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SettingsServiceSuite) TestGetSettingsListsAllKeys() {
	resp, err := s.service.GetSettings(s.GetContext())
	s.NoError(err)
	s.Len(resp.Items, 2)
}

func (s *SettingsServiceSuite) TestGetSettingInvalidKey() {
	_, err := s.service.GetSetting(s.GetContext(), types.SettingKey("nope"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
