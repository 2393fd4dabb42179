package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gymflow/gymflow/internal/auth"
	"github.com/gymflow/gymflow/internal/config"
	"github.com/gymflow/gymflow/internal/logger"
	"github.com/gymflow/gymflow/internal/types"
)

// BaseServiceTestSuite provides fresh stores, a frozen clock and an
// authenticated context for service tests.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	cfg    *config.Configuration
	logger *logger.Logger
	auth   *auth.Service
	stores Stores
	now    time.Time
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.WithValue(context.Background(), types.CtxUserID, "user_test")
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, "req_test")
	s.cfg = config.GetDefaultConfig()
	s.logger = logger.GetLogger()
	s.auth = auth.NewService(s.cfg)
	s.stores = NewStores()
	s.now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores.Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetAuth() *auth.Service {
	return s.auth
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetNow returns the frozen test clock.
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// SetNow moves the frozen test clock.
func (s *BaseServiceTestSuite) SetNow(t time.Time) {
	s.now = t
}

// ClockNow is the clock function to inject into ServiceParams.
func (s *BaseServiceTestSuite) ClockNow() time.Time {
	return s.now
}
