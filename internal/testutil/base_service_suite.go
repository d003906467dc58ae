package testutil

import (
	"context"
	"time"

	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/logger"
	"github.com/stretchr/testify/suite"
)

// BaseServiceTestSuite provides common functionality for service test
// suites: a logger, an in-memory gateway and a fixed clock.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	config  *config.Configuration
	logger  *logger.Logger
	gateway *InMemoryGateway
	now     time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	cfg := config.GetDefaultConfig()
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.gateway = NewInMemoryGateway()
	s.now = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetGateway() *InMemoryGateway {
	return s.gateway
}

// GetNow returns the suite's fixed reference time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
