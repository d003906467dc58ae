package service

import (
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/domain/payment"
	"github.com/paydesk/paydesk/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger  *logger.Logger
	Config  *config.Configuration
	Gateway payment.Gateway
}
