package storage

import (
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/domain/payment"
	ierr "github.com/paydesk/paydesk/internal/errors"
	"github.com/paydesk/paydesk/internal/logger"
	"github.com/paydesk/paydesk/internal/storage/file"
	"github.com/paydesk/paydesk/internal/storage/memory"
	"github.com/paydesk/paydesk/internal/storage/postgres"
	"github.com/paydesk/paydesk/internal/types"
)

// NewGateway builds the persistence gateway selected by configuration.
func NewGateway(cfg *config.Configuration, log *logger.Logger) (payment.Gateway, error) {
	switch cfg.Storage.Backend {
	case types.StorageBackendFile:
		return file.New(cfg.Storage.File.Path, log), nil
	case types.StorageBackendPostgres:
		return postgres.New(cfg.Storage.Postgres, log)
	case types.StorageBackendMemory:
		return memory.New(), nil
	default:
		return nil, ierr.NewError("unknown storage backend").
			WithHintf("storage backend %q is not supported", cfg.Storage.Backend).
			Mark(ierr.ErrValidation)
	}
}
