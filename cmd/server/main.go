package main

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/paydesk/paydesk/internal/api"
	v1 "github.com/paydesk/paydesk/internal/api/v1"
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/domain/payment"
	"github.com/paydesk/paydesk/internal/logger"
	"github.com/paydesk/paydesk/internal/service"
	"github.com/paydesk/paydesk/internal/storage"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			storage.NewGateway,
			newLedgerService,
			v1.NewPaymentHandler,
			newRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func newLedgerService(log *logger.Logger, cfg *config.Configuration, gateway payment.Gateway) (service.LedgerService, error) {
	return service.NewLedgerService(service.ServiceParams{
		Logger:  log,
		Config:  cfg,
		Gateway: gateway,
	})
}

func newRouter(handler *v1.PaymentHandler) *gin.Engine {
	return api.NewRouter(api.Handlers{Payment: handler})
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
