package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/paydesk/paydesk/internal/api/v1"
	"github.com/paydesk/paydesk/internal/rest/middleware"
)

type Handlers struct {
	Payment *v1.PaymentHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.ErrorHandler())

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Payment routes
	payments := router.Group("/payments")
	{
		payments.POST("", handlers.Payment.CreatePayment)
		payments.GET("", handlers.Payment.ListPayments)
		payments.GET("/stats", handlers.Payment.GetStats)
		payments.GET("/:id", handlers.Payment.GetPayment)
		payments.DELETE("/:id", handlers.Payment.DeletePayment)
	}
}
