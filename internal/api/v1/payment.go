package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paydesk/paydesk/internal/api/dto"
	ierr "github.com/paydesk/paydesk/internal/errors"
	"github.com/paydesk/paydesk/internal/logger"
	"github.com/paydesk/paydesk/internal/service"
	"github.com/paydesk/paydesk/internal/types"
)

type PaymentHandler struct {
	service service.LedgerService
	log     *logger.Logger
}

func NewPaymentHandler(service service.LedgerService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{service: service, log: log}
}

// CreatePayment records a new payment from raw desk input
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreatePayment(c.Request.Context(), req, time.Now())
	if err != nil {
		h.log.Error("Failed to create payment", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetPayment looks a payment up by receipt number
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Receipt number is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, found := h.service.FindPayment(c.Request.Context(), id)
	if !found {
		c.Error(ierr.NewError("payment not found").
			WithHintf("No payment with receipt number %s", id).
			Mark(ierr.ErrNotFound))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeletePayment removes a payment. Deleting an unknown receipt number is a
// no-op reported in the response, not a failure.
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Receipt number is required").
			Mark(ierr.ErrValidation))
		return
	}

	deleted, err := h.service.DeletePayment(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to delete payment", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ListPayments returns the filtered, newest-first view
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	resp, err := h.service.ListPayments(c.Request.Context(), filter, time.Now())
	if err != nil {
		h.log.Error("Failed to list payments", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStats returns summary figures for the filtered view
func (h *PaymentHandler) GetStats(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	resp, err := h.service.GetStats(c.Request.Context(), filter, time.Now())
	if err != nil {
		h.log.Error("Failed to compute stats", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) bindFilter(c *gin.Context) (*types.PaymentFilter, bool) {
	var filter types.PaymentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return nil, false
	}
	return &filter, true
}
