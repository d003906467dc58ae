package dto

import (
	"strings"

	"github.com/paydesk/paydesk/internal/domain/payment"
	"github.com/paydesk/paydesk/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CreateLineItemRequest carries one raw item row. Quantity and rate arrive
// as raw text the way the desk collected them; parsing is defensive and
// malformed numerics become zero.
type CreateLineItemRequest struct {
	Description string `json:"description"`
	Quantity    string `json:"qty"`
	Rate        string `json:"rate"`
}

// CreatePaymentRequest represents a request to record a payment
type CreatePaymentRequest struct {
	CustomerName    string                  `json:"customer_name" binding:"required"`
	CustomerID      string                  `json:"customer_id"`
	CustomerPhone   string                  `json:"customer_phone"`
	CustomerAddress string                  `json:"customer_address"`
	PaymentMethod   types.PaymentMethod     `json:"payment_method" binding:"required"`
	BillingPeriod   string                  `json:"billing_period"`
	Operator        string                  `json:"operator"`
	Items           []CreateLineItemRequest `json:"items" binding:"required"`
	Discount        string                  `json:"discount"`
	Tax             string                  `json:"tax"`
}

// ToLineItem converts the raw row to a domain line item with the amount
// derived. The second return is false when the row must be dropped: empty
// description, non-positive quantity, or a missing rate.
func (r CreateLineItemRequest) ToLineItem() (*payment.LineItem, bool) {
	description := strings.TrimSpace(r.Description)
	if description == "" {
		return nil, false
	}

	quantity := sanitizeDecimal(r.Quantity)
	if !quantity.IsPositive() {
		return nil, false
	}

	if strings.TrimSpace(r.Rate) == "" {
		return nil, false
	}
	rate := sanitizeDecimal(r.Rate)

	return &payment.LineItem{
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Amount:      payment.CalculateAmount(quantity, rate),
	}, true
}

// ValidItems returns the surviving domain items. Invalid rows are dropped
// individually; only an empty result is a hard failure, decided by the
// caller.
func (r CreatePaymentRequest) ValidItems() []*payment.LineItem {
	return lo.FilterMap(r.Items, func(row CreateLineItemRequest, _ int) (*payment.LineItem, bool) {
		return row.ToLineItem()
	})
}

// GetDiscount returns the sanitized discount
func (r CreatePaymentRequest) GetDiscount() decimal.Decimal {
	return sanitizeDecimal(r.Discount)
}

// GetTax returns the sanitized tax
func (r CreatePaymentRequest) GetTax() decimal.Decimal {
	return sanitizeDecimal(r.Tax)
}

// sanitizeDecimal parses a raw numeric field. Absent, malformed or negative
// values all become zero rather than an error; the only hard validation
// gate on create is the empty item set.
func sanitizeDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	*payment.Payment
}

// ListPaymentsResponse represents the filtered, newest-first view
type ListPaymentsResponse struct {
	Items []*PaymentResponse `json:"items"`
	Count int                `json:"count"`
}

// PaymentStatsResponse carries the desk's summary figures
type PaymentStatsResponse struct {
	payment.Stats
}

// NewPaymentResponse wraps a domain payment
func NewPaymentResponse(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{Payment: p}
}

// NewListPaymentsResponse wraps a filtered view
func NewListPaymentsResponse(payments []*payment.Payment) *ListPaymentsResponse {
	items := lo.Map(payments, func(p *payment.Payment, _ int) *PaymentResponse {
		return NewPaymentResponse(p)
	})
	return &ListPaymentsResponse{Items: items, Count: len(items)}
}
