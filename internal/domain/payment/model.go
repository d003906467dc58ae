package payment

import (
	"time"

	ierr "github.com/paydesk/paydesk/internal/errors"
	"github.com/paydesk/paydesk/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem is one billed service or product entry within a Payment. Amount
// is always derived from Quantity and Rate, never trusted from input.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Validate validates the line item invariants
func (li *LineItem) Validate() error {
	if li.Description == "" {
		return ierr.NewError("line item validation failed").
			WithHint("description must not be empty").
			Mark(ierr.ErrValidation)
	}

	if !li.Quantity.IsPositive() {
		return ierr.NewError("line item validation failed").
			WithHint("quantity must be positive").
			Mark(ierr.ErrValidation)
	}

	if li.Rate.IsNegative() {
		return ierr.NewError("line item validation failed").
			WithHint("rate must be non negative").
			Mark(ierr.ErrValidation)
	}

	if !li.Amount.Equal(CalculateAmount(li.Quantity, li.Rate)) {
		return ierr.NewError("line item validation failed").
			WithHint("amount must equal quantity * rate").
			Mark(ierr.ErrValidation)
	}

	return nil
}

// Payment is one ledger record: a customer payment composed of line items
// with derived monetary aggregates. Records are immutable once created;
// the only lifecycle transitions are creation and deletion.
//
// The JSON field names deliberately match the historical blob layout so
// previously persisted collections keep loading.
type Payment struct {
	ID              string              `json:"id"`
	CustomerName    string              `json:"customerName"`
	CustomerID      string              `json:"customerId"`
	CustomerPhone   string              `json:"customerPhone"`
	CustomerAddress string              `json:"customerAddress"`
	PaymentMethod   types.PaymentMethod `json:"paymentMethod"`
	BillingPeriod   string              `json:"billingPeriod"`
	Items           []*LineItem         `json:"items"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Discount        decimal.Decimal     `json:"discount"`
	Tax             decimal.Decimal     `json:"tax"`
	Total           decimal.Decimal     `json:"total"`
	CreatedAt       time.Time           `json:"date"`
	Operator        string              `json:"operator"`
}

// Validate validates the payment invariants. Total may be negative when the
// discount exceeds subtotal plus tax; that is allowed.
func (p *Payment) Validate() error {
	if p.ID == "" {
		return ierr.NewError("payment validation failed").
			WithHint("receipt number must not be empty").
			Mark(ierr.ErrValidation)
	}

	if p.CustomerName == "" {
		return ierr.NewError("payment validation failed").
			WithHint("customer name is required").
			Mark(ierr.ErrValidation)
	}

	if len(p.Items) == 0 {
		return ierr.NewError("payment validation failed").
			WithHint("at least one service item is required").
			Mark(ierr.ErrValidation)
	}

	if p.Discount.IsNegative() {
		return ierr.NewError("payment validation failed").
			WithHint("discount must be non negative").
			Mark(ierr.ErrValidation)
	}

	if p.Tax.IsNegative() {
		return ierr.NewError("payment validation failed").
			WithHint("tax must be non negative").
			Mark(ierr.ErrValidation)
	}

	for _, item := range p.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	subtotal, total := CalculateTotals(p.Items, p.Discount, p.Tax)
	if !p.Subtotal.Equal(subtotal) {
		return ierr.NewError("payment validation failed").
			WithHint("subtotal must equal the sum of item amounts").
			Mark(ierr.ErrValidation)
	}
	if !p.Total.Equal(total) {
		return ierr.NewError("payment validation failed").
			WithHint("total must equal subtotal - discount + tax").
			Mark(ierr.ErrValidation)
	}

	return nil
}
