package service

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/paydesk/paydesk/internal/api/dto"
	"github.com/paydesk/paydesk/internal/domain/payment"
	ierr "github.com/paydesk/paydesk/internal/errors"
	"github.com/paydesk/paydesk/internal/types"
	"github.com/samber/lo"
)

// LedgerService owns the ordered payment collection: the record lifecycle,
// filtered views and summary figures. The in-memory collection is the source
// of truth; every mutation persists the whole collection through the
// gateway and is rolled back when the write fails.
type LedgerService interface {
	// CreatePayment validates, computes totals, assigns a receipt number
	// from now and prepends the new record. Individual invalid item rows
	// are dropped; an empty surviving set fails validation.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, now time.Time) (*dto.PaymentResponse, error)

	// FindPayment looks a record up by receipt number. Absence is a
	// normal outcome reported through the boolean, not an error.
	FindPayment(ctx context.Context, id string) (*dto.PaymentResponse, bool)

	// DeletePayment removes a record if present and reports whether a
	// removal occurred. Deleting an unknown receipt number is a no-op.
	DeletePayment(ctx context.Context, id string) (bool, error)

	// ListPayments returns the filtered view, newest first.
	ListPayments(ctx context.Context, filter *types.PaymentFilter, now time.Time) (*dto.ListPaymentsResponse, error)

	// GetStats returns the summary figures for the filtered view.
	GetStats(ctx context.Context, filter *types.PaymentFilter, now time.Time) (*dto.PaymentStatsResponse, error)
}

type ledgerService struct {
	ServiceParams
	receiptGen *types.ReceiptNumberGenerator

	mu       sync.Mutex
	payments []*payment.Payment
}

// NewLedgerService constructs the service and loads the persisted
// collection through the gateway.
func NewLedgerService(params ServiceParams) (LedgerService, error) {
	s := &ledgerService{
		ServiceParams: params,
		receiptGen: types.NewReceiptNumberGenerator(
			params.Config.Receipt.Prefix,
			params.Config.Receipt.Scheme,
		),
	}

	blob, err := params.Gateway.Load(context.Background())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to load the payment collection").
			Mark(ierr.ErrPersistence)
	}

	payments, err := payment.UnmarshalCollection(blob)
	if err != nil {
		return nil, err
	}
	s.payments = payments

	params.Logger.Info("ledger loaded", "payments", len(payments))
	return s, nil
}

func (s *ledgerService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, now time.Time) (*dto.PaymentResponse, error) {
	items := req.ValidItems()
	if len(items) == 0 {
		return nil, ierr.NewError("payment has no valid items").
			WithHint("at least one service item is required").
			Mark(ierr.ErrValidation)
	}

	discount := req.GetDiscount()
	tax := req.GetTax()
	subtotal, total := payment.CalculateTotals(items, discount, tax)

	p := &payment.Payment{
		ID:              s.receiptGen.Next(now),
		CustomerName:    req.CustomerName,
		CustomerID:      orDefault(req.CustomerID),
		CustomerPhone:   orDefault(req.CustomerPhone),
		CustomerAddress: orDefault(req.CustomerAddress),
		PaymentMethod:   req.PaymentMethod,
		BillingPeriod:   orDefault(req.BillingPeriod),
		Items:           items,
		Subtotal:        subtotal,
		Discount:        discount,
		Tax:             tax,
		Total:           total,
		CreatedAt:       now,
		Operator:        req.Operator,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// newest first
	s.payments = append([]*payment.Payment{p}, s.payments...)

	if err := s.persist(ctx); err != nil {
		// roll back the prepend so memory matches durable state
		s.payments = s.payments[1:]
		return nil, err
	}

	s.Logger.Info("payment recorded",
		"receipt_number", p.ID,
		"customer", p.CustomerName,
		"total", p.Total,
	)
	return dto.NewPaymentResponse(p), nil
}

func (s *ledgerService) FindPayment(ctx context.Context, id string) (*dto.PaymentResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, found := lo.Find(s.payments, func(p *payment.Payment) bool {
		return p.ID == id
	})
	if !found {
		return nil, false
	}
	return dto.NewPaymentResponse(p), true
}

func (s *ledgerService) DeletePayment(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, idx, found := lo.FindIndexOf(s.payments, func(p *payment.Payment) bool {
		return p.ID == id
	})
	if !found {
		return false, nil
	}

	s.payments = append(s.payments[:idx], s.payments[idx+1:]...)

	if err := s.persist(ctx); err != nil {
		// reinsert at the original position
		s.payments = append(s.payments[:idx], append([]*payment.Payment{removed}, s.payments[idx:]...)...)
		return false, err
	}

	s.Logger.Info("payment deleted", "receipt_number", id)
	return true, nil
}

func (s *ledgerService) ListPayments(ctx context.Context, filter *types.PaymentFilter, now time.Time) (*dto.ListPaymentsResponse, error) {
	if filter == nil {
		filter = &types.PaymentFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("invalid filter").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return dto.NewListPaymentsResponse(payment.Filter(s.payments, filter, now)), nil
}

func (s *ledgerService) GetStats(ctx context.Context, filter *types.PaymentFilter, now time.Time) (*dto.PaymentStatsResponse, error) {
	if filter == nil {
		filter = &types.PaymentFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("invalid filter").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := payment.Filter(s.payments, filter, now)
	return &dto.PaymentStatsResponse{Stats: payment.ComputeStats(s.payments, filtered)}, nil
}

// persist serializes the collection and replaces the stored blob wholesale,
// retrying transient gateway failures before surfacing the error. Callers
// hold s.mu.
func (s *ledgerService) persist(ctx context.Context) error {
	blob, err := payment.MarshalCollection(s.payments)
	if err != nil {
		return err
	}

	operation := func() error {
		return s.Gateway.Save(ctx, blob)
	}
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 100 * time.Millisecond
	bo := backoff.WithContext(backoff.WithMaxRetries(expo, 3), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		s.Logger.Error("failed to persist payment collection", "error", err)
		return ierr.WithError(err).
			WithHint("failed to save the payment collection").
			Mark(ierr.ErrPersistence)
	}
	return nil
}

func orDefault(value string) string {
	if value == "" {
		return types.FieldDefault
	}
	return value
}
