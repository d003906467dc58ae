package types

import (
	"fmt"
	"time"
)

// DateRange selects the time window a payment's creation timestamp is
// matched against, always relative to an explicitly supplied "now".
type DateRange string

const (
	DateRangeAll    DateRange = "all"
	DateRangeToday  DateRange = "today"
	DateRangeWeek   DateRange = "week"
	DateRangeMonth  DateRange = "month"
	DateRangeCustom DateRange = "custom"
)

// PaymentFilter is the combined predicate applied when producing a filtered
// view of the ledger. Zero value matches everything.
type PaymentFilter struct {
	// SearchText is matched case-insensitively as a substring of the
	// customer name, customer id, phone, receipt number and every line
	// item description. Empty matches all records.
	SearchText string `json:"search,omitempty" form:"search"`

	// PaymentMethod must equal the record's method exactly, or be "all"
	// (or empty) to match every method.
	PaymentMethod PaymentMethod `json:"payment_method,omitempty" form:"payment_method"`

	// DateRange selects the createdAt window. Empty behaves like "all".
	DateRange DateRange `json:"date_range,omitempty" form:"date_range"`

	// FromDate and ToDate bound a custom range. FromDate is inclusive at
	// start of day, ToDate inclusive at 23:59:59 local. Either may be nil.
	FromDate *time.Time `json:"from_date,omitempty" form:"from_date" time_format:"2006-01-02"`
	ToDate   *time.Time `json:"to_date,omitempty" form:"to_date" time_format:"2006-01-02"`
}

// Validate validates the filter fields
func (f *PaymentFilter) Validate() error {
	switch f.DateRange {
	case "", DateRangeAll, DateRangeToday, DateRangeWeek, DateRangeMonth, DateRangeCustom:
	default:
		return fmt.Errorf("unknown date range %q", f.DateRange)
	}
	if f.FromDate != nil && f.ToDate != nil && f.ToDate.Before(*f.FromDate) {
		return fmt.Errorf("to_date must not be before from_date")
	}
	return nil
}

// GetMethod returns the method predicate, defaulting to the wildcard
func (f *PaymentFilter) GetMethod() PaymentMethod {
	if f.PaymentMethod == "" {
		return PaymentMethodAll
	}
	return f.PaymentMethod
}

// GetDateRange returns the date predicate, defaulting to all
func (f *PaymentFilter) GetDateRange() DateRange {
	if f.DateRange == "" {
		return DateRangeAll
	}
	return f.DateRange
}
