package payment

import (
	"testing"
	"time"

	"github.com/paydesk/paydesk/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testPayment(id string, createdAt time.Time) *Payment {
	return &Payment{
		ID:            id,
		CustomerName:  "Ahmad Shah",
		CustomerID:    "CUST-001",
		CustomerPhone: "0700123456",
		PaymentMethod: types.PaymentMethodCash,
		Items: []*LineItem{
			{
				Description: "Router Rental",
				Quantity:    decimal.NewFromInt(1),
				Rate:        decimal.NewFromInt(250),
				Amount:      decimal.NewFromInt(250),
			},
		},
		Subtotal:  decimal.NewFromInt(250),
		Total:     decimal.NewFromInt(250),
		CreatedAt: createdAt,
	}
}

func TestMatchesSearch(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	p := testPayment("AFN-2024-000456", now)

	tests := []struct {
		name    string
		search  string
		matches bool
	}{
		{name: "empty search matches", search: "", matches: true},
		{name: "customer name", search: "ahmad", matches: true},
		{name: "customer id", search: "cust-001", matches: true},
		{name: "phone", search: "0700", matches: true},
		{name: "receipt number", search: "000456", matches: true},
		{name: "line item description case-insensitive", search: "router", matches: true},
		{name: "no field matches", search: "fiber", matches: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &types.PaymentFilter{SearchText: tt.search}
			assert.Equal(t, tt.matches, Matches(p, f, now))
		})
	}
}

func TestMatchesMethod(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	p := testPayment("AFN-2024-000001", now)

	assert.True(t, Matches(p, &types.PaymentFilter{PaymentMethod: types.PaymentMethodAll}, now))
	assert.True(t, Matches(p, &types.PaymentFilter{PaymentMethod: types.PaymentMethodCash}, now))
	assert.True(t, Matches(p, &types.PaymentFilter{}, now), "empty method behaves like all")
	assert.False(t, Matches(p, &types.PaymentFilter{PaymentMethod: types.PaymentMethodTransfer}, now))
}

func TestMatchesDateRange(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		filter    types.PaymentFilter
		matches   bool
	}{
		{
			name:      "today matches record created now",
			createdAt: now,
			filter:    types.PaymentFilter{DateRange: types.DateRangeToday},
			matches:   true,
		},
		{
			name:      "today rejects record created 2 days ago",
			createdAt: now.AddDate(0, 0, -2),
			filter:    types.PaymentFilter{DateRange: types.DateRangeToday},
			matches:   false,
		},
		{
			name:      "week matches record created 2 days ago",
			createdAt: now.AddDate(0, 0, -2),
			filter:    types.PaymentFilter{DateRange: types.DateRangeWeek},
			matches:   true,
		},
		{
			name:      "week lower bound is inclusive",
			createdAt: now.AddDate(0, 0, -7),
			filter:    types.PaymentFilter{DateRange: types.DateRangeWeek},
			matches:   true,
		},
		{
			name:      "week rejects record older than 7 days",
			createdAt: now.AddDate(0, 0, -8),
			filter:    types.PaymentFilter{DateRange: types.DateRangeWeek},
			matches:   false,
		},
		{
			name:      "week has no upper bound",
			createdAt: now.AddDate(0, 0, 3),
			filter:    types.PaymentFilter{DateRange: types.DateRangeWeek},
			matches:   true,
		},
		{
			name:      "month matches same month and year",
			createdAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			filter:    types.PaymentFilter{DateRange: types.DateRangeMonth},
			matches:   true,
		},
		{
			name:      "month rejects same month of another year",
			createdAt: time.Date(2023, 6, 10, 12, 0, 0, 0, time.UTC),
			filter:    types.PaymentFilter{DateRange: types.DateRangeMonth},
			matches:   false,
		},
		{
			name:      "custom from bound is start of day inclusive",
			createdAt: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
			filter: types.PaymentFilter{
				DateRange: types.DateRangeCustom,
				FromDate:  lo.ToPtr(time.Date(2024, 6, 5, 18, 30, 0, 0, time.UTC)),
			},
			matches: true,
		},
		{
			name:      "custom to bound includes end of day",
			createdAt: time.Date(2024, 6, 5, 23, 59, 0, 0, time.UTC),
			filter: types.PaymentFilter{
				DateRange: types.DateRangeCustom,
				ToDate:    lo.ToPtr(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)),
			},
			matches: true,
		},
		{
			name:      "custom rejects record after to bound",
			createdAt: time.Date(2024, 6, 6, 0, 0, 1, 0, time.UTC),
			filter: types.PaymentFilter{
				DateRange: types.DateRangeCustom,
				ToDate:    lo.ToPtr(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)),
			},
			matches: false,
		},
		{
			name:      "custom with no bounds matches everything",
			createdAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			filter:    types.PaymentFilter{DateRange: types.DateRangeCustom},
			matches:   true,
		},
		{
			name:      "all matches everything",
			createdAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			filter:    types.PaymentFilter{DateRange: types.DateRangeAll},
			matches:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPayment("AFN-2024-000001", tt.createdAt)
			assert.Equal(t, tt.matches, Matches(p, &tt.filter, now))
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	newest := testPayment("AFN-2024-000003", now)
	middle := testPayment("AFN-2024-000002", now.Add(-time.Hour))
	oldest := testPayment("AFN-2024-000001", now.Add(-2*time.Hour))

	collection := []*Payment{newest, middle, oldest}
	filtered := Filter(collection, &types.PaymentFilter{SearchText: "router"}, now)

	assert.Len(t, filtered, 3)
	assert.Equal(t, "AFN-2024-000003", filtered[0].ID)
	assert.Equal(t, "AFN-2024-000002", filtered[1].ID)
	assert.Equal(t, "AFN-2024-000001", filtered[2].ID)
}
