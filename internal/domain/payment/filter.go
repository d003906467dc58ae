package payment

import (
	"strings"
	"time"

	"github.com/paydesk/paydesk/internal/types"
	"github.com/samber/lo"
)

// Matches reports whether the payment satisfies every predicate of the
// filter: search text AND payment method AND date window. The date window is
// evaluated against the supplied now, never an ambient clock, so the result
// is deterministic.
func Matches(p *Payment, f *types.PaymentFilter, now time.Time) bool {
	return matchesSearch(p, f.SearchText) &&
		matchesMethod(p, f.GetMethod()) &&
		matchesDate(p, f, now)
}

// Filter applies Matches over the collection, preserving its order.
func Filter(payments []*Payment, f *types.PaymentFilter, now time.Time) []*Payment {
	return lo.Filter(payments, func(p *Payment, _ int) bool {
		return Matches(p, f, now)
	})
}

func matchesSearch(p *Payment, search string) bool {
	search = strings.ToLower(search)
	if search == "" {
		return true
	}

	fields := []string{
		p.CustomerName,
		p.CustomerID,
		p.CustomerPhone,
		p.ID,
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}

	return lo.SomeBy(p.Items, func(item *LineItem) bool {
		return strings.Contains(strings.ToLower(item.Description), search)
	})
}

func matchesMethod(p *Payment, method types.PaymentMethod) bool {
	return method == types.PaymentMethodAll || p.PaymentMethod == method
}

func matchesDate(p *Payment, f *types.PaymentFilter, now time.Time) bool {
	createdAt := p.CreatedAt.In(now.Location())

	switch f.GetDateRange() {
	case types.DateRangeToday:
		return sameDay(createdAt, now)
	case types.DateRangeWeek:
		// inclusive lower bound, no upper bound: future-dated records match
		return !createdAt.Before(now.AddDate(0, 0, -7))
	case types.DateRangeMonth:
		return createdAt.Month() == now.Month() && createdAt.Year() == now.Year()
	case types.DateRangeCustom:
		if f.FromDate != nil && createdAt.Before(startOfDay(*f.FromDate)) {
			return false
		}
		if f.ToDate != nil && createdAt.After(endOfDay(*f.ToDate)) {
			return false
		}
		return true
	default:
		return true
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
