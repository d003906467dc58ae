package payment

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Stats are the desk's summary figures for a filtered view of the ledger.
type Stats struct {
	TotalCount     int             `json:"total_count"`
	FilteredCount  int             `json:"filtered_count"`
	FilteredAmount decimal.Decimal `json:"filtered_amount"`
}

// ComputeStats derives summary figures from the full collection and a
// filtered view of it. Pure.
func ComputeStats(all, filtered []*Payment) Stats {
	sum := lo.Reduce(filtered, func(acc decimal.Decimal, p *Payment, _ int) decimal.Decimal {
		return acc.Add(p.Total)
	}, decimal.Zero)

	return Stats{
		TotalCount:     len(all),
		FilteredCount:  len(filtered),
		FilteredAmount: sum.Round(2),
	}
}
