package payment

import "github.com/shopspring/decimal"

// Monetary values are kept to 2 decimal places, rounded half-up. All inputs
// here are assumed sanitized (absent or malformed raw values become zero
// before these functions are called).

// CalculateAmount returns the line amount for a quantity at a rate
func CalculateAmount(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate).Round(2)
}

// CalculateTotals returns the subtotal over the item amounts and the final
// total after discount and tax. Pure, no side effects.
func CalculateTotals(items []*LineItem, discount, tax decimal.Decimal) (subtotal, total decimal.Decimal) {
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}
	subtotal = subtotal.Round(2)
	total = subtotal.Sub(discount).Add(tax).Round(2)
	return subtotal, total
}
