package types

// PaymentMethod is the method a customer paid with. It is an open set of
// strings rather than a closed enum so that new desk-level methods can be
// recorded without a code change.
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodTransfer    PaymentMethod = "transfer"
	PaymentMethodMobileMoney PaymentMethod = "mobile-money"

	// PaymentMethodAll is the filter wildcard, never stored on a record
	PaymentMethodAll PaymentMethod = "all"
)

// FieldDefault is the sentinel stored for optional customer fields that were
// left blank at the desk.
const FieldDefault = "N/A"
