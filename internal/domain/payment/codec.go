package payment

import (
	jsoniter "github.com/json-iterator/go"
	ierr "github.com/paydesk/paydesk/internal/errors"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	// monetary fields are numeric in the persisted blob
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalCollection serializes the ordered collection as a JSON array,
// newest first, line items nested, timestamps ISO-8601.
func MarshalCollection(payments []*Payment) ([]byte, error) {
	if payments == nil {
		payments = []*Payment{}
	}

	blob, err := json.Marshal(payments)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to serialize the payment collection").
			Mark(ierr.ErrSystem)
	}
	return blob, nil
}

// UnmarshalCollection deserializes a previously saved blob. A nil or empty
// blob is the empty-collection sentinel.
func UnmarshalCollection(blob []byte) ([]*Payment, error) {
	if len(blob) == 0 {
		return []*Payment{}, nil
	}

	var payments []*Payment
	if err := json.Unmarshal(blob, &payments); err != nil {
		return nil, ierr.WithError(err).
			WithHint("stored payment collection is corrupt").
			Mark(ierr.ErrSystem)
	}
	if payments == nil {
		payments = []*Payment{}
	}
	return payments, nil
}
