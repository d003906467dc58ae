package payment

import "context"

// Gateway is the durable blob contract the ledger persists through. It
// stores the serialized collection wholesale; it knows nothing about the
// record structure. Load returns nil when nothing has been saved yet.
// Save either fully succeeds or leaves the prior state untouched.
type Gateway interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}
