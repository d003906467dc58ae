package memory

import (
	"context"
	"sync"
)

// Gateway keeps the ledger blob in process memory. Useful for local
// development; nothing survives a restart.
type Gateway struct {
	mu   sync.RWMutex
	blob []byte
}

func New() *Gateway {
	return &Gateway{}
}

func (g *Gateway) Load(ctx context.Context) ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.blob == nil {
		return nil, nil
	}
	out := make([]byte, len(g.blob))
	copy(out, g.blob)
	return out, nil
}

func (g *Gateway) Save(ctx context.Context, blob []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.blob = make([]byte, len(blob))
	copy(g.blob, blob)
	return nil
}
