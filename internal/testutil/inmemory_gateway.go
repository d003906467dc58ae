package testutil

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// InMemoryGateway implements payment.Gateway against process memory. It
// doubles as the "memory" storage backend and as the test double, with
// optional save-failure injection.
type InMemoryGateway struct {
	mu   sync.RWMutex
	blob []byte

	// SaveErr, when set, makes every Save fail without touching the blob
	SaveErr error

	saves int
	loads int
}

func NewInMemoryGateway() *InMemoryGateway {
	return &InMemoryGateway{}
}

func (g *InMemoryGateway) Load(ctx context.Context) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.loads++
	if g.blob == nil {
		return nil, nil
	}
	out := make([]byte, len(g.blob))
	copy(out, g.blob)
	return out, nil
}

func (g *InMemoryGateway) Save(ctx context.Context, blob []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.saves++
	if g.SaveErr != nil {
		return errors.Wrap(g.SaveErr, "save failed")
	}

	g.blob = make([]byte, len(blob))
	copy(g.blob, blob)
	return nil
}

// Blob returns a copy of the stored blob, nil when nothing was saved
func (g *InMemoryGateway) Blob() []byte {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.blob == nil {
		return nil
	}
	out := make([]byte, len(g.blob))
	copy(out, g.blob)
	return out
}

// SaveCount returns how many times Save was called
func (g *InMemoryGateway) SaveCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.saves
}
