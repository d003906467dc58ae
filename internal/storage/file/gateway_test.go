package file

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()

	log, err := logger.NewLogger(config.GetDefaultConfig())
	require.NoError(t, err)

	return New(filepath.Join(t.TempDir(), "payments.json"), log)
}

func TestLoadReturnsNilWhenNothingSaved(t *testing.T) {
	g := newTestGateway(t)

	blob, err := g.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, blob)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	want := []byte(`[{"id":"AFN-2024-000456"}]`)
	require.NoError(t, g.Save(ctx, want))

	got, err := g.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveReplacesPriorBlob(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	require.NoError(t, g.Save(ctx, []byte(`[1]`)))
	require.NoError(t, g.Save(ctx, []byte(`[2]`)))

	got, err := g.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[2]`), got)
}
