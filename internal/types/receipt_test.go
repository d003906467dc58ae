package types

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceiptNumberLegacy(t *testing.T) {
	gen := NewReceiptNumberGenerator("AFN", ReceiptSchemeLegacy)

	// epoch millisecond 1718000000456 falls in 2024
	now := time.UnixMilli(1718000000456).UTC()
	assert.Equal(t, "AFN-2024-000456", gen.Next(now))
}

func TestReceiptNumberLegacyZeroPadding(t *testing.T) {
	gen := NewReceiptNumberGenerator("AFN", ReceiptSchemeLegacy)

	now := time.UnixMilli(1718000000007).UTC()
	assert.Equal(t, "AFN-2024-000007", gen.Next(now))
}

func TestReceiptNumberRandom(t *testing.T) {
	gen := NewReceiptNumberGenerator("AFN", ReceiptSchemeRandom)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := gen.Next(now)

		assert.True(t, strings.HasPrefix(id, "AFN-2024-"), "unexpected prefix in %s", id)
		suffix := strings.TrimPrefix(id, "AFN-2024-")
		assert.NotEmpty(t, suffix)
		assert.NotContains(t, suffix, "-")
		assert.NotContains(t, suffix, "_")

		assert.False(t, seen[id], "duplicate receipt number %s", id)
		seen[id] = true
	}
}

func TestReceiptNumberDefaults(t *testing.T) {
	gen := NewReceiptNumberGenerator("", "")
	assert.Equal(t, ReceiptPrefixDefault, gen.Prefix)
	assert.Equal(t, ReceiptSchemeRandom, gen.Scheme)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, strings.HasPrefix(gen.Next(now), fmt.Sprintf("%s-2025-", ReceiptPrefixDefault)))
}
