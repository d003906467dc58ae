package types

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/teris-io/shortid"
)

// ReceiptScheme selects how receipt number suffixes are produced
type ReceiptScheme string

const (
	// ReceiptSchemeLegacy keeps the historical suffix: the last 6 digits
	// of the creation time as a millisecond epoch, zero-padded. Two calls
	// within the same millisecond collide, so this exists only to keep
	// old receipt numbers parseable alongside new ones.
	ReceiptSchemeLegacy ReceiptScheme = "legacy"
	// ReceiptSchemeRandom uses a collision-resistant random suffix
	ReceiptSchemeRandom ReceiptScheme = "random"
)

// ReceiptPrefixDefault is the desk's currency tag used in receipt numbers.
const ReceiptPrefixDefault = "AFN"

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

// initializeSID initializes the shortid generator once
func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// ReceiptNumberGenerator produces receipt numbers of the form
// {prefix}-{year}-{suffix}, e.g. AFN-2024-000456. The year comes from the
// supplied timestamp, never from an ambient clock.
type ReceiptNumberGenerator struct {
	Prefix string
	Scheme ReceiptScheme
}

// NewReceiptNumberGenerator returns a generator with defaults applied
func NewReceiptNumberGenerator(prefix string, scheme ReceiptScheme) *ReceiptNumberGenerator {
	if prefix == "" {
		prefix = ReceiptPrefixDefault
	}
	if scheme == "" {
		scheme = ReceiptSchemeRandom
	}
	return &ReceiptNumberGenerator{Prefix: prefix, Scheme: scheme}
}

// Next returns the receipt number for a record created at now
func (g *ReceiptNumberGenerator) Next(now time.Time) string {
	if g.Scheme == ReceiptSchemeLegacy {
		return fmt.Sprintf("%s-%d-%06d", g.Prefix, now.Year(), now.UnixMilli()%1_000_000)
	}
	return fmt.Sprintf("%s-%d-%s", g.Prefix, now.Year(), randomSuffix())
}

func randomSuffix() string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	// keep the three dash-separated segments of the receipt number intact
	id = strings.NewReplacer("-", "", "_", "").Replace(id)

	return strings.ToUpper(id)
}
