package file

import (
	"context"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	ierr "github.com/paydesk/paydesk/internal/errors"
	"github.com/paydesk/paydesk/internal/logger"
)

// Gateway persists the ledger blob to a single local file. Writes go to a
// temp file next to the target and are renamed into place, so an
// interrupted write leaves the prior blob untouched.
type Gateway struct {
	path string
	log  *logger.Logger
}

func New(path string, log *logger.Logger) *Gateway {
	return &Gateway{path: path, log: log}
}

func (g *Gateway) Load(ctx context.Context) ([]byte, error) {
	blob, err := os.ReadFile(g.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// nothing saved yet
			return nil, nil
		}
		return nil, ierr.WithError(err).
			WithHintf("failed to read ledger file %s", g.path).
			Mark(ierr.ErrPersistence)
	}
	return blob, nil
}

func (g *Gateway) Save(ctx context.Context, blob []byte) error {
	tmp := g.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return ierr.WithError(err).
			WithHintf("failed to write ledger file %s", g.path).
			Mark(ierr.ErrPersistence)
	}
	if err := os.Rename(tmp, g.path); err != nil {
		return ierr.WithError(err).
			WithHintf("failed to replace ledger file %s", g.path).
			Mark(ierr.ErrPersistence)
	}

	g.log.Debug("ledger file saved", "path", g.path, "bytes", len(blob))
	return nil
}
