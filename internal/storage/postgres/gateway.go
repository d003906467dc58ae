package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/paydesk/paydesk/internal/config"
	ierr "github.com/paydesk/paydesk/internal/errors"
	"github.com/paydesk/paydesk/internal/logger"
)

// The whole ledger is one blob replaced wholesale on every save, so the
// table holds exactly one row.
const schema = `
CREATE TABLE IF NOT EXISTS ledger_blob (
	id         SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	blob       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Gateway persists the ledger blob to a single-row postgres table.
type Gateway struct {
	db  *sqlx.DB
	log *logger.Logger
}

func New(cfg config.PostgresConfig, log *logger.Logger) (*Gateway, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to connect to postgres").
			Mark(ierr.ErrPersistence)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to prepare ledger_blob table").
			Mark(ierr.ErrPersistence)
	}

	return &Gateway{db: db, log: log}, nil
}

func (g *Gateway) Load(ctx context.Context) ([]byte, error) {
	var blob []byte
	err := g.db.GetContext(ctx, &blob, `SELECT blob FROM ledger_blob WHERE id = 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// nothing saved yet
			return nil, nil
		}
		return nil, ierr.WithError(err).
			WithHint("failed to load ledger blob").
			Mark(ierr.ErrPersistence)
	}
	return blob, nil
}

func (g *Gateway) Save(ctx context.Context, blob []byte) error {
	_, err := g.db.ExecContext(ctx, `
		INSERT INTO ledger_blob (id, blob, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET blob = EXCLUDED.blob, updated_at = now()`,
		blob,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to save ledger blob").
			Mark(ierr.ErrPersistence)
	}

	g.log.Debug("ledger blob saved", "bytes", len(blob))
	return nil
}

func (g *Gateway) Close() error {
	return g.db.Close()
}
