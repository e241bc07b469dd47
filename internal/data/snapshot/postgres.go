package snapshot

import (
	"context"
	"fmt"

	"cine-reserve/pkg/database"

	"github.com/jackc/pgx/v5"
)

// PostgresKV keeps each snapshot key as a jsonb row in a single table. The
// three puts of one Save run in one transaction.
type PostgresKV struct {
	db database.PgxIface
}

const createSnapshotTable = `
	CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

func NewPostgresKV(ctx context.Context, db database.PgxIface) (*PostgresKV, error) {
	if _, err := db.Exec(ctx, createSnapshotTable); err != nil {
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &PostgresKV{db: db}, nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := p.db.QueryRow(ctx,
		`SELECT data FROM snapshots WHERE key = $1`, key,
	).Scan(&raw)
	if err == pgx.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select snapshot %s: %w", key, err)
	}
	return raw, nil
}

const upsertSnapshot = `
	INSERT INTO snapshots (key, data, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
`

func (p *PostgresKV) Put(ctx context.Context, key string, value []byte) error {
	if _, err := p.db.Exec(ctx, upsertSnapshot, key, value); err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", key, err)
	}
	return nil
}

// PutAll commits every entry in one transaction so a committed snapshot is
// never a mix of two states.
func (p *PostgresKV) PutAll(ctx context.Context, entries map[string][]byte) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for key, value := range entries {
		if _, err := tx.Exec(ctx, upsertSnapshot, key, value); err != nil {
			return fmt.Errorf("upsert snapshot %s: %w", key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit snapshot tx: %w", err)
	}
	return nil
}
