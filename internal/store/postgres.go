package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores each collection as a JSONB blob in a single key/value
// table. It deliberately mirrors the Memory store's contract: whole-document
// reads and writes, missing key leaves the destination untouched.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates the backing table if needed and returns the store.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*Postgres, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			key        TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("create collections table: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Get(ctx context.Context, key string, v any) error {
	var raw []byte
	err := p.pool.QueryRow(ctx, `SELECT doc FROM collections WHERE key = $1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read collection %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode collection %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", key, err)
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO collections (key, doc, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		key, raw)
	if err != nil {
		return fmt.Errorf("write collection %q: %w", key, err)
	}
	return nil
}
