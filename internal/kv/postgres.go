package kv

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bmichals25/MindSync/internal/database"
)

// Postgres keeps every key in a single kv_store table so the whole app
// state survives a device wipe when a backend is available.
type Postgres struct {
	db *database.DB
}

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

func NewPostgres(ctx context.Context, db *database.DB) (*Postgres, error) {
	if _, err := db.ExecContext(ctx, kvSchema); err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.db.GetContext(ctx, &value, `
		SELECT value FROM kv_store WHERE key = $1
	`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, key, value, time.Now())
	return err
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	_, err := p.db.ExecContext(ctx, `
		DELETE FROM kv_store WHERE key = $1
	`, key)
	return err
}
