package store

import (
	"context"
	"database/sql"
	"errors"
)

// KV is the durable local key-value medium collections are persisted on.
// Set replaces the whole value for a key atomically; a failed Set must
// leave the previous value intact.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// SQLKV stores one row per collection key in the collections table. The
// single-row UPSERT gives the atomic replace semantics the collection
// contract relies on.
type SQLKV struct {
	db *sql.DB
}

func NewSQLKV(db *sql.DB) *SQLKV { return &SQLKV{db: db} }

func (s *SQLKV) Get(ctx context.Context, key string) (string, bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE key=$1`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return data, true, nil
}

func (s *SQLKV) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (key, data) VALUES ($1,$2)
		 ON CONFLICT (key) DO UPDATE SET data=excluded.data`,
		key, value)
	return err
}
