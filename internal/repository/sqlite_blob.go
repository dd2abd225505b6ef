package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/fitlog/internal/db"
)

// SQLiteBlobStore implements BlobStore on the kv_store table.
type SQLiteBlobStore struct {
	db db.DBTX
}

// NewSQLiteBlobStore creates a new SQLiteBlobStore.
func NewSQLiteBlobStore(conn db.DBTX) *SQLiteBlobStore {
	return &SQLiteBlobStore{db: conn}
}

func (s *SQLiteBlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteBlobStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv_store (key, value, updated_at, revision) VALUES (?, ?, ?, 1)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at,
			revision = kv_store.revision + 1`
	if _, err := s.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// Revision returns how many times key has been written.
func (s *SQLiteBlobStore) Revision(ctx context.Context, key string) (int, error) {
	row := s.db.QueryRowContext(ctx, `SELECT revision FROM kv_store WHERE key = ?`, key)
	var rev int
	if err := row.Scan(&rev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return 0, fmt.Errorf("reading revision of %q: %w", key, err)
	}
	return rev, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *SQLiteBlobStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}
