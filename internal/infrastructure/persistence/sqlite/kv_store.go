package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bnema/fontify/internal/application/port"
)

// KVStore is a port.KeyValueStore backed by the kv_store table.
type KVStore struct {
	lazy *LazyDB
}

var _ port.KeyValueStore = (*KVStore)(nil)

// NewKVStore creates a store for the database at dbPath. The file is opened
// on first use.
func NewKVStore(dbPath string) *KVStore {
	return &KVStore{lazy: NewLazyDB(dbPath)}
}

func (s *KVStore) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	db, err := s.lazy.DB(ctx)
	if err != nil {
		return nil, err
	}

	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	query := "SELECT key, value FROM kv_store WHERE key IN (" + placeholders(len(keys)) + ")"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		out[key] = value
	}
	return out, rows.Err()
}

func (s *KVStore) Set(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
		if err != nil {
			return fmt.Errorf("failed to prepare upsert: %w", err)
		}
		defer stmt.Close()

		for k, v := range entries {
			if v == nil {
				v = []byte("null")
			}
			if _, err := stmt.ExecContext(ctx, k, v); err != nil {
				return fmt.Errorf("failed to write %s: %w", k, err)
			}
		}
		return nil
	})
}

func (s *KVStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		query := "DELETE FROM kv_store WHERE key IN (" + placeholders(len(keys)) + ")"
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to remove keys: %w", err)
		}
		return nil
	})
}

func (s *KVStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT key FROM kv_store WHERE substr(key, 1, length(?1)) = ?1 ORDER BY key",
		prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Close closes the database if it was opened.
func (s *KVStore) Close() error {
	return s.lazy.Close()
}

func (s *KVStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
