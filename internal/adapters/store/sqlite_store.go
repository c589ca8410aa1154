package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed layout store. Each key holds one serialized layout.
type SqliteStore struct {
	DB *sql.DB
}

func NewSqliteStore(db *sql.DB) *SqliteStore {
	return &SqliteStore{DB: db}
}

// Fetch the layout blob stored under key.
func (s *SqliteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("sqlite store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get layout: key must not be empty")
	}

	q := `
	SELECT value
	FROM layouts
	WHERE key = ?;
	`

	var value []byte
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get layout: query layouts table: %w", err)
	}

	return value, true, nil
}

// Store the layout blob under key, replacing any previous value.
func (s *SqliteStore) Set(ctx context.Context, key string, value []byte) error {
	if s.DB == nil {
		return errors.New("sqlite store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert layout: key must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO layouts (
		key,
		value,
		updated_at
	)
	VALUES (?, ?, CURRENT_TIMESTAMP);
	`

	if _, err := s.DB.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("insert layout key=%q: %w", key, err)
	}

	return nil
}
