package store

import (
	"cargo-grid-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLStore is a postgres-backed layout store (pgx stdlib driver).
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

// Fetch the layout blob stored under key.
func (s *SQLStore) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "layout.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("sql store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get layout: key must not be empty")
	}

	q := `
	SELECT value
	FROM layouts
	WHERE key = $1;
	`

	var value []byte
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get layout: query layouts table: %w", err)
	}

	return value, true, nil
}

// Store the layout blob under key, replacing any previous value.
func (s *SQLStore) Set(ctx context.Context, key string, value []byte) (err error) {
	defer obs.Time(ctx, "layout.sql.Set")(&err)

	if s.DB == nil {
		return errors.New("sql store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert layout: key must not be empty")
	}

	q := `
	INSERT INTO layouts (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value,
		updated_at = EXCLUDED.updated_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("insert layout key=%q: %w", key, err)
	}

	return nil
}
