package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// Dialect selects the SQL flavour used by InitSchema.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Initialize the layouts table.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var createLayoutsQuery string
	switch dialect {
	case DialectSQLite:
		createLayoutsQuery = `
		CREATE TABLE IF NOT EXISTS layouts (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		`
	case DialectPostgres:
		createLayoutsQuery = `
		CREATE TABLE IF NOT EXISTS layouts (
			key TEXT PRIMARY KEY,
			value BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		`
	default:
		return fmt.Errorf("init schema: unknown dialect %q", dialect)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(createLayoutsQuery); err != nil {
		return fmt.Errorf("init schema: create layouts: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
