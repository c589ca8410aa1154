package main

import (
	"cargo-grid-service/internal/adapters/store"
	"cargo-grid-service/internal/config"
	"cargo-grid-service/internal/platform/db"
	"cargo-grid-service/internal/platform/obs"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// dbtool creates the layouts table for the sqlite or postgres store.
func main() {
	dialect := flag.String("dialect", "", "sqlite or postgres (defaults to STORE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	obs.SetupLogging(cfg.LogLevel, nil)

	d, dsn, err := schemaTarget(cfg, *dialect)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve target database")
	}

	var conn *sql.DB
	switch d {
	case store.DialectPostgres:
		conn, err = db.Open(dsn)
	case store.DialectSQLite:
		conn, err = db.OpenSQLite(dsn)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	log.Info().Str("dialect", string(d)).Msg("initializing database schema")
	if err := store.InitSchema(conn, d); err != nil {
		conn.Close()
		log.Error().Err(err).Msg("schema initialization failed")
		os.Exit(1)
	}
	log.Info().Msg("schema ready")
}

// schemaTarget picks the dialect and connection string from one loaded config.
// An empty flag falls back to the configured STORE.
func schemaTarget(cfg *config.Config, flagDialect string) (store.Dialect, string, error) {
	name := strings.ToLower(strings.TrimSpace(flagDialect))
	if name == "" {
		name = cfg.Store
	}

	switch store.Dialect(name) {
	case store.DialectPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return "", "", fmt.Errorf("dbtool: DATABASE_URL is required for postgres")
		}
		return store.DialectPostgres, cfg.DatabaseURL, nil
	case store.DialectSQLite:
		if strings.TrimSpace(cfg.DBPath) == "" {
			return "", "", fmt.Errorf("dbtool: DB_PATH is required for sqlite")
		}
		return store.DialectSQLite, cfg.DBPath, nil
	}
	return "", "", fmt.Errorf("dbtool: store %q has no SQL schema", name)
}
