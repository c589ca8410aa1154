package main

import (
	"cargo-grid-service/internal/adapters/catalog"
	"cargo-grid-service/internal/adapters/store"
	"cargo-grid-service/internal/api"
	"cargo-grid-service/internal/config"
	"cargo-grid-service/internal/platform/db"
	"cargo-grid-service/internal/platform/obs"
	"cargo-grid-service/internal/ports"
	"cargo-grid-service/internal/services"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It wires the configured layout store and catalog behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	obs.SetupLogging(cfg.LogLevel, nil)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := openCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	layoutStore, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	workspace, err := services.NewWorkspace(cat, layoutStore, cfg.Namespace, cfg.DefaultShip)
	if err != nil {
		return err
	}

	router := api.NewRouter(cat, workspace)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.Store).Str("ship", cfg.DefaultShip).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openCatalog(path string) (ports.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadYAML(path)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// openStore builds the configured LayoutStore and returns a matching close function.
func openStore(ctx context.Context, cfg *config.Config) (ports.LayoutStore, func(), error) {
	noop := func() {}

	switch cfg.Store {
	case config.StoreMemory:
		return store.NewMemoryStore(), noop, nil

	case config.StoreSQLite:
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, noop, fmt.Errorf("open store: create %q: %w", dir, err)
			}
		}
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, noop, err
		}
		if err := store.InitSchema(conn, store.DialectSQLite); err != nil {
			conn.Close()
			return nil, noop, err
		}
		return store.NewSqliteStore(conn), closeDB(conn), nil

	case config.StorePostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := store.InitSchema(conn, store.DialectPostgres); err != nil {
			conn.Close()
			return nil, noop, err
		}
		return store.NewSQLStore(conn), closeDB(conn), nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("open store: ping redis %q: %w", cfg.RedisAddr, err)
		}
		return store.NewRedisStore(client, cfg.RedisPrefix), func() { _ = client.Close() }, nil

	case config.StoreGdata:
		s, err := store.OpenGdataStore(cfg.GdataApp)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	}

	return nil, noop, fmt.Errorf("open store: unknown store %q", cfg.Store)
}

func closeDB(conn *sql.DB) func() {
	return func() {
		if err := conn.Close(); err != nil {
			log.Warn().Err(err).Msg("close database")
		}
	}
}
