package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends understood by the server.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreGdata    = "gdata"
)

// Config is the server configuration, read from the environment
// (optionally seeded from a .env file).
type Config struct {
	Port        string
	LogLevel    string
	Store       string
	DBPath      string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	GdataApp string

	CatalogPath string
	Namespace   string
	DefaultShip string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE", StoreSQLite)
	v.SetDefault("DB_PATH", "data/layouts.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "")
	v.SetDefault("GDATA_APP", "cargo_grid")
	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("LAYOUT_NAMESPACE", "cargoLayout")
	v.SetDefault("DEFAULT_SHIP", "demo")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return v
}

// Load reads .env files (if present) into the environment and builds a Config.
// A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	// godotenv never overrides variables that are already set
	_ = godotenv.Load(envFiles...)

	v := newViper()
	cfg := &Config{
		Port:          v.GetString("PORT"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		Store:         strings.ToLower(strings.TrimSpace(v.GetString("STORE"))),
		DBPath:        v.GetString("DB_PATH"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		RedisPrefix:   v.GetString("REDIS_PREFIX"),
		GdataApp:      v.GetString("GDATA_APP"),
		CatalogPath:   v.GetString("CATALOG_PATH"),
		Namespace:     v.GetString("LAYOUT_NAMESPACE"),
		DefaultShip:   v.GetString("DEFAULT_SHIP"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected store has what it needs.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreGdata:
	case StoreSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("config: DB_PATH is required for store %q", c.Store)
		}
	case StorePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required for store %q", c.Store)
		}
	case StoreRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("config: REDIS_ADDR is required for store %q", c.Store)
		}
	default:
		return fmt.Errorf("config: unknown STORE %q", c.Store)
	}

	if strings.TrimSpace(c.DefaultShip) == "" {
		return fmt.Errorf("config: DEFAULT_SHIP must not be empty")
	}
	return nil
}
