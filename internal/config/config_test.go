package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE", "DB_PATH", "LAYOUT_NAMESPACE", "DEFAULT_SHIP", "REDIS_DB"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.Store != StoreSQLite {
		t.Fatalf("store = %q, want sqlite", cfg.Store)
	}
	if cfg.Namespace != "cargoLayout" {
		t.Fatalf("namespace = %q, want cargoLayout", cfg.Namespace)
	}
	if cfg.DefaultShip != "demo" {
		t.Fatalf("default ship = %q, want demo", cfg.DefaultShip)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE", " Redis ")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("PORT", "9090")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store != StoreRedis || cfg.RedisAddr != "cache:6380" || cfg.RedisDB != 3 {
		t.Fatalf("cfg = %+v, want redis at cache:6380 db 3", cfg)
	}
	if cfg.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Port)
	}
}

func TestLoadFromDotEnv(t *testing.T) {
	os.Unsetenv("LAYOUT_NAMESPACE")
	t.Cleanup(func() { os.Unsetenv("LAYOUT_NAMESPACE") })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LAYOUT_NAMESPACE=holdplan\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Namespace != "holdplan" {
		t.Fatalf("namespace = %q, want holdplan", cfg.Namespace)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"unknown store", Config{Store: "floppy", DefaultShip: "demo"}, "unknown STORE"},
		{"postgres without url", Config{Store: StorePostgres, DefaultShip: "demo"}, "DATABASE_URL"},
		{"sqlite without path", Config{Store: StoreSQLite, DefaultShip: "demo"}, "DB_PATH"},
		{"redis without addr", Config{Store: StoreRedis, DefaultShip: "demo"}, "REDIS_ADDR"},
		{"no ship", Config{Store: StoreMemory}, "DEFAULT_SHIP"},
	}

	for _, tc := range cases {
		err := tc.cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: err = %v, want mention of %s", tc.name, err, tc.want)
		}
	}

	ok := Config{Store: StoreMemory, DefaultShip: "demo"}
	if err := ok.Validate(); err != nil {
		t.Errorf("memory store: unexpected error: %v", err)
	}
}
