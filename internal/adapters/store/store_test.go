package store

import (
	"cargo-grid-service/internal/platform/db"
	"cargo-grid-service/internal/ports"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	_ ports.LayoutStore = (*MemoryStore)(nil)
	_ ports.LayoutStore = (*SqliteStore)(nil)
	_ ports.LayoutStore = (*SQLStore)(nil)
	_ ports.LayoutStore = (*RedisStore)(nil)
	_ ports.LayoutStore = (*GdataStore)(nil)
)

// exerciseStore runs the behaviour every LayoutStore must share.
func exerciseStore(t *testing.T, s ports.LayoutStore) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "cargoLayout-missing")
	if err != nil {
		t.Fatalf("get missing: unexpected error: %v", err)
	}
	if found {
		t.Fatalf("get missing: found = true, want false")
	}

	if err := s.Set(ctx, "cargoLayout-demo", []byte(`[{"typeId":"1x1"}]`)); err != nil {
		t.Fatalf("set: unexpected error: %v", err)
	}
	got, found, err := s.Get(ctx, "cargoLayout-demo")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v, want found", found, err)
	}
	if string(got) != `[{"typeId":"1x1"}]` {
		t.Fatalf("get = %q, want stored value", got)
	}

	// overwrite
	if err := s.Set(ctx, "cargoLayout-demo", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: unexpected error: %v", err)
	}
	got, _, _ = s.Get(ctx, "cargoLayout-demo")
	if string(got) != `[]` {
		t.Fatalf("after overwrite = %q, want []", got)
	}

	if err := s.Set(ctx, "  ", []byte("x")); err == nil {
		t.Fatalf("blank key: expected error")
	}
	if _, _, err := s.Get(ctx, ""); err == nil {
		t.Fatalf("empty key: expected error")
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	v := []byte("abc")
	_ = s.Set(ctx, "k", v)
	v[0] = 'z'

	got, _, _ := s.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value mutated through caller slice: %q", got)
	}
}

func TestSqliteStore(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	if err := InitSchema(conn, DialectSQLite); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	// schema creation is idempotent
	if err := InitSchema(conn, DialectSQLite); err != nil {
		t.Fatalf("init schema twice: %v", err)
	}

	exerciseStore(t, NewSqliteStore(conn))
}

func TestInitSchemaRejectsUnknownDialect(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	if err := InitSchema(conn, Dialect("oracle")); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
	if err := InitSchema(nil, DialectSQLite); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStore(client, "cg:")
	exerciseStore(t, s)

	if !mr.Exists("cg:cargoLayout-demo") {
		t.Fatalf("expected prefixed key in redis, keys=%v", mr.Keys())
	}
}

func TestNilBackends(t *testing.T) {
	ctx := context.Background()

	if _, _, err := (&SqliteStore{}).Get(ctx, "k"); err == nil {
		t.Fatalf("sqlite: expected error for nil db")
	}
	if err := (&SQLStore{}).Set(ctx, "k", nil); err == nil {
		t.Fatalf("sql: expected error for nil db")
	}
	if _, _, err := (&RedisStore{}).Get(ctx, "k"); err == nil {
		t.Fatalf("redis: expected error for nil client")
	}
	if err := (&GdataStore{}).Set(ctx, "k", nil); err == nil {
		t.Fatalf("gdata: expected error for nil manager")
	}
}
