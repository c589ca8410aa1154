package store

import (
	"cargo-grid-service/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps layouts as plain redis string values.
// Prefix, when set, is prepended to every key.
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{Client: client, Prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.Prefix + k
}

func (s *RedisStore) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "layout.redis.Get")(&err)

	if s.Client == nil {
		return nil, false, errors.New("redis store: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get layout: key must not be empty")
	}

	v, err := s.Client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get layout key=%q: %w", key, err)
	}

	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) (err error) {
	defer obs.Time(ctx, "layout.redis.Set")(&err)

	if s.Client == nil {
		return errors.New("redis store: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert layout: key must not be empty")
	}

	if err := s.Client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("insert layout key=%q: %w", key, err)
	}

	return nil
}
