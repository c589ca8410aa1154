package store

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// MemoryStore keeps layouts in process memory. Contents are lost on exit.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get layout: key must not be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("insert layout: key must not be empty")
	}

	v := make([]byte, len(value))
	copy(v, value)

	s.mu.Lock()
	s.m[key] = v
	s.mu.Unlock()
	return nil
}
