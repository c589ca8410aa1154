package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

const gdataObject = "layouts"

// GdataStore saves layouts in the per-user application data directory,
// one property per key under the "layouts" object.
type GdataStore struct {
	Manager *gdata.Manager
}

// OpenGdataStore opens (and creates if needed) the data directory for appName.
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open gdata store %q: %w", appName, err)
	}
	return &GdataStore{Manager: m}, nil
}

func (s *GdataStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.Manager == nil {
		return nil, false, errors.New("gdata store: manager is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get layout: key must not be empty")
	}

	if !s.Manager.ObjectPropExists(gdataObject, key) {
		return nil, false, nil
	}

	v, err := s.Manager.LoadObjectProp(gdataObject, key)
	if err != nil {
		return nil, false, fmt.Errorf("get layout key=%q: %w", key, err)
	}
	return v, true, nil
}

func (s *GdataStore) Set(ctx context.Context, key string, value []byte) error {
	if s.Manager == nil {
		return errors.New("gdata store: manager is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert layout: key must not be empty")
	}

	if err := s.Manager.SaveObjectProp(gdataObject, key, value); err != nil {
		return fmt.Errorf("insert layout key=%q: %w", key, err)
	}
	return nil
}
