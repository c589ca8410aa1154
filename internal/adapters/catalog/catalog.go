package catalog

import (
	"cargo-grid-service/internal/domain"
	"errors"
	"fmt"
	"strings"
)

// Static is an in-memory, read-only catalog. Lists keep declaration order.
type Static struct {
	ships      []domain.ShipProfile
	containers []domain.ContainerType
	shipIdx    map[string]int
	typeIdx    map[string]int
}

// New validates the entries and builds a catalog.
// Ids must be unique and non-empty; all sizes must be positive.
func New(ships []domain.ShipProfile, containers []domain.ContainerType) (*Static, error) {
	c := &Static{
		ships:      make([]domain.ShipProfile, 0, len(ships)),
		containers: make([]domain.ContainerType, 0, len(containers)),
		shipIdx:    make(map[string]int, len(ships)),
		typeIdx:    make(map[string]int, len(containers)),
	}

	if len(ships) == 0 {
		return nil, errors.New("catalog: at least one ship is required")
	}

	for i, s := range ships {
		s.ID = strings.TrimSpace(s.ID)
		if s.ID == "" {
			return nil, fmt.Errorf("catalog: ship at index %d: id cannot be empty", i)
		}
		if s.GridWidth <= 0 || s.GridHeight <= 0 {
			return nil, fmt.Errorf("catalog: ship %q: grid must be positive, got %dx%d", s.ID, s.GridWidth, s.GridHeight)
		}
		if _, dup := c.shipIdx[s.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate ship id %q", s.ID)
		}
		if s.Name == "" {
			s.Name = s.ID
		}
		c.shipIdx[s.ID] = len(c.ships)
		c.ships = append(c.ships, s)
	}

	for i, t := range containers {
		t.ID = strings.TrimSpace(t.ID)
		if t.ID == "" {
			return nil, fmt.Errorf("catalog: container at index %d: id cannot be empty", i)
		}
		if !t.Placeable() {
			return nil, fmt.Errorf("catalog: container %q: size must be positive, got %dx%d", t.ID, t.Width, t.Height)
		}
		if _, dup := c.typeIdx[t.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate container id %q", t.ID)
		}
		c.typeIdx[t.ID] = len(c.containers)
		c.containers = append(c.containers, t)
	}

	return c, nil
}

func (c *Static) Ships() []domain.ShipProfile {
	out := make([]domain.ShipProfile, len(c.ships))
	copy(out, c.ships)
	return out
}

func (c *Static) Ship(id string) (domain.ShipProfile, bool) {
	i, ok := c.shipIdx[id]
	if !ok {
		return domain.ShipProfile{}, false
	}
	return c.ships[i], true
}

func (c *Static) ContainerTypes() []domain.ContainerType {
	out := make([]domain.ContainerType, len(c.containers))
	copy(out, c.containers)
	return out
}

func (c *Static) ContainerType(id string) (domain.ContainerType, bool) {
	i, ok := c.typeIdx[id]
	if !ok {
		return domain.ContainerType{}, false
	}
	return c.containers[i], true
}
