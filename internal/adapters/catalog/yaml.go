package catalog

import (
	"cargo-grid-service/internal/domain"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type shipEntry struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	GridWidth  int    `yaml:"grid_width"`
	GridHeight int    `yaml:"grid_height"`
	Capacity   int    `yaml:"capacity"`
}

type containerEntry struct {
	ID     string `yaml:"id"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Depth  int    `yaml:"depth"`
	Color  string `yaml:"color"`
}

type file struct {
	Ships      []shipEntry      `yaml:"ships"`
	Containers []containerEntry `yaml:"containers"`
}

// LoadYAML reads a catalog file.
func LoadYAML(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: read %q: %w", path, err)
	}

	c, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", path, err)
	}
	return c, nil
}

// ParseYAML decodes and validates catalog YAML.
func ParseYAML(data []byte) (*Static, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	ships := make([]domain.ShipProfile, 0, len(f.Ships))
	for _, s := range f.Ships {
		ships = append(ships, domain.ShipProfile{
			ID:         s.ID,
			Name:       s.Name,
			GridWidth:  s.GridWidth,
			GridHeight: s.GridHeight,
			Capacity:   s.Capacity,
		})
	}

	containers := make([]domain.ContainerType, 0, len(f.Containers))
	for _, ct := range f.Containers {
		containers = append(containers, domain.ContainerType{
			ID:     ct.ID,
			Width:  ct.Width,
			Height: ct.Height,
			Depth:  ct.Depth,
			Color:  ct.Color,
		})
	}

	return New(ships, containers)
}
