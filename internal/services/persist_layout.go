package services

import (
	"cargo-grid-service/internal/domain"
	"cargo-grid-service/internal/ports"
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

// LoadReport describes the outcome of restoring a stored layout.
type LoadReport struct {
	Key     string
	Found   bool
	Loaded  int
	Dropped []domain.DroppedContainer
}

// SaveLayout writes the grid's layout under its ship key.
func SaveLayout(
	ctx context.Context,
	store ports.LayoutStore,
	namespace string,
	grid *domain.CargoGrid,
) (string, error) {
	if store == nil {
		return "", errors.New("save layout: store must be non-nil")
	}
	if grid == nil {
		return "", errors.New("save layout: grid must be non-nil")
	}

	key := LayoutKey(namespace, grid.Ship().ID)
	blob, err := EncodeLayout(grid.Layout())
	if err != nil {
		return "", fmt.Errorf("save layout %q: %w", key, err)
	}

	if err := store.Set(ctx, key, blob); err != nil {
		return "", fmt.Errorf("save layout %q: %w", key, err)
	}
	return key, nil
}

// LoadLayout reads the stored layout for ship and rebuilds its grid.
//
// Stored data is never trusted: the catalog's current definition of each
// container type wins over the stored dimensions, and containers whose type
// is gone, that fall outside the ship's grid, or that overlap a container
// restored before them are dropped and listed in the report.
//
// When nothing is stored the returned grid is empty and report.Found is false.
func LoadLayout(
	ctx context.Context,
	store ports.LayoutStore,
	namespace string,
	ship domain.ShipProfile,
	catalog ports.Catalog,
) (*domain.CargoGrid, LoadReport, error) {
	if store == nil {
		return nil, LoadReport{}, errors.New("load layout: store must be non-nil")
	}
	if catalog == nil {
		return nil, LoadReport{}, errors.New("load layout: catalog must be non-nil")
	}

	key := LayoutKey(namespace, ship.ID)
	report := LoadReport{Key: key}
	grid := domain.NewCargoGrid(ship)

	blob, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, report, fmt.Errorf("load layout %q: %w", key, err)
	}
	if !found {
		return grid, report, nil
	}
	report.Found = true

	stored, err := DecodeLayout(blob)
	if err != nil {
		return nil, report, fmt.Errorf("load layout %q: %w", key, err)
	}

	// candidates[i] came from stored[origin[i]]
	candidates := make(domain.Layout, 0, len(stored))
	origin := make([]int, 0, len(stored))
	for i, sc := range stored {
		t, ok := catalog.ContainerType(sc.TypeID)
		if !ok {
			report.Dropped = append(report.Dropped, domain.DroppedContainer{
				Index:    i,
				TypeID:   sc.TypeID,
				Position: sc.Position,
				Reason:   domain.DropUnknownType,
			})
			continue
		}
		candidates = append(candidates, domain.PlacedContainer{Type: t, Position: sc.Position})
		origin = append(origin, i)
	}

	for _, d := range grid.Restore(candidates) {
		d.Index = origin[d.Index]
		report.Dropped = append(report.Dropped, d)
	}
	slices.SortFunc(report.Dropped, func(a, b domain.DroppedContainer) int {
		return cmp.Compare(a.Index, b.Index)
	})
	report.Loaded = grid.Len()

	for _, d := range report.Dropped {
		log.Warn().
			Str("key", key).
			Int("index", d.Index).
			Str("type_id", d.TypeID).
			Int("x", d.Position.X).
			Int("y", d.Position.Y).
			Str("reason", d.Reason).
			Msg("dropped stored container")
	}

	return grid, report, nil
}
