package services

import (
	"cargo-grid-service/internal/domain"
	"cargo-grid-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Snapshot is a consistent view of the active ship's hold.
type Snapshot struct {
	Ship      domain.ShipProfile
	Layout    domain.Layout
	Occupancy [][]string
}

// Workspace is one editing session: the active ship, a grid per ship
// visited so far, and the collaborators used to save and load layouts.
//
// Every method holds the workspace lock for its whole duration, so engine
// operations never interleave.
type Workspace struct {
	mu        sync.Mutex
	catalog   ports.Catalog
	store     ports.LayoutStore
	namespace string
	grids     map[string]*domain.CargoGrid
	active    *domain.CargoGrid
}

func NewWorkspace(
	catalog ports.Catalog,
	store ports.LayoutStore,
	namespace string,
	shipID string,
) (*Workspace, error) {
	if catalog == nil {
		return nil, errors.New("new workspace: catalog must be non-nil")
	}
	if store == nil {
		return nil, errors.New("new workspace: store must be non-nil")
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	w := &Workspace{
		catalog:   catalog,
		store:     store,
		namespace: namespace,
		grids:     make(map[string]*domain.CargoGrid),
	}
	if err := w.selectShip(shipID); err != nil {
		return nil, fmt.Errorf("new workspace: %w", err)
	}
	return w, nil
}

// SelectShip makes shipID the active ship. Each ship keeps its own grid;
// switching back restores the in-memory layout left there.
func (w *Workspace) SelectShip(shipID string) (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.selectShip(shipID); err != nil {
		return Snapshot{}, err
	}
	return w.snapshot(), nil
}

func (w *Workspace) selectShip(shipID string) error {
	ship, ok := w.catalog.Ship(shipID)
	if !ok {
		return fmt.Errorf("select ship %q: %w", shipID, ErrUnknownShip)
	}

	g, ok := w.grids[ship.ID]
	if !ok {
		g = domain.NewCargoGrid(ship)
		w.grids[ship.ID] = g
	}
	w.active = g
	return nil
}

// snapshot must be called with w.mu held.
func (w *Workspace) snapshot() Snapshot {
	return Snapshot{
		Ship:      w.active.Ship(),
		Layout:    w.active.Layout(),
		Occupancy: w.active.Occupancy(),
	}
}

// AddContainer spawns a container of the given catalog type at (0,0).
// placed is false when the spawn region is taken. The snapshot reflects the
// layout right after the add.
func (w *Workspace) AddContainer(typeID string) (domain.PlacedContainer, bool, Snapshot, error) {
	t, ok := w.catalog.ContainerType(typeID)
	if !ok {
		return domain.PlacedContainer{}, false, Snapshot{}, fmt.Errorf("add container %q: %w", typeID, ErrUnknownContainerType)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	c, placed := w.active.AddContainer(t)
	if !placed {
		log.Debug().Str("ship", w.active.Ship().ID).Str("type_id", typeID).Msg("spawn occupied, add ignored")
	}
	return c, placed, w.snapshot(), nil
}

func (w *Workspace) MoveContainer(id string, pos domain.GridCoordinate) (bool, Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()

	moved := w.active.MoveContainer(id, pos)
	if !moved {
		log.Debug().Str("ship", w.active.Ship().ID).Str("id", id).Int("x", pos.X).Int("y", pos.Y).Msg("move rejected")
	}
	return moved, w.snapshot()
}

func (w *Workspace) RemoveContainer(id string) (bool, Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.active.RemoveContainer(id), w.snapshot()
}

func (w *Workspace) Clear() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.active.Clear()
	return w.snapshot()
}

func (w *Workspace) IsOccupied(x, y int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.active.IsOccupied(x, y)
}

func (w *Workspace) RegionFree(x, y, width, height int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.active.RegionFree(x, y, width, height)
}

// Query answers a point query at (x, y) and a region query for the
// width x height rectangle anchored there against the same layout state.
func (w *Workspace) Query(x, y, width, height int) (occupied, regionFree bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.active.IsOccupied(x, y), w.active.RegionFree(x, y, width, height)
}

func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.snapshot()
}

// SaveResult is what Save wrote.
type SaveResult struct {
	Key        string
	Containers int
}

// Save persists the active ship's layout.
func (w *Workspace) Save(ctx context.Context) (SaveResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key, err := SaveLayout(ctx, w.store, w.namespace, w.active)
	if err != nil {
		return SaveResult{}, fmt.Errorf("workspace save: %w", err)
	}

	res := SaveResult{Key: key, Containers: w.active.Len()}
	log.Info().Str("key", key).Int("containers", res.Containers).Msg("layout saved")
	return res, nil
}

// Load replaces the active ship's layout with the stored one.
// When nothing is stored the current layout is kept.
func (w *Workspace) Load(ctx context.Context) (LoadReport, Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ship := w.active.Ship()
	g, report, err := LoadLayout(ctx, w.store, w.namespace, ship, w.catalog)
	if err != nil {
		return report, Snapshot{}, fmt.Errorf("workspace load: %w", err)
	}
	if !report.Found {
		return report, w.snapshot(), nil
	}

	w.grids[ship.ID] = g
	w.active = g

	log.Info().
		Str("key", report.Key).
		Int("loaded", report.Loaded).
		Int("dropped", len(report.Dropped)).
		Msg("layout loaded")
	return report, w.snapshot(), nil
}
