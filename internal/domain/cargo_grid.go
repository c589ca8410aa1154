package domain

import (
	"github.com/google/uuid"
)

// Reasons a container can be refused when a layout is restored.
const (
	DropOutOfBounds = "out_of_bounds"
	DropOverlap     = "overlap"
	DropUnknownType = "unknown_type"
)

// DroppedContainer records a stored container that could not be restored.
type DroppedContainer struct {
	Index    int
	TypeID   string
	Position GridCoordinate
	Reason   string
}

// CargoGrid is the occupancy engine for one ship's hold.
//
// It owns the ship's Layout and guarantees that no two containers overlap
// and that every container lies inside the grid. Mutations that would break
// either rule are refused without changing state; the boolean results exist
// only so callers can give visual feedback.
//
// A CargoGrid is not safe for concurrent use.
type CargoGrid struct {
	ship  ShipProfile
	items []PlacedContainer
	newID func() string
}

func NewCargoGrid(ship ShipProfile) *CargoGrid {
	return &CargoGrid{
		ship:  ship,
		newID: uuid.NewString,
	}
}

func (g *CargoGrid) Ship() ShipProfile { return g.ship }

func (g *CargoGrid) Len() int { return len(g.items) }

// Layout returns a copy of the placed containers in insertion order.
func (g *CargoGrid) Layout() Layout {
	out := make(Layout, len(g.items))
	copy(out, g.items)
	return out
}

// Container looks up a placed container by identity.
func (g *CargoGrid) Container(id string) (PlacedContainer, bool) {
	i := g.indexOf(id)
	if i < 0 {
		return PlacedContainer{}, false
	}
	return g.items[i], true
}

// IsOccupied reports whether any container covers cell (x, y).
func (g *CargoGrid) IsOccupied(x, y int) bool {
	for _, c := range g.items {
		if c.Footprint().Contains(x, y) {
			return true
		}
	}
	return false
}

// RegionFree reports whether the w x h rectangle at (x, y) lies inside the
// grid and touches no placed container.
func (g *CargoGrid) RegionFree(x, y, w, h int) bool {
	return g.regionFreeExcept(Rect{X: x, Y: y, Width: w, Height: h}, "")
}

// regionFreeExcept ignores the container with id skip, so a mover's
// own footprint never blocks its destination.
func (g *CargoGrid) regionFreeExcept(r Rect, skip string) bool {
	if !r.Within(g.ship.GridWidth, g.ship.GridHeight) {
		return false
	}
	for _, c := range g.items {
		if skip != "" && c.ID == skip {
			continue
		}
		if c.Footprint().Intersects(r) {
			return false
		}
	}
	return true
}

// AddContainer spawns a new container of type t at the spawn cell.
// It is a no-op returning false when the spawn region is not free.
func (g *CargoGrid) AddContainer(t ContainerType) (PlacedContainer, bool) {
	if !t.Placeable() {
		return PlacedContainer{}, false
	}
	if !g.RegionFree(Spawn.X, Spawn.Y, t.Width, t.Height) {
		return PlacedContainer{}, false
	}

	c := PlacedContainer{
		ID:       g.newID(),
		Type:     t,
		Position: Spawn,
	}
	g.items = append(g.items, c)
	return c, true
}

// MoveContainer relocates container id so its top-left cell is pos.
// Unknown ids, out-of-bounds targets and occupied targets leave the
// layout untouched and return false. Other containers are never moved.
func (g *CargoGrid) MoveContainer(id string, pos GridCoordinate) bool {
	i := g.indexOf(id)
	if i < 0 {
		return false
	}

	c := g.items[i]
	if !g.regionFreeExcept(c.FootprintAt(pos), c.ID) {
		return false
	}

	g.items[i].Position = pos
	return true
}

// RemoveContainer deletes container id, keeping the order of the rest.
func (g *CargoGrid) RemoveContainer(id string) bool {
	i := g.indexOf(id)
	if i < 0 {
		return false
	}
	g.items = append(g.items[:i], g.items[i+1:]...)
	return true
}

// Clear removes every container.
func (g *CargoGrid) Clear() {
	g.items = nil
}

// Restore replaces the layout with containers placed at the given positions.
// Containers are admitted in order; each must fit the grid and miss every
// container admitted before it. Restored containers get fresh identities.
func (g *CargoGrid) Restore(layout Layout) []DroppedContainer {
	g.items = make([]PlacedContainer, 0, len(layout))

	var dropped []DroppedContainer
	for i, c := range layout {
		r := c.Footprint()
		reason := ""
		switch {
		case !c.Type.Placeable() || !r.Within(g.ship.GridWidth, g.ship.GridHeight):
			reason = DropOutOfBounds
		case !g.regionFreeExcept(r, ""):
			reason = DropOverlap
		}
		if reason != "" {
			dropped = append(dropped, DroppedContainer{
				Index:    i,
				TypeID:   c.Type.ID,
				Position: c.Position,
				Reason:   reason,
			})
			continue
		}

		c.ID = g.newID()
		g.items = append(g.items, c)
	}

	return dropped
}

// Occupancy returns a row-major matrix of container ids; free cells are "".
func (g *CargoGrid) Occupancy() [][]string {
	cells := make([][]string, g.ship.GridHeight)
	for y := range cells {
		cells[y] = make([]string, g.ship.GridWidth)
	}

	for _, c := range g.items {
		r := c.Footprint()
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				cells[y][x] = c.ID
			}
		}
	}
	return cells
}

func (g *CargoGrid) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, c := range g.items {
		if c.ID == id {
			return i
		}
	}
	return -1
}
