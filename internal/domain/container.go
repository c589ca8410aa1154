package domain

// ContainerType is an immutable catalog entry for a cargo box.
// Width and Height are in grid cells. Depth is carried for display only;
// placement never looks at it.
type ContainerType struct {
	ID     string
	Width  int
	Height int
	Depth  int
	Color  string
}

// Placeable reports whether the type has a usable footprint.
func (t ContainerType) Placeable() bool {
	return t.Width > 0 && t.Height > 0
}

// Represents one container sitting on the grid.
// ID is the container's own identity; two containers of the same type
// are never equal by ID.
type PlacedContainer struct {
	ID       string
	Type     ContainerType
	Position GridCoordinate
}

// Footprint returns the cells the container covers at its current position.
func (c PlacedContainer) Footprint() Rect {
	return c.FootprintAt(c.Position)
}

// FootprintAt returns the cells the container would cover at pos.
func (c PlacedContainer) FootprintAt(pos GridCoordinate) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: c.Type.Width, Height: c.Type.Height}
}

// Layout is the ordered set of containers on one ship's grid.
// Order is insertion order and doubles as render z-order.
type Layout []PlacedContainer
