package domain

// ShipProfile describes a ship's cargo grid.
// Capacity is nominal (SCU) and is not used by placement.
type ShipProfile struct {
	ID         string
	Name       string
	GridWidth  int
	GridHeight int
	Capacity   int
}

