package domain

// GridCoordinate is a 0-indexed cell on a ship's cargo grid.
// X grows to the right, Y grows downward; (0,0) is the top-left cell.
type GridCoordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Spawn is where newly added containers are placed.
var Spawn = GridCoordinate{X: 0, Y: 0}
