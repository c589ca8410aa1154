package catalog

import "cargo-grid-service/internal/domain"

// Default returns the built-in catalog used when no catalog file is configured.
func Default() *Static {
	c, err := New(
		[]domain.ShipProfile{
			{ID: "demo", Name: "Demo Hold", GridWidth: 10, GridHeight: 10, Capacity: 100},
			{ID: "cutlass-black", Name: "Cutlass Black", GridWidth: 4, GridHeight: 6, Capacity: 46},
			{ID: "freelancer", Name: "Freelancer", GridWidth: 6, GridHeight: 11, Capacity: 66},
			{ID: "caterpillar", Name: "Caterpillar", GridWidth: 8, GridHeight: 24, Capacity: 576},
			{ID: "c2-hercules", Name: "C2 Hercules", GridWidth: 12, GridHeight: 24, Capacity: 696},
		},
		[]domain.ContainerType{
			{ID: "1x1", Width: 1, Height: 1, Depth: 1, Color: "blue"},
			{ID: "2x1", Width: 2, Height: 1, Depth: 1, Color: "red"},
			{ID: "2x2", Width: 2, Height: 2, Depth: 1, Color: "green"},
			{ID: "4x2", Width: 4, Height: 2, Depth: 2, Color: "orange"},
			{ID: "8x2", Width: 8, Height: 2, Depth: 2, Color: "purple"},
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}
