package ports

import "cargo-grid-service/internal/domain"

// Read-only table of ships and container types, fixed at startup.
type Catalog interface {
	Ships() []domain.ShipProfile
	Ship(id string) (domain.ShipProfile, bool)
	ContainerTypes() []domain.ContainerType
	ContainerType(id string) (domain.ContainerType, bool)
}
