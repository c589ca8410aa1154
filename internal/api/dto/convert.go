package dto

import (
	"cargo-grid-service/internal/domain"
	"cargo-grid-service/internal/services"
)

func FromShip(s domain.ShipProfile) ShipResponse {
	return ShipResponse{
		ID:         s.ID,
		Name:       s.Name,
		GridWidth:  s.GridWidth,
		GridHeight: s.GridHeight,
		Capacity:   s.Capacity,
	}
}

func FromContainerType(t domain.ContainerType) ContainerTypeResponse {
	return ContainerTypeResponse{
		ID:     t.ID,
		Width:  t.Width,
		Height: t.Height,
		Depth:  t.Depth,
		Color:  t.Color,
	}
}

func FromContainer(c domain.PlacedContainer) ContainerResponse {
	return ContainerResponse{
		ID:       c.ID,
		Type:     FromContainerType(c.Type),
		Position: PositionResponse{X: c.Position.X, Y: c.Position.Y},
	}
}

func FromSnapshot(s services.Snapshot) LayoutResponse {
	res := LayoutResponse{
		Ship:       FromShip(s.Ship),
		Containers: make([]ContainerResponse, 0, len(s.Layout)),
		Occupancy:  s.Occupancy,
	}
	for _, c := range s.Layout {
		res.Containers = append(res.Containers, FromContainer(c))
	}
	return res
}

func FromDropped(ds []domain.DroppedContainer) []DroppedResponse {
	out := make([]DroppedResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, DroppedResponse{
			Index:    d.Index,
			TypeID:   d.TypeID,
			Position: PositionResponse{X: d.Position.X, Y: d.Position.Y},
			Reason:   d.Reason,
		})
	}
	return out
}
