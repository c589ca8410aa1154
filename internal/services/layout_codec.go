package services

import (
	"cargo-grid-service/internal/domain"
	"encoding/json"
	"fmt"
)

// DefaultNamespace prefixes every persisted layout key.
const DefaultNamespace = "cargoLayout"

// StoredContainer is the persisted form of one placed container.
// Identity is not stored; restored containers get fresh ids.
type StoredContainer struct {
	TypeID   string                `json:"typeId"`
	Width    int                   `json:"width"`
	Height   int                   `json:"height"`
	Depth    int                   `json:"depth,omitempty"`
	Color    string                `json:"color"`
	Position domain.GridCoordinate `json:"position"`
}

// LayoutKey builds the store key for a ship's layout.
func LayoutKey(namespace, shipID string) string {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return namespace + "-" + shipID
}

// EncodeLayout serializes a layout in insertion order.
func EncodeLayout(layout domain.Layout) ([]byte, error) {
	items := make([]StoredContainer, 0, len(layout))
	for _, c := range layout {
		items = append(items, StoredContainer{
			TypeID:   c.Type.ID,
			Width:    c.Type.Width,
			Height:   c.Type.Height,
			Depth:    c.Type.Depth,
			Color:    c.Type.Color,
			Position: c.Position,
		})
	}

	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return b, nil
}

// DecodeLayout parses a stored layout blob. No validation against a grid or
// catalog happens here.
func DecodeLayout(b []byte) ([]StoredContainer, error) {
	var items []StoredContainer
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return items, nil
}
