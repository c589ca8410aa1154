package handlers

import (
	"cargo-grid-service/internal/api/dto"
	"cargo-grid-service/internal/ports"
	"net/http"
)

// CatalogHandler exposes the read-only ship and container tables.
type CatalogHandler struct {
	Catalog ports.Catalog
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	ships := h.Catalog.Ships()
	types := h.Catalog.ContainerTypes()

	res := dto.CatalogResponse{
		Ships:      make([]dto.ShipResponse, 0, len(ships)),
		Containers: make([]dto.ContainerTypeResponse, 0, len(types)),
	}
	for _, s := range ships {
		res.Ships = append(res.Ships, dto.FromShip(s))
	}
	for _, t := range types {
		res.Containers = append(res.Containers, dto.FromContainerType(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}
