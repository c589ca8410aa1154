package api

import (
	"cargo-grid-service/internal/api/handlers"
	"cargo-grid-service/internal/ports"
	"cargo-grid-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(catalog ports.Catalog, workspace *services.Workspace) http.Handler {
	mux := http.NewServeMux()

	catalogHandler := &handlers.CatalogHandler{Catalog: catalog}
	layoutHandler := &handlers.LayoutHandler{Workspace: workspace}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/catalog", catalogHandler.Get)
	mux.HandleFunc("/ship", layoutHandler.SelectShip)
	mux.HandleFunc("/layout", layoutHandler.Get)
	mux.HandleFunc("/layout/clear", layoutHandler.Clear)
	mux.HandleFunc("/layout/save", layoutHandler.Save)
	mux.HandleFunc("/layout/load", layoutHandler.Load)
	mux.HandleFunc("/containers", layoutHandler.AddContainer)
	mux.HandleFunc("/containers/move", layoutHandler.MoveContainer)
	mux.HandleFunc("/containers/remove", layoutHandler.RemoveContainer)
	mux.HandleFunc("/occupancy", layoutHandler.Occupancy)

	// request ids are attached before logging runs so the log line carries the id
	return requestIDMiddleware(loggingMiddleware(mux))
}
