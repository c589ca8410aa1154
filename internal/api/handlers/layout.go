package handlers

import (
	"cargo-grid-service/internal/api/dto"
	"cargo-grid-service/internal/domain"
	"cargo-grid-service/internal/services"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// LayoutHandler serves the editing operations of the active ship's hold.
//
// Refused placements are not errors: they answer 200 with placed/moved set
// to false and the unchanged layout, so the client can snap the container back.
type LayoutHandler struct {
	Workspace *services.Workspace
}

func (h *LayoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromSnapshot(h.Workspace.Snapshot()))
}

func (h *LayoutHandler) SelectShip(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.SelectShipRequest
	if !decodeBody(w, r, &req) {
		return
	}

	shipID := strings.TrimSpace(req.ShipID)
	if shipID == "" {
		writeError(w, r, http.StatusBadRequest, "ship_id is required")
		return
	}

	snap, err := h.Workspace.SelectShip(shipID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownShip) {
			writeError(w, r, http.StatusNotFound, "unknown ship")
			return
		}
		log.Error().Err(err).Msg("select ship failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromSnapshot(snap))
}

func (h *LayoutHandler) AddContainer(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.AddContainerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	typeID := strings.TrimSpace(req.TypeID)
	if typeID == "" {
		writeError(w, r, http.StatusBadRequest, "type_id is required")
		return
	}

	c, placed, snap, err := h.Workspace.AddContainer(typeID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownContainerType) {
			writeError(w, r, http.StatusNotFound, "unknown container type")
			return
		}
		log.Error().Err(err).Msg("add container failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.AddContainerResponse{
		Placed: placed,
		Layout: dto.FromSnapshot(snap),
	}
	if placed {
		cr := dto.FromContainer(c)
		res.Container = &cr
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *LayoutHandler) MoveContainer(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.MoveContainerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.ID) == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}
	if req.X == nil || req.Y == nil {
		writeError(w, r, http.StatusBadRequest, "x and y are required")
		return
	}

	moved, snap := h.Workspace.MoveContainer(req.ID, domain.GridCoordinate{X: *req.X, Y: *req.Y})

	writeJSON(w, r, http.StatusOK, dto.MoveContainerResponse{
		Moved:  moved,
		Layout: dto.FromSnapshot(snap),
	})
}

func (h *LayoutHandler) RemoveContainer(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RemoveContainerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.ID) == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}

	removed, snap := h.Workspace.RemoveContainer(req.ID)

	writeJSON(w, r, http.StatusOK, dto.RemoveContainerResponse{
		Removed: removed,
		Layout:  dto.FromSnapshot(snap),
	})
}

func (h *LayoutHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromSnapshot(h.Workspace.Clear()))
}

func (h *LayoutHandler) Save(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	saved, err := h.Workspace.Save(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("save layout failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SaveResponse{
		Key:        saved.Key,
		Containers: saved.Containers,
	})
}

func (h *LayoutHandler) Load(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	report, snap, err := h.Workspace.Load(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("load layout failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LoadResponse{
		Key:     report.Key,
		Found:   report.Found,
		Loaded:  report.Loaded,
		Dropped: dto.FromDropped(report.Dropped),
		Layout:  dto.FromSnapshot(snap),
	})
}

// Occupancy answers point and region queries: ?x=&y= with optional w= and h=
// (both default to 1).
func (h *LayoutHandler) Occupancy(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	x, errX := strconv.Atoi(q.Get("x"))
	y, errY := strconv.Atoi(q.Get("y"))
	if errX != nil || errY != nil {
		writeError(w, r, http.StatusBadRequest, "x and y must be integers")
		return
	}

	width, height := 1, 1
	if s := q.Get("w"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			writeError(w, r, http.StatusBadRequest, "w must be a positive integer")
			return
		}
		width = v
	}
	if s := q.Get("h"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			writeError(w, r, http.StatusBadRequest, "h must be a positive integer")
			return
		}
		height = v
	}

	occupied, free := h.Workspace.Query(x, y, width, height)

	writeJSON(w, r, http.StatusOK, dto.OccupancyResponse{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Occupied:   occupied,
		RegionFree: free,
	})
}
