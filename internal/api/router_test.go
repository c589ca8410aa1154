package api

import (
	"bytes"
	"cargo-grid-service/internal/adapters/catalog"
	"cargo-grid-service/internal/adapters/store"
	"cargo-grid-service/internal/api/dto"
	"cargo-grid-service/internal/services"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cat := catalog.Default()
	ws, err := services.NewWorkspace(cat, store.NewMemoryStore(), "", "demo")
	if err != nil {
		t.Fatalf("new workspace: %v", err)
	}
	return NewRouter(cat, ws)
}

func do(t *testing.T, h http.Handler, method, path string, body any, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode response: %v", method, path, err)
		}
	}
	return rec.Code
}

func intPtr(v int) *int { return &v }

func TestHealth(t *testing.T) {
	h := newTestServer(t)

	var res map[string]string
	if code := do(t, h, http.MethodGet, "/health", nil, &res); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if res["status"] != "ok" {
		t.Fatalf("body = %v, want status ok", res)
	}

	if code := do(t, h, http.MethodPost, "/health", nil, nil); code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health status = %d, want 405", code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("X-Request-ID = %q, want req-42", got)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected a generated request id")
	}
}

func TestCatalogEndpoint(t *testing.T) {
	h := newTestServer(t)

	var res dto.CatalogResponse
	if code := do(t, h, http.MethodGet, "/catalog", nil, &res); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(res.Ships) == 0 || len(res.Containers) == 0 {
		t.Fatalf("catalog is empty: %+v", res)
	}
}

func TestAddMoveFlow(t *testing.T) {
	h := newTestServer(t)

	var added dto.AddContainerResponse
	do(t, h, http.MethodPost, "/containers", dto.AddContainerRequest{TypeID: "2x2"}, &added)
	if !added.Placed || added.Container == nil {
		t.Fatalf("first add should be placed: %+v", added)
	}

	var second dto.AddContainerResponse
	code := do(t, h, http.MethodPost, "/containers", dto.AddContainerRequest{TypeID: "1x1"}, &second)
	if code != http.StatusOK {
		t.Fatalf("rejected add status = %d, want 200", code)
	}
	if second.Placed || second.Container != nil {
		t.Fatalf("second add should be silently ignored: %+v", second)
	}
	if len(second.Layout.Containers) != 1 {
		t.Fatalf("layout should still hold 1 container, got %d", len(second.Layout.Containers))
	}

	var moved dto.MoveContainerResponse
	do(t, h, http.MethodPost, "/containers/move",
		dto.MoveContainerRequest{ID: added.Container.ID, X: intPtr(9), Y: intPtr(0)}, &moved)
	if moved.Moved {
		t.Fatalf("move past the right edge should be rejected")
	}
	if pos := moved.Layout.Containers[0].Position; pos.X != 0 || pos.Y != 0 {
		t.Fatalf("rejected move changed position to %+v", pos)
	}

	do(t, h, http.MethodPost, "/containers/move",
		dto.MoveContainerRequest{ID: added.Container.ID, X: intPtr(8), Y: intPtr(8)}, &moved)
	if !moved.Moved {
		t.Fatalf("move to (8,8) should succeed")
	}
	if moved.Layout.Occupancy[9][9] != added.Container.ID {
		t.Fatalf("occupancy[9][9] = %q, want %q", moved.Layout.Occupancy[9][9], added.Container.ID)
	}

	var occ dto.OccupancyResponse
	do(t, h, http.MethodGet, "/occupancy?x=8&y=8", nil, &occ)
	if !occ.Occupied || occ.RegionFree {
		t.Fatalf("cell (8,8) should be occupied: %+v", occ)
	}
	do(t, h, http.MethodGet, "/occupancy?x=0&y=0&w=2&h=2", nil, &occ)
	if occ.Occupied || !occ.RegionFree {
		t.Fatalf("spawn region should be free: %+v", occ)
	}
}

func TestAddContainerErrors(t *testing.T) {
	h := newTestServer(t)

	if code := do(t, h, http.MethodPost, "/containers", dto.AddContainerRequest{TypeID: "9x9"}, nil); code != http.StatusNotFound {
		t.Fatalf("unknown type status = %d, want 404", code)
	}
	if code := do(t, h, http.MethodPost, "/containers", dto.AddContainerRequest{}, nil); code != http.StatusBadRequest {
		t.Fatalf("missing type status = %d, want 400", code)
	}
	if code := do(t, h, http.MethodPost, "/containers", map[string]string{"colour": "red"}, nil); code != http.StatusBadRequest {
		t.Fatalf("unknown field status = %d, want 400", code)
	}
	if code := do(t, h, http.MethodGet, "/containers", nil, nil); code != http.StatusMethodNotAllowed {
		t.Fatalf("GET /containers status = %d, want 405", code)
	}
}

func TestMoveRequiresCoordinates(t *testing.T) {
	h := newTestServer(t)

	if code := do(t, h, http.MethodPost, "/containers/move", dto.MoveContainerRequest{ID: "x"}, nil); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}

func TestOccupancyValidation(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/occupancy", "/occupancy?x=a&y=1", "/occupancy?x=1&y=1&w=0", "/occupancy?x=1&y=1&h=-2"} {
		if code := do(t, h, http.MethodGet, path, nil, nil); code != http.StatusBadRequest {
			t.Fatalf("%s status = %d, want 400", path, code)
		}
	}
}

func TestSelectShipSaveLoad(t *testing.T) {
	h := newTestServer(t)

	var layout dto.LayoutResponse
	if code := do(t, h, http.MethodPost, "/ship", dto.SelectShipRequest{ShipID: "freelancer"}, &layout); code != http.StatusOK {
		t.Fatalf("select ship status = %d", code)
	}
	if layout.Ship.ID != "freelancer" {
		t.Fatalf("active ship = %q, want freelancer", layout.Ship.ID)
	}
	if code := do(t, h, http.MethodPost, "/ship", dto.SelectShipRequest{ShipID: "ghost"}, nil); code != http.StatusNotFound {
		t.Fatalf("unknown ship status = %d, want 404", code)
	}

	var added dto.AddContainerResponse
	do(t, h, http.MethodPost, "/containers", dto.AddContainerRequest{TypeID: "2x1"}, &added)

	var saved dto.SaveResponse
	do(t, h, http.MethodPost, "/layout/save", nil, &saved)
	if saved.Key != "cargoLayout-freelancer" || saved.Containers != 1 {
		t.Fatalf("save = %+v, want key cargoLayout-freelancer with 1 container", saved)
	}

	do(t, h, http.MethodPost, "/layout/clear", nil, &layout)
	if len(layout.Containers) != 0 {
		t.Fatalf("clear left %d containers", len(layout.Containers))
	}

	var loaded dto.LoadResponse
	do(t, h, http.MethodPost, "/layout/load", nil, &loaded)
	if !loaded.Found || loaded.Loaded != 1 || len(loaded.Dropped) != 0 {
		t.Fatalf("load = %+v, want 1 loaded", loaded)
	}
	if loaded.Layout.Containers[0].Type.ID != "2x1" {
		t.Fatalf("restored type = %q, want 2x1", loaded.Layout.Containers[0].Type.ID)
	}

	var removed dto.RemoveContainerResponse
	id := loaded.Layout.Containers[0].ID
	do(t, h, http.MethodPost, "/containers/remove", dto.RemoveContainerRequest{ID: id}, &removed)
	if !removed.Removed || len(removed.Layout.Containers) != 0 {
		t.Fatalf("remove = %+v, want removed and empty", removed)
	}
}

func TestExtremeCoordinatesAreRejected(t *testing.T) {
	h := newTestServer(t)

	var added dto.AddContainerResponse
	do(t, h, http.MethodPost, "/containers", dto.AddContainerRequest{TypeID: "2x2"}, &added)
	if !added.Placed {
		t.Fatalf("setup add failed: %+v", added)
	}

	var moved dto.MoveContainerResponse
	do(t, h, http.MethodPost, "/containers/move",
		dto.MoveContainerRequest{ID: added.Container.ID, X: intPtr(1), Y: intPtr(1)}, &moved)
	if !moved.Moved {
		t.Fatalf("setup move failed")
	}

	for _, p := range [][2]int{{math.MaxInt, 0}, {0, math.MaxInt}, {math.MinInt, 0}, {math.MaxInt - 1, math.MaxInt - 1}} {
		do(t, h, http.MethodPost, "/containers/move",
			dto.MoveContainerRequest{ID: added.Container.ID, X: intPtr(p[0]), Y: intPtr(p[1])}, &moved)
		if moved.Moved {
			t.Fatalf("move to (%d,%d) should be rejected", p[0], p[1])
		}
		if pos := moved.Layout.Containers[0].Position; pos.X != 1 || pos.Y != 1 {
			t.Fatalf("rejected move changed position to %+v", pos)
		}
	}

	var occ dto.OccupancyResponse
	paths := []string{
		"/occupancy?x=1&y=1&w=9223372036854775807",
		"/occupancy?x=1&y=1&h=9223372036854775807",
		"/occupancy?x=9223372036854775807&y=0&w=2",
		"/occupancy?x=-9223372036854775808&y=1&w=9223372036854775807",
	}
	for _, path := range paths {
		if code := do(t, h, http.MethodGet, path, nil, &occ); code != http.StatusOK {
			t.Fatalf("%s status = %d, want 200", path, code)
		}
		if occ.RegionFree {
			t.Fatalf("%s: region_free = true, want false", path)
		}
	}
}
