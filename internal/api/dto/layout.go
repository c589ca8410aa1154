package dto

type PositionResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ContainerResponse struct {
	ID       string                `json:"id"`
	Type     ContainerTypeResponse `json:"type"`
	Position PositionResponse      `json:"position"`
}

type LayoutResponse struct {
	Ship       ShipResponse        `json:"ship"`
	Containers []ContainerResponse `json:"containers"`
	Occupancy  [][]string          `json:"occupancy"`
}

type SelectShipRequest struct {
	ShipID string `json:"ship_id"`
}

type AddContainerRequest struct {
	TypeID string `json:"type_id"`
}

type AddContainerResponse struct {
	Placed    bool               `json:"placed"`
	Container *ContainerResponse `json:"container,omitempty"`
	Layout    LayoutResponse     `json:"layout"`
}

type MoveContainerRequest struct {
	ID string `json:"id"`
	X  *int   `json:"x"`
	Y  *int   `json:"y"`
}

type MoveContainerResponse struct {
	Moved  bool           `json:"moved"`
	Layout LayoutResponse `json:"layout"`
}

type RemoveContainerRequest struct {
	ID string `json:"id"`
}

type RemoveContainerResponse struct {
	Removed bool           `json:"removed"`
	Layout  LayoutResponse `json:"layout"`
}

type SaveResponse struct {
	Key        string `json:"key"`
	Containers int    `json:"containers"`
}

type DroppedResponse struct {
	Index    int              `json:"index"`
	TypeID   string           `json:"type_id"`
	Position PositionResponse `json:"position"`
	Reason   string           `json:"reason"`
}

type LoadResponse struct {
	Key     string            `json:"key"`
	Found   bool              `json:"found"`
	Loaded  int               `json:"loaded"`
	Dropped []DroppedResponse `json:"dropped"`
	Layout  LayoutResponse    `json:"layout"`
}

type OccupancyResponse struct {
	X          int  `json:"x"`
	Y          int  `json:"y"`
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Occupied   bool `json:"occupied"`
	RegionFree bool `json:"region_free"`
}
