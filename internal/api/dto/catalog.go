package dto

type ShipResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	GridWidth  int    `json:"grid_width"`
	GridHeight int    `json:"grid_height"`
	Capacity   int    `json:"capacity"`
}

type ContainerTypeResponse struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Depth  int    `json:"depth"`
	Color  string `json:"color"`
}

type CatalogResponse struct {
	Ships      []ShipResponse          `json:"ships"`
	Containers []ContainerTypeResponse `json:"containers"`
}
