package models

// VehicleRequest is one vehicle entry of a resources request: a cell
// nominal capacity in Coulombs, the battery's series/parallel dimensions,
// and the vehicle's power draw in watts.
type VehicleRequest struct {
	CellNominalCapacityC float64 `json:"cell_nominal_capacity_c" binding:"required"`
	SeriesCells          int     `json:"series_cells" binding:"required"`
	ParallelBranches     int     `json:"parallel_branches" binding:"required"`
	VehiclePowerW        float64 `json:"vehicle_power_w" binding:"required"`
}

// ResourcesRequest is the resources portion of a simulate request.
type ResourcesRequest struct {
	Vehicles         []VehicleRequest `json:"vehicles" binding:"required"`
	ChargingStations []float64        `json:"charging_stations" binding:"required"`
}

// ScenarioStepRequest is one (timelapse, load) step of a scenario request.
type ScenarioStepRequest struct {
	Timelapse float64 `json:"timelapse_s" binding:"required"`
	Load      float64 `json:"load"`
}

// SimulateRequest is the request body for POST /api/v1/simulate.
type SimulateRequest struct {
	Resources ResourcesRequest      `json:"resources" binding:"required"`
	Scenario  []ScenarioStepRequest `json:"scenario" binding:"required"`
	Criterion string                `json:"criterion" binding:"required"` // performant | medium | poor
}

// CompareRequest is the request body for POST /api/v1/compare.
type CompareRequest struct {
	Resources ResourcesRequest      `json:"resources" binding:"required"`
	Scenario  []ScenarioStepRequest `json:"scenario" binding:"required"`
}
