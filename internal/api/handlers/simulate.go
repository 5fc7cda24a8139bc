// Package handlers implements the synchronous HTTP entry points that
// exercise the simulation engine. No goroutines, no background state: a
// request runs the deterministic engine inline and returns its result.
package handlers

import (
	"net/http"

	"evfleet/internal/api/models"
	"evfleet/internal/builder"
	"evfleet/internal/fleet"
	"evfleet/internal/scenario"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation requests.
type SimulateHandler struct{}

// NewSimulateHandler builds a simulate handler.
func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// RunSimulation handles POST /api/v1/simulate.
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	criterion, ok := fleet.ByName(req.Criterion)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CRITERION", Message: "criterion must be one of " + joinNames(fleet.Names())},
		})
		return
	}

	resources := toResourcesDescriptor(req.Resources)
	steps := toScenarioSteps(req.Scenario)

	b := builder.New()
	f, err := b.Build(resources)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_RESOURCES", Message: err.Error()},
		})
		return
	}

	driver := scenario.New(f, criterion)
	result, err := driver.Run(c.Request.Context(), steps)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "SIMULATION_ERROR", Message: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, toSimulateResponse(result))
}

func toResourcesDescriptor(r models.ResourcesRequest) builder.ResourcesDescriptor {
	vehicles := make([]builder.VehicleDescriptor, 0, len(r.Vehicles))
	for _, v := range r.Vehicles {
		vehicles = append(vehicles, builder.VehicleDescriptor{
			CellNominalCapacityC: v.CellNominalCapacityC,
			SeriesCells:          v.SeriesCells,
			ParallelBranches:     v.ParallelBranches,
			VehiclePowerW:        v.VehiclePowerW,
		})
	}
	return builder.ResourcesDescriptor{
		Vehicles:         vehicles,
		ChargingStations: r.ChargingStations,
	}
}

func toScenarioSteps(in []models.ScenarioStepRequest) []scenario.Step {
	steps := make([]scenario.Step, 0, len(in))
	for _, s := range in {
		steps = append(steps, scenario.Step{Timelapse: s.Timelapse, Load: s.Load})
	}
	return steps
}

func toSimulateResponse(result *scenario.Result) models.SimulateResponse {
	ledger := make([]models.StepLogResponse, 0, len(result.Ledger))
	for _, row := range result.Ledger {
		ledger = append(ledger, models.StepLogResponse{
			Index:           row.Index,
			Timelapse:       row.Timelapse,
			Load:            row.Load,
			Dispatched:      row.Dispatched,
			Successes:       row.Successes,
			Grade:           row.Grade,
			CumulativeTime:  row.CumulativeTime,
			CumulativeGrade: row.CumulativeGrade,
		})
	}
	return models.SimulateResponse{
		Time:   result.Time,
		Grades: result.Grades,
		Ledger: ledger,
	}
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
