package fleet

import (
	"evfleet/internal/model"
	"evfleet/internal/vehicle"
)

// Criterion ranks a vehicle for dispatch priority; higher means higher
// priority. Criteria are plain function values, the only polymorphic
// surface in the dispatcher besides the two adapter interfaces.
type Criterion func(*vehicle.Vehicle) float64

// Performant favors vehicles with the most remaining run-time before their
// battery reaches its end-of-life floor.
func Performant(v *vehicle.Vehicle) float64 {
	b := v.Battery.State
	floor := model.MinimumAvailableCapacityRatio * b.NominalCapacityWh
	return (b.CurrentCapacityWh - floor) / v.Power
}

// Medium favors vehicles with the most remaining run-time, ignoring
// end-of-life.
func Medium(v *vehicle.Vehicle) float64 {
	return v.Battery.State.CurrentCapacityWh / v.Power
}

// Poor favors vehicles purely by state of charge.
func Poor(v *vehicle.Vehicle) float64 {
	return v.Battery.Cell.State.SOC
}

// ByName resolves a built-in criterion by its configuration name.
func ByName(name string) (Criterion, bool) {
	switch name {
	case "performant":
		return Performant, true
	case "medium":
		return Medium, true
	case "poor":
		return Poor, true
	default:
		return nil, false
	}
}

// Names lists the built-in criterion names, in a stable order.
func Names() []string {
	return []string{"performant", "medium", "poor"}
}
