// Package data loads the two external JSON documents the simulation
// engine treats as collaborators rather than internal concerns: the
// fleet's resources (vehicles, charging stations) and a scenario (a
// series of (timelapse, load) steps).
package data

import (
	"encoding/json"
	"fmt"
	"os"

	"evfleet/internal/builder"
	"evfleet/internal/simerr"
)

// ResourceLoader loads a resources descriptor from wherever it lives.
type ResourceLoader interface {
	Load() (builder.ResourcesDescriptor, error)
}

// resourcesFile is the on-disk JSON shape: vehicles as 4-tuples
// [cell_nominal_capacity_C, series_cells_number, parallel_branches_number,
// vehicle_power_W] and charging_stations as a list of station powers.
type resourcesFile struct {
	Vehicles         [][4]float64 `json:"vehicles"`
	ChargingStations []float64    `json:"charging_stations"`
}

// JSONResourceLoader loads a ResourcesDescriptor from a JSON file on disk.
type JSONResourceLoader struct {
	Path string
}

// NewJSONResourceLoader builds a loader for the resources file at path.
func NewJSONResourceLoader(path string) *JSONResourceLoader {
	return &JSONResourceLoader{Path: path}
}

// Load reads and validates the resources file.
func (l *JSONResourceLoader) Load() (builder.ResourcesDescriptor, error) {
	raw, err := os.ReadFile(l.Path)
	if err != nil {
		return builder.ResourcesDescriptor{}, fmt.Errorf("reading resources file %q: %w", l.Path, err)
	}
	var doc resourcesFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return builder.ResourcesDescriptor{}, fmt.Errorf("parsing resources file %q: %w: %v", l.Path, simerr.ErrConfiguration, err)
	}
	return validateResources(doc)
}

func validateResources(doc resourcesFile) (builder.ResourcesDescriptor, error) {
	if len(doc.Vehicles) == 0 {
		return builder.ResourcesDescriptor{}, fmt.Errorf("resources.vehicles must have at least one entry: %w", simerr.ErrConfiguration)
	}
	if len(doc.ChargingStations) == 0 {
		return builder.ResourcesDescriptor{}, fmt.Errorf("resources.charging_stations must have at least one entry: %w", simerr.ErrConfiguration)
	}

	descriptor := builder.ResourcesDescriptor{
		Vehicles:         make([]builder.VehicleDescriptor, 0, len(doc.Vehicles)),
		ChargingStations: make([]float64, 0, len(doc.ChargingStations)),
	}

	for i, v := range doc.Vehicles {
		capC, s, p, power := v[0], v[1], v[2], v[3]
		if capC <= 0 {
			return builder.ResourcesDescriptor{}, fmt.Errorf("resources.vehicles[%d]: cell nominal capacity must be > 0: %w", i, simerr.ErrConfiguration)
		}
		if s < 1 || s != float64(int(s)) {
			return builder.ResourcesDescriptor{}, fmt.Errorf("resources.vehicles[%d]: series cells must be an integer >= 1: %w", i, simerr.ErrConfiguration)
		}
		if p < 1 || p != float64(int(p)) {
			return builder.ResourcesDescriptor{}, fmt.Errorf("resources.vehicles[%d]: parallel branches must be an integer >= 1: %w", i, simerr.ErrConfiguration)
		}
		if power <= 0 {
			return builder.ResourcesDescriptor{}, fmt.Errorf("resources.vehicles[%d]: vehicle power must be > 0: %w", i, simerr.ErrConfiguration)
		}
		descriptor.Vehicles = append(descriptor.Vehicles, builder.VehicleDescriptor{
			CellNominalCapacityC: capC,
			SeriesCells:          int(s),
			ParallelBranches:     int(p),
			VehiclePowerW:        power,
		})
	}

	for i, power := range doc.ChargingStations {
		if power <= 0 {
			return builder.ResourcesDescriptor{}, fmt.Errorf("resources.charging_stations[%d]: power must be > 0: %w", i, simerr.ErrConfiguration)
		}
		descriptor.ChargingStations = append(descriptor.ChargingStations, power)
	}

	return descriptor, nil
}
