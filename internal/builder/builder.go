// Package builder materializes a Fleet from resource descriptors, owning
// the monotonic vehicle-id counter so two builders never collide and tests
// can construct fleets without cross-test id leakage.
package builder

import (
	"fmt"

	"evfleet/internal/fleet"
	"evfleet/internal/model"
	"evfleet/internal/simerr"
	"evfleet/internal/station"
	"evfleet/internal/vehicle"
)

// VehicleDescriptor describes one vehicle to build: its cell's nominal
// capacity in Coulombs, its battery's series/parallel dimensions, and its
// power draw in watts.
type VehicleDescriptor struct {
	CellNominalCapacityC float64
	SeriesCells          int
	ParallelBranches     int
	VehiclePowerW        float64
}

// ResourcesDescriptor is the fully-parsed, validated resources document:
// a pool of vehicles to build and a pool of charging station powers.
type ResourcesDescriptor struct {
	Vehicles         []VehicleDescriptor
	ChargingStations []float64
}

// Builder constructs Fleets from ResourcesDescriptors, assigning each
// vehicle a stable id from its own monotonic counter.
type Builder struct {
	nextID int
}

// New returns a builder whose vehicle-id counter starts at 0.
func New() *Builder {
	return &Builder{}
}

// Build instantiates a Fleet per the given resources descriptor: one Cell,
// Battery and Vehicle per vehicle entry, and one ChargingStation per
// station power.
func (b *Builder) Build(resources ResourcesDescriptor) (*fleet.Fleet, error) {
	if len(resources.Vehicles) == 0 {
		return nil, fmt.Errorf("resources must describe at least one vehicle: %w", simerr.ErrConfiguration)
	}
	if len(resources.ChargingStations) == 0 {
		return nil, fmt.Errorf("resources must describe at least one charging station: %w", simerr.ErrConfiguration)
	}

	f := fleet.New()
	for _, vd := range resources.Vehicles {
		cell, err := model.NewCell(model.DefaultCellParams(), vd.CellNominalCapacityC)
		if err != nil {
			return nil, fmt.Errorf("building cell: %w", err)
		}
		batt, err := model.NewBattery(model.BatteryParams{
			SeriesCells:      vd.SeriesCells,
			ParallelBranches: vd.ParallelBranches,
		}, cell)
		if err != nil {
			return nil, fmt.Errorf("building battery: %w", err)
		}
		v := vehicle.New(b.nextID, vd.VehiclePowerW, batt)
		b.nextID++
		f.ExtendFleet(v)
	}
	for _, power := range resources.ChargingStations {
		f.AddChargingStations(station.New(power))
	}
	return f, nil
}
