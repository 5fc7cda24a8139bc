// Package station models a charging station that holds at most one
// plugged vehicle at a time.
package station

import (
	"fmt"

	"evfleet/internal/simerr"
	"evfleet/internal/vehicle"
)

// DefaultPower is the default charging station power, in watts.
const DefaultPower = 100e3

// ChargingStation delivers charge power to at most one plugged vehicle.
type ChargingStation struct {
	Power   float64
	plugged *vehicle.Vehicle
}

// New builds a charging station of the given power, with no vehicle
// plugged in.
func New(power float64) *ChargingStation {
	return &ChargingStation{Power: power}
}

// PlugVehicle plugs v into the station, replacing any previously plugged
// vehicle.
func (s *ChargingStation) PlugVehicle(v *vehicle.Vehicle) {
	s.plugged = v
}

// Charge charges the plugged vehicle for timelapse seconds at the
// station's power, then releases it regardless of outcome.
func (s *ChargingStation) Charge(timelapse float64) error {
	if s.plugged == nil {
		return fmt.Errorf("charging station: %w", simerr.ErrNoPluggedVehicle)
	}
	plugged := s.plugged
	defer func() { s.plugged = nil }()
	return plugged.Charge(timelapse, s.Power)
}
