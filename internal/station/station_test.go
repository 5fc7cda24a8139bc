package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evfleet/internal/model"
	"evfleet/internal/simerr"
	"evfleet/internal/vehicle"
)

func TestChargingStation_ChargeWithNoVehiclePlugged(t *testing.T) {
	s := New(DefaultPower)
	err := s.Charge(model.DeltaT)
	assert.ErrorIs(t, err, simerr.ErrNoPluggedVehicle)
}

func TestChargingStation_ChargesPluggedVehicle(t *testing.T) {
	s := New(DefaultPower)
	v := vehicle.New(1, 20e3, model.NewDefaultBattery())
	// Ten sub-steps at 20 kW drain more than one 100 kW charge sub-step puts
	// back, so the charge below does not overflow the pack.
	require.NoError(t, v.Use(10*model.DeltaT))
	before := v.Battery.State.CurrentCapacityWh

	s.PlugVehicle(v)
	require.NoError(t, s.Charge(model.DeltaT))

	assert.Greater(t, v.Battery.State.CurrentCapacityWh, before)
}

func TestChargingStation_ReleasesVehicleEvenOnError(t *testing.T) {
	s := New(DefaultPower)
	v := vehicle.New(1, 20e3, model.NewDefaultBattery())
	s.PlugVehicle(v)

	// The pack is already fully charged, so charging it further overflows.
	err := s.Charge(model.DeltaT)
	require.Error(t, err)

	// The station released its vehicle regardless of the charge outcome, so
	// a second call with nothing plugged reports ErrNoPluggedVehicle rather
	// than attempting to charge the same vehicle again.
	err = s.Charge(model.DeltaT)
	assert.ErrorIs(t, err, simerr.ErrNoPluggedVehicle)
}
