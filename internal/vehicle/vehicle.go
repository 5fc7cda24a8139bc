// Package vehicle drives and charges a vehicle's battery, recovering from
// end-of-life and over-power faults by replacing or upgrading the pack.
package vehicle

import (
	"errors"
	"fmt"

	"evfleet/internal/model"
	"evfleet/internal/simerr"
)

// DefaultPower is the default vehicle power draw, in watts.
const DefaultPower = 20e3

// maxRetryDepth bounds how many times Use will replace or upgrade the
// battery within a single call before giving up. Unbounded recursion (the
// source system's behavior) is not an acceptable failure mode here; a
// vehicle whose upgraded pack still cannot sustain the requested power
// after this many attempts surfaces ErrRetriesExhausted instead.
const maxRetryDepth = 8

// Vehicle consumes power to perform work and can be plugged in to recharge.
type Vehicle struct {
	ID      int
	Power   float64
	Battery *model.Battery

	neededBattery *model.Battery
}

// New builds a vehicle with the given id, power draw and battery. The
// battery is snapshotted as the vehicle's "needed battery" template, used
// to reconstruct a pristine pack after end-of-life.
func New(id int, power float64, battery *model.Battery) *Vehicle {
	return &Vehicle{
		ID:            id,
		Power:         power,
		Battery:       battery,
		neededBattery: battery.Clone(),
	}
}

// Use drives the vehicle for timelapse seconds, discharging its battery at
// the vehicle's power draw. BatteryLifetime triggers a battery replacement
// and retry; TooPowerfulDischarge triggers a battery upgrade and retry.
// EmptyCell is not handled here and propagates to the caller.
func (v *Vehicle) Use(timelapse float64) error {
	return v.useWithRetries(timelapse, 0)
}

func (v *Vehicle) useWithRetries(timelapse float64, depth int) error {
	err := v.Battery.Use(timelapse, -v.Power)
	if err == nil {
		return nil
	}
	if depth >= maxRetryDepth {
		return fmt.Errorf("vehicle %d: %w (last cause: %v)", v.ID, simerr.ErrRetriesExhausted, err)
	}
	switch {
	case errors.Is(err, simerr.ErrBatteryLifetime):
		v.changeBattery()
		return v.useWithRetries(timelapse, depth+1)
	case errors.Is(err, simerr.ErrTooPowerfulDischarge):
		v.upgradeBattery(1, 2)
		return v.useWithRetries(timelapse, depth+1)
	default:
		return err
	}
}

// Charge drives the vehicle's battery for timelapse seconds at the given
// charge power. BatteryLifetime triggers a battery replacement but is not
// retried; FullCell is not handled here and propagates to the caller.
func (v *Vehicle) Charge(timelapse, power float64) error {
	err := v.Battery.Use(timelapse, power)
	if err == nil {
		return nil
	}
	if errors.Is(err, simerr.ErrBatteryLifetime) {
		v.changeBattery()
		return nil
	}
	return err
}

// changeBattery replaces the live battery with a fresh deep copy of the
// needed-battery template.
func (v *Vehicle) changeBattery() {
	v.Battery = v.neededBattery.Clone()
}

// ResetBattery restores the vehicle's battery to a deep copy of its
// needed-battery template, as of the last replacement or upgrade. Used by
// Fleet.Reset at the start of a scenario.
func (v *Vehicle) ResetBattery() {
	v.changeBattery()
}

// upgradeBattery replaces the live battery with a larger pack built from
// the needed-battery template's cell, scaled by the given multipliers, and
// updates the template to match so future replacements match the upgrade.
func (v *Vehicle) upgradeBattery(seriesMultiplier, parallelMultiplier int) {
	upgraded, err := model.NewBattery(model.BatteryParams{
		SeriesCells:      v.neededBattery.Params.SeriesCells * seriesMultiplier,
		ParallelBranches: v.neededBattery.Params.ParallelBranches * parallelMultiplier,
	}, v.neededBattery.Cell.Clone())
	if err != nil {
		// Multipliers are always positive integers applied to already-valid
		// dimensions; this cannot fail.
		panic(fmt.Errorf("battery upgrade produced invalid params: %w", err))
	}
	v.Battery = upgraded
	v.neededBattery = upgraded.Clone()
}
