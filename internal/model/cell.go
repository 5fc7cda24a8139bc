package model

import (
	"fmt"
	"math"

	"evfleet/internal/simerr"
)

// DeltaT is the fixed simulation time increment, in seconds. Every call to
// Cell.Use consumes its timelapse in whole multiples of DeltaT.
const DeltaT = 120.0

// SecondsPerHour converts a Coulomb capacity to Wh alongside a tension.
const SecondsPerHour = 3600.0

// DefaultResistance is the internal resistance (Ohms) of a freshly built
// cell when none is specified.
const DefaultResistance = 70e-3

// DefaultNominalCapacityCoulombs is the default nominal capacity, in
// Coulombs, of a freshly built cell (2.6 Ah expressed in Coulombs).
const DefaultNominalCapacityCoulombs = 2600e-3 * SecondsPerHour

// CellParams holds a cell's immutable construction-time parameters.
type CellParams struct {
	OCV               OCVCurve
	InitialResistance float64 // Ohms
	Alpha             float64 // capacity-wear coefficient, 1/(W.s)
	Beta              float64 // resistance-wear coefficient, 1/(W.s)
}

// DefaultCellParams returns the default parameter set used by the original
// fleet-operator reference implementation.
func DefaultCellParams() CellParams {
	return CellParams{
		OCV:               DefaultOCV(),
		InitialResistance: DefaultResistance,
		Alpha:             0,
		Beta:              0,
	}
}

// Validate checks that the cell parameters are physically sensible.
func (p CellParams) Validate() error {
	if p.InitialResistance <= 0 {
		return fmt.Errorf("%w: cell resistance must be > 0, got %v", simerr.ErrConfiguration, p.InitialResistance)
	}
	if p.Alpha < 0 {
		return fmt.Errorf("%w: cell alpha must be >= 0, got %v", simerr.ErrConfiguration, p.Alpha)
	}
	if p.Beta < 0 {
		return fmt.Errorf("%w: cell beta must be >= 0, got %v", simerr.ErrConfiguration, p.Beta)
	}
	return nil
}

// CellState holds a cell's mutable state of charge and wear.
type CellState struct {
	SOC                 float64
	Resistance          float64 // Ohms, ages over time
	NominalCapacityWh   float64
	AvailableCapacityWh float64
	CurrentCapacityWh   float64
	Tension             float64
}

// Cell is the electrochemical state machine: state of charge, tension
// under load, ageing, and fixed-Δt capacity accounting.
type Cell struct {
	Params CellParams
	State  CellState
}

// NewCell builds a cell from its parameters and a nominal capacity given in
// Coulombs, converting it to Wh using the tension at full charge.
func NewCell(params CellParams, nominalCapacityCoulombs float64) (*Cell, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if nominalCapacityCoulombs <= 0 {
		return nil, fmt.Errorf("%w: cell nominal capacity must be > 0, got %v", simerr.ErrConfiguration, nominalCapacityCoulombs)
	}
	v0, err := params.OCV.Evaluate(1.0)
	if err != nil {
		return nil, fmt.Errorf("evaluating ocv at full charge: %w", err)
	}
	nominalWh := coulombsToWh(nominalCapacityCoulombs, v0)
	return &Cell{
		Params: CellParams{
			OCV:               params.OCV.Clone(),
			InitialResistance: params.InitialResistance,
			Alpha:             params.Alpha,
			Beta:              params.Beta,
		},
		State: CellState{
			SOC:                 1,
			Resistance:          params.InitialResistance,
			NominalCapacityWh:   nominalWh,
			AvailableCapacityWh: nominalWh,
			CurrentCapacityWh:   nominalWh,
			Tension:             v0,
		},
	}, nil
}

// NewDefaultCell builds a cell using DefaultCellParams and
// DefaultNominalCapacityCoulombs.
func NewDefaultCell() *Cell {
	c, err := NewCell(DefaultCellParams(), DefaultNominalCapacityCoulombs)
	if err != nil {
		// DefaultCellParams is always valid; a failure here is a bug.
		panic(fmt.Errorf("default cell params rejected: %w", err))
	}
	return c
}

// coulombsToWh converts a capacity expressed in Coulombs to Wh using the
// given tension.
func coulombsToWh(coulombs, tension float64) float64 {
	return coulombs * tension / SecondsPerHour
}

// tensionUnderLoad solves the cell's terminal voltage under a signed power
// P (positive = charge, negative = discharge).
func (c *Cell) tensionUnderLoad(power float64) (float64, error) {
	ocv, err := c.Params.OCV.Evaluate(c.State.SOC)
	if err != nil {
		return 0, fmt.Errorf("evaluating ocv at soc %v: %w", c.State.SOC, err)
	}
	delta := ocv*ocv + 4*c.State.Resistance*power
	switch {
	case delta < 0:
		return 0, fmt.Errorf("tension solver at power %v, soc %v: %w", power, c.State.SOC, simerr.ErrTooPowerfulDischarge)
	case delta == 0:
		return ocv / 2, nil
	default:
		return (ocv + math.Sqrt(delta)) / 2, nil
	}
}

// age computes the provisional available capacity and resistance after
// bearing the given signed power for one DeltaT sub-step. Ageing is
// provisional until accepted by subStep.
func (c *Cell) age(power float64) (availableWh, resistance float64) {
	magnitude := math.Abs(power)
	availableWh = c.State.AvailableCapacityWh * (1 - c.Params.Alpha*DeltaT*magnitude)
	resistance = c.State.Resistance * (1 + c.Params.Beta*DeltaT*magnitude)
	return availableWh, resistance
}

// subStep advances the cell by one DeltaT increment under the given signed
// power, committing state only if both tension and capacity checks pass.
func (c *Cell) subStep(power float64) error {
	tension, err := c.tensionUnderLoad(power)
	if err != nil {
		return err
	}
	deltaWh := power * DeltaT / SecondsPerHour
	availableWh, resistance := c.age(power)

	next := c.State.CurrentCapacityWh + deltaWh
	switch {
	case next < 0:
		return fmt.Errorf("sub-step at power %v: %w", power, simerr.ErrEmptyCell)
	case next > availableWh:
		return fmt.Errorf("sub-step at power %v: %w", power, simerr.ErrFullCell)
	}

	c.State.AvailableCapacityWh = availableWh
	c.State.Resistance = resistance
	c.State.Tension = tension
	c.State.CurrentCapacityWh = next
	c.State.SOC = next / availableWh
	return nil
}

// Use drives the cell for timelapse seconds at the given signed power,
// consuming timelapse in whole DeltaT sub-steps. elapsed is incremented
// before the sub-step runs, so timelapse=0 performs no sub-steps and any
// timelapse in (0, DeltaT] performs exactly one.
func (c *Cell) Use(timelapse, power float64) error {
	elapsed := 0.0
	for elapsed < timelapse {
		elapsed += DeltaT
		if err := c.subStep(power); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an independent deep copy of the cell.
func (c *Cell) Clone() *Cell {
	return &Cell{
		Params: CellParams{
			OCV:               c.Params.OCV.Clone(),
			InitialResistance: c.Params.InitialResistance,
			Alpha:             c.Params.Alpha,
			Beta:              c.Params.Beta,
		},
		State: c.State,
	}
}
