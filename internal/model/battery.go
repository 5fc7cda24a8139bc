package model

import (
	"fmt"

	"evfleet/internal/simerr"
)

// MinimumAvailableCapacityRatio (ρ_min) is the available/nominal capacity
// ratio at or below which a battery is considered end-of-life.
const MinimumAvailableCapacityRatio = 0.3

// DefaultSeriesCells and DefaultParallelBranches size a default pack.
const (
	DefaultSeriesCells      = 100
	DefaultParallelBranches = 10
)

// BatteryParams holds a battery pack's construction-time dimensions.
type BatteryParams struct {
	SeriesCells      int
	ParallelBranches int
}

// Validate checks that the pack dimensions are sensible.
func (p BatteryParams) Validate() error {
	if p.SeriesCells < 1 {
		return fmt.Errorf("%w: series cells must be >= 1, got %d", simerr.ErrConfiguration, p.SeriesCells)
	}
	if p.ParallelBranches < 1 {
		return fmt.Errorf("%w: parallel branches must be >= 1, got %d", simerr.ErrConfiguration, p.ParallelBranches)
	}
	return nil
}

// BatteryState holds the pack-level aggregates recomputed from the cell
// after every use.
type BatteryState struct {
	Tension             float64
	AvailableCapacityWh float64
	CurrentCapacityWh   float64
	NominalCapacityWh   float64
}

// Battery is a pack of SeriesCells x ParallelBranches of a shared Cell
// prototype, with an end-of-life policy.
type Battery struct {
	Params BatteryParams
	Cell   *Cell
	State  BatteryState
}

// NewBattery builds a battery pack around the given cell.
func NewBattery(params BatteryParams, cell *Cell) (*Battery, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Battery{Params: params, Cell: cell}
	b.recomputeAggregates()
	return b, nil
}

// NewDefaultBattery builds a battery with the reference default dimensions
// around a fresh default cell.
func NewDefaultBattery() *Battery {
	b, err := NewBattery(BatteryParams{SeriesCells: DefaultSeriesCells, ParallelBranches: DefaultParallelBranches}, NewDefaultCell())
	if err != nil {
		panic(fmt.Errorf("default battery params rejected: %w", err))
	}
	return b
}

func (b *Battery) recomputeAggregates() {
	p := float64(b.Params.ParallelBranches)
	s := float64(b.Params.SeriesCells)
	b.State.Tension = b.Cell.State.Tension * s
	b.State.AvailableCapacityWh = b.Cell.State.AvailableCapacityWh * p
	b.State.CurrentCapacityWh = b.Cell.State.CurrentCapacityWh * p
	b.State.NominalCapacityWh = b.Cell.State.NominalCapacityWh * p
}

// Use drives the pack for timelapse seconds at the given signed pack-level
// power (positive = charge, negative = discharge), splitting it evenly
// across every cell in the pack.
func (b *Battery) Use(timelapse, power float64) error {
	cellPower := power / float64(b.Params.SeriesCells*b.Params.ParallelBranches)
	if err := b.Cell.Use(timelapse, cellPower); err != nil {
		return err
	}
	b.recomputeAggregates()
	if b.State.AvailableCapacityWh/b.State.NominalCapacityWh <= MinimumAvailableCapacityRatio {
		return fmt.Errorf("battery available/nominal ratio %v: %w",
			b.State.AvailableCapacityWh/b.State.NominalCapacityWh, simerr.ErrBatteryLifetime)
	}
	return nil
}

// Clone returns an independent deep copy of the battery, including its
// cell.
func (b *Battery) Clone() *Battery {
	return &Battery{
		Params: b.Params,
		Cell:   b.Cell.Clone(),
		State:  b.State,
	}
}
