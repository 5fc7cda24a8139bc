package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evfleet/internal/simerr"
)

func TestNewBattery_Defaults(t *testing.T) {
	b := NewDefaultBattery()
	assert.Equal(t, DefaultSeriesCells, b.Params.SeriesCells)
	assert.Equal(t, DefaultParallelBranches, b.Params.ParallelBranches)
	assert.InDelta(t, b.Cell.State.NominalCapacityWh*DefaultParallelBranches, b.State.NominalCapacityWh, 1e-6)
}

func TestNewBattery_RejectsInvalidDimensions(t *testing.T) {
	_, err := NewBattery(BatteryParams{SeriesCells: 0, ParallelBranches: 1}, NewDefaultCell())
	assert.ErrorIs(t, err, simerr.ErrConfiguration)

	_, err = NewBattery(BatteryParams{SeriesCells: 1, ParallelBranches: 0}, NewDefaultCell())
	assert.ErrorIs(t, err, simerr.ErrConfiguration)
}

func TestBattery_UseSplitsPowerAcrossCells(t *testing.T) {
	b := NewDefaultBattery()
	packPower := -float64(DefaultSeriesCells*DefaultParallelBranches) * 1.0

	require.NoError(t, b.Use(DeltaT, packPower))

	// Each cell saw exactly 1W of discharge.
	assert.Less(t, b.Cell.State.SOC, 1.0)
	assert.InDelta(t, b.Cell.State.CurrentCapacityWh*DefaultParallelBranches, b.State.CurrentCapacityWh, 1e-6)
}

func TestBattery_EndOfLife(t *testing.T) {
	b := NewDefaultBattery()
	b.Cell.State.AvailableCapacityWh = b.Cell.State.NominalCapacityWh * MinimumAvailableCapacityRatio
	b.Cell.State.CurrentCapacityWh = b.Cell.State.AvailableCapacityWh
	b.recomputeAggregates()

	err := b.Use(DeltaT, -float64(DefaultSeriesCells*DefaultParallelBranches)*0.001)
	assert.ErrorIs(t, err, simerr.ErrBatteryLifetime)
}

func TestBattery_CloneIsIndependent(t *testing.T) {
	b := NewDefaultBattery()
	clone := b.Clone()
	packPower := -float64(DefaultSeriesCells*DefaultParallelBranches) * 1.0
	require.NoError(t, clone.Use(DeltaT, packPower))

	assert.NotEqual(t, b.State.CurrentCapacityWh, clone.State.CurrentCapacityWh)
}
