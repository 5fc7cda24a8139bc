package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evfleet/internal/builder"
	"evfleet/internal/fleet"
	"evfleet/internal/scenario"
)

func sampleResources() builder.ResourcesDescriptor {
	return builder.ResourcesDescriptor{
		Vehicles: []builder.VehicleDescriptor{
			{CellNominalCapacityC: 9360, SeriesCells: 100, ParallelBranches: 10, VehiclePowerW: 20e3},
			{CellNominalCapacityC: 9360, SeriesCells: 100, ParallelBranches: 10, VehiclePowerW: 20e3},
		},
		ChargingStations: []float64{100e3},
	}
}

func TestRankByGrade_ReturnsOneEntryPerCriterion(t *testing.T) {
	steps := []scenario.Step{{Timelapse: 120, Load: 1.0}}
	out, err := RankByGrade(context.Background(), sampleResources(), steps)
	require.NoError(t, err)

	require.Len(t, out, len(fleet.Names()))
	for _, r := range out {
		assert.Contains(t, fleet.Names(), r.Criterion)
	}
}

func TestRankByGrade_SortedDescendingByGrade(t *testing.T) {
	steps := []scenario.Step{{Timelapse: 120, Load: 1.0}, {Timelapse: 120, Load: 0.5}}
	out, err := RankByGrade(context.Background(), sampleResources(), steps)
	require.NoError(t, err)

	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].FinalGrade, out[i].FinalGrade)
	}
}

func TestRankByGrade_PropagatesBuildErrors(t *testing.T) {
	bad := sampleResources()
	bad.Vehicles = nil
	_, err := RankByGrade(context.Background(), bad, []scenario.Step{{Timelapse: 120, Load: 1.0}})
	assert.Error(t, err)
}
