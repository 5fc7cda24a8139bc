package main

import (
	"context"
	"flag"
	"fmt"

	"evfleet/internal/builder"
	"evfleet/internal/fleet"
	"evfleet/internal/scenario"
)

// Demo:
// - Build a small in-memory fleet from a resources descriptor
// - Drive it through a short scenario
// - Print the step-by-step ledger to show how the pieces fit together
func main() {
	criterionName := flag.String("criterion", "poor", "Dispatch criterion: performant | medium | poor")
	steps := flag.Int("steps", 10, "Number of scenario steps to simulate")
	flag.Parse()

	criterion, ok := fleet.ByName(*criterionName)
	if !ok {
		panic(fmt.Errorf("unknown criterion %q, must be one of %v", *criterionName, fleet.Names()))
	}

	resources := builder.ResourcesDescriptor{
		Vehicles: []builder.VehicleDescriptor{
			{CellNominalCapacityC: 9360, SeriesCells: 100, ParallelBranches: 10, VehiclePowerW: 20e3},
			{CellNominalCapacityC: 9360, SeriesCells: 100, ParallelBranches: 10, VehiclePowerW: 20e3},
			{CellNominalCapacityC: 9360, SeriesCells: 100, ParallelBranches: 10, VehiclePowerW: 25e3},
			{CellNominalCapacityC: 9360, SeriesCells: 100, ParallelBranches: 10, VehiclePowerW: 15e3},
		},
		ChargingStations: []float64{100e3, 100e3},
	}

	b := builder.New()
	f, err := b.Build(resources)
	if err != nil {
		panic(err)
	}

	scenarioSteps := make([]scenario.Step, 0, *steps)
	for i := 0; i < *steps; i++ {
		load := 0.5
		if i%3 == 0 {
			load = 0.75
		}
		scenarioSteps = append(scenarioSteps, scenario.Step{Timelapse: 120, Load: load})
	}

	driver := scenario.New(f, criterion)
	result, err := driver.Run(context.Background(), scenarioSteps)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Criterion=%s, %d vehicles, %d stations\n\n", *criterionName, len(resources.Vehicles), len(resources.ChargingStations))
	fmt.Printf("%-6s %-10s %-6s %-10s %-10s %-8s %-10s\n", "step", "timelapse", "load", "dispatched", "successes", "grade", "cum.grade")
	for _, row := range result.Ledger {
		fmt.Printf("%-6d %-10.1f %-6.2f %-10d %-10d %-8.3f %-10.3f\n",
			row.Index, row.Timelapse, row.Load, row.Dispatched, row.Successes, row.Grade, row.CumulativeGrade)
	}

	fmt.Printf("\nDone. Final time=%.1fs grade=%.3f\n", result.Time[len(result.Time)-1], result.Grades[len(result.Grades)-1])
}
