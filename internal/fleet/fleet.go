// Package fleet ranks, splits, dispatches and charges a pool of vehicles
// against a pool of charging stations, accumulating elapsed time and
// success grades over a scenario.
package fleet

import (
	"errors"
	"fmt"
	"sort"

	"evfleet/internal/simerr"
	"evfleet/internal/station"
	"evfleet/internal/vehicle"
)

// Fleet owns a pool of vehicles and charging stations and the running
// time/grades sequences produced by successive calls to Use.
type Fleet struct {
	Vehicles []*vehicle.Vehicle
	Stations []*station.ChargingStation
	Time     []float64
	Grades   []float64
}

// New builds an empty fleet with time/grades seeded at [0].
func New() *Fleet {
	return &Fleet{
		Time:   []float64{0},
		Grades: []float64{0},
	}
}

// ExtendFleet appends vehicles to the fleet.
func (f *Fleet) ExtendFleet(vehicles ...*vehicle.Vehicle) {
	f.Vehicles = append(f.Vehicles, vehicles...)
}

// AddChargingStations appends charging stations to the fleet.
func (f *Fleet) AddChargingStations(stations ...*station.ChargingStation) {
	f.Stations = append(f.Stations, stations...)
}

// Reset clears the time/grades sequences back to [0] and restores every
// vehicle's battery to a deep copy of its needed-battery template, as of
// its last structural change (replacement or upgrade).
func (f *Fleet) Reset() {
	f.Time = []float64{0}
	f.Grades = []float64{0}
	for _, v := range f.Vehicles {
		v.ResetBattery()
	}
}

// StepResult summarizes one call to Use, for callers that want more detail
// than the running Time/Grades sequences.
type StepResult struct {
	Dispatched int
	Successes  int
	Grade      float64
}

// Use runs the fleet for timelapse seconds at the given load fraction
// (0..1 of the fleet to dispatch), ranked by criterion.
//
// 1. Partition: K = round(load * N) vehicles are selected by criterion,
//    descending, stable on ties.
// 2. Discharge pass: each selected vehicle is used; EmptyCell moves it to
//    a failed set instead of aborting the step.
// 3. Grade: successes / K (0 if K == 0) is appended to the cumulative
//    sequences.
// 4. Charge pass: to-charge vehicles, then failed vehicles (in that
//    order, preserved as a deliberate policy, not a bug), are paired with
//    stations in order; surplus on either side is left idle. FullCell is
//    swallowed.
// 5. Reassemble: surviving to-use ++ to-charge ++ failed, in that order.
func (f *Fleet) Use(timelapse, load float64, criterion Criterion) (StepResult, error) {
	n := len(f.Vehicles)
	k := int(roundHalfAwayFromZero(load * float64(n)))

	ranked := make([]*vehicle.Vehicle, n)
	copy(ranked, f.Vehicles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return criterion(ranked[i]) > criterion(ranked[j])
	})

	toUse := ranked[:k]
	toCharge := ranked[k:]

	var failed []*vehicle.Vehicle
	surviving := toUse[:0:0]
	successes := 0
	for _, v := range toUse {
		if err := v.Use(timelapse); err != nil {
			if errors.Is(err, simerr.ErrEmptyCell) {
				failed = append(failed, v)
				continue
			}
			return StepResult{}, fmt.Errorf("vehicle %d use: %w", v.ID, err)
		}
		successes++
		surviving = append(surviving, v)
	}

	grade := 0.0
	if k > 0 {
		grade = float64(successes) / float64(k)
	}
	f.Time = append(f.Time, f.Time[len(f.Time)-1]+timelapse)
	f.Grades = append(f.Grades, f.Grades[len(f.Grades)-1]+grade)

	toChargeNow := append(append([]*vehicle.Vehicle{}, toCharge...), failed...)
	pairs := len(toChargeNow)
	if len(f.Stations) < pairs {
		pairs = len(f.Stations)
	}
	for i := 0; i < pairs; i++ {
		s := f.Stations[i]
		v := toChargeNow[i]
		s.PlugVehicle(v)
		if err := s.Charge(timelapse); err != nil {
			if errors.Is(err, simerr.ErrFullCell) {
				continue
			}
			return StepResult{}, fmt.Errorf("station charge for vehicle %d: %w", v.ID, err)
		}
	}

	f.Vehicles = append(append(append([]*vehicle.Vehicle{}, surviving...), toCharge...), failed...)

	return StepResult{Dispatched: k, Successes: successes, Grade: grade}, nil
}

// roundHalfAwayFromZero rounds to the nearest integer, matching the
// language-independent "round" used in the original specification.
func roundHalfAwayFromZero(x float64) float64 {
	if x >= 0 {
		return float64(int(x + 0.5))
	}
	return -float64(int(-x + 0.5))
}
