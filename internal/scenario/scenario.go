// Package scenario drives a Fleet through an ordered series of
// (timelapse, load) steps, accumulating a per-step ledger alongside the
// fleet's own time/grades sequences.
package scenario

import (
	"context"
	"fmt"

	"evfleet/internal/fleet"
)

// Step is one (timelapse, load) entry of a scenario.
type Step struct {
	Timelapse float64
	Load      float64
}

// StepLog is one row of per-step output, mirroring what happened to the
// fleet during that step.
type StepLog struct {
	Index           int
	Timelapse       float64
	Load            float64
	Dispatched      int
	Successes       int
	Grade           float64
	CumulativeTime  float64
	CumulativeGrade float64
}

// Result bundles a completed (or partially completed, on error) run.
type Result struct {
	Time   []float64
	Grades []float64
	Ledger []StepLog
}

// Driver runs a scenario against a fleet under a fixed criterion.
type Driver struct {
	Fleet     *fleet.Fleet
	Criterion fleet.Criterion
}

// New builds a driver for the given fleet and criterion.
func New(f *fleet.Fleet, criterion fleet.Criterion) *Driver {
	return &Driver{Fleet: f, Criterion: criterion}
}

// Run executes every step in order against the driver's fleet. No step is
// retried; a propagated error aborts the run, returning the ledger built
// so far alongside the error for diagnostics. ctx is checked once between
// steps (never mid sub-step), matching the fleet's single-threaded,
// deterministic execution model.
func (d *Driver) Run(ctx context.Context, steps []Step) (*Result, error) {
	ledger := make([]StepLog, 0, len(steps))

	for idx, step := range steps {
		if err := ctx.Err(); err != nil {
			return &Result{Time: d.Fleet.Time, Grades: d.Fleet.Grades, Ledger: ledger}, fmt.Errorf("scenario step %d: %w", idx, err)
		}

		res, err := d.Fleet.Use(step.Timelapse, step.Load, d.Criterion)
		if err != nil {
			return &Result{Time: d.Fleet.Time, Grades: d.Fleet.Grades, Ledger: ledger},
				fmt.Errorf("scenario step %d: %w", idx, err)
		}

		ledger = append(ledger, StepLog{
			Index:           idx,
			Timelapse:       step.Timelapse,
			Load:            step.Load,
			Dispatched:      res.Dispatched,
			Successes:       res.Successes,
			Grade:           res.Grade,
			CumulativeTime:  d.Fleet.Time[len(d.Fleet.Time)-1],
			CumulativeGrade: d.Fleet.Grades[len(d.Fleet.Grades)-1],
		})
	}

	return &Result{Time: d.Fleet.Time, Grades: d.Fleet.Grades, Ledger: ledger}, nil
}
