// Package analysis runs a single resources+scenario pair under each
// built-in criterion and ranks the criteria by the grade they achieve, the
// same sort-and-rank idiom this codebase already applies to ranking
// locations by arbitrage potential, adapted to rank dispatch criteria
// instead of market locations.
package analysis

import (
	"context"
	"fmt"
	"sort"

	"evfleet/internal/builder"
	"evfleet/internal/fleet"
	"evfleet/internal/scenario"
)

// CriterionResult is one criterion's outcome over the same resources and
// scenario.
type CriterionResult struct {
	Criterion  string
	FinalGrade float64
	FinalTime  float64
	Result     *scenario.Result
}

// RankByGrade builds a fresh fleet per built-in criterion from the same
// resources descriptor, runs the same scenario against each, and returns
// the criteria ranked by final cumulative grade, descending (ties broken
// by final cumulative time, then name).
func RankByGrade(ctx context.Context, resources builder.ResourcesDescriptor, steps []scenario.Step) ([]CriterionResult, error) {
	names := fleet.Names()
	out := make([]CriterionResult, 0, len(names))

	for _, name := range names {
		criterion, ok := fleet.ByName(name)
		if !ok {
			continue
		}

		b := builder.New()
		f, err := b.Build(resources)
		if err != nil {
			return nil, fmt.Errorf("building fleet for criterion %q: %w", name, err)
		}

		driver := scenario.New(f, criterion)
		res, err := driver.Run(ctx, steps)
		if err != nil {
			return nil, fmt.Errorf("running scenario under criterion %q: %w", name, err)
		}

		out = append(out, CriterionResult{
			Criterion:  name,
			FinalGrade: res.Grades[len(res.Grades)-1],
			FinalTime:  res.Time[len(res.Time)-1],
			Result:     res,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FinalGrade != out[j].FinalGrade {
			return out[i].FinalGrade > out[j].FinalGrade
		}
		if out[i].FinalTime != out[j].FinalTime {
			return out[i].FinalTime > out[j].FinalTime
		}
		return out[i].Criterion < out[j].Criterion
	})
	return out, nil
}
