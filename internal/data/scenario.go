package data

import (
	"encoding/json"
	"fmt"
	"os"

	"evfleet/internal/scenario"
	"evfleet/internal/simerr"
)

// ScenarioLoader loads a scenario descriptor from wherever it lives.
type ScenarioLoader interface {
	Load() ([]scenario.Step, error)
}

// scenarioFile is the on-disk JSON shape: either a bare array of 2-tuples
// [timelapse_s, load], or an object with a "scenario" key holding that
// array.
type scenarioFile struct {
	Scenario [][2]float64 `json:"scenario"`
}

// JSONScenarioLoader loads a scenario from a JSON file on disk, accepting
// both the bare-array and wrapped-object shapes.
type JSONScenarioLoader struct {
	Path string
}

// NewJSONScenarioLoader builds a loader for the scenario file at path.
func NewJSONScenarioLoader(path string) *JSONScenarioLoader {
	return &JSONScenarioLoader{Path: path}
}

// Load reads and validates the scenario file.
func (l *JSONScenarioLoader) Load() ([]scenario.Step, error) {
	raw, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file %q: %w", l.Path, err)
	}

	var steps [][2]float64
	var bare [][2]float64
	if err := json.Unmarshal(raw, &bare); err == nil {
		steps = bare
	} else {
		var wrapped scenarioFile
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("parsing scenario file %q: %w: %v", l.Path, simerr.ErrConfiguration, err)
		}
		steps = wrapped.Scenario
	}

	return validateScenario(steps)
}

func validateScenario(raw [][2]float64) ([]scenario.Step, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("scenario must have at least one step: %w", simerr.ErrConfiguration)
	}
	steps := make([]scenario.Step, 0, len(raw))
	for i, s := range raw {
		timelapse, load := s[0], s[1]
		if timelapse <= 0 {
			return nil, fmt.Errorf("scenario[%d]: timelapse must be > 0: %w", i, simerr.ErrConfiguration)
		}
		if load < 0 || load > 1 {
			return nil, fmt.Errorf("scenario[%d]: load must be in [0,1]: %w", i, simerr.ErrConfiguration)
		}
		steps = append(steps, scenario.Step{Timelapse: timelapse, Load: load})
	}
	return steps, nil
}
