package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evfleet/internal/simerr"
)

func writeScenarioFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestJSONScenarioLoader_BareArray(t *testing.T) {
	path := writeScenarioFile(t, `[[120, 0.5], [120, 1.0]]`)

	steps, err := NewJSONScenarioLoader(path).Load()
	require.NoError(t, err)

	require.Len(t, steps, 2)
	assert.InDelta(t, 120, steps[0].Timelapse, 1e-9)
	assert.InDelta(t, 0.5, steps[0].Load, 1e-9)
}

func TestJSONScenarioLoader_WrappedObject(t *testing.T) {
	path := writeScenarioFile(t, `{"scenario": [[120, 0.5]]}`)

	steps, err := NewJSONScenarioLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, steps, 1)
}

func TestJSONScenarioLoader_RejectsOutOfRangeLoad(t *testing.T) {
	path := writeScenarioFile(t, `[[120, 1.5]]`)
	_, err := NewJSONScenarioLoader(path).Load()
	assert.ErrorIs(t, err, simerr.ErrConfiguration)
}

func TestJSONScenarioLoader_RejectsNonPositiveTimelapse(t *testing.T) {
	path := writeScenarioFile(t, `[[0, 0.5]]`)
	_, err := NewJSONScenarioLoader(path).Load()
	assert.ErrorIs(t, err, simerr.ErrConfiguration)
}

func TestJSONScenarioLoader_RejectsEmptyScenario(t *testing.T) {
	path := writeScenarioFile(t, `[]`)
	_, err := NewJSONScenarioLoader(path).Load()
	assert.ErrorIs(t, err, simerr.ErrConfiguration)
}
