package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evfleet/internal/simerr"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "resources.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestJSONResourceLoader_LoadsValidDocument(t *testing.T) {
	path := writeFile(t, `{
		"vehicles": [[9360, 100, 10, 20000]],
		"charging_stations": [100000]
	}`)

	res, err := NewJSONResourceLoader(path).Load()
	require.NoError(t, err)

	require.Len(t, res.Vehicles, 1)
	assert.InDelta(t, 9360, res.Vehicles[0].CellNominalCapacityC, 1e-9)
	assert.Equal(t, 100, res.Vehicles[0].SeriesCells)
	assert.Equal(t, 10, res.Vehicles[0].ParallelBranches)
	assert.InDelta(t, 20000, res.Vehicles[0].VehiclePowerW, 1e-9)
	assert.Equal(t, []float64{100000}, res.ChargingStations)
}

func TestJSONResourceLoader_RejectsEmptyVehicles(t *testing.T) {
	path := writeFile(t, `{"vehicles": [], "charging_stations": [100000]}`)
	_, err := NewJSONResourceLoader(path).Load()
	assert.ErrorIs(t, err, simerr.ErrConfiguration)
}

func TestJSONResourceLoader_RejectsNonIntegerSeriesCells(t *testing.T) {
	path := writeFile(t, `{"vehicles": [[9360, 100.5, 10, 20000]], "charging_stations": [100000]}`)
	_, err := NewJSONResourceLoader(path).Load()
	assert.ErrorIs(t, err, simerr.ErrConfiguration)
}

func TestJSONResourceLoader_RejectsNonPositivePower(t *testing.T) {
	path := writeFile(t, `{"vehicles": [[9360, 100, 10, 0]], "charging_stations": [100000]}`)
	_, err := NewJSONResourceLoader(path).Load()
	assert.ErrorIs(t, err, simerr.ErrConfiguration)
}

func TestJSONResourceLoader_MissingFile(t *testing.T) {
	_, err := NewJSONResourceLoader("/no/such/file.json").Load()
	assert.Error(t, err)
}
