package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evfleet/internal/simerr"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, "resources_file: resources.json\nscenario_file: scenario.json\ncriterion: performant\noutput_csv: out.csv\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "resources.json", cfg.ResourcesFile)
	assert.Equal(t, "performant", cfg.Criterion)
}

func TestLoad_RejectsUnknownCriterion(t *testing.T) {
	path := writeConfig(t, "resources_file: resources.json\nscenario_file: scenario.json\ncriterion: bogus\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, simerr.ErrConfiguration)
}

func TestLoad_RejectsMissingResourcesFile(t *testing.T) {
	path := writeConfig(t, "scenario_file: scenario.json\ncriterion: performant\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, simerr.ErrConfiguration)
}

func TestLoadUnchecked_DoesNotValidate(t *testing.T) {
	path := writeConfig(t, "criterion: bogus\n")
	cfg, err := LoadUnchecked(path)
	require.NoError(t, err)
	assert.Equal(t, "bogus", cfg.Criterion)
}
