package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evfleet/internal/model"
	"evfleet/internal/vehicle"
)

func TestByName_ResolvesBuiltins(t *testing.T) {
	for _, name := range Names() {
		_, ok := ByName(name)
		assert.True(t, ok, "criterion %q should resolve", name)
	}
	_, ok := ByName("nonexistent")
	assert.False(t, ok)
}

func TestPerformant_PrefersMoreRemainingRuntime(t *testing.T) {
	rich := vehicle.New(1, 20e3, model.NewDefaultBattery())
	poor := vehicle.New(2, 20e3, model.NewDefaultBattery())
	require.NoError(t, poor.Use(model.DeltaT))

	assert.Greater(t, Performant(rich), Performant(poor))
}

func TestPoor_TracksStateOfCharge(t *testing.T) {
	v := vehicle.New(1, 20e3, model.NewDefaultBattery())
	before := Poor(v)
	require.NoError(t, v.Use(model.DeltaT))
	assert.Less(t, Poor(v), before)
}
