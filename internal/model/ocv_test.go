package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearOCV_Evaluate(t *testing.T) {
	curve := NewLinearOCV(3.0, 4.2)

	v, err := curve.Evaluate(0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-9)

	v, err = curve.Evaluate(1)
	require.NoError(t, err)
	assert.InDelta(t, 4.2, v, 1e-9)

	v, err = curve.Evaluate(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 3.6, v, 1e-9)
}

func TestLinearOCV_EvaluateOutOfDomain(t *testing.T) {
	curve := DefaultOCV()
	_, err := curve.Evaluate(-0.1)
	assert.Error(t, err)
	_, err = curve.Evaluate(1.1)
	assert.Error(t, err)
}

func TestNewLookupOCV_RequiresBracket(t *testing.T) {
	_, err := NewLookupOCV([]OCVPoint{{SOC: 0.2, Voltage: 3.5}, {SOC: 1, Voltage: 4.2}})
	assert.Error(t, err)

	_, err = NewLookupOCV([]OCVPoint{{SOC: 0, Voltage: 3.0}})
	assert.Error(t, err)
}

func TestLookupOCV_Interpolates(t *testing.T) {
	curve, err := NewLookupOCV([]OCVPoint{
		{SOC: 1, Voltage: 4.2},
		{SOC: 0, Voltage: 3.0},
		{SOC: 0.5, Voltage: 3.6},
	})
	require.NoError(t, err)

	v, err := curve.Evaluate(0.25)
	require.NoError(t, err)
	assert.InDelta(t, 3.3, v, 1e-9)
}

func TestOCVCurve_CloneIsIndependent(t *testing.T) {
	curve, err := NewLookupOCV([]OCVPoint{{SOC: 0, Voltage: 3.0}, {SOC: 1, Voltage: 4.2}})
	require.NoError(t, err)

	clone := curve.Clone()
	clone.table[0].Voltage = 99

	v, err := curve.Evaluate(0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-9)
}
