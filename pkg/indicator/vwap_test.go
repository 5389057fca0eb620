package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVWAP(t *testing.T) {
	prices := []float64{10, 20, 30}
	volumes := []float64{1, 1, 2}

	v, ok, err := VWAP(prices, volumes)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 22.5, v, Delta)
}

func TestVWAP_ZeroVolume(t *testing.T) {
	v, ok, err := VWAP([]float64{10, 20}, []float64{0, 0})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestVWAP_LengthMismatch(t *testing.T) {
	_, _, err := VWAP([]float64{10, 20}, []float64{1})
	assert.Error(t, err)
}
