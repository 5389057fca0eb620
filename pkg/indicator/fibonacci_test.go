package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFibonacciRetracement(t *testing.T) {
	levels, err := FibonacciRetracement(200, 100)
	assert.NoError(t, err)

	assert.InDelta(t, 100.0, levels.Level0, Delta)
	assert.InDelta(t, 123.6, levels.Level236, Delta)
	assert.InDelta(t, 138.2, levels.Level382, Delta)
	assert.InDelta(t, 150.0, levels.Level500, Delta)
	assert.InDelta(t, 161.8, levels.Level618, Delta)
	assert.InDelta(t, 178.6, levels.Level786, Delta)
	assert.InDelta(t, 200.0, levels.Level100, Delta)
}

func TestFibonacciRetracement_Inverted(t *testing.T) {
	_, err := FibonacciRetracement(100, 200)
	assert.Error(t, err)
}

func TestCalculatePivotPoints(t *testing.T) {
	pp, err := CalculatePivotPoints(110, 90, 100)
	assert.NoError(t, err)

	assert.InDelta(t, 100.0, pp.Pivot, Delta)
	assert.InDelta(t, 110.0, pp.R1, Delta)
	assert.InDelta(t, 120.0, pp.R2, Delta)
	assert.InDelta(t, 130.0, pp.R3, Delta)
	assert.InDelta(t, 90.0, pp.S1, Delta)
	assert.InDelta(t, 80.0, pp.S2, Delta)
	assert.InDelta(t, 70.0, pp.S3, Delta)
}

func TestCalculatePivotPoints_Inverted(t *testing.T) {
	_, err := CalculatePivotPoints(90, 110, 100)
	assert.Error(t, err)
}
