package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawdown(t *testing.T) {
	out, err := Drawdown([]float64{100, 90, 95, 80, 120})
	assert.NoError(t, err)

	assert.InDelta(t, 20.0, out.Max, Delta)
	assert.Equal(t, 3, out.MaxIndex)

	assertAligned(t, []float64{0, 10, 5, 20, 0}, out.Series)

	// running peak never decreases
	for i := 1; i < len(out.Peaks); i++ {
		assert.GreaterOrEqual(t, out.Peaks[i], out.Peaks[i-1])
	}
}

func TestDrawdown_RisingSeries(t *testing.T) {
	out, err := Drawdown([]float64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, out.Max)
	assert.Equal(t, 0, out.MaxIndex)
}

func TestDrawdown_NonPositivePrice(t *testing.T) {
	_, err := Drawdown([]float64{100, -1})
	assert.Error(t, err)
}

func TestDrawdown_Empty(t *testing.T) {
	out, err := Drawdown(nil)
	assert.NoError(t, err)
	assert.Empty(t, out.Series)
}
