package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ramp appends a linear segment from the current last value toward target
// over steps bars.
func ramp(series []float64, target float64, steps int) []float64 {
	start := 0.0
	if len(series) > 0 {
		start = series[len(series)-1]
	}
	for i := 1; i <= steps; i++ {
		series = append(series, start+(target-start)*float64(i)/float64(steps))
	}
	return series
}

func TestSmooth(t *testing.T) {
	out := smooth([]float64{1, 2, 3, 4, 5, 6}, 5)
	assert.Equal(t, []float64{3, 4}, out)

	assert.Nil(t, smooth([]float64{1, 2}, 5))
}

func TestFindPeaksAndTroughs(t *testing.T) {
	values := []float64{1, 3, 1, 0, 2, 0}
	assert.Equal(t, []int{1, 4}, findPeaks(values, 2))
	assert.Equal(t, []int{3}, findTroughs(values, 2))
}

func TestFindPeaks_DistanceKeepsTaller(t *testing.T) {
	values := []float64{0, 5, 4, 6, 0}
	// peaks at 1 and 3 are too close; the taller one at index 3 survives
	assert.Equal(t, []int{3}, findPeaks(values, 5))
}
