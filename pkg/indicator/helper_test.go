package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const Delta = 1e-9

// assertAligned compares an aligned indicator output against expectations
// where NaN entries stand for the NoValue warm-up marker.
func assertAligned(t *testing.T, want, got []float64) {
	t.Helper()

	if !assert.Equal(t, len(want), len(got)) {
		return
	}
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.Falsef(t, IsValid(got[i]), "index %d: expected no value, got %v", i, got[i])
			continue
		}
		assert.InDeltaf(t, want[i], got[i], Delta, "index %d", i)
	}
}

func nan() float64 {
	return math.NaN()
}
