// Package indicator implements deterministic technical-indicator transforms
// over price/volume series: moving averages, oscillators, volatility and
// volume measures, and price-level analyzers.
//
// Every function is a pure transform: it allocates and returns its own
// output and keeps no state across calls. Aligned indicators return a slice
// the same length as the input, with the warm-up prefix marked NoValue;
// inputs shorter than the minimum period yield an empty slice. Degenerate
// arithmetic (zero ranges, zero denominators) is substituted with a
// documented sentinel per indicator and never propagates NaN or Inf into
// the defined region. Mismatched series lengths, bad periods and non-finite
// inputs are caller bugs and fail fast with an error.
package indicator

import (
	"math"

	"github.com/pkg/errors"
)

// NoValue marks output entries for which the indicator window has not
// filled yet. It is only ever emitted as a leading run.
func NoValue() float64 {
	return math.NaN()
}

// IsValid reports whether an output entry carries a computed value.
func IsValid(v float64) bool {
	return !math.IsNaN(v)
}

// FirstValid returns the index of the first defined entry, or -1.
func FirstValid(values []float64) int {
	for i, v := range values {
		if IsValid(v) {
			return i
		}
	}
	return -1
}

func validatePeriod(period int) error {
	if period < 1 {
		return errors.Errorf("period must be >= 1, got %d", period)
	}
	return nil
}

func validateSameLength(name string, series ...[]float64) error {
	for i := 1; i < len(series); i++ {
		if len(series[i]) != len(series[0]) {
			return errors.Errorf("%s: input series length mismatch: %d != %d", name, len(series[i]), len(series[0]))
		}
	}
	return nil
}

// warmup allocates a full-length output with the first n entries marked
// NoValue.
func warmup(length, n int) []float64 {
	out := make([]float64, length)
	for i := 0; i < n && i < length; i++ {
		out[i] = NoValue()
	}
	return out
}
