package indicator

import (
	"math"

	"github.com/quantfabric/taengine/pkg/datatype/floats"
)

// Sliding-window reductions over a trailing period. All of them return a
// full-length slice with the first period-1 entries marked NoValue, or an
// empty slice when the input is shorter than period. The sum and mean keep
// a running sum, so each step is O(1); variance and mean absolute deviation
// rescan the window, which keeps them numerically simple.

func RollingSum(values []float64, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if len(values) < period {
		return nil, nil
	}

	out := warmup(len(values), period-1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum
		}
	}
	return out, nil
}

func RollingMean(values []float64, period int) ([]float64, error) {
	sums, err := RollingSum(values, period)
	if err != nil || sums == nil {
		return nil, err
	}

	for i := period - 1; i < len(sums); i++ {
		sums[i] /= float64(period)
	}
	return sums, nil
}

func RollingMin(values []float64, period int) ([]float64, error) {
	return rollingExtremum(values, period, false)
}

func RollingMax(values []float64, period int) ([]float64, error) {
	return rollingExtremum(values, period, true)
}

func rollingExtremum(values []float64, period int, useMax bool) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if len(values) < period {
		return nil, nil
	}

	lows, highs := floats.MinMax(values, period)
	picked := lows
	if useMax {
		picked = highs
	}

	out := warmup(len(values), period-1)
	copy(out[period-1:], picked[period-1:])
	return out, nil
}

// RollingVariance is the population variance of each trailing window,
// matching the stddev used by the Bollinger middle band.
func RollingVariance(values []float64, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if len(values) < period {
		return nil, nil
	}

	out := warmup(len(values), period-1)
	for i := period - 1; i < len(values); i++ {
		win := values[i-period+1 : i+1]
		mean := floats.Average(win)
		s := 0.0
		for _, v := range win {
			d := v - mean
			s += d * d
		}
		out[i] = s / float64(period)
	}
	return out, nil
}

func RollingStdDev(values []float64, period int) ([]float64, error) {
	out, err := RollingVariance(values, period)
	if err != nil || out == nil {
		return nil, err
	}

	for i := period - 1; i < len(out); i++ {
		out[i] = math.Sqrt(out[i])
	}
	return out, nil
}

// RollingMAD is the mean absolute deviation of each trailing window around
// its own mean, used by the CCI denominator.
func RollingMAD(values []float64, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if len(values) < period {
		return nil, nil
	}

	out := warmup(len(values), period-1)
	for i := period - 1; i < len(values); i++ {
		win := values[i-period+1 : i+1]
		mean := floats.Average(win)
		s := 0.0
		for _, v := range win {
			s += math.Abs(v - mean)
		}
		out[i] = s / float64(period)
	}
	return out, nil
}
