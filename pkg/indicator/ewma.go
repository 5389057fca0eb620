package indicator

import "github.com/quantfabric/taengine/pkg/datatype/floats"

/*
ewma implements the Exponential Moving Average.

- https://www.investopedia.com/ask/answers/122314/what-exponential-moving-average-ema-formula-and-how-ema-calculated.asp
*/

// EMA smooths the series with multiplier 2/(period+1). The value at index
// period-1 is seeded with the simple mean of the first period elements, and
// every later value follows the recurrence
//
//	ema[i] = values[i]*multiplier + ema[i-1]*(1-multiplier)
//
// MACD and the Wilder-smoothed indicators rely on this exact seeding to
// stay reproducible, so the seed must not change.
func EMA(values []float64, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if len(values) < period {
		return nil, nil
	}

	multiplier := 2.0 / (float64(period) + 1)

	out := warmup(len(values), period-1)
	out[period-1] = floats.Average(values[:period])
	for i := period; i < len(values); i++ {
		out[i] = values[i]*multiplier + out[i-1]*(1-multiplier)
	}
	return out, nil
}
