package indicator

import "math"

/*
atr implements the Average True Range.

- https://www.investopedia.com/terms/a/atr.asp
*/

// TrueRange returns max(h-l, |h-prevClose|, |l-prevClose|) per bar. The
// first bar has no previous close, so its true range is just high-low.
func TrueRange(highs, lows, closes []float64) ([]float64, error) {
	if err := validateSameLength("true range", highs, lows, closes); err != nil {
		return nil, err
	}

	out := make([]float64, len(closes))
	for i := range closes {
		tr := highs[i] - lows[i]
		if i > 0 {
			tr = math.Max(tr, math.Abs(highs[i]-closes[i-1]))
			tr = math.Max(tr, math.Abs(lows[i]-closes[i-1]))
		}
		out[i] = tr
	}
	return out, nil
}

// ATR applies Wilder smoothing to the true range: the value at index
// period-1 is the simple mean of the first period true ranges, and each
// later value is (prev*(period-1) + tr) / period. The smoothing choice is
// part of the contract; an SMA of the same true ranges gives numerically
// different values.
func ATR(highs, lows, closes []float64, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	tr, err := TrueRange(highs, lows, closes)
	if err != nil {
		return nil, err
	}
	if len(tr) < period {
		return nil, nil
	}

	out := warmup(len(closes), period-1)
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += tr[i]
	}
	out[period-1] = sum / float64(period)
	for i := period; i < len(tr); i++ {
		out[i] = (out[i-1]*float64(period-1) + tr[i]) / float64(period)
	}
	return out, nil
}
