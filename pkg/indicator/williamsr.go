package indicator

/*
williamsr implements the Williams %R oscillator.

- https://www.investopedia.com/terms/w/williamsr.asp
*/

// WilliamsR = -100 * (highestHigh - close) / (highestHigh - lowestLow) over
// a trailing period window, ranging from -100 to 0. A zero range reports 0,
// mirroring the Stochastic degenerate case.
func WilliamsR(highs, lows, closes []float64, period int) ([]float64, error) {
	if err := validateSameLength("williams %r", highs, lows, closes); err != nil {
		return nil, err
	}
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if len(closes) < period {
		return nil, nil
	}

	lowestLows, err := RollingMin(lows, period)
	if err != nil {
		return nil, err
	}
	highestHighs, err := RollingMax(highs, period)
	if err != nil {
		return nil, err
	}

	out := warmup(len(closes), period-1)
	for i := period - 1; i < len(closes); i++ {
		if spread := highestHighs[i] - lowestLows[i]; spread == 0 {
			out[i] = 0.0
		} else {
			out[i] = -100.0 * (highestHighs[i] - closes[i]) / spread
		}
	}
	return out, nil
}
