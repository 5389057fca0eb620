package indicator

/*
stoch implements the Stochastic Oscillator.

- https://www.investopedia.com/terms/s/stochasticoscillator.asp
*/

// StochResult carries fast %K and its dPeriod-SMA %D, both aligned to the
// input.
type StochResult struct {
	K []float64
	D []float64
}

// Stoch computes %K = 100*(close-lowestLow)/(highestHigh-lowestLow) over a
// trailing kPeriod window. A zero high-low range pushes %K to 0 rather than
// dividing by zero. %D smooths the defined part of %K and is re-aligned to
// the input indices.
func Stoch(highs, lows, closes []float64, kPeriod, dPeriod int) (*StochResult, error) {
	if err := validateSameLength("stoch", highs, lows, closes); err != nil {
		return nil, err
	}
	for _, p := range []int{kPeriod, dPeriod} {
		if err := validatePeriod(p); err != nil {
			return nil, err
		}
	}
	if len(closes) < kPeriod {
		return &StochResult{}, nil
	}

	lowestLows, err := RollingMin(lows, kPeriod)
	if err != nil {
		return nil, err
	}
	highestHighs, err := RollingMax(highs, kPeriod)
	if err != nil {
		return nil, err
	}

	k := warmup(len(closes), kPeriod-1)
	for i := kPeriod - 1; i < len(closes); i++ {
		if spread := highestHighs[i] - lowestLows[i]; spread == 0 {
			k[i] = 0.0
		} else {
			k[i] = 100.0 * (closes[i] - lowestLows[i]) / spread
		}
	}

	out := &StochResult{
		K: k,
		D: warmup(len(closes), len(closes)),
	}

	d, err := SMA(k[kPeriod-1:], dPeriod)
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		if IsValid(v) {
			out.D[kPeriod-1+i] = v
		}
	}
	return out, nil
}
