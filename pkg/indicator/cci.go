package indicator

/*
cci implements the Commodity Channel Index.

- https://www.investopedia.com/terms/c/commoditychannelindex.asp
*/

// CCI measures the distance of the typical price (h+l+c)/3 from its SMA,
// scaled by 0.015 times the window's mean absolute deviation. A perfectly
// flat window has zero deviation and reports 0.
func CCI(highs, lows, closes []float64, period int) ([]float64, error) {
	if err := validateSameLength("cci", highs, lows, closes); err != nil {
		return nil, err
	}
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if len(closes) < period {
		return nil, nil
	}

	tp := make([]float64, len(closes))
	for i := range closes {
		tp[i] = (highs[i] + lows[i] + closes[i]) / 3.0
	}

	tpSMA, err := SMA(tp, period)
	if err != nil {
		return nil, err
	}
	tpMAD, err := RollingMAD(tp, period)
	if err != nil {
		return nil, err
	}

	out := warmup(len(closes), period-1)
	for i := period - 1; i < len(closes); i++ {
		if tpMAD[i] == 0 {
			out[i] = 0.0
			continue
		}
		out[i] = (tp[i] - tpSMA[i]) / (0.015 * tpMAD[i])
	}
	return out, nil
}
