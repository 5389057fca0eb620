package indicator

/*
ichimoku implements the Ichimoku Cloud.

- https://www.investopedia.com/terms/i/ichimoku-cloud.asp
*/

// IchimokuResult carries the five aligned lines. SenkouA and SenkouB are
// plotted basePeriod bars ahead of the bar they are computed from, and
// Chikou is the close plotted basePeriod bars behind, so each line has its
// own undefined region.
type IchimokuResult struct {
	Tenkan  []float64 // conversion line
	Kijun   []float64 // base line
	SenkouA []float64 // leading span A
	SenkouB []float64 // leading span B
	Chikou  []float64 // lagging span
}

func midpoint(highs, lows []float64, period int) ([]float64, error) {
	hh, err := RollingMax(highs, period)
	if err != nil || hh == nil {
		return nil, err
	}
	ll, err := RollingMin(lows, period)
	if err != nil {
		return nil, err
	}

	out := warmup(len(highs), period-1)
	for i := period - 1; i < len(highs); i++ {
		out[i] = (hh[i] + ll[i]) / 2.0
	}
	return out, nil
}

// Ichimoku computes the cloud with the conventional 9/26/52 structure when
// called with those periods. An input shorter than spanBPeriod still
// produces the shorter lines; lines whose window never fills stay empty.
func Ichimoku(highs, lows, closes []float64, tenkanPeriod, kijunPeriod, spanBPeriod int) (*IchimokuResult, error) {
	if err := validateSameLength("ichimoku", highs, lows, closes); err != nil {
		return nil, err
	}
	for _, p := range []int{tenkanPeriod, kijunPeriod, spanBPeriod} {
		if err := validatePeriod(p); err != nil {
			return nil, err
		}
	}

	out := &IchimokuResult{}
	n := len(closes)

	var err error
	if out.Tenkan, err = midpoint(highs, lows, tenkanPeriod); err != nil {
		return nil, err
	}
	if out.Kijun, err = midpoint(highs, lows, kijunPeriod); err != nil {
		return nil, err
	}

	if out.Tenkan != nil && out.Kijun != nil {
		out.SenkouA = warmup(n, n)
		for i := kijunPeriod - 1; i < n; i++ {
			if i+kijunPeriod < n {
				out.SenkouA[i+kijunPeriod] = (out.Tenkan[i] + out.Kijun[i]) / 2.0
			}
		}
	}

	spanB, err := midpoint(highs, lows, spanBPeriod)
	if err != nil {
		return nil, err
	}
	if spanB != nil {
		out.SenkouB = warmup(n, n)
		for i := spanBPeriod - 1; i < n; i++ {
			if i+kijunPeriod < n {
				out.SenkouB[i+kijunPeriod] = spanB[i]
			}
		}
	}

	if n > kijunPeriod {
		out.Chikou = warmup(n, n)
		for i := 0; i+kijunPeriod < n; i++ {
			out.Chikou[i] = closes[i+kijunPeriod]
		}
	}

	return out, nil
}
