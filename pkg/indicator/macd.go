package indicator

import "github.com/pkg/errors"

/*
macd implements Moving Average Convergence Divergence.

- https://www.investopedia.com/terms/m/macd.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:macd-histogram
*/

// MACDResult holds the three aligned output lines. Line is defined from
// index slow-1; Signal and Histogram from index slow+signal-2.
type MACDResult struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes EMA(fast) - EMA(slow), an EMA(signal) of that difference
// computed over its defined prefix and re-aligned to the input indices, and
// their histogram. The fast period must sit below the slow one; an input
// shorter than slow returns all-empty lines.
func MACD(values []float64, fast, slow, signal int) (*MACDResult, error) {
	for _, p := range []int{fast, slow, signal} {
		if err := validatePeriod(p); err != nil {
			return nil, err
		}
	}
	if fast >= slow {
		return nil, errors.Errorf("macd: fast period %d must be below slow period %d", fast, slow)
	}

	if len(values) < slow {
		return &MACDResult{}, nil
	}

	fastEMA, err := EMA(values, fast)
	if err != nil {
		return nil, err
	}
	slowEMA, err := EMA(values, slow)
	if err != nil {
		return nil, err
	}

	line := warmup(len(values), slow-1)
	for i := slow - 1; i < len(values); i++ {
		line[i] = fastEMA[i] - slowEMA[i]
	}

	out := &MACDResult{
		Line:      line,
		Signal:    warmup(len(values), len(values)),
		Histogram: warmup(len(values), len(values)),
	}

	// the signal line smooths only the defined part of the macd line, then
	// shifts back to the original index space
	signalEMA, err := EMA(line[slow-1:], signal)
	if err != nil {
		return nil, err
	}
	for i, v := range signalEMA {
		if !IsValid(v) {
			continue
		}
		out.Signal[slow-1+i] = v
		out.Histogram[slow-1+i] = line[slow-1+i] - v
	}

	return out, nil
}
