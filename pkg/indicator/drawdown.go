package indicator

import "github.com/pkg/errors"

/*
drawdown tracks the percentage decline from the running peak.

- https://www.investopedia.com/terms/m/maximum-drawdown-mdd.asp
*/

// DrawdownResult holds the per-bar drawdown (percent below the running
// peak, 0 at a new peak) plus the maximum drawdown seen and the index where
// it was realized. Peaks keeps the non-decreasing running peak per bar.
type DrawdownResult struct {
	Series   []float64
	Peaks    []float64
	Max      float64
	MaxIndex int
}

// Drawdown runs a single forward pass with O(1) state: the current peak and
// the running maximum. Prices must be positive; a non-positive price would
// poison the percentage base.
func Drawdown(prices []float64) (*DrawdownResult, error) {
	if len(prices) == 0 {
		return &DrawdownResult{MaxIndex: -1}, nil
	}

	out := &DrawdownResult{
		Series:   make([]float64, len(prices)),
		Peaks:    make([]float64, len(prices)),
		MaxIndex: -1,
	}

	peak := prices[0]
	for i, p := range prices {
		if p <= 0 {
			return nil, errors.Errorf("drawdown: non-positive price %f at index %d", p, i)
		}
		if p > peak {
			peak = p
		}

		dd := (peak - p) / peak * 100.0
		out.Series[i] = dd
		out.Peaks[i] = peak
		if dd > out.Max {
			out.Max = dd
			out.MaxIndex = i
		}
	}

	if out.MaxIndex < 0 {
		// flat or strictly rising series never leaves the peak
		out.MaxIndex = 0
	}
	return out, nil
}
