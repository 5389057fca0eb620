package indicator

import (
	"math"

	"github.com/pkg/errors"
)

// tradingDaysPerYear is the usual annualization factor for daily bars.
const tradingDaysPerYear = 252

// Returns computes simple period-over-period returns
// (p[i]-p[i-1])/p[i-1], one entry shorter than the input. A zero prior
// price is a caller bug, not a silent NaN.
func Returns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, nil
	}

	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			return nil, errors.Errorf("returns: zero price at index %d", i-1)
		}
		out[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
	}
	return out, nil
}

// RealizedVolatility is the annualized population standard deviation of the
// trailing period simple returns, in percent. The output aligns to the
// price series; the first defined entry sits at index period, the bar that
// completes the first period returns.
func RealizedVolatility(prices []float64, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	returns, err := Returns(prices)
	if err != nil {
		return nil, err
	}

	// sd aligns to the returns, which sit one bar behind the prices
	sd, err := RollingStdDev(returns, period)
	if err != nil || sd == nil {
		return nil, err
	}

	factor := math.Sqrt(tradingDaysPerYear) * 100.0
	out := warmup(len(prices), period)
	for i := period; i < len(prices); i++ {
		out[i] = sd[i-1] * factor
	}
	return out, nil
}
