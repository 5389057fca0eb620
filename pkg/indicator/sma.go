package indicator

/*
sma implements the Simple Moving Average.

- https://www.investopedia.com/terms/s/sma.asp
*/

// SMA returns the mean of each trailing window of period closes, aligned to
// the input. The first period-1 entries carry NoValue; an input shorter
// than period yields an empty result.
func SMA(values []float64, period int) ([]float64, error) {
	return RollingMean(values, period)
}
