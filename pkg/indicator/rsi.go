package indicator

import (
	"github.com/quantfabric/taengine/pkg/datatype/floats"
)

/*
rsi implements the Relative Strength Index.

- https://www.investopedia.com/terms/r/rsi.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:relative_strength_index_rsi
*/

// RSI uses Wilder smoothing: the first average gain/loss pair is the simple
// mean of the first period deltas, and each later pair follows
//
//	avg = (avg*(period-1) + current) / period
//
// The first defined output sits at index period (one delta per bar). When
// the average loss is zero the indicator reports exactly 100 instead of
// dividing by zero.
func RSI(values []float64, period int) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if len(values) < period+1 {
		return nil, nil
	}

	deltas := floats.Slice(values).Diff()
	gains := deltas.PositiveValuesOrZero()
	losses := deltas.NegativeValuesOrZero().Abs()

	avgGain := gains[1 : period+1].Mean()
	avgLoss := losses[1 : period+1].Mean()

	out := warmup(len(values), period)
	out[period] = rsiValue(avgGain, avgLoss)
	for i := period + 1; i < len(values); i++ {
		avgGain = (avgGain*float64(period-1) + gains[i]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[i]) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
