package indicator

import "github.com/pkg/errors"

/*
fibonacci implements Fibonacci retracement levels.

- https://www.investopedia.com/terms/f/fibonacciretracement.asp
*/

// FibonacciLevels are the classic retracement prices interpolated between a
// swing low and swing high. Level0 is the low and Level100 the high.
type FibonacciLevels struct {
	Level0   float64 `json:"0%"`
	Level236 float64 `json:"23.6%"`
	Level382 float64 `json:"38.2%"`
	Level500 float64 `json:"50%"`
	Level618 float64 `json:"61.8%"`
	Level786 float64 `json:"78.6%"`
	Level100 float64 `json:"100%"`
}

func FibonacciRetracement(high, low float64) (*FibonacciLevels, error) {
	if high < low {
		return nil, errors.Errorf("fibonacci: high %f below low %f", high, low)
	}

	diff := high - low
	return &FibonacciLevels{
		Level0:   low,
		Level236: low + 0.236*diff,
		Level382: low + 0.382*diff,
		Level500: low + 0.5*diff,
		Level618: low + 0.618*diff,
		Level786: low + 0.786*diff,
		Level100: high,
	}, nil
}
