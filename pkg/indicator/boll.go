package indicator

import (
	"github.com/quantfabric/taengine/pkg/datatype/floats"
)

/*
boll implements the Bollinger Bands indicator:

The Basics of Bollinger Bands
- https://www.investopedia.com/articles/technical/102201.asp

Bollinger Bands
- https://www.investopedia.com/terms/b/bollingerbands.asp
*/

// BollingerBands holds the three aligned bands. Upper and Lower sit k
// population standard deviations around the SMA middle band; the deviation
// is taken over the same trailing window as the mean so the bands stay
// internally consistent.
type BollingerBands struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

func Boll(values []float64, period int, k float64) (*BollingerBands, error) {
	middle, err := SMA(values, period)
	if err != nil {
		return nil, err
	}
	if middle == nil {
		return &BollingerBands{}, nil
	}

	sd, err := RollingStdDev(values, period)
	if err != nil {
		return nil, err
	}

	band := floats.Slice(sd).MulScalar(k)
	return &BollingerBands{
		Upper:  floats.Slice(middle).Add(band),
		Middle: middle,
		Lower:  floats.Slice(middle).Sub(band),
	}, nil
}
