package indicator

import (
	"gonum.org/v1/gonum/floats"
)

/*
vwap implements the Volume Weighted Average Price over a whole range.

- https://www.investopedia.com/terms/v/vwap.asp

VWAP = Sum(price * volume) / Sum(volume)
*/

// VWAP reduces the supplied range to a single scalar. When the total volume
// is zero the price is undefined and ok is false; the zero value must not
// be mistaken for a price.
func VWAP(prices, volumes []float64) (vwap float64, ok bool, err error) {
	if err := validateSameLength("vwap", prices, volumes); err != nil {
		return 0, false, err
	}

	totalVolume := floats.Sum(volumes)
	if totalVolume == 0 {
		return 0, false, nil
	}

	pv := make([]float64, len(prices))
	for i := range prices {
		pv[i] = prices[i] * volumes[i]
	}
	return floats.Sum(pv) / totalVolume, true, nil
}
