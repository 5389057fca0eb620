package indicator

import (
	"github.com/quantfabric/taengine/pkg/datatype/floats"
)

/*
levels detects support and resistance from strict local extrema, the same
fractal idea charting platforms use for swing highs and lows.
*/

// Level is a detected support or resistance price and the bar it formed on.
type Level struct {
	Index int
	Price float64
}

// SupportResistance holds detected supports (local minima) and resistances
// (local maxima). Index i qualifies iff prices[i] is strictly below (above)
// every other point in [i-window, i+window], so the scan covers interior
// indices only.
type SupportResistance struct {
	Supports    []Level
	Resistances []Level
}

// FindSupportResistance needs at least 2*window+1 points; shorter inputs
// return empty result sets, not an error.
func FindSupportResistance(prices []float64, window int) (*SupportResistance, error) {
	if err := validatePeriod(window); err != nil {
		return nil, err
	}

	out := &SupportResistance{}
	if len(prices) < 2*window+1 {
		return out, nil
	}

	for i := window; i < len(prices)-window; i++ {
		isMin, isMax := true, true
		for j := i - window; j <= i+window; j++ {
			if j == i {
				continue
			}
			if prices[j] <= prices[i] {
				isMin = false
			}
			if prices[j] >= prices[i] {
				isMax = false
			}
			if !isMin && !isMax {
				break
			}
		}

		if isMin {
			out.Supports = append(out.Supports, Level{Index: i, Price: prices[i]})
		} else if isMax {
			out.Resistances = append(out.Resistances, Level{Index: i, Price: prices[i]})
		}
	}

	return out, nil
}

// GroupLevels collapses levels that sit within minDistance (relative) of
// each other into their mean price, so near-duplicate lines don't clutter a
// chart.
func GroupLevels(levels []Level, minDistance float64) []float64 {
	prices := make([]float64, len(levels))
	for i, l := range levels {
		prices[i] = l.Price
	}
	return floats.Group(prices, minDistance)
}
