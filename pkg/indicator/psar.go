package indicator

import "math"

/*
psar implements the Parabolic Stop and Reverse.

- https://www.investopedia.com/trading/introduction-to-parabolic-sar/
*/

// PSARResult holds the stop level per bar and whether the bar is in an
// uptrend (price above the SAR).
type PSARResult struct {
	Values []float64
	Up     []bool
}

// PSAR runs the standard accelerating-stop recurrence: the stop chases the
// extreme point with an acceleration factor that starts at step, grows by
// step on every new extreme and caps at maxStep. The stop never enters the
// range of the previous two bars; when price crosses it the trend flips and
// the factor resets. The first bar has no trend yet and is marked NoValue.
func PSAR(highs, lows []float64, step, maxStep float64) (*PSARResult, error) {
	if err := validateSameLength("psar", highs, lows); err != nil {
		return nil, err
	}
	if len(highs) < 2 {
		return &PSARResult{}, nil
	}

	n := len(highs)
	out := &PSARResult{
		Values: warmup(n, 1),
		Up:     make([]bool, n),
	}

	// seed direction from the first bar pair
	up := highs[1]+lows[1] >= highs[0]+lows[0]
	sar := lows[0]
	ep := highs[0]
	if !up {
		sar = highs[0]
		ep = lows[0]
	}
	af := step

	for i := 1; i < n; i++ {
		sar = sar + af*(ep-sar)

		if up {
			// stop stays below the prior two lows
			sar = math.Min(sar, lows[i-1])
			if i >= 2 {
				sar = math.Min(sar, lows[i-2])
			}
			if lows[i] < sar {
				up = false
				sar = ep
				ep = lows[i]
				af = step
			} else if highs[i] > ep {
				ep = highs[i]
				af = math.Min(af+step, maxStep)
			}
		} else {
			sar = math.Max(sar, highs[i-1])
			if i >= 2 {
				sar = math.Max(sar, highs[i-2])
			}
			if highs[i] > sar {
				up = true
				sar = ep
				ep = highs[i]
				af = step
			} else if lows[i] < ep {
				ep = lows[i]
				af = math.Min(af+step, maxStep)
			}
		}

		out.Values[i] = sar
		out.Up[i] = up
	}

	return out, nil
}
