package pattern

import "math"

/*
Cup and handle: a peak, a rounded bottom back up to a second peak near the
first one's level (the lip), a shallow dip (the handle) and a close above
the lip.

- https://www.investopedia.com/terms/c/cupandhandle.asp
*/

const (
	// minCupHandleBars is the least history a cup needs to form.
	minCupHandleBars = 60
	// lipTolerance is the maximum relative gap between the two cup lips.
	lipTolerance = 0.05
	// handleDepthRatio caps the handle depth relative to the cup depth.
	handleDepthRatio = 0.3
)

// CupHandle reports a detected cup-and-handle formation; indices refer to
// the smoothed close sequence.
type CupHandle struct {
	Detected     bool
	CupStart     int
	CupBottom    int
	CupEnd       int
	HandleBottom int
}

func DetectCupAndHandle(closes []float64, window int) *CupHandle {
	if len(closes) < minCupHandleBars {
		return &CupHandle{}
	}

	smoothed := smooth(closes, smoothingWindow)
	peaks := findPeaks(smoothed, window)
	troughs := findTroughs(smoothed, window)
	if len(peaks) < 2 || len(troughs) < 1 {
		return &CupHandle{}
	}

	for _, p1 := range peaks {
		cupBottom := after(troughs, p1)
		if cupBottom < 0 {
			continue
		}

		p2 := after(peaks, cupBottom)
		if p2 < 0 {
			continue
		}

		// the second lip must sit near the first
		if math.Abs(smoothed[p1]-smoothed[p2]) > lipTolerance*smoothed[p1] {
			continue
		}

		handleBottom := after(troughs, p2)
		if handleBottom < 0 {
			continue
		}

		cupDepth := smoothed[p1] - smoothed[cupBottom]
		handleDepth := smoothed[p2] - smoothed[handleBottom]
		if handleDepth >= handleDepthRatio*cupDepth {
			continue
		}

		// breakout: the latest close above the lip confirms the handle
		if handleBottom < len(smoothed)-smoothingWindow && smoothed[len(smoothed)-1] > smoothed[p2] {
			return &CupHandle{
				Detected:     true,
				CupStart:     p1,
				CupBottom:    cupBottom,
				CupEnd:       p2,
				HandleBottom: handleBottom,
			}
		}
	}

	return &CupHandle{}
}

// after returns the first index in sorted xs strictly after lo, or -1.
func after(xs []int, lo int) int {
	for _, x := range xs {
		if x > lo {
			return x
		}
	}
	return -1
}
