package pattern

import "math"

/*
Head and shoulders: three peaks with the middle one highest, separated by
two troughs at a similar level (the neckline). The inverse form flips every
comparison.

- https://www.investopedia.com/terms/h/head-shoulders.asp
*/

// necklineTolerance is the maximum relative gap between the two neckline
// points for them to count as one line.
const necklineTolerance = 0.03

// HeadShoulders reports a detected (possibly inverse) head and shoulders
// formation. Indices refer to the smoothed close sequence used for
// scanning.
type HeadShoulders struct {
	Detected      bool
	Inverse       bool
	LeftShoulder  int
	Head          int
	RightShoulder int
	LeftTrough    int
	RightTrough   int
	Neckline      float64
}

// DetectHeadAndShoulders scans the smoothed closes with a minimum peak
// distance of window bars. Too little history simply reports no detection.
func DetectHeadAndShoulders(closes []float64, window int) *HeadShoulders {
	smoothed := smooth(closes, smoothingWindow)
	peaks := findPeaks(smoothed, window)
	troughs := findTroughs(smoothed, window)

	if out := scanHeadShoulders(smoothed, peaks, troughs, false); out != nil {
		return out
	}

	// inverse form: scan the mirrored series so troughs become peaks
	if out := scanHeadShoulders(invert(smoothed), troughs, peaks, true); out != nil {
		return out
	}

	return &HeadShoulders{}
}

func scanHeadShoulders(values []float64, peaks, troughs []int, inverse bool) *HeadShoulders {
	for i := 0; i+2 < len(peaks); i++ {
		p1, p2, p3 := peaks[i], peaks[i+1], peaks[i+2]
		if values[p2] <= values[p1] || values[p2] <= values[p3] {
			continue
		}

		t1 := between(troughs, p1, p2)
		t2 := between(troughs, p2, p3)
		if t1 < 0 || t2 < 0 {
			continue
		}

		if math.Abs(values[t1]-values[t2]) >= necklineTolerance*math.Abs(values[t1]) {
			continue
		}

		neckline := (values[t1] + values[t2]) / 2
		if inverse {
			neckline = -neckline
		}
		return &HeadShoulders{
			Detected:      true,
			Inverse:       inverse,
			LeftShoulder:  p1,
			Head:          p2,
			RightShoulder: p3,
			LeftTrough:    t1,
			RightTrough:   t2,
			Neckline:      neckline,
		}
	}
	return nil
}

// between returns the first index in sorted xs strictly inside (lo, hi),
// or -1.
func between(xs []int, lo, hi int) int {
	for _, x := range xs {
		if x > lo && x < hi {
			return x
		}
	}
	return -1
}

func invert(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = -v
	}
	return out
}
