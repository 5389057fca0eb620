package pattern

import "math"

/*
Double top / double bottom: two peaks (troughs) at a similar level with a
trough (peak) between them.

- https://www.investopedia.com/terms/d/doubletop.asp
*/

type DoubleKind int

const (
	DoubleNone DoubleKind = iota
	DoubleTop
	DoubleBottom
)

// DoublePattern reports a double top or bottom. First and Second are the
// matched extrema, Middle the opposite extremum between them, and Value the
// mean level of the pair. Indices refer to the smoothed close sequence.
type DoublePattern struct {
	Detected bool
	Kind     DoubleKind
	First    int
	Second   int
	Middle   int
	Value    float64
}

// DetectDoubleTopBottom scans with a minimum extremum distance of window
// bars; two extrema match when their levels differ by less than threshold
// (relative).
func DetectDoubleTopBottom(closes []float64, window int, threshold float64) *DoublePattern {
	smoothed := smooth(closes, smoothingWindow)
	peaks := findPeaks(smoothed, window)
	troughs := findTroughs(smoothed, window)

	for i := 0; i+1 < len(peaks); i++ {
		a, b := peaks[i], peaks[i+1]
		if math.Abs(smoothed[a]-smoothed[b]) >= threshold*math.Abs(smoothed[a]) {
			continue
		}
		if mid := between(troughs, a, b); mid >= 0 {
			return &DoublePattern{
				Detected: true,
				Kind:     DoubleTop,
				First:    a,
				Second:   b,
				Middle:   mid,
				Value:    (smoothed[a] + smoothed[b]) / 2,
			}
		}
	}

	for i := 0; i+1 < len(troughs); i++ {
		a, b := troughs[i], troughs[i+1]
		if math.Abs(smoothed[a]-smoothed[b]) >= threshold*math.Abs(smoothed[a]) {
			continue
		}
		if mid := between(peaks, a, b); mid >= 0 {
			return &DoublePattern{
				Detected: true,
				Kind:     DoubleBottom,
				First:    a,
				Second:   b,
				Middle:   mid,
				Value:    (smoothed[a] + smoothed[b]) / 2,
			}
		}
	}

	return &DoublePattern{}
}
