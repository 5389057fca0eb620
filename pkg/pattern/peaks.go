// Package pattern detects classic chart formations (head and shoulders,
// double tops and bottoms, cup and handle, flags and pennants) on a price
// series. Detection runs on a short-SMA smoothed close to cut noise, then
// scans peaks and troughs that respect a minimum bar distance.
package pattern

import "sort"

// smoothingWindow is the SMA width applied before peak scanning.
const smoothingWindow = 5

// smooth returns the defined part of an SMA over the values, dropping the
// warm-up prefix so peak indices refer to the smoothed sequence.
func smooth(values []float64, window int) []float64 {
	if len(values) < window {
		return nil
	}

	out := make([]float64, 0, len(values)-window+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out
}

// findPeaks returns indices of strict local maxima separated by at least
// distance bars. When two candidates sit too close, the higher one wins.
func findPeaks(values []float64, distance int) []int {
	var candidates []int
	for i := 1; i < len(values)-1; i++ {
		if values[i] > values[i-1] && values[i] > values[i+1] {
			candidates = append(candidates, i)
		}
	}

	// keep the tallest of any cluster
	sort.Slice(candidates, func(a, b int) bool {
		return values[candidates[a]] > values[candidates[b]]
	})

	var kept []int
	for _, c := range candidates {
		ok := true
		for _, k := range kept {
			if abs(c-k) < distance {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, c)
		}
	}

	sort.Ints(kept)
	return kept
}

func findTroughs(values []float64, distance int) []int {
	inverted := make([]float64, len(values))
	for i, v := range values {
		inverted[i] = -v
	}
	return findPeaks(inverted, distance)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
