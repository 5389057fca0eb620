package indicator

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

/*
volumeprofile builds a histogram of traded volume across equal-width price
buckets.

- https://www.investopedia.com/terms/v/volume-analysis.asp
*/

// VolumeBin is one price bucket. Samples fall in [Low, High); the top bin
// also includes its upper boundary so the maximum-price sample is never
// dropped.
type VolumeBin struct {
	Low    float64
	High   float64
	Volume float64
}

// VolumeProfile partitions [min(prices), max(prices)] into bins equal-width
// buckets and sums the volume traded in each. The total binned volume
// always equals the total input volume. A flat price range cannot be
// partitioned, so it degenerates to a single bucket carrying everything.
func VolumeProfile(prices, volumes []float64, bins int) ([]VolumeBin, error) {
	if err := validateSameLength("volume profile", prices, volumes); err != nil {
		return nil, err
	}
	if bins < 1 {
		return nil, errors.Errorf("volume profile: bins must be >= 1, got %d", bins)
	}
	if len(prices) == 0 {
		return nil, nil
	}

	lo, hi := prices[0], prices[0]
	total := 0.0
	for i, p := range prices {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
		total += volumes[i]
	}

	if lo == hi {
		log.Debugf("volume profile: flat price range at %f, collapsing to a single bin", lo)
		return []VolumeBin{{Low: lo, High: hi, Volume: total}}, nil
	}

	width := (hi - lo) / float64(bins)
	out := make([]VolumeBin, bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = lo + float64(i+1)*width
	}
	out[bins-1].High = hi

	for i, p := range prices {
		idx := int((p - lo) / width)
		if idx >= bins {
			// the maximum price lands on the top bin's closed upper bound
			idx = bins - 1
		}
		out[idx].Volume += volumes[i]
	}
	return out, nil
}
