package types

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Bar is a single OHLCV period.
type Bar struct {
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
	Time   time.Time `json:"time"`
}

// PriceSeries is an ordered run of bars, oldest first. Bars must carry
// strictly increasing timestamps; Validate enforces that along with the
// finite-price and non-negative-volume invariants.
type PriceSeries []Bar

func (s PriceSeries) Validate() error {
	for i, b := range s {
		for _, v := range []float64{b.Open, b.High, b.Low, b.Close} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Errorf("bar %d at %s: non-finite price", i, b.Time)
			}
		}

		if b.Volume < 0 {
			return errors.Errorf("bar %d at %s: negative volume %d", i, b.Time, b.Volume)
		}

		if i > 0 && !b.Time.After(s[i-1].Time) {
			return errors.Errorf("bar %d at %s: timestamp not after previous bar %s", i, b.Time, s[i-1].Time)
		}
	}

	return nil
}

func (s PriceSeries) Opens() []float64 {
	return s.extract(func(b Bar) float64 { return b.Open })
}

func (s PriceSeries) Highs() []float64 {
	return s.extract(func(b Bar) float64 { return b.High })
}

func (s PriceSeries) Lows() []float64 {
	return s.extract(func(b Bar) float64 { return b.Low })
}

// Closes is the default input to single-series indicators.
func (s PriceSeries) Closes() []float64 {
	return s.extract(func(b Bar) float64 { return b.Close })
}

func (s PriceSeries) Volumes() []float64 {
	return s.extract(func(b Bar) float64 { return float64(b.Volume) })
}

func (s PriceSeries) extract(f func(b Bar) float64) []float64 {
	values := make([]float64, len(s))
	for i, b := range s {
		values[i] = f(b)
	}
	return values
}
