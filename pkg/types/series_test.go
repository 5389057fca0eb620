package types

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestPriceSeries_Validate(t *testing.T) {
	ok := PriceSeries{
		{Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 100, Time: day(0)},
		{Open: 10.5, High: 12, Low: 10, Close: 11.5, Volume: 200, Time: day(1)},
	}
	assert.NoError(t, ok.Validate())

	dupTime := PriceSeries{
		{Close: 10, Time: day(0)},
		{Close: 11, Time: day(0)},
	}
	assert.Error(t, dupTime.Validate())

	negVolume := PriceSeries{{Close: 10, Volume: -1, Time: day(0)}}
	assert.Error(t, negVolume.Validate())

	nonFinite := PriceSeries{{Close: math.NaN(), Time: day(0)}}
	assert.Error(t, nonFinite.Validate())
}

func TestPriceSeries_Extract(t *testing.T) {
	s := PriceSeries{
		{Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10, Time: day(0)},
		{Open: 1.5, High: 3, Low: 1, Close: 2.5, Volume: 20, Time: day(1)},
	}

	assert.Equal(t, []float64{1, 1.5}, s.Opens())
	assert.Equal(t, []float64{2, 3}, s.Highs())
	assert.Equal(t, []float64{0.5, 1}, s.Lows())
	assert.Equal(t, []float64{1.5, 2.5}, s.Closes())
	assert.Equal(t, []float64{10, 20}, s.Volumes())
}
