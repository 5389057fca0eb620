package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMACD_ShortInput(t *testing.T) {
	out, err := MACD([]float64{1, 2, 3}, 12, 26, 9)
	assert.NoError(t, err)
	assert.Empty(t, out.Line)
	assert.Empty(t, out.Signal)
	assert.Empty(t, out.Histogram)
}

func TestMACD_FastNotBelowSlow(t *testing.T) {
	in := make([]float64, 15)
	for i := range in {
		in[i] = float64(i)
	}

	// swapped fast/slow periods must error out, not blow up on the
	// unfilled fast EMA
	out, err := MACD(in, 26, 12, 9)
	assert.Error(t, err)
	assert.Nil(t, out)

	out, err = MACD(in, 12, 12, 9)
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestMACD_ConstantSeries(t *testing.T) {
	in := make([]float64, 50)
	for i := range in {
		in[i] = 10.0
	}

	out, err := MACD(in, 12, 26, 9)
	assert.NoError(t, err)
	assert.Len(t, out.Line, 50)
	assert.Len(t, out.Signal, 50)
	assert.Len(t, out.Histogram, 50)

	// both EMAs equal the constant, so every defined value is zero
	assert.Equal(t, 25, FirstValid(out.Line))
	assert.Equal(t, 33, FirstValid(out.Signal))
	assert.Equal(t, 33, FirstValid(out.Histogram))
	for i := 25; i < 50; i++ {
		assert.InDelta(t, 0.0, out.Line[i], Delta)
	}
	for i := 33; i < 50; i++ {
		assert.InDelta(t, 0.0, out.Signal[i], Delta)
		assert.InDelta(t, 0.0, out.Histogram[i], Delta)
	}
}

func TestMACD_SignalIsEMAOfLine(t *testing.T) {
	in := make([]float64, 60)
	for i := range in {
		in[i] = 100.0 + float64(i%7) + 0.3*float64(i)
	}

	out, err := MACD(in, 5, 10, 4)
	assert.NoError(t, err)

	signalEMA, err := EMA(out.Line[9:], 4)
	assert.NoError(t, err)
	for i, v := range signalEMA {
		if !IsValid(v) {
			assert.False(t, IsValid(out.Signal[9+i]))
			continue
		}
		assert.InDelta(t, v, out.Signal[9+i], Delta)
		assert.InDelta(t, out.Line[9+i]-v, out.Histogram[9+i], Delta)
	}
}
